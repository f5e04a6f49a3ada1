/*
 *     Copyright 2024 The Linreg Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go/service/sagemakerruntime"

	"github.com/mlglue/linreg/inference"
	"github.com/mlglue/linreg/inference/config"
	logger "github.com/mlglue/linreg/internal/logger"
	"github.com/mlglue/linreg/pkg/cloud"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("load inference config: %s", err)
	}

	if err := logger.InitInference(cfg.Verbose); err != nil {
		logger.Fatalf("init inference logger: %s", err)
	}

	sess, err := cloud.NewSession(cfg.Region, cfg.Verbose)
	if err != nil {
		logger.Fatalf("create session: %s", err)
	}

	// The runtime client is created once and shared by every invocation.
	handler := inference.New(sagemakerruntime.New(sess), cfg.EndpointName)
	logger.Infof("inference handler invokes endpoint %s", cfg.EndpointName)

	lambda.Start(handler.Handle)
}
