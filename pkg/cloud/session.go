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

// Package cloud creates sessions of the managed cloud platform.
package cloud

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"

	logger "github.com/mlglue/linreg/internal/logger"
)

// NewSession returns an aws session of the region, credentials are resolved
// by the default provider chain. An empty region falls back to the shared
// config and environment.
func NewSession(region string, verbose bool) (*session.Session, error) {
	cfg := aws.NewConfig().WithLogger(aws.LoggerFunc(func(args ...any) {
		logger.AWSLogger.Debug(args...)
	}))

	if region != "" {
		cfg = cfg.WithRegion(region)
	}

	if verbose {
		cfg = cfg.WithLogLevel(aws.LogDebugWithRequestErrors)
	}

	s, err := session.NewSessionWithOptions(session.Options{
		Config:            *cfg,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, fmt.Errorf("new aws session failed: %s", err)
	}

	return s, nil
}

// Region returns the region the session is bound to.
func Region(s *session.Session) string {
	return aws.StringValue(s.Config.Region)
}
