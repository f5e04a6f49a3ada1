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

package config

import (
	"time"

	"github.com/mlglue/linreg/pkg/framework"
)

const (
	// DefaultModelData is the default object url of the model artifact tarball.
	DefaultModelData = "s3://my-sagemaker-model-bucket/sagemaker-scikit/model.tar.gz"

	// DefaultBaseName is the default prefix of model, endpoint config and endpoint names.
	DefaultBaseName = "sagemaker-scikit-learn"

	// DefaultVariantName is the name of the single production variant.
	DefaultVariantName = "AllTraffic"
)

const (
	// DefaultEntryPoint is the default user script of hosting.
	DefaultEntryPoint = framework.DefaultEntryPoint

	// DefaultFrameworkVersion is the default scikit-learn framework version.
	DefaultFrameworkVersion = framework.DefaultVersion

	// DefaultInstanceType is the default hosting instance type.
	DefaultInstanceType = framework.DefaultInstanceType

	// DefaultInstanceCount is the default hosting instance count.
	DefaultInstanceCount = framework.DefaultInstanceCount

	// DefaultPollInterval is the default interval of polling endpoint status.
	DefaultPollInterval = 30 * time.Second

	// DefaultTimeout is the default limit of waiting for the endpoint in service.
	DefaultTimeout = time.Hour
)
