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
	// DefaultBucket is the default bucket of training data and model artifacts.
	DefaultBucket = "my-sagemaker-model-bucket"

	// DefaultTrainingDataName is the default object name of training data in bucket.
	DefaultTrainingDataName = "train.csv"

	// DefaultJobBaseName is the default prefix of training job names.
	DefaultJobBaseName = "sagemaker-scikit-learn"
)

const (
	// DefaultEntryPoint is the default user script of training.
	DefaultEntryPoint = framework.DefaultEntryPoint

	// DefaultFrameworkVersion is the default scikit-learn framework version.
	DefaultFrameworkVersion = framework.DefaultVersion

	// DefaultInstanceType is the default training instance type.
	DefaultInstanceType = framework.DefaultInstanceType

	// DefaultInstanceCount is the default training instance count.
	DefaultInstanceCount = framework.DefaultInstanceCount

	// DefaultVolumeSizeGB is the default size of the storage volume attached to instances.
	DefaultVolumeSizeGB = 30

	// DefaultMaxRuntime is the default limit of training job runtime.
	DefaultMaxRuntime = 24 * time.Hour

	// DefaultPollInterval is the default interval of polling training job status.
	DefaultPollInterval = 30 * time.Second
)
