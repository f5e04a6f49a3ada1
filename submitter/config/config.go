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
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mlglue/linreg/cmd/dependency/base"
	"github.com/mlglue/linreg/pkg/objectstorage"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Role is the execution role arn assumed by the training job.
	Role string `yaml:"role" mapstructure:"role"`

	// Region is the region of the training job, the shared aws config
	// is used when it is empty.
	Region string `yaml:"region" mapstructure:"region"`

	// Bucket is the bucket of training data, sources and model artifacts.
	Bucket string `yaml:"bucket" mapstructure:"bucket"`

	// TrainingData is the object url of training data,
	// default is s3://<bucket>/train.csv.
	TrainingData string `yaml:"trainingData" mapstructure:"trainingData"`

	// OutputPath is the object url prefix of model artifacts,
	// default is s3://<bucket>/.
	OutputPath string `yaml:"outputPath" mapstructure:"outputPath"`

	// UploadTrainingFile is the local csv file uploaded to TrainingData
	// before submitting.
	UploadTrainingFile string `yaml:"uploadTrainingFile" mapstructure:"uploadTrainingFile"`

	// Wait blocks until the training job is completed or stopped.
	Wait bool `yaml:"wait" mapstructure:"wait"`

	// PollInterval is the interval of polling training job status.
	PollInterval time.Duration `yaml:"pollInterval" mapstructure:"pollInterval"`

	// Estimator configuration.
	Estimator EstimatorConfig `yaml:"estimator" mapstructure:"estimator"`
}

type EstimatorConfig struct {
	// EntryPoint is the user script run by the framework container.
	EntryPoint string `yaml:"entryPoint" mapstructure:"entryPoint"`

	// SourceDir is the local directory packed with the entry point.
	SourceDir string `yaml:"sourceDir" mapstructure:"sourceDir"`

	// SubmitDirectory is the object url of packed sources, when it is set
	// nothing is packed and uploaded.
	SubmitDirectory string `yaml:"submitDirectory" mapstructure:"submitDirectory"`

	// FrameworkVersion is the scikit-learn framework version.
	FrameworkVersion string `yaml:"frameworkVersion" mapstructure:"frameworkVersion"`

	// Image overrides the framework image.
	Image string `yaml:"image" mapstructure:"image"`

	// InstanceType is the training instance type.
	InstanceType string `yaml:"instanceType" mapstructure:"instanceType"`

	// InstanceCount is the training instance count.
	InstanceCount int `yaml:"instanceCount" mapstructure:"instanceCount"`

	// VolumeSizeGB is the size of the storage volume attached to instances.
	VolumeSizeGB int `yaml:"volumeSizeGB" mapstructure:"volumeSizeGB"`

	// MaxRuntime is the limit of training job runtime.
	MaxRuntime time.Duration `yaml:"maxRuntime" mapstructure:"maxRuntime"`

	// JobBaseName is the prefix of training job names.
	JobBaseName string `yaml:"jobBaseName" mapstructure:"jobBaseName"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Options:      base.NewOptions(),
		Bucket:       DefaultBucket,
		Wait:         true,
		PollInterval: DefaultPollInterval,
		Estimator: EstimatorConfig{
			EntryPoint:       DefaultEntryPoint,
			FrameworkVersion: DefaultFrameworkVersion,
			InstanceType:     DefaultInstanceType,
			InstanceCount:    DefaultInstanceCount,
			VolumeSizeGB:     DefaultVolumeSizeGB,
			MaxRuntime:       DefaultMaxRuntime,
			JobBaseName:      DefaultJobBaseName,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Role == "" {
		return errors.New("submitter requires parameter role")
	}

	if cfg.Bucket == "" && (cfg.TrainingData == "" || cfg.OutputPath == "") {
		return errors.New("submitter requires parameter bucket")
	}

	if cfg.PollInterval <= 0 {
		return errors.New("submitter requires parameter pollInterval")
	}

	if !cfg.Console && cfg.LogDir == "" {
		return errors.New("submitter requires parameter logDir")
	}

	if cfg.Estimator.EntryPoint == "" {
		return errors.New("estimator requires parameter entryPoint")
	}

	if cfg.Estimator.FrameworkVersion == "" && cfg.Estimator.Image == "" {
		return errors.New("estimator requires parameter frameworkVersion")
	}

	if cfg.Estimator.InstanceType == "" {
		return errors.New("estimator requires parameter instanceType")
	}

	if cfg.Estimator.InstanceCount <= 0 {
		return errors.New("estimator requires parameter instanceCount")
	}

	if cfg.Estimator.VolumeSizeGB <= 0 {
		return errors.New("estimator requires parameter volumeSizeGB")
	}

	if cfg.Estimator.MaxRuntime < time.Second {
		return errors.New("estimator requires parameter maxRuntime")
	}

	if cfg.Estimator.JobBaseName == "" {
		return errors.New("estimator requires parameter jobBaseName")
	}

	for _, url := range []string{cfg.TrainingData, cfg.OutputPath, cfg.Estimator.SubmitDirectory} {
		if url == "" {
			continue
		}

		if _, _, err := objectstorage.ParseURL(url); err != nil {
			return err
		}
	}

	return nil
}

// Convert fills the object urls derived from bucket.
func (cfg *Config) Convert() error {
	if cfg.TrainingData == "" {
		cfg.TrainingData = objectstorage.URL(cfg.Bucket, DefaultTrainingDataName)
	}

	if cfg.OutputPath == "" {
		cfg.OutputPath = objectstorage.URL(cfg.Bucket, "")
	}

	if !strings.HasSuffix(cfg.OutputPath, "/") {
		cfg.OutputPath = fmt.Sprintf("%s/", cfg.OutputPath)
	}

	return nil
}
