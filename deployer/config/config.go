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
	"time"

	"github.com/mlglue/linreg/cmd/dependency/base"
	"github.com/mlglue/linreg/pkg/objectstorage"
)

type Config struct {
	// Base options.
	base.Options `yaml:",inline" mapstructure:",squash"`

	// Role is the execution role arn assumed by the model.
	Role string `yaml:"role" mapstructure:"role"`

	// Region is the region of the endpoint, the shared aws config is used
	// when it is empty.
	Region string `yaml:"region" mapstructure:"region"`

	// ModelData is the object url of the model artifact tarball.
	ModelData string `yaml:"modelData" mapstructure:"modelData"`

	// UploadModel is the local model tarball uploaded to ModelData before
	// registering the model.
	UploadModel string `yaml:"uploadModel" mapstructure:"uploadModel"`

	// EndpointName is the name of the endpoint, generated from BaseName when
	// it is empty.
	EndpointName string `yaml:"endpointName" mapstructure:"endpointName"`

	// BaseName is the prefix of generated names.
	BaseName string `yaml:"baseName" mapstructure:"baseName"`

	// Wait blocks until the endpoint is in service.
	Wait bool `yaml:"wait" mapstructure:"wait"`

	// PollInterval is the interval of polling endpoint status.
	PollInterval time.Duration `yaml:"pollInterval" mapstructure:"pollInterval"`

	// Timeout is the limit of waiting for the endpoint in service.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Model configuration.
	Model ModelConfig `yaml:"model" mapstructure:"model"`
}

type ModelConfig struct {
	// EntryPoint is the user script loaded by the serving container.
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

	// InstanceType is the hosting instance type.
	InstanceType string `yaml:"instanceType" mapstructure:"instanceType"`

	// InstanceCount is the initial hosting instance count.
	InstanceCount int `yaml:"instanceCount" mapstructure:"instanceCount"`
}

// New default configuration.
func New() *Config {
	return &Config{
		Options:      base.NewOptions(),
		ModelData:    DefaultModelData,
		BaseName:     DefaultBaseName,
		Wait:         true,
		PollInterval: DefaultPollInterval,
		Timeout:      DefaultTimeout,
		Model: ModelConfig{
			EntryPoint:       DefaultEntryPoint,
			FrameworkVersion: DefaultFrameworkVersion,
			InstanceType:     DefaultInstanceType,
			InstanceCount:    DefaultInstanceCount,
		},
	}
}

// Validate config parameters.
func (cfg *Config) Validate() error {
	if cfg.Role == "" {
		return errors.New("deployer requires parameter role")
	}

	if cfg.ModelData == "" {
		return errors.New("deployer requires parameter modelData")
	}

	if _, _, err := objectstorage.ParseURL(cfg.ModelData); err != nil {
		return err
	}

	if cfg.EndpointName == "" && cfg.BaseName == "" {
		return errors.New("deployer requires parameter baseName")
	}

	if cfg.PollInterval <= 0 {
		return errors.New("deployer requires parameter pollInterval")
	}

	if cfg.Timeout < cfg.PollInterval {
		return errors.New("deployer requires parameter timeout")
	}

	if !cfg.Console && cfg.LogDir == "" {
		return errors.New("deployer requires parameter logDir")
	}

	if cfg.Model.EntryPoint == "" {
		return errors.New("model requires parameter entryPoint")
	}

	if cfg.Model.FrameworkVersion == "" && cfg.Model.Image == "" {
		return errors.New("model requires parameter frameworkVersion")
	}

	if cfg.Model.InstanceType == "" {
		return errors.New("model requires parameter instanceType")
	}

	if cfg.Model.InstanceCount <= 0 {
		return errors.New("model requires parameter instanceCount")
	}

	if cfg.Model.SubmitDirectory != "" {
		if _, _, err := objectstorage.ParseURL(cfg.Model.SubmitDirectory); err != nil {
			return err
		}
	}

	return nil
}
