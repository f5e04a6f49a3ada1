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
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/mlglue/linreg/cmd/dependency/base"
)

func TestConfig_Load(t *testing.T) {
	config := &Config{
		Options: base.Options{
			Console:       false,
			Verbose:       true,
			LogDir:        "/var/log/linreg",
			LogMaxSize:    512,
			LogMaxAge:     5,
			LogMaxBackups: 3,
		},
		Role:         "arn:aws:iam::123456789012:role/sagemaker-execution",
		Region:       "us-east-1",
		ModelData:    "s3://my-sagemaker-model-bucket/sagemaker-scikit/model.tar.gz",
		UploadModel:  "./model.tar.gz",
		EndpointName: "sagemaker-scikit-endpoint",
		BaseName:     "linreg",
		Wait:         true,
		PollInterval: 10 * time.Second,
		Timeout:      30 * time.Minute,
		Model: ModelConfig{
			EntryPoint:       "train.py",
			SourceDir:        "./scripts",
			FrameworkVersion: "1.2-1",
			InstanceType:     "ml.m5.xlarge",
			InstanceCount:    2,
		},
	}

	deployerConfigYAML := &Config{}
	contentYAML, _ := os.ReadFile("./testdata/deployer.yaml")
	if err := yaml.Unmarshal(contentYAML, &deployerConfigYAML); err != nil {
		t.Fatal(err)
	}

	assert := assert.New(t)
	assert.EqualValues(config, deployerConfigYAML)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		config *Config
		mock   func(cfg *Config)
		expect func(t *testing.T, err error)
	}{
		{
			name:   "valid config",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Role = "arn:aws:iam::123456789012:role/sagemaker-execution"
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "deployer requires parameter role",
			config: New(),
			mock:   func(cfg *Config) {},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "deployer requires parameter role")
			},
		},
		{
			name:   "deployer requires parameter modelData",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Role = "role"
				cfg.ModelData = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "deployer requires parameter modelData")
			},
		},
		{
			name:   "invalid modelData",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Role = "role"
				cfg.ModelData = "/opt/ml/model/model.tar.gz"
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, `invalid scheme "" of object url /opt/ml/model/model.tar.gz`)
			},
		},
		{
			name:   "deployer requires parameter baseName",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Role = "role"
				cfg.BaseName = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "deployer requires parameter baseName")
			},
		},
		{
			name:   "endpoint name replaces baseName",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Role = "role"
				cfg.BaseName = ""
				cfg.EndpointName = "sagemaker-scikit-endpoint"
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "deployer requires parameter timeout",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Role = "role"
				cfg.Timeout = time.Second
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "deployer requires parameter timeout")
			},
		},
		{
			name:   "model requires parameter instanceCount",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Role = "role"
				cfg.Model.InstanceCount = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "model requires parameter instanceCount")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mock(tc.config)
			tc.expect(t, tc.config.Validate())
		})
	}
}
