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
		Role:               "arn:aws:iam::123456789012:role/sagemaker-execution",
		Region:             "us-east-1",
		Bucket:             "my-sagemaker-model-bucket",
		TrainingData:       "s3://my-sagemaker-model-bucket/data/train.csv",
		OutputPath:         "s3://my-sagemaker-model-bucket/output/",
		UploadTrainingFile: "./train.csv",
		Wait:               true,
		PollInterval:       time.Minute,
		Estimator: EstimatorConfig{
			EntryPoint:       "train.py",
			SourceDir:        "./scripts",
			FrameworkVersion: "1.2-1",
			InstanceType:     "ml.m5.xlarge",
			InstanceCount:    2,
			VolumeSizeGB:     50,
			MaxRuntime:       2 * time.Hour,
			JobBaseName:      "linreg",
		},
	}

	submitterConfigYAML := &Config{}
	contentYAML, _ := os.ReadFile("./testdata/submitter.yaml")
	if err := yaml.Unmarshal(contentYAML, &submitterConfigYAML); err != nil {
		t.Fatal(err)
	}

	assert := assert.New(t)
	assert.EqualValues(config, submitterConfigYAML)
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
			name:   "submitter requires parameter role",
			config: New(),
			mock:   func(cfg *Config) {},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "submitter requires parameter role")
			},
		},
		{
			name:   "submitter requires parameter bucket",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Role = "role"
				cfg.Bucket = ""
				cfg.TrainingData = "s3://foo/train.csv"
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "submitter requires parameter bucket")
			},
		},
		{
			name:   "bucket is not required with object urls",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Role = "role"
				cfg.Bucket = ""
				cfg.TrainingData = "s3://foo/train.csv"
				cfg.OutputPath = "s3://foo/output/"
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "submitter requires parameter pollInterval",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Role = "role"
				cfg.PollInterval = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "submitter requires parameter pollInterval")
			},
		},
		{
			name:   "estimator requires parameter frameworkVersion",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Role = "role"
				cfg.Estimator.FrameworkVersion = ""
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "estimator requires parameter frameworkVersion")
			},
		},
		{
			name:   "image replaces frameworkVersion",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Role = "role"
				cfg.Estimator.FrameworkVersion = ""
				cfg.Estimator.Image = "123456789012.dkr.ecr.us-east-1.amazonaws.com/linreg:latest"
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.NoError(err)
			},
		},
		{
			name:   "estimator requires parameter instanceCount",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Role = "role"
				cfg.Estimator.InstanceCount = 0
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "estimator requires parameter instanceCount")
			},
		},
		{
			name:   "estimator requires parameter maxRuntime",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Role = "role"
				cfg.Estimator.MaxRuntime = time.Millisecond
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "estimator requires parameter maxRuntime")
			},
		},
		{
			name:   "invalid training data url",
			config: New(),
			mock: func(cfg *Config) {
				cfg.Role = "role"
				cfg.TrainingData = "/data/train.csv"
			},
			expect: func(t *testing.T, err error) {
				assert := assert.New(t)
				assert.EqualError(err, `invalid scheme "" of object url /data/train.csv`)
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

func TestConfig_Convert(t *testing.T) {
	assert := assert.New(t)

	cfg := New()
	assert.NoError(cfg.Convert())
	assert.Equal("s3://my-sagemaker-model-bucket/train.csv", cfg.TrainingData)
	assert.Equal("s3://my-sagemaker-model-bucket/", cfg.OutputPath)

	cfg = New()
	cfg.TrainingData = "s3://foo/data/train.csv"
	cfg.OutputPath = "s3://foo/output"
	assert.NoError(cfg.Convert())
	assert.Equal("s3://foo/data/train.csv", cfg.TrainingData)
	assert.Equal("s3://foo/output/", cfg.OutputPath)
}
