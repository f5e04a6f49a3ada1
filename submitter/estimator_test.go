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

package submitter

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/stretchr/testify/assert"

	"github.com/mlglue/linreg/submitter/config"
)

func testConfig() *config.Config {
	cfg := config.New()
	cfg.Role = "arn:aws:iam::123456789012:role/sagemaker-execution"
	_ = cfg.Convert()
	return cfg
}

func TestNewEstimator(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(cfg *config.Config)
		region string
		expect func(t *testing.T, e *Estimator, err error)
	}{
		{
			name:   "resolve framework image",
			mock:   func(cfg *config.Config) {},
			region: "us-east-1",
			expect: func(t *testing.T, e *Estimator, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("683313688378.dkr.ecr.us-east-1.amazonaws.com/sagemaker-scikit-learn:0.23-1-cpu-py3", e.Image)
				assert.Equal("train.py", e.Program.EntryPoint)
				assert.Equal("us-east-1", e.Program.Region)
				assert.Equal("s3://my-sagemaker-model-bucket/train.csv", e.TrainingData)
				assert.Equal("s3://my-sagemaker-model-bucket/", e.OutputPath)
			},
		},
		{
			name: "image override",
			mock: func(cfg *config.Config) {
				cfg.Estimator.Image = "123456789012.dkr.ecr.moon-1.amazonaws.com/linreg:latest"
			},
			region: "moon-1",
			expect: func(t *testing.T, e *Estimator, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("123456789012.dkr.ecr.moon-1.amazonaws.com/linreg:latest", e.Image)
			},
		},
		{
			name:   "unknown region",
			mock:   func(cfg *config.Config) {},
			region: "moon-1",
			expect: func(t *testing.T, e *Estimator, err error) {
				assert := assert.New(t)
				assert.EqualError(err, `no framework image in region "moon-1"`)
				assert.Nil(e)
			},
		},
		{
			name: "entry point path without source dir",
			mock: func(cfg *config.Config) {
				cfg.Estimator.EntryPoint = "/src/scripts/train.py"
			},
			region: "us-east-1",
			expect: func(t *testing.T, e *Estimator, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("train.py", e.Program.EntryPoint)
			},
		},
		{
			name: "entry point path in source dir",
			mock: func(cfg *config.Config) {
				cfg.Estimator.SourceDir = "/src"
				cfg.Estimator.EntryPoint = "scripts/train.py"
			},
			region: "us-east-1",
			expect: func(t *testing.T, e *Estimator, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("scripts/train.py", e.Program.EntryPoint)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mock(cfg)
			e, err := NewEstimator(cfg, tc.region)
			tc.expect(t, e, err)
		})
	}
}

func TestEstimator_BuildInput(t *testing.T) {
	assert := assert.New(t)
	e, err := NewEstimator(testConfig(), "us-east-1")
	assert.NoError(err)
	e.Program.SubmitDirectory = "s3://my-sagemaker-model-bucket/job/source/sourcedir.tar.gz"

	input, err := e.BuildInput("job")
	assert.NoError(err)
	assert.NoError(input.Validate())

	assert.Equal("job", aws.StringValue(input.TrainingJobName))
	assert.Equal("arn:aws:iam::123456789012:role/sagemaker-execution", aws.StringValue(input.RoleArn))
	assert.Equal("File", aws.StringValue(input.AlgorithmSpecification.TrainingInputMode))
	assert.Equal(map[string]string{
		"sagemaker_program":             `"train.py"`,
		"sagemaker_submit_directory":    `"s3://my-sagemaker-model-bucket/job/source/sourcedir.tar.gz"`,
		"sagemaker_region":              `"us-east-1"`,
		"sagemaker_container_log_level": "20",
	}, aws.StringValueMap(input.HyperParameters))

	assert.Len(input.InputDataConfig, 1)
	channel := input.InputDataConfig[0]
	assert.Equal(TrainingChannel, aws.StringValue(channel.ChannelName))
	assert.Equal("s3://my-sagemaker-model-bucket/train.csv", aws.StringValue(channel.DataSource.S3DataSource.S3Uri))
	assert.Equal("S3Prefix", aws.StringValue(channel.DataSource.S3DataSource.S3DataType))
	assert.Equal("FullyReplicated", aws.StringValue(channel.DataSource.S3DataSource.S3DataDistributionType))

	assert.Equal("s3://my-sagemaker-model-bucket/", aws.StringValue(input.OutputDataConfig.S3OutputPath))
	assert.Equal("ml.m5.large", aws.StringValue(input.ResourceConfig.InstanceType))
	assert.Equal(int64(1), aws.Int64Value(input.ResourceConfig.InstanceCount))
	assert.Equal(int64(30), aws.Int64Value(input.ResourceConfig.VolumeSizeInGB))
	assert.Equal(int64((24 * time.Hour).Seconds()), aws.Int64Value(input.StoppingCondition.MaxRuntimeInSeconds))
}
