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

package framework

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/stretchr/testify/assert"
)

func TestImageURI(t *testing.T) {
	tests := []struct {
		name    string
		version string
		region  string
		expect  func(t *testing.T, uri string, err error)
	}{
		{
			name:    "default version in us-east-1",
			version: DefaultVersion,
			region:  "us-east-1",
			expect: func(t *testing.T, uri string, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("683313688378.dkr.ecr.us-east-1.amazonaws.com/sagemaker-scikit-learn:0.23-1-cpu-py3", uri)
			},
		},
		{
			name:    "newer version in eu-west-1",
			version: "1.2-1",
			region:  "eu-west-1",
			expect: func(t *testing.T, uri string, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal("141502667606.dkr.ecr.eu-west-1.amazonaws.com/sagemaker-scikit-learn:1.2-1-cpu-py3", uri)
			},
		},
		{
			name:    "unsupported version",
			version: "0.1",
			region:  "us-east-1",
			expect: func(t *testing.T, uri string, err error) {
				assert := assert.New(t)
				assert.ErrorContains(err, `unsupported framework version "0.1"`)
				assert.Empty(uri)
			},
		},
		{
			name:    "unknown region",
			version: DefaultVersion,
			region:  "moon-1",
			expect: func(t *testing.T, uri string, err error) {
				assert := assert.New(t)
				assert.EqualError(err, `no framework image in region "moon-1"`)
				assert.Empty(uri)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uri, err := ImageURI(tc.version, tc.region)
			tc.expect(t, uri, err)
		})
	}
}

func TestProgram_Hyperparameters(t *testing.T) {
	assert := assert.New(t)
	p := &Program{
		EntryPoint:      "train.py",
		SubmitDirectory: "s3://bucket/job/source/sourcedir.tar.gz",
		Region:          "us-east-1",
		LogLevel:        DefaultLogLevel,
	}

	hyperparameters, err := p.Hyperparameters()
	assert.NoError(err)
	assert.Equal(map[string]string{
		"sagemaker_program":             `"train.py"`,
		"sagemaker_submit_directory":    `"s3://bucket/job/source/sourcedir.tar.gz"`,
		"sagemaker_region":              `"us-east-1"`,
		"sagemaker_container_log_level": "20",
	}, aws.StringValueMap(hyperparameters))

	p.SubmitDirectory = ""
	hyperparameters, err = p.Hyperparameters()
	assert.NoError(err)
	assert.NotContains(hyperparameters, "sagemaker_submit_directory")
}

func TestProgram_Environment(t *testing.T) {
	p := &Program{
		EntryPoint:      "train.py",
		SubmitDirectory: "s3://bucket/model/sourcedir.tar.gz",
		Region:          "us-west-2",
		LogLevel:        DefaultLogLevel,
	}

	assert.Equal(t, map[string]string{
		"SAGEMAKER_PROGRAM":             "train.py",
		"SAGEMAKER_SUBMIT_DIRECTORY":    "s3://bucket/model/sourcedir.tar.gz",
		"SAGEMAKER_REGION":              "us-west-2",
		"SAGEMAKER_CONTAINER_LOG_LEVEL": "20",
	}, aws.StringValueMap(p.Environment()))
}

func TestName(t *testing.T) {
	assert := assert.New(t)
	now := time.Date(2024, 1, 2, 3, 4, 5, 678*int(time.Millisecond), time.UTC)
	assert.Equal("sagemaker-scikit-learn-2024-01-02-03-04-05-678", Name("sagemaker-scikit-learn", now))

	local := now.In(time.FixedZone("UTC+8", 8*60*60))
	assert.Equal("sagemaker-scikit-learn-2024-01-02-03-04-05-678", Name("sagemaker-scikit-learn", local))

	long := Name("a-very-long-base-name-that-does-not-fit-into-the-resource-name", now)
	assert.Len(long, maxNameLength)
	assert.Equal("a-very-long-base-name-that-does-not-fit-2024-01-02-03-04-05-678", long)
}
