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
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sagemaker"

	"github.com/mlglue/linreg/pkg/framework"
	"github.com/mlglue/linreg/submitter/config"
)

const (
	// TrainingChannel is the input channel of training data, mounted at
	// /opt/ml/input/data/training inside the container.
	TrainingChannel = "training"
)

// Estimator describes a training job of the framework container.
type Estimator struct {
	Image         string
	Role          string
	Program       framework.Program
	InstanceType  string
	InstanceCount int
	VolumeSizeGB  int
	MaxRuntime    time.Duration
	TrainingData  string
	OutputPath    string
}

// NewEstimator returns the estimator of the config in region, the framework
// image is resolved unless the config overrides it.
func NewEstimator(cfg *config.Config, region string) (*Estimator, error) {
	image := cfg.Estimator.Image
	if image == "" {
		var err error
		if image, err = framework.ImageURI(cfg.Estimator.FrameworkVersion, region); err != nil {
			return nil, err
		}
	}

	// Without source directory the entry point is packed at the tarball root.
	entryPoint := cfg.Estimator.EntryPoint
	if cfg.Estimator.SourceDir == "" {
		entryPoint = filepath.Base(entryPoint)
	}

	return &Estimator{
		Image: image,
		Role:  cfg.Role,
		Program: framework.Program{
			EntryPoint:      entryPoint,
			SubmitDirectory: cfg.Estimator.SubmitDirectory,
			Region:          region,
			LogLevel:        framework.DefaultLogLevel,
		},
		InstanceType:  cfg.Estimator.InstanceType,
		InstanceCount: cfg.Estimator.InstanceCount,
		VolumeSizeGB:  cfg.Estimator.VolumeSizeGB,
		MaxRuntime:    cfg.Estimator.MaxRuntime,
		TrainingData:  cfg.TrainingData,
		OutputPath:    cfg.OutputPath,
	}, nil
}

// BuildInput returns the request creating the training job.
func (e *Estimator) BuildInput(jobName string) (*sagemaker.CreateTrainingJobInput, error) {
	hyperparameters, err := e.Program.Hyperparameters()
	if err != nil {
		return nil, err
	}

	return &sagemaker.CreateTrainingJobInput{
		TrainingJobName: aws.String(jobName),
		RoleArn:         aws.String(e.Role),
		AlgorithmSpecification: &sagemaker.AlgorithmSpecification{
			TrainingImage:     aws.String(e.Image),
			TrainingInputMode: aws.String(sagemaker.TrainingInputModeFile),
		},
		HyperParameters: hyperparameters,
		InputDataConfig: []*sagemaker.Channel{
			{
				ChannelName: aws.String(TrainingChannel),
				DataSource: &sagemaker.DataSource{
					S3DataSource: &sagemaker.S3DataSource{
						S3DataType:             aws.String(sagemaker.S3DataTypeS3prefix),
						S3Uri:                  aws.String(e.TrainingData),
						S3DataDistributionType: aws.String(sagemaker.S3DataDistributionFullyReplicated),
					},
				},
			},
		},
		OutputDataConfig: &sagemaker.OutputDataConfig{
			S3OutputPath: aws.String(e.OutputPath),
		},
		ResourceConfig: &sagemaker.ResourceConfig{
			InstanceType:   aws.String(e.InstanceType),
			InstanceCount:  aws.Int64(int64(e.InstanceCount)),
			VolumeSizeInGB: aws.Int64(int64(e.VolumeSizeGB)),
		},
		StoppingCondition: &sagemaker.StoppingCondition{
			MaxRuntimeInSeconds: aws.Int64(int64(e.MaxRuntime / time.Second)),
		},
	}, nil
}
