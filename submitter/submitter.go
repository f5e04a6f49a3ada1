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

//go:generate mockgen -destination mocks/submitter_mock.go -source submitter.go -package mocks

package submitter

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/sagemaker"
	"github.com/pkg/errors"

	logger "github.com/mlglue/linreg/internal/logger"
	"github.com/mlglue/linreg/pkg/archive"
	"github.com/mlglue/linreg/pkg/framework"
	"github.com/mlglue/linreg/pkg/objectstorage"
	"github.com/mlglue/linreg/submitter/config"
)

// SageMaker is the part of the sagemaker client running training jobs.
type SageMaker interface {
	CreateTrainingJobWithContext(aws.Context, *sagemaker.CreateTrainingJobInput, ...request.Option) (*sagemaker.CreateTrainingJobOutput, error)
	WaitUntilTrainingJobCompletedOrStoppedWithContext(aws.Context, *sagemaker.DescribeTrainingJobInput, ...request.WaiterOption) error
	DescribeTrainingJobWithContext(aws.Context, *sagemaker.DescribeTrainingJobInput, ...request.Option) (*sagemaker.DescribeTrainingJobOutput, error)
}

// Job is the state of a submitted training job.
type Job struct {
	Name           string
	Arn            string
	Status         string
	ModelArtifacts string
	FailureReason  string
}

// Submitter submits training jobs of the linear regression model.
type Submitter struct {
	config    *config.Config
	region    string
	sagemaker SageMaker
	storage   objectstorage.ObjectStorage
	now       func() time.Time
}

// Option is a functional option for configuring the submitter.
type Option func(s *Submitter)

// WithClock sets the clock naming training jobs.
func WithClock(now func() time.Time) Option {
	return func(s *Submitter) {
		s.now = now
	}
}

// New returns a new Submitter of the config in region.
func New(cfg *config.Config, region string, sm SageMaker, storage objectstorage.ObjectStorage, options ...Option) *Submitter {
	s := &Submitter{
		config:    cfg,
		region:    region,
		sagemaker: sm,
		storage:   storage,
		now:       time.Now,
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// Submit starts a training job and, when waiting is configured, blocks until
// the job is completed or stopped. A job ending in any state other than
// Completed returns an error with the failure reason.
func (s *Submitter) Submit(ctx context.Context) (*Job, error) {
	estimator, err := NewEstimator(s.config, s.region)
	if err != nil {
		return nil, err
	}

	jobName := framework.Name(s.config.Estimator.JobBaseName, s.now())
	log := logger.WithTrainingJob(jobName)

	if s.config.UploadTrainingFile != "" {
		url, err := objectstorage.PutFile(ctx, s.storage, s.config.UploadTrainingFile, estimator.TrainingData)
		if err != nil {
			return nil, errors.Wrap(err, "upload training file")
		}
		estimator.TrainingData = url
		log.Infof("training file %s uploaded to %s", s.config.UploadTrainingFile, url)
	} else if err := s.checkTrainingData(ctx, estimator.TrainingData); err != nil {
		return nil, err
	}

	if estimator.Program.SubmitDirectory == "" {
		submitDirectory, err := s.uploadSources(ctx, jobName)
		if err != nil {
			return nil, errors.Wrap(err, "upload sources")
		}
		estimator.Program.SubmitDirectory = submitDirectory
		log.Infof("sources uploaded to %s", submitDirectory)
	}

	input, err := estimator.BuildInput(jobName)
	if err != nil {
		return nil, err
	}

	out, err := s.sagemaker.CreateTrainingJobWithContext(ctx, input)
	if err != nil {
		return nil, errors.Wrap(err, "create training job")
	}
	log.Infof("training job created with image %s", estimator.Image)

	job := &Job{
		Name:   jobName,
		Arn:    aws.StringValue(out.TrainingJobArn),
		Status: sagemaker.TrainingJobStatusInProgress,
	}
	if !s.config.Wait {
		return job, nil
	}

	return s.wait(ctx, job)
}

func (s *Submitter) wait(ctx context.Context, job *Job) (*Job, error) {
	log := logger.WithTrainingJob(job.Name)
	input := &sagemaker.DescribeTrainingJobInput{TrainingJobName: aws.String(job.Name)}

	interval := s.config.PollInterval
	attempts := int(s.config.Estimator.MaxRuntime/interval) + 1
	werr := s.sagemaker.WaitUntilTrainingJobCompletedOrStoppedWithContext(ctx, input,
		request.WithWaiterDelay(request.ConstantWaiterDelay(interval)),
		request.WithWaiterMaxAttempts(attempts),
	)

	// The waiter fails on Failed status, describe the job for the reason.
	out, err := s.sagemaker.DescribeTrainingJobWithContext(ctx, input)
	if err != nil {
		if werr != nil {
			return nil, errors.Wrap(werr, "wait training job")
		}
		return nil, errors.Wrap(err, "describe training job")
	}

	job.Status = aws.StringValue(out.TrainingJobStatus)
	job.FailureReason = aws.StringValue(out.FailureReason)
	if out.ModelArtifacts != nil {
		job.ModelArtifacts = aws.StringValue(out.ModelArtifacts.S3ModelArtifacts)
	}

	switch job.Status {
	case sagemaker.TrainingJobStatusCompleted:
		log.Infof("training job completed, model artifacts %s", job.ModelArtifacts)
		return job, nil
	case sagemaker.TrainingJobStatusFailed, sagemaker.TrainingJobStatusStopped:
		return job, fmt.Errorf("training job %s %s: %s", job.Name, strings.ToLower(job.Status), job.FailureReason)
	default:
		if werr != nil {
			return job, errors.Wrap(werr, "wait training job")
		}
		return job, fmt.Errorf("training job %s is %s", job.Name, job.Status)
	}
}

// checkTrainingData fails fast when the training file is missing. A prefix
// url is a channel of many objects and is left to the platform.
func (s *Submitter) checkTrainingData(ctx context.Context, url string) error {
	bucket, key, err := objectstorage.ParseURL(url)
	if err != nil {
		return err
	}

	if key == "" || strings.HasSuffix(key, "/") {
		return nil
	}

	ok, err := s.storage.IsObjectExist(ctx, bucket, key)
	if err != nil {
		return errors.Wrap(err, "check training data")
	}

	if !ok {
		return fmt.Errorf("training data %s not found", url)
	}

	return nil
}

// uploadSources packs the entry point with the source directory and uploads
// it under the job prefix of the output path.
func (s *Submitter) uploadSources(ctx context.Context, jobName string) (string, error) {
	bucket, prefix, err := objectstorage.ParseURL(s.config.OutputPath)
	if err != nil {
		return "", err
	}

	url := objectstorage.URL(bucket, path.Join(prefix, jobName, "source", archive.SourceFileName))
	if err := framework.UploadSources(ctx, s.storage, s.config.Estimator.EntryPoint, s.config.Estimator.SourceDir, url); err != nil {
		return "", err
	}

	return url, nil
}
