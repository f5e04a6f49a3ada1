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

//go:generate mockgen -destination mocks/deployer_mock.go -source deployer.go -package mocks

package deployer

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/sagemaker"
	"github.com/pkg/errors"

	"github.com/mlglue/linreg/deployer/config"
	logger "github.com/mlglue/linreg/internal/logger"
	"github.com/mlglue/linreg/pkg/archive"
	"github.com/mlglue/linreg/pkg/digest"
	"github.com/mlglue/linreg/pkg/framework"
	"github.com/mlglue/linreg/pkg/objectstorage"
)

// SageMaker is the part of the sagemaker client hosting models.
type SageMaker interface {
	CreateModelWithContext(aws.Context, *sagemaker.CreateModelInput, ...request.Option) (*sagemaker.CreateModelOutput, error)
	CreateEndpointConfigWithContext(aws.Context, *sagemaker.CreateEndpointConfigInput, ...request.Option) (*sagemaker.CreateEndpointConfigOutput, error)
	CreateEndpointWithContext(aws.Context, *sagemaker.CreateEndpointInput, ...request.Option) (*sagemaker.CreateEndpointOutput, error)
	WaitUntilEndpointInServiceWithContext(aws.Context, *sagemaker.DescribeEndpointInput, ...request.WaiterOption) error
	DescribeEndpointWithContext(aws.Context, *sagemaker.DescribeEndpointInput, ...request.Option) (*sagemaker.DescribeEndpointOutput, error)
}

// Endpoint is the state of a deployed endpoint.
type Endpoint struct {
	Name          string
	Arn           string
	ConfigName    string
	ModelName     string
	Status        string
	FailureReason string
}

// Deployer hosts the trained model behind an endpoint.
type Deployer struct {
	config    *config.Config
	region    string
	sagemaker SageMaker
	storage   objectstorage.ObjectStorage
	now       func() time.Time
}

// Option is a functional option for configuring the deployer.
type Option func(d *Deployer)

// WithClock sets the clock naming models and endpoints.
func WithClock(now func() time.Time) Option {
	return func(d *Deployer) {
		d.now = now
	}
}

// New returns a new Deployer of the config in region.
func New(cfg *config.Config, region string, sm SageMaker, storage objectstorage.ObjectStorage, options ...Option) *Deployer {
	d := &Deployer{
		config:    cfg,
		region:    region,
		sagemaker: sm,
		storage:   storage,
		now:       time.Now,
	}

	for _, opt := range options {
		opt(d)
	}

	return d
}

// Deploy registers the model artifact, creates the endpoint config with a
// single variant and creates the endpoint. When waiting is configured it
// blocks until the endpoint is in service.
func (d *Deployer) Deploy(ctx context.Context) (*Endpoint, error) {
	image := d.config.Model.Image
	if image == "" {
		var err error
		if image, err = framework.ImageURI(d.config.Model.FrameworkVersion, d.region); err != nil {
			return nil, err
		}
	}

	modelName := framework.Name(d.config.BaseName, d.now())
	endpointName := d.config.EndpointName
	if endpointName == "" {
		endpointName = modelName
	}

	modelData := d.config.ModelData
	log := logger.WithModel(modelName, modelData)

	if d.config.UploadModel != "" {
		url, err := objectstorage.PutFile(ctx, d.storage, d.config.UploadModel, modelData)
		if err != nil {
			return nil, errors.Wrap(err, "upload model")
		}
		modelData = url
		log.Infof("model %s uploaded to %s", d.config.UploadModel, url)
	}

	if err := d.checkModelData(ctx, modelData); err != nil {
		return nil, err
	}

	program := framework.Program{
		EntryPoint:      d.config.Model.EntryPoint,
		SubmitDirectory: d.config.Model.SubmitDirectory,
		Region:          d.region,
		LogLevel:        framework.DefaultLogLevel,
	}

	if program.SubmitDirectory == "" {
		url, err := d.uploadSources(ctx, modelData, modelName)
		if err != nil {
			return nil, errors.Wrap(err, "upload sources")
		}
		program.SubmitDirectory = url
		log.Infof("sources uploaded to %s", url)
	}

	if d.config.Model.SourceDir == "" {
		program.EntryPoint = filepath.Base(program.EntryPoint)
	}

	if _, err := d.sagemaker.CreateModelWithContext(ctx, &sagemaker.CreateModelInput{
		ModelName:        aws.String(modelName),
		ExecutionRoleArn: aws.String(d.config.Role),
		PrimaryContainer: &sagemaker.ContainerDefinition{
			Image:        aws.String(image),
			ModelDataUrl: aws.String(modelData),
			Environment:  program.Environment(),
		},
	}); err != nil {
		return nil, errors.Wrap(err, "create model")
	}
	log.Infof("model created with image %s", image)

	if _, err := d.sagemaker.CreateEndpointConfigWithContext(ctx, &sagemaker.CreateEndpointConfigInput{
		EndpointConfigName: aws.String(endpointName),
		ProductionVariants: []*sagemaker.ProductionVariant{
			{
				VariantName:          aws.String(config.DefaultVariantName),
				ModelName:            aws.String(modelName),
				InstanceType:         aws.String(d.config.Model.InstanceType),
				InitialInstanceCount: aws.Int64(int64(d.config.Model.InstanceCount)),
				InitialVariantWeight: aws.Float64(1),
			},
		},
	}); err != nil {
		return nil, errors.Wrap(err, "create endpoint config")
	}

	out, err := d.sagemaker.CreateEndpointWithContext(ctx, &sagemaker.CreateEndpointInput{
		EndpointName:       aws.String(endpointName),
		EndpointConfigName: aws.String(endpointName),
	})
	if err != nil {
		return nil, errors.Wrap(err, "create endpoint")
	}

	endpoint := &Endpoint{
		Name:       endpointName,
		Arn:        aws.StringValue(out.EndpointArn),
		ConfigName: endpointName,
		ModelName:  modelName,
		Status:     sagemaker.EndpointStatusCreating,
	}
	logger.WithEndpoint(endpointName).Infof("endpoint %s created", endpoint.Arn)

	if !d.config.Wait {
		return endpoint, nil
	}

	if err := d.wait(ctx, endpoint); err != nil {
		return endpoint, err
	}

	logger.WithEndpoint(endpointName).Info("model deployed successfully")
	return endpoint, nil
}

// checkModelData fails when the model artifact is missing or carries a
// malformed digest.
func (d *Deployer) checkModelData(ctx context.Context, url string) error {
	bucket, key, err := objectstorage.ParseURL(url)
	if err != nil {
		return err
	}

	meta, ok, err := d.storage.GetObjectMetadata(ctx, bucket, key)
	if err != nil {
		return errors.Wrap(err, "check model data")
	}

	if !ok {
		return fmt.Errorf("model data %s not found", url)
	}

	// Artifacts uploaded by the deployer carry their digest.
	if meta.Digest != "" {
		if err := digest.Validate(meta.Digest); err != nil {
			return errors.Wrapf(err, "model data %s has invalid digest %q", url, meta.Digest)
		}
		logger.Debugf("model data %s digest %s", url, meta.Digest)
	}

	return nil
}

func (d *Deployer) wait(ctx context.Context, endpoint *Endpoint) error {
	input := &sagemaker.DescribeEndpointInput{EndpointName: aws.String(endpoint.Name)}

	interval := d.config.PollInterval
	attempts := int(d.config.Timeout/interval) + 1
	werr := d.sagemaker.WaitUntilEndpointInServiceWithContext(ctx, input,
		request.WithWaiterDelay(request.ConstantWaiterDelay(interval)),
		request.WithWaiterMaxAttempts(attempts),
	)

	// The waiter fails on Failed status, describe the endpoint for the reason.
	out, err := d.sagemaker.DescribeEndpointWithContext(ctx, input)
	if err != nil {
		if werr != nil {
			return errors.Wrap(werr, "wait endpoint")
		}
		return errors.Wrap(err, "describe endpoint")
	}

	endpoint.Status = aws.StringValue(out.EndpointStatus)
	endpoint.FailureReason = aws.StringValue(out.FailureReason)

	switch endpoint.Status {
	case sagemaker.EndpointStatusInService:
		return nil
	case sagemaker.EndpointStatusFailed:
		return fmt.Errorf("endpoint %s failed: %s", endpoint.Name, endpoint.FailureReason)
	default:
		if werr != nil {
			return errors.Wrap(werr, "wait endpoint")
		}
		return fmt.Errorf("endpoint %s is %s", endpoint.Name, endpoint.Status)
	}
}

// uploadSources packs the entry point with the source directory and uploads
// it next to the model artifact.
func (d *Deployer) uploadSources(ctx context.Context, modelData, modelName string) (string, error) {
	bucket, _, err := objectstorage.ParseURL(modelData)
	if err != nil {
		return "", err
	}

	url := objectstorage.URL(bucket, path.Join(modelName, archive.SourceFileName))
	if err := framework.UploadSources(ctx, d.storage, d.config.Model.EntryPoint, d.config.Model.SourceDir, url); err != nil {
		return "", err
	}

	return url, nil
}
