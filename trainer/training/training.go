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

//go:generate mockgen -destination mocks/training_mock.go -source training.go -package mocks

package training

import (
	"context"

	logger "github.com/mlglue/linreg/internal/logger"
	"github.com/mlglue/linreg/pkg/dataset"
	"github.com/mlglue/linreg/pkg/models"
)

// Result is the outcome of a training run.
type Result struct {
	// Model is the fitted model.
	Model *models.LinearRegression

	// Metrics are the errors of model on the training records.
	Metrics *models.Metrics

	// Records is the number of training records.
	Records int
}

// Training defines the interface to train linear regression model.
type Training interface {
	// Train fits the model with records of the csv file.
	Train(context.Context, string) (*Result, error)
}

// training implements Training interface.
type training struct {
	features []string
	target   string
}

// Option is a functional option for training.
type Option func(t *training)

// WithFeatures sets the feature columns and the target column.
func WithFeatures(features []string, target string) Option {
	return func(t *training) {
		t.features = features
		t.target = target
	}
}

// New returns a new Training.
func New(options ...Option) Training {
	t := &training{
		features: dataset.DefaultFeatures,
		target:   dataset.Target,
	}

	for _, opt := range options {
		opt(t)
	}

	return t
}

// Train fits the model with records of the csv file.
func (t *training) Train(ctx context.Context, trainFile string) (*Result, error) {
	d, err := dataset.Load(trainFile, t.features, t.target)
	if err != nil {
		return nil, err
	}
	logger.Infof("loaded %d records from %s", d.Rows(), trainFile)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	model := models.NewLinearRegression(d.Features(), d.Target())
	if err := model.Fit(d.X(), d.Y()); err != nil {
		return nil, err
	}

	metrics, err := model.Evaluate(d.X(), d.Y())
	if err != nil {
		return nil, err
	}
	logger.Infof("fitted model coefficients %v intercept %f, mae %f mse %f rmse %f r2 %f",
		model.Coefficients, model.Intercept, metrics.MAE, metrics.MSE, metrics.RMSE, metrics.R2)

	return &Result{
		Model:   model,
		Metrics: metrics,
		Records: d.Rows(),
	}, nil
}
