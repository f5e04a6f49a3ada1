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

package trainer

import (
	"context"
	"fmt"
	"reflect"

	"github.com/pkg/errors"

	logger "github.com/mlglue/linreg/internal/logger"
	"github.com/mlglue/linreg/pkg/dataset"
	"github.com/mlglue/linreg/trainer/config"
	"github.com/mlglue/linreg/trainer/storage"
	"github.com/mlglue/linreg/trainer/training"
)

type Trainer struct {
	// Trainer configuration.
	config *config.Config

	// Training interface.
	training training.Training

	// Storage interface.
	storage storage.Storage
}

// New returns a trainer with the default training and storage.
func New(cfg *config.Config) *Trainer {
	return NewWith(cfg, training.New(), storage.New(cfg.ModelDir))
}

// NewWith returns a trainer with the given training and storage.
func NewWith(cfg *config.Config, t training.Training, s storage.Storage) *Trainer {
	return &Trainer{
		config:   cfg,
		training: t,
		storage:  s,
	}
}

// Run trains the model with the train file and writes the model artifact.
func (t *Trainer) Run(ctx context.Context) (*training.Result, error) {
	result, err := t.training.Train(ctx, t.config.TrainFile)
	if err != nil {
		return nil, errors.Wrap(err, "train model")
	}

	path, err := t.storage.SaveModel(result.Model)
	if err != nil {
		return nil, errors.Wrap(err, "save model")
	}

	logger.Infof("model saved to %s", path)
	return result, nil
}

// Predict scores the records of input csv file with the saved model and
// writes them into output csv file, it returns the number of predictions.
func (t *Trainer) Predict(ctx context.Context, input, output string) (int, error) {
	model, err := t.storage.LoadModel()
	if err != nil {
		return 0, errors.Wrap(err, "load model")
	}

	if !reflect.DeepEqual(model.Features, dataset.DefaultFeatures) {
		return 0, fmt.Errorf("batch prediction requires features %v, model has %v", dataset.DefaultFeatures, model.Features)
	}

	d, err := dataset.Load(input, model.Features, "")
	if err != nil {
		return 0, err
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	values, err := model.PredictBatch(d.X())
	if err != nil {
		return 0, err
	}

	predictions := make([]*storage.Prediction, len(values))
	for i, v := range values {
		row := d.X().RawRowView(i)
		predictions[i] = &storage.Prediction{
			Feature1:   row[0],
			Feature2:   row[1],
			Prediction: v,
		}
	}

	if err := t.storage.CreatePredictions(output, predictions); err != nil {
		return 0, errors.Wrapf(err, "write predictions to %s", output)
	}

	logger.Infof("wrote %d predictions to %s", len(predictions), output)
	return len(predictions), nil
}
