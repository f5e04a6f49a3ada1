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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlglue/linreg/pkg/models"
	"github.com/mlglue/linreg/trainer/config"
	"github.com/mlglue/linreg/trainer/storage"
	storagemocks "github.com/mlglue/linreg/trainer/storage/mocks"
	"github.com/mlglue/linreg/trainer/training"
	trainingmocks "github.com/mlglue/linreg/trainer/training/mocks"
)

var mockModel = &models.LinearRegression{
	Features:     []string{"feature1", "feature2"},
	Target:       "target",
	Coefficients: []float64{2, 0},
	Fitted:       true,
}

func TestTrainer_Run(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(mt *trainingmocks.MockTrainingMockRecorder, ms *storagemocks.MockStorageMockRecorder)
		expect func(t *testing.T, result *training.Result, err error)
	}{
		{
			name: "train and save model",
			mock: func(mt *trainingmocks.MockTrainingMockRecorder, ms *storagemocks.MockStorageMockRecorder) {
				gomock.InOrder(
					mt.Train(gomock.Any(), config.DefaultTrainFile).Return(&training.Result{Model: mockModel, Records: 3}, nil).Times(1),
					ms.SaveModel(mockModel).Return("/opt/ml/model/model.json", nil).Times(1),
				)
			},
			expect: func(t *testing.T, result *training.Result, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(mockModel, result.Model)
			},
		},
		{
			name: "train failed",
			mock: func(mt *trainingmocks.MockTrainingMockRecorder, ms *storagemocks.MockStorageMockRecorder) {
				mt.Train(gomock.Any(), config.DefaultTrainFile).Return(nil, errors.New("foo")).Times(1)
			},
			expect: func(t *testing.T, result *training.Result, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "train model: foo")
				assert.Nil(result)
			},
		},
		{
			name: "save model failed",
			mock: func(mt *trainingmocks.MockTrainingMockRecorder, ms *storagemocks.MockStorageMockRecorder) {
				gomock.InOrder(
					mt.Train(gomock.Any(), config.DefaultTrainFile).Return(&training.Result{Model: mockModel, Records: 3}, nil).Times(1),
					ms.SaveModel(mockModel).Return("", errors.New("bar")).Times(1),
				)
			},
			expect: func(t *testing.T, result *training.Result, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "save model: bar")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			mt := trainingmocks.NewMockTraining(ctl)
			ms := storagemocks.NewMockStorage(ctl)
			tc.mock(mt.EXPECT(), ms.EXPECT())

			result, err := NewWith(config.New(), mt, ms).Run(context.Background())
			tc.expect(t, result, err)
		})
	}
}

func TestTrainer_RunWithFiles(t *testing.T) {
	require := require.New(t)
	cfg := config.New()
	cfg.TrainFile = "./testdata/train.csv"
	cfg.ModelDir = filepath.Join(t.TempDir(), "model")

	_, err := New(cfg).Run(context.Background())
	require.NoError(err)

	lr, err := models.Load(filepath.Join(cfg.ModelDir, models.ModelFileName))
	require.NoError(err)
	assert := assert.New(t)
	assert.Len(lr.Coefficients, 2)
	prediction, err := lr.Predict([]float64{4, 1})
	assert.NoError(err)
	assert.InDelta(8, prediction, 1e-9)
}

func TestTrainer_RunMissingFile(t *testing.T) {
	cfg := config.New()
	cfg.TrainFile = filepath.Join(t.TempDir(), "train.csv")
	cfg.ModelDir = t.TempDir()

	_, err := New(cfg).Run(context.Background())
	assert := assert.New(t)
	assert.Error(err)
	_, statErr := os.Stat(filepath.Join(cfg.ModelDir, models.ModelFileName))
	assert.True(os.IsNotExist(statErr))
}

func TestTrainer_Predict(t *testing.T) {
	tests := []struct {
		name   string
		mock   func(ms *storagemocks.MockStorageMockRecorder)
		expect func(t *testing.T, n int, err error)
	}{
		{
			name: "predict records",
			mock: func(ms *storagemocks.MockStorageMockRecorder) {
				gomock.InOrder(
					ms.LoadModel().Return(mockModel, nil).Times(1),
					ms.CreatePredictions("out.csv", []*storage.Prediction{
						{Feature1: 4, Feature2: 1, Prediction: 8},
						{Feature1: 1.5, Feature2: 1, Prediction: 3},
					}).Return(nil).Times(1),
				)
			},
			expect: func(t *testing.T, n int, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(2, n)
			},
		},
		{
			name: "load model failed",
			mock: func(ms *storagemocks.MockStorageMockRecorder) {
				ms.LoadModel().Return(nil, errors.New("foo")).Times(1)
			},
			expect: func(t *testing.T, n int, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "load model: foo")
			},
		},
		{
			name: "model has other features",
			mock: func(ms *storagemocks.MockStorageMockRecorder) {
				ms.LoadModel().Return(&models.LinearRegression{
					Features:     []string{"feature1"},
					Coefficients: []float64{1},
					Fitted:       true,
				}, nil).Times(1)
			},
			expect: func(t *testing.T, n int, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "batch prediction requires features [feature1 feature2], model has [feature1]")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()
			mt := trainingmocks.NewMockTraining(ctl)
			ms := storagemocks.NewMockStorage(ctl)
			tc.mock(ms.EXPECT())

			n, err := NewWith(config.New(), mt, ms).Predict(context.Background(), "./testdata/predict.csv", "out.csv")
			tc.expect(t, n, err)
		})
	}
}
