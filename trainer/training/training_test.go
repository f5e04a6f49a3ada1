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

package training

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mlglue/linreg/pkg/dataset"
)

func TestTraining_New(t *testing.T) {
	tests := []struct {
		name    string
		options []Option
		expect  func(t *testing.T, tr Training)
	}{
		{
			name: "new training",
			expect: func(t *testing.T, tr Training) {
				assert := assert.New(t)
				assert.Equal(reflect.TypeOf(tr).Elem().Name(), "training")
				assert.Equal(dataset.DefaultFeatures, tr.(*training).features)
				assert.Equal(dataset.Target, tr.(*training).target)
			},
		},
		{
			name:    "new training with features",
			options: []Option{WithFeatures([]string{"feature1"}, "feature2")},
			expect: func(t *testing.T, tr Training) {
				assert := assert.New(t)
				assert.Equal([]string{"feature1"}, tr.(*training).features)
				assert.Equal("feature2", tr.(*training).target)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.expect(t, New(tc.options...))
		})
	}
}

func TestTraining_Train(t *testing.T) {
	tests := []struct {
		name      string
		trainFile string
		ctx       func() context.Context
		expect    func(t *testing.T, result *Result, err error)
	}{
		{
			name:      "train model",
			trainFile: "./testdata/train.csv",
			ctx:       context.Background,
			expect: func(t *testing.T, result *Result, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(3, result.Records)
				assert.Len(result.Model.Coefficients, 2)
				assert.InDelta(1, result.Metrics.R2, 1e-9)

				prediction, err := result.Model.Predict([]float64{4, 1})
				assert.NoError(err)
				assert.InDelta(8, prediction, 1e-9)
			},
		},
		{
			name:      "target column is missing",
			trainFile: "./testdata/missing_target.csv",
			ctx:       context.Background,
			expect: func(t *testing.T, result *Result, err error) {
				assert := assert.New(t)
				assert.Error(err)
				assert.Contains(err.Error(), `column "target" not found`)
				assert.Nil(result)
			},
		},
		{
			name:      "context is canceled",
			trainFile: "./testdata/train.csv",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			expect: func(t *testing.T, result *Result, err error) {
				assert := assert.New(t)
				assert.ErrorIs(err, context.Canceled)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := New().Train(tc.ctx(), tc.trainFile)
			tc.expect(t, result, err)
		})
	}
}
