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

package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlglue/linreg/pkg/models"
)

var mockModel = &models.LinearRegression{
	Features:     []string{"feature1", "feature2"},
	Target:       "target",
	Coefficients: []float64{2, 0},
	Intercept:    0,
	Fitted:       true,
}

func TestStorage_New(t *testing.T) {
	assert := assert.New(t)
	s := New(t.TempDir())
	assert.Equal(reflect.TypeOf(s).Elem().Name(), "storage")
}

func TestStorage_SaveModel(t *testing.T) {
	tests := []struct {
		name   string
		model  *models.LinearRegression
		expect func(t *testing.T, s Storage, path string, err error)
	}{
		{
			name:  "save fitted model into a new directory",
			model: mockModel,
			expect: func(t *testing.T, s Storage, path string, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(s.ModelPath(), path)
				assert.Equal(models.ModelFileName, filepath.Base(path))

				lr, err := s.LoadModel()
				assert.NoError(err)
				assert.Equal(mockModel, lr)
			},
		},
		{
			name:  "save unfitted model",
			model: models.NewLinearRegression([]string{"feature1", "feature2"}, "target"),
			expect: func(t *testing.T, s Storage, path string, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "no fitted model")
				assert.Empty(path)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New(filepath.Join(t.TempDir(), "model"))
			path, err := s.SaveModel(tc.model)
			tc.expect(t, s, path, err)
		})
	}
}

func TestStorage_LoadModelNotExist(t *testing.T) {
	_, err := New(t.TempDir()).LoadModel()
	assert.True(t, os.IsNotExist(err))
}

func TestStorage_CreatePredictions(t *testing.T) {
	require := require.New(t)
	s := New(t.TempDir())
	filename := filepath.Join(t.TempDir(), "predictions.csv")

	require.NoError(s.CreatePredictions(filename, []*Prediction{
		{Feature1: 4, Feature2: 1, Prediction: 8},
		{Feature1: 1.5, Feature2: 1, Prediction: 3},
	}))

	data, err := os.ReadFile(filename)
	require.NoError(err)
	assert.Equal(t, "feature1,feature2,prediction\n4,1,8\n1.5,1,3\n", string(data))
}
