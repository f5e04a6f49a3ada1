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

//go:generate mockgen -destination mocks/storage_mock.go -source storage.go -package mocks

package storage

import (
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/mlglue/linreg/pkg/models"
)

// Prediction is a scored record of batch prediction.
type Prediction struct {
	Feature1   float64 `csv:"feature1"`
	Feature2   float64 `csv:"feature2"`
	Prediction float64 `csv:"prediction"`
}

// Storage is the interface used for model artifacts.
type Storage interface {
	// SaveModel writes the fitted model into the model directory, it returns the path of artifact.
	SaveModel(*models.LinearRegression) (string, error)

	// LoadModel reads the fitted model from the model directory.
	LoadModel() (*models.LinearRegression, error)

	// ModelPath returns the path of model artifact.
	ModelPath() string

	// CreatePredictions writes predictions into the csv file.
	CreatePredictions(string, []*Prediction) error
}

type storage struct {
	modelDir string
}

// New returns a new Storage instance.
func New(modelDir string) Storage {
	return &storage{modelDir: modelDir}
}

// SaveModel writes the fitted model into the model directory, it returns the path of artifact.
func (s *storage) SaveModel(lr *models.LinearRegression) (string, error) {
	if err := os.MkdirAll(s.modelDir, 0755); err != nil {
		return "", err
	}

	path := s.ModelPath()
	if err := lr.Save(path); err != nil {
		return "", err
	}

	return path, nil
}

// LoadModel reads the fitted model from the model directory.
func (s *storage) LoadModel() (*models.LinearRegression, error) {
	return models.Load(s.ModelPath())
}

// ModelPath returns the path of model artifact.
func (s *storage) ModelPath() string {
	return filepath.Join(s.modelDir, models.ModelFileName)
}

// CreatePredictions writes predictions into the csv file, the file is truncated if exists.
func (s *storage) CreatePredictions(filename string, predictions []*Prediction) error {
	file, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	return gocsv.MarshalFile(&predictions, file)
}
