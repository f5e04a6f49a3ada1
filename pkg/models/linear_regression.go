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

package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
)

const (
	// ModelFileName is the file name of model artifact in model directory.
	ModelFileName = "model.json"
)

// LinearRegression linear regression model struct.
type LinearRegression struct {
	// Features are the names of input columns, in coefficient order.
	Features []string `json:"features"`

	// Target is the name of label column.
	Target string `json:"target"`

	// Coefficients are the weights of features.
	Coefficients []float64 `json:"coefficients"`

	// Intercept is the independent term.
	Intercept float64 `json:"intercept"`

	// Fitted indicates the parameters are trained.
	Fitted bool `json:"fitted"`
}

// NewLinearRegression return an instance of linear regression model.
func NewLinearRegression(features []string, target string) *LinearRegression {
	return &LinearRegression{
		Features: append([]string(nil), features...),
		Target:   target,
	}
}

// Fit estimates parameters with ordinary least squares.
//
// Features and target are centered, the coefficients are the minimum-norm
// least squares solution of the centered system and the intercept restores
// the means. Collinear or constant features get the minimum-norm weights
// instead of failing.
func (lr *LinearRegression) Fit(x *mat.Dense, y *mat.VecDense) error {
	rows, cols := x.Dims()
	if rows == 0 {
		return errors.New("no records to fit")
	}

	if y.Len() != rows {
		return fmt.Errorf("got %d records and %d targets", rows, y.Len())
	}

	if cols != len(lr.Features) {
		return fmt.Errorf("got %d feature columns, expect %d", cols, len(lr.Features))
	}

	xMean := make([]float64, cols)
	for j := 0; j < cols; j++ {
		xMean[j] = mean(mat.Col(nil, j, x))
	}
	yMean := mean(y.RawVector().Data)

	centered := mat.NewDense(rows, cols, nil)
	centered.Apply(func(i, j int, v float64) float64 {
		return v - xMean[j]
	}, x)

	yc := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		yc.SetVec(i, y.AtVec(i)-yMean)
	}

	coefficients := make([]float64, cols)
	var svd mat.SVD
	if !svd.Factorize(centered, mat.SVDThin) {
		return errors.New("singular value decomposition failed")
	}

	rcond := math.Nextafter(1, 2) - 1
	rcond *= float64(max(rows, cols))
	if rank := svd.Rank(rcond); rank > 0 {
		var solution mat.VecDense
		svd.SolveVecTo(&solution, yc, rank)
		copy(coefficients, solution.RawVector().Data)
	}

	intercept := yMean
	for j, c := range coefficients {
		intercept -= c * xMean[j]
	}

	for _, v := range append([]float64{intercept}, coefficients...) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.New("model NAN")
		}
	}

	lr.Coefficients = coefficients
	lr.Intercept = intercept
	lr.Fitted = true
	return nil
}

// Predict use parameters of model to predict one feature vector.
func (lr *LinearRegression) Predict(features []float64) (float64, error) {
	if !lr.Fitted {
		return 0, errors.New("no fitted model")
	}

	if len(features) != len(lr.Coefficients) {
		return 0, fmt.Errorf("got %d features, expect %d", len(features), len(lr.Coefficients))
	}

	prediction := lr.Intercept
	for i, v := range features {
		prediction += v * lr.Coefficients[i]
	}

	return prediction, nil
}

// PredictBatch predicts every row of x.
func (lr *LinearRegression) PredictBatch(x mat.Matrix) ([]float64, error) {
	rows, _ := x.Dims()
	predictions := make([]float64, rows)
	for i := 0; i < rows; i++ {
		prediction, err := lr.Predict(mat.Row(nil, i, x))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		predictions[i] = prediction
	}

	return predictions, nil
}

// Save writes model to the file.
func (lr *LinearRegression) Save(path string) error {
	if !lr.Fitted {
		return errors.New("no fitted model")
	}

	data, err := json.MarshalIndent(lr, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Load reads a fitted model from the file.
func Load(path string) (*LinearRegression, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lr := &LinearRegression{}
	if err := json.Unmarshal(data, lr); err != nil {
		return nil, fmt.Errorf("decode model %s: %w", path, err)
	}

	if !lr.Fitted {
		return nil, fmt.Errorf("model %s is not fitted", path)
	}

	if len(lr.Features) == 0 {
		return nil, fmt.Errorf("model %s has no features", path)
	}

	if len(lr.Coefficients) != len(lr.Features) {
		return nil, fmt.Errorf("model %s has %d coefficients for %d features", path, len(lr.Coefficients), len(lr.Features))
	}

	return lr, nil
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}
