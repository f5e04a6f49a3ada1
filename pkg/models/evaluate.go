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
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Metrics are the regression errors of a model on a dataset.
type Metrics struct {
	// MAE mean absolute error.
	MAE float64 `json:"mae"`

	// MSE mean square error.
	MSE float64 `json:"mse"`

	// RMSE root mean square error.
	RMSE float64 `json:"rmse"`

	// R2 coefficient of determination, 1 when the target is constant and
	// perfectly predicted.
	R2 float64 `json:"r2"`
}

// Evaluate calculates MAE, MSE, RMSE, R² of model.
func (lr *LinearRegression) Evaluate(x mat.Matrix, y *mat.VecDense) (*Metrics, error) {
	predictions, err := lr.PredictBatch(x)
	if err != nil {
		return nil, err
	}

	length := len(predictions)
	if length == 0 {
		return nil, errors.New("no records to evaluate")
	}

	if y.Len() != length {
		return nil, fmt.Errorf("got %d predictions and %d targets", length, y.Len())
	}

	maeSum := 0.0
	mseSum := 0.0
	avg := mean(y.RawVector().Data)
	tssSum := 0.0
	for i, p := range predictions {
		label := y.AtVec(i)
		maeSum += math.Abs(label - p)
		mseSum += math.Pow(label-p, 2)
		tssSum += math.Pow(label-avg, 2)
	}

	mse := mseSum / float64(length)
	r2 := 1.0
	if tssSum != 0 {
		r2 = 1 - mseSum/tssSum
	} else if mseSum != 0 {
		r2 = 0
	}

	return &Metrics{
		MAE:  maeSum / float64(length),
		MSE:  mse,
		RMSE: math.Sqrt(mse),
		R2:   r2,
	}, nil
}
