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

package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var features = []string{"feature1", "feature2"}

func TestParseRecords(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		expect func(t *testing.T, records [][]float64, err error)
	}{
		{
			name: "record object",
			body: `{"feature1": 4, "feature2": 1}`,
			expect: func(t *testing.T, records [][]float64, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal([][]float64{{4, 1}}, records)
			},
		},
		{
			name: "record object with extra keys",
			body: `{"feature2": 1, "id": "a-1", "feature1": 4}`,
			expect: func(t *testing.T, records [][]float64, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal([][]float64{{4, 1}}, records)
			},
		},
		{
			name: "array of record objects",
			body: ` [{"feature1": 4, "feature2": 1}, {"feature1": 1.5, "feature2": 1}] `,
			expect: func(t *testing.T, records [][]float64, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal([][]float64{{4, 1}, {1.5, 1}}, records)
			},
		},
		{
			name: "array of arrays",
			body: `[[4, 1], [1.5, 1]]`,
			expect: func(t *testing.T, records [][]float64, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal([][]float64{{4, 1}, {1.5, 1}}, records)
			},
		},
		{
			name: "missing feature",
			body: `{"feature1": 4}`,
			expect: func(t *testing.T, records [][]float64, err error) {
				assert := assert.New(t)
				assert.EqualError(err, `missing feature "feature2"`)
				assert.Nil(records)
			},
		},
		{
			name: "missing feature in array",
			body: `[{"feature1": 4, "feature2": 1}, {"feature2": 1}]`,
			expect: func(t *testing.T, records [][]float64, err error) {
				assert := assert.New(t)
				assert.EqualError(err, `record 1: missing feature "feature1"`)
			},
		},
		{
			name: "wrong feature count",
			body: `[[4, 1, 0]]`,
			expect: func(t *testing.T, records [][]float64, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "record 0: got 3 features, expect 2")
			},
		},
		{
			name: "non numeric feature",
			body: `{"feature1": "4", "feature2": 1}`,
			expect: func(t *testing.T, records [][]float64, err error) {
				assert := assert.New(t)
				assert.EqualError(err, `feature "feature1" is not a number`)
			},
		},
		{
			name: "null feature",
			body: `{"feature1": null, "feature2": 1}`,
			expect: func(t *testing.T, records [][]float64, err error) {
				assert := assert.New(t)
				assert.EqualError(err, `feature "feature1" is not a number`)
				assert.Nil(records)
			},
		},
		{
			name: "null feature in array",
			body: `[[4, 1], [null, 1]]`,
			expect: func(t *testing.T, records [][]float64, err error) {
				assert := assert.New(t)
				assert.EqualError(err, `record 1: feature "feature1" is not a number`)
				assert.Nil(records)
			},
		},
		{
			name: "empty array",
			body: `[]`,
			expect: func(t *testing.T, records [][]float64, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "payload has no records")
			},
		},
		{
			name: "scalar record",
			body: `[4]`,
			expect: func(t *testing.T, records [][]float64, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "record 0: record is not an object or array")
			},
		},
		{
			name: "scalar payload",
			body: `4`,
			expect: func(t *testing.T, records [][]float64, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "payload is not an object or array")
			},
		},
		{
			name: "empty payload",
			body: "  ",
			expect: func(t *testing.T, records [][]float64, err error) {
				assert := assert.New(t)
				assert.EqualError(err, "empty payload")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			records, err := ParseRecords([]byte(tc.body), features)
			tc.expect(t, records, err)
		})
	}
}
