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

// Package dataset loads tabular training records into feature matrices.
package dataset

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sjwhitworth/golearn/base"
	"gonum.org/v1/gonum/mat"
)

const (
	// Feature1 is the name of the first feature column.
	Feature1 = "feature1"

	// Feature2 is the name of the second feature column.
	Feature2 = "feature2"

	// Target is the name of the label column.
	Target = "target"
)

// DefaultFeatures are the feature columns used to train the model.
var DefaultFeatures = []string{Feature1, Feature2}

// Dataset is a numeric record set with named feature columns and one target column.
type Dataset struct {
	features []string
	target   string
	x        *mat.Dense
	y        *mat.VecDense
}

// Load reads the csv file, the first line of file must be the header.
func Load(path string, features []string, target string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	d, err := Parse(bytes.NewReader(data), features, target)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	return d, nil
}

// Parse reads csv records with header from reader and selects the feature
// and target columns by name. An empty target only selects features, it is
// used for records to be predicted.
func Parse(r io.ReadSeeker, features []string, target string) (*Dataset, error) {
	if len(features) == 0 {
		return nil, errors.New("no feature columns given")
	}

	rows, err := countRecords(r)
	if err != nil {
		return nil, err
	}

	if rows == 0 {
		return nil, errors.New("dataset has no records")
	}

	instances, err := base.ParseCSVToInstancesFromReader(r, true)
	if err != nil {
		return nil, err
	}

	featureSpecs := make([]base.AttributeSpec, len(features))
	for i, name := range features {
		spec, err := floatAttributeSpec(instances, name)
		if err != nil {
			return nil, err
		}
		featureSpecs[i] = spec
	}

	var targetSpec *base.AttributeSpec
	if target != "" {
		spec, err := floatAttributeSpec(instances, target)
		if err != nil {
			return nil, err
		}
		targetSpec = &spec
	}

	_, length := instances.Size()
	x := mat.NewDense(length, len(features), nil)
	var y *mat.VecDense
	if targetSpec != nil {
		y = mat.NewVecDense(length, nil)
	}

	for i := 0; i < length; i++ {
		for j, spec := range featureSpecs {
			x.Set(i, j, base.UnpackBytesToFloat(instances.Get(spec, i)))
		}

		if y != nil {
			y.SetVec(i, base.UnpackBytesToFloat(instances.Get(*targetSpec, i)))
		}
	}

	return &Dataset{
		features: append([]string(nil), features...),
		target:   target,
		x:        x,
		y:        y,
	}, nil
}

// X returns the feature matrix, one row per record.
func (d *Dataset) X() *mat.Dense {
	return d.x
}

// Y returns the target vector, it is nil when the dataset has no target.
func (d *Dataset) Y() *mat.VecDense {
	return d.y
}

// Rows returns the number of records.
func (d *Dataset) Rows() int {
	r, _ := d.x.Dims()
	return r
}

// Features returns the feature column names.
func (d *Dataset) Features() []string {
	return d.features
}

// Target returns the target column name.
func (d *Dataset) Target() string {
	return d.target
}

// floatAttributeSpec finds the numeric column by name.
func floatAttributeSpec(instances *base.DenseInstances, name string) (base.AttributeSpec, error) {
	for _, attr := range instances.AllAttributes() {
		if attr.GetName() != name {
			continue
		}

		if _, ok := attr.(*base.FloatAttribute); !ok {
			return base.AttributeSpec{}, fmt.Errorf("column %q is not numeric", name)
		}

		return instances.GetAttribute(attr)
	}

	return base.AttributeSpec{}, fmt.Errorf("column %q not found", name)
}

// countRecords counts non-empty lines after the header and rewinds the reader.
func countRecords(r io.ReadSeeker) (int, error) {
	scanner := bufio.NewScanner(r)
	lines := 0
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) != "" {
			lines++
		}
	}

	if err := scanner.Err(); err != nil {
		return 0, err
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}

	if lines == 0 {
		return 0, nil
	}

	return lines - 1, nil
}
