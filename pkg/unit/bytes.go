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

package unit

import (
	"strings"

	"github.com/docker/go-units"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Bytes is a size in bytes, written in config and flags like 6MiB or 512KB.
// Units are binary, 1KB is 1024 bytes.
type Bytes int64

const (
	B  Bytes = 1
	KB       = 1024 * B
	MB       = 1024 * KB
	GB       = 1024 * MB
)

func (b Bytes) ToNumber() int64 {
	return int64(b)
}

// Set is used for command flag var.
func (b *Bytes) Set(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*b = 0
		return nil
	}

	size, err := units.RAMInBytes(s)
	if err != nil {
		return errors.Wrapf(err, "parse size %s", s)
	}

	*b = Bytes(size)
	return nil
}

func (b *Bytes) Type() string {
	return "bytes"
}

func (b Bytes) String() string {
	return units.BytesSize(float64(b))
}

func (b Bytes) MarshalYAML() (any, error) {
	return b.String(), nil
}

// UnmarshalYAML accepts a plain number of bytes or a size string.
func (b *Bytes) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case int:
		*b = Bytes(value)
		return nil
	case string:
		return b.Set(value)
	default:
		return errors.Errorf("invalid size %v", v)
	}
}
