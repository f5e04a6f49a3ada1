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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ParseRecords decodes an invocation payload into feature rows ordered by
// features. The payload is a record object keyed by feature name, an array
// of record objects, or an array of numeric arrays.
func ParseRecords(body []byte, features []string) ([][]float64, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, errors.New("empty payload")
	}

	switch body[0] {
	case '{':
		row, err := parseObject(body, features)
		if err != nil {
			return nil, err
		}

		return [][]float64{row}, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, err
		}

		if len(items) == 0 {
			return nil, errors.New("payload has no records")
		}

		rows := make([][]float64, 0, len(items))
		for i, item := range items {
			row, err := parseRecord(bytes.TrimSpace(item), features)
			if err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
			rows = append(rows, row)
		}

		return rows, nil
	default:
		return nil, errors.New("payload is not an object or array")
	}
}

func parseRecord(item []byte, features []string) ([]float64, error) {
	if len(item) > 0 {
		switch item[0] {
		case '{':
			return parseObject(item, features)
		case '[':
			return parseArray(item, features)
		}
	}

	return nil, errors.New("record is not an object or array")
}

func parseObject(b []byte, features []string) ([]float64, error) {
	// Keys other than features are ignored whatever their type.
	var record map[string]json.RawMessage
	if err := json.Unmarshal(b, &record); err != nil {
		return nil, err
	}

	row := make([]float64, len(features))
	for i, feature := range features {
		raw, ok := record[feature]
		if !ok {
			return nil, fmt.Errorf("missing feature %q", feature)
		}

		// Null decodes into a float without error.
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			return nil, fmt.Errorf("feature %q is not a number", feature)
		}

		if err := json.Unmarshal(raw, &row[i]); err != nil {
			return nil, fmt.Errorf("feature %q is not a number", feature)
		}
	}

	return row, nil
}

func parseArray(b []byte, features []string) ([]float64, error) {
	var values []*float64
	if err := json.Unmarshal(b, &values); err != nil {
		return nil, err
	}

	if len(values) != len(features) {
		return nil, fmt.Errorf("got %d features, expect %d", len(values), len(features))
	}

	row := make([]float64, len(values))
	for i, v := range values {
		if v == nil {
			return nil, fmt.Errorf("feature %q is not a number", features[i])
		}
		row[i] = *v
	}

	return row, nil
}
