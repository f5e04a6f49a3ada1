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

// Package digest computes content digests of uploaded artifacts.
package digest

import (
	"bufio"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
)

const bufferSize = 4 * 1024 * 1024

// FromReader returns the sha256 digest of the reader content, in the form
// of sha256:<hex>.
func FromReader(r io.Reader) (string, error) {
	d, err := digest.SHA256.FromReader(r)
	if err != nil {
		return "", err
	}

	return d.String(), nil
}

// FromBytes returns the sha256 digest of p.
func FromBytes(p []byte) string {
	return digest.SHA256.FromBytes(p).String()
}

// HashFile returns the sha256 digest of a regular file.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return FromReader(bufio.NewReaderSize(f, bufferSize))
}

// Validate checks the digest string is well formed.
func Validate(s string) error {
	return digest.Digest(s).Validate()
}
