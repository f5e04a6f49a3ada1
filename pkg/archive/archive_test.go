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

package archive

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unpack(t *testing.T, r io.Reader) map[string]string {
	gr, err := gzip.NewReader(r)
	require.NoError(t, err)

	files := map[string]string{}
	tr := tar.NewReader(gr)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		b, err := io.ReadAll(tr)
		require.NoError(t, err)
		files[header.Name] = string(b)
	}

	return files
}

func TestPackSources(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "train.py"), []byte("print('train')"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "lib"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lib", "util.py"), []byte("pass"), 0644))

	tests := []struct {
		name       string
		entryPoint string
		dir        string
		expect     func(t *testing.T, buf *bytes.Buffer, err error)
	}{
		{
			name:       "pack entry point",
			entryPoint: filepath.Join(dir, "train.py"),
			expect: func(t *testing.T, buf *bytes.Buffer, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(map[string]string{"train.py": "print('train')"}, unpack(t, buf))
			},
		},
		{
			name:       "pack source dir",
			entryPoint: "train.py",
			dir:        dir,
			expect: func(t *testing.T, buf *bytes.Buffer, err error) {
				assert := assert.New(t)
				assert.NoError(err)
				assert.Equal(map[string]string{
					"train.py":    "print('train')",
					"lib/util.py": "pass",
				}, unpack(t, buf))
			},
		},
		{
			name:       "entry point not in source dir",
			entryPoint: "serve.py",
			dir:        dir,
			expect: func(t *testing.T, buf *bytes.Buffer, err error) {
				assert := assert.New(t)
				assert.ErrorContains(err, "entry point serve.py not found")
			},
		},
		{
			name:       "entry point not exist",
			entryPoint: filepath.Join(dir, "serve.py"),
			expect: func(t *testing.T, buf *bytes.Buffer, err error) {
				assert := assert.New(t)
				assert.True(os.IsNotExist(err))
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			err := PackSources(buf, tc.entryPoint, tc.dir)
			tc.expect(t, buf, err)
		})
	}
}
