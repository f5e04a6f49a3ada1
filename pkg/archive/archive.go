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

// Package archive packs user scripts into gzip compressed tarballs the
// framework containers download as submit directory.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"
)

// SourceFileName is the object name of the packed sources.
const SourceFileName = "sourcedir.tar.gz"

// PackSources writes the tarball of the scripts to w. When dir is empty only
// the entry point is packed at the root of the tarball, otherwise dir is
// packed recursively and must contain the entry point.
func PackSources(w io.Writer, entryPoint, dir string) (err error) {
	gw := gzip.NewWriter(w)
	tw := tar.NewWriter(gw)
	defer func() {
		if cerr := tw.Close(); cerr != nil {
			err = multierror.Append(err, cerr)
		}
		if cerr := gw.Close(); cerr != nil {
			err = multierror.Append(err, cerr)
		}
	}()

	if dir == "" {
		return addFile(tw, entryPoint, filepath.Base(entryPoint))
	}

	if _, err := os.Stat(filepath.Join(dir, entryPoint)); err != nil {
		return fmt.Errorf("entry point %s not found in %s: %w", entryPoint, dir, err)
	}

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		name, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		return addFile(tw, path, filepath.ToSlash(name))
	})
}

func addFile(tw *tar.Writer, path, name string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return err
	}
	header.Name = name

	if err := tw.WriteHeader(header); err != nil {
		return err
	}

	_, err = io.Copy(tw, f)
	return err
}
