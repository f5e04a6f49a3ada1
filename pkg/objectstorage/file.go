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

package objectstorage

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mlglue/linreg/pkg/digest"
)

// PutFile uploads the local file to the object url and returns the url of
// the uploaded object. An url ending with a slash is treated as prefix and
// the file name is appended. The sha256 digest of the file is stored in the
// object metadata.
func PutFile(ctx context.Context, storage ObjectStorage, name, url string) (string, error) {
	bucket, key, err := ParseURL(url)
	if err != nil {
		return "", err
	}

	if key == "" || strings.HasSuffix(key, "/") {
		key = path.Join(key, filepath.Base(name))
	}

	d, err := digest.HashFile(name)
	if err != nil {
		return "", err
	}

	f, err := os.Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := storage.PutObject(ctx, bucket, key, d, f); err != nil {
		return "", err
	}

	return URL(bucket, key), nil
}
