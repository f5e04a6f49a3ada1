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

package framework

import (
	"bytes"
	"context"

	"github.com/mlglue/linreg/pkg/archive"
	"github.com/mlglue/linreg/pkg/digest"
	"github.com/mlglue/linreg/pkg/objectstorage"
)

// UploadSources packs the entry point with the source directory and uploads
// the tarball to the object url.
func UploadSources(ctx context.Context, storage objectstorage.ObjectStorage, entryPoint, dir, url string) error {
	bucket, key, err := objectstorage.ParseURL(url)
	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}
	if err := archive.PackSources(buf, entryPoint, dir); err != nil {
		return err
	}

	return storage.PutObject(ctx, bucket, key, digest.FromBytes(buf.Bytes()), bytes.NewReader(buf.Bytes()))
}
