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

//go:generate mockgen -package mocks -source objectstorage.go -destination ./mocks/objectstorage_mock.go

package objectstorage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
)

type ObjectMetadata struct {
	// Key is object key.
	Key string

	// ContentLength is Content-Length header.
	ContentLength int64

	// ContentType is Content-Type header.
	ContentType string

	// ETag is ETag header.
	ETag string

	// Digest is object digest.
	Digest string
}

type ObjectStorage interface {
	// GetObjectMetadata returns metadata of object.
	GetObjectMetadata(ctx context.Context, bucketName, objectKey string) (*ObjectMetadata, bool, error)

	// PutObject creates data of object.
	PutObject(ctx context.Context, bucketName, objectKey, digest string, reader io.ReadSeeker) error

	// IsObjectExist returns whether the object exists.
	IsObjectExist(ctx context.Context, bucketName, objectKey string) (bool, error)
}

// ParseURL splits the object url like s3://bucket/key into bucket and key.
func ParseURL(rawURL string) (string, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", "", err
	}

	if u.Scheme != SchemeS3 {
		return "", "", fmt.Errorf("invalid scheme %q of object url %s", u.Scheme, rawURL)
	}

	if u.Host == "" {
		return "", "", fmt.Errorf("object url %s has no bucket", rawURL)
	}

	return u.Host, strings.TrimPrefix(u.Path, "/"), nil
}

// URL joins bucket and key into the object url.
func URL(bucketName, objectKey string) string {
	return fmt.Sprintf("%s://%s/%s", SchemeS3, bucketName, strings.TrimPrefix(objectKey, "/"))
}
