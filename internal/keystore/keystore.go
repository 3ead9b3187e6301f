/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package keystore writes freshly issued key material to its destination,
// either a local directory or a Google Cloud Storage prefix.
package keystore

import (
	"context"
	"io/fs"
	"net/url"
	"strings"

	"cloud.google.com/go/storage"
	"golang.org/x/xerrors"
	"google.golang.org/api/option"
)

// ErrExist is returned by Create when the destination already holds an
// object with the same name.
var ErrExist = fs.ErrExist

// Store is a destination for key files.
type Store interface {
	// Exists reports whether name is already present.
	Exists(ctx context.Context, name string) (bool, error)

	// Write stores data under name, replacing any previous content.
	Write(ctx context.Context, name string, data []byte) error

	// Create stores data under name and fails with ErrExist if name is
	// already present.
	Create(ctx context.Context, name string, data []byte) error

	// Location returns a human readable location of name, for logs.
	Location(name string) string

	// Close releases the resources held by the store.
	Close() error
}

// New returns the store for dest. A gs://bucket/prefix destination is
// backed by Cloud Storage, opened with clientOpts; anything else is a local
// directory.
func New(ctx context.Context, dest string, clientOpts ...option.ClientOption) (Store, error) {
	if !strings.HasPrefix(dest, "gs://") {
		return &fsStore{basedir: dest}, nil
	}

	bucket, prefix, err := ParseGCSURL(dest)
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, xerrors.Errorf("creating storage client: %w", err)
	}

	return &gcsStore{client: client, bucket: bucket, prefix: prefix}, nil
}

// ParseGCSURL splits a gs://bucket/prefix URL. The returned prefix is
// either empty or ends with a slash.
func ParseGCSURL(dest string) (bucket, prefix string, err error) {
	u, err := url.Parse(dest)
	if err != nil {
		return "", "", xerrors.Errorf("error parsing destination %q: %w", dest, err)
	}

	if u.Scheme != "gs" {
		return "", "", xerrors.Errorf(
			"unrecognized scheme %q (supported schemes: gs://)", dest,
		)
	}

	if u.Host == "" {
		return "", "", xerrors.Errorf("destination %q has no bucket", dest)
	}

	prefix = strings.TrimPrefix(u.Path, "/")
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	return u.Host, prefix, nil
}
