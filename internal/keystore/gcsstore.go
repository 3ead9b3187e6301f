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

package keystore

import (
	"context"
	"errors"
	"hash/crc32"
	"net/http"

	"cloud.google.com/go/storage"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
	"google.golang.org/api/googleapi"
)

const keyContentType = "application/json"

// gcsStore is a Store backed by a Cloud Storage bucket prefix.
type gcsStore struct {
	client *storage.Client
	bucket string
	prefix string
}

func (s *gcsStore) object(name string) *storage.ObjectHandle {
	return s.client.Bucket(s.bucket).Object(s.prefix + name)
}

// Location returns the gs:// URL of name.
func (s *gcsStore) Location(name string) string {
	return "gs://" + s.bucket + "/" + s.prefix + name
}

// Exists reports whether the object is present.
func (s *gcsStore) Exists(ctx context.Context, name string) (bool, error) {
	_, err := s.object(name).Attrs(ctx)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	return false, xerrors.Errorf("checking %s: %w", s.Location(name), err)
}

// Write uploads data, replacing any previous object.
func (s *gcsStore) Write(ctx context.Context, name string, data []byte) error {
	return s.upload(ctx, s.object(name), name, data)
}

// Create uploads data only if the object does not exist yet.
func (s *gcsStore) Create(ctx context.Context, name string, data []byte) error {
	obj := s.object(name).If(storage.Conditions{DoesNotExist: true})
	err := s.upload(ctx, obj, name, data)

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusPreconditionFailed {
		return xerrors.Errorf("uploading to %s: %w", s.Location(name), ErrExist)
	}
	return err
}

// Close closes the storage client.
func (s *gcsStore) Close() error {
	return s.client.Close()
}

func (s *gcsStore) upload(
	ctx context.Context, obj *storage.ObjectHandle, name string, data []byte,
) error {
	gcsURL := s.Location(name)
	logrus.Infof("Uploading key to %s", gcsURL)

	w := obj.NewWriter(ctx)

	// Upload integrity.
	w.CRC32C = crc32.Checksum(data, crc32.MakeTable(crc32.Castagnoli))
	w.SendCRC32C = true
	w.ContentType = keyContentType

	if _, err := w.Write(data); err != nil {
		if err2 := w.Close(); err2 != nil {
			logrus.Warnf("Error closing upload stream: %v", err2)
		}
		return xerrors.Errorf("error uploading to %s: %w", gcsURL, err)
	}

	if err := w.Close(); err != nil {
		return xerrors.Errorf("error uploading to %s: %w", gcsURL, err)
	}

	return nil
}
