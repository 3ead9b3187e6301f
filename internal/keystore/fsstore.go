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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// keyFileMode keeps private keys readable by the owner only.
const keyFileMode = 0o600

// fsStore is a Store backed by a local directory.
type fsStore struct {
	basedir string
}

func (s *fsStore) path(name string) string {
	return filepath.Join(s.basedir, name)
}

// Location returns the path name is written to.
func (s *fsStore) Location(name string) string {
	return s.path(name)
}

// Exists reports whether the file is present.
func (s *fsStore) Exists(ctx context.Context, name string) (bool, error) {
	_, err := os.Stat(s.path(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, xerrors.Errorf("checking %q: %w", s.path(name), err)
}

// Write truncates or creates the file and writes data to it.
func (s *fsStore) Write(ctx context.Context, name string, data []byte) error {
	return s.writeFile(name, data, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

// Create writes data to a new file, failing if it exists.
func (s *fsStore) Create(ctx context.Context, name string, data []byte) error {
	return s.writeFile(name, data, os.O_WRONLY|os.O_CREATE|os.O_EXCL)
}

// Close is a NOP (there is nothing to close).
func (s *fsStore) Close() error { return nil }

// writeFile opens the file with flag, writes data and always closes the
// handle. A close failure is reported when the write itself succeeded.
func (s *fsStore) writeFile(name string, data []byte, flag int) (err error) {
	p := s.path(name)

	f, err := os.OpenFile(p, flag, keyFileMode)
	if err != nil {
		return xerrors.Errorf("opening %q: %w", p, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			if err == nil {
				err = xerrors.Errorf("closing %q: %w", p, closeErr)
				return
			}
			logrus.Warnf("Error closing %q: %v", p, closeErr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return xerrors.Errorf("writing %q: %w", p, err)
	}

	return nil
}
