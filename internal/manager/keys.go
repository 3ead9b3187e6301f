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

package manager

import (
	"context"
	"encoding/base64"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iam/v1"
	"google.golang.org/api/option"

	"sigs.k8s.io/sa-manager/internal/keystore"
	"sigs.k8s.io/sa-manager/manager/options"
	"sigs.k8s.io/sa-manager/types/identity"
)

const (
	keyTypeCredentialsFile = "TYPE_GOOGLE_CREDENTIALS_FILE"
	keyAlgorithmRSA2048    = "KEY_ALG_RSA_2048"

	gcsScheme = "gs://"
)

// ListKeys returns the key metadata of a service account. Private key data
// is never part of the result.
func (di *DefaultManagerImplementation) ListKeys(
	ctx context.Context, s *Session, project, name string,
) ([]*iam.ServiceAccountKey, error) {
	resource := identity.Resource(project, name)

	var resp *iam.ListServiceAccountKeysResponse
	err := s.retryRead(ctx, "listing keys of "+resource, func() (err error) {
		resp, err = s.service.Projects.ServiceAccounts.Keys.List(resource).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, remoteError("list keys", resource, err, nil)
	}

	keys := make([]*iam.ServiceAccountKey, 0, len(resp.Keys))
	for _, key := range resp.Keys {
		key.PrivateKeyData = ""
		keys = append(keys, key)
	}
	return keys, nil
}

// CreateKey issues a new credentials file key for account. It returns the
// key metadata, with the private data removed, and the decoded private key
// material.
func (di *DefaultManagerImplementation) CreateKey(
	ctx context.Context, s *Session, account *iam.ServiceAccount,
) (*iam.ServiceAccountKey, []byte, error) {
	key, err := s.service.Projects.ServiceAccounts.Keys.Create(
		account.Name,
		&iam.CreateServiceAccountKeyRequest{
			PrivateKeyType: keyTypeCredentialsFile,
			KeyAlgorithm:   keyAlgorithmRSA2048,
		},
	).Context(ctx).Do()
	if err != nil {
		return nil, nil, remoteError("create key", account.Name, err, nil)
	}

	data, err := base64.StdEncoding.DecodeString(key.PrivateKeyData)
	if err != nil {
		return nil, nil, identity.NewError(
			"create key", key.Name, identity.ErrRemote,
			errors.Wrap(err, "decoding private key data"),
		)
	}
	key.PrivateKeyData = ""

	logrus.Infof("Created key %s", key.Name)
	s.record(options.ActionCreateKey, account.ProjectId, key.Name)
	return key, data, nil
}

// KeyDestination returns where the key of account is written to.
func (di *DefaultManagerImplementation) KeyDestination(
	opts *options.Options, account *iam.ServiceAccount,
) string {
	name := identity.KeyFileName(opts.Project, account.DisplayName, opts.NamespaceKeyFile)
	if strings.HasPrefix(opts.OutputDir, gcsScheme) {
		return strings.TrimSuffix(opts.OutputDir, "/") + "/" + name
	}
	return filepath.Join(opts.OutputDir, name)
}

// PersistKey writes the raw key material to dest. An existing destination
// is replaced, unless opts.NoClobber is set, in which case nothing is
// written and ErrIO is returned.
func (di *DefaultManagerImplementation) PersistKey(
	ctx context.Context, s *Session, opts *options.Options, data []byte, dest string,
) (err error) {
	dir, name := splitDestination(dest)

	var clientOpts []option.ClientOption
	if s != nil && s.creds != nil {
		clientOpts = append(clientOpts, option.WithCredentials(s.creds))
	}

	store, err := keystore.New(ctx, dir, clientOpts...)
	if err != nil {
		return identity.NewError("persist key", dest, identity.ErrIO, err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil && err == nil {
			err = identity.NewError("persist key", dest, identity.ErrIO, closeErr)
		}
	}()

	exists, err := store.Exists(ctx, name)
	if err != nil {
		return identity.NewError("persist key", dest, identity.ErrIO, err)
	}

	if opts.NoClobber {
		if exists {
			return identity.NewError("persist key", dest, identity.ErrIO, keystore.ErrExist)
		}
		if err := store.Create(ctx, name, data); err != nil {
			return identity.NewError("persist key", dest, identity.ErrIO, err)
		}
	} else {
		if exists {
			logrus.Warnf("Overwriting existing key file %s", store.Location(name))
		}
		if err := store.Write(ctx, name, data); err != nil {
			return identity.NewError("persist key", dest, identity.ErrIO, err)
		}
	}

	logrus.Infof("Key written to %s", store.Location(name))
	return nil
}

// DeleteKey deletes a key by its full resource name, used verbatim.
func (di *DefaultManagerImplementation) DeleteKey(
	ctx context.Context, s *Session, keyName string,
) error {
	if _, err := s.service.Projects.ServiceAccounts.Keys.Delete(keyName).Context(ctx).Do(); err != nil {
		return remoteError("delete key", keyName, err, nil)
	}

	logrus.Infof("Deleted key %s", keyName)
	s.record(options.ActionDeleteKey, "", keyName)
	return nil
}

// splitDestination separates the store location from the object name.
func splitDestination(dest string) (dir, name string) {
	if strings.HasPrefix(dest, gcsScheme) {
		i := strings.LastIndex(dest, "/")
		return dest[:i], dest[i+1:]
	}
	return filepath.Dir(dest), filepath.Base(dest)
}
