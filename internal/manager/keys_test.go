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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/iam/v1"

	"sigs.k8s.io/sa-manager/internal/audit"
	"sigs.k8s.io/sa-manager/internal/keystore"
	"sigs.k8s.io/sa-manager/manager/options"
	"sigs.k8s.io/sa-manager/types/identity"
)

// binaryMaterial holds every byte value so any re-encoding would show.
func binaryMaterial() []byte {
	b := make([]byte, 0, 512)
	for i := 0; i < 256; i++ {
		b = append(b, byte(i))
	}
	return append(b, []byte("\r\n{\"private_key\": \"x\"}\n")...)
}

func TestCreateKeyAndPersist(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	opts := testOptions(t, srv)
	di, s, rec := newTestSession(t, srv, opts)

	account, err := di.CreateIdentity(ctx, s, testProject, "drive1")
	require.NoError(t, err)

	material := binaryMaterial()
	srv.NextKeyMaterial = material

	key, data, err := di.CreateKey(ctx, s, account)
	require.NoError(t, err)
	require.Equal(t, material, data)
	require.Empty(t, key.PrivateKeyData)
	require.Equal(t, keyAlgorithmRSA2048, key.KeyAlgorithm)
	require.Equal(t, keyTypeCredentialsFile, key.PrivateKeyType)
	require.Equal(t, material, srv.KeyMaterial(key.Name))

	dest := di.KeyDestination(opts, account)
	require.Equal(t, filepath.Join(opts.OutputDir, "drive1.json"), dest)
	require.NoError(t, di.PersistKey(ctx, s, opts, data, dest))

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, material, written)

	info, err := os.Stat(dest)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.Len(t, rec.events, 2)
	require.Equal(t, audit.Event{
		Action: "create-key", Project: testProject, Resource: key.Name, RunID: testRunID,
	}, rec.events[1])
}

func TestCreateKeyGeneratedCredentials(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	di, s, _ := newTestSession(t, srv, testOptions(t, srv))

	account := srv.AddAccount(testProject, "drive1")
	key, data, err := di.CreateKey(ctx, s, account)
	require.NoError(t, err)
	require.Contains(t, string(data), `"client_email": "drive1@acme.iam.gserviceaccount.com"`)
	require.Equal(t, srv.KeyMaterial(key.Name), data)
}

func TestCreateKeyQuota(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	srv.MaxKeys = 1
	opts := testOptions(t, srv)
	di, s, rec := newTestSession(t, srv, opts)

	account := srv.AddAccount(testProject, "drive1")
	_, _, err := di.CreateKey(ctx, s, account)
	require.NoError(t, err)

	key, data, err := di.CreateKey(ctx, s, account)
	require.ErrorIs(t, err, identity.ErrRemote)
	require.NotErrorIs(t, err, identity.ErrInvalidName)
	require.Nil(t, key)
	require.Nil(t, data)
	require.Len(t, rec.events, 1)
	require.Len(t, srv.Keys(account.Name), 1)
}

func TestCreateKeyMissingAccount(t *testing.T) {
	srv := newTestServer(t)
	di, s, _ := newTestSession(t, srv, testOptions(t, srv))

	_, _, err := di.CreateKey(context.Background(), s, &iam.ServiceAccount{
		Name: identity.Resource(testProject, "missing"),
	})
	require.ErrorIs(t, err, identity.ErrNotFound)
}

func TestListKeysScrubsPrivateData(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	srv.LeakPrivateKeyData = true
	di, s, _ := newTestSession(t, srv, testOptions(t, srv))

	account := srv.AddAccount(testProject, "drive1")
	for i := 0; i < 3; i++ {
		_, _, err := di.CreateKey(ctx, s, account)
		require.NoError(t, err)
	}

	keys, err := di.ListKeys(ctx, s, testProject, "drive1")
	require.NoError(t, err)
	require.Len(t, keys, 3)
	for _, key := range keys {
		require.Empty(t, key.PrivateKeyData)
		require.NotEmpty(t, key.Name)
	}
}

func TestListKeysEmptyAndMissing(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	di, s, _ := newTestSession(t, srv, testOptions(t, srv))
	srv.AddAccount(testProject, "drive1")

	keys, err := di.ListKeys(ctx, s, testProject, "drive1")
	require.NoError(t, err)
	require.NotNil(t, keys)
	require.Empty(t, keys)

	_, err = di.ListKeys(ctx, s, testProject, "missing")
	require.ErrorIs(t, err, identity.ErrNotFound)
}

func TestDeleteKey(t *testing.T) {
	ctx := context.Background()
	srv := newTestServer(t)
	di, s, rec := newTestSession(t, srv, testOptions(t, srv))

	account := srv.AddAccount(testProject, "drive1")
	key, _, err := di.CreateKey(ctx, s, account)
	require.NoError(t, err)

	require.NoError(t, di.DeleteKey(ctx, s, key.Name))
	require.Empty(t, srv.Keys(account.Name))

	err = di.DeleteKey(ctx, s, key.Name)
	require.ErrorIs(t, err, identity.ErrNotFound)

	require.Equal(t, audit.Event{
		Action: "delete-key", Resource: key.Name, RunID: testRunID,
	}, rec.events[len(rec.events)-1])
}

func TestKeyDestination(t *testing.T) {
	account := &iam.ServiceAccount{DisplayName: "drive1"}
	for _, tc := range []struct {
		outputDir  string
		namespaced bool
		expected   string
	}{
		{outputDir: ".", expected: "drive1.json"},
		{outputDir: "/var/keys", expected: "/var/keys/drive1.json"},
		{outputDir: "/var/keys", namespaced: true, expected: "/var/keys/acme-drive1.json"},
		{outputDir: "gs://acme-keys", expected: "gs://acme-keys/drive1.json"},
		{outputDir: "gs://acme-keys/samgr/", namespaced: true, expected: "gs://acme-keys/samgr/acme-drive1.json"},
	} {
		opts := options.DefaultOptions()
		opts.Project = testProject
		opts.OutputDir = tc.outputDir
		opts.NamespaceKeyFile = tc.namespaced

		got := (&DefaultManagerImplementation{}).KeyDestination(opts, account)
		require.Equal(t, tc.expected, got)
	}
}

func TestSplitDestination(t *testing.T) {
	for _, tc := range []struct{ dest, dir, name string }{
		{"drive1.json", ".", "drive1.json"},
		{"/var/keys/drive1.json", "/var/keys", "drive1.json"},
		{"gs://acme-keys/drive1.json", "gs://acme-keys", "drive1.json"},
		{"gs://acme-keys/a/b/drive1.json", "gs://acme-keys/a/b", "drive1.json"},
	} {
		dir, name := splitDestination(tc.dest)
		require.Equal(t, tc.dir, dir, tc.dest)
		require.Equal(t, tc.name, name, tc.dest)
	}
}

func TestPersistKeyOverwrite(t *testing.T) {
	ctx := context.Background()
	opts := options.DefaultOptions()
	dest := filepath.Join(t.TempDir(), "drive1.json")
	di := &DefaultManagerImplementation{}

	require.NoError(t, di.PersistKey(ctx, nil, opts, []byte("first key"), dest))
	require.NoError(t, di.PersistKey(ctx, nil, opts, []byte("second"), dest))

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, []byte("second"), got)
}

func TestPersistKeyNoClobber(t *testing.T) {
	ctx := context.Background()
	opts := options.DefaultOptions()
	opts.NoClobber = true
	dest := filepath.Join(t.TempDir(), "drive1.json")
	di := &DefaultManagerImplementation{}

	require.NoError(t, di.PersistKey(ctx, nil, opts, []byte("first key"), dest))

	err := di.PersistKey(ctx, nil, opts, []byte("second"), dest)
	require.ErrorIs(t, err, identity.ErrIO)
	require.ErrorIs(t, err, keystore.ErrExist)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, []byte("first key"), got)
}

func TestPersistKeyIOError(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "missing", "drive1.json")
	err := (&DefaultManagerImplementation{}).PersistKey(
		context.Background(), nil, options.DefaultOptions(), []byte("key"), dest,
	)
	require.ErrorIs(t, err, identity.ErrIO)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(dest)
	require.True(t, os.IsNotExist(statErr))
}
