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
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sigs.k8s.io/sa-manager/internal/audit"
	"sigs.k8s.io/sa-manager/internal/iamtest"
	"sigs.k8s.io/sa-manager/manager/options"
)

const (
	testProject = "acme"
	testToken   = "test-access-token"
	testRunID   = "run-1"
)

var (
	keyOnce sync.Once
	keyPEM  []byte
)

// testKeyPEM returns a PKCS8 RSA key shared by all tests.
func testKeyPEM(t *testing.T) []byte {
	t.Helper()
	keyOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		der, err := x509.MarshalPKCS8PrivateKey(key)
		require.NoError(t, err)
		keyPEM = pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
	})
	return keyPEM
}

// writeCredentials writes a service account key file that exchanges its
// tokens at tokenURL.
func writeCredentials(t *testing.T, tokenURL string) string {
	t.Helper()
	data, err := json.Marshal(map[string]string{
		"type":           "service_account",
		"project_id":     testProject,
		"private_key_id": "0123456789abcdef",
		"private_key":    string(testKeyPEM(t)),
		"client_email":   "manager@acme.iam.gserviceaccount.com",
		"client_id":      "1",
		"token_uri":      tokenURL,
	})
	require.NoError(t, err)

	p := filepath.Join(t.TempDir(), "manager.json")
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func newTestServer(t *testing.T) *iamtest.Server {
	t.Helper()
	srv := iamtest.NewServer()
	srv.Token = testToken
	t.Cleanup(srv.Close)
	return srv
}

func testOptions(t *testing.T, srv *iamtest.Server) *options.Options {
	t.Helper()
	opts := options.DefaultOptions()
	opts.CredentialsFile = writeCredentials(t, srv.TokenURL())
	opts.Endpoint = srv.Endpoint()
	opts.Project = testProject
	opts.Account = "drive1"
	opts.Action = options.ActionGet
	opts.OutputDir = t.TempDir()
	opts.RequestsPerSecond = 1000
	opts.Timeout = 10 * time.Second
	return opts
}

// fakeRecorder keeps audit events in memory.
type fakeRecorder struct {
	events []audit.Event
	closed bool
}

func (r *fakeRecorder) Record(e audit.Event) { r.events = append(r.events, e) }

func (r *fakeRecorder) Close() error {
	r.closed = true
	return nil
}

// newTestSession authenticates against srv and swaps the audit recorder for
// an in-memory one.
func newTestSession(
	t *testing.T, srv *iamtest.Server, opts *options.Options,
) (*DefaultManagerImplementation, *Session, *fakeRecorder) {
	t.Helper()
	di := &DefaultManagerImplementation{Out: io.Discard}
	s, err := di.Authenticate(context.Background(), opts, testRunID)
	require.NoError(t, err)
	require.NotNil(t, s)

	rec := &fakeRecorder{}
	s.recorder = rec
	s.retryInterval = time.Millisecond
	return di, s, rec
}
