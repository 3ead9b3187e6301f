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
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/api/iam/v1"

	"sigs.k8s.io/sa-manager/manager/options"
	"sigs.k8s.io/sa-manager/pkg/golden"
)

func testAccount(name string) *iam.ServiceAccount {
	return &iam.ServiceAccount{
		DisplayName: name,
		Email:       name + "@acme.iam.gserviceaccount.com",
		Name:        "projects/acme/serviceAccounts/" + name + "@acme.iam.gserviceaccount.com",
		ProjectId:   "acme",
	}
}

func TestPrintResultYAML(t *testing.T) {
	for _, tc := range []struct {
		name   string
		result interface{}
		file   string
	}{
		{
			name:   "identity",
			result: testAccount("drive1"),
			file:   "identity.yaml",
		},
		{
			name:   "identities",
			result: []*iam.ServiceAccount{testAccount("backup1"), testAccount("drive1")},
			file:   "identities.yaml",
		},
		{
			name:   "empty list",
			result: []*iam.ServiceAccount{},
			file:   "empty.yaml",
		},
		{
			name: "key",
			result: &iam.ServiceAccountKey{
				Name:           "projects/acme/serviceAccounts/drive1@acme.iam.gserviceaccount.com/keys/0a1b2c",
				KeyAlgorithm:   keyAlgorithmRSA2048,
				KeyOrigin:      "GOOGLE_PROVIDED",
				KeyType:        "USER_MANAGED",
				PrivateKeyType: keyTypeCredentialsFile,
			},
			file: "key.yaml",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			di := &DefaultManagerImplementation{Out: &out}
			require.NoError(t, di.PrintResult(options.DefaultOptions(), tc.result))
			golden.AssertMatchesFile(t, out.String(), filepath.Join("testdata", tc.file))
		})
	}
}

func TestPrintResultJSON(t *testing.T) {
	var out bytes.Buffer
	di := &DefaultManagerImplementation{Out: &out}
	opts := options.DefaultOptions()
	opts.OutputFormat = "JSON"

	require.NoError(t, di.PrintResult(opts, []*iam.ServiceAccount{testAccount("drive1")}))

	var got []map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Equal(t, []map[string]string{{
		"displayName": "drive1",
		"email":       "drive1@acme.iam.gserviceaccount.com",
		"name":        "projects/acme/serviceAccounts/drive1@acme.iam.gserviceaccount.com",
		"projectId":   "acme",
	}}, got)
}

func TestValidateOptions(t *testing.T) {
	di := &DefaultManagerImplementation{}
	opts := options.DefaultOptions()
	opts.Project = ""
	require.Error(t, di.ValidateOptions(opts))

	opts.Project = "acme"
	opts.Action = options.ActionList
	require.NoError(t, di.ValidateOptions(opts))
}
