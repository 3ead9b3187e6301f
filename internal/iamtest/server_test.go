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

package iamtest_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sigs.k8s.io/sa-manager/internal/iamtest"
)

func do(t *testing.T, method, u, body string) (int, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(method, u, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(data, &out))
	return resp.StatusCode, out
}

func TestServerAccounts(t *testing.T) {
	srv := iamtest.NewServer()
	defer srv.Close()
	base := srv.URL + "/v1/projects/acme/serviceAccounts"

	code, out := do(t, http.MethodPost, base, `{"accountId":"drive1","serviceAccount":{"displayName":"drive1"}}`)
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "drive1@acme.iam.gserviceaccount.com", out["email"])

	code, out = do(t, http.MethodPost, base, `{"accountId":"drive1"}`)
	require.Equal(t, http.StatusConflict, code)
	require.Equal(t, "ALREADY_EXISTS", out["error"].(map[string]interface{})["status"])

	code, _ = do(t, http.MethodPost, base, `{"accountId":"Drive_1"}`)
	require.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, http.MethodGet, base+"/drive1@acme.iam.gserviceaccount.com", "")
	require.Equal(t, http.StatusOK, code)

	code, _ = do(t, http.MethodDelete, base+"/drive1@acme.iam.gserviceaccount.com", "")
	require.Equal(t, http.StatusOK, code)

	code, _ = do(t, http.MethodDelete, base+"/drive1@acme.iam.gserviceaccount.com", "")
	require.Equal(t, http.StatusNotFound, code)

	require.Equal(t, []string{
		"POST /v1/projects/acme/serviceAccounts",
		"POST /v1/projects/acme/serviceAccounts",
		"POST /v1/projects/acme/serviceAccounts",
		"GET /v1/projects/acme/serviceAccounts/drive1@acme.iam.gserviceaccount.com",
		"DELETE /v1/projects/acme/serviceAccounts/drive1@acme.iam.gserviceaccount.com",
		"DELETE /v1/projects/acme/serviceAccounts/drive1@acme.iam.gserviceaccount.com",
	}, srv.Requests())
}

func TestServerKeys(t *testing.T) {
	srv := iamtest.NewServer()
	defer srv.Close()
	srv.MaxKeys = 1
	sa := srv.AddAccount("acme", "drive1")
	base := srv.URL + "/v1/" + sa.Name + "/keys"

	code, out := do(t, http.MethodPost, base, `{"privateKeyType":"TYPE_GOOGLE_CREDENTIALS_FILE"}`)
	require.Equal(t, http.StatusOK, code)
	require.NotEmpty(t, out["privateKeyData"])
	name := out["name"].(string)
	require.NotEmpty(t, srv.KeyMaterial(name))

	code, out = do(t, http.MethodPost, base, `{}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "FAILED_PRECONDITION", out["error"].(map[string]interface{})["status"])

	code, out = do(t, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, code)
	keys := out["keys"].([]interface{})
	require.Len(t, keys, 1)
	require.NotContains(t, keys[0], "privateKeyData")

	code, _ = do(t, http.MethodDelete, srv.URL+"/v1/"+name, "")
	require.Equal(t, http.StatusOK, code)
	require.Empty(t, srv.Keys(sa.Name))
}

func TestServerAuthAndFailures(t *testing.T) {
	srv := iamtest.NewServer()
	defer srv.Close()
	srv.Token = "secret"
	base := srv.URL + "/v1/projects/acme/serviceAccounts"

	code, _ := do(t, http.MethodGet, base, "")
	require.Equal(t, http.StatusUnauthorized, code)

	form := url.Values{"assertion": {"jwt"}}.Encode()
	resp, err := http.Post(srv.TokenURL(), "application/x-www-form-urlencoded", strings.NewReader(form))
	require.NoError(t, err)
	defer resp.Body.Close()
	tok := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tok))
	require.Equal(t, "secret", tok["access_token"])
	require.Equal(t, 1, srv.TokenRequests())

	srv.Token = ""
	srv.FailNext(http.StatusServiceUnavailable, 1)
	code, _ = do(t, http.MethodGet, base, "")
	require.Equal(t, http.StatusServiceUnavailable, code)

	code, _ = do(t, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, code)
}
