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

package identity_test

import (
	"io/fs"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"sigs.k8s.io/sa-manager/types/identity"
)

func TestErrorKinds(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "drive1.json", Err: fs.ErrPermission}
	err := identity.NewError("persist key", "drive1.json", identity.ErrIO, cause)

	require.ErrorIs(t, err, identity.ErrIO)
	require.NotErrorIs(t, err, identity.ErrRemote)
	require.ErrorIs(t, err, fs.ErrPermission)

	var pathErr *fs.PathError
	require.True(t, errors.As(err, &pathErr))
	require.Equal(t, "drive1.json", pathErr.Path)

	require.Contains(t, err.Error(), "persist key drive1.json")
	require.Contains(t, err.Error(), "io error")

	// The kind survives additional wrapping.
	wrapped := errors.Wrap(err, "running create-key")
	require.ErrorIs(t, wrapped, identity.ErrIO)
}

func TestErrorWithoutCause(t *testing.T) {
	err := identity.NewError("get service account", "projects/acme", identity.ErrNotFound, nil)
	require.ErrorIs(t, err, identity.ErrNotFound)
	require.Equal(t, "get service account projects/acme: not found", err.Error())
}
