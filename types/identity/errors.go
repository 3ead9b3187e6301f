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

package identity

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds. Every failure surfaced by the manager matches exactly one of
// these through errors.Is.
var (
	// ErrCredential means the session could not be established: the
	// credentials file is missing or malformed, or the token endpoint
	// refused the key or the requested scopes.
	ErrCredential = errors.New("credential error")

	// ErrRemote is any transport or API failure not covered by a more
	// specific kind, including rate limiting and quota exhaustion.
	ErrRemote = errors.New("remote error")

	// ErrNotFound means the addressed service account or key does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists means a service account with the requested name
	// already exists in the project.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidName means the IAM API rejected the requested account name.
	ErrInvalidName = errors.New("invalid name")

	// ErrIO means key material could not be written to its destination.
	ErrIO = errors.New("io error")
)

// Error annotates a failure with the operation and resource it belongs to.
type Error struct {
	// Op is a short description of the failed operation, like
	// "create service account".
	Op string

	// Resource is the resource name, key name or path the operation
	// targeted.
	Resource string

	// Kind is one of the Err* values of this package.
	Kind error

	// Err is the underlying failure.
	Err error
}

// NewError returns an *Error for op on resource.
func NewError(op, resource string, kind, err error) *Error {
	return &Error{Op: op, Resource: resource, Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Resource, e.Kind, e.Err)
}

// Unwrap returns the underlying failure so errors.As can reach API and
// filesystem errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the kind of this error.
func (e *Error) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}
