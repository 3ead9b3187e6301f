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
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/googleapi"

	"sigs.k8s.io/sa-manager/types/identity"
)

// remoteError maps a failed IAM call to the error taxonomy. invalid is the
// kind reported for a 400 response, or nil to report it as ErrRemote.
func remoteError(op, resource string, err error, invalid error) error {
	kind := identity.ErrRemote

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			kind = identity.ErrNotFound
		case http.StatusConflict:
			kind = identity.ErrAlreadyExists
		case http.StatusBadRequest:
			if invalid != nil {
				kind = invalid
			}
		}
	}

	return identity.NewError(op, resource, kind, err)
}

// retryable reports whether a failed read is worth sending again.
func retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests ||
			apiErr.Code >= http.StatusInternalServerError
	}

	// Anything else failed below HTTP.
	return true
}

// retryRead runs a read only call, retrying transient failures with an
// exponential backoff up to the configured number of retries.
func (s *Session) retryRead(ctx context.Context, op string, call func() error) error {
	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = s.retryInterval
	expBackoff.MaxInterval = 10 * time.Second

	b := backoff.WithContext(
		backoff.WithMaxRetries(expBackoff, uint64(s.readRetries)), ctx,
	)

	return backoff.RetryNotify(
		func() error {
			err := call()
			if err != nil && !retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		},
		b,
		func(err error, wait time.Duration) {
			logrus.Warnf("Retrying %s in %v: %v", op, wait, err)
		},
	)
}
