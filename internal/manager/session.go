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
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/time/rate"
	"google.golang.org/api/iam/v1"
	"google.golang.org/api/option"

	"sigs.k8s.io/sa-manager/internal/audit"
	"sigs.k8s.io/sa-manager/internal/ratelimit"
	"sigs.k8s.io/sa-manager/manager/options"
	"sigs.k8s.io/sa-manager/types/identity"
)

// defaultRetryInterval is the first wait between read retries.
const defaultRetryInterval = 500 * time.Millisecond

// newGcpRecorder opens the Cloud Logging audit sink.
var newGcpRecorder = func(
	ctx context.Context, project, logName string, opts ...option.ClientOption,
) (audit.Recorder, error) {
	return audit.NewGcpRecorder(ctx, project, logName, opts...)
}

// Session is an authenticated handle to the IAM API. It is created once per
// run by Authenticate and is not modified afterwards.
type Session struct {
	service   *iam.Service
	creds     *google.Credentials
	transport *ratelimit.RoundTripper
	recorder  audit.Recorder
	runID     string

	readRetries   int
	retryInterval time.Duration
}

// RunID returns the identifier of the run the session belongs to.
func (s *Session) RunID() string {
	return s.runID
}

// Authenticate reads the service account credentials in opts and builds an
// IAM client with them. A token is fetched right away so that a bad key or
// a rejected scope fails here rather than on the first call.
func (di *DefaultManagerImplementation) Authenticate(
	ctx context.Context, opts *options.Options, runID string,
) (*Session, error) {
	data, err := os.ReadFile(opts.CredentialsFile)
	if err != nil {
		return nil, identity.NewError(
			"authenticate", opts.CredentialsFile, identity.ErrCredential, err,
		)
	}

	transport := ratelimit.NewRoundTripper("iam", rate.Limit(opts.RequestsPerSecond))
	baseClient := &http.Client{Transport: transport, Timeout: opts.Timeout}

	// The token exchange goes through the rate limited client too.
	authCtx := context.WithValue(ctx, oauth2.HTTPClient, baseClient)
	creds, err := google.CredentialsFromJSONWithType(
		authCtx, data, google.ServiceAccount, opts.Scopes...,
	)
	if err != nil {
		return nil, identity.NewError(
			"authenticate", opts.CredentialsFile, identity.ErrCredential, err,
		)
	}

	token, err := creds.TokenSource.Token()
	if err != nil {
		return nil, identity.NewError(
			"authenticate", opts.CredentialsFile, identity.ErrCredential,
			errors.Wrap(err, "fetching access token"),
		)
	}
	logrus.Debugf("Authenticated to project %s", creds.ProjectID)

	client := &http.Client{
		Transport: &oauth2.Transport{
			Base:   transport,
			Source: oauth2.ReuseTokenSource(token, creds.TokenSource),
		},
		Timeout: opts.Timeout,
	}

	clientOpts := []option.ClientOption{option.WithHTTPClient(client)}
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}

	service, err := iam.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, identity.NewError(
			"authenticate", opts.CredentialsFile, identity.ErrCredential,
			errors.Wrap(err, "creating iam client"),
		)
	}

	var recorder audit.Recorder = audit.NewLogRecorder(nil)
	if opts.AuditLogProject != "" {
		recorder, err = newGcpRecorder(
			ctx, opts.AuditLogProject, opts.AuditLogName, option.WithCredentials(creds),
		)
		if err != nil {
			return nil, identity.NewError(
				"authenticate", opts.AuditLogProject, identity.ErrRemote,
				errors.Wrap(err, "opening audit log"),
			)
		}
	}

	return &Session{
		service:       service,
		creds:         creds,
		transport:     transport,
		recorder:      recorder,
		runID:         runID,
		readRetries:   opts.ReadRetries,
		retryInterval: defaultRetryInterval,
	}, nil
}

// Close flushes the audit recorder. Nothing else in a session needs to be
// torn down.
func (di *DefaultManagerImplementation) Close(s *Session) error {
	if s == nil {
		return nil
	}

	total, waited := s.transport.Stats()
	logrus.WithField("run", s.RunID()).Debugf(
		"%s: %d requests sent, %v spent waiting on the rate limiter",
		s.transport.Name(), total, waited,
	)

	return errors.Wrap(s.recorder.Close(), "closing audit recorder")
}

// record emits an audit event for a successful mutation.
func (s *Session) record(action options.Action, project, resource string) {
	s.recorder.Record(audit.Event{
		Action:   string(action),
		Project:  project,
		Resource: resource,
		RunID:    s.RunID(),
	})
}
