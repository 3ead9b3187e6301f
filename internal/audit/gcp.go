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

package audit

import (
	"context"

	"cloud.google.com/go/logging"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// GcpRecorder sends audit events to Cloud Logging. Entries are buffered by
// the logging client and flushed on Close.
type GcpRecorder struct {
	client *logging.Client
	logger *logging.Logger
}

// NewGcpRecorder returns a recorder writing to logName in projectID.
func NewGcpRecorder(
	ctx context.Context, projectID, logName string, opts ...option.ClientOption,
) (*GcpRecorder, error) {
	client, err := logging.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "creating cloud logging client")
	}

	client.OnError = func(err error) {
		logrus.Warnf("Cloud Logging audit error: %v", err)
	}

	return &GcpRecorder{
		client: client,
		logger: client.Logger(logName),
	}, nil
}

// Record queues e as a structured entry.
func (r *GcpRecorder) Record(e Event) {
	labels := map[string]string{"action": e.Action}
	if e.RunID != "" {
		labels["run"] = e.RunID
	}
	r.logger.Log(logging.Entry{
		Severity: logging.Notice,
		Payload:  e,
		Labels:   labels,
	})
}

// Close flushes pending entries and closes the client.
func (r *GcpRecorder) Close() error {
	return errors.Wrap(r.client.Close(), "closing cloud logging client")
}
