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

// Package audit records the mutations a run performs on service accounts
// and keys.
package audit

import (
	"github.com/sirupsen/logrus"
)

// Event describes one successful mutation.
type Event struct {
	// Action is the operation performed, like "create-key".
	Action string `json:"action"`

	// Project owning the resource.
	Project string `json:"project,omitempty"`

	// Resource is the resource name of the account or key.
	Resource string `json:"resource"`

	// RunID identifies the invocation that performed the mutation.
	RunID string `json:"runID,omitempty"`
}

// Recorder stores audit events.
type Recorder interface {
	Record(Event)
	Close() error
}

// LogRecorder writes audit events to a logrus logger.
type LogRecorder struct {
	logger logrus.FieldLogger
}

// NewLogRecorder returns a LogRecorder writing to logger. A nil logger
// means the standard logrus logger.
func NewLogRecorder(logger logrus.FieldLogger) *LogRecorder {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogRecorder{logger: logger}
}

// Record logs e at info level.
func (r *LogRecorder) Record(e Event) {
	r.logger.WithFields(logrus.Fields{
		"audit":    e.Action,
		"project":  e.Project,
		"resource": e.Resource,
		"run":      e.RunID,
	}).Info("Audit")
}

// Close is a NOP (there is nothing to close).
func (r *LogRecorder) Close() error { return nil }
