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

package audit_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"sigs.k8s.io/sa-manager/internal/audit"
)

func TestLogRecorder(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := audit.NewLogRecorder(logger)

	r.Record(audit.Event{
		Action:   "create",
		Project:  "acme",
		Resource: "projects/acme/serviceAccounts/drive1@acme.iam.gserviceaccount.com",
		RunID:    "run-1",
	})

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	require.Equal(t, logrus.InfoLevel, entry.Level)
	require.Equal(t, "Audit", entry.Message)
	require.Equal(t, "create", entry.Data["audit"])
	require.Equal(t, "acme", entry.Data["project"])
	require.Equal(t, "run-1", entry.Data["run"])
	require.Equal(t,
		"projects/acme/serviceAccounts/drive1@acme.iam.gserviceaccount.com",
		entry.Data["resource"],
	)

	require.NoError(t, r.Close())
}

func TestNewLogRecorderDefaultsToStandardLogger(t *testing.T) {
	require.NotNil(t, audit.NewLogRecorder(nil))
}
