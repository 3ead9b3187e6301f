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

package options

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

var _ pflag.Value = new(Action)

// String implements pflag.Value.
func (a *Action) String() string { return string(*a) }

// Set implements pflag.Value, rejecting unknown actions.
func (a *Action) Set(value string) error {
	if !Action(value).Valid() {
		return errors.Errorf("must be one of %s", ActionNames())
	}
	*a = Action(value)
	return nil
}

// Type implements pflag.Value.
func (a *Action) Type() string { return "action" }

// AddFlags registers a flag for every option in fs. The flag names are the
// keys MergeFile checks before applying a config file value.
func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.Var(
		&o.Action,
		"action",
		fmt.Sprintf("the action to run, one of %s", ActionNames()),
	)

	fs.StringVar(
		&o.Project,
		"project",
		o.Project,
		fmt.Sprintf("name of the project owning the service accounts (env %s)", ProjectEnvVar),
	)

	fs.StringVar(
		&o.Account,
		"account",
		o.Account,
		"short name of the service account, also used as its display name",
	)

	fs.StringVar(
		&o.Key,
		"key",
		o.Key,
		"full resource name of the key to delete (delete-key only)",
	)

	fs.StringVar(
		&o.CredentialsFile,
		"credentials",
		o.CredentialsFile,
		fmt.Sprintf("service account JSON key used to authenticate (env %s)", CredentialsEnvVar),
	)

	fs.StringSliceVar(
		&o.Scopes,
		"scopes",
		o.Scopes,
		"OAuth2 scopes requested for the session",
	)

	fs.StringVar(
		&o.APIName,
		"api-name",
		o.APIName,
		"name of the remote API, only iam is supported",
	)

	fs.StringVar(
		&o.APIVersion,
		"api-version",
		o.APIVersion,
		"version of the remote API, only v1 is supported",
	)

	fs.StringVar(
		&o.Endpoint,
		"endpoint",
		o.Endpoint,
		"override the IAM API endpoint, for emulators",
	)

	fs.StringVar(
		&o.OutputDir,
		"output-dir",
		o.OutputDir,
		"directory or gs://bucket/prefix where created keys are written",
	)

	fs.StringVar(
		&o.OutputFormat,
		"output-format",
		o.OutputFormat,
		fmt.Sprintf(
			"format results are printed in (allowed values: %s)",
			strings.Join(AllowedOutputFormats, ", "),
		),
	)

	fs.BoolVar(
		&o.NamespaceKeyFile,
		"namespace-key-file",
		o.NamespaceKeyFile,
		"prefix key file names with the project: <project>-<account>.json",
	)

	fs.BoolVar(
		&o.NoClobber,
		"no-clobber",
		o.NoClobber,
		"fail instead of overwriting an existing key file",
	)

	fs.IntVar(
		&o.ReadRetries,
		"read-retries",
		o.ReadRetries,
		"retries of list and get calls on transient failures, mutations are never retried",
	)

	fs.Float64Var(
		&o.RequestsPerSecond,
		"requests-per-second",
		o.RequestsPerSecond,
		"maximum rate of calls to the IAM API",
	)

	fs.DurationVar(
		&o.Timeout,
		"timeout",
		o.Timeout,
		"timeout of each call to the IAM API, including authentication",
	)

	fs.StringVar(
		&o.AuditLogProject,
		"audit-log-project",
		o.AuditLogProject,
		"send audit entries to Cloud Logging in this project instead of the local log",
	)

	fs.StringVar(
		&o.AuditLogName,
		"audit-log-name",
		o.AuditLogName,
		"name of the Cloud Logging log audit entries are written to",
	)
}
