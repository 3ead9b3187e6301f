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
	"strings"
	"time"

	"github.com/pkg/errors"
	"sigs.k8s.io/release-utils/env"
)

// Action is one of the operations the manager runs per invocation.
type Action string

const (
	ActionCreate    Action = "create"
	ActionGet       Action = "get"
	ActionList      Action = "list"
	ActionDelete    Action = "delete"
	ActionCreateKey Action = "create-key"
	ActionListKeys  Action = "list-keys"
	ActionDeleteKey Action = "delete-key"
)

// Actions lists every supported action in the order they are documented.
var Actions = []Action{
	ActionCreate,
	ActionGet,
	ActionList,
	ActionDelete,
	ActionCreateKey,
	ActionListKeys,
	ActionDeleteKey,
}

// AllowedOutputFormats are the formats results can be printed in.
var AllowedOutputFormats = []string{
	"yaml",
	"json",
}

const (
	DefaultAPIName           = "iam"
	DefaultAPIVersion        = "v1"
	DefaultCredentialsFile   = "manager.json"
	DefaultOutputDir         = "."
	DefaultOutputFormat      = "yaml"
	DefaultReadRetries       = 3
	DefaultRequestsPerSecond = 10
	DefaultTimeout           = 60 * time.Second
	DefaultAuditLogName      = "samgr-audit"

	// CloudPlatformScope is the scope requested when none is configured.
	CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

	// Environment variables consulted for defaults.
	CredentialsEnvVar = "SAMGR_CREDENTIALS"
	ProjectEnvVar     = "SAMGR_PROJECT"
)

// Options capture the switches available to run the manager.
type Options struct {
	// CredentialsFile is the path of the service account JSON key used to
	// authenticate.
	CredentialsFile string `yaml:"credentials"`

	// Scopes are the OAuth2 scopes requested for the session.
	Scopes []string `yaml:"scopes"`

	// APIName and APIVersion name the remote API. Only iam/v1 is supported,
	// they exist so the configuration states what it talks to.
	APIName    string `yaml:"apiName"`
	APIVersion string `yaml:"apiVersion"`

	// Endpoint overrides the IAM API base URL, for emulators and tests.
	Endpoint string `yaml:"endpoint"`

	// Project is the name of the project owning the service accounts.
	Project string `yaml:"project"`

	// Account is the short name of the service account to act on.
	Account string `yaml:"account"`

	// Action is the operation to run.
	Action Action `yaml:"action"`

	// Key is the full resource name of the key to delete.
	Key string `yaml:"key"`

	// OutputDir is where created keys are written. It can be a local
	// directory or a gs://bucket/prefix location.
	OutputDir string `yaml:"outputDir"`

	// OutputFormat is the format results are printed in, yaml or json.
	OutputFormat string `yaml:"outputFormat"`

	// NamespaceKeyFile prefixes key file names with the project.
	NamespaceKeyFile bool `yaml:"namespaceKeyFile"`

	// NoClobber refuses to overwrite an existing key file.
	NoClobber bool `yaml:"noClobber"`

	// ReadRetries is how many times list and get calls are retried on
	// transient failures. Mutating calls are never retried.
	ReadRetries int `yaml:"readRetries"`

	// RequestsPerSecond caps the rate of calls to the IAM API.
	RequestsPerSecond float64 `yaml:"requestsPerSecond"`

	// Timeout bounds each HTTP request, including the token exchange.
	Timeout time.Duration `yaml:"timeout"`

	// AuditLogProject, when set, sends audit entries to Cloud Logging in
	// that project instead of the local log.
	AuditLogProject string `yaml:"auditLogProject"`

	// AuditLogName is the Cloud Logging log audit entries are written to.
	AuditLogName string `yaml:"auditLogName"`
}

// DefaultOptions returns a new set of options populated with the defaults
// and the environment.
func DefaultOptions() *Options {
	return &Options{
		CredentialsFile:   env.Default(CredentialsEnvVar, DefaultCredentialsFile),
		Scopes:            []string{CloudPlatformScope},
		APIName:           DefaultAPIName,
		APIVersion:        DefaultAPIVersion,
		Project:           env.Default(ProjectEnvVar, ""),
		OutputDir:         DefaultOutputDir,
		OutputFormat:      DefaultOutputFormat,
		ReadRetries:       DefaultReadRetries,
		RequestsPerSecond: DefaultRequestsPerSecond,
		Timeout:           DefaultTimeout,
		AuditLogName:      DefaultAuditLogName,
	}
}

// Validate checks an options set before anything is sent to the API.
func (o *Options) Validate() error {
	if o.APIName != DefaultAPIName || o.APIVersion != DefaultAPIVersion {
		return errors.Errorf(
			"unsupported api %s/%s, only %s/%s is available",
			o.APIName, o.APIVersion, DefaultAPIName, DefaultAPIVersion,
		)
	}

	if o.CredentialsFile == "" {
		return errors.New("a credentials file has to be specified")
	}

	if len(o.Scopes) == 0 {
		return errors.New("at least one scope has to be requested")
	}

	if o.Project == "" {
		return errors.New("a project has to be specified")
	}

	if !o.Action.Valid() {
		return errors.Errorf(
			"unknown action %q, must be one of %s", o.Action, ActionNames(),
		)
	}

	switch o.Action {
	case ActionList:
	case ActionDeleteKey:
		if o.Key == "" {
			return errors.New("the key to delete has to be specified")
		}
	default:
		if o.Account == "" {
			return errors.Errorf("action %s needs an account", o.Action)
		}
	}

	if !validOutputFormat(o.OutputFormat) {
		return errors.Errorf(
			"invalid output format %q, allowed values: %s",
			o.OutputFormat, strings.Join(AllowedOutputFormats, ", "),
		)
	}

	if o.ReadRetries < 0 {
		return errors.New("read retries cannot be negative")
	}

	if o.RequestsPerSecond <= 0 {
		return errors.New("requests per second must be positive")
	}

	if o.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	return nil
}

// Valid reports whether a is a supported action.
func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// ActionNames returns the supported actions as a comma separated list.
func ActionNames() string {
	names := make([]string, 0, len(Actions))
	for _, a := range Actions {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}

func validOutputFormat(format string) bool {
	for _, f := range AllowedOutputFormats {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}
