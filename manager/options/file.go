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
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// MergeFile reads a YAML configuration file and copies every value it sets
// into o, except for the settings whose command line flag was passed
// explicitly. isSet receives the flag name and reports whether the user
// set it. A key present in the file is applied even when its value is the
// zero value, so `readRetries: 0` or `noClobber: false` take effect.
func (o *Options) MergeFile(path string, isSet func(flag string) bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading config file %s", path)
	}

	// Keys missing from the file keep the current values.
	f := *o
	f.Scopes = append([]string(nil), o.Scopes...)
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return errors.Wrapf(err, "parsing config file %s", path)
	}

	setters := map[string]func(){
		"credentials":         func() { o.CredentialsFile = f.CredentialsFile },
		"scopes":              func() { o.Scopes = f.Scopes },
		"api-name":            func() { o.APIName = f.APIName },
		"api-version":         func() { o.APIVersion = f.APIVersion },
		"endpoint":            func() { o.Endpoint = f.Endpoint },
		"project":             func() { o.Project = f.Project },
		"account":             func() { o.Account = f.Account },
		"action":              func() { o.Action = f.Action },
		"key":                 func() { o.Key = f.Key },
		"output-dir":          func() { o.OutputDir = f.OutputDir },
		"output-format":       func() { o.OutputFormat = f.OutputFormat },
		"namespace-key-file":  func() { o.NamespaceKeyFile = f.NamespaceKeyFile },
		"no-clobber":          func() { o.NoClobber = f.NoClobber },
		"read-retries":        func() { o.ReadRetries = f.ReadRetries },
		"requests-per-second": func() { o.RequestsPerSecond = f.RequestsPerSecond },
		"timeout":             func() { o.Timeout = f.Timeout },
		"audit-log-project":   func() { o.AuditLogProject = f.AuditLogProject },
		"audit-log-name":      func() { o.AuditLogName = f.AuditLogName },
	}

	for flag, set := range setters {
		if !isSet(flag) {
			set()
		}
	}
	return nil
}
