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

// Package manager holds the default implementation of the service account
// manager: authentication, the IAM calls for accounts and keys, key
// persistence and result printing.
package manager

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"sigs.k8s.io/sa-manager/manager/options"
)

// DefaultManagerImplementation talks to the real IAM API.
type DefaultManagerImplementation struct {
	// Out receives the printed results. Defaults to standard output.
	Out io.Writer
}

// ValidateOptions checks an options set
func (di *DefaultManagerImplementation) ValidateOptions(opts *options.Options) error {
	return opts.Validate()
}

// PrintResult writes v to the output in the format named in the options.
func (di *DefaultManagerImplementation) PrintResult(opts *options.Options, v interface{}) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(opts.OutputFormat) {
	case "json":
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	default:
		data, err = yaml.Marshal(v)
	}
	if err != nil {
		return errors.Wrap(err, "marshaling result")
	}

	_, err = di.out().Write(data)
	return errors.Wrap(err, "writing result")
}

func (di *DefaultManagerImplementation) out() io.Writer {
	if di.Out == nil {
		return os.Stdout
	}
	return di.Out
}
