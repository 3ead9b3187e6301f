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

// Package golden compares test output against files checked in under
// testdata.
package golden

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"sigs.k8s.io/yaml"
)

// UpdateEnvVar makes AssertMatchesFile rewrite the expected files with the
// actual output instead of failing.
const UpdateEnvVar = "UPDATE_EXPECTED_OUTPUT"

// AssertMatchesFile verifies that the contents of p match actual. Strings
// and byte slices are compared as they are, anything else is serialized to
// YAML first.
//
// Run the tests with UPDATE_EXPECTED_OUTPUT set to regenerate the files;
// the resulting changes then show up in review.
func AssertMatchesFile(t *testing.T, actual interface{}, p string) {
	t.Helper()

	var got string
	switch actual := actual.(type) {
	case string:
		got = actual
	case []byte:
		got = string(actual)
	default:
		y, err := yaml.Marshal(actual)
		if err != nil {
			t.Fatalf("error serializing: %v", err)
		}
		got = string(y)
	}

	// Normalize trailing whitespace
	got = strings.TrimSpace(got) + "\n"

	update := os.Getenv(UpdateEnvVar) != ""

	b, err := os.ReadFile(p)
	if err != nil && !update {
		t.Fatalf("error reading file %q: %v", p, err)
	}

	if diff := cmp.Diff(string(b), got); diff != "" {
		if update {
			if err := os.WriteFile(p, []byte(got), 0o644); err != nil {
				t.Fatalf("error writing file %q: %v", p, err)
			}
			return
		}
		t.Errorf("actual did not match %s (-want +got):\n%s", p, diff)
	}
}
