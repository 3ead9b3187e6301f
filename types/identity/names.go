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

// Package identity holds the resource naming rules for service accounts and
// the error kinds returned by every service account operation.
//
// All resource names used against the IAM API must be built here. Callers
// never concatenate resource strings themselves.
package identity

// DomainSuffix is the domain all user managed service account emails
// live under, prefixed by the owning project.
const DomainSuffix = "iam.gserviceaccount.com"

// keyFileExtension is appended to every persisted credentials file.
const keyFileExtension = ".json"

// ProjectResource returns the resource name of a project.
func ProjectResource(project string) string {
	return "projects/" + project
}

// Email returns the email address of the service account called name in
// project.
func Email(project, name string) string {
	return name + "@" + project + "." + DomainSuffix
}

// Resource returns the canonical resource name of the service account
// called name in project:
//
//	projects/<project>/serviceAccounts/<name>@<project>.iam.gserviceaccount.com
func Resource(project, name string) string {
	return ProjectResource(project) + "/serviceAccounts/" + Email(project, name)
}

// KeyFileName returns the file name used to store the credentials of a
// service account with the given display name. When namespaced is set the
// project is prepended so accounts with the same display name in different
// projects do not collide.
func KeyFileName(project, displayName string, namespaced bool) string {
	if namespaced {
		return project + "-" + displayName + keyFileExtension
	}
	return displayName + keyFileExtension
}
