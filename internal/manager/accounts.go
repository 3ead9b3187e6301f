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

	"github.com/sirupsen/logrus"
	"google.golang.org/api/iam/v1"

	"sigs.k8s.io/sa-manager/manager/options"
	"sigs.k8s.io/sa-manager/types/identity"
)

// ListIdentities returns every service account in project, following all
// result pages. A project without accounts yields an empty slice.
func (di *DefaultManagerImplementation) ListIdentities(
	ctx context.Context, s *Session, project string,
) ([]*iam.ServiceAccount, error) {
	parent := identity.ProjectResource(project)

	var accounts []*iam.ServiceAccount
	err := s.retryRead(ctx, "listing service accounts", func() error {
		accounts = []*iam.ServiceAccount{}
		return s.service.Projects.ServiceAccounts.List(parent).Pages(
			ctx, func(page *iam.ListServiceAccountsResponse) error {
				accounts = append(accounts, page.Accounts...)
				return nil
			},
		)
	})
	if err != nil {
		return nil, remoteError("list", parent, err, nil)
	}

	logrus.Debugf("Found %d service accounts in %s", len(accounts), parent)
	return accounts, nil
}

// GetIdentity fetches a single service account by its short name.
func (di *DefaultManagerImplementation) GetIdentity(
	ctx context.Context, s *Session, project, name string,
) (*iam.ServiceAccount, error) {
	resource := identity.Resource(project, name)

	var account *iam.ServiceAccount
	err := s.retryRead(ctx, "getting "+resource, func() (err error) {
		account, err = s.service.Projects.ServiceAccounts.Get(resource).Context(ctx).Do()
		return err
	})
	if err != nil {
		return nil, remoteError("get", resource, err, nil)
	}
	return account, nil
}

// CreateIdentity creates a service account whose id and display name are
// both name. The remote naming policy is authoritative: a rejected name is
// reported as ErrInvalidName.
func (di *DefaultManagerImplementation) CreateIdentity(
	ctx context.Context, s *Session, project, name string,
) (*iam.ServiceAccount, error) {
	resource := identity.Resource(project, name)

	account, err := s.service.Projects.ServiceAccounts.Create(
		identity.ProjectResource(project),
		&iam.CreateServiceAccountRequest{
			AccountId: name,
			ServiceAccount: &iam.ServiceAccount{
				DisplayName: name,
			},
		},
	).Context(ctx).Do()
	if err != nil {
		return nil, remoteError("create", resource, err, identity.ErrInvalidName)
	}

	logrus.Infof("Created service account %s", account.Email)
	s.record(options.ActionCreate, project, account.Name)
	return account, nil
}

// DeleteIdentity deletes a service account. Deleting an account that does
// not exist fails with ErrNotFound.
func (di *DefaultManagerImplementation) DeleteIdentity(
	ctx context.Context, s *Session, project, name string,
) error {
	resource := identity.Resource(project, name)

	if _, err := s.service.Projects.ServiceAccounts.Delete(resource).Context(ctx).Do(); err != nil {
		return remoteError("delete", resource, err, nil)
	}

	logrus.Infof("Deleted service account %s", identity.Email(project, name))
	s.record(options.ActionDelete, project, resource)
	return nil
}
