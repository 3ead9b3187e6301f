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

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iam/v1"

	impl "sigs.k8s.io/sa-manager/internal/manager"
	"sigs.k8s.io/sa-manager/manager/options"
)

// Manager runs one operation on the service accounts of a project.
type Manager struct {
	impl managerImplementation
}

// New returns a Manager talking to the IAM API.
func New() *Manager {
	return &Manager{
		impl: &impl.DefaultManagerImplementation{},
	}
}

// SetImplementation replaces the implementation behind the manager.
func (m *Manager) SetImplementation(mi managerImplementation) {
	m.impl = mi
}

//counterfeiter:generate . managerImplementation

// managerImplementation handles all the functionality of the manager
// actions.
type managerImplementation interface {
	// Session handling
	ValidateOptions(*options.Options) error
	Authenticate(context.Context, *options.Options, string) (*impl.Session, error)
	Close(*impl.Session) error

	// Service accounts
	ListIdentities(context.Context, *impl.Session, string) ([]*iam.ServiceAccount, error)
	GetIdentity(context.Context, *impl.Session, string, string) (*iam.ServiceAccount, error)
	CreateIdentity(context.Context, *impl.Session, string, string) (*iam.ServiceAccount, error)
	DeleteIdentity(context.Context, *impl.Session, string, string) error

	// Keys
	ListKeys(context.Context, *impl.Session, string, string) ([]*iam.ServiceAccountKey, error)
	CreateKey(context.Context, *impl.Session, *iam.ServiceAccount) (*iam.ServiceAccountKey, []byte, error)
	KeyDestination(*options.Options, *iam.ServiceAccount) string
	PersistKey(context.Context, *impl.Session, *options.Options, []byte, string) error
	DeleteKey(context.Context, *impl.Session, string) error

	// Output
	PrintResult(*options.Options, interface{}) error
}

// Run validates the options, opens a session and runs the action named in
// them, printing its result.
func (m *Manager) Run(ctx context.Context, opts *options.Options) (err error) {
	if err := m.impl.ValidateOptions(opts); err != nil {
		return errors.Wrap(err, "validating options")
	}

	runID := uuid.NewString()
	logrus.WithField("run", runID).Infof(
		"Running %s in project %s", opts.Action, opts.Project,
	)

	s, err := m.impl.Authenticate(ctx, opts, runID)
	if err != nil {
		return errors.Wrap(err, "authenticating")
	}
	defer func() {
		if closeErr := m.impl.Close(s); closeErr != nil {
			if err == nil {
				err = errors.Wrap(closeErr, "closing session")
				return
			}
			logrus.Warnf("Closing session: %v", closeErr)
		}
	}()

	result, err := m.dispatch(ctx, s, opts)
	if err != nil {
		return errors.Wrapf(err, "running %s", opts.Action)
	}

	if result == nil {
		return nil
	}

	return errors.Wrap(m.impl.PrintResult(opts, result), "printing result")
}

// dispatch runs a single action. Actions that only delete return a nil
// result.
func (m *Manager) dispatch(
	ctx context.Context, s *impl.Session, opts *options.Options,
) (interface{}, error) {
	switch opts.Action {
	case options.ActionList:
		return m.impl.ListIdentities(ctx, s, opts.Project)
	case options.ActionGet:
		return m.impl.GetIdentity(ctx, s, opts.Project, opts.Account)
	case options.ActionCreate:
		return m.impl.CreateIdentity(ctx, s, opts.Project, opts.Account)
	case options.ActionDelete:
		return nil, m.impl.DeleteIdentity(ctx, s, opts.Project, opts.Account)
	case options.ActionCreateKey:
		return m.createKey(ctx, s, opts)
	case options.ActionListKeys:
		return m.impl.ListKeys(ctx, s, opts.Project, opts.Account)
	case options.ActionDeleteKey:
		return nil, m.impl.DeleteKey(ctx, s, opts.Key)
	default:
		return nil, errors.Errorf("unknown action %q", opts.Action)
	}
}

// createKey looks up the account, issues a key for it and writes the key
// material to its destination. Nothing is written when the key could not
// be created.
func (m *Manager) createKey(
	ctx context.Context, s *impl.Session, opts *options.Options,
) (*iam.ServiceAccountKey, error) {
	account, err := m.impl.GetIdentity(ctx, s, opts.Project, opts.Account)
	if err != nil {
		return nil, errors.Wrap(err, "getting service account")
	}

	key, data, err := m.impl.CreateKey(ctx, s, account)
	if err != nil {
		return nil, errors.Wrap(err, "creating key")
	}

	dest := m.impl.KeyDestination(opts, account)
	if err := m.impl.PersistKey(ctx, s, opts, data, dest); err != nil {
		logrus.Warnf("Key %s was created but could not be stored", key.Name)
		return nil, errors.Wrap(err, "persisting key")
	}

	return key, nil
}
