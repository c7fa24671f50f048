// Package mocks provides testify-based mock implementations for testing
// without a reachable Lab Manager server.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vmlabs/go-labmanager/pkg/labmanager"
)

// Lifecycle is a mock for labmanager.Lifecycle.
type Lifecycle struct {
	mock.Mock
}

func (m *Lifecycle) GetSingleConfigurationByName(ctx context.Context, name string) (*labmanager.Configuration, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*labmanager.Configuration), args.Error(1)
}

func (m *Lifecycle) GetConfiguration(ctx context.Context, id int) (*labmanager.Configuration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*labmanager.Configuration), args.Error(1)
}

func (m *Lifecycle) ListConfigurations(ctx context.Context, configurationType int) ([]labmanager.Configuration, error) {
	args := m.Called(ctx, configurationType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]labmanager.Configuration), args.Error(1)
}

func (m *Lifecycle) ListMachines(ctx context.Context, configurationID int) ([]labmanager.Machine, error) {
	args := m.Called(ctx, configurationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]labmanager.Machine), args.Error(1)
}

func (m *Lifecycle) ConfigurationCheckout(ctx context.Context, configurationID int, workspaceName string) (int, error) {
	args := m.Called(ctx, configurationID, workspaceName)
	return args.Int(0), args.Error(1)
}

func (m *Lifecycle) ConfigurationDeploy(ctx context.Context, configurationID int, isCached bool, fenceMode int) error {
	args := m.Called(ctx, configurationID, isCached, fenceMode)
	return args.Error(0)
}

func (m *Lifecycle) ConfigurationPerformAction(ctx context.Context, configurationID, action int) error {
	args := m.Called(ctx, configurationID, action)
	return args.Error(0)
}

func (m *Lifecycle) ConfigurationUndeploy(ctx context.Context, configurationID int) error {
	args := m.Called(ctx, configurationID)
	return args.Error(0)
}

func (m *Lifecycle) ConfigurationDelete(ctx context.Context, configurationID int) error {
	args := m.Called(ctx, configurationID)
	return args.Error(0)
}

func (m *Lifecycle) MachinePerformAction(ctx context.Context, machineID, action int) error {
	args := m.Called(ctx, machineID, action)
	return args.Error(0)
}

func (m *Lifecycle) GetLastError() string {
	args := m.Called()
	return args.String(0)
}
