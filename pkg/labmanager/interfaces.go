package labmanager

import "context"

// Lifecycle abstracts the configuration lifecycle and lookup operations
// most consumers drive. The real implementation is Client; tests inject
// a mock from the mocks package.
type Lifecycle interface {
	GetSingleConfigurationByName(ctx context.Context, name string) (*Configuration, error)
	GetConfiguration(ctx context.Context, id int) (*Configuration, error)
	ListConfigurations(ctx context.Context, configurationType int) ([]Configuration, error)
	ListMachines(ctx context.Context, configurationID int) ([]Machine, error)
	ConfigurationCheckout(ctx context.Context, configurationID int, workspaceName string) (int, error)
	ConfigurationDeploy(ctx context.Context, configurationID int, isCached bool, fenceMode int) error
	ConfigurationPerformAction(ctx context.Context, configurationID, action int) error
	ConfigurationUndeploy(ctx context.Context, configurationID int) error
	ConfigurationDelete(ctx context.Context, configurationID int) error
	MachinePerformAction(ctx context.Context, machineID, action int) error
	GetLastError() string
}

// compile-time interface compliance check
var _ Lifecycle = (*Client)(nil)
