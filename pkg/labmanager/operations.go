package labmanager

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// intResult converts a scalar result to an int, folding conversion
// failures into the fault policy: a non-numeric body for a numeric
// operation is a malformed service response, not a caller error.
func (c *Client) intResult(op, s string, err error) (int, error) {
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(s))
	if convErr != nil {
		return 0, c.fail(&Fault{Op: op, Message: fmt.Sprintf("malformed numeric result %q", s)})
	}
	return n, nil
}

func decodeObject[T any](el *Element, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	var v T
	if err := el.Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

func decodeListResult[T any](items []Element, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}
	return decodeList[T](items)
}

// ConfigurationCapture copies a workspace configuration to the library
// under a new name and returns the library configuration's id.
func (c *Client) ConfigurationCapture(ctx context.Context, configurationID int, newLibraryName string) (int, error) {
	s, err := c.invokeScalar(ctx, "ConfigurationCapture", configurationID, newLibraryName)
	return c.intResult("ConfigurationCapture", s, err)
}

// ConfigurationCheckout copies a library configuration into the named
// workspace and returns the new workspace configuration's id.
func (c *Client) ConfigurationCheckout(ctx context.Context, configurationID int, workspaceName string) (int, error) {
	s, err := c.invokeScalar(ctx, "ConfigurationCheckout", configurationID, workspaceName)
	return c.intResult("ConfigurationCheckout", s, err)
}

// ConfigurationClone duplicates a workspace configuration under a new
// name and returns the clone's id.
func (c *Client) ConfigurationClone(ctx context.Context, configurationID int, newWorkspaceName string) (int, error) {
	s, err := c.invokeScalar(ctx, "ConfigurationClone", configurationID, newWorkspaceName)
	return c.intResult("ConfigurationClone", s, err)
}

// ConfigurationDelete removes an undeployed configuration.
func (c *Client) ConfigurationDelete(ctx context.Context, configurationID int) error {
	return c.invokeNone(ctx, "ConfigurationDelete", configurationID)
}

// ConfigurationDeploy powers up a configuration with the given network
// fence mode (see the FenceMode constants).
func (c *Client) ConfigurationDeploy(ctx context.Context, configurationID int, isCached bool, fenceMode int) error {
	return c.invokeNone(ctx, "ConfigurationDeploy", configurationID, isCached, fenceMode)
}

// ConfigurationPerformAction applies an Action constant to every machine
// in a configuration.
func (c *Client) ConfigurationPerformAction(ctx context.Context, configurationID, action int) error {
	return c.invokeNone(ctx, "ConfigurationPerformAction", configurationID, action)
}

// ConfigurationSetPublicPrivate toggles a configuration's visibility to
// other users in the organization.
func (c *Client) ConfigurationSetPublicPrivate(ctx context.Context, configurationID int, isPublic bool) error {
	return c.invokeNone(ctx, "ConfigurationSetPublicPrivate", configurationID, isPublic)
}

// ConfigurationUndeploy powers down a deployed configuration.
func (c *Client) ConfigurationUndeploy(ctx context.Context, configurationID int) error {
	return c.invokeNone(ctx, "ConfigurationUndeploy", configurationID)
}

// GetConfiguration fetches one configuration by id.
func (c *Client) GetConfiguration(ctx context.Context, id int) (*Configuration, error) {
	return decodeObject[Configuration](c.invokeObject(ctx, "GetConfiguration", id))
}

// GetConfigurationByName returns every configuration matching the name,
// across the workspace and the library. The slice is empty, never nil,
// when nothing matches.
func (c *Client) GetConfigurationByName(ctx context.Context, name string) ([]Configuration, error) {
	return decodeListResult[Configuration](c.invokeList(ctx, "GetConfigurationByName", name))
}

// GetCurrentOrganizationName reports the organization the session is
// currently issued under.
func (c *Client) GetCurrentOrganizationName(ctx context.Context) (string, error) {
	return c.invokeScalar(ctx, "GetCurrentOrganizationName")
}

// GetCurrentWorkspaceName reports the workspace the session is currently
// issued under.
func (c *Client) GetCurrentWorkspaceName(ctx context.Context) (string, error) {
	return c.invokeScalar(ctx, "GetCurrentWorkspaceName")
}

// GetMachine fetches one machine by id.
func (c *Client) GetMachine(ctx context.Context, machineID int) (*Machine, error) {
	return decodeObject[Machine](c.invokeObject(ctx, "GetMachine", machineID))
}

// GetMachineByName fetches a machine by name within a configuration.
func (c *Client) GetMachineByName(ctx context.Context, configurationID int, name string) (*Machine, error) {
	return decodeObject[Machine](c.invokeObject(ctx, "GetMachineByName", configurationID, name))
}

// GetConsoleAccessInfo returns console connection details for a deployed
// machine.
func (c *Client) GetConsoleAccessInfo(ctx context.Context, machineID int) (*ConsoleAccessInfo, error) {
	return decodeObject[ConsoleAccessInfo](c.invokeObject(ctx, "GetConsoleAccessInfo", machineID))
}

// GetSingleConfigurationByName fetches exactly one configuration by name.
// The service faults when the name is ambiguous or unknown.
func (c *Client) GetSingleConfigurationByName(ctx context.Context, name string) (*Configuration, error) {
	return decodeObject[Configuration](c.invokeObject(ctx, "GetSingleConfigurationByName", name))
}

// ListConfigurations lists configurations of the given type
// (ConfigurationTypeWorkspace or ConfigurationTypeLibrary). Any other
// selector is rejected before a request is made.
func (c *Client) ListConfigurations(ctx context.Context, configurationType int) ([]Configuration, error) {
	return decodeListResult[Configuration](c.invokeList(ctx, "ListConfigurations", configurationType))
}

// ListMachines lists the machines of one configuration.
func (c *Client) ListMachines(ctx context.Context, configurationID int) ([]Machine, error) {
	return decodeListResult[Machine](c.invokeList(ctx, "ListMachines", configurationID))
}

// LiveLink returns a persistent URL for the named configuration.
func (c *Client) LiveLink(ctx context.Context, configName string) (string, error) {
	return c.invokeScalar(ctx, "LiveLink", configName)
}

// MachinePerformAction applies an Action constant to a single machine.
func (c *Client) MachinePerformAction(ctx context.Context, machineID, action int) error {
	return c.invokeNone(ctx, "MachinePerformAction", machineID, action)
}

// SetCurrentOrganizationByName switches the session's server-side
// organization context. Note this does not touch the local credential
// header; use Configure to change the organization calls authenticate
// under.
func (c *Client) SetCurrentOrganizationByName(ctx context.Context, organizationName string) error {
	return c.invokeNone(ctx, "SetCurrentOrganizationByName", organizationName)
}

// SetCurrentWorkspaceByName switches the session's server-side workspace
// context.
func (c *Client) SetCurrentWorkspaceByName(ctx context.Context, workspaceName string) error {
	return c.invokeNone(ctx, "SetCurrentWorkspaceByName", workspaceName)
}
