package labmanager

import (
	"context"

	"github.com/vmlabs/go-labmanager/internal/utils"
)

// Wrappers for the internal (LabManagerInternal.asmx) surface.

// VMCopyData describes one machine to carry along in a copy, clone or
// move. StorageServerID may be zero to keep the machine's current
// datastore.
type VMCopyData struct {
	MachineID       int
	StorageServerID int
}

func copyRecords(machines []VMCopyData) []Record {
	recs := make([]Record, 0, len(machines))
	for _, m := range machines {
		fields := []Field{{Name: "machineId", Value: m.MachineID}}
		if m.StorageServerID != 0 {
			fields = append(fields, Field{Name: "storageServerId", Value: m.StorageServerID})
		}
		recs = append(recs, Record{Name: "VMCopyData", Fields: fields})
	}
	return recs
}

// ConfigurationAddMachineEx adds a machine from a template to an
// undeployed configuration and returns the new machine's id.
func (c *Client) ConfigurationAddMachineEx(ctx context.Context, configurationID, templateID int, name, description string, bootSeq, bootDelay int) (int, error) {
	s, err := c.invokeScalar(ctx, "ConfigurationAddMachineEx",
		configurationID, templateID, name, description, bootSeq, bootDelay)
	return c.intResult("ConfigurationAddMachineEx", s, err)
}

// ConfigurationArchiveEx archives a configuration under a new name and
// returns the archive's id.
func (c *Client) ConfigurationArchiveEx(ctx context.Context, configurationID int, archiveName string) (int, error) {
	s, err := c.invokeScalar(ctx, "ConfigurationArchiveEx", configurationID, archiveName)
	return c.intResult("ConfigurationArchiveEx", s, err)
}

// ConfigurationCaptureEx captures a configuration to the library while
// preserving machine state.
func (c *Client) ConfigurationCaptureEx(ctx context.Context, configurationID int, newLibraryName string) (int, error) {
	s, err := c.invokeScalar(ctx, "ConfigurationCaptureEx", configurationID, newLibraryName)
	return c.intResult("ConfigurationCaptureEx", s, err)
}

// ConfigurationChangeOwner reassigns a configuration to another user id.
func (c *Client) ConfigurationChangeOwner(ctx context.Context, configurationID, newOwnerID int) error {
	return c.invokeNone(ctx, "ConfigurationChangeOwner", configurationID, newOwnerID)
}

// ConfigurationCloneToWorkspace clones a configuration into another
// workspace and returns the resulting configuration's id. With
// isNewConfiguration the clone lands in a new configuration named
// newConfigName; without it the machines are merged into the destination
// workspace's existing configuration of that name. A full clone copies
// disks; a linked clone shares them subject to the storage lease.
func (c *Client) ConfigurationCloneToWorkspace(ctx context.Context, destWorkspaceID int, isNewConfiguration bool, newConfigName, description string, configurationID int, machines []VMCopyData, isFullClone bool, storageLease int64) (int, error) {
	s, err := c.invokeScalar(ctx, "ConfigurationCloneToWorkspace",
		destWorkspaceID, isNewConfiguration, newConfigName, description, configurationID,
		copyRecords(machines), isFullClone, storageLease)
	return c.intResult("ConfigurationCloneToWorkspace", s, err)
}

// ConfigurationCopy copies a configuration within its workspace, carrying
// the listed machines, and returns the copy's id.
func (c *Client) ConfigurationCopy(ctx context.Context, configurationID int, newConfigName, description string, machines []VMCopyData) (int, error) {
	s, err := c.invokeScalar(ctx, "ConfigurationCopy",
		configurationID, newConfigName, description, copyRecords(machines))
	return c.intResult("ConfigurationCopy", s, err)
}

// ConfigurationCreateEx creates an empty configuration and returns its id.
func (c *Client) ConfigurationCreateEx(ctx context.Context, name, description string) (int, error) {
	s, err := c.invokeScalar(ctx, "ConfigurationCreateEx", name, description)
	return c.intResult("ConfigurationCreateEx", s, err)
}

// ConfigurationDeployEx2 deploys a configuration bridged onto a specific
// network.
func (c *Client) ConfigurationDeployEx2(ctx context.Context, configurationID, bridgeNetworkID, fenceMode int) error {
	return c.invokeNone(ctx, "ConfigurationDeployEx2", configurationID, bridgeNetworkID, fenceMode)
}

// ConfigurationExport writes a configuration to an SMB share. The UNC
// path is validated locally first; the server reports bad paths with a
// generic fault.
func (c *Client) ConfigurationExport(ctx context.Context, configurationID int, uncPath, username, password string) (int, error) {
	if err := utils.ValidateUNCPath(uncPath); err != nil {
		return 0, &CallerError{Op: "ConfigurationExport", Reason: err.Error()}
	}
	s, err := c.invokeScalar(ctx, "ConfigurationExport", configurationID, uncPath, username, password)
	return c.intResult("ConfigurationExport", s, err)
}

// ConfigurationGetNetworks lists the networks a configuration's machines
// attach to.
func (c *Client) ConfigurationGetNetworks(ctx context.Context, configurationID int) ([]Network, error) {
	return decodeListResult[Network](c.invokeList(ctx, "ConfigurationGetNetworks", configurationID))
}

// ConfigurationImport reads a configuration from an SMB share and returns
// the imported configuration's id.
func (c *Client) ConfigurationImport(ctx context.Context, uncPath, dirUsername, dirPassword, name, description, storageName string) (int, error) {
	if err := utils.ValidateUNCPath(uncPath); err != nil {
		return 0, &CallerError{Op: "ConfigurationImport", Reason: err.Error()}
	}
	s, err := c.invokeScalar(ctx, "ConfigurationImport",
		uncPath, dirUsername, dirPassword, name, description, storageName)
	return c.intResult("ConfigurationImport", s, err)
}

// ConfigurationMove moves a configuration into another workspace.
func (c *Client) ConfigurationMove(ctx context.Context, configurationID, destinationWorkspaceID int) error {
	return c.invokeNone(ctx, "ConfigurationMove", configurationID, destinationWorkspaceID)
}

// GetAllWorkspaces lists every workspace visible to the session.
func (c *Client) GetAllWorkspaces(ctx context.Context) ([]Workspace, error) {
	return decodeListResult[Workspace](c.invokeList(ctx, "GetAllWorkspaces"))
}

// GetCurrentOrganization fetches the organization the session currently
// operates in.
func (c *Client) GetCurrentOrganization(ctx context.Context) (*Organization, error) {
	return decodeObject[Organization](c.invokeObject(ctx, "GetCurrentOrganization"))
}

// GetDefaultPhysicalNetwork returns the id of the default physical
// network.
func (c *Client) GetDefaultPhysicalNetwork(ctx context.Context) (int, error) {
	s, err := c.invokeScalar(ctx, "GetDefaultPhysicalNetwork")
	return c.intResult("GetDefaultPhysicalNetwork", s, err)
}

// GetNetworkInfo lists a machine's network interfaces. The element
// layout varies between server releases, so items are returned raw.
func (c *Client) GetNetworkInfo(ctx context.Context, vmID int) ([]Element, error) {
	return c.invokeList(ctx, "GetNetworkInfo", vmID)
}

// GetObjectConditions reports the condition flags of an arbitrary object.
// The element layout varies between server releases, so the result is
// returned raw.
func (c *Client) GetObjectConditions(ctx context.Context, objectType, objectID int) (*Element, error) {
	return c.invokeObject(ctx, "GetObjectConditions", objectType, objectID)
}

// GetOrganization fetches one organization by id.
func (c *Client) GetOrganization(ctx context.Context, organizationID int) (*Organization, error) {
	return decodeObject[Organization](c.invokeObject(ctx, "GetOrganization", organizationID))
}

// GetOrganizationByName fetches one organization by name.
func (c *Client) GetOrganizationByName(ctx context.Context, organizationName string) (*Organization, error) {
	return decodeObject[Organization](c.invokeObject(ctx, "GetOrganizationByName", organizationName))
}

// GetOrganizationWorkspaces lists an organization's workspaces.
func (c *Client) GetOrganizationWorkspaces(ctx context.Context, organizationID int) ([]Workspace, error) {
	return decodeListResult[Workspace](c.invokeList(ctx, "GetOrganizationWorkspaces", organizationID))
}

// GetOrganizations lists every organization on the server.
func (c *Client) GetOrganizations(ctx context.Context) ([]Organization, error) {
	return decodeListResult[Organization](c.invokeList(ctx, "GetOrganizations"))
}

// GetTemplate fetches one template by id.
func (c *Client) GetTemplate(ctx context.Context, id int) (*Template, error) {
	return decodeObject[Template](c.invokeObject(ctx, "GetTemplate", id))
}

// GetUser fetches one user account by name.
func (c *Client) GetUser(ctx context.Context, userName string) (*User, error) {
	return decodeObject[User](c.invokeObject(ctx, "GetUser", userName))
}

// GetWorkspaceByName fetches one workspace by name.
func (c *Client) GetWorkspaceByName(ctx context.Context, workspaceName string) (*Workspace, error) {
	return decodeObject[Workspace](c.invokeObject(ctx, "GetWorkspaceByName", workspaceName))
}

// LibraryCloneToWorkspace clones a library configuration into a
// workspace in one step and returns the resulting configuration's id.
// With isNewConfiguration the clone lands in a new configuration named
// newConfigName and existingConfigID is ignored (pass zero); without it
// the machines are merged into the workspace configuration identified by
// existingConfigID.
func (c *Client) LibraryCloneToWorkspace(ctx context.Context, libraryID, destWorkspaceID int, isNewConfiguration bool, newConfigName, description string, machines []VMCopyData, existingConfigID int, isFullClone bool, storageLease int64) (int, error) {
	s, err := c.invokeScalar(ctx, "LibraryCloneToWorkspace",
		libraryID, destWorkspaceID, isNewConfiguration, newConfigName, description,
		copyRecords(machines), existingConfigID, isFullClone, storageLease)
	return c.intResult("LibraryCloneToWorkspace", s, err)
}

// ListNetworks lists the networks of the current organization.
func (c *Client) ListNetworks(ctx context.Context) ([]Network, error) {
	return decodeListResult[Network](c.invokeList(ctx, "ListNetworks"))
}

// ListTemplates lists the templates visible to the session.
func (c *Client) ListTemplates(ctx context.Context) ([]Template, error) {
	return decodeListResult[Template](c.invokeList(ctx, "ListTemplates"))
}

// ListTransportNetworksInCurrentOrg lists the transport networks of the
// current organization.
func (c *Client) ListTransportNetworksInCurrentOrg(ctx context.Context) ([]Network, error) {
	return decodeListResult[Network](c.invokeList(ctx, "ListTransportNetworksInCurrentOrg"))
}

// ListUsers lists every user account on the server.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	return decodeListResult[User](c.invokeList(ctx, "ListUsers"))
}

// MachineUpgradeVirtualHardware upgrades a machine's virtual hardware to
// the host's version.
func (c *Client) MachineUpgradeVirtualHardware(ctx context.Context, machineID int) error {
	return c.invokeNone(ctx, "MachineUpgradeVirtualHardware", machineID)
}

// NetworkInterfaceCreate adds a NIC to an undeployed machine and returns
// the interface id. A non-empty ipAddress must be a valid IPv4 address.
func (c *Client) NetworkInterfaceCreate(ctx context.Context, vmID, networkID int, ipAssignmentType, ipAddress string) (int, error) {
	if ipAddress != "" {
		if err := utils.ValidateIPv4(ipAddress); err != nil {
			return 0, &CallerError{Op: "NetworkInterfaceCreate", Reason: err.Error()}
		}
	}
	s, err := c.invokeScalar(ctx, "NetworkInterfaceCreate", vmID, networkID, ipAssignmentType, ipAddress)
	return c.intResult("NetworkInterfaceCreate", s, err)
}

// NetworkInterfaceDelete removes a NIC from an undeployed machine.
func (c *Client) NetworkInterfaceDelete(ctx context.Context, vmID, nicID int) error {
	return c.invokeNone(ctx, "NetworkInterfaceDelete", vmID, nicID)
}

// NetworkInterfaceModify rewires a NIC to another network. A non-empty
// ipAddress must be a valid IPv4 address.
func (c *Client) NetworkInterfaceModify(ctx context.Context, vmID, nicID, networkID int, ipAddress string) error {
	if ipAddress != "" {
		if err := utils.ValidateIPv4(ipAddress); err != nil {
			return &CallerError{Op: "NetworkInterfaceModify", Reason: err.Error()}
		}
	}
	return c.invokeNone(ctx, "NetworkInterfaceModify", vmID, nicID, networkID, ipAddress)
}

// StorageServerVMFSFindByName resolves a VMFS storage server name to its
// id.
func (c *Client) StorageServerVMFSFindByName(ctx context.Context, name string) (int, error) {
	s, err := c.invokeScalar(ctx, "StorageServerVMFSFindByName", name)
	return c.intResult("StorageServerVMFSFindByName", s, err)
}

// TemplateChangeOwner reassigns a template to another user id.
func (c *Client) TemplateChangeOwner(ctx context.Context, templateID, newOwnerID int) error {
	return c.invokeNone(ctx, "TemplateChangeOwner", templateID, newOwnerID)
}

// TemplateExport writes a template to an SMB share.
func (c *Client) TemplateExport(ctx context.Context, templateID int, uncPath, username, password string) (int, error) {
	if err := utils.ValidateUNCPath(uncPath); err != nil {
		return 0, &CallerError{Op: "TemplateExport", Reason: err.Error()}
	}
	s, err := c.invokeScalar(ctx, "TemplateExport", templateID, uncPath, username, password)
	return c.intResult("TemplateExport", s, err)
}

// TemplateImport reads a template from an SMB share and returns the new
// template's id.
func (c *Client) TemplateImport(ctx context.Context, uncPath, dirUsername, dirPassword, name, description, storageName string) (int, error) {
	if err := utils.ValidateUNCPath(uncPath); err != nil {
		return 0, &CallerError{Op: "TemplateImport", Reason: err.Error()}
	}
	s, err := c.invokeScalar(ctx, "TemplateImport",
		uncPath, dirUsername, dirPassword, name, description, storageName)
	return c.intResult("TemplateImport", s, err)
}

// TemplateImportFromSMB reads a template from an SMB share onto a named
// storage server and returns the new template's id.
func (c *Client) TemplateImportFromSMB(ctx context.Context, uncPath, username, password, name, description, storageServerName string) (int, error) {
	if err := utils.ValidateUNCPath(uncPath); err != nil {
		return 0, &CallerError{Op: "TemplateImportFromSMB", Reason: err.Error()}
	}
	s, err := c.invokeScalar(ctx, "TemplateImportFromSMB",
		uncPath, username, password, name, description, storageServerName)
	return c.intResult("TemplateImportFromSMB", s, err)
}

// TemplatePerformAction applies an action to a template.
func (c *Client) TemplatePerformAction(ctx context.Context, templateID, action int) error {
	return c.invokeNone(ctx, "TemplatePerformAction", templateID, action)
}

// WorkspaceCreate creates a workspace and returns its id. Quota values of
// zero mean unlimited.
func (c *Client) WorkspaceCreate(ctx context.Context, name string, isMain bool, description string, storedVMQuota, deployedVMQuota int) (int, error) {
	s, err := c.invokeScalar(ctx, "WorkspaceCreate", name, isMain, description, storedVMQuota, deployedVMQuota)
	return c.intResult("WorkspaceCreate", s, err)
}
