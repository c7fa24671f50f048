package labmanager

// The internal (LabManagerInternal.asmx) surface. These operations are
// unsupported by VMware and can change between server releases; they are
// cataloged identically to the public ones and differ only in endpoint.
var internalOps = []operation{
	{
		Name: "ConfigurationAddMachineEx", Endpoint: endpointInternal, Shape: shapeScalar,
		Params: []paramSpec{
			p("id", kindInt),
			p("template_id", kindInt),
			p("name", kindString),
			opt("desc", kindString, ""),
			opt("boot_seq", kindInt, 0),
			opt("boot_delay", kindInt, 0),
		},
	},
	{
		Name: "ConfigurationArchiveEx", Endpoint: endpointInternal, Shape: shapeScalar,
		Params: []paramSpec{p("configurationId", kindInt), p("archiveName", kindString)},
	},
	{
		Name: "ConfigurationCaptureEx", Endpoint: endpointInternal, Shape: shapeScalar,
		Params: []paramSpec{p("configurationId", kindInt), p("newLibraryName", kindString)},
	},
	{
		Name: "ConfigurationChangeOwner", Endpoint: endpointInternal, Shape: shapeNone,
		Params: []paramSpec{p("configurationId", kindInt), p("newOwnerId", kindInt)},
	},
	{
		Name: "ConfigurationCloneToWorkspace", Endpoint: endpointInternal, Shape: shapeScalar,
		Params: []paramSpec{
			p("destWorkspaceId", kindInt),
			p("isNewConfiguration", kindBool),
			p("newConfigName", kindString),
			p("description", kindString),
			p("configurationId", kindInt),
			p("vmCopyData", kindRecords),
			p("isFullClone", kindBool),
			p("storageLeaseInMilliseconds", kindLong),
		},
	},
	{
		Name: "ConfigurationCopy", Endpoint: endpointInternal, Shape: shapeScalar,
		Params: []paramSpec{
			p("configurationId", kindInt),
			p("newConfigName", kindString),
			p("description", kindString),
			p("vmCopyData", kindRecords),
		},
	},
	{
		Name: "ConfigurationCreateEx", Endpoint: endpointInternal, Shape: shapeScalar,
		Params: []paramSpec{p("name", kindString), opt("desc", kindString, "")},
	},
	{
		Name: "ConfigurationDeployEx2", Endpoint: endpointInternal, Shape: shapeNone,
		Params: []paramSpec{
			p("configurationId", kindInt),
			p("bridgeNetworkId", kindInt),
			{Name: "fenceMode", Kind: kindInt, Enum: fenceEnum},
		},
	},
	{
		Name: "ConfigurationExport", Endpoint: endpointInternal, Shape: shapeScalar,
		Params: []paramSpec{
			p("configId", kindInt),
			p("uncPath", kindString),
			p("username", kindString),
			p("password", kindString),
		},
	},
	{
		Name: "ConfigurationGetNetworks", Endpoint: endpointInternal, Shape: shapeList, Item: "Network",
		Params: []paramSpec{p("configId", kindInt)},
	},
	{
		Name: "ConfigurationImport", Endpoint: endpointInternal, Shape: shapeScalar,
		Params: []paramSpec{
			p("UNCPath", kindString),
			p("dirUsername", kindString),
			p("dirPassword", kindString),
			p("name", kindString),
			opt("description", kindString, ""),
			opt("storageName", kindString, ""),
		},
	},
	{
		Name: "ConfigurationMove", Endpoint: endpointInternal, Shape: shapeNone,
		Params: []paramSpec{p("configurationId", kindInt), p("destinationWorkspaceId", kindInt)},
	},
	{Name: "GetAllWorkspaces", Endpoint: endpointInternal, Shape: shapeList, Item: "Workspace"},
	{Name: "GetCurrentOrganization", Endpoint: endpointInternal, Shape: shapeObject},
	{Name: "GetDefaultPhysicalNetwork", Endpoint: endpointInternal, Shape: shapeScalar},
	{
		Name: "GetNetworkInfo", Endpoint: endpointInternal, Shape: shapeList,
		Params: []paramSpec{p("vmID", kindInt)},
	},
	{
		Name: "GetObjectConditions", Endpoint: endpointInternal, Shape: shapeObject,
		Params: []paramSpec{p("objectType", kindInt), p("objectID", kindInt)},
	},
	{
		Name: "GetOrganization", Endpoint: endpointInternal, Shape: shapeObject,
		Params: []paramSpec{p("organizationId", kindInt)},
	},
	{
		Name: "GetOrganizationByName", Endpoint: endpointInternal, Shape: shapeObject,
		Params: []paramSpec{p("organizationName", kindString)},
	},
	{
		Name: "GetOrganizationWorkspaces", Endpoint: endpointInternal, Shape: shapeList, Item: "Workspace",
		Params: []paramSpec{p("organizationId", kindInt)},
	},
	{Name: "GetOrganizations", Endpoint: endpointInternal, Shape: shapeList, Item: "Organization"},
	{
		Name: "GetTemplate", Endpoint: endpointInternal, Shape: shapeObject,
		Params: []paramSpec{p("id", kindInt)},
	},
	{
		Name: "GetUser", Endpoint: endpointInternal, Shape: shapeObject,
		Params: []paramSpec{p("userName", kindString)},
	},
	{
		Name: "GetWorkspaceByName", Endpoint: endpointInternal, Shape: shapeObject,
		Params: []paramSpec{p("workspaceName", kindString)},
	},
	{
		Name: "LibraryCloneToWorkspace", Endpoint: endpointInternal, Shape: shapeScalar,
		Params: []paramSpec{
			p("libraryId", kindInt),
			p("destWorkspaceId", kindInt),
			p("isNewConfiguration", kindBool),
			p("newConfigName", kindString),
			p("description", kindString),
			p("copyData", kindRecords),
			p("existingConfigId", kindInt),
			p("isFullClone", kindBool),
			p("storageLeaseInMilliseconds", kindLong),
		},
	},
	{Name: "ListNetworks", Endpoint: endpointInternal, Shape: shapeList, Item: "Network"},
	{Name: "ListTemplates", Endpoint: endpointInternal, Shape: shapeList, Item: "Template"},
	{Name: "ListTransportNetworksInCurrentOrg", Endpoint: endpointInternal, Shape: shapeList, Item: "Network"},
	{Name: "ListUsers", Endpoint: endpointInternal, Shape: shapeList, Item: "User"},
	{
		Name: "MachineUpgradeVirtualHardware", Endpoint: endpointInternal, Shape: shapeNone,
		Params: []paramSpec{p("machineId", kindInt)},
	},
	{
		Name: "NetworkInterfaceCreate", Endpoint: endpointInternal, Shape: shapeScalar,
		Params: []paramSpec{
			p("vmID", kindInt),
			p("networkID", kindInt),
			p("ipAssignmentType", kindString),
			opt("ipAddress", kindString, ""),
		},
	},
	{
		Name: "NetworkInterfaceDelete", Endpoint: endpointInternal, Shape: shapeNone,
		Params: []paramSpec{p("vmID", kindInt), p("nicID", kindInt)},
	},
	{
		Name: "NetworkInterfaceModify", Endpoint: endpointInternal, Shape: shapeNone,
		Params: []paramSpec{
			p("vmID", kindInt),
			p("nicID", kindInt),
			p("networkID", kindInt),
			opt("ipAddress", kindString, ""),
		},
	},
	{
		// The service answers with a storage-server structure; callers only
		// ever want its id, so the catalog lifts that field out.
		Name: "StorageServerVMFSFindByName", Endpoint: endpointInternal, Shape: shapeScalar,
		Params: []paramSpec{p("name", kindString)},
		Post: func(res *Element) (*Element, error) {
			if id := res.Child("id"); id != nil {
				return id, nil
			}
			return res, nil
		},
	},
	{
		Name: "TemplateChangeOwner", Endpoint: endpointInternal, Shape: shapeNone,
		Params: []paramSpec{p("templateId", kindInt), p("newOwnerId", kindInt)},
	},
	{
		Name: "TemplateExport", Endpoint: endpointInternal, Shape: shapeScalar,
		Params: []paramSpec{
			p("template_id", kindInt),
			p("UNCPath", kindString),
			p("username", kindString),
			p("password", kindString),
		},
	},
	{
		Name: "TemplateImport", Endpoint: endpointInternal, Shape: shapeScalar,
		Params: []paramSpec{
			p("UNCPath", kindString),
			p("dirUsername", kindString),
			p("dirPassword", kindString),
			p("name", kindString),
			opt("description", kindString, ""),
			opt("storageName", kindString, ""),
		},
	},
	{
		Name: "TemplateImportFromSMB", Endpoint: endpointInternal, Shape: shapeScalar,
		Params: []paramSpec{
			p("UNCPath", kindString),
			p("username", kindString),
			p("password", kindString),
			p("name", kindString),
			p("description", kindString),
			p("storageServerName", kindString),
		},
	},
	{
		Name: "TemplatePerformAction", Endpoint: endpointInternal, Shape: shapeNone,
		Params: []paramSpec{
			p("template_id", kindInt),
			{Name: "action", Kind: kindInt, Enum: actionEnum},
		},
	},
	{
		Name: "WorkspaceCreate", Endpoint: endpointInternal, Shape: shapeScalar,
		Params: []paramSpec{
			p("name", kindString),
			p("isMain", kindBool),
			opt("description", kindString, ""),
			opt("storedVMQuota", kindInt, 0),
			opt("deployedVMQuota", kindInt, 0),
		},
	},
}
