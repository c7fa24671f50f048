package labmanager

// endpoint selects which service surface an operation dispatches to.
type endpoint int

const (
	endpointPublic endpoint = iota
	endpointInternal
)

func (e endpoint) String() string {
	if e == endpointInternal {
		return "internal"
	}
	return "public"
}

// operation is one static catalog entry. Entries declare everything the
// shared core needs: target endpoint, ordered parameter specs, and how to
// unwrap the result. Post, when set, reshapes the located result wrapper
// before normalization (a handful of operations bury their payload one
// level deeper than the convention).
type operation struct {
	Name     string
	Endpoint endpoint
	Params   []paramSpec
	Shape    resultShape
	Item     string                           // list item element name, for shapeList
	Result   string                           // result wrapper override; default Name+"Result"
	Post     func(*Element) (*Element, error) // irregular response post-processing
}

var catalog = make(map[string]*operation)

func register(ops []operation) {
	for i := range ops {
		catalog[ops[i].Name] = &ops[i]
	}
}

func init() {
	register(publicOps)
	register(internalOps)
}

func p(name string, k paramKind) paramSpec {
	return paramSpec{Name: name, Kind: k}
}

func opt(name string, k paramKind, def any) paramSpec {
	return paramSpec{Name: name, Kind: k, Optional: true, Default: def}
}

func enum(name string, allowed ...int) paramSpec {
	return paramSpec{Name: name, Kind: kindInt, Enum: allowed}
}

// Selectors for ListConfigurations.
const (
	ConfigurationTypeWorkspace = 1
	ConfigurationTypeLibrary   = 2
)

// Fence modes applied when deploying a configuration.
const (
	FenceModeNotFenced     = 1
	FenceModeBlockInAndOut = 2
	FenceModeAllowOutOnly  = 3
	FenceModeAllowInAndOut = 4
)

// Actions for ConfigurationPerformAction, MachinePerformAction and
// TemplatePerformAction.
const (
	ActionPowerOn  = 1
	ActionPowerOff = 2
	ActionSuspend  = 3
	ActionResume   = 4
	ActionReset    = 5
	ActionSnapshot = 6
	ActionRevert   = 7
	ActionShutdown = 8
)

var actionEnum = []int{
	ActionPowerOn, ActionPowerOff, ActionSuspend, ActionResume,
	ActionReset, ActionSnapshot, ActionRevert, ActionShutdown,
}

var fenceEnum = []int{
	FenceModeNotFenced, FenceModeBlockInAndOut,
	FenceModeAllowOutOnly, FenceModeAllowInAndOut,
}

var publicOps = []operation{
	{
		Name: "ConfigurationCapture", Shape: shapeScalar,
		Params: []paramSpec{p("configurationId", kindInt), p("newLibraryName", kindString)},
	},
	{
		Name: "ConfigurationCheckout", Shape: shapeScalar,
		Params: []paramSpec{p("configurationId", kindInt), p("workspaceName", kindString)},
	},
	{
		Name: "ConfigurationClone", Shape: shapeScalar,
		Params: []paramSpec{p("configurationId", kindInt), p("newWorkspaceName", kindString)},
	},
	{
		Name: "ConfigurationDelete", Shape: shapeNone,
		Params: []paramSpec{p("configurationId", kindInt)},
	},
	{
		Name: "ConfigurationDeploy", Shape: shapeNone,
		Params: []paramSpec{
			p("configurationId", kindInt),
			p("isCached", kindBool),
			{Name: "fenceMode", Kind: kindInt, Enum: fenceEnum},
		},
	},
	{
		Name: "ConfigurationPerformAction", Shape: shapeNone,
		Params: []paramSpec{
			p("configurationId", kindInt),
			{Name: "action", Kind: kindInt, Enum: actionEnum},
		},
	},
	{
		Name: "ConfigurationSetPublicPrivate", Shape: shapeNone,
		Params: []paramSpec{p("configurationId", kindInt), p("isPublic", kindBool)},
	},
	{
		Name: "ConfigurationUndeploy", Shape: shapeNone,
		Params: []paramSpec{p("configurationId", kindInt)},
	},
	{
		Name: "GetConfiguration", Shape: shapeObject,
		Params: []paramSpec{p("id", kindInt)},
	},
	{
		Name: "GetConfigurationByName", Shape: shapeList, Item: "Configuration",
		Params: []paramSpec{p("name", kindString)},
	},
	{Name: "GetCurrentOrganizationName", Shape: shapeScalar},
	{Name: "GetCurrentWorkspaceName", Shape: shapeScalar},
	{
		Name: "GetMachine", Shape: shapeObject,
		Params: []paramSpec{p("machineId", kindInt)},
	},
	{
		Name: "GetMachineByName", Shape: shapeObject,
		Params: []paramSpec{p("configurationId", kindInt), p("name", kindString)},
	},
	{
		Name: "GetConsoleAccessInfo", Shape: shapeObject,
		Params: []paramSpec{p("machineId", kindInt)},
	},
	{
		Name: "GetSingleConfigurationByName", Shape: shapeObject,
		Params: []paramSpec{p("name", kindString)},
	},
	{
		Name: "ListConfigurations", Shape: shapeList, Item: "Configuration",
		Params: []paramSpec{enum("configurationType", ConfigurationTypeWorkspace, ConfigurationTypeLibrary)},
	},
	{
		Name: "ListMachines", Shape: shapeList, Item: "Machine",
		Params: []paramSpec{p("configurationId", kindInt)},
	},
	{
		Name: "LiveLink", Shape: shapeScalar,
		Params: []paramSpec{p("configName", kindString)},
	},
	{
		Name: "MachinePerformAction", Shape: shapeNone,
		Params: []paramSpec{
			p("machineId", kindInt),
			{Name: "action", Kind: kindInt, Enum: actionEnum},
		},
	},
	{
		Name: "SetCurrentOrganizationByName", Shape: shapeNone,
		Params: []paramSpec{p("organizationName", kindString)},
	},
	{
		Name: "SetCurrentWorkspaceByName", Shape: shapeNone,
		Params: []paramSpec{p("workspaceName", kindString)},
	},
}
