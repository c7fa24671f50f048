package labmanager

// Entity structs mirror the element names of the service's
// document/literal responses. Fields the server omits decode to their
// zero values.

// Configuration is a named virtual-machine-set definition, either in the
// shared library or in a workspace.
type Configuration struct {
	ID                       int    `xml:"id"`
	Name                     string `xml:"name"`
	Description              string `xml:"description"`
	IsDeployed               bool   `xml:"isDeployed"`
	IsPublic                 bool   `xml:"isPublic"`
	FenceMode                int    `xml:"fenceMode"`
	Type                     int    `xml:"type"`
	Owner                    string `xml:"owner"`
	DateCreated              string `xml:"dateCreated"`
	AutoDeleteInMilliSeconds int64  `xml:"autoDeleteInMilliSeconds"`
	AutoDeleteDateTime       string `xml:"autoDeleteDateTime"`
	BucketName               string `xml:"bucketName"`
	MustBeFenced             string `xml:"mustBeFenced"`
}

// Machine is a single virtual machine inside a configuration.
type Machine struct {
	ID           int    `xml:"id"`
	Name         string `xml:"name"`
	Description  string `xml:"description"`
	ConfigID     int    `xml:"configID"`
	Status       int    `xml:"status"`
	IsDeployed   bool   `xml:"isDeployed"`
	InternalIP   string `xml:"internalIP"`
	ExternalIP   string `xml:"externalIP"`
	MacAddress   string `xml:"macAddress"`
	Memory       int    `xml:"memory"`
	OwnerName    string `xml:"OwnerFullName"`
	DatastoreOn  string `xml:"DatastoreNameResidesOn"`
	HostDeployed string `xml:"HostNameDeployedOn"`
}

// Template is a library virtual-machine template.
type Template struct {
	ID          int    `xml:"id"`
	Name        string `xml:"name"`
	Description string `xml:"description"`
	Memory      int    `xml:"memory"`
	CPUCount    int    `xml:"cpu_count"`
	Status      int    `xml:"status"`
	IsDeployed  bool   `xml:"is_deployed"`
	IsPublic    bool   `xml:"is_public"`
	IsBusy      bool   `xml:"is_busy"`
	OwnerID     int    `xml:"owner_id"`
	StorageName string `xml:"storage_name"`
}

// Network is a configured network visible to the current organization.
type Network struct {
	ID          int    `xml:"NetID"`
	Name        string `xml:"Name"`
	Description string `xml:"Description"`
	Type        int    `xml:"NetType"`
	Gateway     string `xml:"Gateway"`
	Netmask     string `xml:"Netmask"`
	DNS1        string `xml:"Dns1"`
	DNS2        string `xml:"Dns2"`
}

// Organization is a top-level tenant scope.
type Organization struct {
	ID        int    `xml:"Id"`
	Name      string `xml:"Name"`
	IsEnabled bool   `xml:"IsEnabled"`
}

// Workspace is a deployment scope owned by an organization.
type Workspace struct {
	ID      int    `xml:"Id"`
	Name    string `xml:"Name"`
	IsMain  bool   `xml:"IsMain"`
	OrgID   int    `xml:"OrgId"`
	OwnerID int    `xml:"OwnerId"`
}

// User is a Lab Manager account.
type User struct {
	ID          int    `xml:"userId"`
	Name        string `xml:"name"`
	FullName    string `xml:"fullname"`
	Email       string `xml:"email"`
	IsAdmin     bool   `xml:"isAdmin"`
	IsEnabled   bool   `xml:"isEnabled"`
	IsLdap      bool   `xml:"isLdap"`
	StoredQuota int    `xml:"storedVMQuota"`
	DeployQuota int    `xml:"deployedVMQuota"`
}

// ConsoleAccessInfo describes how to reach a machine's console.
type ConsoleAccessInfo struct {
	VmxLocation string `xml:"VmxLocation"`
	ServerName  string `xml:"ServerName"`
	Ticket      string `xml:"Ticket"`
	Port        int    `xml:"Port"`
}
