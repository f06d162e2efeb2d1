package models

// Topology is the physical shape of an interface.
type Topology int

const (
	// AccessPort is a single port on a single leaf.
	AccessPort Topology = iota
	// PortChannel is two or more ports bundled on the same leaf.
	PortChannel
	// VPC is a port-channel spanning exactly two leaves.
	VPC
)

func (t Topology) String() string {
	switch t {
	case AccessPort:
		return "AccessPort"
	case PortChannel:
		return "PortChannel"
	case VPC:
		return "VPC"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the topology by name.
func (t Topology) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// AdminState is the setting of an on/off interface policy (CDP, LLDP, MCP).
type AdminState int

const (
	// AdminDefault leaves the controller default in place.
	AdminDefault AdminState = iota
	AdminEnabled
	AdminDisabled
)

func (s AdminState) String() string {
	switch s {
	case AdminEnabled:
		return "enabled"
	case AdminDisabled:
		return "disabled"
	default:
		return "default"
	}
}

func (s AdminState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// LACPMode is the link aggregation control protocol mode.
type LACPMode int

const (
	LACPDefault LACPMode = iota
	LACPActive
	LACPPassive
	LACPOff
)

func (m LACPMode) String() string {
	switch m {
	case LACPActive:
		return "active"
	case LACPPassive:
		return "passive"
	case LACPOff:
		return "off"
	default:
		return "default"
	}
}

func (m LACPMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// LinkPolicy holds the link level settings of an interface.
type LinkPolicy struct {
	// Speed is the configured speed as written in the spreadsheet, e.g. "10G".
	Speed string `json:"speed"`
	// AutoNegotiate reports whether speed negotiation is enabled.
	AutoNegotiate bool `json:"auto_negotiate"`
}

// InterfaceConfig is the complete configuration of one fabric access interface.
type InterfaceConfig struct {
	// Name is the unique interface name taken from the row.
	Name     string   `json:"name"`
	Topology Topology `json:"topology"`
	// Ports lists the member ports in the order they were specified.
	Ports []PortSpec `json:"ports"`
	// AEP is the Attachable Access Entity Profile the interface binds to.
	AEP  string     `json:"aep"`
	CDP  AdminState `json:"cdp"`
	LLDP AdminState `json:"lldp"`
	LACP LACPMode   `json:"lacp"`
	MCP  AdminState `json:"mcp"`
	// Link is nil when the link policy is left at the controller default.
	Link          *LinkPolicy `json:"link,omitempty"`
	STPBPDUGuard  bool        `json:"stp_bpdu_guard"`
	STPBPDUFilter bool        `json:"stp_bpdu_filter"`
}

// ObjectName returns the interface name.
func (c *InterfaceConfig) ObjectName() string {
	return c.Name
}

// AddPort appends a member port.
func (c *InterfaceConfig) AddPort(p PortSpec) {
	c.Ports = append(c.Ports, p)
}

// Nodes returns the distinct leaves touched by the interface, in first-seen order.
func (c *InterfaceConfig) Nodes() []string {
	var nodes []string
	seen := make(map[string]bool)
	for _, p := range c.Ports {
		if !seen[p.Leaf] {
			seen[p.Leaf] = true
			nodes = append(nodes, p.Leaf)
		}
	}
	return nodes
}

// PortsOn returns the member ports that live on the given leaf.
func (c *InterfaceConfig) PortsOn(leaf string) []PortSpec {
	var ports []PortSpec
	for _, p := range c.Ports {
		if p.Leaf == leaf {
			ports = append(ports, p)
		}
	}
	return ports
}
