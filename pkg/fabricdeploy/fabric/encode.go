package fabric

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ukaji3/fabric-deploy-go/pkg/fabricdeploy/models"
)

// Object is anything that can be pushed to the controller.
type Object interface {
	ObjectName() string
}

// Names of the baseline interface policies.
const (
	PolicyCDPEnabled     = "CDP_Enabled"
	PolicyCDPDisabled    = "CDP_Disabled"
	PolicyLLDPEnabled    = "LLDP_Enabled"
	PolicyLLDPDisabled   = "LLDP_Disabled"
	PolicyLACPActive     = "LACP_Active"
	PolicyLACPPassive    = "LACP_Passive"
	PolicyLACPOff        = "LACP_Off"
	PolicyMCPEnabled     = "MCP_Enabled"
	PolicyMCPDisabled    = "MCP_Disabled"
	PolicySTPGuard       = "STP_BPDU_Guard"
	PolicySTPFilter      = "STP_BPDU_Filter"
	PolicySTPGuardFilter = "STP_BPDU_Guard_Filter"
)

// Encode renders an object as the JSON payload posted to uni.
func Encode(obj Object) ([]byte, error) {
	var root managedObject
	switch o := obj.(type) {
	case models.BaselineInterfacePolicies:
		root = baselineMO()
	case *models.BaselineInterfacePolicies:
		root = baselineMO()
	case *models.InterfaceConfig:
		root = interfaceMO(o)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedObject, obj)
	}
	return json.Marshal(root)
}

func baselineMO() managedObject {
	infra := newMO("infraInfra", nil)
	infra.add(
		newMO("cdpIfPol", map[string]string{"name": PolicyCDPEnabled, "adminSt": "enabled"}),
		newMO("cdpIfPol", map[string]string{"name": PolicyCDPDisabled, "adminSt": "disabled"}),
		newMO("lldpIfPol", map[string]string{"name": PolicyLLDPEnabled, "adminRxSt": "enabled", "adminTxSt": "enabled"}),
		newMO("lldpIfPol", map[string]string{"name": PolicyLLDPDisabled, "adminRxSt": "disabled", "adminTxSt": "disabled"}),
		newMO("lacpLagPol", map[string]string{"name": PolicyLACPActive, "mode": "active"}),
		newMO("lacpLagPol", map[string]string{"name": PolicyLACPPassive, "mode": "passive"}),
		newMO("lacpLagPol", map[string]string{"name": PolicyLACPOff, "mode": "off"}),
		newMO("mcpIfPol", map[string]string{"name": PolicyMCPEnabled, "adminSt": "enabled"}),
		newMO("mcpIfPol", map[string]string{"name": PolicyMCPDisabled, "adminSt": "disabled"}),
		newMO("stpIfPol", map[string]string{"name": PolicySTPGuard, "ctrl": "bpdu-guard"}),
		newMO("stpIfPol", map[string]string{"name": PolicySTPFilter, "ctrl": "bpdu-filter"}),
		newMO("stpIfPol", map[string]string{"name": PolicySTPGuardFilter, "ctrl": "bpdu-filter,bpdu-guard"}),
	)
	return infra
}

func interfaceMO(iface *models.InterfaceConfig) managedObject {
	infra := newMO("infraInfra", nil)

	linkName := ""
	if iface.Link != nil {
		linkName = LinkPolicyName(iface.Link)
		autoNeg := "off"
		if iface.Link.AutoNegotiate {
			autoNeg = "on"
		}
		infra.add(newMO("fabricHIfPol", map[string]string{
			"name":    linkName,
			"speed":   linkSpeed(iface.Link),
			"autoNeg": autoNeg,
		}))
	}

	group, groupDn := policyGroupMO(iface, linkName)
	infra.add(newMO("infraFuncP", nil, group))

	for _, leaf := range iface.Nodes() {
		selector := newMO("infraHPortS", map[string]string{"name": iface.Name, "type": "range"})
		for i, p := range iface.PortsOn(leaf) {
			selector.add(newMO("infraPortBlk", map[string]string{
				"name":     fmt.Sprintf("block%d", i+1),
				"fromCard": p.Card,
				"toCard":   p.Card,
				"fromPort": p.Port,
				"toPort":   p.Port,
			}))
		}
		selector.add(newMO("infraRsAccBaseGrp", map[string]string{"tDn": groupDn}))

		profile := InterfaceProfileName(leaf)
		infra.add(
			newMO("infraAccPortP", map[string]string{"name": profile}, selector),
			newMO("infraNodeP", map[string]string{"name": SwitchProfileName(leaf)},
				newMO("infraLeafS", map[string]string{"name": "Leaf" + leaf, "type": "range"},
					newMO("infraNodeBlk", map[string]string{"name": "node" + leaf, "from_": leaf, "to_": leaf}),
				),
				newMO("infraRsAccPortP", map[string]string{"tDn": "uni/infra/accportprof-" + profile}),
			),
		)
	}

	return infra
}

// policyGroupMO builds the access policy group of an interface and returns it
// with its distinguished name.
func policyGroupMO(iface *models.InterfaceConfig, linkName string) (managedObject, string) {
	var group managedObject
	var dn string
	switch iface.Topology {
	case models.AccessPort:
		group = newMO("infraAccPortGrp", map[string]string{"name": iface.Name})
		dn = "uni/infra/funcprof/accportgrp-" + iface.Name
	default:
		lagT := "link"
		if iface.Topology == models.VPC {
			lagT = "node"
		}
		group = newMO("infraAccBndlGrp", map[string]string{"name": iface.Name, "lagT": lagT})
		dn = "uni/infra/funcprof/accbundle-" + iface.Name
	}

	if name := adminPolicyName(iface.CDP, PolicyCDPEnabled, PolicyCDPDisabled); name != "" {
		group.add(newMO("infraRsCdpIfPol", map[string]string{"tnCdpIfPolName": name}))
	}
	if name := adminPolicyName(iface.LLDP, PolicyLLDPEnabled, PolicyLLDPDisabled); name != "" {
		group.add(newMO("infraRsLldpIfPol", map[string]string{"tnLldpIfPolName": name}))
	}
	if name := adminPolicyName(iface.MCP, PolicyMCPEnabled, PolicyMCPDisabled); name != "" {
		group.add(newMO("infraRsMcpIfPol", map[string]string{"tnMcpIfPolName": name}))
	}
	if name := lacpPolicyName(iface.LACP); name != "" && iface.Topology != models.AccessPort {
		group.add(newMO("infraRsLacpPol", map[string]string{"tnLacpLagPolName": name}))
	}
	if name := stpPolicyName(iface.STPBPDUGuard, iface.STPBPDUFilter); name != "" {
		group.add(newMO("infraRsStpIfPol", map[string]string{"tnStpIfPolName": name}))
	}
	if linkName != "" {
		group.add(newMO("infraRsHIfPol", map[string]string{"tnFabricHIfPolName": linkName}))
	}
	if iface.AEP != "" {
		group.add(newMO("infraRsAttEntP", map[string]string{"tDn": "uni/infra/attentp-" + iface.AEP}))
	}

	return group, dn
}

func adminPolicyName(state models.AdminState, enabled, disabled string) string {
	switch state {
	case models.AdminEnabled:
		return enabled
	case models.AdminDisabled:
		return disabled
	default:
		return ""
	}
}

func lacpPolicyName(mode models.LACPMode) string {
	switch mode {
	case models.LACPActive:
		return PolicyLACPActive
	case models.LACPPassive:
		return PolicyLACPPassive
	case models.LACPOff:
		return PolicyLACPOff
	default:
		return ""
	}
}

func stpPolicyName(guard, filter bool) string {
	switch {
	case guard && filter:
		return PolicySTPGuardFilter
	case guard:
		return PolicySTPGuard
	case filter:
		return PolicySTPFilter
	default:
		return ""
	}
}

// LinkPolicyName returns the name of the link level policy for a speed and
// negotiation setting, e.g. "Link_10G_Auto".
func LinkPolicyName(link *models.LinkPolicy) string {
	mode := "Fixed"
	if link.AutoNegotiate {
		mode = "Auto"
	}
	return fmt.Sprintf("Link_%s_%s", strings.ReplaceAll(linkSpeed(link), " ", ""), mode)
}

// linkSpeed returns the speed sent to the controller. A blank speed keeps
// the port's own speed.
func linkSpeed(link *models.LinkPolicy) string {
	if link.Speed == "" {
		return "inherit"
	}
	return link.Speed
}

// InterfaceProfileName returns the interface profile name of a leaf.
func InterfaceProfileName(leaf string) string {
	return "Leaf" + leaf + "_IntProf"
}

// SwitchProfileName returns the switch profile name of a leaf.
func SwitchProfileName(leaf string) string {
	return "Leaf" + leaf + "_Prof"
}
