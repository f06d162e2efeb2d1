package builder

import (
	"slices"
	"strings"

	"github.com/ukaji3/fabric-deploy-go/pkg/fabricdeploy/models"
)

var (
	enabledTokens   = []string{"enabled", "enable", "y", "yes"}
	disabledTokens  = []string{"disabled", "disable", "n", "no"}
	negotiateTokens = []string{"y", "yes", "auto", "dynamic", "negotiate"}
	fixedTokens     = []string{"n", "no", "manual", "static", "nonegotiate"}
)

// adminState maps a CDP, LLDP or MCP value. ok is false for values that
// are neither a known token nor "default".
func adminState(value string) (state models.AdminState, ok bool) {
	v := strings.ToLower(value)
	switch {
	case slices.Contains(enabledTokens, v):
		return models.AdminEnabled, true
	case slices.Contains(disabledTokens, v):
		return models.AdminDisabled, true
	case v == "default":
		return models.AdminDefault, true
	default:
		return models.AdminDefault, false
	}
}

// lacpMode maps an LACP value. ok is false for unknown values.
func lacpMode(value string) (mode models.LACPMode, ok bool) {
	switch strings.ToLower(value) {
	case "active":
		return models.LACPActive, true
	case "passive":
		return models.LACPPassive, true
	case "off":
		return models.LACPOff, true
	case "default":
		return models.LACPDefault, true
	default:
		return models.LACPDefault, false
	}
}

// linkPolicy maps the speed-auto value. There is no "default" token: any
// unrecognized value returns nil and ok false.
func linkPolicy(speed, negotiation string) (link *models.LinkPolicy, ok bool) {
	v := strings.ToLower(negotiation)
	switch {
	case slices.Contains(negotiateTokens, v):
		return &models.LinkPolicy{Speed: speed, AutoNegotiate: true}, true
	case slices.Contains(fixedTokens, v):
		return &models.LinkPolicy{Speed: speed, AutoNegotiate: false}, true
	default:
		return nil, false
	}
}

// stpEnabled reports whether an STP flag column is switched on. Every other
// value, including "no" and "default", leaves the flag off without a warning.
func stpEnabled(value string) bool {
	return slices.Contains(enabledTokens, strings.ToLower(value))
}
