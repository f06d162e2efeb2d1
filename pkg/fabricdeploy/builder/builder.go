// Package builder turns PortMapping records into interface configurations.
package builder

import (
	"github.com/go-logr/logr"
	"github.com/ukaji3/fabric-deploy-go/pkg/fabricdeploy/models"
)

// Builder classifies records and derives their policies.
type Builder struct {
	logger    logr.Logger
	onWarning func(PolicyWarning)
}

// Option configures a Builder.
type Option func(*Builder)

// WithLogger sets the logger that receives policy warnings.
func WithLogger(logger logr.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// WithWarningHandler registers a callback invoked for every policy warning,
// in addition to logging it.
func WithWarningHandler(fn func(PolicyWarning)) Option {
	return func(b *Builder) {
		b.onWarning = fn
	}
}

// New creates a Builder. By default warnings are discarded.
func New(opts ...Option) *Builder {
	b := &Builder{logger: logr.Discard()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build converts every record into an InterfaceConfig, in input order. The
// first malformed record aborts the batch with a *SpecError and no configs
// are returned.
func (b *Builder) Build(records []models.Record) ([]*models.InterfaceConfig, error) {
	ifaces := make([]*models.InterfaceConfig, 0, len(records))
	for _, record := range records {
		iface, err := b.BuildOne(record)
		if err != nil {
			return nil, err
		}
		ifaces = append(ifaces, iface)
	}
	return ifaces, nil
}

// BuildOne converts a single record.
func (b *Builder) BuildOne(record models.Record) (*models.InterfaceConfig, error) {
	name := record.Get(ColumnName)
	for _, column := range requiredColumns {
		if _, ok := record.Lookup(column); !ok {
			return nil, &SpecError{Interface: name, Value: column, Err: ErrMissingColumn}
		}
	}

	ports, nodes, err := parsePorts(name, record)
	if err != nil {
		return nil, err
	}
	topology, ok := classify(nodes, len(ports))
	if !ok {
		return nil, &SpecError{Interface: name, Err: ErrLeafCount}
	}

	iface := &models.InterfaceConfig{Name: name, Topology: topology}
	for _, p := range ports {
		iface.AddPort(p)
	}
	iface.AEP = record.Get(ColumnAEP)

	var state models.AdminState
	if state, ok = adminState(record.Get(ColumnCDP)); !ok {
		b.warn(name, "CDP", record.Get(ColumnCDP))
	}
	iface.CDP = state

	if state, ok = adminState(record.Get(ColumnLLDP)); !ok {
		b.warn(name, "LLDP", record.Get(ColumnLLDP))
	}
	iface.LLDP = state

	mode, ok := lacpMode(record.Get(ColumnLACP))
	if !ok {
		b.warn(name, "LACP", record.Get(ColumnLACP))
	}
	iface.LACP = mode

	if state, ok = adminState(record.Get(ColumnMCP)); !ok {
		b.warn(name, "MCP", record.Get(ColumnMCP))
	}
	iface.MCP = state

	link, ok := linkPolicy(record.Get(ColumnSpeed), record.Get(ColumnSpeedAuto))
	if !ok {
		b.warn(name, "Link Speed negotiation", record.Get(ColumnSpeedAuto))
	}
	iface.Link = link

	iface.STPBPDUGuard = stpEnabled(record.Get(ColumnBPDUGuard))
	iface.STPBPDUFilter = stpEnabled(record.Get(ColumnBPDUFilter))

	b.logger.V(1).Info("Built interface", "name", name, "topology", topology.String(), "ports", len(ports))
	return iface, nil
}

func (b *Builder) warn(name, policy, value string) {
	w := PolicyWarning{Interface: name, Policy: policy, Value: value}
	b.logger.WithName("warning").Info(w.String(), "interface", name, "policy", policy, "value", value)
	if b.onWarning != nil {
		b.onWarning(w)
	}
}
