package builder

// Column labels of the PortMapping sheet.
const (
	ColumnName       = "iface-name"
	ColumnAEP        = "aep"
	ColumnCDP        = "iface-cdp"
	ColumnLLDP       = "iface-lldp"
	ColumnLACP       = "iface-lacp"
	ColumnMCP        = "iface-mcp"
	ColumnSpeed      = "iface-speed"
	ColumnSpeedAuto  = "speed-auto"
	ColumnBPDUGuard  = "iface-bpdu-guard"
	ColumnBPDUFilter = "iface-bpdu-filter"
)

// PortColumns are the port slots of a row, in parse order. They may be absent.
var PortColumns = []string{"leaf-port-1", "leaf-port-2", "leaf-port-3", "leaf-port-4"}

// requiredColumns must be present in every record.
var requiredColumns = []string{
	ColumnName,
	ColumnAEP,
	ColumnCDP,
	ColumnLLDP,
	ColumnLACP,
	ColumnMCP,
	ColumnSpeed,
	ColumnSpeedAuto,
	ColumnBPDUGuard,
	ColumnBPDUFilter,
}
