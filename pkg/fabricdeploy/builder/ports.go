package builder

import (
	"strings"

	"github.com/ukaji3/fabric-deploy-go/pkg/fabricdeploy/models"
)

// parsePorts reads the port slots of a record. It returns the ports in
// slot order and the number of distinct leaves they touch.
func parsePorts(name string, record models.Record) ([]models.PortSpec, int, error) {
	var ports []models.PortSpec
	nodes := make(map[string]struct{})

	for _, column := range PortColumns {
		value, ok := record.Lookup(column)
		if !ok || isEmptyPort(value) {
			continue
		}
		parts := strings.Split(value, "/")
		if len(parts) != 3 {
			return nil, 0, &SpecError{Interface: name, Value: value, Err: ErrPortSpec}
		}
		nodes[parts[0]] = struct{}{}
		ports = append(ports, models.PortSpec{Leaf: parts[0], Card: parts[1], Port: parts[2]})
	}

	return ports, len(nodes), nil
}

func isEmptyPort(value string) bool {
	return value == "" || strings.EqualFold(value, "n/a")
}

// classify picks the topology from the number of distinct leaves and ports.
// Leaf count is checked first: two leaves is always a VPC.
func classify(nodes, ports int) (models.Topology, bool) {
	switch nodes {
	case 1:
		if ports == 1 {
			return models.AccessPort, true
		}
		return models.PortChannel, true
	case 2:
		return models.VPC, true
	default:
		return 0, false
	}
}
