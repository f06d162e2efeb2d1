package models

import "fmt"

// PortSpec identifies a physical port on a leaf switch.
type PortSpec struct {
	// Leaf is the node ID of the leaf switch.
	Leaf string `json:"leaf"`
	// Card is the module (slot) number.
	Card string `json:"card"`
	// Port is the port number on the card.
	Port string `json:"port"`
}

// String returns the port in "leaf/card/port" notation.
func (p PortSpec) String() string {
	return fmt.Sprintf("%s/%s/%s", p.Leaf, p.Card, p.Port)
}
