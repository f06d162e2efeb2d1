package models

// BaselineInterfacePolicies is the fixed set of fabric-wide interface
// policies every InterfaceConfig refers to. It must be pushed before any
// interface.
type BaselineInterfacePolicies struct{}

// ObjectName returns the name used for the baseline bundle in logs.
func (BaselineInterfacePolicies) ObjectName() string {
	return "InterfacePolicies"
}
