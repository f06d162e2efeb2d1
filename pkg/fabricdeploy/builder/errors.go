package builder

import (
	"errors"
	"fmt"
)

var (
	// ErrPortSpec indicates a port cell that is not in leaf/card/port form.
	ErrPortSpec = errors.New("incorrect port specification")
	// ErrLeafCount indicates an interface touching zero or more than two leaves.
	ErrLeafCount = errors.New("incorrect number of leaf nodes")
	// ErrMissingColumn indicates a record without one of the required columns.
	ErrMissingColumn = errors.New("missing column")
)

// SpecError reports a malformed row. It aborts the whole build.
type SpecError struct {
	// Interface is the iface-name of the offending row.
	Interface string
	// Value is the offending cell value or column name, if any.
	Value string
	Err   error
}

func (e *SpecError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("interface %q: %v", e.Interface, e.Err)
	}
	return fmt.Sprintf("interface %q: %v (%s)", e.Interface, e.Err, e.Value)
}

func (e *SpecError) Unwrap() error {
	return e.Err
}

// PolicyWarning reports an unrecognized policy value. The policy is left at
// its default and the build continues.
type PolicyWarning struct {
	Interface string
	// Policy is the human readable policy name, e.g. "CDP".
	Policy string
	Value  string
}

func (w PolicyWarning) String() string {
	return fmt.Sprintf("unexpected %s policy (%s) on interface %s, setting to 'default'", w.Policy, w.Value, w.Interface)
}
