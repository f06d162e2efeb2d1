package parser

import (
	"errors"
	"fmt"
)

// ErrRaggedRow indicates a data row holding values beyond the header's last column.
var ErrRaggedRow = errors.New("row does not match header column count")

// LoadError reports a spreadsheet that cannot be opened or does not have
// the shape of a table.
type LoadError struct {
	Path  string
	Sheet string
	// Row is the 1-based spreadsheet row, 0 when the error is not row specific.
	Row int
	Err error
}

func (e *LoadError) Error() string {
	switch {
	case e.Sheet == "":
		return fmt.Sprintf("load %s: %v", e.Path, e.Err)
	case e.Row == 0:
		return fmt.Sprintf("load %s: sheet %q: %v", e.Path, e.Sheet, e.Err)
	default:
		return fmt.Sprintf("load %s: sheet %q row %d: %v", e.Path, e.Sheet, e.Row, e.Err)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
