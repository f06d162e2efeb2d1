package fabric

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// Printer is a sink that writes encoded objects to w instead of pushing
// them. It is used for dry runs.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Connect does nothing.
func (p *Printer) Connect(context.Context) error {
	return nil
}

// Push writes the object's payload as indented JSON followed by a newline.
func (p *Printer) Push(_ context.Context, obj Object) error {
	payload, err := Encode(obj)
	if err != nil {
		return &PushError{Object: obj.ObjectName(), Err: err}
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, payload, "", "  "); err != nil {
		return &PushError{Object: obj.ObjectName(), Err: err}
	}
	if _, err := fmt.Fprintln(p.w, buf.String()); err != nil {
		return &PushError{Object: obj.ObjectName(), Err: err}
	}
	return nil
}
