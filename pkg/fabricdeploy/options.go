// Package fabricdeploy deploys the physical interface configuration described
// in a spreadsheet to a fabric controller.
package fabricdeploy

import (
	"io"

	"github.com/go-logr/logr"
)

// DefaultSheet is the sheet holding the port mapping.
const DefaultSheet = "PortMapping"

// Options configures Deploy.
type Options struct {
	// Sheet is the name of the port mapping sheet. Defaults to DefaultSheet.
	Sheet string
	// Logger receives progress, policy warnings and debug output.
	// A zero Logger discards everything.
	Logger logr.Logger
	// Progress receives one line per pushed object. Nil discards them.
	Progress io.Writer
	// Banner is written to Progress once connected, if set.
	Banner string
}

// DefaultOptions returns default deploy options.
func DefaultOptions() Options {
	return Options{
		Sheet:  DefaultSheet,
		Logger: logr.Discard(),
	}
}

// SheetName returns the sheet to read.
func (o Options) SheetName() string {
	if o.Sheet != "" {
		return o.Sheet
	}
	return DefaultSheet
}

func (o Options) logger() logr.Logger {
	if o.Logger.GetSink() == nil {
		return logr.Discard()
	}
	return o.Logger
}

func (o Options) progress() io.Writer {
	if o.Progress == nil {
		return io.Discard
	}
	return o.Progress
}
