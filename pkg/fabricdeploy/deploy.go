package fabricdeploy

import (
	"context"
	"fmt"

	"github.com/ukaji3/fabric-deploy-go/pkg/fabricdeploy/builder"
	"github.com/ukaji3/fabric-deploy-go/pkg/fabricdeploy/fabric"
	"github.com/ukaji3/fabric-deploy-go/pkg/fabricdeploy/models"
	"github.com/ukaji3/fabric-deploy-go/pkg/fabricdeploy/parser"
)

// Sink receives the objects to deploy. fabric.Client and fabric.Printer
// implement it.
type Sink interface {
	Connect(ctx context.Context) error
	Push(ctx context.Context, obj fabric.Object) error
}

// Plan loads the spreadsheet at path and builds one InterfaceConfig per row
// of the port mapping sheet, in row order.
func Plan(path string, opts Options) ([]*models.InterfaceConfig, error) {
	logger := opts.logger()

	table, err := parser.Load(path, parser.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	records, ok := table.Sheet(opts.SheetName())
	if !ok {
		return nil, fmt.Errorf("%w: %q in %s", ErrSheetNotFound, opts.SheetName(), path)
	}

	return builder.New(builder.WithLogger(logger)).Build(records)
}

// Deploy plans the interfaces described at path and pushes them to sink.
// The banner and progress lines are written only once the sink is connected.
// Nothing is pushed unless every row builds. The baseline interface policies
// are always pushed first, then the interfaces in row order. A failed push
// stops the deployment; objects already pushed are left in place.
func Deploy(ctx context.Context, path string, sink Sink, opts Options) error {
	logger := opts.logger()
	out := opts.progress()

	ifaces, err := Plan(path, opts)
	if err != nil {
		return err
	}

	if err := sink.Connect(ctx); err != nil {
		return err
	}

	if opts.Banner != "" {
		fmt.Fprint(out, opts.Banner)
	}

	fmt.Fprintln(out, "[+] Creating standard interface policies")
	if err := sink.Push(ctx, models.BaselineInterfacePolicies{}); err != nil {
		return err
	}

	for _, iface := range ifaces {
		fmt.Fprintf(out, "[+] Creating interface '%s'\n", iface.Name)
		logger.V(1).Info("Pushing interface", "name", iface.Name, "topology", iface.Topology.String())
		if err := sink.Push(ctx, iface); err != nil {
			return err
		}
	}
	return nil
}
