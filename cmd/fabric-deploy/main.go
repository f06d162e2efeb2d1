// Package main provides the CLI entry point for fabric-deploy.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/ukaji3/fabric-deploy-go/pkg/fabricdeploy"
	"github.com/ukaji3/fabric-deploy-go/pkg/fabricdeploy/credentials"
	"github.com/ukaji3/fabric-deploy-go/pkg/fabricdeploy/fabric"
	"github.com/ukaji3/fabric-deploy-go/pkg/fabricdeploy/logging"
)

const banner = `
   _____     _          _           ____             _
  |  ___|_ _| |__  _ __(_) ___     |  _ \  ___ _ __ | | ___  _   _
  | |_ / _` + "`" + ` | '_ \| '__| |/ __|____| | | |/ _ \ '_ \| |/ _ \| | | |
  |  _| (_| | |_) | |  | | (_|_____| |_| |  __/ |_) | | (_) | |_| |
  |_|  \__,_|_.__/|_|  |_|\___|    |____/ \___| .__/|_|\___/ \__, |
                                              |_|            |___/

  == A tool to deploy physical configuration on a fabric ==
`

var (
	creds  credentials.Credentials
	sheet  string
	dryRun bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fabric-deploy --input ports.xlsx",
		Short: "Deploy physical interface configuration to a fabric",
		Long: `fabric-deploy reads the PortMapping sheet of a spreadsheet, builds one
access port, port-channel or vPC per row and pushes them to the fabric
controller after the standard interface policies.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	creds.AddFlags(rootCmd.Flags())
	rootCmd.Flags().StringVar(&sheet, "sheet", fabricdeploy.DefaultSheet, "Name of the port mapping sheet")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the objects instead of pushing them")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	opts := []credentials.Option{
		credentials.WithFileRequired(cmd.Flags().Changed("credentials")),
	}
	if !dryRun {
		if p := credentials.NewTerminalPrompter(os.Stdin, cmd.ErrOrStderr()); p != nil {
			opts = append(opts, credentials.WithPrompter(p))
		}
	}
	if err := creds.Complete(opts...); err != nil {
		return err
	}
	if err := creds.Validate(!dryRun); err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), creds.Debug)

	deployOpts := fabricdeploy.Options{
		Sheet:  sheet,
		Logger: logger,
	}
	var sink fabricdeploy.Sink
	if dryRun {
		sink = fabric.NewPrinter(cmd.OutOrStdout())
		// stdout carries the payloads
		deployOpts.Progress = cmd.ErrOrStderr()
	} else {
		clientOpts := []fabric.Option{fabric.WithLogger(logger.WithName("fabric"))}
		if creds.Insecure {
			clientOpts = append(clientOpts, fabric.WithInsecure())
		}
		client, err := fabric.New(creds.URL, creds.Login, creds.Password, clientOpts...)
		if err != nil {
			return err
		}
		sink = client
		deployOpts.Progress = cmd.OutOrStdout()
		deployOpts.Banner = banner
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return fabricdeploy.Deploy(ctx, creds.Input, sink, deployOpts)
}

