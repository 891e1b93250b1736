package main

import (
	"github.com/spf13/cobra"

	"github.com/pytroll/fdrtool/pkg/cliutil"
)

var argparserMda = &cobra.Command{
	Use:   "mda {[flags]|SUBCOMMAND...}",
	Short: "Collect, catalog, and stamp granule metadata",

	Args: cliutil.OnlySubcommands,
	RunE: cliutil.RunSubcommands,
}

func init() {
	argparser.AddCommand(argparserMda)
}
