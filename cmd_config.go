package main

import (
	"github.com/spf13/cobra"

	"github.com/pytroll/fdrtool/pkg/cliutil"
)

var argparserConfig = &cobra.Command{
	Use:   "config {[flags]|SUBCOMMAND...}",
	Short: "Inspect and validate pipeline configuration files",

	Args: cliutil.OnlySubcommands,
	RunE: cliutil.RunSubcommands,
}

func init() {
	argparser.AddCommand(argparserConfig)
}
