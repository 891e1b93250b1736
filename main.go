// Command fdrtool deals with the metadata side of an AVHRR GAC FDR
// archive: collecting and quality-controlling granule metadata, keeping
// the catalog, stamping the results back into the files, and rendering
// output filenames.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pytroll/fdrtool/pkg/cliutil"
)

var argparser = &cobra.Command{
	Use:   "fdrtool {[flags]|SUBCOMMAND...}",
	Short: "Manage AVHRR GAC FDR metadata",

	Args: cliutil.OnlySubcommands,
	RunE: cliutil.RunSubcommands,

	SilenceErrors: true, // main() will handle this after .ExecuteContext() returns
	SilenceUsage:  true, // our FlagErrorFunc will handle it
}

func init() {
	argparser.SetFlagErrorFunc(cliutil.FlagErrorFunc)
	argparser.SetHelpTemplate(cliutil.HelpTemplate)
}

func main() {
	ctx := context.Background()

	if err := argparser.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(argparser.ErrOrStderr(), "%s: error: %v\n", argparser.CommandPath(), err)
		os.Exit(1)
	}
}
