package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pytroll/fdrtool/pkg/cliutil"
	"github.com/pytroll/fdrtool/pkg/fdrconfig"
)

func init() {
	cmd := &cobra.Command{
		Use:   "validate IN_CONFIGFILE",
		Short: "Check a pipeline configuration file for consistency",
		Long: "Load a pipeline configuration file and check its internal " +
			"consistency: the YAML must parse with no unknown keys, the " +
			"output filename template must use only known placeholders, and " +
			"every NetCDF encoding directive must be coherent with its " +
			"declared dtype (fill values representable, compression levels " +
			"in range).",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			cfg, err := fdrconfig.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(flags.OutOrStdout(), "%s: ok (%d encoded variables)\n",
				args[0], len(cfg.NetCDF.Encoding))
			return nil
		},
	}
	argparserConfig.AddCommand(cmd)
}
