package main

import (
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/pytroll/fdrtool/pkg/cliutil"
	"github.com/pytroll/fdrtool/pkg/fdrconfig"
)

func init() {
	cmd := &cobra.Command{
		Use:   "dump IN_CONFIGFILE >OUT_CONFIGFILE",
		Short: "Dump a configuration file with defaults resolved",
		Args:  cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			cfg, err := fdrconfig.Load(args[0])
			if err != nil {
				return err
			}
			yamlBytes, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			if _, err := flags.OutOrStdout().Write(yamlBytes); err != nil {
				return err
			}
			return nil
		},
	}
	argparserConfig.AddCommand(cmd)
}
