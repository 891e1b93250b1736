package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/pytroll/fdrtool/pkg/cliutil"
	"github.com/pytroll/fdrtool/pkg/mdstore"
)

func init() {
	var argDatabase string
	cmd := &cobra.Command{
		Use:   "dump [flags] >OUT_METADATA.yml",
		Short: "Dump the metadata catalog as YAML",
		Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()

			store, err := mdstore.Open(ctx, argDatabase)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			records, err := store.List(ctx)
			if err != nil {
				return err
			}
			yamlBytes, err := yaml.Marshal(records)
			if err != nil {
				return err
			}
			if _, err := flags.OutOrStdout().Write(yamlBytes); err != nil {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&argDatabase, "database", "",
		"Read metadata from the catalog at `DSN`")
	if err := cmd.MarkFlagRequired("database"); err != nil {
		panic(err)
	}
	argparserMda.AddCommand(cmd)
}
