package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/pytroll/fdrtool/pkg/cliutil"
	"github.com/pytroll/fdrtool/pkg/mdstore"
	"github.com/pytroll/fdrtool/pkg/qc"
)

func init() {
	collector := qc.NewCollector()
	var argDatabase string
	cmd := &cobra.Command{
		Use:   "collect [flags] IN_GRANULEFILES... >OUT_METADATA.json",
		Short: "Collect and complement metadata from level 1c files",
		Long: "Collect metadata from the given level 1c granule files and " +
			"complement it with global quality flags, equator crossing time, " +
			"midnight line, and overlap information.  The result goes to the " +
			"catalog database given by --database, or as JSON to stdout.",
		Args: cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()

			records, err := collector.Collect(ctx, args)
			if err != nil {
				return err
			}

			if argDatabase == "" {
				encoder := json.NewEncoder(flags.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(records)
			}

			store, err := mdstore.Open(ctx, argDatabase)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()
			return store.Save(ctx, records)
		},
	}
	cmd.Flags().StringVar(&argDatabase, "database", "",
		"Write metadata to the catalog at `DSN` instead of stdout")
	cmd.Flags().IntVar(&collector.MinNumLines, "min-num-lines", collector.MinNumLines,
		"Minimum `number` of scanlines for a file to be considered ok")
	cmd.Flags().DurationVar(&collector.MinDuration, "min-duration", collector.MinDuration,
		"Minimum `duration` for a file to be considered ok")
	cmd.Flags().DurationVar(&collector.MaxDuration, "max-duration", collector.MaxDuration,
		"Maximum `duration` for a file to be considered ok")
	cmd.Flags().IntVar(&collector.RedundantWindow, "redundant-window", collector.RedundantWindow,
		"`Number` of preceding files taken into account by the redundancy check")
	cmd.Flags().BoolVar(&collector.OpenEnd, "open-end", false,
		"Leave the last file's overlap_free_end unset (for incremental runs)")
	argparserMda.AddCommand(cmd)
}
