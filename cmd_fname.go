package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pytroll/fdrtool/pkg/cliutil"
	"github.com/pytroll/fdrtool/pkg/fdrconfig"
	"github.com/pytroll/fdrtool/pkg/fnamefmt"
	"github.com/pytroll/fdrtool/pkg/granule"
	"github.com/pytroll/fdrtool/pkg/reproducible"
)

func init() {
	var flags struct {
		ProcessingLevel string
		ProcessingMode  string
		DispositionMode string
		ProductVersion  string
	}
	cmd := &cobra.Command{
		Use:   "fname [flags] IN_CONFIGFILE IN_GRANULEFILE >NAME",
		Short: "Render the output filename for a granule",
		Long: "Render the configured output filename template " +
			"(output.fname_fmt) for one granule.  The creation time " +
			"placeholder honors SOURCE_DATE_EPOCH, so archive re-runs can " +
			"produce identical names.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := fdrconfig.Load(args[0])
			if err != nil {
				return err
			}
			tmpl, err := fnamefmt.Parse(cfg.Output.FnameFmt)
			if err != nil {
				return err
			}
			doc, err := granule.ReadDocument(args[1])
			if err != nil {
				return err
			}
			md, err := doc.Metadata(args[1])
			if err != nil {
				return err
			}
			versionInt, err := fnamefmt.VersionInt(flags.ProductVersion)
			if err != nil {
				return err
			}

			name, err := tmpl.Render(fnamefmt.Fields{
				"processing_level": flags.ProcessingLevel,
				"platform":         md.Platform,
				"start_time":       md.StartTime,
				"end_time":         md.EndTime,
				"processing_mode":  flags.ProcessingMode,
				"disposition_mode": flags.DispositionMode,
				"creation_time":    reproducible.Now(),
				"version_int":      versionInt,
			})
			if err != nil {
				return err
			}
			if cfg.Output.OutputDir != "" {
				name = filepath.Join(cfg.Output.OutputDir, name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
	cmd.Flags().StringVar(&flags.ProcessingLevel, "processing-level", "L1C",
		"`Value` for the processing_level placeholder")
	cmd.Flags().StringVar(&flags.ProcessingMode, "processing-mode", "R",
		"`Value` for the processing_mode placeholder")
	cmd.Flags().StringVar(&flags.DispositionMode, "disposition-mode", "O",
		"`Value` for the disposition_mode placeholder")
	cmd.Flags().StringVar(&flags.ProductVersion, "product-version", "1.0.0",
		"Dotted product `version`; rendered via the version_int placeholder")
	argparser.AddCommand(cmd)
}
