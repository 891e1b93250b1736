package main

import (
	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/pytroll/fdrtool/pkg/attrs"
	"github.com/pytroll/fdrtool/pkg/cliutil"
	"github.com/pytroll/fdrtool/pkg/fdrconfig"
	"github.com/pytroll/fdrtool/pkg/granule"
	"github.com/pytroll/fdrtool/pkg/mdstore"
	"github.com/pytroll/fdrtool/pkg/reproducible"
)

func init() {
	var argDatabase string
	cmd := &cobra.Command{
		Use:   "update [flags] IN_CONFIGFILE",
		Short: "Stamp collected metadata back into the level 1c files",
		Long: "Read the metadata catalog and write the additional metadata " +
			"variables (overlap-free range, midnight line, equator crossing, " +
			"global quality flag) into each granule's metadata document, " +
			"together with the composed global attributes from the " +
			"configuration.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()

			cfg, err := fdrconfig.Load(args[0])
			if err != nil {
				return err
			}
			store, err := mdstore.Open(ctx, argDatabase)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			records, err := store.List(ctx)
			if err != nil {
				return err
			}

			composer := attrs.Composer{Static: cfg.GlobalAttrs}
			for _, md := range records {
				dlog.Debugf(ctx, "Updating metadata in %s", md.Filename)
				doc, err := granule.ReadDocument(md.Filename)
				if err != nil {
					return err
				}
				doc.Stamp(md)
				for key, val := range composer.Compose(doc, md, reproducible.Now()) {
					doc.GlobalAttrs[key] = val
				}
				if err := doc.Write(md.Filename); err != nil {
					return err
				}
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
