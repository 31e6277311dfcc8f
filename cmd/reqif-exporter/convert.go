package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"reqif-exporter/internal/convert"
	"reqif-exporter/internal/logging"
	"reqif-exporter/internal/settings"
)

func convertCmd() *cobra.Command {
	var opts convert.Options

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Export the latest iteration of an engineering model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			result, err := convert.New(opts, convert.WithLogger(logging.ForComponent("convert"))).Execute(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s (%d specifications, %d spec objects) in %s\n",
				result.ReqIFPath, result.ArchivePath, result.Specifications, result.SpecObjects, result.Elapsed)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Username, "username", "u", "", "User name for the data source")
	f.StringVarP(&opts.Password, "secret", "s", "", "Password for the data source")
	f.StringVarP(&opts.DataSource, "datasource", "d", "", "Data source: a model dump path or file:// URI")
	f.StringVar(&opts.TemplateSource, "source-reqif", "", "Template .reqif or .reqifz file")
	f.StringVar(&opts.TargetReqIF, "target-reqif", "", "Output path; .reqif and .reqifz are written next to it")
	f.StringVar(&opts.ExportSettings, "export-settings", settings.DefaultFileName, "Export settings file")
	f.StringVar(&opts.EngineeringModelID, "engineering-model-id", "", "Engineering model to export")
	f.BoolVar(&opts.ExcludeAlternativeID, "exclude-alternative-id", false, "Do not write source ids as ALTERNATIVE-ID")

	for _, name := range []string{"username", "secret", "datasource", "source-reqif", "target-reqif", "engineering-model-id"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
