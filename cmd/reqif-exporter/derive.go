package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"reqif-exporter/internal/logging"
	"reqif-exporter/internal/reqif"
	"reqif-exporter/internal/schema"
	"reqif-exporter/internal/session"
	"reqif-exporter/internal/settings"
)

func deriveCmd() *cobra.Command {
	var (
		dataSource           string
		modelID              string
		target               string
		settingsPath         string
		excludeAlternativeID bool
	)

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Write a starter template and export settings for a model",
		Long: `derive reads the latest iteration of an engineering model and writes a
template holding one attribute per parameter type its requirements use, together
with export settings that map every parameter type onto those attributes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := uuid.Parse(modelID)
			if err != nil {
				return fmt.Errorf("engineering-model-id %q: %w", modelID, err)
			}

			logger := logging.ForComponent("derive")

			iteration, err := session.NewFileRetriever(logger).Retrieve(cmd.Context(), session.Credentials{DataSource: dataSource}, id)
			if err != nil {
				return err
			}

			opts := []schema.Option{schema.WithLogger(logger)}
			if excludeAlternativeID {
				opts = append(opts, schema.WithoutAlternativeID())
			}

			template, exportSettings, err := schema.Derive(iteration.ActiveSpecifications(), opts...)
			if err != nil {
				return err
			}

			reqifPath, archivePath, err := reqif.WriteFiles(template, target)
			if err != nil {
				return fmt.Errorf("write template: %w", err)
			}

			if err := settings.WriteFile(settingsPath, exportSettings); err != nil {
				return fmt.Errorf("write export settings: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s, %s and %s\n", reqifPath, archivePath, settingsPath)

			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&dataSource, "datasource", "d", "", "Data source: a model dump path or file:// URI")
	f.StringVar(&modelID, "engineering-model-id", "", "Engineering model to read")
	f.StringVar(&target, "target-reqif", "", "Template output path")
	f.StringVar(&settingsPath, "export-settings", settings.DefaultFileName, "Export settings output path")
	f.BoolVar(&excludeAlternativeID, "exclude-alternative-id", false, "Do not write source ids as ALTERNATIVE-ID")

	for _, name := range []string{"datasource", "engineering-model-id", "target-reqif"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
