package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reqif-exporter/internal/reqif"
	"reqif-exporter/internal/settings"
)

func checkCmd() *cobra.Command {
	var (
		templatePath string
		settingsPath string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check export settings against a template",
		Long: `check validates the export settings on their own and then resolves every
attribute definition they name against the template. Findings are printed one per
line; the command fails when any of them is an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			template, err := reqif.LoadFile(templatePath)
			if err != nil {
				return fmt.Errorf("load template: %w", err)
			}

			exportSettings, err := settings.ReadFile(settingsPath)
			if err != nil {
				return fmt.Errorf("read export settings: %w", err)
			}

			diags := exportSettings.Validate()
			diags.Merge(exportSettings.Check(template))

			out := cmd.OutOrStdout()
			for _, d := range diags.All() {
				fmt.Fprintln(out, d.String())
			}

			if err := diags.Error(); err != nil {
				return fmt.Errorf("%d error(s) in %s", len(diags.Errors), settingsPath)
			}

			fmt.Fprintf(out, "%s matches %s (%d warning(s))\n", settingsPath, templatePath, len(diags.Warnings))

			return nil
		},
	}

	cmd.Flags().StringVar(&templatePath, "source-reqif", "", "Template .reqif or .reqifz file")
	cmd.Flags().StringVar(&settingsPath, "export-settings", settings.DefaultFileName, "Export settings file")
	_ = cmd.MarkFlagRequired("source-reqif")

	return cmd
}
