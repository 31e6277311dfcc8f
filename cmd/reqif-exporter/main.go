// Package main is the reqif-exporter command: it exports requirements
// specifications from an engineering model into a ReqIF document shaped by a
// template.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reqif-exporter/internal/logging"
)

const appName = "reqif-exporter"

// Set with -ldflags at release time.
var (
	Version   = "0.1.0"
	BuildTime = "dev"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		logLevel  string
		logFormat string
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Export requirements specifications to ReqIF",
		Long: `reqif-exporter converts the requirements specifications of an engineering
model iteration into a ReqIF document. The datatypes and spec types come from a
template document; export settings say which template attributes receive which
values.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}

			format, err := logging.ParseFormat(logFormat)
			if err != nil {
				return err
			}

			logging.Init(logging.Config{Level: level, Format: format, Output: cmd.ErrOrStderr()})

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")

	cmd.AddCommand(convertCmd(), checkCmd(), deriveCmd(), versionCmd())

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
		},
	}
}
