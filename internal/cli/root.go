// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeranaias/hoverbar-tui/internal/config"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// TUIFunc runs the interactive demo with the loaded config. source is the
// file the config came from, or "" when only defaults apply.
type TUIFunc func(cfg *config.Config, source string) error

// skipConfigAnnotation marks commands that must run even when the config
// file is missing or invalid.
const skipConfigAnnotation = "hoverbar/skip-config"

type configKey struct{}

// loadedConfig is what PersistentPreRunE stores in the command context.
type loadedConfig struct {
	cfg    *config.Config
	source string
}

// NewRootCmd creates the root command. Running it without a subcommand
// starts the demo through runTUI.
func NewRootCmd(runTUI TUIFunc) *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "hoverbar",
		Short: "Hover-activated search bar for the terminal",
		Long: `hoverbar shows a spyglass icon that slides out a search field when the
mouse hovers over it, and focuses the field after a short delay.

Run without a command to open the demo page. The other commands drive the
same search bar without a full screen UI.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if skipsConfig(cmd) {
				return nil
			}
			cfg, err := config.Resolve(cfgFile)
			if err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), configKey{}, loadedConfig{
				cfg:    cfg,
				source: config.SourcePath(cfgFile),
			})
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(GetConfig(cmd.Context()), ConfigSource(cmd.Context()))
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
Built with Go, Bubble Tea and Lip Gloss
`)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.hoverbar/config.toml)")

	rootCmd.AddCommand(newTUICommand(runTUI))
	rootCmd.AddCommand(newLineCommand())
	rootCmd.AddCommand(newRenderCommand())
	rootCmd.AddCommand(newSizesCommand())
	rootCmd.AddCommand(newConfigCommand(&cfgFile))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// Execute runs the root command and prints any error to stderr.
func Execute(runTUI TUIFunc) error {
	rootCmd := NewRootCmd(runTUI)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config loaded for the running command, or the
// defaults when none was loaded.
func GetConfig(ctx context.Context) *config.Config {
	if ctx != nil {
		if l, ok := ctx.Value(configKey{}).(loadedConfig); ok && l.cfg != nil {
			return l.cfg
		}
	}
	return config.Default()
}

// ConfigSource returns the file the running command's config came from.
func ConfigSource(ctx context.Context) string {
	if ctx != nil {
		if l, ok := ctx.Value(configKey{}).(loadedConfig); ok {
			return l.source
		}
	}
	return ""
}

func skipsConfig(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "help", "completion", "__complete":
		return true
	}
	return cmd.Annotations[skipConfigAnnotation] == "true"
}

func newTUICommand(runTUI TUIFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive demo page (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(GetConfig(cmd.Context()), ConfigSource(cmd.Context()))
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "hoverbar v%s\n", Version)
			_, _ = fmt.Fprintf(out, "commit %s, built %s\n", GitCommit, BuildDate)
		},
	}
}
