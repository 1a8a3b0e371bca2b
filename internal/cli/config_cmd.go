// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeranaias/hoverbar-tui/internal/config"
	"github.com/jeranaias/hoverbar-tui/internal/ui/styles"
)

func newConfigCommand(cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the configuration file",
		Long: `Inspect and edit the configuration file.

Keys use dot notation, for example search.focus_delay_ms or ui.theme.
The demo reloads the file while it is running.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigPathCommand(cfgFile))
	cmd.AddCommand(newConfigInitCommand(cfgFile))
	cmd.AddCommand(newConfigGetCommand())
	cmd.AddCommand(newConfigSetCommand(cfgFile))
	cmd.AddCommand(newConfigKeysCommand())
	return cmd
}

func newConfigShowCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			out := cmd.OutOrStdout()
			if asJSON {
				_, err := fmt.Fprintln(out, cfg.String())
				return err
			}
			data, err := config.EncodeTOML(cfg)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of TOML")
	return cmd
}

func newConfigPathCommand(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:         "path",
		Short:       "Print the config file path",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := writablePath(*cfgFile)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
}

func newConfigInitCommand(cfgFile *string) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a config file with the default settings",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := writablePath(*cfgFile)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Save(config.Default(), path); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.RenderSuccess("Wrote "+path))
			return err
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one configuration value",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return config.GetAllKeys(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := GetConfig(cmd.Context()).Get(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}

func newConfigSetCommand(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:         "set <key> <value>",
		Short:       "Change one value in the config file",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := writablePath(*cfgFile)
			if err != nil {
				return err
			}

			// Start from the file alone so environment overrides are not
			// written back.
			cfg := config.Default()
			if _, statErr := os.Stat(path); statErr == nil {
				if err := config.LoadFile(cfg, path); err != nil {
					return err
				}
			}

			if err := cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid value for %s: %w", args[0], err)
			}
			if err := config.Save(cfg, path); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.RenderSuccess(fmt.Sprintf("%s = %s", args[0], args[1])))
			return err
		},
	}
}

func newConfigKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "keys",
		Short:       "List every configuration key",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			for _, k := range config.GetAllKeys() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), k)
			}
		},
	}
}

// writablePath is the file config commands write: the --config path, else
// the file currently in use, else the default TOML location.
func writablePath(override string) (string, error) {
	if path := config.SourcePath(override); path != "" {
		return path, nil
	}
	path, err := config.ConfigPathTOML()
	if err != nil {
		return "", errors.New("cannot locate the config directory; pass --config")
	}
	return path, nil
}
