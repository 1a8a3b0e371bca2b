// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for hoverbar.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, validation and live reload.
//
// # Key Types
//
//   - Config: Main configuration structure
//   - SearchConfig: Search bar defaults (placeholder, size, style, focus delay)
//   - DemoConfig: Demo page copy and result lifetime
//   - UIConfig: Theme, mouse, alt screen, animation
//   - Watcher: fsnotify-based reloader for a single config file
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (HOVERBAR_*)
//   - the --config path, or ~/.hoverbar/config.toml, or ~/.hoverbar/config.json
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Resolve(flagPath)
//	if err != nil {
//	    return err
//	}
//
//	w, err := config.NewWatcher(config.SourcePath(flagPath), func(cfg *config.Config, err error) {
//	    program.Send(demo.ConfigReloadedMsg{Config: cfg, Err: err})
//	})
package config
