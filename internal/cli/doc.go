// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the hoverbar command-line interface.
//
// The root command opens the demo page. The other commands work without a
// full screen program:
//
//	hoverbar line     drive one search bar from a line editor
//	hoverbar render   print a single frame of the bar
//	hoverbar sizes    list the size variants
//	hoverbar config   inspect and edit the config file
//	hoverbar version  print build information
//
// Every command accepts --config to read a specific file.
package cli
