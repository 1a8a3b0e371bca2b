// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the hoverbar packages.
//
// # Key Functions
//
// String Utilities (cell-width aware, via go-runewidth):
//   - TruncateWidth: clip a string to a number of terminal columns
//   - PadWidth: right-pad a string to an exact number of columns
//   - StringWidth: display width of a string
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	line := util.TruncateWidth(result, 40)
//	err := util.AtomicWriteFile(path, data, 0600)
package util
