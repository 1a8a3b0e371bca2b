// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package demo

import (
	"github.com/jeranaias/hoverbar-tui/internal/config"
)

// ConfigReloadedMsg carries the result of a config file reload. Exactly one
// of Config and Err is set.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}
