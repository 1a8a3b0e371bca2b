// hoverbar - A hover-activated search bar for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/hoverbar-tui/internal/cli"
	"github.com/jeranaias/hoverbar-tui/internal/config"
	"github.com/jeranaias/hoverbar-tui/internal/ui/demo"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	// The bars log every submit; keep that off the terminal unless a log
	// file is configured.
	log.SetOutput(io.Discard)

	if err := cli.Execute(runTUI); err != nil {
		os.Exit(1)
	}
}

// runTUI starts the demo page and reloads source while it runs.
func runTUI(cfg *config.Config, source string) error {
	if cfg.Log.Enabled {
		path, err := cfg.LogPath()
		if err != nil {
			return err
		}
		f, err := tea.LogToFile(path, "hoverbar")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.Printf("starting hoverbar %s (config %q)", Version, source)
	}

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		// Hover needs motion events without a button held.
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(demo.New(cfg, demo.Options{}), opts...)

	if source != "" {
		w, err := config.NewWatcher(source, func(reloaded *config.Config, err error) {
			p.Send(demo.ConfigReloadedMsg{Config: reloaded, Err: err})
		})
		if err != nil {
			log.Printf("config watcher disabled: %v", err)
		} else if err := w.Start(); err != nil {
			log.Printf("config watcher disabled: %v", err)
			w.Close()
		} else {
			defer w.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running hoverbar: %w", err)
	}
	return nil
}
