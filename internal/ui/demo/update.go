// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package demo

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/hoverbar-tui/internal/ui/components"
)

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.bars))
	for _, b := range m.bars {
		cmds = append(cmds, b.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true

	case tea.KeyMsg:
		cmd, quit := m.handleKey(msg)
		if quit {
			m.quitting = true
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		cmds = append(cmds, m.handleMouse(msg))

	case components.FocusGainedMsg:
		// At most one bar holds focus.
		for i, b := range m.bars {
			if b.ID() == msg.ID {
				m.revealBar(i)
				continue
			}
			cmds = append(cmds, b.Blur())
		}

	case clearResultsMsg:
		m.results.Clear(msg.gen)

	case ConfigReloadedMsg:
		if msg.Err != nil {
			log.Printf("demo: config reload failed: %v", msg.Err)
			m.toasts.AddError(fmt.Sprintf("Config reload failed: %v", msg.Err))
		} else if msg.Config != nil {
			m.applyConfig(msg.Config)
			m.toasts.AddSuccess("Config reloaded")
		}

	case components.ToastTickMsg:
		if m.toasts.Tick(msg.Time) {
			cmds = append(cmds, components.ToastTickCmd())
		} else {
			m.ticking = false
		}

	default:
		// Timers, animation frames and cursor blinks belong to the bars.
		for _, b := range m.bars {
			_, cmd := b.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.results.TakeCmd())
	if !m.ticking && m.toasts.Len() > 0 {
		m.ticking = true
		cmds = append(cmds, components.ToastTickCmd())
	}

	m.refresh()
	return m, tea.Batch(cmds...)
}

// handleKey routes a key press. Keys go to the focused bar unless they move
// focus, copy or page.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return nil, true
	}

	focused := m.focusedIndex()
	switch {
	case key.Matches(msg, m.keys.NextBar):
		return m.cycleFocus(focused, 1), false
	case key.Matches(msg, m.keys.PrevBar):
		return m.cycleFocus(focused, -1), false
	case key.Matches(msg, m.keys.Copy):
		m.copyResults()
		return nil, false
	case key.Matches(msg, m.keys.PageUp), key.Matches(msg, m.keys.PageDown):
		m.viewport.Update(msg)
		return nil, false
	}

	if focused >= 0 {
		_, cmd := m.bars[focused].Update(msg)
		return cmd, false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Home):
		m.viewport.ScrollToTop()
	case key.Matches(msg, m.keys.End):
		m.viewport.ScrollToBottom()
	}
	return nil, false
}

// cycleFocus moves keyboard focus dir steps from the bar at index from.
func (m *Model) cycleFocus(from, dir int) tea.Cmd {
	n := len(m.bars)
	var next int
	switch {
	case from >= 0:
		next = ((from+dir)%n + n) % n
	case dir > 0:
		next = 0
	default:
		next = n - 1
	}

	var cmds []tea.Cmd
	if from >= 0 {
		cmds = append(cmds, m.bars[from].Blur())
	}
	cmds = append(cmds, m.bars[next].Focus())
	m.revealBar(next)
	return tea.Batch(cmds...)
}

// handleMouse scrolls on the wheel and otherwise lets every bar hit-test the
// event. Rows below the viewport never reach a bar.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Type {
	case tea.MouseWheelUp, tea.MouseWheelDown:
		m.viewport.Update(msg)
		m.placeBars()
		return nil
	}

	if msg.Y >= m.viewport.Height() {
		msg.X, msg.Y = -1, -1
	}

	cmds := make([]tea.Cmd, 0, len(m.bars))
	for _, b := range m.bars {
		_, cmd := b.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// copyResults puts the current results on the clipboard.
func (m *Model) copyResults() {
	text := m.results.Text()
	if text == "" {
		m.toasts.AddStatus("No results to copy")
		return
	}
	if err := m.copyText(text); err != nil {
		log.Printf("demo: clipboard: %v", err)
		m.toasts.AddError(fmt.Sprintf("Copy failed: %v", err))
		return
	}
	m.toasts.AddSuccess(fmt.Sprintf("Copied %d lines", len(m.results.Lines())+1))
}

// revealBar scrolls the page so bar i is on screen.
func (m *Model) revealBar(i int) {
	if !m.ready || i < 0 || i >= len(m.layout.bars) {
		return
	}
	pos := m.layout.bars[i]
	m.viewport.EnsureVisible(pos.line, m.bars[i].Bounds().H)
	m.placeBars()
}
