// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/hoverbar-tui/internal/ui/styles"
	"github.com/jeranaias/hoverbar-tui/internal/util"
)

// =============================================================================
// STATUS BAR COMPONENT - One line under the demo page
// =============================================================================

// Width breakpoints for the status bar layouts.
const (
	statusNarrowWidth = 60
	statusWideWidth   = 100
)

// StatusBar shows the phase of the active search bar, the newest toast or a
// hint, and on wider terminals the result count and scroll position.
type StatusBar struct {
	// Phase is the phase of the active bar.
	Phase Phase
	// ActiveSize is the size of the active bar, or "" when none is active.
	ActiveSize Size
	// Hint is shown when there is no toast.
	Hint string
	// Toast replaces the hint while set.
	Toast *Toast
	// Results is the number of result lines on screen.
	Results int
	// ScrollPercent is the page position from 0 to 1.
	ScrollPercent float64

	Width int
	theme *styles.Theme
}

// NewStatusBar creates a StatusBar.
func NewStatusBar(theme *styles.Theme) *StatusBar {
	if theme == nil {
		theme = styles.DefaultTheme()
	}
	return &StatusBar{Width: 80, theme: theme}
}

// SetWidth updates the status bar width.
func (s *StatusBar) SetWidth(width int) {
	s.Width = width
}

// View renders exactly one line of at most Width cells.
func (s *StatusBar) View(now time.Time) string {
	if s.Width <= 0 {
		return ""
	}

	badge := s.renderBadge()
	var right string
	switch {
	case s.Width >= statusWideWidth:
		right = s.renderWideRight()
	case s.Width >= statusNarrowWidth:
		right = s.renderResults()
	}

	if s.Width >= statusWideWidth && s.ActiveSize != "" {
		badge += s.theme.StatusLine.Render(" " + string(s.ActiveSize))
	}

	budget := s.Width - lipgloss.Width(badge) - 1
	if right != "" {
		budget -= lipgloss.Width(right) + 1
	}
	message := s.renderMessage(max(budget, 0), now)

	line := badge + " " + message
	if right != "" {
		gap := s.Width - lipgloss.Width(line) - lipgloss.Width(right)
		line += strings.Repeat(" ", max(gap, 1)) + right
	}
	return lipgloss.NewStyle().Inline(true).MaxWidth(s.Width).Render(line)
}

func (s *StatusBar) renderBadge() string {
	switch s.Phase {
	case PhaseHoveredOnly:
		return lipgloss.NewStyle().Foreground(styles.Indigo).Bold(true).Render("[HOVER]")
	case PhaseFocusedOnly, PhaseHoveredAndFocused:
		return lipgloss.NewStyle().Foreground(styles.TextInverse).Background(styles.Purple).Bold(true).Render("[FOCUS]")
	default:
		return lipgloss.NewStyle().Foreground(styles.TextMuted).Render("[IDLE]")
	}
}

func (s *StatusBar) renderMessage(width int, now time.Time) string {
	if width <= 0 {
		return ""
	}
	if s.Toast != nil {
		return RenderToast(*s.Toast, width, now)
	}
	return s.theme.StatusLine.Render(util.TruncateWidth(s.Hint, width))
}

func (s *StatusBar) renderResults() string {
	if s.Results == 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(styles.Cyan).Render(fmt.Sprintf("%d results", s.Results))
}

func (s *StatusBar) renderWideRight() string {
	sep := lipgloss.NewStyle().Foreground(styles.Overlay).Render(" | ")
	scroll := lipgloss.NewStyle().Foreground(styles.TextMuted).
		Render(fmt.Sprintf("%3d%%", int(s.ScrollPercent*100+0.5)))
	if results := s.renderResults(); results != "" {
		return results + sep + scroll
	}
	return scroll
}
