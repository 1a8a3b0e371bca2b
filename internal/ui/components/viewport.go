// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/hoverbar-tui/internal/ui/styles"
)

// =============================================================================
// PAGE VIEWPORT COMPONENT - Scrollable page body with a scroll bar
// =============================================================================

// WheelLines is how far one mouse wheel notch scrolls.
const WheelLines = 3

// scrollBarCols is the gutter plus the bar itself.
const scrollBarCols = 2

// PageViewport scrolls pre-rendered page content. Content must already fit
// ContentWidth; the viewport does not wrap.
type PageViewport struct {
	viewport  viewport.Model
	scrollbar *ScrollBar
	width     int
	height    int
	ready     bool
}

// NewPageViewport creates an empty viewport.
func NewPageViewport(theme *styles.Theme) *PageViewport {
	vp := viewport.New(80, 20)
	vp.Style = lipgloss.NewStyle()
	vp.MouseWheelEnabled = false

	return &PageViewport{
		viewport:  vp,
		scrollbar: NewScrollBar(theme),
		width:     80,
		height:    20,
	}
}

// SetSize sets the outer dimensions, scroll bar included.
func (pv *PageViewport) SetSize(width, height int) {
	pv.width = width
	pv.height = max(height, 1)
	pv.viewport.Width = pv.ContentWidth()
	pv.viewport.Height = pv.height
	pv.scrollbar.SetHeight(pv.height)
	pv.ready = true
	pv.clamp()
}

// ContentWidth is the width available to content.
func (pv *PageViewport) ContentWidth() int {
	return max(pv.width-scrollBarCols, 1)
}

// Height returns the visible height.
func (pv *PageViewport) Height() int { return pv.height }

// SetContent replaces the content, keeping the scroll offset when possible.
func (pv *PageViewport) SetContent(content string) {
	pv.viewport.SetContent(content)
	pv.clamp()
}

// YOffset is the index of the first visible content line.
func (pv *PageViewport) YOffset() int { return pv.viewport.YOffset }

// ScrollUp scrolls up by n lines.
func (pv *PageViewport) ScrollUp(n int) {
	pv.viewport.SetYOffset(pv.viewport.YOffset - n)
	pv.syncScrollbar()
}

// ScrollDown scrolls down by n lines.
func (pv *PageViewport) ScrollDown(n int) {
	pv.viewport.SetYOffset(pv.viewport.YOffset + n)
	pv.syncScrollbar()
}

// PageUp scrolls up by one screen.
func (pv *PageViewport) PageUp() { pv.ScrollUp(pv.height) }

// PageDown scrolls down by one screen.
func (pv *PageViewport) PageDown() { pv.ScrollDown(pv.height) }

// ScrollToTop jumps to the first line.
func (pv *PageViewport) ScrollToTop() {
	pv.viewport.GotoTop()
	pv.syncScrollbar()
}

// ScrollToBottom jumps to the last screen.
func (pv *PageViewport) ScrollToBottom() {
	pv.viewport.GotoBottom()
	pv.syncScrollbar()
}

// EnsureVisible scrolls the minimum needed to show lines [top, top+n).
func (pv *PageViewport) EnsureVisible(top, n int) {
	switch {
	case top < pv.viewport.YOffset:
		pv.viewport.SetYOffset(top)
	case top+n > pv.viewport.YOffset+pv.height:
		pv.viewport.SetYOffset(top + n - pv.height)
	}
	pv.syncScrollbar()
}

// AtTop reports whether the first line is visible.
func (pv *PageViewport) AtTop() bool { return pv.viewport.AtTop() }

// AtBottom reports whether the last line is visible.
func (pv *PageViewport) AtBottom() bool { return pv.viewport.AtBottom() }

// ScrollPercent is the scroll position from 0 to 1.
func (pv *PageViewport) ScrollPercent() float64 { return pv.viewport.ScrollPercent() }

// Update handles paging keys and the mouse wheel. Other messages are ignored.
func (pv *PageViewport) Update(msg tea.Msg) (*PageViewport, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "pgup":
			pv.PageUp()
		case "pgdown", "pgdn":
			pv.PageDown()
		case "home":
			pv.ScrollToTop()
		case "end":
			pv.ScrollToBottom()
		}
	case tea.MouseMsg:
		switch msg.Type {
		case tea.MouseWheelUp:
			pv.ScrollUp(WheelLines)
		case tea.MouseWheelDown:
			pv.ScrollDown(WheelLines)
		}
	}
	return pv, nil
}

// View renders the visible lines next to the scroll bar.
func (pv *PageViewport) View() string {
	if !pv.ready {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(pv.ContentWidth()).Render(pv.viewport.View()),
		" ",
		pv.scrollbar.View(),
	)
}

func (pv *PageViewport) clamp() {
	maxOffset := max(pv.viewport.TotalLineCount()-pv.height, 0)
	if pv.viewport.YOffset > maxOffset {
		pv.viewport.SetYOffset(maxOffset)
	}
	pv.syncScrollbar()
}

func (pv *PageViewport) syncScrollbar() {
	pv.scrollbar.SetPosition(pv.viewport.ScrollPercent())
	if total := pv.viewport.TotalLineCount(); total > 0 {
		pv.scrollbar.SetContentRatio(float64(pv.height) / float64(total))
	} else {
		pv.scrollbar.SetContentRatio(1)
	}
}

// =============================================================================
// SCROLL BAR COMPONENT
// =============================================================================

// ScrollBar is a one-column vertical scroll indicator.
type ScrollBar struct {
	Height       int
	ScrollPos    float64 // 0.0 to 1.0
	ContentRatio float64 // visible / total
	theme        *styles.Theme
}

// NewScrollBar creates a scroll bar for fully visible content.
func NewScrollBar(theme *styles.Theme) *ScrollBar {
	return &ScrollBar{Height: 20, ContentRatio: 1.0, theme: theme}
}

// SetHeight sets the bar height.
func (sb *ScrollBar) SetHeight(height int) {
	sb.Height = height
}

// SetPosition sets the scroll position, clamped to [0, 1].
func (sb *ScrollBar) SetPosition(pos float64) {
	sb.ScrollPos = min(max(pos, 0), 1)
}

// SetContentRatio sets the visible/total ratio, clamped to [0.1, 1].
func (sb *ScrollBar) SetContentRatio(ratio float64) {
	sb.ContentRatio = min(max(ratio, 0.1), 1)
}

// View renders the bar; a blank column when nothing scrolls.
func (sb *ScrollBar) View() string {
	if sb.Height <= 0 {
		return ""
	}
	if sb.ContentRatio >= 1.0 {
		return strings.TrimSuffix(strings.Repeat(" \n", sb.Height), "\n")
	}

	thumbSize := min(max(int(float64(sb.Height)*sb.ContentRatio), 1), sb.Height)
	track := sb.Height - thumbSize
	thumbPos := min(max(int(float64(track)*sb.ScrollPos), 0), track)

	trackStyle := lipgloss.NewStyle().Foreground(styles.Overlay)
	thumbStyle := lipgloss.NewStyle().Foreground(styles.Purple)

	var b strings.Builder
	for i := 0; i < sb.Height; i++ {
		if i >= thumbPos && i < thumbPos+thumbSize {
			b.WriteString(thumbStyle.Render("#"))
		} else {
			b.WriteString(trackStyle.Render("|"))
		}
		if i < sb.Height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
