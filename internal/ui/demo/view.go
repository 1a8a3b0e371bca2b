// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package demo

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/hoverbar-tui/internal/ui/components"
	"github.com/jeranaias/hoverbar-tui/internal/util"
)

// =============================================================================
// LAYOUT
// =============================================================================

// barPos is where a bar's top-left corner sits in page content coordinates.
type barPos struct {
	line int
	col  int
}

// pageLayout records bar positions from the last render, in tab order.
type pageLayout struct {
	bars []barPos
}

// Gap between variant cards laid out side by side.
const cardGap = 2

// maxProseWidth caps subtitle and markdown width on wide terminals.
const maxProseWidth = 76

// pageBuilder stacks blocks and tracks the line each one starts at.
type pageBuilder struct {
	width  int
	blocks []string
	lines  int
}

func (p *pageBuilder) add(block string) int {
	start := p.lines
	p.blocks = append(p.blocks, block)
	p.lines += lipgloss.Height(block)
	return start
}

func (p *pageBuilder) blank() { p.add("") }

func (p *pageBuilder) centered(block string) int {
	return p.add(indentBlock(block, max((p.width-lipgloss.Width(block))/2, 0)))
}

func (p *pageBuilder) String() string {
	// Lines wider than the page are clipped rather than wrapped so bar rows
	// stay where the layout put them.
	return lipgloss.NewStyle().MaxWidth(p.width).Render(strings.Join(p.blocks, "\n"))
}

// refresh re-renders the page into the viewport and repositions the bars.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	chrome := 1 + lipgloss.Height(m.help.View(m.keys))
	m.viewport.SetSize(m.width, m.height-chrome)

	content, layout := m.renderContent(m.viewport.ContentWidth())
	m.layout = layout
	m.viewport.SetContent(content)
	m.placeBars()
}

// placeBars converts content positions to screen cells for hit testing.
func (m *Model) placeBars() {
	off := m.viewport.YOffset()
	for i, pos := range m.layout.bars {
		if i < len(m.bars) {
			m.bars[i].SetBounds(pos.col, pos.line-off)
		}
	}
}

// renderContent renders the scrollable page body at width.
func (m Model) renderContent(width int) (string, pageLayout) {
	p := &pageBuilder{width: width}
	layout := pageLayout{bars: make([]barPos, len(m.bars))}

	// Header
	p.blank()
	p.centered(m.theme.Title(PageTitle))
	p.centered(m.theme.Subtitle.Width(min(width, maxProseWidth)).Align(lipgloss.Center).Render(PageSubtitle))
	p.blank()

	// Hero
	layout.bars[0] = m.renderHero(p)
	p.blank()

	// Size variants
	p.centered(m.theme.Section.Render(VariantsTitle))
	p.blank()
	for i, pos := range m.renderVariants(p) {
		layout.bars[i+1] = pos
	}
	p.blank()

	// Features
	p.centered(m.theme.Section.Render(FeaturesTitle))
	p.centered(m.markdown.Render(featuresMarkdown, min(width, maxProseWidth)))
	p.blank()

	// Usage
	p.centered(m.theme.Section.Render(UsageTitle))
	p.blank()
	snippet := components.UsageSnippet(components.SizeMedium, "Search products...")
	p.centered(components.NewCodeBlock("go", snippet, m.theme).Render())
	p.blank()

	// Footer
	p.centered(m.theme.Footer.Render(FooterText))
	p.blank()

	return p.String(), layout
}

// renderHero adds the hero card and returns the hero bar position.
func (m Model) renderHero(p *pageBuilder) barPos {
	card := m.theme.Card
	barW := m.hero.Bounds().W
	inner := max(barW, min(p.width-card.GetHorizontalFrameSize(), 64))

	barIndent := (inner - barW) / 2
	body := []string{
		m.theme.CardTitle.Render(util.CenterWidth(HeroTitle, inner)),
		"",
		indentBlock(m.hero.View(), barIndent),
	}
	if !m.results.Empty() {
		body = append(body, "", m.renderResults(inner))
	}

	rendered := card.Width(inner + card.GetHorizontalPadding()).Render(strings.Join(body, "\n"))
	left := max((p.width-lipgloss.Width(rendered))/2, 0)
	start := p.add(indentBlock(rendered, left))

	return barPos{
		line: start + card.GetBorderTopSize() + card.GetPaddingTop() + 2,
		col:  left + card.GetBorderLeftSize() + card.GetPaddingLeft() + barIndent,
	}
}

// renderResults renders the results box at width.
func (m Model) renderResults(width int) string {
	style := m.theme.Results
	textW := width - style.GetHorizontalFrameSize()

	lines := []string{m.theme.ResultsTitle.Render(util.TruncateWidth(m.results.Title(), textW))}
	for _, l := range m.results.Lines() {
		lines = append(lines, m.theme.ResultItem.Render(util.TruncateWidth(l, textW)))
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

// renderVariants adds the size cards, side by side when they fit and stacked
// otherwise, and returns the bar positions.
func (m Model) renderVariants(p *pageBuilder) []barPos {
	card := m.theme.Card
	cards := make([]string, len(m.variants))
	indents := make([]int, len(m.variants))
	for i, bar := range m.variants {
		vc := variantCards[i]
		barW := bar.Bounds().W
		inner := max(barW, util.StringWidth(vc.Title), util.StringWidth(vc.Caption))
		indents[i] = (inner - barW) / 2

		body := strings.Join([]string{
			m.theme.CardTitle.Render(util.CenterWidth(vc.Title, inner)),
			"",
			indentBlock(bar.View(), indents[i]),
			"",
			m.theme.CardCaption.Render(util.CenterWidth(vc.Caption, inner)),
		}, "\n")
		cards[i] = card.Width(inner + card.GetHorizontalPadding()).Render(body)
	}

	barLine := card.GetBorderTopSize() + card.GetPaddingTop() + 2
	barCol := card.GetBorderLeftSize() + card.GetPaddingLeft()
	positions := make([]barPos, len(cards))

	total := cardGap * (len(cards) - 1)
	for _, c := range cards {
		total += lipgloss.Width(c)
	}

	if total <= p.width {
		gap := strings.Repeat(" ", cardGap)
		parts := make([]string, 0, 2*len(cards))
		col := max((p.width-total)/2, 0)
		start := p.lines
		for i, c := range cards {
			if i > 0 {
				parts = append(parts, gap)
			}
			parts = append(parts, c)
			positions[i] = barPos{line: start + barLine, col: col + barCol + indents[i]}
			col += lipgloss.Width(c) + cardGap
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
		p.add(indentBlock(row, max((p.width-total)/2, 0)))
		return positions
	}

	for i, c := range cards {
		if i > 0 {
			p.blank()
		}
		left := max((p.width-lipgloss.Width(c))/2, 0)
		start := p.add(indentBlock(c, left))
		positions[i] = barPos{line: start + barLine, col: left + barCol + indents[i]}
	}
	return positions
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		m.statusLine(),
		m.help.View(m.keys),
	)
}

// statusLine describes the active bar and shows the newest toast.
func (m Model) statusLine() string {
	sb := components.NewStatusBar(m.theme)
	sb.SetWidth(m.width)
	sb.Hint = "Hover a spyglass, or press tab to jump into a search bar"
	sb.Results = len(m.results.Lines())
	sb.ScrollPercent = m.viewport.ScrollPercent()

	if i := m.activeIndex(); i >= 0 {
		bar := m.bars[i]
		sb.Phase = bar.Phase()
		sb.ActiveSize = bar.Size()
		if bar.Focused() {
			sb.Hint = "Typing in the " + string(bar.Size()) + " bar: enter searches, esc leaves"
		} else {
			sb.Hint = "Keep the pointer still to start typing"
		}
	}
	if toasts := m.toasts.Toasts(); len(toasts) > 0 {
		sb.Toast = &toasts[0]
	}
	return sb.View(m.now())
}

// indentBlock prefixes every line of s with n spaces.
func indentBlock(s string, n int) string {
	if n <= 0 {
		return s
	}
	pad := strings.Repeat(" ", n)
	return pad + strings.ReplaceAll(s, "\n", "\n"+pad)
}
