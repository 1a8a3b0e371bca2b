// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme modes accepted by NewThemeForMode.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// Theme contains all the Lip Gloss styles for the application.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions (set by SetSize)
	Width  int
	Height int

	// ==========================================================================
	// PAGE STYLES
	// ==========================================================================

	App         lipgloss.Style
	Subtitle    lipgloss.Style
	Section     lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	CardCaption lipgloss.Style
	Footer      lipgloss.Style
	StatusLine  lipgloss.Style

	// ==========================================================================
	// SEARCH BAR STYLES
	// ==========================================================================

	// SearchBar wraps the whole control; StyleExtension tokens are applied on top.
	SearchBar lipgloss.Style

	Icon       lipgloss.Style
	IconActive lipgloss.Style

	Panel        lipgloss.Style
	PanelFocused lipgloss.Style

	InputText        lipgloss.Style
	InputPlaceholder lipgloss.Style
	InputCursor      lipgloss.Style

	SubmitButton lipgloss.Style

	// ==========================================================================
	// RESULTS STYLES
	// ==========================================================================

	Results      lipgloss.Style
	ResultsTitle lipgloss.Style
	ResultItem   lipgloss.Style

	// ==========================================================================
	// CODE STYLES
	// ==========================================================================

	CodeBlock lipgloss.Style
	CodeLang  lipgloss.Style

	// ==========================================================================
	// STATUS STYLES
	// ==========================================================================

	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	InfoStyle    lipgloss.Style
}

// NewTheme creates a theme from the detected terminal background.
func NewTheme() *Theme {
	return NewThemeForMode(ModeAuto)
}

// NewThemeForMode creates a theme for "auto", "dark" or "light". Forcing a
// mode also pins Lip Gloss adaptive colors to that background so the two
// never disagree.
func NewThemeForMode(mode string) *Theme {
	colorProfile := termenv.ColorProfile()

	var isDark bool
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ModeDark:
		isDark = true
		lipgloss.SetHasDarkBackground(true)
	case ModeLight:
		isDark = false
		lipgloss.SetHasDarkBackground(false)
	default:
		isDark = termenv.HasDarkBackground()
	}

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}
	t.initStyles()
	return t
}

var (
	defaultTheme     *Theme
	defaultThemeOnce sync.Once
)

// DefaultTheme returns a lazily created auto-detected theme shared by
// components constructed without one.
func DefaultTheme() *Theme {
	defaultThemeOnce.Do(func() {
		defaultTheme = NewTheme()
	})
	return defaultTheme
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle()

	t.Subtitle = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(1, 3)

	t.CardTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary)

	t.CardCaption = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Footer = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.StatusLine = lipgloss.NewStyle().
		Foreground(TextSecondary)

	// Search bar
	t.SearchBar = lipgloss.NewStyle()

	t.Icon = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Indigo).
		Foreground(Indigo).
		Align(lipgloss.Center)

	t.IconActive = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(Purple).
		Foreground(TextInverse).
		Background(Purple).
		Bold(true).
		Align(lipgloss.Center)

	t.Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Overlay)

	t.PanelFocused = lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(IndigoRing)

	t.InputText = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.InputPlaceholder = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.InputCursor = lipgloss.NewStyle().
		Foreground(Indigo)

	t.SubmitButton = lipgloss.NewStyle().
		Foreground(TextInverse).
		Background(Indigo).
		Bold(true)

	// Results
	t.Results = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 2)

	t.ResultsTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextPrimary).
		Background(SurfaceDim)

	t.ResultItem = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Background(SurfaceDim)

	// Code
	t.CodeBlock = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderTop(false).
		BorderRight(false).
		BorderBottom(false).
		BorderForeground(Purple).
		PaddingLeft(1)

	t.CodeLang = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Status
	t.SuccessStyle = lipgloss.NewStyle().Foreground(Emerald).Bold(true)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(Rose).Bold(true)
	t.InfoStyle = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
}

// Title renders text in the indigo -> purple -> pink accent gradient.
func (t *Theme) Title(text string) string {
	return Gradient(text, t.IsDark, true, Indigo, Purple, Pink)
}

// Glow renders text in the soft glow gradient.
func (t *Theme) Glow(text string) string {
	return Gradient(text, t.IsDark, false, GlowIndigo, GlowPurple, GlowPink)
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // >= 100 columns
)
