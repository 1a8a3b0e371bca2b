// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for hoverbar TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// =============================================================================
// ACCENT GRADIENT (indigo -> purple -> pink)
// =============================================================================

// Indigo - Gradient start, focus ring, spyglass body
var Indigo = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}

// Purple - Gradient middle, submit affordance
var Purple = lipgloss.AdaptiveColor{Light: "#9333EA", Dark: "#C084FC"}

// Pink - Gradient end
var Pink = lipgloss.AdaptiveColor{Light: "#DB2777", Dark: "#F472B6"}

// IndigoRing - Emphasis ring around a focused panel
var IndigoRing = lipgloss.AdaptiveColor{Light: "#A5B4FC", Dark: "#6366F1"}

// Glow halo stops, softer than the accent gradient.
var (
	GlowIndigo = lipgloss.AdaptiveColor{Light: "#C7D2FE", Dark: "#3730A3"}
	GlowPurple = lipgloss.AdaptiveColor{Light: "#E9D5FF", Dark: "#6B21A8"}
	GlowPink   = lipgloss.AdaptiveColor{Light: "#FBCFE8", Dark: "#9D174D"}
)

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Emerald - Success toasts
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - Errors
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Cyan - Info
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// =============================================================================
// SURFACE COLORS
// =============================================================================

// Surface - Cards and the search panel
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Results card, footer
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#181825"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#313244"}

// =============================================================================
// TEXT COLORS
// =============================================================================

// TextPrimary - Main body text and typed query
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Subtitles, captions
var TextSecondary = lipgloss.AdaptiveColor{Light: "#4B5563", Dark: "#A6ADC8"}

// TextMuted - Placeholder text, hints
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - Text on gradient backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#11111B"}

// =============================================================================
// STATUS INDICATORS
// =============================================================================

// StatusIndicatorSet contains ASCII markers shown next to colored status text.
type StatusIndicatorSet struct {
	Success string
	Error   string
	Warning string
	Info    string
}

// StatusIndicators are ASCII-only so colorblind users and dumb terminals still
// get a cue beyond color.
var StatusIndicators = StatusIndicatorSet{
	Success: "[OK]",
	Error:   "[X]",
	Warning: "[!]",
	Info:    "[i]",
}

// =============================================================================
// GRADIENTS
// =============================================================================

// Resolve picks the light or dark variant of an adaptive color.
func Resolve(c lipgloss.AdaptiveColor, dark bool) string {
	if dark {
		return c.Dark
	}
	return c.Light
}

// GradientStops returns n hex colors blended in Lab space across the given
// stops. Fewer than two stops yields a flat run of the single stop.
func GradientStops(n int, dark bool, stops ...lipgloss.AdaptiveColor) []string {
	if n <= 0 || len(stops) == 0 {
		return nil
	}

	parsed := make([]colorful.Color, 0, len(stops))
	for _, s := range stops {
		c, err := colorful.Hex(Resolve(s, dark))
		if err != nil {
			// Non-hex colors (ANSI indexes) cannot be blended; fall back to gray.
			c = colorful.Color{R: 0.5, G: 0.5, B: 0.5}
		}
		parsed = append(parsed, c)
	}

	out := make([]string, n)
	if len(parsed) == 1 || n == 1 {
		for i := range out {
			out[i] = parsed[0].Hex()
		}
		return out
	}

	segments := float64(len(parsed) - 1)
	for i := 0; i < n; i++ {
		pos := float64(i) / float64(n-1) * segments
		seg := int(pos)
		if seg >= len(parsed)-1 {
			seg = len(parsed) - 2
		}
		frac := pos - float64(seg)
		switch {
		case frac <= 0:
			out[i] = parsed[seg].Hex()
		case frac >= 1:
			out[i] = parsed[seg+1].Hex()
		default:
			out[i] = parsed[seg].BlendLab(parsed[seg+1], frac).Clamped().Hex()
		}
	}
	return out
}

// Gradient renders text with a per-cell foreground gradient. Spaces are kept
// unstyled so trailing padding does not pick up color codes.
func Gradient(text string, dark bool, bold bool, stops ...lipgloss.AdaptiveColor) string {
	runes := []rune(text)
	colors := GradientStops(len(runes), dark, stops...)
	if colors == nil {
		return text
	}

	var sb strings.Builder
	for i, r := range runes {
		if r == ' ' {
			sb.WriteRune(r)
			continue
		}
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(colors[i])).
			Bold(bold).
			Render(string(r)))
	}
	return sb.String()
}

// =============================================================================
// STATUS HELPERS
// =============================================================================

// RenderSuccess renders a success message with its ASCII indicator.
func RenderSuccess(message string) string {
	return lipgloss.NewStyle().Foreground(Emerald).Bold(true).
		Render(StatusIndicators.Success + " " + message)
}

// RenderError renders an error message with its ASCII indicator.
func RenderError(message string) string {
	return lipgloss.NewStyle().Foreground(Rose).Bold(true).
		Render(StatusIndicators.Error + " " + message)
}

// RenderInfo renders an informational message with its ASCII indicator.
func RenderInfo(message string) string {
	return lipgloss.NewStyle().Foreground(Cyan).Bold(true).
		Render(StatusIndicators.Info + " " + message)
}
