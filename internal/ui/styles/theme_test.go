// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewThemeForMode(t *testing.T) {
	tests := []struct {
		mode     string
		wantDark bool
	}{
		{"dark", true},
		{"DARK", true},
		{" light ", false},
	}

	for _, tc := range tests {
		t.Run(tc.mode, func(t *testing.T) {
			theme := NewThemeForMode(tc.mode)
			require.NotNil(t, theme)
			assert.Equal(t, tc.wantDark, theme.IsDark)
		})
	}
}

func TestThemeInitStyles(t *testing.T) {
	theme := NewThemeForMode(ModeDark)

	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Card", theme.Card},
		{"Icon", theme.Icon},
		{"IconActive", theme.IconActive},
		{"Panel", theme.Panel},
		{"PanelFocused", theme.PanelFocused},
		{"SubmitButton", theme.SubmitButton},
		{"Results", theme.Results},
		{"CodeBlock", theme.CodeBlock},
	}

	for _, s := range styles {
		t.Run(s.name, func(t *testing.T) {
			assert.NotEmpty(t, s.style.Render("test"))
		})
	}
}

func TestPanelStylesDifferWhenFocused(t *testing.T) {
	theme := NewThemeForMode(ModeDark)

	// Both borders are one cell wide so the focused panel does not shift layout.
	assert.Equal(t, theme.Panel.GetHorizontalFrameSize(), theme.PanelFocused.GetHorizontalFrameSize())
	assert.NotEqual(t, theme.Panel.GetBorderStyle(), theme.PanelFocused.GetBorderStyle())
}

func TestThemeTitleWidth(t *testing.T) {
	theme := NewThemeForMode(ModeLight)
	assert.Equal(t, len("Hover Searchbar"), lipgloss.Width(theme.Title("Hover Searchbar")))
	assert.Equal(t, 6, lipgloss.Width(theme.Glow("~~~~~~")))
}

func TestDefaultThemeShared(t *testing.T) {
	assert.Same(t, DefaultTheme(), DefaultTheme())
}

func TestLayoutMode(t *testing.T) {
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{40, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
		{200, LayoutWide},
	}

	theme := NewThemeForMode(ModeDark)
	for _, tc := range tests {
		theme.SetSize(tc.width, 40)
		if got := theme.GetLayoutMode(); got != tc.want {
			t.Errorf("GetLayoutMode() at width %d = %v, want %v", tc.width, got, tc.want)
		}
	}
}
