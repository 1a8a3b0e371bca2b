// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// PALETTE TESTS
// =============================================================================

func TestPaletteColors(t *testing.T) {
	colors := []struct {
		name  string
		color lipgloss.AdaptiveColor
	}{
		{"Indigo", Indigo},
		{"Purple", Purple},
		{"Pink", Pink},
		{"IndigoRing", IndigoRing},
		{"GlowIndigo", GlowIndigo},
		{"GlowPurple", GlowPurple},
		{"GlowPink", GlowPink},
		{"Emerald", Emerald},
		{"Rose", Rose},
		{"Amber", Amber},
		{"Cyan", Cyan},
		{"Surface", Surface},
		{"SurfaceDim", SurfaceDim},
		{"Overlay", Overlay},
		{"TextPrimary", TextPrimary},
		{"TextSecondary", TextSecondary},
		{"TextMuted", TextMuted},
		{"TextInverse", TextInverse},
	}

	for _, c := range colors {
		t.Run(c.name, func(t *testing.T) {
			assert.True(t, isHexColor(strings.ToLower(c.color.Light)), "light variant %q", c.color.Light)
			assert.True(t, isHexColor(strings.ToLower(c.color.Dark)), "dark variant %q", c.color.Dark)
		})
	}
}

func TestResolve(t *testing.T) {
	assert.Equal(t, Indigo.Dark, Resolve(Indigo, true))
	assert.Equal(t, Indigo.Light, Resolve(Indigo, false))
}

// =============================================================================
// GRADIENT TESTS
// =============================================================================

func TestGradientStopsEndpoints(t *testing.T) {
	stops := GradientStops(5, true, Indigo, Pink)
	require.Len(t, stops, 5)

	assert.Equal(t, strings.ToLower(Indigo.Dark), stops[0])
	assert.Equal(t, strings.ToLower(Pink.Dark), stops[4])
}

func TestGradientStopsThreeStops(t *testing.T) {
	stops := GradientStops(3, false, Indigo, Purple, Pink)
	require.Len(t, stops, 3)

	assert.Equal(t, strings.ToLower(Indigo.Light), stops[0])
	assert.Equal(t, strings.ToLower(Purple.Light), stops[1])
	assert.Equal(t, strings.ToLower(Pink.Light), stops[2])
}

func TestGradientStopsDegenerate(t *testing.T) {
	assert.Nil(t, GradientStops(0, true, Indigo))
	assert.Nil(t, GradientStops(3, true))

	flat := GradientStops(3, true, Purple)
	require.Len(t, flat, 3)
	assert.Equal(t, flat[0], flat[2])

	single := GradientStops(1, true, Indigo, Pink)
	require.Len(t, single, 1)
}

func TestGradientKeepsText(t *testing.T) {
	out := Gradient("Hover Searchbar", true, true, Indigo, Purple, Pink)
	assert.Equal(t, lipgloss.Width("Hover Searchbar"), lipgloss.Width(out))
	assert.Equal(t, "", Gradient("", true, false, Indigo))
}

// =============================================================================
// STATUS HELPER TESTS
// =============================================================================

func TestRenderStatusHelpers(t *testing.T) {
	tests := []struct {
		name   string
		render func(string) string
		marker string
	}{
		{"Success", RenderSuccess, StatusIndicators.Success},
		{"Error", RenderError, StatusIndicators.Error},
		{"Info", RenderInfo, StatusIndicators.Info},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := tc.render("config reloaded")
			assert.Contains(t, out, tc.marker)
			assert.Contains(t, out, "config reloaded")
		})
	}
}
