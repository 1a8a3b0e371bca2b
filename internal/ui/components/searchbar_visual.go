// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

// Visual is the presentation derived from an InteractionState. The numeric
// fields mirror the transform and opacity of the graphical control; the
// renderer maps them to cells.
type Visual struct {
	Expanded bool

	IconRotationDeg  float64
	IconScale        float64
	GlyphRotationDeg float64

	PanelOffsetPct float64
	PanelOpacity   float64
	PanelScale     float64

	Ring          bool
	SubmitVisible bool
	Glow          bool
}

// Visual constants.
const (
	HoverIconRotationDeg  = 12.0
	HoverIconScale        = 1.10
	HoverGlyphRotationDeg = 45.0
	CollapsedPanelScale   = 0.95
)

// DeriveVisual maps state to its visual. It is pure.
func DeriveVisual(s InteractionState) Visual {
	v := Visual{
		Expanded:       s.Expanded(),
		IconScale:      1.0,
		PanelOffsetPct: 100,
		PanelOpacity:   0,
		PanelScale:     CollapsedPanelScale,
		Ring:           s.Focused,
		SubmitVisible:  s.Query != "",
		Glow:           s.Hovered || s.Focused,
	}

	if s.Hovered {
		v.IconRotationDeg = HoverIconRotationDeg
		v.IconScale = HoverIconScale
		v.GlyphRotationDeg = HoverGlyphRotationDeg
	}

	if v.Expanded {
		v.PanelOffsetPct = 0
		v.PanelOpacity = 1
		v.PanelScale = 1.0
	}

	return v
}

// PanelAt blends the panel transform from collapsed (progress 0) to expanded
// (progress 1). The renderer feeds it the reveal tween.
func PanelAt(progress float64) (offsetPct, opacity, scale float64) {
	from := DeriveVisual(InteractionState{})
	to := DeriveVisual(InteractionState{Hovered: true})
	t := min(max(progress, 0), 1)
	lerp := func(a, b float64) float64 { return a*(1-t) + b*t }
	return lerp(from.PanelOffsetPct, to.PanelOffsetPct),
		lerp(from.PanelOpacity, to.PanelOpacity),
		lerp(from.PanelScale, to.PanelScale)
}
