// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "strings"

// Size selects one of the three search bar size variants.
type Size string

const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

// Sizes lists the variants smallest first.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge}

// SizeSpec is the geometry of one size variant. Pixel values describe the
// control at 1x; cell values are what the terminal renderer draws.
type SizeSpec struct {
	Size Size

	HeightPx      int
	WidthPx       int
	IconPx        int
	ButtonPadPx   float64
	TextScaleName string

	// PanelCols is the full panel width including its border.
	PanelCols int
	// IconCols is the glyph area inside the icon box border.
	IconCols int
	// ButtonPad is the blank cells on each side of the submit glyph.
	ButtonPad int
}

var sizeSpecs = map[Size]SizeSpec{
	SizeSmall: {
		Size: SizeSmall, HeightPx: 40, WidthPx: 256, IconPx: 20, ButtonPadPx: 6, TextScaleName: "small",
		PanelCols: 32, IconCols: 3, ButtonPad: 0,
	},
	SizeMedium: {
		Size: SizeMedium, HeightPx: 48, WidthPx: 320, IconPx: 24, ButtonPadPx: 8, TextScaleName: "base",
		PanelCols: 40, IconCols: 5, ButtonPad: 1,
	},
	SizeLarge: {
		Size: SizeLarge, HeightPx: 56, WidthPx: 384, IconPx: 28, ButtonPadPx: 10, TextScaleName: "large",
		PanelCols: 48, IconCols: 7, ButtonPad: 1,
	},
}

// ParseSize maps "sm", "md" or "lg" (any case) to a Size. Anything else
// yields SizeMedium and false.
func ParseSize(s string) (Size, bool) {
	switch Size(strings.ToLower(strings.TrimSpace(s))) {
	case SizeSmall:
		return SizeSmall, true
	case SizeMedium:
		return SizeMedium, true
	case SizeLarge:
		return SizeLarge, true
	}
	return SizeMedium, false
}

// Spec returns the geometry for s, falling back to medium for unknown sizes.
func (s Size) Spec() SizeSpec {
	if spec, ok := sizeSpecs[s]; ok {
		return spec
	}
	return sizeSpecs[SizeMedium]
}

// IconBoxCols is the icon width including its border.
func (sp SizeSpec) IconBoxCols() int { return sp.IconCols + 2 }

// TotalCols is the width of the whole control.
func (sp SizeSpec) TotalCols() int { return sp.PanelCols + sp.IconBoxCols() }

// Rows is the height of the control: three rows for the boxes plus the halo.
func (sp SizeSpec) Rows() int { return 4 }
