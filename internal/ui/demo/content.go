// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package demo

import (
	"log"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"github.com/jeranaias/hoverbar-tui/internal/ui/components"
	"github.com/jeranaias/hoverbar-tui/internal/ui/styles"
)

// Page copy.
const (
	PageTitle     = "Hover Searchbar"
	PageSubtitle  = "A creative, hover-activated searchbar with smooth slide animations and a glowing glass panel"
	HeroTitle     = "Hover over the spyglass icon *"
	VariantsTitle = "Different Sizes & Styles"
	FeaturesTitle = "Key Features"
	UsageTitle    = "Usage Example"
	FooterText    = "Built with Go, Bubble Tea and Lip Gloss <3"
)

// variantCard is the copy of one size variant card.
type variantCard struct {
	Size    components.Size
	Title   string
	Caption string
}

var variantCards = []variantCard{
	{components.SizeSmall, "Small Size", "Perfect for compact layouts"},
	{components.SizeMedium, "Medium Size", "Default size for most uses"},
	{components.SizeLarge, "Large Size", "Hero sections & emphasis"},
}

// featuresMarkdown is rendered with glamour.
const featuresMarkdown = `* **Hover Activation** - smooth slide-out on icon hover
* **Glass Panel** - a soft, layered look with a focus ring
* **Gradient Effects** - indigo to pink color transitions
* **Responsive** - cards stack on narrow terminals
`

// markdownRenderer caches a glamour renderer per wrap width.
type markdownRenderer struct {
	theme    *styles.Theme
	width    int
	renderer *glamour.TermRenderer
	cache    map[string]string
}

func newMarkdownRenderer(theme *styles.Theme) *markdownRenderer {
	return &markdownRenderer{theme: theme}
}

// Render renders md wrapped to width. On any glamour error it returns md
// unchanged.
func (r *markdownRenderer) Render(md string, width int) string {
	if width < 20 {
		width = 20
	}
	if r.renderer == nil || r.width != width {
		tr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(glamourStyle(r.theme)),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			log.Printf("demo: markdown renderer: %v", err)
			return md
		}
		r.renderer = tr
		r.width = width
		r.cache = make(map[string]string)
	}

	if out, ok := r.cache[md]; ok {
		return out
	}
	out, err := r.renderer.Render(md)
	if err != nil {
		log.Printf("demo: render markdown: %v", err)
		return md
	}
	out = strings.Trim(out, "\n")
	r.cache[md] = out
	return out
}

func glamourStyle(theme *styles.Theme) string {
	switch {
	case theme.ColorProfile == termenv.Ascii:
		return "ascii"
	case theme.IsDark:
		return "dark"
	default:
		return "light"
	}
}
