// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the hoverbar TUI.

This package defines the color palette, the Theme of Lip Gloss styles and the
small animation toolkit used by the search bar. All colors use Lip Gloss
AdaptiveColor for automatic light/dark terminal detection.

# Color System (colors.go)

The accent gradient runs indigo -> purple -> pink. A softer set of glow
stops renders the halo under an expanded search bar:

	Indigo, Purple, Pink          - accent gradient
	IndigoRing                    - focus emphasis ring
	GlowIndigo, GlowPurple, GlowPink - halo

Gradients are blended in Lab space with go-colorful:

	styles.Gradient("Hover Searchbar", theme.IsDark, true, styles.Indigo, styles.Pink)

# Theme System (theme.go)

	theme := styles.NewThemeForMode("auto") // or "dark" / "light"
	theme.Title("Hover Searchbar")

# Animation System (animations.go)

Easing functions, TransitionConfig and Tween. A Tween holds no timers; the
owning component sends itself frame ticks every FrameInterval and calls Step.

	tw := styles.NewTween(styles.TransitionSlow, 0)
	if tw.Retarget(1, time.Now()) {
		// start a frame loop
	}

# Style Extensions (extension.go)

ApplyExtension layers caller supplied tokens such as "bold border=double"
onto a base style. Unknown tokens are ignored.
*/
package styles
