// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the UI components of the hoverbar TUI, built on
Bubble Tea, Bubbles and Lip Gloss.

# Search Bar

SearchBar (searchbar.go) is a spyglass icon that slides out a text panel
while the pointer hovers over it, and moves keyboard focus into the panel
after a delay. Its interaction state is a small pure state machine
(searchbar_state.go); everything drawn is derived from that state
(searchbar_visual.go). Three size variants are defined in searchbar_size.go.

Hosts forward tea.MouseMsg and tea.KeyMsg to every bar and call SetBounds
after laying the bar out, so hit testing matches what was drawn:

	bar := components.NewSearchBar(components.SearchBarOptions{
		Placeholder: "Search products...",
		Size:        components.SizeMedium,
		OnSearch:    func(q string) { log.Printf("search %q", q) },
	})
	bar.SetBounds(x, y)

A bar that takes focus emits FocusGainedMsg; hosts with several bars blur
the others when they see it.

# Page Furniture

PageViewport (viewport.go) scrolls the demo page with a scroll bar.
StatusBar (statusbar.go) is the one-line strip below it.
ToastManager (toast.go) holds short-lived notifications.
CodeBlock (codeblock.go) draws syntax-highlighted code using Chroma.
*/
package components
