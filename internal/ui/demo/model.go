// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package demo

import (
	"log"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"

	"github.com/jeranaias/hoverbar-tui/internal/config"
	"github.com/jeranaias/hoverbar-tui/internal/ui/components"
	"github.com/jeranaias/hoverbar-tui/internal/ui/styles"
)

// =============================================================================
// DEMO MODEL
// =============================================================================

// Model is the Bubble Tea model for the demo page: a hero search bar, one bar
// per size variant, and the mock results they share.
type Model struct {
	cfg   *config.Config
	theme *styles.Theme

	// Dimensions
	width  int
	height int
	ready  bool

	// Search bars in tab order; hero first.
	hero     *components.SearchBar
	variants []*components.SearchBar
	bars     []*components.SearchBar

	results  *ResultSet
	viewport *components.PageViewport
	markdown *markdownRenderer
	toasts   *components.ToastManager
	ticking  bool

	keys KeyMap
	help help.Model

	layout pageLayout

	copyText func(string) error
	now      func() time.Time
	quitting bool
}

// Options configures New. Zero values pick defaults.
type Options struct {
	// Theme overrides the theme chosen from cfg.UI.Theme.
	Theme *styles.Theme
	// CopyText writes to the system clipboard.
	CopyText func(string) error
}

// New creates the demo page from cfg. A nil cfg uses config.Default().
func New(cfg *config.Config, opts Options) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewThemeForMode(cfg.UI.Theme)
	}
	copyText := opts.CopyText
	if copyText == nil {
		copyText = clipboard.WriteAll
	}

	m := Model{
		cfg:      cfg,
		theme:    theme,
		results:  NewResultSet(clearAfter(cfg)),
		viewport: components.NewPageViewport(theme),
		markdown: newMarkdownRenderer(theme),
		toasts:   components.NewToastManager(),
		keys:     DefaultKeyMap(),
		help:     help.New(),
		copyText: copyText,
		now:      time.Now,
	}

	onSearch := m.handleSearch
	m.hero = components.NewSearchBar(heroOptions(cfg, theme, onSearch))
	for _, card := range variantCards {
		m.variants = append(m.variants, components.NewSearchBar(variantOptions(cfg, theme, card.Size, onSearch)))
	}
	m.bars = append([]*components.SearchBar{m.hero}, m.variants...)
	return m
}

// handleSearch is every bar's OnSearch. The results pointer is shared by all
// copies of the model, so the closure stays valid across updates.
func (m Model) handleSearch(query string) {
	if m.cfg.Log.Verbose {
		log.Printf("demo: search %q", query)
	}
	m.results.Show(query)
}

func clearAfter(cfg *config.Config) time.Duration {
	return time.Duration(cfg.Demo.ClearAfterSecs) * time.Second
}

func baseOptions(cfg *config.Config, theme *styles.Theme, onSearch components.SearchFunc) components.SearchBarOptions {
	return components.SearchBarOptions{
		OnSearch:         onSearch,
		StyleExtension:   cfg.Search.Style,
		FocusDelay:       time.Duration(cfg.Search.FocusDelayMs) * time.Millisecond,
		DisableAnimation: !cfg.UI.Animate,
		Theme:            theme,
		Verbose:          cfg.Log.Verbose,
	}
}

func heroOptions(cfg *config.Config, theme *styles.Theme, onSearch components.SearchFunc) components.SearchBarOptions {
	opts := baseOptions(cfg, theme, onSearch)
	opts.Placeholder = cfg.Demo.HeroPlaceholder
	opts.Size = components.Size(cfg.Demo.HeroSize)
	return opts
}

func variantOptions(cfg *config.Config, theme *styles.Theme, size components.Size, onSearch components.SearchFunc) components.SearchBarOptions {
	opts := baseOptions(cfg, theme, onSearch)
	opts.Size = size
	switch size {
	case components.SizeSmall:
		opts.Placeholder = cfg.Demo.SmallPlaceholder
	case components.SizeLarge:
		opts.Placeholder = cfg.Demo.LargePlaceholder
	default:
		opts.Placeholder = cfg.Demo.MediumPlaceholder
	}
	return opts
}

// applyConfig swaps in a reloaded config. Bars keep their interaction state.
func (m *Model) applyConfig(cfg *config.Config) {
	if cfg.UI.Theme != m.cfg.UI.Theme {
		m.theme = styles.NewThemeForMode(cfg.UI.Theme)
		m.markdown = newMarkdownRenderer(m.theme)
	}
	m.cfg = cfg
	m.results.SetClearAfter(clearAfter(cfg))

	m.hero.SetOptions(heroOptions(cfg, m.theme, m.handleSearch))
	for i, card := range variantCards {
		m.variants[i].SetOptions(variantOptions(cfg, m.theme, card.Size, m.handleSearch))
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Bars returns the search bars in tab order.
func (m Model) Bars() []*components.SearchBar { return m.bars }

// Hero returns the hero bar.
func (m Model) Hero() *components.SearchBar { return m.hero }

// Results returns the shared result set.
func (m Model) Results() *ResultSet { return m.results }

// Toasts returns the toast manager.
func (m Model) Toasts() *components.ToastManager { return m.toasts }

// Config returns the active configuration.
func (m Model) Config() *config.Config { return m.cfg }

// activeIndex returns the focused bar, else the first expanded one, or -1.
func (m Model) activeIndex() int {
	if i := m.focusedIndex(); i >= 0 {
		return i
	}
	for i, b := range m.bars {
		if b.Expanded() {
			return i
		}
	}
	return -1
}

// focusedIndex returns the index of the focused bar, or -1.
func (m Model) focusedIndex() int {
	for i, b := range m.bars {
		if b.Focused() {
			return i
		}
	}
	return -1
}
