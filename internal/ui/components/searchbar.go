// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"log"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jeranaias/hoverbar-tui/internal/ui/styles"
)

// =============================================================================
// SEARCH BAR COMPONENT - Spyglass icon that slides out a search field on hover
// =============================================================================

// SearchFunc receives the query of a valid submit, untrimmed.
type SearchFunc func(query string)

// Defaults for SearchBarOptions.
const (
	DefaultPlaceholder = "Search anything..."
	DefaultFocusDelay  = 300 * time.Millisecond
)

// Glyphs drawn by the renderer.
const (
	glyphIdle    = "o-"
	glyphTilted  = "o\\"
	submitGlyph  = "<-"
	haloChar     = "~"
	minPanelCols = 4
	faintReveal  = 0.6
)

// SearchBarOptions configures a SearchBar. The host may replace them at any
// time with SetOptions; interaction state is kept.
type SearchBarOptions struct {
	// Placeholder is shown while the query is empty.
	Placeholder string
	// Size selects the geometry variant.
	Size Size
	// OnSearch is called once per valid submit. Optional.
	OnSearch SearchFunc
	// StyleExtension is a token list applied after the control's own style.
	StyleExtension string

	// FocusDelay is the hover-to-focus delay; zero means DefaultFocusDelay.
	FocusDelay time.Duration
	// DisableAnimation snaps the panel to its target instead of easing.
	DisableAnimation bool
	// Theme overrides styles.DefaultTheme().
	Theme *styles.Theme
	// Verbose logs deferred focus activity and full queries.
	Verbose bool
}

func (o SearchBarOptions) withDefaults() SearchBarOptions {
	if o.Placeholder == "" {
		o.Placeholder = DefaultPlaceholder
	}
	o.Size, _ = ParseSize(string(o.Size))
	if o.FocusDelay <= 0 {
		o.FocusDelay = DefaultFocusDelay
	}
	if o.Theme == nil {
		o.Theme = styles.DefaultTheme()
	}
	return o
}

// =============================================================================
// MESSAGES
// =============================================================================

// FocusGainedMsg announces that a bar took keyboard focus. Hosts with several
// bars blur the others when they see it.
type FocusGainedMsg struct {
	ID string
}

// deferredFocusMsg is delivered when a deferred focus timer fires.
type deferredFocusMsg struct {
	barID string
	seq   uint64
}

// revealFrameMsg drives the panel reveal animation.
type revealFrameMsg struct {
	barID string
	gen   uint64
	at    time.Time
}

// pendingFocus is the single outstanding deferred focus task.
type pendingFocus struct {
	seq  uint64
	done chan struct{}
}

// HitTarget identifies the part of the control under a cell.
type HitTarget int

const (
	HitNone HitTarget = iota
	HitIcon
	HitPanel
	HitSubmit
)

// Rect is a cell rectangle in screen coordinates.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// =============================================================================
// SEARCH BAR
// =============================================================================

// SearchBar is a hover-activated search control.
type SearchBar struct {
	id    string
	opts  SearchBarOptions
	theme *styles.Theme
	state InteractionState
	input textinput.Model

	wrap           lipgloss.Style
	insetX, insetY int

	origin        Rect
	pointerInside bool

	pending    *pendingFocus
	focusSeq   uint64
	focusMoves int
	submits    int

	reveal   styles.Tween
	frameGen uint64
	now      func() time.Time
}

// NewSearchBar creates an idle search bar.
func NewSearchBar(opts SearchBarOptions) *SearchBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0

	b := &SearchBar{
		id:     uuid.NewString(),
		input:  ti,
		reveal: styles.NewTween(styles.TransitionSlow, 0),
		now:    time.Now,
	}
	b.SetOptions(opts)
	return b
}

// SetOptions replaces the configuration without touching interaction state.
func (b *SearchBar) SetOptions(opts SearchBarOptions) {
	b.opts = opts.withDefaults()
	b.theme = b.opts.Theme

	b.input.Placeholder = b.opts.Placeholder
	b.input.TextStyle = b.theme.InputText.Bold(b.opts.Size == SizeLarge)
	b.input.PlaceholderStyle = b.theme.InputPlaceholder
	b.input.Cursor.Style = b.theme.InputCursor

	b.wrap = styles.ApplyExtension(b.theme.SearchBar, b.opts.StyleExtension)
	b.insetX, b.insetY = styles.ExtensionInset(b.wrap)

	if b.opts.DisableAnimation {
		b.reveal.Snap(b.revealTarget())
		b.input.Cursor.SetMode(cursor.CursorStatic)
	} else {
		b.input.Cursor.SetMode(cursor.CursorBlink)
	}
	b.syncInputWidth()
}

// Init implements tea.Model.
func (b *SearchBar) Init() tea.Cmd {
	return nil
}

// =============================================================================
// ACCESSORS
// =============================================================================

// ID returns the bar's unique identifier.
func (b *SearchBar) ID() string { return b.id }

// Options returns the effective options.
func (b *SearchBar) Options() SearchBarOptions { return b.opts }

// State returns a copy of the interaction state.
func (b *SearchBar) State() InteractionState { return b.state }

// Phase returns the current phase.
func (b *SearchBar) Phase() Phase { return b.state.Phase() }

// Expanded reports whether the panel is shown.
func (b *SearchBar) Expanded() bool { return b.state.Expanded() }

// Focused reports whether the input holds keyboard focus.
func (b *SearchBar) Focused() bool { return b.state.Focused }

// Query returns the current text.
func (b *SearchBar) Query() string { return b.state.Query }

// Visual returns the presentation derived from the current state.
func (b *SearchBar) Visual() Visual { return DeriveVisual(b.state) }

// Size returns the effective size.
func (b *SearchBar) Size() Size { return b.opts.Size }

// =============================================================================
// GEOMETRY
// =============================================================================

// SetBounds places the control's top-left corner at (x, y) in screen cells.
func (b *SearchBar) SetBounds(x, y int) {
	b.origin.X = x
	b.origin.Y = y
}

// Bounds returns the full rectangle the control draws into.
func (b *SearchBar) Bounds() Rect {
	spec := b.opts.Size.Spec()
	return Rect{
		X: b.origin.X,
		Y: b.origin.Y,
		W: spec.TotalCols() + b.wrap.GetHorizontalFrameSize(),
		H: spec.Rows() + b.wrap.GetVerticalFrameSize(),
	}
}

// Contains reports whether (x, y) is on the interactive part of the control:
// the icon always, the panel only while it is expanded.
func (b *SearchBar) Contains(x, y int) bool {
	return b.HitTest(x, y) != HitNone
}

// HitTest returns the part of the control under (x, y).
func (b *SearchBar) HitTest(x, y int) HitTarget {
	spec := b.opts.Size.Spec()
	lx := x - b.origin.X - b.insetX
	ly := y - b.origin.Y - b.insetY
	if ly < 0 || ly >= 3 {
		return HitNone
	}

	iconStart := spec.PanelCols
	if lx >= iconStart && lx < iconStart+spec.IconBoxCols() {
		return HitIcon
	}
	if !b.state.Expanded() {
		return HitNone
	}

	// Only the drawn part of a sliding panel is interactive.
	left := spec.PanelCols - b.revealedCols(spec)
	if lx < left || lx >= spec.PanelCols {
		return HitNone
	}
	if b.state.Query != "" && ly == 1 && lx >= left+1 && lx < left+1+buttonCols(spec) {
		return HitSubmit
	}
	return HitPanel
}

// revealedCols returns how many panel columns the current reveal draws.
func (b *SearchBar) revealedCols(spec SizeSpec) int {
	offset, _, _ := PanelAt(b.reveal.Value())
	if offset >= 99 {
		return 0
	}
	w := int(math.Round((100 - offset) / 100 * float64(spec.PanelCols)))
	return min(max(w, minPanelCols), spec.PanelCols)
}

func buttonCols(spec SizeSpec) int {
	return len(submitGlyph) + 2*spec.ButtonPad
}

// =============================================================================
// OPERATIONS
// =============================================================================

// PointerEnter marks the bar hovered.
func (b *SearchBar) PointerEnter() tea.Cmd {
	return b.dispatch(EventPointerEnter)
}

// PointerLeave clears hover unless the input is focused.
func (b *SearchBar) PointerLeave() tea.Cmd {
	return b.dispatch(EventPointerLeave)
}

// Focus gives the input keyboard focus. No-op when already focused.
func (b *SearchBar) Focus() tea.Cmd {
	if b.state.Focused {
		return nil
	}
	id := b.id
	return tea.Batch(
		b.dispatch(EventFocus),
		b.input.Focus(),
		func() tea.Msg { return FocusGainedMsg{ID: id} },
	)
}

// Blur removes keyboard focus. The panel collapses when the query is empty,
// even if the pointer is still over the control. No-op when not focused.
func (b *SearchBar) Blur() tea.Cmd {
	if !b.state.Focused {
		return nil
	}
	b.input.Blur()
	return b.dispatch(EventBlur)
}

// SetQuery replaces the query text verbatim.
func (b *SearchBar) SetQuery(q string) {
	b.state = b.state.WithQuery(q)
	// Size first: the submit button narrows the field once a query exists.
	b.syncInputWidth()
	if b.input.Value() != q {
		b.input.SetValue(q)
		b.input.CursorEnd()
	}
}

// Submit calls OnSearch with the untrimmed query when it has non-space
// content and reports whether it did. Blank queries are ignored silently.
func (b *SearchBar) Submit() bool {
	q := b.state.Query
	if strings.TrimSpace(q) == "" {
		return false
	}

	b.submits++
	if b.opts.Verbose {
		log.Printf("search bar %s: submit %q", b.shortID(), q)
	} else {
		log.Printf("search bar %s: submit (%d chars)", b.shortID(), len(q))
	}
	if b.opts.OnSearch != nil {
		b.opts.OnSearch(q)
	}
	return true
}

// dispatch runs ev through the state machine and acts on the hover edge.
func (b *SearchBar) dispatch(ev Event) tea.Cmd {
	next, edge := b.state.Apply(ev)
	b.state = next

	var cmds []tea.Cmd
	switch edge {
	case EdgeHoverRose:
		cmds = append(cmds, b.scheduleFocus())
	case EdgeHoverFell:
		b.cancelFocus()
	}
	cmds = append(cmds, b.syncReveal())
	return tea.Batch(cmds...)
}

// =============================================================================
// DEFERRED FOCUS
// =============================================================================

// scheduleFocus replaces any outstanding task with a fresh one.
func (b *SearchBar) scheduleFocus() tea.Cmd {
	b.cancelFocus()

	b.focusSeq++
	p := &pendingFocus{seq: b.focusSeq, done: make(chan struct{})}
	b.pending = p
	b.state.PendingFocus = true

	if b.opts.Verbose {
		log.Printf("search bar %s: focus scheduled (seq %d, %s)", b.shortID(), p.seq, b.opts.FocusDelay)
	}
	return deferredFocusCmd(b.id, p.seq, b.opts.FocusDelay, p.done)
}

// cancelFocus stops the outstanding task, if any.
func (b *SearchBar) cancelFocus() {
	if b.pending == nil {
		return
	}
	close(b.pending.done)
	if b.opts.Verbose {
		log.Printf("search bar %s: focus cancelled (seq %d)", b.shortID(), b.pending.seq)
	}
	b.pending = nil
	b.state.PendingFocus = false
}

// fireFocus applies a delivered timer if it still belongs to the live task.
func (b *SearchBar) fireFocus(seq uint64) tea.Cmd {
	if b.pending == nil || b.pending.seq != seq {
		return nil
	}
	b.pending = nil
	b.state.PendingFocus = false
	if !b.state.Hovered {
		return nil
	}

	b.focusMoves++
	if b.opts.Verbose {
		log.Printf("search bar %s: deferred focus fired (seq %d)", b.shortID(), seq)
	}
	return b.Focus()
}

// deferredFocusCmd waits for delay, or returns nil as soon as done closes.
func deferredFocusCmd(barID string, seq uint64, delay time.Duration, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-timer.C:
			return deferredFocusMsg{barID: barID, seq: seq}
		case <-done:
			return nil
		}
	}
}

// =============================================================================
// ANIMATION
// =============================================================================

// revealTarget is the slide progress the derived panel offset asks for.
func (b *SearchBar) revealTarget() float64 {
	return (100 - b.Visual().PanelOffsetPct) / 100
}

func (b *SearchBar) syncReveal() tea.Cmd {
	target := b.revealTarget()
	if b.opts.DisableAnimation {
		b.reveal.Snap(target)
		return nil
	}
	if !b.reveal.Retarget(target, b.now()) {
		return nil
	}
	b.frameGen++
	return b.frameCmd()
}

func (b *SearchBar) frameCmd() tea.Cmd {
	id, gen := b.id, b.frameGen
	return tea.Tick(styles.FrameInterval, func(t time.Time) tea.Msg {
		return revealFrameMsg{barID: id, gen: gen, at: t}
	})
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles timers, mouse and, while focused, keyboard input.
func (b *SearchBar) Update(msg tea.Msg) (*SearchBar, tea.Cmd) {
	switch msg := msg.(type) {
	case deferredFocusMsg:
		if msg.barID != b.id {
			return b, nil
		}
		return b, b.fireFocus(msg.seq)

	case revealFrameMsg:
		if msg.barID != b.id || msg.gen != b.frameGen {
			return b, nil
		}
		if b.reveal.Step(msg.at) {
			return b, b.frameCmd()
		}
		return b, nil

	case tea.MouseMsg:
		return b, b.handleMouse(msg)

	case tea.KeyMsg:
		return b, b.handleKey(msg)
	}

	// Cursor blink and other textinput internals.
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	return b, cmd
}

func (b *SearchBar) handleMouse(msg tea.MouseMsg) tea.Cmd {
	hit := b.HitTest(msg.X, msg.Y)
	inside := hit != HitNone

	var cmds []tea.Cmd
	switch {
	case inside && !b.pointerInside:
		b.pointerInside = true
		cmds = append(cmds, b.PointerEnter())
	case !inside && b.pointerInside:
		b.pointerInside = false
		cmds = append(cmds, b.PointerLeave())
	}

	if msg.Type == tea.MouseLeft {
		switch hit {
		case HitSubmit:
			b.Submit()
		case HitPanel:
			cmds = append(cmds, b.Focus())
		case HitNone:
			cmds = append(cmds, b.Blur())
		}
	}
	return tea.Batch(cmds...)
}

func (b *SearchBar) handleKey(msg tea.KeyMsg) tea.Cmd {
	if !b.state.Focused {
		return nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		b.Submit()
		return nil
	case tea.KeyEsc:
		return b.Blur()
	}

	before := b.input.Value()
	var cmd tea.Cmd
	b.input, cmd = b.input.Update(msg)
	if after := b.input.Value(); after != before {
		b.SetQuery(after)
	}
	return cmd
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the control. Its size is fixed per variant whether or not the
// panel is showing, so hosts can lay it out once.
func (b *SearchBar) View() string {
	spec := b.opts.Size.Spec()
	v := b.Visual()

	row := lipgloss.JoinHorizontal(lipgloss.Top, b.renderPanel(v, spec), b.renderIcon(v, spec))
	body := lipgloss.JoinVertical(lipgloss.Left, row, b.renderHalo(v, spec))
	return b.wrap.Render(body)
}

func (b *SearchBar) renderPanel(v Visual, spec SizeSpec) string {
	full := spec.PanelCols
	w := b.revealedCols(spec)
	if w == 0 {
		return blankBlock(full, 3)
	}

	_, opacity, scale := PanelAt(b.reveal.Value())
	style := b.theme.Panel
	if v.Ring && scale >= 1 {
		style = b.theme.PanelFocused
	}
	if opacity < faintReveal {
		style = style.Faint(true)
	}

	fullInner := full - style.GetHorizontalFrameSize()
	inner := w - style.GetHorizontalFrameSize()
	content := lipgloss.NewStyle().Width(inner).MaxWidth(inner).
		Render(b.panelContent(v, spec, fullInner))
	box := style.Render(content)

	if w < full {
		return lipgloss.JoinHorizontal(lipgloss.Top, blankBlock(full-w, 3), box)
	}
	return box
}

func (b *SearchBar) panelContent(v Visual, spec SizeSpec, inner int) string {
	var prefix string
	inputCols := inner
	if v.SubmitVisible {
		pad := strings.Repeat(" ", spec.ButtonPad)
		prefix = b.theme.SubmitButton.Render(pad+submitGlyph+pad) + " "
		inputCols -= buttonCols(spec) + 1
	}
	if inputCols < 1 {
		return prefix
	}
	field := lipgloss.NewStyle().Width(inputCols).MaxWidth(inputCols).MaxHeight(1).Render(b.input.View())
	return prefix + field
}

func (b *SearchBar) renderIcon(v Visual, spec SizeSpec) string {
	style := b.theme.Icon
	if v.IconScale > 1 {
		style = b.theme.IconActive
	}
	glyph := glyphIdle
	if v.GlyphRotationDeg != 0 {
		glyph = glyphTilted
	}
	return style.Width(spec.IconCols).Render(glyph)
}

func (b *SearchBar) renderHalo(v Visual, spec SizeSpec) string {
	width := spec.TotalCols()
	if !v.Glow {
		return strings.Repeat(" ", width)
	}
	return b.theme.Glow(strings.Repeat(haloChar, width))
}

// syncInputWidth sizes the text input for the full panel, leaving room for
// the submit affordance and the cursor.
func (b *SearchBar) syncInputWidth() {
	spec := b.opts.Size.Spec()
	cols := spec.PanelCols - b.theme.Panel.GetHorizontalFrameSize()
	if b.state.Query != "" {
		cols -= buttonCols(spec) + 1
	}
	width := max(cols-1, 1)
	if width == b.input.Width {
		return
	}
	b.input.Width = width

	// The textinput only recomputes its scroll window when the value or
	// cursor moves, so replay both at the new width.
	pos, value := b.input.Position(), b.input.Value()
	b.input.Reset()
	b.input.SetValue(value)
	b.input.SetCursor(pos)
}

func (b *SearchBar) shortID() string {
	if len(b.id) > 8 {
		return b.id[:8]
	}
	return b.id
}

func blankBlock(width, height int) string {
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
