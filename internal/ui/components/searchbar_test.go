// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/hoverbar-tui/internal/ui/styles"
)

var testTheme = styles.NewThemeForMode(styles.ModeDark)

const testFocusDelay = 20 * time.Millisecond

func newTestBar(opts SearchBarOptions) *SearchBar {
	if opts.Theme == nil {
		opts.Theme = testTheme
	}
	if opts.FocusDelay == 0 {
		opts.FocusDelay = testFocusDelay
	}
	return NewSearchBar(opts)
}

// collect runs cmd, expanding batches, and returns every message that arrives
// within wait. Commands still blocked after wait are abandoned.
func collect(cmd tea.Cmd, wait time.Duration) []tea.Msg {
	if cmd == nil {
		return nil
	}
	out := make(chan tea.Msg, 64)
	var run func(c tea.Cmd)
	run = func(c tea.Cmd) {
		go func() {
			msg := c()
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, sub := range batch {
					if sub != nil {
						run(sub)
					}
				}
				return
			}
			if msg != nil {
				out <- msg
			}
		}()
	}
	run(cmd)

	deadline := time.After(wait)
	var msgs []tea.Msg
	for {
		select {
		case m := <-out:
			msgs = append(msgs, m)
		case <-deadline:
			return msgs
		}
	}
}

func focusMsgs(msgs []tea.Msg) []deferredFocusMsg {
	var out []deferredFocusMsg
	for _, m := range msgs {
		if fm, ok := m.(deferredFocusMsg); ok {
			out = append(out, fm)
		}
	}
	return out
}

func hasFocusGained(msgs []tea.Msg, id string) bool {
	for _, m := range msgs {
		if fg, ok := m.(FocusGainedMsg); ok && fg.ID == id {
			return true
		}
	}
	return false
}

// =============================================================================
// CONSTRUCTION
// =============================================================================

func TestNewSearchBarDefaults(t *testing.T) {
	b := NewSearchBar(SearchBarOptions{Theme: testTheme})

	opts := b.Options()
	assert.Equal(t, DefaultPlaceholder, opts.Placeholder)
	assert.Equal(t, "Search anything...", opts.Placeholder)
	assert.Equal(t, SizeMedium, opts.Size)
	assert.Equal(t, 300*time.Millisecond, opts.FocusDelay)
	assert.Nil(t, opts.OnSearch)

	assert.Equal(t, InteractionState{}, b.State())
	assert.Equal(t, PhaseIdle, b.Phase())
	assert.False(t, b.Expanded())
	assert.NotEmpty(t, b.ID())
	assert.Nil(t, b.Init())
}

func TestInstancesAreIndependent(t *testing.T) {
	a := newTestBar(SearchBarOptions{DisableAnimation: true})
	b := newTestBar(SearchBarOptions{DisableAnimation: true})
	require.NotEqual(t, a.ID(), b.ID())

	cmd := a.PointerEnter()
	assert.True(t, a.State().Hovered)
	assert.False(t, b.State().Hovered)

	// A timer addressed to a must not touch b.
	for _, fm := range focusMsgs(collect(cmd, 100*time.Millisecond)) {
		b.Update(fm)
	}
	assert.False(t, b.Focused())
	assert.Zero(t, b.focusMoves)
}

// =============================================================================
// HOVER / FOCUS / BLUR
// =============================================================================

func TestHoverMirrorsLastPointerEvent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := newTestBar(SearchBarOptions{DisableAnimation: true})

	for i := 0; i < 200; i++ {
		if rng.Intn(2) == 0 {
			b.PointerEnter()
			assert.True(t, b.State().Hovered)
		} else {
			b.PointerLeave()
			assert.False(t, b.State().Hovered)
		}
		assert.Equal(t, b.State().Hovered, b.Expanded())
		assert.Equal(t, b.State().Hovered, b.State().PendingFocus, "a task is pending exactly while hovered")
	}
}

func TestExpandedInvariantUnderRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := newTestBar(SearchBarOptions{DisableAnimation: true})

	ops := []func(){
		func() { b.PointerEnter() },
		func() { b.PointerLeave() },
		func() { b.Focus() },
		func() { b.Blur() },
		func() { b.SetQuery("") },
		func() { b.SetQuery("lamp") },
		func() { b.Submit() },
	}

	for i := 0; i < 500; i++ {
		ops[rng.Intn(len(ops))]()

		s := b.State()
		assert.Equal(t, s.Hovered || s.Focused, b.Expanded())
		assert.Equal(t, b.Expanded(), b.Visual().Expanded)
		if s.Focused {
			assert.True(t, s.Hovered, "focus forces hover")
		}
		if s.PendingFocus {
			assert.True(t, s.Hovered, "no pending focus while collapsed")
			require.NotNil(t, b.pending)
		} else {
			assert.Nil(t, b.pending)
		}
		if b.Expanded() {
			assert.Equal(t, 1.0, b.reveal.Value())
		} else {
			assert.Equal(t, 0.0, b.reveal.Value())
		}
	}
}

func TestFocusForcesHover(t *testing.T) {
	b := newTestBar(SearchBarOptions{})

	msgs := collect(b.Focus(), 50*time.Millisecond)

	assert.True(t, b.State().Focused)
	assert.True(t, b.State().Hovered)
	assert.Equal(t, PhaseHoveredAndFocused, b.Phase())
	assert.True(t, hasFocusGained(msgs, b.ID()))

	// Focusing again is a no-op.
	assert.Nil(t, b.Focus())
}

func TestPointerLeaveWhileFocusedKeepsPanel(t *testing.T) {
	b := newTestBar(SearchBarOptions{})
	b.PointerEnter()
	b.Focus()

	b.PointerLeave()

	assert.True(t, b.State().Hovered)
	assert.True(t, b.Expanded())
}

func TestBlurWithEmptyQueryCollapses(t *testing.T) {
	b := newTestBar(SearchBarOptions{DisableAnimation: true})
	b.PointerEnter()
	b.Focus()

	// Pointer is still over the control; blur collapses anyway.
	b.Blur()

	assert.Equal(t, InteractionState{}, b.State())
	assert.False(t, b.Expanded())
	assert.Nil(t, b.pending)
}

func TestBlurWithQueryStaysExpanded(t *testing.T) {
	b := newTestBar(SearchBarOptions{})
	b.PointerEnter()
	b.Focus()
	b.SetQuery("cats")
	b.PointerLeave()

	b.Blur()

	s := b.State()
	assert.False(t, s.Focused)
	assert.True(t, s.Hovered)
	assert.True(t, b.Expanded())
	assert.Equal(t, "cats", b.Query())
}

func TestBlurWhenNotFocusedIsNoop(t *testing.T) {
	b := newTestBar(SearchBarOptions{})
	b.PointerEnter()

	assert.Nil(t, b.Blur())
	assert.True(t, b.State().Hovered)
}

// =============================================================================
// QUERY / SUBMIT
// =============================================================================

func TestSetQueryVerbatim(t *testing.T) {
	b := newTestBar(SearchBarOptions{})
	long := strings.Repeat("spyglass ", 200)

	for _, q := range []string{"  running shoes  ", "", long, "日本語"} {
		b.SetQuery(q)
		assert.Equal(t, q, b.Query())
	}
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		want   []string
		result bool
	}{
		{"plain", "cats", []string{"cats"}, true},
		{"untrimmed", "  running shoes  ", []string{"  running shoes  "}, true},
		{"empty", "", nil, false},
		{"spaces", "   ", nil, false},
		{"tabs and newlines", "\t\n ", nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			b := newTestBar(SearchBarOptions{OnSearch: func(q string) { got = append(got, q) }})
			b.SetQuery(tc.query)

			assert.Equal(t, tc.result, b.Submit())
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSubmitWithoutCallback(t *testing.T) {
	b := newTestBar(SearchBarOptions{})
	b.SetQuery("cats")

	assert.True(t, b.Submit())
	assert.Equal(t, 1, b.submits)
}

func TestSubmitTwiceEmitsTwice(t *testing.T) {
	count := 0
	b := newTestBar(SearchBarOptions{OnSearch: func(string) { count++ }})
	b.SetQuery("cats")

	b.Submit()
	b.Submit()

	assert.Equal(t, 2, count)
}

// =============================================================================
// DEFERRED FOCUS
// =============================================================================

func TestDeferredFocusFiresAfterDelay(t *testing.T) {
	b := newTestBar(SearchBarOptions{})

	cmd := b.PointerEnter()
	assert.True(t, b.State().PendingFocus)
	assert.False(t, b.Focused())

	fired := focusMsgs(collect(cmd, 200*time.Millisecond))
	require.Len(t, fired, 1)

	_, focusCmd := b.Update(fired[0])
	assert.True(t, b.Focused())
	assert.False(t, b.State().PendingFocus)
	assert.Equal(t, 1, b.focusMoves)
	assert.True(t, hasFocusGained(collect(focusCmd, 50*time.Millisecond), b.ID()))
}

func TestDeferredFocusWaitsAtLeastDelay(t *testing.T) {
	delay := 60 * time.Millisecond
	start := time.Now()

	msg := deferredFocusCmd("bar", 1, delay, make(chan struct{}))()

	assert.GreaterOrEqual(t, time.Since(start), delay)
	assert.Equal(t, deferredFocusMsg{barID: "bar", seq: 1}, msg)
}

func TestDeferredFocusCancelledByLeave(t *testing.T) {
	b := newTestBar(SearchBarOptions{})

	cmd := b.PointerEnter()
	seq := b.pending.seq
	b.PointerLeave()

	assert.False(t, b.State().PendingFocus)
	assert.Empty(t, focusMsgs(collect(cmd, 100*time.Millisecond)), "cancelled timer delivers nothing")

	// Even a timer that slipped through is ignored after collapse.
	b.Update(deferredFocusMsg{barID: b.ID(), seq: seq})
	assert.False(t, b.Focused())
	assert.Zero(t, b.focusMoves)
}

func TestDeferredFocusOnlyLastHoverCounts(t *testing.T) {
	b := newTestBar(SearchBarOptions{})

	first := b.PointerEnter()
	firstSeq := b.pending.seq
	b.PointerLeave()
	second := b.PointerEnter()
	secondSeq := b.pending.seq
	require.NotEqual(t, firstSeq, secondSeq)

	msgs := append(collect(first, 100*time.Millisecond), collect(second, 100*time.Millisecond)...)
	fired := focusMsgs(msgs)
	require.Len(t, fired, 1)
	assert.Equal(t, secondSeq, fired[0].seq)

	// Stale sequence numbers are ignored.
	b.Update(deferredFocusMsg{barID: b.ID(), seq: firstSeq})
	assert.False(t, b.Focused())

	b.Update(fired[0])
	assert.True(t, b.Focused())
	assert.Equal(t, 1, b.focusMoves)
}

func TestRepeatedEnterDoesNotReschedule(t *testing.T) {
	b := newTestBar(SearchBarOptions{})

	b.PointerEnter()
	seq := b.pending.seq
	assert.Nil(t, focusMsgs(collect(b.PointerEnter(), 10*time.Millisecond)))
	assert.Equal(t, seq, b.pending.seq)
}

func TestBlurCancelsPendingFocus(t *testing.T) {
	b := newTestBar(SearchBarOptions{})
	b.Focus()
	require.NotNil(t, b.pending)
	seq := b.pending.seq

	b.Blur()

	assert.Nil(t, b.pending)
	b.Update(deferredFocusMsg{barID: b.ID(), seq: seq})
	assert.False(t, b.Focused())
}

// =============================================================================
// MOUSE
// =============================================================================

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Type: tea.MouseMotion}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Type: tea.MouseLeft}
}

func TestMouseHoverAndLeave(t *testing.T) {
	b := newTestBar(SearchBarOptions{DisableAnimation: true})
	b.SetBounds(10, 5)
	spec := b.Size().Spec()
	iconX := 10 + spec.PanelCols + 1

	// Empty panel area does not count while collapsed.
	b.Update(motion(12, 6))
	assert.False(t, b.State().Hovered)

	b.Update(motion(iconX, 6))
	assert.True(t, b.State().Hovered)

	// Moving onto the revealed panel keeps the hover.
	b.Update(motion(12, 6))
	assert.True(t, b.State().Hovered)

	// The halo row is not interactive.
	b.Update(motion(iconX, 8))
	assert.False(t, b.State().Hovered)
}

func TestMouseClickPanelFocuses(t *testing.T) {
	b := newTestBar(SearchBarOptions{DisableAnimation: true})
	b.SetBounds(0, 0)
	spec := b.Size().Spec()

	b.Update(motion(spec.PanelCols+2, 1))
	_, cmd := b.Update(click(10, 1))

	assert.True(t, b.Focused())
	assert.True(t, hasFocusGained(collect(cmd, 50*time.Millisecond), b.ID()))

	// Clicking elsewhere blurs; the empty panel collapses.
	b.Update(click(200, 30))
	assert.False(t, b.Focused())
	assert.False(t, b.Expanded())
}

func TestMouseClickSubmit(t *testing.T) {
	var got []string
	b := newTestBar(SearchBarOptions{DisableAnimation: true, OnSearch: func(q string) { got = append(got, q) }})
	b.SetBounds(0, 0)
	b.Focus()
	b.SetQuery("lanterns")

	require.Equal(t, HitSubmit, b.HitTest(1, 1))
	b.Update(click(1, 1))

	assert.Equal(t, []string{"lanterns"}, got)
}

func TestHitTestRespectsStyleInset(t *testing.T) {
	b := newTestBar(SearchBarOptions{StyleExtension: "margin=1", DisableAnimation: true})
	b.SetBounds(0, 0)
	spec := b.Size().Spec()

	assert.Equal(t, HitNone, b.HitTest(spec.PanelCols, 0))
	assert.Equal(t, HitIcon, b.HitTest(spec.PanelCols+1, 1))

	r := b.Bounds()
	assert.Equal(t, spec.TotalCols()+2, r.W)
	assert.Equal(t, spec.Rows()+2, r.H)
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 2}

	assert.True(t, r.Contains(2, 3))
	assert.True(t, r.Contains(5, 4))
	assert.False(t, r.Contains(6, 4))
	assert.False(t, r.Contains(2, 5))
	assert.False(t, r.Contains(1, 3))
}

// =============================================================================
// KEYBOARD
// =============================================================================

func TestTypingUpdatesQueryAndEnterSubmits(t *testing.T) {
	var got []string
	b := newTestBar(SearchBarOptions{OnSearch: func(q string) { got = append(got, q) }})
	b.Focus()

	b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("cats")})
	assert.Equal(t, "cats", b.Query())
	assert.True(t, b.Visual().SubmitVisible)

	b.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"cats"}, got)

	b.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "cat", b.Query())
}

func TestEnterOnBlankQueryIsSilent(t *testing.T) {
	called := false
	b := newTestBar(SearchBarOptions{OnSearch: func(string) { called = true }})
	b.Focus()
	b.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})

	_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, called)
	assert.Nil(t, cmd)
}

func TestEscBlurs(t *testing.T) {
	b := newTestBar(SearchBarOptions{})
	b.Focus()

	b.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, b.Focused())
	assert.False(t, b.Expanded())
}

func TestKeysIgnoredWhenNotFocused(t *testing.T) {
	b := newTestBar(SearchBarOptions{})
	b.PointerEnter()

	b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.Equal(t, "", b.Query())
}

// =============================================================================
// OPTIONS
// =============================================================================

func TestSetOptionsKeepsState(t *testing.T) {
	b := newTestBar(SearchBarOptions{})
	b.PointerEnter()
	b.Focus()
	b.SetQuery("maps")

	b.SetOptions(SearchBarOptions{Placeholder: "Find...", Size: SizeLarge, Theme: testTheme})

	assert.Equal(t, "maps", b.Query())
	assert.True(t, b.Focused())
	assert.Equal(t, SizeLarge, b.Size())
	assert.Equal(t, "Find...", b.Options().Placeholder)
}

func TestUnknownSizeFallsBackToMedium(t *testing.T) {
	b := newTestBar(SearchBarOptions{Size: Size("xl")})
	assert.Equal(t, SizeMedium, b.Size())
}

// =============================================================================
// ANIMATION
// =============================================================================

func TestRevealAnimation(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBar(SearchBarOptions{})
	b.now = func() time.Time { return base }

	cmd := b.PointerEnter()
	require.NotNil(t, cmd)
	assert.True(t, b.reveal.Running())
	assert.Equal(t, 0.0, b.reveal.Value())
	gen := b.frameGen

	// Stale generations are ignored.
	_, next := b.Update(revealFrameMsg{barID: b.ID(), gen: gen - 1, at: base.Add(time.Second)})
	assert.Nil(t, next)
	assert.Equal(t, 0.0, b.reveal.Value())

	_, next = b.Update(revealFrameMsg{barID: b.ID(), gen: gen, at: base.Add(200 * time.Millisecond)})
	assert.NotNil(t, next, "still running")
	mid := b.reveal.Value()
	assert.Greater(t, mid, 0.0)
	assert.Less(t, mid, 1.0)

	_, next = b.Update(revealFrameMsg{barID: b.ID(), gen: gen, at: base.Add(styles.TransitionSlow.Duration)})
	assert.Nil(t, next)
	assert.Equal(t, 1.0, b.reveal.Value())
}

func TestRevealRetargetWhileRunning(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	b := newTestBar(SearchBarOptions{})
	b.now = func() time.Time { return base }

	b.PointerEnter()
	gen := b.frameGen
	b.Update(revealFrameMsg{barID: b.ID(), gen: gen, at: base.Add(100 * time.Millisecond)})

	// Leaving mid-flight retargets without starting a second frame loop.
	b.PointerLeave()
	assert.Equal(t, gen, b.frameGen)
	assert.Equal(t, 0.0, b.reveal.Target())
}

// =============================================================================
// VIEW
// =============================================================================

func TestViewHasFixedGeometry(t *testing.T) {
	for _, size := range Sizes {
		t.Run(string(size), func(t *testing.T) {
			b := newTestBar(SearchBarOptions{Size: size, DisableAnimation: true})
			spec := size.Spec()

			collapsed := b.View()
			assert.Equal(t, spec.Rows(), lipgloss.Height(collapsed))
			assert.Equal(t, spec.TotalCols(), lipgloss.Width(collapsed))

			b.Focus()
			b.SetQuery("a fairly long query that will not fit in the smallest panel at all")
			expanded := b.View()
			assert.Equal(t, spec.Rows(), lipgloss.Height(expanded))
			assert.Equal(t, spec.TotalCols(), lipgloss.Width(expanded))
		})
	}
}

func TestViewShowsPlaceholderOnlyWhenExpanded(t *testing.T) {
	b := newTestBar(SearchBarOptions{Placeholder: "Quick search...", DisableAnimation: true})

	assert.NotContains(t, b.View(), "Quick search")

	b.PointerEnter()
	view := b.View()
	assert.Contains(t, view, "Quick search")
	assert.Contains(t, view, haloChar)
	assert.Contains(t, view, glyphTilted)
	assert.NotContains(t, view, submitGlyph)
}

func TestViewShowsSubmitWithQuery(t *testing.T) {
	b := newTestBar(SearchBarOptions{DisableAnimation: true})
	b.Focus()
	b.SetQuery("owls")

	view := b.View()
	assert.Contains(t, view, submitGlyph)
	assert.Contains(t, view, "owls")
}

func TestViewCollapsedShowsIdleGlyph(t *testing.T) {
	b := newTestBar(SearchBarOptions{DisableAnimation: true})

	view := b.View()
	assert.Contains(t, view, glyphIdle)
	assert.NotContains(t, view, haloChar)
}

// =============================================================================
// SCENARIOS
// =============================================================================

func TestScenarioLargeBarHoverThenFocus(t *testing.T) {
	b := newTestBar(SearchBarOptions{Size: SizeLarge, Placeholder: "Search products..."})

	cmd := b.PointerEnter()

	// The derived visual flips within the same update.
	v := b.Visual()
	assert.True(t, v.Expanded)
	assert.Equal(t, 1.0, v.PanelOpacity)
	assert.Equal(t, 0.0, v.PanelOffsetPct)
	assert.False(t, b.Focused(), "deferred focus has not fired yet")
	assert.Zero(t, b.focusMoves)

	for _, fm := range focusMsgs(collect(cmd, 200*time.Millisecond)) {
		b.Update(fm)
	}
	assert.True(t, b.Focused())
	assert.Equal(t, 1, b.focusMoves)
}

func TestScenarioTypeAndSubmitKeepsPanelOpen(t *testing.T) {
	var got []string
	b := newTestBar(SearchBarOptions{OnSearch: func(q string) { got = append(got, q) }})
	b.PointerEnter()
	b.Focus()

	b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("rust")})
	b.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"rust"}, got)
	assert.True(t, b.Focused())
	assert.True(t, b.Expanded())

	b.PointerLeave()
	b.Blur()
	assert.True(t, b.Expanded(), "unsubmitted text keeps the panel open")
}

func TestLongQueryKeepsFixedGeometry(t *testing.T) {
	long := strings.Repeat("lantern ", 9)

	for _, size := range Sizes {
		t.Run(string(size), func(t *testing.T) {
			b := newTestBar(SearchBarOptions{Size: size, DisableAnimation: true})
			b.SetBounds(0, 0)
			spec := size.Spec()
			b.Focus()

			// Typing crosses the point where the submit button appears.
			for _, r := range long {
				b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
				view := b.View()
				require.Equal(t, spec.Rows(), lipgloss.Height(view), "after %d chars", len(b.Query()))
				require.Equal(t, spec.TotalCols(), lipgloss.Width(view))
			}
			assert.Equal(t, long, b.Query())
			assert.Equal(t, b.Bounds().H, lipgloss.Height(b.View()))

			b.SetQuery("")
			b.SetQuery(long + long)
			assert.Equal(t, spec.Rows(), lipgloss.Height(b.View()))
			assert.Contains(t, b.View(), submitGlyph)
		})
	}
}

func TestHitTestFollowsRevealedPanel(t *testing.T) {
	base := time.Now()
	b := newTestBar(SearchBarOptions{Size: SizeMedium})
	b.now = func() time.Time { return base }
	b.SetBounds(0, 0)
	spec := b.Size().Spec()

	b.PointerEnter()
	require.True(t, b.Expanded())
	assert.Equal(t, HitNone, b.HitTest(1, 1), "nothing drawn yet")
	assert.Equal(t, HitIcon, b.HitTest(spec.PanelCols+1, 1))

	b.Update(revealFrameMsg{barID: b.ID(), gen: b.frameGen, at: base.Add(100 * time.Millisecond)})
	left := spec.PanelCols - b.revealedCols(spec)
	require.Greater(t, left, 0)
	require.Less(t, left, spec.PanelCols)
	assert.Equal(t, HitNone, b.HitTest(left-1, 1))
	assert.Equal(t, HitPanel, b.HitTest(left, 1))

	b.Update(revealFrameMsg{barID: b.ID(), gen: b.frameGen, at: base.Add(styles.TransitionSlow.Duration)})
	assert.Equal(t, HitPanel, b.HitTest(0, 1))
}
