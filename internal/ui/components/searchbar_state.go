// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

// =============================================================================
// INTERACTION STATE MACHINE
// =============================================================================

// InteractionState is the complete interaction state of one search bar.
// The zero value is the idle state.
type InteractionState struct {
	// Hovered is true while the pointer rests on the control. Focus forces it
	// on, and a blur with a non-empty query leaves it on.
	Hovered bool
	// Focused is true while the text input holds keyboard focus.
	Focused bool
	// PendingFocus is true while a deferred focus move is outstanding.
	PendingFocus bool
	// Query is the current text, kept verbatim.
	Query string
}

// Expanded reports whether the input panel is shown.
func (s InteractionState) Expanded() bool {
	return s.Hovered || s.Focused
}

// Phase names the four reachable combinations of Hovered and Focused.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseHoveredOnly
	PhaseFocusedOnly
	PhaseHoveredAndFocused
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseHoveredOnly:
		return "hovered"
	case PhaseFocusedOnly:
		return "focused"
	case PhaseHoveredAndFocused:
		return "hovered+focused"
	default:
		return "unknown"
	}
}

// Phase derives the phase from the flags.
func (s InteractionState) Phase() Phase {
	switch {
	case s.Hovered && s.Focused:
		return PhaseHoveredAndFocused
	case s.Hovered:
		return PhaseHoveredOnly
	case s.Focused:
		return PhaseFocusedOnly
	default:
		return PhaseIdle
	}
}

// Event is an input to the state machine.
type Event int

const (
	EventPointerEnter Event = iota
	EventPointerLeave
	EventFocus
	EventBlur
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventPointerEnter:
		return "pointer-enter"
	case EventPointerLeave:
		return "pointer-leave"
	case EventFocus:
		return "focus"
	case EventBlur:
		return "blur"
	default:
		return "unknown"
	}
}

// Edge describes how Hovered changed across a transition. The deferred focus
// task is scheduled on HoverRose and cancelled on HoverFell.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeHoverRose
	EdgeHoverFell
)

// Apply is the single transition function. It is total: every event is
// accepted in every phase.
func (s InteractionState) Apply(ev Event) (InteractionState, Edge) {
	next := s
	switch ev {
	case EventPointerEnter:
		next.Hovered = true
	case EventPointerLeave:
		if !s.Focused {
			next.Hovered = false
		}
	case EventFocus:
		next.Focused = true
		next.Hovered = true
	case EventBlur:
		next.Focused = false
		if s.Query == "" {
			next.Hovered = false
		}
	}
	return next, hoverEdge(s, next)
}

// WithQuery replaces the query text. It never changes Hovered or Focused.
func (s InteractionState) WithQuery(q string) InteractionState {
	s.Query = q
	return s
}

func hoverEdge(prev, next InteractionState) Edge {
	switch {
	case !prev.Hovered && next.Hovered:
		return EdgeHoverRose
	case prev.Hovered && !next.Hovered:
		return EdgeHoverFell
	default:
		return EdgeNone
	}
}
