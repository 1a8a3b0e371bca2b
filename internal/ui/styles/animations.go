// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"time"
)

// =============================================================================
// EASING
// =============================================================================

// EasingFunc is a function that maps progress (0-1) to output (0-1).
type EasingFunc func(t float64) float64

// EaseLinear - constant speed
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad - accelerating from zero
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad - decelerating to zero
func EaseOutQuad(t float64) float64 {
	return t * (2 - t)
}

// EaseInOutQuad - acceleration until halfway, then deceleration
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// EaseOutCubic - decelerating to zero (smoother)
func EaseOutCubic(t float64) float64 {
	t--
	return t*t*t + 1
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// TransitionConfig defines a transition animation.
type TransitionConfig struct {
	Duration time.Duration
	Easing   EasingFunc
}

// Progress returns the eased progress after elapsed, clamped to [0, 1].
func (c TransitionConfig) Progress(elapsed time.Duration) float64 {
	if c.Duration <= 0 || elapsed >= c.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	p := float64(elapsed) / float64(c.Duration)
	if c.Easing == nil {
		return p
	}
	return c.Easing(p)
}

// Default transitions. TransitionSlow drives the search panel reveal.
var (
	TransitionFast = TransitionConfig{
		Duration: 150 * time.Millisecond,
		Easing:   EaseOutQuad,
	}
	TransitionNormal = TransitionConfig{
		Duration: 300 * time.Millisecond,
		Easing:   EaseOutCubic,
	}
	TransitionSlow = TransitionConfig{
		Duration: 500 * time.Millisecond,
		Easing:   EaseOutCubic,
	}
)

// FrameInterval is the tick period for running transitions (~30 fps).
var FrameInterval = time.Second / 30

// =============================================================================
// TWEEN
// =============================================================================

// Tween eases a single value toward a target. It holds no timers; callers
// drive it with Step on each frame tick.
type Tween struct {
	Config TransitionConfig

	value   float64
	from    float64
	to      float64
	start   time.Time
	running bool
}

// NewTween creates a tween resting at value.
func NewTween(cfg TransitionConfig, value float64) Tween {
	return Tween{Config: cfg, value: value, from: value, to: value}
}

// Value returns the current value.
func (tw *Tween) Value() float64 { return tw.value }

// Target returns the value the tween is heading to.
func (tw *Tween) Target() float64 { return tw.to }

// Running reports whether frames are still needed.
func (tw *Tween) Running() bool { return tw.running }

// Retarget aims the tween at to, starting from the current value at now.
// It reports whether the tween went from resting to running, meaning the
// caller must start a frame loop.
func (tw *Tween) Retarget(to float64, now time.Time) bool {
	if to == tw.to && (tw.running || tw.value == to) {
		return false
	}
	tw.from = tw.value
	tw.to = to
	tw.start = now
	if tw.value == to {
		tw.running = false
		return false
	}
	started := !tw.running
	tw.running = true
	return started
}

// Snap jumps straight to to and stops.
func (tw *Tween) Snap(to float64) {
	tw.value = to
	tw.from = to
	tw.to = to
	tw.running = false
}

// Step advances the tween to now and reports whether it is still running.
func (tw *Tween) Step(now time.Time) bool {
	if !tw.running {
		return false
	}
	elapsed := now.Sub(tw.start)
	p := tw.Config.Progress(elapsed)
	tw.value = tw.from + (tw.to-tw.from)*p
	if elapsed >= tw.Config.Duration {
		tw.value = tw.to
		tw.running = false
	}
	return tw.running
}
