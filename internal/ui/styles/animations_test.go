// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// EASING FUNCTION TESTS
// =============================================================================

func TestEaseLinear(t *testing.T) {
	tests := []struct {
		t    float64
		want float64
	}{
		{0.0, 0.0},
		{0.25, 0.25},
		{0.5, 0.5},
		{1.0, 1.0},
	}

	for _, tc := range tests {
		if got := EaseLinear(tc.t); got != tc.want {
			t.Errorf("EaseLinear(%f) = %f, want %f", tc.t, got, tc.want)
		}
	}
}

func TestEaseInQuad(t *testing.T) {
	if got := EaseInQuad(0.5); got != 0.25 {
		t.Errorf("EaseInQuad(0.5) = %f, want 0.25", got)
	}
}

func TestEaseOutQuad(t *testing.T) {
	if EaseOutQuad(0.0) != 0.0 || EaseOutQuad(1.0) != 1.0 {
		t.Error("EaseOutQuad should map 0->0 and 1->1")
	}
	if EaseOutQuad(0.5) <= 0.5 {
		t.Error("EaseOutQuad should decelerate (mid > 0.5)")
	}
}

func TestEaseInOutQuad(t *testing.T) {
	if EaseInOutQuad(0.5) != 0.5 {
		t.Error("EaseInOutQuad(0.5) should be 0.5")
	}
}

func TestEasingFunctionsBounds(t *testing.T) {
	funcs := []struct {
		name string
		fn   EasingFunc
	}{
		{"Linear", EaseLinear},
		{"InQuad", EaseInQuad},
		{"OutQuad", EaseOutQuad},
		{"InOutQuad", EaseInOutQuad},
		{"OutCubic", EaseOutCubic},
	}

	for _, f := range funcs {
		t.Run(f.name, func(t *testing.T) {
			assert.InDelta(t, 0.0, f.fn(0.0), 1e-9)
			assert.InDelta(t, 1.0, f.fn(1.0), 1e-9)

			prev := 0.0
			for i := 1; i <= 10; i++ {
				v := f.fn(float64(i) / 10)
				assert.GreaterOrEqual(t, v, prev, "%s must be monotonic", f.name)
				prev = v
			}
		})
	}
}

// =============================================================================
// TRANSITION TESTS
// =============================================================================

func TestTransitionProgress(t *testing.T) {
	cfg := TransitionConfig{Duration: 100 * time.Millisecond, Easing: EaseLinear}

	assert.Equal(t, 0.0, cfg.Progress(-time.Second))
	assert.Equal(t, 0.0, cfg.Progress(0))
	assert.InDelta(t, 0.5, cfg.Progress(50*time.Millisecond), 1e-9)
	assert.Equal(t, 1.0, cfg.Progress(100*time.Millisecond))
	assert.Equal(t, 1.0, cfg.Progress(time.Hour))

	instant := TransitionConfig{}
	assert.Equal(t, 1.0, instant.Progress(0))
}

func TestTransitionDurations(t *testing.T) {
	assert.Less(t, TransitionFast.Duration, TransitionNormal.Duration)
	assert.Less(t, TransitionNormal.Duration, TransitionSlow.Duration)
	assert.Equal(t, 500*time.Millisecond, TransitionSlow.Duration)
}

// =============================================================================
// TWEEN TESTS
// =============================================================================

func TestTweenRunsToTarget(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tw := NewTween(TransitionConfig{Duration: 100 * time.Millisecond, Easing: EaseLinear}, 0)

	assert.True(t, tw.Retarget(1, start), "resting tween should request a frame loop")
	assert.True(t, tw.Running())

	assert.True(t, tw.Step(start.Add(50*time.Millisecond)))
	assert.InDelta(t, 0.5, tw.Value(), 1e-9)

	assert.False(t, tw.Step(start.Add(100*time.Millisecond)))
	assert.Equal(t, 1.0, tw.Value())
	assert.False(t, tw.Running())
}

func TestTweenRetargetMidFlight(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tw := NewTween(TransitionConfig{Duration: 100 * time.Millisecond, Easing: EaseLinear}, 0)

	tw.Retarget(1, start)
	tw.Step(start.Add(40 * time.Millisecond))

	// Already running: no second frame loop.
	assert.False(t, tw.Retarget(0, start.Add(40*time.Millisecond)))
	assert.Equal(t, 0.0, tw.Target())

	tw.Step(start.Add(90 * time.Millisecond))
	assert.InDelta(t, 0.2, tw.Value(), 1e-9)

	tw.Step(start.Add(200 * time.Millisecond))
	assert.Equal(t, 0.0, tw.Value())
}

func TestTweenRetargetNoop(t *testing.T) {
	now := time.Now()
	tw := NewTween(TransitionSlow, 1)

	assert.False(t, tw.Retarget(1, now))
	assert.False(t, tw.Running())
	assert.False(t, tw.Step(now.Add(time.Second)))
}

func TestTweenSnap(t *testing.T) {
	tw := NewTween(TransitionSlow, 0)
	tw.Retarget(1, time.Now())
	tw.Snap(1)

	assert.Equal(t, 1.0, tw.Value())
	assert.False(t, tw.Running())
}
