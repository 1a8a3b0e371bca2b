// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusBarBadges(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseIdle, "[IDLE]"},
		{PhaseHoveredOnly, "[HOVER]"},
		{PhaseHoveredAndFocused, "[FOCUS]"},
		{PhaseFocusedOnly, "[FOCUS]"},
	}

	for _, tt := range tests {
		t.Run(tt.phase.String(), func(t *testing.T) {
			sb := NewStatusBar(testTheme)
			sb.Phase = tt.phase
			assert.True(t, strings.HasPrefix(sb.View(time.Now()), tt.want))
		})
	}
}

func TestStatusBarIsOneLineAtEveryWidth(t *testing.T) {
	for _, width := range []int{10, 30, 59, 60, 99, 100, 160} {
		sb := NewStatusBar(testTheme)
		sb.SetWidth(width)
		sb.Phase = PhaseHoveredAndFocused
		sb.ActiveSize = SizeLarge
		sb.Hint = strings.Repeat("a long hint ", 20)
		sb.Results = 5
		sb.ScrollPercent = 0.5

		view := sb.View(time.Now())
		assert.Equal(t, 1, lipgloss.Height(view), "width %d", width)
		assert.LessOrEqual(t, lipgloss.Width(view), width, "width %d", width)
	}
}

func TestStatusBarLayouts(t *testing.T) {
	sb := NewStatusBar(testTheme)
	sb.Hint = "hint"
	sb.Results = 5
	sb.ScrollPercent = 0.25
	sb.ActiveSize = SizeSmall

	sb.SetWidth(50)
	narrow := sb.View(time.Now())
	assert.NotContains(t, narrow, "5 results")
	assert.NotContains(t, narrow, "25%")

	sb.SetWidth(80)
	medium := sb.View(time.Now())
	assert.Contains(t, medium, "5 results")
	assert.NotContains(t, medium, "25%")

	sb.SetWidth(120)
	wide := sb.View(time.Now())
	assert.Contains(t, wide, "5 results")
	assert.Contains(t, wide, "25%")
	assert.Contains(t, wide, "[IDLE] sm")
}

func TestStatusBarToastReplacesHint(t *testing.T) {
	now := time.Now()
	sb := NewStatusBar(testTheme)
	sb.SetWidth(100)
	sb.Hint = "hover a spyglass"
	toast := newToast(ToastKindSuccess, "Copied 6 lines", DefaultToastDuration, now)
	sb.Toast = &toast

	view := sb.View(now)
	assert.Contains(t, view, "Copied 6 lines")
	assert.NotContains(t, view, "hover a spyglass")
}

func TestStatusBarZeroWidth(t *testing.T) {
	sb := NewStatusBar(nil)
	sb.SetWidth(0)
	assert.Empty(t, sb.View(time.Now()))
}
