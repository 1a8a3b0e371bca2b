// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jeranaias/hoverbar-tui/internal/ui/styles"
	"github.com/jeranaias/hoverbar-tui/internal/util"
)

// =============================================================================
// TOAST TYPES
// =============================================================================

// ToastKind selects the color and marker of a toast.
type ToastKind int

const (
	ToastKindStatus ToastKind = iota
	ToastKindError
	ToastKindSuccess
)

// Auto-dismiss durations.
const (
	DefaultToastDuration = 3 * time.Second
	ErrorToastDuration   = 6 * time.Second
)

// ToastTickInterval is how often ToastTickCmd fires.
const ToastTickInterval = 250 * time.Millisecond

// Toast is a short notification shown on the page status line.
type Toast struct {
	ID        string
	Message   string
	Kind      ToastKind
	CreatedAt time.Time
	Duration  time.Duration
}

func newToast(kind ToastKind, message string, d time.Duration, now time.Time) Toast {
	return Toast{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		CreatedAt: now,
		Duration:  d,
	}
}

// ExpiredAt reports whether the toast has outlived its duration at now.
func (t Toast) ExpiredAt(now time.Time) bool {
	return now.Sub(t.CreatedAt) >= t.Duration
}

// Remaining returns the time left before auto-dismiss at now.
func (t Toast) Remaining(now time.Time) time.Duration {
	return max(t.Duration-now.Sub(t.CreatedAt), 0)
}

// =============================================================================
// TOAST MANAGER
// =============================================================================

// ToastManager keeps the newest toasts, dropping the oldest past its limit.
// It is safe for concurrent use.
type ToastManager struct {
	mu        sync.Mutex
	toasts    []Toast
	maxToasts int
	now       func() time.Time
}

// NewToastManager creates a manager that keeps up to three toasts.
func NewToastManager() *ToastManager {
	return &ToastManager{maxToasts: 3, now: time.Now}
}

// Add stores t, newest first, and returns its ID.
func (m *ToastManager) Add(t Toast) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	m.toasts = append([]Toast{t}, m.toasts...)
	if len(m.toasts) > m.maxToasts {
		m.toasts = m.toasts[:m.maxToasts]
	}
	return t.ID
}

// AddStatus adds an informational toast.
func (m *ToastManager) AddStatus(message string) string {
	return m.Add(newToast(ToastKindStatus, message, DefaultToastDuration, m.now()))
}

// AddSuccess adds a success toast.
func (m *ToastManager) AddSuccess(message string) string {
	return m.Add(newToast(ToastKindSuccess, message, DefaultToastDuration, m.now()))
}

// AddError adds an error toast, which stays up longer.
func (m *ToastManager) AddError(message string) string {
	return m.Add(newToast(ToastKindError, message, ErrorToastDuration, m.now()))
}

// Remove drops the toast with the given ID.
func (m *ToastManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, t := range m.toasts {
		if t.ID == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

// Tick drops expired toasts and reports whether any remain.
func (m *ToastManager) Tick(now time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	active := m.toasts[:0]
	for _, t := range m.toasts {
		if !t.ExpiredAt(now) {
			active = append(active, t)
		}
	}
	m.toasts = active
	return len(m.toasts) > 0
}

// Toasts returns a copy of the live toasts, newest first.
func (m *ToastManager) Toasts() []Toast {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Toast, len(m.toasts))
	copy(out, m.toasts)
	return out
}

// Len returns the number of live toasts.
func (m *ToastManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.toasts)
}

// Clear removes every toast.
func (m *ToastManager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.toasts = nil
}

// =============================================================================
// MESSAGES
// =============================================================================

// ToastTickMsg asks the host to expire toasts.
type ToastTickMsg struct {
	Time time.Time
}

// ToastTickCmd schedules the next ToastTickMsg.
func ToastTickCmd() tea.Cmd {
	return tea.Tick(ToastTickInterval, func(t time.Time) tea.Msg {
		return ToastTickMsg{Time: t}
	})
}

// =============================================================================
// RENDERING
// =============================================================================

// RenderToast renders t as a single line no wider than width.
func RenderToast(t Toast, width int, now time.Time) string {
	var marker string
	var color lipgloss.AdaptiveColor
	switch t.Kind {
	case ToastKindError:
		marker, color = styles.StatusIndicators.Error, styles.Rose
	case ToastKindSuccess:
		marker, color = styles.StatusIndicators.Success, styles.Emerald
	default:
		marker, color = styles.StatusIndicators.Info, styles.Cyan
	}

	countdown := ""
	if secs := int(t.Remaining(now).Seconds()); secs > 0 {
		countdown = " (" + strconv.Itoa(secs) + "s)"
	}

	msgWidth := width - util.StringWidth(marker) - 1 - util.StringWidth(countdown)
	msg := t.Message
	if msgWidth > 0 {
		msg = util.TruncateWidth(msg, msgWidth)
	}

	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(marker) + " " +
		lipgloss.NewStyle().Foreground(styles.TextPrimary).Render(msg) +
		lipgloss.NewStyle().Foreground(styles.TextMuted).Italic(true).Render(countdown)
}

// RenderToastLine renders the newest toast, or an empty string.
func RenderToastLine(toasts []Toast, width int, now time.Time) string {
	if len(toasts) == 0 {
		return ""
	}
	return RenderToast(toasts[0], width, now)
}
