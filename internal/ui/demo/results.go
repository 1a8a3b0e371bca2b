// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package demo

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultClearAfter is how long mock results stay visible.
const DefaultClearAfter = 3 * time.Second

// clearResultsMsg asks the page to drop results of generation gen.
type clearResultsMsg struct {
	gen uint64
}

// MockResults fabricates the five display lines for query.
func MockResults(query string) []string {
	return []string{
		fmt.Sprintf("Finding results for \"%s\"...", query),
		fmt.Sprintf("[doc] %s - Documentation", query),
		fmt.Sprintf("[adv] Advanced %s search", query),
		fmt.Sprintf("[top] Popular %s items", query),
		fmt.Sprintf("[app] Mobile %s apps", query),
	}
}

// ResultSet holds the query echo and mock lines of the latest search. Each
// Show starts a new generation; a clear only applies to the generation that
// armed it, so an older timer never wipes newer results.
type ResultSet struct {
	query      string
	lines      []string
	gen        uint64
	clearAfter time.Duration
	pending    tea.Cmd
}

// NewResultSet creates an empty set that clears after clearAfter.
func NewResultSet(clearAfter time.Duration) *ResultSet {
	if clearAfter <= 0 {
		clearAfter = DefaultClearAfter
	}
	return &ResultSet{clearAfter: clearAfter}
}

// SetClearAfter changes the delay used by later Show calls.
func (r *ResultSet) SetClearAfter(d time.Duration) {
	if d > 0 {
		r.clearAfter = d
	}
}

// Show replaces the results with those for query and arms a clear.
func (r *ResultSet) Show(query string) {
	r.gen++
	r.query = query
	r.lines = MockResults(query)

	gen := r.gen
	r.pending = tea.Tick(r.clearAfter, func(time.Time) tea.Msg {
		return clearResultsMsg{gen: gen}
	})
}

// TakeCmd returns the clear armed by the last Show, once.
func (r *ResultSet) TakeCmd() tea.Cmd {
	cmd := r.pending
	r.pending = nil
	return cmd
}

// Clear empties the set if gen is still current and reports whether it did.
func (r *ResultSet) Clear(gen uint64) bool {
	if gen != r.gen || r.Empty() {
		return false
	}
	r.query = ""
	r.lines = nil
	return true
}

// Query returns the echoed query.
func (r *ResultSet) Query() string { return r.query }

// Lines returns the displayed lines.
func (r *ResultSet) Lines() []string { return r.lines }

// Empty reports whether nothing is displayed.
func (r *ResultSet) Empty() bool { return len(r.lines) == 0 }

// Title is the heading shown above the lines.
func (r *ResultSet) Title() string {
	return fmt.Sprintf("Search Results for \"%s\":", r.query)
}

// Text is the title and lines as plain text, for the clipboard.
func (r *ResultSet) Text() string {
	if r.Empty() {
		return ""
	}
	out := r.Title()
	for _, l := range r.lines {
		out += "\n" + l
	}
	return out
}
