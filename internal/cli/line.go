// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/jeranaias/hoverbar-tui/internal/config"
	"github.com/jeranaias/hoverbar-tui/internal/ui/components"
	"github.com/jeranaias/hoverbar-tui/internal/ui/demo"
	"github.com/jeranaias/hoverbar-tui/internal/ui/styles"
)

const linePrompt = "search> "

// =============================================================================
// LINE SESSION
// =============================================================================

// LineSession drives one headless search bar from lines of text. Plain lines
// are typed into the bar and submitted; lines starting with "/" are
// commands.
//
// Commands the bar returns, such as the deferred focus timer, run in the
// background. Their messages queue up and are fed back into the bar at the
// start of the next Exec, so the bar is only touched by the caller.
type LineSession struct {
	bar  *components.SearchBar
	out  io.Writer
	msgs chan tea.Msg
}

// NewLineSession creates a session writing to out.
func NewLineSession(cfg *config.Config, size string, out io.Writer) *LineSession {
	s := &LineSession{out: out, msgs: make(chan tea.Msg, 64)}
	s.bar = NewHeadlessBar(cfg, size, s.printResults)
	return s
}

// Bar returns the bar the session drives.
func (s *LineSession) Bar() *components.SearchBar { return s.bar }

// Exec handles one input line and reports whether the session should end.
func (s *LineSession) Exec(input string) bool {
	s.deliver()

	if cmd, ok := strings.CutPrefix(strings.TrimSpace(input), "/"); ok {
		return s.command(cmd)
	}

	// Typing needs focus, the same as clicking into the panel first.
	s.run(s.bar.Focus())
	s.bar.SetQuery(input)
	s.bar.Submit()
	return false
}

// run executes cmd in the background and queues what it produces.
func (s *LineSession) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	go func() {
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, sub := range batch {
				s.run(sub)
			}
			return
		}
		if msg != nil {
			s.msgs <- msg
		}
	}()
}

// deliver feeds queued messages into the bar. Follow-up commands are
// dropped: a headless bar has no cursor to blink and no animation.
func (s *LineSession) deliver() {
	wasFocused := s.bar.Focused()
	for {
		select {
		case msg := <-s.msgs:
			s.bar.Update(msg)
		default:
			if !wasFocused && s.bar.Focused() {
				fmt.Fprintln(s.out, styles.RenderInfo("The pointer rested on the bar; focus moved into it."))
			}
			return
		}
	}
}

func (s *LineSession) command(cmd string) bool {
	switch strings.ToLower(cmd) {
	case "hover":
		s.run(s.bar.PointerEnter())
		s.printState()
	case "leave":
		s.run(s.bar.PointerLeave())
		s.printState()
	case "focus":
		s.run(s.bar.Focus())
		s.printState()
	case "blur":
		s.run(s.bar.Blur())
		s.printState()
	case "clear":
		s.bar.SetQuery("")
		s.printState()
	case "state":
		s.printState()
	case "show":
		fmt.Fprintln(s.out, s.bar.View())
	case "help", "?":
		s.printHelp()
	case "quit", "exit", "q":
		return true
	default:
		fmt.Fprintln(s.out, styles.RenderError(fmt.Sprintf("unknown command /%s (try /help)", cmd)))
	}
	return false
}

func (s *LineSession) printResults(query string) {
	fmt.Fprintln(s.out, styles.RenderInfo(fmt.Sprintf("Search Results for \"%s\":", query)))
	for _, line := range demo.MockResults(query) {
		fmt.Fprintln(s.out, "  "+line)
	}
}

func (s *LineSession) printState() {
	st := s.bar.State()
	panel := "hidden"
	if st.Expanded() {
		panel = "shown"
	}
	fmt.Fprintf(s.out, "phase=%s panel=%s pending_focus=%t query=%q\n",
		s.bar.Phase(), panel, st.PendingFocus, st.Query)
}

func (s *LineSession) printHelp() {
	fmt.Fprintln(s.out, `Type a query and press enter to search.
  /hover   move the pointer onto the bar
  /leave   move the pointer away
  /focus   give the input focus
  /blur    take focus away
  /clear   empty the query
  /state   print the interaction state
  /show    draw the bar
  /quit    leave`)
}

// =============================================================================
// COMMAND
// =============================================================================

func newLineCommand() *cobra.Command {
	var size string

	cmd := &cobra.Command{
		Use:   "line",
		Short: "Drive a search bar from a line editor",
		Long: `Drive a search bar without the full screen UI. Each line you enter is
typed into the bar and submitted. Lines starting with "/" change the bar's
state; /help lists them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := RequiresTTY("run the line editor"); err != nil {
				return err
			}
			if size != "" {
				if _, ok := components.ParseSize(size); !ok {
					return fmt.Errorf("unknown size %q (want one of sm, md, lg)", size)
				}
			}
			return runLine(NewLineSession(GetConfig(cmd.Context()), size, cmd.OutOrStdout()))
		},
	}
	cmd.Flags().StringVarP(&size, "size", "s", "", "size variant: sm, md or lg (default from config)")
	return cmd
}

func runLine(session *LineSession) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile := lineHistoryPath()
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}
	defer saveLineHistory(line, historyFile)

	fmt.Fprintln(session.out, styles.RenderInfo("Type a query, or /help. Ctrl+D leaves."))
	for {
		input, err := line.Prompt(linePrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(session.out)
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if session.Exec(input) {
			return nil
		}
	}
}

func lineHistoryPath() string {
	dir, err := config.ConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "line_history")
}

func saveLineHistory(line *liner.State, path string) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = line.WriteHistory(f)
}
