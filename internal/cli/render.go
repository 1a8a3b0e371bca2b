// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jeranaias/hoverbar-tui/internal/config"
	"github.com/jeranaias/hoverbar-tui/internal/ui/components"
	"github.com/jeranaias/hoverbar-tui/internal/ui/styles"
)

// Frame states accepted by render.
const (
	StateIdle    = "idle"
	StateHovered = "hovered"
	StateFocused = "focused"
)

// FrameStates lists the states render accepts.
var FrameStates = []string{StateIdle, StateHovered, StateFocused}

// FrameOptions selects the bar drawn by StaticFrame.
type FrameOptions struct {
	Size  string
	State string
	Query string
	// Width clips the frame; zero leaves it unclipped.
	Width int
}

// NewHeadlessBar builds a search bar from cfg that never animates, for use
// outside a running Bubble Tea program.
func NewHeadlessBar(cfg *config.Config, size string, onSearch components.SearchFunc) *components.SearchBar {
	if size == "" {
		size = cfg.Search.Size
	}
	return components.NewSearchBar(components.SearchBarOptions{
		Placeholder:      cfg.Search.Placeholder,
		Size:             components.Size(size),
		OnSearch:         onSearch,
		StyleExtension:   cfg.Search.Style,
		FocusDelay:       time.Duration(cfg.Search.FocusDelayMs) * time.Millisecond,
		DisableAnimation: true,
		Theme:            styles.NewThemeForMode(cfg.UI.Theme),
		Verbose:          cfg.Log.Verbose,
	})
}

// StaticFrame renders one frame of a bar driven into opts.State.
func StaticFrame(cfg *config.Config, opts FrameOptions) (string, error) {
	bar, err := frameBar(cfg, opts)
	if err != nil {
		return "", err
	}

	frame := bar.View()
	if opts.Width > 0 {
		frame = lipgloss.NewStyle().MaxWidth(opts.Width).Render(frame)
	}
	return frame, nil
}

// FrameVisual returns the presentation derived for the bar StaticFrame draws.
func FrameVisual(cfg *config.Config, opts FrameOptions) (components.Visual, error) {
	bar, err := frameBar(cfg, opts)
	if err != nil {
		return components.Visual{}, err
	}
	return bar.Visual(), nil
}

// WriteVisualTable prints v as a property table.
func WriteVisualTable(w io.Writer, v components.Visual) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Property", "Value"})
	t.AppendRows([]table.Row{
		{"expanded", v.Expanded},
		{"icon rotation", fmt.Sprintf("%gdeg", v.IconRotationDeg)},
		{"icon scale", fmt.Sprintf("%.2f", v.IconScale)},
		{"glyph rotation", fmt.Sprintf("%gdeg", v.GlyphRotationDeg)},
		{"panel offset", fmt.Sprintf("%g%%", v.PanelOffsetPct)},
		{"panel opacity", fmt.Sprintf("%g", v.PanelOpacity)},
		{"panel scale", fmt.Sprintf("%.2f", v.PanelScale)},
		{"focus ring", v.Ring},
		{"submit button", v.SubmitVisible},
		{"glow", v.Glow},
	})
	t.Render()
}

// frameBar builds a headless bar and drives it into opts.State.
func frameBar(cfg *config.Config, opts FrameOptions) (*components.SearchBar, error) {
	if opts.Size != "" {
		if _, ok := components.ParseSize(opts.Size); !ok {
			return nil, fmt.Errorf("unknown size %q (want one of sm, md, lg)", opts.Size)
		}
	}

	bar := NewHeadlessBar(cfg, opts.Size, nil)
	switch strings.ToLower(strings.TrimSpace(opts.State)) {
	case "", StateIdle:
	case StateHovered:
		bar.PointerEnter()
	case StateFocused:
		bar.Focus()
	default:
		return nil, fmt.Errorf("unknown state %q (want one of %s)", opts.State, strings.Join(FrameStates, ", "))
	}
	bar.SetQuery(opts.Query)
	return bar, nil
}

func newRenderCommand() *cobra.Command {
	var (
		opts       FrameOptions
		showVisual bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a single frame of the search bar",
		Long: `Print one frame of the search bar in a given interaction state.

States:
  idle     only the spyglass icon
  hovered  the panel is out, waiting for focus
  focused  the panel is out and the input has focus`,
		Example: `  hoverbar render --size lg --state focused --query "lip gloss"
  hoverbar render --state hovered --visual`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lipgloss.SetColorProfile(GetColorProfile())
			if opts.Width == 0 {
				opts.Width = GetTerminalWidth()
			}
			cfg := GetConfig(cmd.Context())
			frame, err := StaticFrame(cfg, opts)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), frame); err != nil {
				return err
			}
			if showVisual {
				v, err := FrameVisual(cfg, opts)
				if err != nil {
					return err
				}
				WriteVisualTable(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Size, "size", "s", "", "size variant: sm, md or lg (default from config)")
	cmd.Flags().StringVar(&opts.State, "state", StateIdle, "interaction state: idle, hovered or focused")
	cmd.Flags().StringVarP(&opts.Query, "query", "q", "", "text in the input")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "clip to this many columns (default: terminal width)")
	cmd.Flags().BoolVar(&showVisual, "visual", false, "also print the derived transforms (rotation, offset, opacity)")

	_ = cmd.RegisterFlagCompletionFunc("size", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"sm", "md", "lg"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("state", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return FrameStates, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}
