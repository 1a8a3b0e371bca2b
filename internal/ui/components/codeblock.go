// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/jeranaias/hoverbar-tui/internal/ui/styles"
)

// =============================================================================
// CODE BLOCK RENDERER
// =============================================================================

// CodeBlock is a syntax-highlighted snippet with line numbers.
type CodeBlock struct {
	Language string
	Code     string
	Theme    *styles.Theme
}

// NewCodeBlock creates a code block using theme, or the default theme when
// theme is nil.
func NewCodeBlock(language, code string, theme *styles.Theme) CodeBlock {
	if theme == nil {
		theme = styles.DefaultTheme()
	}
	return CodeBlock{Language: language, Code: code, Theme: theme}
}

// Render returns the highlighted block. Highlighting follows the theme's
// color profile, so an ASCII terminal gets plain text.
func (c CodeBlock) Render() string {
	code := strings.TrimRight(c.Code, "\n")
	lines := strings.Split(highlightCode(code, c.Language, c.Theme), "\n")

	numStyle := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Width(3).
		Align(lipgloss.Right).
		MarginRight(1)

	var b strings.Builder
	if c.Language != "" {
		b.WriteString(c.Theme.CodeLang.Render(c.Language))
		b.WriteString("\n")
	}
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(numStyle.Render(strconv.Itoa(i + 1)))
		b.WriteString(line)
	}

	return c.Theme.CodeBlock.Render(b.String())
}

// =============================================================================
// SYNTAX HIGHLIGHTING (Chroma-based)
// =============================================================================

// highlightCode colors code with chroma. It returns the input unchanged when
// the language is unknown to chroma and cannot be guessed, or on any error.
func highlightCode(code, language string, theme *styles.Theme) string {
	formatter := formatters.Get(formatterName(theme.ColorProfile))
	if formatter == nil {
		return code
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		return code
	}
	lexer = chroma.Coalesce(lexer)

	styleName := "monokai"
	if !theme.IsDark {
		styleName = "github"
	}
	style := chromaStyles.Get(styleName)
	if style == nil {
		style = chromaStyles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	// Chroma can leave a trailing reset line; keep the line count stable.
	return strings.TrimSuffix(buf.String(), "\n")
}

// formatterName maps a terminal profile to a chroma terminal formatter.
func formatterName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal16"
	default:
		return "noop"
	}
}

// UsageSnippet is Go source showing how a host embeds a search bar.
func UsageSnippet(size Size, placeholder string) string {
	return `bar := components.NewSearchBar(components.SearchBarOptions{
	Placeholder: ` + strconv.Quote(placeholder) + `,
	Size:        components.Size` + sizeIdent(size) + `,
	OnSearch: func(query string) {
		log.Printf("search: %q", query)
	},
})`
}

func sizeIdent(s Size) string {
	switch s {
	case SizeSmall:
		return "Small"
	case SizeLarge:
		return "Large"
	default:
		return "Medium"
	}
}
