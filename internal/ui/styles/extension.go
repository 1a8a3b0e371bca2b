// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ApplyExtension layers a space-separated list of style tokens on top of base.
// Recognized tokens:
//
//	bold italic underline faint
//	margin=N padding=N
//	fg=#RRGGBB bg=#RRGGBB
//	border=rounded|double|thick|normal|hidden
//
// Unknown or malformed tokens are ignored.
func ApplyExtension(base lipgloss.Style, ext string) lipgloss.Style {
	style := base
	for _, tok := range strings.Fields(ext) {
		key, val, hasVal := strings.Cut(strings.ToLower(tok), "=")
		switch {
		case !hasVal && key == "bold":
			style = style.Bold(true)
		case !hasVal && key == "italic":
			style = style.Italic(true)
		case !hasVal && key == "underline":
			style = style.Underline(true)
		case !hasVal && key == "faint":
			style = style.Faint(true)
		case hasVal && key == "margin":
			if n, ok := smallInt(val); ok {
				style = style.Margin(n)
			}
		case hasVal && key == "padding":
			if n, ok := smallInt(val); ok {
				style = style.Padding(n)
			}
		case hasVal && key == "fg":
			if isHexColor(val) {
				style = style.Foreground(lipgloss.Color(val))
			}
		case hasVal && key == "bg":
			if isHexColor(val) {
				style = style.Background(lipgloss.Color(val))
			}
		case hasVal && key == "border":
			if b, ok := borderByName(val); ok {
				style = style.BorderStyle(b).BorderForeground(Overlay)
			}
		}
	}
	return style
}

// ExtensionInset returns the columns and rows an extended style adds before
// its content (margin + border + padding on the left and top).
func ExtensionInset(style lipgloss.Style) (x, y int) {
	x = style.GetMarginLeft() + style.GetBorderLeftSize() + style.GetPaddingLeft()
	y = style.GetMarginTop() + style.GetBorderTopSize() + style.GetPaddingTop()
	return x, y
}

func smallInt(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 8 {
		return 0, false
	}
	return n, true
}

func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f':
		default:
			return false
		}
	}
	return true
}

func borderByName(name string) (lipgloss.Border, bool) {
	switch name {
	case "rounded":
		return lipgloss.RoundedBorder(), true
	case "double":
		return lipgloss.DoubleBorder(), true
	case "thick":
		return lipgloss.ThickBorder(), true
	case "normal":
		return lipgloss.NormalBorder(), true
	case "hidden":
		return lipgloss.HiddenBorder(), true
	}
	return lipgloss.Border{}, false
}
