// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jeranaias/hoverbar-tui/internal/ui/components"
)

// WriteSizeTable prints the geometry of every size variant.
func WriteSizeTable(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Size", "Height px", "Width px", "Icon px", "Button pad px", "Text", "Cells"})
	for _, s := range components.Sizes {
		spec := s.Spec()
		t.AppendRow(table.Row{
			string(spec.Size),
			spec.HeightPx,
			spec.WidthPx,
			spec.IconPx,
			spec.ButtonPadPx,
			spec.TextScaleName,
			fmt.Sprintf("%dx%d", spec.TotalCols(), spec.Rows()),
		})
	}
	t.Render()
}

func newSizesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "sizes",
		Short:       "List the search bar size variants",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			WriteSizeTable(cmd.OutOrStdout())
		},
	}
}
