// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"

	"github.com/pdldiff/pdldiff/internal/config"
)

// TableOptions control terminal rendering of a report.
type TableOptions struct {
	Color  bool
	Titles bool
}

// WriteTable renders the report rows in a tabular form honoring color and
// titles options. Output is written to w; a write failure is returned so the
// caller can surface a short report file.
func (r *Report) WriteTable(w io.Writer, opts TableOptions) error {
	rows := r.Rows()
	if len(rows) == 0 {
		return nil
	}

	// We initialize the table styles.
	var (
		headerStyle = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	)

	addedColor, removedColor, changedColor := getColors("colors")

	// We build the table data and remember each row's kind so the style
	// function can color whole added/removed rows and the two value cells of
	// changed rows.
	var data [][]string
	kinds := make([]Kind, 0, len(rows))
	for _, row := range rows {
		line := make([]string, 0, len(row.Cells))
		for _, c := range row.Cells {
			line = append(line, c.Text)
		}
		data = append(data, line)
		kinds = append(kinds, row.Kind)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			style := cellStyle
			if !opts.Color || row < 0 || row >= len(kinds) {
				return style
			}
			switch kinds[row] {
			case Added:
				style = style.Foreground(addedColor)
			case Removed:
				style = style.Foreground(removedColor)
			case Changed:
				switch col {
				case 4:
					style = style.Foreground(removedColor)
				case 5:
					style = style.Foreground(addedColor)
				default:
					style = style.Foreground(changedColor)
				}
			}
			return style
		}).
		Rows(data...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(r.Headers()...).BorderHeader(false)
	}

	_, err := fmt.Fprintln(w, t)
	return err
}

// getColors returns the configured colors for the added/removed/changed row
// kinds. Explicit values from the config file win; otherwise defaults that
// mirror the HTML report's palette are used.
func getColors(key string) (added, removed, changed color.Color) {
	resolveColor := func(key string, fallback string) color.Color {
		if colorCfg, err := config.GetString(key); err == nil {
			return lipgloss.Color(colorCfg)
		}
		return lipgloss.Color(fallback)
	}

	added = resolveColor(key+".added", "#6bdfb8")
	removed = resolveColor(key+".removed", "#ff8983")
	changed = resolveColor(key+".changed", "#f6be00")

	return
}
