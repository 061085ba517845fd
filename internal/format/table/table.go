package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const separator = "  "

// Pad returns the cells left-aligned and padded to the widest entry in each
// column, measured in terminal cells.
func Pad(rows [][]string) [][]string {
	if len(rows) == 0 {
		return nil
	}
	widths := Widths(rows)
	out := make([][]string, len(rows))
	for i, row := range rows {
		padded := make([]string, len(row))
		for c, cell := range row {
			gap := widths[c] - cellWidth(cell)
			if gap < 0 {
				gap = 0
			}
			padded[c] = cell + strings.Repeat(" ", gap)
		}
		out[i] = padded
	}
	return out
}

// Widths returns the widest cell of each column. Short rows leave missing
// cells at zero.
func Widths(rows [][]string) []int {
	count := 0
	for _, row := range rows {
		if len(row) > count {
			count = len(row)
		}
	}
	widths := make([]int, count)
	for _, row := range rows {
		for c, cell := range row {
			if w := cellWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	return widths
}

// Separator is the gap rendered between padded columns.
func Separator() string {
	return separator
}

func cellWidth(text string) int {
	return runewidth.StringWidth(text)
}
