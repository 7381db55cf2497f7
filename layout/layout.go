// Package layout prints an ASCII-art logo and an info block side by side.
// Widths are measured in terminal cells, so colour escape sequences embedded
// in either block do not disturb the alignment.
package layout

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// cellWidth measures runes with ambiguous East-Asian width disabled so block
// glyphs such as ▄ and ▀ always occupy one column regardless of locale.
var cellWidth = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// SplitLines splits s into lines. A final newline does not produce an extra
// empty line, a trailing carriage return is dropped from every line, and the
// empty string has no lines at all.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// VisibleWidth returns the number of terminal columns s occupies once its
// escape sequences are removed.
func VisibleWidth(s string) int {
	return cellWidth.StringWidth(ansi.Strip(s))
}

// Width returns the widest visible width among lines, 0 for no lines.
func Width(lines []string) int {
	w := 0
	for _, line := range lines {
		if lw := VisibleWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

// Padding returns how many blank rows precede the logo so that it sits
// vertically centred against the info block.
func Padding(logoLines, infoLines int) int {
	if logoLines >= infoLines {
		return 0
	}
	return (infoLines - logoLines) / 2
}

// Rows zips logo and info into the rows that Render prints.
//
// The number of rows is max(len(logo lines), len(info lines)). Each row is the
// logo cell, spaces up to the logo's widest line, then the info cell. Rows
// without an info cell carry no trailing padding.
func Rows(logo, info string) []string {
	logoLines := SplitLines(logo)
	infoLines := SplitLines(info)

	maxLines := len(logoLines)
	if len(infoLines) > maxLines {
		maxLines = len(infoLines)
	}
	logoWidth := Width(logoLines)
	padding := Padding(len(logoLines), len(infoLines))

	rows := make([]string, 0, maxLines)
	var b strings.Builder
	for i := 0; i < maxLines; i++ {
		var logoCell, infoCell string
		if j := i - padding; j >= 0 && j < len(logoLines) {
			logoCell = logoLines[j]
		}
		if i < len(infoLines) {
			infoCell = infoLines[i]
		}

		b.Reset()
		b.WriteString(logoCell)
		if infoCell != "" {
			if gap := logoWidth - VisibleWidth(logoCell); gap > 0 {
				b.WriteString(strings.Repeat(" ", gap))
			}
			b.WriteString(infoCell)
		}
		rows = append(rows, b.String())
	}
	return rows
}

// Render writes logo and info side by side to w.
//
// Parameters:
//   - w: Destination, normally standard output
//   - logo: ASCII art, possibly containing colour escape sequences
//   - info: The info block, one fact per line
//
// Returns:
//   - An error wrapping the first failed write, nil otherwise
func Render(w io.Writer, logo, info string) error {
	for _, row := range Rows(logo, info) {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	return nil
}
