package main

import (
	"fmt"
	"strings"

	"github.com/YuriBrandi/SudokuSAT/board"
	"github.com/charmbracelet/lipgloss"
)

var (
	givenStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	filledStyle = lipgloss.NewStyle()
	emptyStyle  = lipgloss.NewStyle().Faint(true)
	sepStyle    = lipgloss.NewStyle().Faint(true)
	gridStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// renderBoard returns a bordered grid. Cells that are set in givens keep
// their own style, so clues can be told from solved cells; givens may be
// nil or the board itself.
func renderBoard(b, givens *board.Board) string {
	n := b.Size()
	k := b.Box()
	w := 1
	if n > 9 {
		w = 2
	}

	rows := make([]string, 0, n+k-1)
	for r := 0; r < n; r++ {
		var sb strings.Builder
		for c := 0; c < n; c++ {
			if c > 0 {
				if c%k == 0 {
					sb.WriteString(sepStyle.Render(" · "))
				} else {
					sb.WriteByte(' ')
				}
			}
			v := b.At(r, c)
			s := fmt.Sprintf("%*s", w, ".")
			if v != 0 {
				s = fmt.Sprintf("%*d", w, v)
			}
			switch {
			case v == 0:
				s = emptyStyle.Render(s)
			case givens != nil && givens.At(r, c) != 0:
				s = givenStyle.Render(s)
			default:
				s = filledStyle.Render(s)
			}
			sb.WriteString(s)
		}
		rows = append(rows, sb.String())
		if (r+1)%k == 0 && r+1 < n {
			rows = append(rows, sepStyle.Render(strings.Repeat("─", lipgloss.Width(rows[len(rows)-1]))))
		}
	}

	return gridStyle.Render(strings.Join(rows, "\n"))
}
