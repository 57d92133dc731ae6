package board

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String renders the grid in the textual format Parse reads: one row per
// line, a digit run with '.' for empties up to 9×9, whitespace-separated
// decimals with 0 for empties above.
func (b *Board) String() string {
	var sb strings.Builder
	n := b.size
	if n <= 9 {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				v := b.cells[r*n+c]
				if v == 0 {
					sb.WriteByte('.')
				} else {
					sb.WriteByte('0' + v)
				}
			}
			sb.WriteByte('\n')
		}
		return sb.String()
	}
	w := len(strconv.Itoa(n))
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%*d", w, b.cells[r*n+c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Parse reads a board in the format String produces: one row per line.
// A row is either a run of digits with '.' or '0' marking empties, or
// whitespace-separated decimal cells. Blank lines and lines starting with
// '#' are skipped.
func Parse(r io.Reader) (*Board, error) {
	var rows [][]uint8
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	b, err := New(len(rows))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != b.size {
			return nil, fmt.Errorf("row %d holds %d cells, want %d: %w", r+1, len(row), b.size, ErrOutOfRange)
		}
		for c, v := range row {
			if err := b.Set(r, c, v); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// ParseString reads a board from s.
func ParseString(s string) (*Board, error) {
	return Parse(strings.NewReader(s))
}

func parseRow(line string) ([]uint8, error) {
	if strings.ContainsAny(line, " \t") {
		fields := strings.Fields(line)
		row := make([]uint8, len(fields))
		for i, f := range fields {
			if f == "." {
				continue
			}
			v, err := strconv.ParseUint(f, 10, 8)
			if err != nil {
				return nil, fmt.Errorf("cell %q: %w", f, ErrOutOfRange)
			}
			row[i] = uint8(v)
		}
		return row, nil
	}
	row := make([]uint8, 0, len(line))
	for _, c := range line {
		switch {
		case c == '.' || c == '0':
			row = append(row, 0)
		case c >= '1' && c <= '9':
			row = append(row, uint8(c-'0'))
		default:
			return nil, fmt.Errorf("cell %q: %w", string(c), ErrOutOfRange)
		}
	}
	return row, nil
}
