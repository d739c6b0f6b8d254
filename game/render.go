package game

import (
	"fmt"
	"strings"
)

// String draws the board as a grid, one row of cells between separator lines:
//
//	 --- ---
//	| O | X |
//	 --- ---
func (b *Board) String() string {
	var sb strings.Builder
	separator := strings.Repeat(" ---", b.cols) + "\n"

	sb.WriteString(separator)
	for row := 0; row < b.rows; row++ {
		sb.WriteByte('|')
		for col := 0; col < b.cols; col++ {
			sb.WriteByte(' ')
			sb.WriteByte(b.at(row, col).Symbol())
			sb.WriteString(" |")
		}
		sb.WriteByte('\n')
		sb.WriteString(separator)
	}
	return sb.String()
}

// ParseBoard builds a standard board from one string per row. 'X' is a
// Black disc, 'O' a White disc, and '.', '-' or ' ' an empty cell.
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) != Rows {
		return nil, fmt.Errorf("%w: got %d rows", ErrBoardSize, len(rows))
	}

	b := newEmptyBoard(Rows, Cols)
	for r, line := range rows {
		if len(line) != Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells", ErrBoardSize, r, len(line))
		}
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case 'X', 'x':
				b.set(r, c, BlackDisc)
			case 'O', 'o':
				b.set(r, c, WhiteDisc)
			case '.', '-', ' ':
				b.set(r, c, Empty)
			default:
				return nil, fmt.Errorf("row %d column %d: unknown cell %q", r, c, line[c])
			}
		}
	}
	return b, nil
}
