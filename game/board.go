package game

import "fmt"

// Board is a rows x cols grid of cells. The engine owns the live board and
// changes it only through Apply; search works on copies from Clone.
type Board struct {
	rows  int
	cols  int
	cells []Cell // Row-major
}

// NewBoard returns the standard board in its starting position.
func NewBoard() *Board {
	return NewBoardSize(Rows, Cols)
}

// NewBoardSize returns a rows x cols board with the starting square in the
// centre: White on the main diagonal, Black on the anti-diagonal.
func NewBoardSize(rows, cols int) *Board {
	if rows < 2 || cols < 2 {
		panic(fmt.Sprintf("board must be at least 2x2, got %dx%d", rows, cols))
	}
	b := newEmptyBoard(rows, cols)
	r, c := rows/2-1, cols/2-1
	b.set(r, c, WhiteDisc)
	b.set(r, c+1, BlackDisc)
	b.set(r+1, c, BlackDisc)
	b.set(r+1, c+1, WhiteDisc)
	return b
}

func newEmptyBoard(rows, cols int) *Board {
	return &Board{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

// InBounds reports whether (row, col) is on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// CellAt returns the content of (row, col).
func (b *Board) CellAt(row, col int) (Cell, error) {
	if !b.InBounds(row, col) {
		return Empty, fmt.Errorf("%w: %s", ErrOutOfBounds, Coord{row, col})
	}
	return b.at(row, col), nil
}

func (b *Board) at(row, col int) Cell {
	return b.cells[row*b.cols+col]
}

func (b *Board) set(row, col int, cell Cell) {
	b.cells[row*b.cols+col] = cell
}

// CheckMove validates placing a disc of color at (row, col). The placement
// must be on an empty cell and capture at least one opposing disc. Along each
// of the eight directions, a run of opposing discs is captured only when the
// run is closed by a disc of color before the edge or an empty cell.
func (b *Board) CheckMove(row, col int, color Color) (Move, error) {
	own := color.Cell()
	opponent := color.Opponent().Cell()

	if !b.InBounds(row, col) {
		return Move{}, fmt.Errorf("%w: %s", ErrOutOfBounds, Coord{row, col})
	}
	if b.at(row, col) != Empty {
		return Move{}, fmt.Errorf("%w: %s", ErrOccupied, Coord{row, col})
	}

	var captured []Coord
	for _, d := range directions {
		r, c := row+d.Row, col+d.Col
		run := 0
		for b.InBounds(r, c) && b.at(r, c) == opponent {
			r, c = r+d.Row, c+d.Col
			run++
		}
		if run == 0 || !b.InBounds(r, c) || b.at(r, c) != own {
			continue
		}
		for i := 1; i <= run; i++ {
			captured = append(captured, Coord{Row: row + i*d.Row, Col: col + i*d.Col})
		}
	}
	if len(captured) == 0 {
		return Move{}, fmt.Errorf("%w: %s", ErrNoCaptures, Coord{row, col})
	}

	return Move{Row: row, Col: col, Color: color, Captured: captured}, nil
}

// Apply places the move's disc and flips its captured cells. Legality is not
// rechecked: the move must have been generated from this exact position.
func (b *Board) Apply(move Move) {
	disc := move.Color.Cell()
	b.set(move.Row, move.Col, disc)
	for _, c := range move.Captured {
		b.set(c.Row, c.Col, disc)
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)

	return &Board{
		rows:  b.rows,
		cols:  b.cols,
		cells: cells,
	}
}

// Equal reports whether both boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i, cell := range b.cells {
		if other.cells[i] != cell {
			return false
		}
	}
	return true
}

// Count returns the number of discs of color on the board.
func (b *Board) Count(color Color) int {
	disc := color.Cell()
	count := 0
	for _, cell := range b.cells {
		if cell == disc {
			count++
		}
	}
	return count
}

// IsCorner reports whether (row, col) is one of the four corners.
func (b *Board) IsCorner(row, col int) bool {
	return (row == 0 || row == b.rows-1) && (col == 0 || col == b.cols-1)
}

// IsStable reports whether the disc at (row, col) is considered stable: a
// corner disc always is, any other disc is when its row, its column and both
// of its diagonals are fully occupied out to the edges. Empty cells are never
// stable. This ignores whether flanking discs could still be flipped.
func (b *Board) IsStable(row, col int) bool {
	if !b.InBounds(row, col) || b.at(row, col) == Empty {
		return false
	}
	if b.IsCorner(row, col) {
		return true
	}
	for _, d := range directions {
		for r, c := row+d.Row, col+d.Col; b.InBounds(r, c); r, c = r+d.Row, c+d.Col {
			if b.at(r, c) == Empty {
				return false
			}
		}
	}
	return true
}
