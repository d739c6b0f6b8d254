package game

import "fmt"

// Dimensions of the standard board.
const (
	Rows = 4
	Cols = 4
)

// Color identifies one of the two sides. The zero value is not a color.
type Color uint8

const (
	Black Color = iota + 1
	White
)

// Valid reports whether c is Black or White.
func (c Color) Valid() bool {
	return c == Black || c == White
}

// Opponent returns the other side.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	panic(fmt.Sprintf("invalid color %d", c))
}

// Cell returns the disc this side places on the board.
func (c Color) Cell() Cell {
	switch c {
	case Black:
		return BlackDisc
	case White:
		return WhiteDisc
	}
	panic(fmt.Sprintf("invalid color %d", c))
}

func (c Color) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Cell is the content of one square of the board.
type Cell uint8

const (
	Empty Cell = iota
	BlackDisc
	WhiteDisc
)

// Color returns the owner of the disc in the cell, false if the cell is empty.
func (c Cell) Color() (Color, bool) {
	switch c {
	case BlackDisc:
		return Black, true
	case WhiteDisc:
		return White, true
	}
	return 0, false
}

// Symbol is the character used to render the cell.
func (c Cell) Symbol() byte {
	switch c {
	case BlackDisc:
		return 'X'
	case WhiteDisc:
		return 'O'
	}
	return ' '
}

// Coord addresses a cell, zero-indexed from the top left corner.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// The eight lines of capture radiating from a cell.
var directions = [8]Coord{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Evaluate scores a board from Black's perspective: positive favors Black,
// negative favors White. Implementations must be safe for concurrent use.
type Evaluate func(*Board) float64
