package game

import "fmt"

// Move places a disc of Color at (Row, Col) and flips every cell in Captured.
// A Move is only meaningful on the board it was generated from; Captured is
// computed once by Board.CheckMove and replayed as is by Board.Apply.
type Move struct {
	Row      int
	Col      int
	Color    Color
	Captured []Coord
}

func (m Move) Coord() Coord {
	return Coord{Row: m.Row, Col: m.Col}
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s capturing %d", m.Color, m.Coord(), len(m.Captured))
}
