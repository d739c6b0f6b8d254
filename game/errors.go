package game

import "errors"

// Reasons a placement is rejected by Board.CheckMove.
var (
	ErrOutOfBounds = errors.New("cell is off the board")
	ErrOccupied    = errors.New("cell is already occupied")
	ErrNoCaptures  = errors.New("placement captures no opposing discs")
)

// ErrBoardSize is returned by ParseBoard for a grid other than Rows x Cols.
var ErrBoardSize = errors.New("board must be 4x4")
