package engine

import (
	"errors"
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
)

var ErrIllegalMove = errors.New("illegal move")

// Controller chooses the move for color. It is only asked when color has at
// least one legal move, and receives a copy of the live board.
type Controller interface {
	ChooseMove(board *game.Board, color game.Color) (game.Move, error)
}

// SearchReporter is implemented by controllers that search before moving.
type SearchReporter interface {
	LastSearch() metrics.SearchMetric
}

type Status int

const (
	InProgress Status = iota
	Finished
)

type Outcome int

const (
	BlackWins Outcome = iota
	WhiteWins
	Tie
)

func (o Outcome) String() string {
	switch o {
	case BlackWins:
		return "Black"
	case WhiteWins:
		return "White"
	case Tie:
		return "Tie"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result is the final disc count of a finished game.
type Result struct {
	Outcome    Outcome
	BlackDiscs int
	WhiteDiscs int
	Turns      int // Turns taken, passes included
}

func (r Result) String() string {
	switch r.Outcome {
	case BlackWins:
		return fmt.Sprintf("Black wins %d to %d", r.BlackDiscs, r.WhiteDiscs)
	case WhiteWins:
		return fmt.Sprintf("White wins %d to %d", r.WhiteDiscs, r.BlackDiscs)
	}
	return fmt.Sprintf("Tie at %d discs each", r.BlackDiscs)
}

func resultOf(board *game.Board, turns int) Result {
	result := Result{
		BlackDiscs: board.Count(game.Black),
		WhiteDiscs: board.Count(game.White),
		Turns:      turns,
	}
	switch {
	case result.BlackDiscs > result.WhiteDiscs:
		result.Outcome = BlackWins
	case result.WhiteDiscs > result.BlackDiscs:
		result.Outcome = WhiteWins
	default:
		result.Outcome = Tie
	}
	return result
}
