package player

import (
	"errors"
	"fmt"
	"othello/engine"
	"othello/game"
	"othello/searcher"
	"strings"
)

var (
	// ErrNoInput is returned when a human's input ends before a move is chosen.
	ErrNoInput = errors.New("no more input")
	// ErrNoLegalMoves is returned when a controller is asked to move without a legal move.
	ErrNoLegalMoves = errors.New("no legal moves")
)

// Kind names a controller on the command line.
type Kind string

const (
	KindHuman  Kind = "human"
	KindAI     Kind = "ai"
	KindRandom Kind = "random"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindHuman, KindAI, KindRandom:
		return k, nil
	}
	return "", fmt.Errorf("unknown player %q: want %s, %s or %s", s, KindHuman, KindAI, KindRandom)
}

// Factory builds controllers of any kind from shared settings.
type Factory struct {
	Human    func() *Human
	Minimax  func() *searcher.Minimax
	RandSeed uint64
}

// New returns a controller of the given kind.
func (f Factory) New(kind Kind) engine.Controller {
	switch kind {
	case KindHuman:
		return f.Human()
	case KindAI:
		return NewAI(f.Minimax())
	case KindRandom:
		return NewRandom(f.RandSeed)
	}
	panic(fmt.Sprintf("unexpected player kind %q", kind))
}

func requireMoves(board *game.Board, color game.Color) ([]game.Move, error) {
	moves := game.LegalMoves(board, color)
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w for %s", ErrNoLegalMoves, color)
	}
	return moves, nil
}
