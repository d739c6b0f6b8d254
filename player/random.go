package player

import (
	"othello/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) ChooseMove(board *game.Board, color game.Color) (game.Move, error) {
	moves, err := requireMoves(board, color)
	if err != nil {
		return game.Move{}, err
	}
	return moves[r.rng.Intn(len(moves))], nil
}
