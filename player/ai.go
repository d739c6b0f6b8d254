package player

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
)

// AI moves by full minimax search.
type AI struct {
	minimax *searcher.Minimax
	last    metrics.SearchMetric
}

func NewAI(minimax *searcher.Minimax) *AI {
	return &AI{minimax: minimax}
}

func (a *AI) ChooseMove(board *game.Board, color game.Color) (game.Move, error) {
	decision, ok := a.minimax.Decide(board, color)
	if !ok {
		return game.Move{}, fmt.Errorf("%w for %s", ErrNoLegalMoves, color)
	}
	a.last = decision.Metric
	return decision.Move, nil
}

// LastSearch reports on the most recent decision.
func (a *AI) LastSearch() metrics.SearchMetric {
	return a.last
}
