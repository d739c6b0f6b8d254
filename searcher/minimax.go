package searcher

import (
	"fmt"
	"math"
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

type Option func(m *Minimax)

// Minimax searches the full game tree below a position with no depth limit
// and no pruning. A line of play ends when the side to move has no legal
// move, and that position is scored by the evaluation function.
type Minimax struct {
	goroutines int
	evaluate   game.Evaluate
	metrics    bool
}

// Decision is the outcome of one top-level search.
type Decision struct {
	Move   game.Move
	Value  float64
	Metric metrics.SearchMetric
}

// WithGoroutines spreads the root moves over up to goroutines workers.
func WithGoroutines(goroutines int) Option {
	return func(m *Minimax) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = true
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		goroutines: 1,
		evaluate:   game.Utility,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Value returns the minimax value of board with color to move.
func (m *Minimax) Value(board *game.Board, color game.Color) float64 {
	if !color.Valid() {
		panic(fmt.Sprintf("unexpected color %s", color))
	}
	s := search{evaluate: m.evaluate, metrics: metrics.NewDummyCollector()}
	if color == game.Black {
		return s.maxValue(board)
	}
	return s.minValue(board)
}

// Decide picks the move for color: the first move, in generation order,
// whose continuation reaches the best value for color (highest for Black,
// lowest for White). It reports false when color has no legal move.
func (m *Minimax) Decide(board *game.Board, color game.Color) (Decision, bool) {
	if !color.Valid() {
		panic(fmt.Sprintf("unexpected color %s", color))
	}
	moves := game.LegalMoves(board, color)
	if len(moves) == 0 {
		return Decision{}, false
	}

	collector := metrics.NewDummyCollector()
	if m.metrics {
		collector = metrics.NewCollector()
	}
	collector.Start(m.goroutines)
	s := search{evaluate: m.evaluate, metrics: collector}

	values := m.continuations(s, board, moves)

	var best float64
	if color == game.Black {
		best = slices.Max(values)
	} else {
		best = slices.Min(values)
	}
	chosen := slices.Index(values, best)

	metric := collector.Complete()
	log.Debug().
		Str("player", color.String()).
		Str("move", moves[chosen].Coord().String()).
		Float64("value", best).
		Int("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Msg("minimax decision")

	return Decision{Move: moves[chosen], Value: best, Metric: metric}, true
}

// continuations searches below every root move and returns the values in
// the order of moves. Root moves are independent so workers share nothing
// but the read-only root board.
func (m *Minimax) continuations(s search, board *game.Board, moves []game.Move) []float64 {
	values := make([]float64, len(moves))
	if m.goroutines <= 1 || len(moves) == 1 {
		for i, move := range moves {
			values[i] = s.continuation(board, move)
		}
		return values
	}

	var g errgroup.Group
	g.SetLimit(m.goroutines)
	for i, move := range moves {
		g.Go(func() error {
			values[i] = s.continuation(board, move)
			return nil
		})
	}
	_ = g.Wait()
	return values
}

type search struct {
	evaluate game.Evaluate
	metrics  metrics.Collector
}

// continuation plays move on a copy of board and searches the reply.
func (s search) continuation(board *game.Board, move game.Move) float64 {
	child := board.Clone()
	child.Apply(move)
	if move.Color == game.Black {
		return s.minValue(child)
	}
	return s.maxValue(child)
}

func (s search) maxValue(board *game.Board) float64 {
	s.metrics.AddNode()
	moves := game.LegalMoves(board, game.Black)
	if len(moves) == 0 {
		s.metrics.AddTerminal()
		return s.evaluate(board)
	}

	value := math.Inf(-1)
	for _, move := range moves {
		value = max(value, s.continuation(board, move))
	}
	return value
}

func (s search) minValue(board *game.Board) float64 {
	s.metrics.AddNode()
	moves := game.LegalMoves(board, game.White)
	if len(moves) == 0 {
		s.metrics.AddTerminal()
		return s.evaluate(board)
	}

	value := math.Inf(1)
	for _, move := range moves {
		value = min(value, s.continuation(board, move))
	}
	return value
}
