package engine

import (
	"fmt"
	"io"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Option func(e *Engine)

// Engine runs one game: Black moves first, a side without a legal move
// passes, and the game ends after meta.MaxPasses consecutive passes.
type Engine struct {
	board       *game.Board
	controllers [2]Controller // Indexed by color - 1
	out         io.Writer
	status      Status
	passes      int
	turns       int
	moveMetrics []metrics.MoveMetric
}

// WithBoard starts the game from board instead of the opening position.
func WithBoard(board *game.Board) Option {
	return func(e *Engine) {
		if board != nil {
			e.board = board
		}
	}
}

// WithOutput renders the board and game messages to w.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) {
		if w != nil {
			e.out = w
		}
	}
}

func LocalEngine(black, white Controller, options ...Option) *Engine {
	if black == nil || white == nil {
		panic("both sides need a controller")
	}

	e := &Engine{
		board:       game.NewBoard(),
		controllers: [2]Controller{black, white},
		out:         io.Discard,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) Board() *game.Board {
	return e.board
}

func (e *Engine) Status() Status {
	return e.status
}

// MoveMetrics returns one entry per turn played so far.
func (e *Engine) MoveMetrics() []metrics.MoveMetric {
	return e.moveMetrics
}

// Run executes the entire game loop until both sides pass in a row.
func (e *Engine) Run() (Result, error) {
	log.Info().Msgf("game started on a %dx%d board", e.board.Rows(), e.board.Cols())

	color := game.Black
	round := 1
	for e.status == InProgress {
		if color == game.Black {
			PrintMessage(e.out, fmt.Sprintf("Round %d", round))
			round++
		}
		fmt.Fprint(e.out, e.board)

		if err := e.Turn(color); err != nil {
			return Result{}, err
		}
		color = color.Opponent()
	}

	result := resultOf(e.board, e.turns)
	log.Info().Msgf("game over after %d turns: %s", result.Turns, result)
	return result, nil
}

// Turn plays color's turn on the live board.
func (e *Engine) Turn(color game.Color) error {
	if e.status == Finished {
		return fmt.Errorf("game is over - no moves allowed")
	}
	e.turns++

	moves := game.LegalMoves(e.board, color)
	if len(moves) == 0 {
		e.passes++
		e.moveMetrics = append(e.moveMetrics, metrics.MoveMetric{
			Step:   e.turns,
			Player: color,
			Move:   "pass",
			Passed: true,
		})
		log.Info().Msgf("%s has no legal move and passes", color)
		fmt.Fprintf(e.out, "%s has no legal move.\n", color)
		if e.passes >= meta.MaxPasses {
			e.status = Finished
		}
		return nil
	}

	controller := e.controllers[color-1]
	candidate, err := controller.ChooseMove(e.board.Clone(), color)
	if err != nil {
		return fmt.Errorf("%s failed to choose a move: %w", color, err)
	}

	// Replay the generated move so the captures always match the live board
	i := slices.IndexFunc(moves, func(m game.Move) bool {
		return m.Coord() == candidate.Coord()
	})
	if i < 0 {
		return fmt.Errorf("%w: %s at %s", ErrIllegalMove, color, candidate.Coord())
	}
	move := moves[i]
	e.board.Apply(move)
	e.passes = 0

	metric := metrics.MoveMetric{
		Step:   e.turns,
		Player: color,
		Move:   move.Coord().String(),
	}
	if reporter, ok := controller.(SearchReporter); ok {
		metric.SearchMetric = reporter.LastSearch()
	}
	e.moveMetrics = append(e.moveMetrics, metric)

	log.Info().Msgf("%s plays %s flipping %d", color, move.Coord(), len(move.Captured))
	fmt.Fprintf(e.out, "%s plays %s.\n", color, move.Coord())
	return nil
}

// PrintMessage writes message to w inside a banner.
func PrintMessage(w io.Writer, message string) {
	fmt.Fprintf(w, "\n#####\n%s\n#####\n\n", message)
}
