package engine

import (
	"bytes"
	"errors"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, rows ...string) *game.Board {
	t.Helper()
	b, err := game.ParseBoard(rows...)
	require.NoError(t, err)
	return b
}

// scriptedController plays queued coordinates in order.
type scriptedController struct {
	moves []game.Coord
	asked int
}

func (s *scriptedController) ChooseMove(board *game.Board, color game.Color) (game.Move, error) {
	if s.asked >= len(s.moves) {
		return game.Move{}, errors.New("script exhausted")
	}
	c := s.moves[s.asked]
	s.asked++
	return game.Move{Row: c.Row, Col: c.Col, Color: color}, nil
}

// firstMoveController always plays the first legal move.
type firstMoveController struct{}

func (firstMoveController) ChooseMove(board *game.Board, color game.Color) (game.Move, error) {
	return game.LegalMoves(board, color)[0], nil
}

func (firstMoveController) LastSearch() metrics.SearchMetric {
	return metrics.SearchMetric{Nodes: 1}
}

// mutatingController scribbles on the board it is given.
type mutatingController struct{}

func (mutatingController) ChooseMove(board *game.Board, color game.Color) (game.Move, error) {
	moves := game.LegalMoves(board, color)
	for _, m := range moves {
		board.Apply(m)
	}
	return moves[0], nil
}

func TestTurn(t *testing.T) {
	t.Run("applying the generated move", func(t *testing.T) {
		e := LocalEngine(&scriptedController{moves: []game.Coord{{Row: 0, Col: 1}}}, firstMoveController{})

		require.NoError(t, e.Turn(game.Black))

		require.True(t, e.Board().Equal(mustParse(t, ".X..", ".XX.", ".XO.", "....")))
		require.Equal(t, []metrics.MoveMetric{{Step: 1, Player: game.Black, Move: "(0, 1)"}}, e.MoveMetrics())
	})

	t.Run("rejecting an illegal choice", func(t *testing.T) {
		e := LocalEngine(&scriptedController{moves: []game.Coord{{Row: 0, Col: 0}}}, firstMoveController{})

		err := e.Turn(game.Black)

		require.ErrorIs(t, err, ErrIllegalMove)
		require.True(t, e.Board().Equal(game.NewBoard()), "Board should not change")
	})

	t.Run("propagating controller errors", func(t *testing.T) {
		e := LocalEngine(&scriptedController{}, firstMoveController{})

		require.Error(t, e.Turn(game.Black))
	})

	t.Run("controllers cannot touch the live board", func(t *testing.T) {
		e := LocalEngine(mutatingController{}, firstMoveController{})

		require.NoError(t, e.Turn(game.Black))

		require.True(t, e.Board().Equal(mustParse(t, ".X..", ".XX.", ".XO.", "....")),
			"Only the chosen move should reach the live board")
	})

	t.Run("recording search metrics", func(t *testing.T) {
		e := LocalEngine(firstMoveController{}, firstMoveController{})

		require.NoError(t, e.Turn(game.Black))

		require.Equal(t, 1, e.MoveMetrics()[0].Nodes)
	})

	t.Run("passing without a legal move", func(t *testing.T) {
		b := mustParse(t, "XO..", "....", "....", "....")
		e := LocalEngine(firstMoveController{}, &scriptedController{}, WithBoard(b))

		require.NoError(t, e.Turn(game.White))

		require.Equal(t, InProgress, e.Status(), "A single pass should not end the game")
		require.True(t, e.MoveMetrics()[0].Passed)
	})

	t.Run("refusing turns after the game ends", func(t *testing.T) {
		b := mustParse(t, "XXXX", "XXXX", "OOOO", "OOOO")
		e := LocalEngine(firstMoveController{}, firstMoveController{}, WithBoard(b))

		require.NoError(t, e.Turn(game.Black))
		require.NoError(t, e.Turn(game.White))
		require.Equal(t, Finished, e.Status())

		require.Error(t, e.Turn(game.Black))
	})
}

func TestRun(t *testing.T) {
	t.Run("ending on two consecutive passes", func(t *testing.T) {
		b := mustParse(t, "XO..", "....", "....", "....")
		var out bytes.Buffer
		e := LocalEngine(firstMoveController{}, &scriptedController{}, WithBoard(b), WithOutput(&out))

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, Finished, e.Status())
		require.Equal(t, Result{Outcome: BlackWins, BlackDiscs: 3, WhiteDiscs: 0, Turns: 3}, result,
			"Black captures, then White and Black both pass")
		require.Contains(t, out.String(), "Round 1")
		require.Contains(t, out.String(), "White has no legal move.")
		final := mustParse(t, "XXX.", "....", "....", "....").String()
		require.Equal(t, 2, strings.Count(out.String(), final),
			"The final position is shown once before each passing turn")
	})

	t.Run("full board is a tie", func(t *testing.T) {
		b := mustParse(t, "XXXX", "XXXX", "OOOO", "OOOO")
		e := LocalEngine(&scriptedController{}, &scriptedController{}, WithBoard(b))

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, Tie, result.Outcome)
		require.Equal(t, 2, result.Turns)
	})

	t.Run("search against search from the opening", func(t *testing.T) {
		ai := searchController{minimax: searcher.NewMinimax(searcher.WithGoroutines(4))}
		e := LocalEngine(ai, ai)

		result, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, Result{Outcome: WhiteWins, BlackDiscs: 2, WhiteDiscs: 11, Turns: 12}, result)
		require.True(t, e.Board().Equal(mustParse(t, "OOOX", "OOO.", "OOOO", "X.O.")))

		var played []string
		for _, m := range e.MoveMetrics() {
			played = append(played, m.Move)
		}
		require.Equal(t, []string{
			"(0, 1)", "(0, 0)", "(1, 0)", "(0, 2)", "(0, 3)", "(2, 0)",
			"(3, 0)", "(2, 3)", "pass", "(3, 2)", "pass", "pass",
		}, played)
	})
}

type searchController struct {
	minimax *searcher.Minimax
}

func (s searchController) ChooseMove(board *game.Board, color game.Color) (game.Move, error) {
	decision, ok := s.minimax.Decide(board, color)
	if !ok {
		return game.Move{}, errors.New("no legal move")
	}
	return decision.Move, nil
}

func TestResult(t *testing.T) {
	require.Equal(t, "Black wins 9 to 7", Result{Outcome: BlackWins, BlackDiscs: 9, WhiteDiscs: 7}.String())
	require.Equal(t, "White wins 11 to 2", Result{Outcome: WhiteWins, BlackDiscs: 2, WhiteDiscs: 11}.String())
	require.Equal(t, "Tie at 8 discs each", Result{Outcome: Tie, BlackDiscs: 8, WhiteDiscs: 8}.String())
}
