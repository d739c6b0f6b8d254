package player

import (
	"bufio"
	"fmt"
	"io"
	"othello/game"
	"strconv"
	"strings"
)

const invalidMove = "Invalid move.  Try again."

type HumanOption func(h *Human)

// WithMoveList makes the human pick from a numbered list of legal moves
// instead of typing coordinates.
func WithMoveList() HumanOption {
	return func(h *Human) {
		h.listMoves = true
	}
}

// Human reads moves from a line-oriented input and prompts on out. Invalid
// entries are reported and asked for again.
type Human struct {
	in        *bufio.Scanner
	out       io.Writer
	listMoves bool
}

func NewHuman(in io.Reader, out io.Writer, options ...HumanOption) *Human {
	h := &Human{
		in:  bufio.NewScanner(in),
		out: out,
	}
	for _, option := range options {
		option(h)
	}
	return h
}

func (h *Human) ChooseMove(board *game.Board, color game.Color) (game.Move, error) {
	moves, err := requireMoves(board, color)
	if err != nil {
		return game.Move{}, err
	}
	if h.listMoves {
		return h.pickFromList(moves, color)
	}
	return h.pickCoordinates(board, color)
}

func (h *Human) pickCoordinates(board *game.Board, color game.Color) (game.Move, error) {
	for {
		fmt.Fprintf(h.out, "%s to move.\n", color)
		row, err := h.readInt("Enter the row of your move:")
		if err != nil {
			return game.Move{}, err
		}
		col, err := h.readInt("Enter the column of your move:")
		if err != nil {
			return game.Move{}, err
		}

		move, err := board.CheckMove(row, col, color)
		if err == nil {
			return move, nil
		}
		fmt.Fprintf(h.out, "%s (%v)\n", invalidMove, err)
	}
}

func (h *Human) pickFromList(moves []game.Move, color game.Color) (game.Move, error) {
	for {
		fmt.Fprintf(h.out, "Legal moves for %s:\n", color)
		for i, move := range moves {
			fmt.Fprintf(h.out, "  %d) %s\n", i+1, move.Coord())
		}
		choice, err := h.readInt("Enter the number of your move:")
		if err != nil {
			return game.Move{}, err
		}
		if choice >= 1 && choice <= len(moves) {
			return moves[choice-1], nil
		}
		fmt.Fprintln(h.out, invalidMove)
	}
}

// readInt prompts until a line holds an integer.
func (h *Human) readInt(prompt string) (int, error) {
	for {
		fmt.Fprint(h.out, prompt, " ")
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read move: %w", err)
			}
			return 0, ErrNoInput
		}
		n, err := strconv.Atoi(strings.TrimSpace(h.in.Text()))
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(h.out, invalidMove)
	}
}
