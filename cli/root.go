package cli

import (
	"fmt"
	"os"
	"othello/engine"
	"othello/game"
	"othello/player"
	"othello/searcher"
	"strings"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "othello <black> <white>",
		Short: "Play Othello on a 4x4 board",
		Long: `othello plays a game of Othello on a 4x4 board.

Each side is controlled by a human, who types moves on standard input, or by
an ai that searches the full game tree with minimax. Black moves first.`,
		Example:   "  othello human ai\n  othello ai ai --board 'XO..,....,O...,X...'",
		Args:      validatePlayers,
		ValidArgs: []string{string(player.KindHuman), string(player.KindAI)},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cfg.LogLevel, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd, cfg, args)
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: OTHELLO_LOG_LEVEL)")
	rootCmd.PersistentFlags().IntVarP(&cfg.Goroutines, "goroutines", "g", cfg.Goroutines, "Workers searching root moves (env: OTHELLO_GOROUTINES)")

	rootCmd.Flags().BoolVarP(&cfg.ListMoves, "list-moves", "l", cfg.ListMoves, "Humans pick from a numbered list of legal moves")
	rootCmd.Flags().StringVar(&cfg.Board, "board", cfg.Board, "Starting position as comma separated rows of X, O and .")

	rootCmd.AddCommand(newExperimentCmd(cfg), newThroughputCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// validatePlayers accepts exactly two controllers, each human or ai.
func validatePlayers(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return err
	}
	for _, arg := range args {
		kind, err := player.ParseKind(arg)
		if err != nil {
			return err
		}
		if kind != player.KindHuman && kind != player.KindAI {
			return fmt.Errorf("unknown player %q: want %s or %s", arg, player.KindHuman, player.KindAI)
		}
	}
	return nil
}

func play(cmd *cobra.Command, cfg *Config, args []string) error {
	out := cmd.OutOrStdout()

	options := []engine.Option{engine.WithOutput(out)}
	if cfg.Board != "" {
		board, err := game.ParseBoard(strings.Split(cfg.Board, ",")...)
		if err != nil {
			return fmt.Errorf("invalid board: %w", err)
		}
		options = append(options, engine.WithBoard(board))
	}

	// Both humans share one reader so buffered input is not lost between turns
	var human *player.Human
	factory := player.Factory{
		Human: func() *player.Human {
			if human == nil {
				var humanOptions []player.HumanOption
				if cfg.ListMoves {
					humanOptions = append(humanOptions, player.WithMoveList())
				}
				human = player.NewHuman(cmd.InOrStdin(), out, humanOptions...)
			}
			return human
		},
		Minimax: func() *searcher.Minimax {
			return searcher.NewMinimax(searcher.WithGoroutines(cfg.Goroutines))
		},
	}
	black, _ := player.ParseKind(args[0])
	white, _ := player.ParseKind(args[1])

	engine.PrintMessage(out, fmt.Sprintf(
		"New Othello game beginning with %s player as X's and %s player as O's", black, white))

	e := engine.LocalEngine(factory.New(black), factory.New(white), options...)
	result, err := e.Run()
	if err != nil {
		return err
	}

	engine.PrintMessage(out, fmt.Sprintf("Game has ended.  %s!", result))
	return nil
}
