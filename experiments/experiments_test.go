package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"othello/player"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("random self-play with records", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Games = 4
		cfg.Black = player.KindRandom
		cfg.White = player.KindRandom
		cfg.OutputDir = t.TempDir()

		summary, err := Run(cfg)

		require.NoError(t, err)
		require.Len(t, summary.Games, 4)
		require.Equal(t, 4, summary.Wins[player.KindRandom]+summary.Ties)
		require.Equal(t, summary.Wins[player.KindRandom], summary.BlackWins+summary.WhiteWins)
		for _, game := range summary.Games {
			require.Positive(t, game.Turns)
			require.Equal(t, "random", game.Black)
		}
		require.NotEmpty(t, summary.Moves)
		require.FileExists(t, filepath.Join(summary.Dir, "game_records.csv"))
		require.FileExists(t, filepath.Join(summary.Dir, "move_records.csv"))
	})

	t.Run("same seed same games", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Games = 3
		cfg.Black = player.KindRandom
		cfg.White = player.KindRandom
		cfg.OutputDir = ""

		first, err := Run(cfg)
		require.NoError(t, err)
		second, err := Run(cfg)
		require.NoError(t, err)

		require.Equal(t, first.Moves, second.Moves)
		require.Empty(t, first.Dir, "Nothing should be written without an output directory")
	})

	t.Run("alternating sides", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Games = 2
		cfg.Black = player.KindAI
		cfg.White = player.KindRandom
		cfg.Alternate = true
		cfg.OutputDir = ""

		summary, err := Run(cfg)

		require.NoError(t, err)
		require.Equal(t, "ai", summary.Games[0].Black)
		require.Equal(t, "random", summary.Games[1].Black)
		require.Positive(t, summary.Moves[0].Nodes, "Search metrics should be recorded for the ai")
	})

	t.Run("counting wins by color", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Games = 2
		cfg.Black = player.KindAI
		cfg.White = player.KindAI
		cfg.Alternate = true
		cfg.Goroutines = 4
		cfg.OutputDir = ""

		summary, err := Run(cfg)

		require.NoError(t, err)
		require.Equal(t, 2, summary.Wins[player.KindAI])
		require.Equal(t, 2, summary.WhiteWins, "Search against search from the opening is a White win")
		require.Zero(t, summary.BlackWins)
		require.Zero(t, summary.Ties)
	})

	t.Run("rejecting human players", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.White = player.KindHuman

		_, err := Run(cfg)

		require.Error(t, err)
	})

	t.Run("rejecting zero games", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Games = 0
		cfg.OutputDir = t.TempDir()

		_, err := Run(cfg)

		require.Error(t, err)
		entries, _ := os.ReadDir(cfg.OutputDir)
		require.Empty(t, entries)
	})
}
