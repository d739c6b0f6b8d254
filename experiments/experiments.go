package experiments

import (
	"fmt"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/meta"
	"othello/player"
	"othello/searcher"
	"time"

	"github.com/rs/zerolog/log"
)

// Config describes a series of self-play games between two controllers.
type Config struct {
	Name       string
	Games      int
	Black      player.Kind
	White      player.Kind
	Alternate  bool // Swap sides after every game
	Goroutines int
	Seed       uint64
	OutputDir  string // Records are skipped when empty
}

func DefaultConfig() Config {
	return Config{
		Name:       "selfplay",
		Games:      meta.ExperimentGames,
		Black:      player.KindAI,
		White:      player.KindRandom,
		Goroutines: meta.Goroutines,
		Seed:       1,
		OutputDir:  meta.ExperimentDir,
	}
}

// Summary tallies wins by controller kind and by color across an experiment.
type Summary struct {
	Wins      map[player.Kind]int
	BlackWins int
	WhiteWins int
	Ties      int
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Dir       string // Where records were written
}

func Run(cfg Config) (Summary, error) {
	if cfg.Games <= 0 {
		return Summary{}, fmt.Errorf("experiment needs at least one game, got %d", cfg.Games)
	}
	for _, kind := range []player.Kind{cfg.Black, cfg.White} {
		if kind == player.KindHuman {
			return Summary{}, fmt.Errorf("experiments cannot include %s players", kind)
		}
	}

	summary := Summary{Wins: map[player.Kind]int{}}
	black, white := cfg.Black, cfg.White
	for i := 0; i < cfg.Games; i++ {
		id := i + 1
		record, moves, err := runGame(cfg, id, black, white)
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", id, err)
		}

		switch record.Outcome {
		case engine.BlackWins.String():
			summary.Wins[black]++
			summary.BlackWins++
		case engine.WhiteWins.String():
			summary.Wins[white]++
			summary.WhiteWins++
		default:
			summary.Ties++
		}
		summary.Games = append(summary.Games, record)
		summary.Moves = append(summary.Moves, moves...)
		log.Info().Msgf("completed game %d of %d: black %s, white %s, winner: %s",
			id, cfg.Games, black, white, record.Outcome)

		if cfg.Alternate {
			black, white = white, black
		}
	}
	log.Info().Msgf("completed %s experiment", cfg.Name)

	if cfg.OutputDir == "" {
		return summary, nil
	}
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return summary, err
	}
	if err := writer.WriteGameRecords(summary.Games); err != nil {
		return summary, err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(summary.Moves); err != nil {
		return summary, err
	}
	log.Info().Msg("stored move records")
	summary.Dir = writer.Dir()

	return summary, nil
}

// runGame plays a single game and returns its records
func runGame(cfg Config, id int, black, white player.Kind) (metrics.GameRecord, []metrics.MoveRecord, error) {
	factory := player.Factory{
		Minimax: func() *searcher.Minimax {
			return searcher.NewMinimax(searcher.WithGoroutines(cfg.Goroutines), searcher.WithMetrics())
		},
	}
	// Distinct seeds per game and side
	factory.RandSeed = cfg.Seed + uint64(2*id)
	blackController := factory.New(black)
	factory.RandSeed++
	whiteController := factory.New(white)

	e := engine.LocalEngine(blackController, whiteController)
	start := time.Now()
	result, err := e.Run()
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	record := metrics.GameRecord{
		ID:         id,
		Black:      string(black),
		White:      string(white),
		Outcome:    result.Outcome.String(),
		BlackDiscs: result.BlackDiscs,
		WhiteDiscs: result.WhiteDiscs,
		Turns:      result.Turns,
		StartTime:  start,
		EndTime:    time.Now(),
	}
	moves := make([]metrics.MoveRecord, 0, len(e.MoveMetrics()))
	for _, mm := range e.MoveMetrics() {
		moves = append(moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
	}
	return record, moves, nil
}
