package experiments

import (
	"fmt"
	"othello/experiments/metrics"
	"othello/game"
	"othello/meta"
	"othello/searcher"

	"github.com/rs/zerolog/log"
)

// ThroughputConfig describes repeated full searches from the opening at
// several worker counts.
type ThroughputConfig struct {
	Name       string
	Goroutines []int
	Repeats    int // Per worker count
	OutputDir  string
}

func DefaultThroughputConfig() ThroughputConfig {
	return ThroughputConfig{
		Name:       "throughput",
		Goroutines: []int{1, 2, 4, 8},
		Repeats:    3,
		OutputDir:  meta.ExperimentDir,
	}
}

// RunThroughput searches the opening position for Black with each worker
// count and returns one record per search.
func RunThroughput(cfg ThroughputConfig) ([]metrics.SearchRecord, error) {
	if cfg.Repeats <= 0 || len(cfg.Goroutines) == 0 {
		return nil, fmt.Errorf("throughput experiment needs repeats and worker counts, got %d and %v", cfg.Repeats, cfg.Goroutines)
	}

	log.Info().Msg("starting throughput experiment...")

	records := []metrics.SearchRecord{}
	for _, goroutines := range cfg.Goroutines {
		if goroutines <= 0 {
			return nil, fmt.Errorf("invalid worker count %d", goroutines)
		}
		minimax := searcher.NewMinimax(searcher.WithGoroutines(goroutines), searcher.WithMetrics())
		for i := 0; i < cfg.Repeats; i++ {
			decision, ok := minimax.Decide(game.NewBoard(), game.Black)
			if !ok {
				return nil, fmt.Errorf("no move from the opening")
			}
			records = append(records, metrics.SearchRecord{
				ID:           len(records) + 1,
				Repeat:       i + 1,
				Move:         decision.Move.Coord().String(),
				Value:        decision.Value,
				SearchMetric: decision.Metric,
			})
			log.Info().Msgf("searched %d nodes with %d goroutines in %s",
				decision.Metric.Nodes, goroutines, decision.Metric.Duration)
		}
	}

	log.Info().Msg("completed throughput experiment")

	if cfg.OutputDir == "" {
		return records, nil
	}
	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return records, err
	}
	if err := writer.WriteSearchRecords(records); err != nil {
		return records, err
	}
	log.Info().Msg("stored search records")

	return records, nil
}
