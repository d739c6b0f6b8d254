package cli

import (
	"fmt"
	"othello/experiments"

	"github.com/spf13/cobra"
)

func newThroughputCmd() *cobra.Command {
	cfg := experiments.DefaultThroughputConfig()

	cmd := &cobra.Command{
		Use:   "throughput",
		Short: "Time full searches from the opening at several worker counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := experiments.RunThroughput(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, r := range records {
				fmt.Fprintf(out, "goroutines=%d repeat=%d nodes=%d duration=%s\n",
					r.Goroutines, r.Repeat, r.Nodes, r.Duration)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.Name, "name", cfg.Name, "Experiment name, used as the records folder")
	cmd.Flags().IntSliceVar(&cfg.Goroutines, "workers", cfg.Goroutines, "Worker counts to compare")
	cmd.Flags().IntVarP(&cfg.Repeats, "repeats", "r", cfg.Repeats, "Searches per worker count")
	cmd.Flags().StringVarP(&cfg.OutputDir, "output-dir", "o", cfg.OutputDir, "Directory for CSV records, empty to skip")

	return cmd
}
