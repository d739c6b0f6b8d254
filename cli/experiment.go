package cli

import (
	"fmt"
	"othello/experiments"
	"othello/player"

	"github.com/spf13/cobra"
)

func newExperimentCmd(cfg *Config) *cobra.Command {
	expCfg := experiments.DefaultConfig()
	var black, white string

	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Play a series of self-play games and record the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if expCfg.Black, err = player.ParseKind(black); err != nil {
				return err
			}
			if expCfg.White, err = player.ParseKind(white); err != nil {
				return err
			}
			expCfg.Goroutines = cfg.Goroutines

			summary, err := experiments.Run(expCfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d games played\n", len(summary.Games))
			for _, kind := range []player.Kind{player.KindAI, player.KindRandom} {
				if wins, ok := summary.Wins[kind]; ok {
					fmt.Fprintf(out, "%s wins: %d\n", kind, wins)
				}
			}
			fmt.Fprintf(out, "black wins: %d\nwhite wins: %d\n", summary.BlackWins, summary.WhiteWins)
			fmt.Fprintf(out, "ties: %d\n", summary.Ties)
			if summary.Dir != "" {
				fmt.Fprintf(out, "records written to %s\n", summary.Dir)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&expCfg.Name, "name", expCfg.Name, "Experiment name, used as the records folder")
	cmd.Flags().IntVarP(&expCfg.Games, "games", "n", expCfg.Games, "Number of games")
	cmd.Flags().StringVar(&black, "black", string(expCfg.Black), "Black player: ai or random")
	cmd.Flags().StringVar(&white, "white", string(expCfg.White), "White player: ai or random")
	cmd.Flags().BoolVar(&expCfg.Alternate, "alternate", expCfg.Alternate, "Swap sides after every game")
	cmd.Flags().Uint64Var(&expCfg.Seed, "seed", expCfg.Seed, "Seed for random players")
	cmd.Flags().StringVarP(&expCfg.OutputDir, "output-dir", "o", expCfg.OutputDir, "Directory for CSV records, empty to skip")

	return cmd
}
