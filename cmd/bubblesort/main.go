package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-snippets/internal/cli"
	"github.com/huynhanx03/go-snippets/pkg/sorter"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "bubblesort",
		Short:        "Bubble sort a fixed sequence and print it",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, err := cli.Bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			data := sorter.Sample()
			st := sorter.SortStats(data)
			log.Debug("sequence sorted",
				zap.Ints("values", data),
				zap.Int("passes", st.Passes),
				zap.Int("comparisons", st.Comparisons),
				zap.Int("swaps", st.Swaps),
			)

			return sorter.Format(cmd.OutOrStdout(), data)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
