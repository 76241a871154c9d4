package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-snippets/internal/cli"
	"github.com/huynhanx03/go-snippets/pkg/leak"
	"github.com/huynhanx03/go-snippets/pkg/timer"
)

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "leakdemo",
		Short:        "Allocate batches of memory and never release them",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := cli.Bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			// The backend is never closed: the regions must outlive the run.
			backend, err := leak.NewAllocator(cfg.Leak.Allocator)
			if err != nil {
				return err
			}
			var clock timer.Timer = timer.NewCachedTimer(time.Millisecond)
			defer clock.Stop()

			tracker := leak.NewTracker(backend, clock)
			demo := leak.New(tracker, cmd.OutOrStdout(), leak.WithLogger(log))
			if err := demo.Run(leak.DefaultBatches); err != nil {
				return err
			}

			st := tracker.Stats()
			log.Info(st.String(),
				zap.String("allocator", cfg.Leak.Allocator),
				zap.Object("stats", st),
			)
			return nil
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
