// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var daemonInterval time.Duration

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Synchronize periodically until interrupted",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		interval := application.Config.Sync.Interval
		if daemonInterval > 0 {
			interval = daemonInterval
		}

		application.Job.Start(ctx, interval)
		application.Job.RunNow(ctx)

		fmt.Printf("Synchronizing every %v, Ctrl+C to stop\n", interval)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
		case <-ctx.Done():
		}

		application.Job.Stop()
		return nil
	},
}

func init() {
	daemonCmd.Flags().DurationVar(&daemonInterval, "interval", 0,
		"time between passes (default from configuration)")
	rootCmd.AddCommand(daemonCmd)
}
