// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Run one full synchronization pass",
	RunE: func(cmd *cobra.Command, _ []string) error {
		start := time.Now()

		status, err := application.Sync.Sync(cmd.Context())
		if err != nil {
			return fmt.Errorf("synchronization: %w", err)
		}

		fmt.Printf("Synchronization finished: %s (%v)\n",
			status, time.Since(start).Round(time.Millisecond))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
