// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/bytesforge/laano-sync/internal/store"
)

var statusProbe bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the outcome of the last synchronization",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		status, err := application.Storages.Settings.SyncStatus(ctx)
		if err != nil {
			return fmt.Errorf("read sync status: %w", err)
		}
		fmt.Printf("Last run: %s\n", status)

		for _, collection := range []string{store.CollectionLinks, store.CollectionFavorites, store.CollectionNotes} {
			at, err := application.Storages.Settings.LastSyncTime(ctx, collection)
			if err != nil {
				return fmt.Errorf("read last sync time of %s: %w", collection, err)
			}
			fmt.Printf("  %-10s %s\n", collection, formatSyncTime(at))
		}

		if statusProbe {
			return probeServer(ctx)
		}
		return nil
	},
}

func probeServer(ctx context.Context) error {
	info, err := application.ServerInfo(ctx)
	if err != nil {
		return fmt.Errorf("server probe: %w", err)
	}
	fmt.Printf("Server: version %s, maintenance %v\n", info.Version, info.Maintenance)

	if _, err := application.CheckCredentials(ctx); err != nil {
		return fmt.Errorf("credentials check: %w", err)
	}
	fmt.Printf("Credentials of %s accepted\n", application.Config.Cloud.Username)
	return nil
}

func formatSyncTime(at int64) string {
	if at == 0 {
		return "never"
	}
	return time.UnixMilli(at).Format(time.RFC3339)
}

func init() {
	statusCmd.Flags().BoolVar(&statusProbe, "probe", false, "also probe the cloud server")
	rootCmd.AddCommand(statusCmd)
}
