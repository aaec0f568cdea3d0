// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	// build info needs no configuration or storage
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(*cobra.Command, []string) {
		fmt.Printf("Build version: %s\n", orNA(buildVersion))
		fmt.Printf("Build date: %s\n", orNA(buildDate))
		fmt.Printf("Build commit: %s\n", orNA(buildCommit))
	},
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
