// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bytesforge/laano-sync/internal/app"
	"github.com/bytesforge/laano-sync/internal/config"
)

var (
	application *app.App

	cfgFile     string
	dbDSN       string
	serverURL   string
	username    string
	appPassword string
	cloudDir    string
	logFile     string
)

var rootCmd = &cobra.Command{
	Use:   "laanosync",
	Short: "Synchronize Laano collections with a cloud account",
	Long: `laanosync keeps the local links, favorites, and notes collections in
step with the JSON documents stored in a cloud account directory. Records
changed on either side are reconciled per run; changes that collide are
parked as conflicts instead of being silently overwritten.`,
	PersistentPreRunE:  setupApp,
	PersistentPostRunE: teardownApp,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupApp wires the full application before any subcommand runs. Flags win
// over environment variables and the JSON config file.
func setupApp(_ *cobra.Command, _ []string) error {
	overrides := &config.StructuredConfig{
		App:          config.App{Version: buildVersion},
		Storage:      config.Storage{DB: config.DB{DSN: dbDSN}},
		Cloud:        config.Cloud{BaseURL: serverURL, Username: username, AppPassword: appPassword, Directory: cloudDir},
		Log:          config.Log{File: logFile},
		JSONFilePath: cfgFile,
	}

	var err error
	application, err = app.New(overrides)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	return nil
}

func teardownApp(_ *cobra.Command, _ []string) error {
	if application == nil {
		return nil
	}
	return application.Close()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a JSON configuration file")
	rootCmd.PersistentFlags().StringVar(&dbDSN, "db", "", "path of the local SQLite database")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "base URL of the cloud account")
	rootCmd.PersistentFlags().StringVar(&username, "user", "", "cloud account login")
	rootCmd.PersistentFlags().StringVar(&appPassword, "app-password", "", "cloud application password")
	rootCmd.PersistentFlags().StringVar(&cloudDir, "directory", "", "remote application directory")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file path (default stdout)")
}
