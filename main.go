package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sablehq/deckhand/app"
	"github.com/sablehq/deckhand/config"
	sentrypkg "github.com/sablehq/deckhand/internal/sentry"
	"github.com/sablehq/deckhand/log"
	"github.com/spf13/cobra"
)

var (
	version      = "0.1.0"
	manifestFlag string
	rootCmd      = &cobra.Command{
		Use:   "deckhand",
		Short: "deckhand - A terminal dashboard shell with a collapsible navigation panel.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg := config.LoadConfig()
			if manifestFlag != "" {
				cfg.ManifestPath = manifestFlag
			}

			if err := sentrypkg.Init(version, cfg.IsTelemetryEnabled()); err != nil {
				// Non-fatal: sentry failure should not prevent startup
				_ = err
			}
			defer sentrypkg.Flush()
			defer sentrypkg.RecoverPanic()

			log.Initialize(cfg.IsTelemetryEnabled())
			defer log.Close()

			sentrypkg.SetContext(cfg.Manifest(), cfg.PanelLocked)

			collapse, closeStore := openCollapseStore()
			defer closeStore()

			return app.Run(ctx, cfg, collapse)
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Reset persisted navigation state",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			collapse, closeStore := openCollapseStore()
			defer closeStore()

			collapse.Reset()
			fmt.Println("Navigation state has been reset successfully")
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize(false)
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("Manifest: %s\n", cfg.Manifest())
			fmt.Printf("Nav state: %s\n", filepath.Join(configDir, config.NavStateDBName))

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of deckhand",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("deckhand version %s\n", version)
		},
	}
)

// openCollapseStore opens the sqlite-backed collapse store. A failure to
// open degrades to a nil medium: the panel still works, collapse flags
// just don't survive the session.
func openCollapseStore() (*config.CollapseStore, func()) {
	configDir, err := config.GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return config.NewCollapseStore(nil), func() {}
	}
	if err := os.MkdirAll(configDir, 0755); err != nil {
		log.ErrorLog.Printf("failed to create config directory: %v", err)
		return config.NewCollapseStore(nil), func() {}
	}

	kv, err := config.NewSQLiteKVStore(filepath.Join(configDir, config.NavStateDBName))
	if err != nil {
		log.ErrorLog.Printf("failed to open nav state store: %v", err)
		return config.NewCollapseStore(nil), func() {}
	}
	return config.NewCollapseStore(kv), func() {
		if err := kv.Close(); err != nil {
			log.WarningLog.Printf("failed to close nav state store: %v", err)
		}
	}
}

func init() {
	rootCmd.Flags().StringVarP(&manifestFlag, "manifest", "m", "",
		"Path to the app manifest (overrides the configured location)")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
