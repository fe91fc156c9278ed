package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/PawelGambus/rcn-wroclaw/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "rcn",
	Short: "RCN property transaction lookup for Wroclaw",
	Long:  "Queries the GUGiK RCN WFS service for residential unit (lokal) transactions inside the Wroclaw bounding box and prints a table with price-per-m2 statistics.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	// Bare invocation runs the full pipeline once.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFetch(cmd)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
