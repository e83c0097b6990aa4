package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/handyman-marketplace/internal/config"
	"github.com/BruksfildServices01/handyman-marketplace/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:          "handyman-api",
	Short:        "Handyman marketplace HTTP API",
	Long:         "Runs the marketplace API. Without a subcommand it serves HTTP.",
	SilenceUsage: true,
	RunE:         runServe,
}

// bootstrap loads configuration and builds the process logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
