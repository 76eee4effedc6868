// Package main is the entry point for Treasureshark.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/samdwyer/treasureshark/internal/config"
	"github.com/samdwyer/treasureshark/internal/game"
	"github.com/samdwyer/treasureshark/internal/gamedata"
	"github.com/samdwyer/treasureshark/internal/logging"
	"github.com/samdwyer/treasureshark/internal/telemetry"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "treasureshark",
	Short: "A terminal dungeon crawler",
	Long: `Treasureshark generates a dungeon of rooms and tunnels, lets you explore it
under a field of view and fight the monsters that notice you.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.Flags().Int64("seed", 0, "dungeon seed, 0 for a random one")
	rootCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	// Local development keeps HONEYCOMB_API_KEY and TREASURESHARK_* in .env.
	// A missing file is fine; the variables may be set directly.
	envErr := godotenv.Load()

	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	noteEnv(logger, envErr)

	ctx := context.Background()
	sessionID := uuid.NewString()

	if cfg.Telemetry.Enabled {
		apiKey := cfg.Telemetry.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("HONEYCOMB_API_KEY")
		}
		telemetry.ConfigureHoneycomb(apiKey, cfg.Telemetry.Dataset)

		shutdown, err := telemetry.Setup(ctx, sessionID)
		if err != nil {
			// The game runs fine without traces.
			logger.Warn("telemetry setup failed", zap.Error(err))
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					logger.Warn("telemetry shutdown failed", zap.Error(err))
				}
			}()
		}
	}

	registry, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		return fmt.Errorf("load creatures: %w", err)
	}

	g, err := game.New(sessionID, *cfg, registry, logger)
	if err != nil {
		return fmt.Errorf("initialize screen: %w", err)
	}
	return g.Run(ctx)
}

// noteEnv records why no .env file was applied.
func noteEnv(logger *zap.Logger, err error) {
	if err != nil {
		logger.Debug(".env file not loaded", zap.Error(err))
	}
}
