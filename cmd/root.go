// Package cmd implements the weekbudget commands.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/weekbudget/backend/internal/budget"
	"github.com/weekbudget/backend/internal/config"
	"github.com/weekbudget/backend/internal/models"
)

var flagConfig string

var rootCmd = &cobra.Command{
	Use:   "weekbudget",
	Short: "Weekly budget backend",
	Long:  "Tracks expenses against a weekly budget derived from a monthly budget and carries unspent money over to the next week.",
	RunE:  runServe,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to a TOML config file, defaults to $"+config.EnvConfigFile)
}

// setup loads the configuration and sets up logging.
func setup() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	if cfg.Server.GinMode == "" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(cfg.Server.GinMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.Log.Format == "" && gin.IsDebugging()) || cfg.Log.Format == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	return cfg, nil
}

// openService connects to the database and returns the budget service.
func openService(ctx context.Context, cfg config.Config) (*budget.Service, error) {
	err := os.MkdirAll(cfg.Database.DataDir, 0o750)
	if err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	err = models.Connect(cfg.DSN())
	if err != nil {
		return nil, err
	}

	location, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	service := budget.NewService(models.NewStore(models.DB), budget.WithLocation(location))
	service.Init(ctx)

	return service, nil
}
