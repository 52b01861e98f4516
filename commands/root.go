package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio backend - multilingual project records over HTTP",
	Long: `Portfolio backend stores portfolio projects per language and serves them over a REST API.
Running it without a subcommand starts the HTTP server.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(setupLogging)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(rollbackCmd)
	rootCmd.AddCommand(columnsReportCmd)
	rootCmd.AddCommand(generateCmd)
}

// setupLogging configures the global zerolog logger from LOG_LEVEL and LOG_FORMAT
func setupLogging() {
	c := config.New()

	level, err := zerolog.ParseLevel(strings.ToLower(config.GetString(c, "LOG_LEVEL", "info")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if config.GetString(c, "LOG_FORMAT", "console") != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}

// openDatabase loads the database config, resolves SSM secrets and connects
func openDatabase(ctx context.Context) (*gorm.DB, config.DatabaseConfig, error) {
	cfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, cfg, fmt.Errorf("loading database config: %w", err)
	}

	if cfg.NeedsSecrets() {
		store, err := config.NewParameterStore(ctx)
		if err != nil {
			return nil, cfg, err
		}
		if err := cfg.ResolveSecrets(ctx, store); err != nil {
			return nil, cfg, err
		}
		log.Info().Str("parameter", cfg.PasswordSSMParameter).Msg("Resolved database password from SSM")
	}

	log.Info().Str("dbType", cfg.Type).Str("env", cfg.Environment).Msg("Connecting to database...")
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, cfg, err
	}
	return db, cfg, nil
}
