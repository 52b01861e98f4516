package commands

import (
	"fmt"

	"github.com/rpupo63/portfolio-backend/database"
	"github.com/rpupo63/portfolio-backend/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rollbackSteps int

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending migrations",
	Long:  `Create the languages, projects and project_technologies tables and seed the language registry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openDatabase(commandContext(cmd))
		if err != nil {
			return err
		}
		currentDB := database.New(db)
		defer currentDB.Close()

		if err := currentDB.Migrate(); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}

		log.Info().Int("migrations", len(models.Migrations())).Msg("Migrations applied")
		return nil
	},
}

var rollbackCmd = &cobra.Command{
	Use:   "rollback",
	Short: "Roll back the most recent migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openDatabase(commandContext(cmd))
		if err != nil {
			return err
		}
		currentDB := database.New(db)
		defer currentDB.Close()

		if err := currentDB.RollbackSteps(rollbackSteps); err != nil {
			return fmt.Errorf("rolling back: %w", err)
		}

		log.Info().Int("steps", rollbackSteps).Msg("Rolled back migrations")
		return nil
	},
}

var generateOut string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate typed query helpers with gorm/gen",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openDatabase(commandContext(cmd))
		if err != nil {
			return err
		}
		defer database.New(db).Close()

		log.Info().Str("out", generateOut).Msg("Generating models and query helpers...")
		models.GenerateQueries(db, generateOut)
		return nil
	},
}

var columnsReportCmd = &cobra.Command{
	Use:   "columns-report",
	Short: "Report database columns that no model field maps to",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, _, err := openDatabase(commandContext(cmd))
		if err != nil {
			return err
		}
		defer database.New(db).Close()

		report, err := models.ColumnMismatchReport(db)
		if err != nil {
			return err
		}
		models.PrintColumnMismatchReport(report)
		return nil
	},
}

func init() {
	rollbackCmd.Flags().IntVar(&rollbackSteps, "steps", 1, "number of migrations to roll back")
	generateCmd.Flags().StringVar(&generateOut, "out", "./generated", "output directory for generated query code")
}
