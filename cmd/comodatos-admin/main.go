package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"comodatos-admin/internal/config"
	"comodatos-admin/internal/database"
	"comodatos-admin/internal/server"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *slog.Logger

	rollbackSteps int
)

var rootCmd = &cobra.Command{
	Use:   "comodatos-admin",
	Short: "Admin screens for comodatos and their clientes",
	Long: `comodatos-admin serves the comodatos listing and the client selector
used when drafting a new comodato. Clientes and comodatos are read from the
backend REST API; client selections are recorded in the audit database.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		logger = newLogger(cfg)
		slog.SetDefault(logger)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := server.Build(ctx, cfg, logger)
		if err != nil {
			return err
		}
		return app.Run(ctx)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the postgres audit schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationRunner(cmd.Context(), func(mr *database.MigrationRunner) error {
			return mr.RunMigrations()
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationRunner(cmd.Context(), func(mr *database.MigrationRunner) error {
			return mr.Rollback(rollbackSteps)
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrationRunner(cmd.Context(), func(mr *database.MigrationRunner) error {
			version, dirty, err := mr.GetMigrationStatus()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version=%d dirty=%t\n", version, dirty)
			return nil
		})
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&rollbackSteps, "steps", 1, "number of migrations to roll back")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.IsDevelopment() {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// withMigrationRunner opens a plain lib/pq connection for golang-migrate,
// independent of the GORM pool used by the server.
func withMigrationRunner(ctx context.Context, fn func(*database.MigrationRunner) error) error {
	if !cfg.Database.IsPostgres() {
		return fmt.Errorf("migrations require DB_DRIVER=postgres, got %q", cfg.Database.Driver)
	}

	db, err := sql.Open("postgres", cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	mr := database.NewMigrationRunner(db, cfg.Database.MigrationsPath, logger)
	if err := mr.WaitForDatabase(ctx); err != nil {
		return err
	}
	return fn(mr)
}
