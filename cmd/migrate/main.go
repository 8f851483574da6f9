package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/bronsonbrode/backend/internal/config"
	"github.com/bronsonbrode/backend/internal/logging"
	"github.com/bronsonbrode/backend/internal/repository"
	"github.com/spf13/cobra"
)

var migrationsDir string

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Apply database migrations",
	Long:          "Applies every pending .up.sql file in lexical order, each in its own transaction.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(cmd.Context(), func(ctx context.Context, m *migrator) error {
			_, err := m.up(ctx)
			return err
		})
	},
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations (default)",
	RunE:  rootCmd.RunE,
}

var freshCmd = &cobra.Command{
	Use:   "fresh",
	Short: "Drop every table, then apply all migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(cmd.Context(), func(ctx context.Context, m *migrator) error {
			if err := m.dropAll(ctx); err != nil {
				return err
			}
			_, err := m.up(ctx)
			return err
		})
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List migrations as applied or pending",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(cmd.Context(), func(ctx context.Context, m *migrator) error {
			entries, err := m.status(ctx)
			if err != nil {
				return err
			}
			printStatus(cmd.OutOrStdout(), entries)
			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&migrationsDir, "dir", "d", "", "migrations directory (default: MIGRATIONS_DIR)")
	rootCmd.AddCommand(upCmd, freshCmd, statusCmd)
}

// withMigrator loads config, connects, and hands a ready migrator to fn.
func withMigrator(ctx context.Context, fn func(ctx context.Context, m *migrator) error) error {
	cfg, err := config.Load(".env", "../.env")
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel)

	dir := migrationsDir
	if dir == "" {
		dir = findMigrationDir(cfg.MigrationsDir)
	}

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	return fn(ctx, newMigrator(pool, dir))
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("migrate failed", "error", err)
		os.Exit(1)
	}
}
