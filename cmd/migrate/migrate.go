package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dropAllFile = "000_drop_all.sql"

const ensureLedgerSQL = `CREATE TABLE IF NOT EXISTS migrations (
	id SERIAL PRIMARY KEY,
	name VARCHAR(255) UNIQUE NOT NULL,
	executed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`

type migrator struct {
	pool *pgxpool.Pool
	dir  string
}

func newMigrator(pool *pgxpool.Pool, dir string) *migrator {
	return &migrator{pool: pool, dir: dir}
}

// findMigrationDir returns dir if it exists, else the same name one level up.
func findMigrationDir(dir string) string {
	if _, err := os.Stat(dir); os.IsNotExist(err) && !filepath.IsAbs(dir) {
		return filepath.Join("..", dir)
	}
	return dir
}

// collectUpFiles は .up.sql ファイル名をソート済みで返す
func collectUpFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// pendingFiles keeps the files not yet recorded in applied, preserving order.
func pendingFiles(files []string, applied map[string]time.Time) []string {
	var pending []string
	for _, f := range files {
		if _, ok := applied[f]; !ok {
			pending = append(pending, f)
		}
	}
	return pending
}

func (m *migrator) ensureLedger(ctx context.Context) error {
	if _, err := m.pool.Exec(ctx, ensureLedgerSQL); err != nil {
		return fmt.Errorf("ensure migrations table: %w", err)
	}
	return nil
}

func (m *migrator) applied(ctx context.Context) (map[string]time.Time, error) {
	rows, err := m.pool.Query(ctx, `SELECT name, executed_at FROM migrations`)
	if err != nil {
		return nil, fmt.Errorf("read migrations table: %w", err)
	}
	defer rows.Close()

	out := make(map[string]time.Time)
	for rows.Next() {
		var name string
		var at time.Time
		if err := rows.Scan(&name, &at); err != nil {
			return nil, fmt.Errorf("scan migration row: %w", err)
		}
		out[name] = at
	}
	return out, rows.Err()
}

// up applies every pending file and returns how many ran. It stops at the
// first failure; that file's transaction is rolled back.
func (m *migrator) up(ctx context.Context) (int, error) {
	if err := m.ensureLedger(ctx); err != nil {
		return 0, err
	}
	files, err := collectUpFiles(m.dir)
	if err != nil {
		return 0, err
	}
	applied, err := m.applied(ctx)
	if err != nil {
		return 0, err
	}
	slog.Info("migrations found", "count", len(files), "dir", m.dir)

	pending := pendingFiles(files, applied)
	for _, name := range pending {
		if err := m.apply(ctx, name); err != nil {
			return 0, err
		}
		slog.Info("migration completed", "migration", name)
	}

	if len(pending) == 0 {
		slog.Info("all migrations already applied")
	} else {
		slog.Info("migrations completed", "count", len(pending))
	}
	return len(pending), nil
}

func (m *migrator) apply(ctx context.Context, name string) error {
	sql, err := os.ReadFile(filepath.Join(m.dir, name))
	if err != nil {
		return fmt.Errorf("read migration %s: %w", name, err)
	}

	return pgx.BeginFunc(ctx, m.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("migration %s: %w", name, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO migrations (name) VALUES ($1)`, name); err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		return nil
	})
}

// dropAll runs 000_drop_all.sql, removing every table including the ledger.
func (m *migrator) dropAll(ctx context.Context) error {
	slog.Info("dropping all tables")
	sql, err := os.ReadFile(filepath.Join(m.dir, dropAllFile))
	if err != nil {
		return fmt.Errorf("read %s: %w", dropAllFile, err)
	}
	if _, err := m.pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("drop all: %w", err)
	}
	slog.Info("all tables dropped")
	return nil
}

type statusEntry struct {
	Name      string
	AppliedAt *time.Time
}

func (m *migrator) status(ctx context.Context) ([]statusEntry, error) {
	if err := m.ensureLedger(ctx); err != nil {
		return nil, err
	}
	files, err := collectUpFiles(m.dir)
	if err != nil {
		return nil, err
	}
	applied, err := m.applied(ctx)
	if err != nil {
		return nil, err
	}
	return buildStatus(files, applied), nil
}

func buildStatus(files []string, applied map[string]time.Time) []statusEntry {
	entries := make([]statusEntry, 0, len(files))
	for _, f := range files {
		e := statusEntry{Name: f}
		if at, ok := applied[f]; ok {
			e.AppliedAt = &at
		}
		entries = append(entries, e)
	}
	return entries
}

func printStatus(w io.Writer, entries []statusEntry) {
	for _, e := range entries {
		if e.AppliedAt == nil {
			fmt.Fprintf(w, "pending  %s\n", e.Name)
			continue
		}
		fmt.Fprintf(w, "applied  %s  (%s)\n", e.Name, e.AppliedAt.Format("2006-01-02 15:04:05"))
	}
}
