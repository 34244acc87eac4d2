package db

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var (
	ErrDirtySchema = errors.New("schema is dirty, fix the failed migration manually")

	upPattern = regexp.MustCompile(`^(\d+)_(.+)\.up\.sql$`)
)

type Migration struct {
	Version int
	Name    string
	UpSQL   string
	DownSQL string
}

// LoadMigrations returns the embedded migrations sorted by version.
func LoadMigrations() ([]Migration, error) {
	return loadMigrations(migrationsFS, "migrations")
}

func loadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations dir: %w", err)
	}

	var migrations []Migration
	for _, e := range entries {
		matches := upPattern.FindStringSubmatch(e.Name())
		if e.IsDir() || matches == nil {
			continue
		}

		version, _ := strconv.Atoi(matches[1])
		upSQL, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		// down migration is optional
		downSQL, _ := fs.ReadFile(fsys, path.Join(dir, fmt.Sprintf("%s_%s.down.sql", matches[1], matches[2])))

		migrations = append(migrations, Migration{
			Version: version,
			Name:    matches[2],
			UpSQL:   string(upSQL),
			DownSQL: string(downSQL),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	for i := 1; i < len(migrations); i++ {
		if migrations[i].Version == migrations[i-1].Version {
			return nil, fmt.Errorf("duplicate migration version %d", migrations[i].Version)
		}
	}

	return migrations, nil
}

// Pending returns the migrations newer than the current version.
func Pending(all []Migration, currentVersion int) []Migration {
	var pending []Migration
	for _, m := range all {
		if m.Version > currentVersion {
			pending = append(pending, m)
		}
	}
	return pending
}

func ensureMigrationsTable(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			dirty   BOOLEAN NOT NULL DEFAULT FALSE
		)
	`)
	return err
}

// CurrentVersion returns the applied schema version and its dirty flag.
func CurrentVersion(ctx context.Context, pool *pgxpool.Pool) (int, bool, error) {
	if err := ensureMigrationsTable(ctx, pool); err != nil {
		return 0, false, fmt.Errorf("ensure migrations table: %w", err)
	}

	var version int
	var dirty bool
	err := pool.QueryRow(ctx, `SELECT version, dirty FROM schema_migrations ORDER BY version DESC LIMIT 1`).
		Scan(&version, &dirty)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return version, dirty, nil
}

// MigrateUp applies all pending migrations, each one in its own transaction.
// It returns the number of applied migrations.
func MigrateUp(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	all, err := LoadMigrations()
	if err != nil {
		return 0, err
	}

	current, dirty, err := CurrentVersion(ctx, pool)
	if err != nil {
		return 0, err
	}
	if dirty {
		return 0, fmt.Errorf("version %d: %w", current, ErrDirtySchema)
	}

	applied := 0
	for _, m := range Pending(all, current) {
		log.Infof("applying migration %03d_%s", m.Version, m.Name)
		if err := applyMigration(ctx, pool, m); err != nil {
			return applied, err
		}
		applied++
	}

	return applied, nil
}

func applyMigration(ctx context.Context, pool *pgxpool.Pool, m Migration) error {
	if _, err := pool.Exec(ctx,
		`INSERT INTO schema_migrations (version, dirty) VALUES ($1, TRUE)`, m.Version,
	); err != nil {
		return fmt.Errorf("mark migration %d dirty: %w", m.Version, err)
	}

	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, m.UpSQL); err != nil {
			return fmt.Errorf("exec migration %03d_%s: %w", m.Version, m.Name, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if _, err := pool.Exec(ctx,
		`UPDATE schema_migrations SET dirty = FALSE WHERE version = $1`, m.Version,
	); err != nil {
		return fmt.Errorf("clear migration %d dirty flag: %w", m.Version, err)
	}
	return nil
}
