package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/cinematch-labs/cinematch-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
	"github.com/cinematch-labs/cinematch-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.SnapshotStore = (*Store)(nil)

// Store is a SQLite-backed corpus snapshot cache.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.cinematch/data/corpus.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".cinematch", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "corpus.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// SaveSnapshot replaces any stored snapshot with the given movies under
// the given fingerprint. Only the latest snapshot is kept.
func (s *Store) SaveSnapshot(ctx context.Context, fingerprint string, movies []domain.Movie) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	// Single-snapshot policy: the cache only ever reflects the current source.
	if _, err := tx.ExecContext(ctx, "DELETE FROM snapshots"); err != nil {
		return fmt.Errorf("clearing snapshots: %w", err)
	}

	snapshotID := uuid.New().String()
	_, err = tx.ExecContext(ctx,
		"INSERT INTO snapshots (id, fingerprint) VALUES (?, ?)",
		snapshotID, fingerprint,
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO snapshot_movies
			(snapshot_id, position, movie_id, title, genres, keywords, overview)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing movie insert: %w", err)
	}
	defer stmt.Close()

	for position, m := range movies {
		_, err := stmt.ExecContext(ctx,
			snapshotID, position, m.ID, m.Title, m.Genres, m.Keywords, m.Overview,
		)
		if err != nil {
			return fmt.Errorf("inserting movie at position %d: %w", position, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot returns the movies stored under the fingerprint, in their
// original corpus order. Returns ok=false when no snapshot matches.
func (s *Store) LoadSnapshot(ctx context.Context, fingerprint string) ([]domain.Movie, bool, error) {
	var snapshotID string
	row := s.db.QueryRowContext(ctx,
		"SELECT id FROM snapshots WHERE fingerprint = ?", fingerprint,
	)
	if err := row.Scan(&snapshotID); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("querying snapshot: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT movie_id, title, genres, keywords, overview
		FROM snapshot_movies
		WHERE snapshot_id = ?
		ORDER BY position
	`, snapshotID)
	if err != nil {
		return nil, false, fmt.Errorf("querying snapshot movies: %w", err)
	}
	defer rows.Close()

	var movies []domain.Movie
	for rows.Next() {
		var m domain.Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.Genres, &m.Keywords, &m.Overview); err != nil {
			return nil, false, fmt.Errorf("scanning movie: %w", err)
		}
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("iterating movies: %w", err)
	}

	return movies, true, nil
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version,
		); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
