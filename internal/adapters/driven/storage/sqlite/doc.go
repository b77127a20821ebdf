// Package sqlite provides a SQLite-backed snapshot cache for the movie corpus.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. A snapshot is the parsed
// corpus stored under its source fingerprint; loading a snapshot skips
// re-parsing the CSV when the source is unchanged. Only the latest snapshot
// is kept - the corpus is always re-derivable from its source.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.cinematch/data/corpus.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
