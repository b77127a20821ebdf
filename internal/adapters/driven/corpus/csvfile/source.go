// Package csvfile reads the movie corpus from a CSV file.
//
// The file must carry a header row with at least the columns
// id, title, genres, keywords, and overview (any order, extra columns
// ignored). Row order is preserved: it defines the similarity matrix
// indices for the lifetime of the corpus.
package csvfile

import (
	"context"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cinematch-labs/cinematch-cli/internal/core/domain"
	"github.com/cinematch-labs/cinematch-cli/internal/core/ports/driven"
	"github.com/cinematch-labs/cinematch-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.CorpusSource = (*Source)(nil)

// requiredColumns are the header names the file must provide.
var requiredColumns = []string{"id", "title", "genres", "keywords", "overview"}

// Source is a CSV-backed implementation of driven.CorpusSource.
type Source struct {
	path string
}

// NewSource creates a corpus source for the given CSV file path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Load parses the CSV file into movies, preserving row order.
// Missing genre/keyword/overview cells become empty strings; a missing
// or non-numeric id, or a missing required column, fails the load.
func (s *Source) Load(ctx context.Context) ([]domain.Movie, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", s.path, err, domain.ErrCorpusLoad)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows handled per-field below

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %v: %w", s.path, err, domain.ErrCorpusLoad)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", s.path, err, domain.ErrCorpusLoad)
	}

	var movies []domain.Movie
	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s line %d: %v: %w", s.path, line, err, domain.ErrCorpusLoad)
		}

		id, err := strconv.Atoi(strings.TrimSpace(field(record, cols["id"])))
		if err != nil {
			return nil, fmt.Errorf("%s line %d: bad id: %w", s.path, line, domain.ErrCorpusLoad)
		}

		movies = append(movies, domain.Movie{
			ID:       id,
			Title:    field(record, cols["title"]),
			Genres:   field(record, cols["genres"]),
			Keywords: field(record, cols["keywords"]),
			Overview: field(record, cols["overview"]),
		})
	}

	logger.Debug("Parsed %d movies from %s", len(movies), s.path)
	return movies, nil
}

// Fingerprint hashes the file content.
func (s *Source) Fingerprint() (string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return "", fmt.Errorf("open %s: %v: %w", s.path, err, domain.ErrCorpusLoad)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash %s: %v: %w", s.path, err, domain.ErrCorpusLoad)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Path returns the CSV file path.
func (s *Source) Path() string {
	return s.path
}

// mapColumns resolves header names to indices, case-insensitively.
func mapColumns(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range requiredColumns {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}
	return cols, nil
}

// field returns the record value at idx, or "" when the row is short.
func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return record[idx]
}
