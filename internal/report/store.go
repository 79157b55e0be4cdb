// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/review-triage/internal/triage"
	"github.com/pdiddy/review-triage/pkg/types"
)

// Stage labels for rows in the records table.
const (
	StageValid        = "valid"
	StageDuplicates   = "duplicates"
	StageDeduplicated = "deduplicated"
	StageIncoherent   = "incoherent"
	StageCoherent     = "coherent"
	StageSelected     = "selected"
)

// Store writes one run's results to a SQLite database the external
// dashboard reads. The database is an output artifact: it is recreated
// from scratch on every run and nothing is ever loaded back from it.
type Store struct {
	db *sql.DB
}

// NewStore creates the results database at path, replacing any previous
// artifact.
func NewStore(path string) (*Store, error) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("removing previous results database: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening results database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE summary (
			name TEXT PRIMARY KEY,
			value INTEGER NOT NULL
		)`,
		`CREATE TABLE records (
			stage TEXT NOT NULL,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			abstract TEXT NOT NULL,
			year INTEGER NOT NULL,
			similarity REAL,
			PRIMARY KEY (stage, position)
		)`,
		`CREATE TABLE histogram (
			year INTEGER PRIMARY KEY,
			count INTEGER NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save writes the run's counters, per-stage collections, and year
// histogram in a single transaction.
func (s *Store) Save(res triage.Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	counters := map[string]int{
		"total_uploaded": res.TotalUploaded,
		"invalid":        res.Invalid,
		"files_skipped":  res.FilesSkipped,
		"valid":          len(res.Valid),
		"duplicates":     len(res.Duplicates),
		"deduplicated":   len(res.Deduplicated),
		"incoherent":     len(res.Incoherent),
		"coherent":       len(res.Coherent),
		"selected":       len(res.Selected),
	}
	for name, value := range counters {
		if _, err := tx.Exec(`INSERT INTO summary (name, value) VALUES (?, ?)`, name, value); err != nil {
			return fmt.Errorf("inserting summary row %s: %w", name, err)
		}
	}

	stages := []struct {
		name    string
		records types.Collection
	}{
		{StageValid, res.Valid},
		{StageDuplicates, res.Duplicates},
		{StageDeduplicated, res.Deduplicated},
		{StageIncoherent, res.Incoherent},
		{StageCoherent, res.Coherent},
		{StageSelected, res.Selected},
	}
	for _, stage := range stages {
		for i, r := range stage.records {
			var sim any
			if r.Similarity != nil {
				sim = *r.Similarity
			}
			if _, err := tx.Exec(
				`INSERT INTO records (stage, position, title, abstract, year, similarity) VALUES (?, ?, ?, ?, ?, ?)`,
				stage.name, i, r.Title, r.Abstract, r.Year, sim,
			); err != nil {
				return fmt.Errorf("inserting %s record %d: %w", stage.name, i, err)
			}
		}
	}

	for _, yc := range res.Histogram {
		if _, err := tx.Exec(`INSERT INTO histogram (year, count) VALUES (?, ?)`, yc.Year, yc.Count); err != nil {
			return fmt.Errorf("inserting histogram year %d: %w", yc.Year, err)
		}
	}

	return tx.Commit()
}
