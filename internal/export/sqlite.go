// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/aidancordero2/scholar-scraper/pkg/types"
)

const createPublications = `CREATE TABLE IF NOT EXISTS publications (
	position INTEGER PRIMARY KEY,
	title TEXT NOT NULL,
	authors TEXT NOT NULL,
	venue TEXT NOT NULL,
	year TEXT NOT NULL,
	citations TEXT NOT NULL,
	link TEXT NOT NULL
)`

// writeSQLite builds a fresh database next to path and renames it into
// place. Rows keep the sorted order in the position column, starting at 1.
func writeSQLite(ctx context.Context, path string, pubs []types.Publication) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*.db")
	if err != nil {
		return fmt.Errorf("creating temp database: %w", err)
	}
	tmpPath := tmp.Name()
	tmp.Close()

	if err := fillDatabase(ctx, tmpPath, pubs); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return commit(tmpPath, path)
}

func fillDatabase(ctx context.Context, dbPath string, pubs []types.Publication) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, createPublications); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM publications`); err != nil {
		return fmt.Errorf("clearing publications: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO publications (position, title, authors, venue, year, citations, link)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range pubs {
		if _, err := stmt.ExecContext(ctx, i+1, p.Title, p.Authors, p.Venue, p.Year, p.Citations, p.Link); err != nil {
			return fmt.Errorf("inserting publication %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}
