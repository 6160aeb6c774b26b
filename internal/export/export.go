// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes scraped publications to a file. The format is
// chosen explicitly or from the destination's extension.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aidancordero2/scholar-scraper/pkg/types"
)

// Format names an output encoding.
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatCSL    Format = "csl"
	FormatSQLite Format = "sqlite"
)

// Formats lists every supported format in the order shown in help text.
var Formats = []Format{FormatCSV, FormatJSON, FormatYAML, FormatCSL, FormatSQLite}

// ParseFormat validates a --format value. The empty string is returned
// unchanged so callers can fall back to FormatFromPath.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", nil
	}
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want one of %s)", s, formatList())
}

// FormatFromPath derives the format from the file extension. Anything not
// recognized is written as CSV.
func FormatFromPath(path string) Format {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".csl.yaml") || strings.HasSuffix(lower, ".csl.yml") {
		return FormatCSL
	}
	switch filepath.Ext(lower) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatCSV
	}
}

// Write encodes pubs in format and stores them at path, replacing any
// existing file. An empty format is derived from path. The destination is
// only touched once the encoding has succeeded.
func Write(ctx context.Context, path string, format Format, pubs []types.Publication) error {
	if path == "" {
		return fmt.Errorf("no output path")
	}
	if format == "" {
		format = FormatFromPath(path)
	}

	switch format {
	case FormatCSV:
		return writeFile(path, func(w io.Writer) error { return WriteCSV(w, pubs) })
	case FormatJSON:
		return writeFile(path, func(w io.Writer) error { return WriteJSON(w, pubs) })
	case FormatYAML:
		return writeFile(path, func(w io.Writer) error { return WriteYAML(w, pubs) })
	case FormatCSL:
		return writeFile(path, func(w io.Writer) error { return WriteCSL(w, pubs) })
	case FormatSQLite:
		return writeSQLite(ctx, path, pubs)
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, formatList())
	}
}

// writeFile runs encode against a temp file in path's directory and renames
// it into place.
func writeFile(path string, encode func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	encErr := encode(tmp)
	closeErr := tmp.Close()
	if encErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), encErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	return commit(tmpPath, path)
}

func commit(tmpPath, path string) error {
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
