// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/csv"
	"io"

	"github.com/aidancordero2/scholar-scraper/pkg/types"
)

// Columns is the CSV header, in output order.
var Columns = []string{"title", "authors", "venue", "year", "citations", "link"}

// WriteCSV writes a header row followed by one row per publication.
func WriteCSV(w io.Writer, pubs []types.Publication) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, p := range pubs {
		if err := cw.Write([]string{p.Title, p.Authors, p.Venue, p.Year, p.Citations, p.Link}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
