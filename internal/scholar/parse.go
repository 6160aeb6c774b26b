// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/aidancordero2/scholar-scraper/pkg/types"
)

// Selectors for the profile page markup.
const (
	rowSelector       = "tr.gsc_a_tr"
	titleSelector     = "a.gsc_a_at"
	graySelector      = "div.gs_gray"
	citationsSelector = "a.gsc_a_ac"
	yearSelector      = "span.gsc_a_h"
)

// ParsePage extracts one Publication per result row of a profile page, in
// document order. It only fails when the document cannot be read; a page
// without rows yields an empty slice.
func ParsePage(body []byte, baseURL string) ([]types.Publication, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}

	rows := doc.Find(rowSelector)
	pubs := make([]types.Publication, 0, rows.Length())
	rows.Each(func(_ int, row *goquery.Selection) {
		pubs = append(pubs, ParseRow(row, baseURL))
	})
	return pubs, nil
}

// ParseRow builds a Publication from a single result row. Every field is
// extracted on its own: a missing element leaves that field empty (or "0"
// for citations) and never affects the others. Venue is only looked up
// next to the authors block.
func ParseRow(row *goquery.Selection, baseURL string) types.Publication {
	p := types.Publication{Citations: types.DefaultCitations}

	if title := row.Find(titleSelector).First(); title.Length() > 0 {
		p.Title = strings.TrimSpace(title.Text())
		if href, ok := title.Attr("href"); ok && href != "" {
			p.Link = baseURL + href
		}
	}

	if authors := row.Find(graySelector).First(); authors.Length() > 0 {
		p.Authors = strings.TrimSpace(authors.Text())
		if venue := authors.NextAllFiltered(graySelector).First(); venue.Length() > 0 {
			p.Venue = strings.TrimSpace(venue.Text())
		}
	}

	if c := strings.TrimSpace(row.Find(citationsSelector).First().Text()); c != "" {
		p.Citations = c
	}

	p.Year = strings.TrimSpace(row.Find(yearSelector).First().Text())
	return p
}
