// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report prints the console header and the end-of-run summary of a
// scrape.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/aidancordero2/scholar-scraper/pkg/types"
)

const (
	ruleWidth  = 60
	titleWidth = 50
)

var (
	heavyRule = strings.Repeat("=", ruleWidth)
	lightRule = strings.Repeat("-", ruleWidth)
)

// Banner prints the run header: profile, year filter and sort order.
func Banner(w io.Writer, profileURL string, cfg types.FetchConfig) {
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintln(w, "Google Scholar Profile Scraper")
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintf(w, "Profile URL: %s\n", profileURL)
	fmt.Fprintf(w, "Year filter: %d onwards\n", cfg.MinYear)
	fmt.Fprintln(w, "Sort order: Newest first")
	fmt.Fprintln(w, heavyRule)
	fmt.Fprintln(w)
}

// Summary prints the totals of a run and a table of the first top
// publications. raw is the count before filtering. A non-positive top
// prints the totals only.
func Summary(w io.Writer, raw, minYear int, pubs []types.Publication, top int) {
	fmt.Fprintf(w, "\nTotal publications found: %d\n", raw)
	fmt.Fprintf(w, "Publications from %d onwards: %d\n", minYear, len(pubs))

	if len(pubs) == 0 || top <= 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, lightRule)
	fmt.Fprintln(w, "Newest publications:")
	fmt.Fprintln(w, lightRule)

	n := min(top, len(pubs))
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Year", "Title", "Authors", "Citations"})
	table.SetAutoWrapText(true)
	table.SetColWidth(titleWidth)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for i, p := range pubs[:n] {
		table.Append([]string{
			fmt.Sprint(i + 1),
			orNA(p.Year),
			orNA(p.Title),
			orNA(p.Authors),
			p.Citations,
		})
	}
	table.Render()

	if rest := len(pubs) - n; rest > 0 {
		fmt.Fprintf(w, "\n... and %d more publications\n", rest)
	}
}

// Saved reports a completed export.
func Saved(w io.Writer, n int, path string) {
	fmt.Fprintf(w, "\nSuccessfully saved %d publications to %s\n", n, path)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
