// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the scholar-scraper pipeline:
// the publication record produced by the row parser and the configuration
// structs consumed by the fetch and export stages.
package types

// DefaultCitations is the citation count recorded when a row carries no
// citation anchor or the anchor is empty.
const DefaultCitations = "0"

// Publication is one entry of a profile's publication list.
// Optional fields hold the empty string when the row did not carry them.
type Publication struct {
	// Title is the display text of the entry's title link.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Link is the absolute URL of the entry, built from the title link's href.
	Link string `json:"link,omitempty" yaml:"link,omitempty"`

	// Authors is the free-text author list as shown on the profile.
	Authors string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Venue is the free-text journal, conference, or publisher line.
	Venue string `json:"venue,omitempty" yaml:"venue,omitempty"`

	// Citations is the citation count as displayed; never empty.
	Citations string `json:"citations" yaml:"citations"`

	// Year is the publication year as displayed. It may be empty or
	// non-numeric.
	Year string `json:"year" yaml:"year"`
}
