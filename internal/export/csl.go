// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/aidancordero2/scholar-scraper/pkg/types"
)

// CSLItem is a bibliographic entry in CSL-YAML, the format Pandoc and most
// reference managers import.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
	Note           string    `yaml:"note,omitempty"`
}

// CSLName is a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate is a date in CSL date-parts form.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// WriteCSL writes pubs as a CSL-YAML list.
func WriteCSL(w io.Writer, pubs []types.Publication) error {
	items := make([]CSLItem, len(pubs))
	for i, p := range pubs {
		items[i] = toCSLItem(p, i+1)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

// toCSLItem converts the publication at 1-based position n.
func toCSLItem(p types.Publication, n int) CSLItem {
	item := CSLItem{
		ID:             citationID(p.Link, n),
		Type:           "article",
		Title:          p.Title,
		ContainerTitle: p.Venue,
		URL:            p.Link,
		Note:           "citations: " + p.Citations,
	}

	for _, a := range strings.Split(p.Authors, ",") {
		a = strings.TrimSpace(a)
		// Long author lists are truncated with an ellipsis entry.
		if a == "" || strings.Trim(a, ".…") == "" {
			continue
		}
		item.Author = append(item.Author, parseAuthorName(a))
	}

	if y, err := strconv.Atoi(p.Year); err == nil {
		item.Issued = &CSLDate{DateParts: [][]int{{y}}}
	}
	return item
}

// citationID returns the citation_for_view value from a result link, or
// pubN when the link carries none.
func citationID(link string, n int) string {
	if u, err := url.Parse(link); err == nil {
		if id := u.Query().Get("citation_for_view"); id != "" {
			return id
		}
	}
	return fmt.Sprintf("pub%d", n)
}

// parseAuthorName splits a display name on its last space: everything
// before is given, the last token is family. Single-token names use the
// literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
