// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aidancordero2/scholar-scraper/pkg/types"
)

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	cfg := types.DefaultConfig()

	Banner(&buf, cfg.ProfileURL, cfg.Fetch)

	out := buf.String()
	assert.Contains(t, out, "Profile URL: "+types.DefaultProfileURL)
	assert.Contains(t, out, "Year filter: 2007 onwards")
	assert.Contains(t, out, "Sort order: Newest first")
	assert.Equal(t, 3, strings.Count(out, strings.Repeat("=", 60)))
}

func publications(n int) []types.Publication {
	out := make([]types.Publication, n)
	for i := range out {
		out[i] = types.Publication{
			Title:     fmt.Sprintf("Paper %d", i+1),
			Authors:   fmt.Sprintf("Author %d", i+1),
			Citations: fmt.Sprint(i),
			Year:      fmt.Sprint(2020 - i),
		}
	}
	return out
}

func TestSummary(t *testing.T) {
	tests := []struct {
		name     string
		pubs     []types.Publication
		top      int
		shown    int
		moreLine string
	}{
		{"more than top", publications(8), 5, 5, "... and 3 more publications"},
		{"exactly top", publications(5), 5, 5, ""},
		{"fewer than top", publications(2), 5, 2, ""},
		{"custom top", publications(4), 1, 1, "... and 3 more publications"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Summary(&buf, 12, 2007, tt.pubs, tt.top)
			out := buf.String()

			assert.Contains(t, out, "Total publications found: 12")
			assert.Contains(t, out, fmt.Sprintf("Publications from 2007 onwards: %d", len(tt.pubs)))
			assert.Contains(t, out, "Newest publications:")
			for i := 1; i <= len(tt.pubs); i++ {
				title := fmt.Sprintf("Paper %d ", i)
				if i <= tt.shown {
					assert.Contains(t, out, title)
				} else {
					assert.NotContains(t, out, title)
				}
			}
			if tt.moreLine == "" {
				assert.NotContains(t, out, "more publications")
			} else {
				assert.Contains(t, out, tt.moreLine)
			}
		})
	}
}

func TestSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, 3, 2007, nil, 5)

	out := buf.String()
	assert.Contains(t, out, "Total publications found: 3")
	assert.Contains(t, out, "Publications from 2007 onwards: 0")
	assert.NotContains(t, out, "Newest publications:")
}

func TestSummary_MissingFields(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, 1, 2007, []types.Publication{{Citations: "0", Year: "n.d."}}, 5)

	out := buf.String()
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "n.d.")
}

func TestSaved(t *testing.T) {
	var buf bytes.Buffer
	Saved(&buf, 12, "out.csv")
	assert.Equal(t, "\nSuccessfully saved 12 publications to out.csv\n", buf.String())
}
