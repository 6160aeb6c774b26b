// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/json"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/aidancordero2/scholar-scraper/pkg/types"
)

// WriteJSON writes pubs as an indented JSON array.
func WriteJSON(w io.Writer, pubs []types.Publication) error {
	if pubs == nil {
		pubs = []types.Publication{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(pubs)
}

// WriteYAML writes pubs as a YAML list.
func WriteYAML(w io.Writer, pubs []types.Publication) error {
	if pubs == nil {
		pubs = []types.Publication{}
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(pubs)
}
