// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"sort"
	"strconv"

	"github.com/aidancordero2/scholar-scraper/pkg/types"
)

// FilterByYear returns the publications whose year is non-empty and either
// not a number or a number >= minYear. Non-numeric years are always kept.
// The input slice is not modified.
func FilterByYear(pubs []types.Publication, minYear int) []types.Publication {
	kept := make([]types.Publication, 0, len(pubs))
	for _, p := range pubs {
		if p.Year == "" {
			continue
		}
		if y, err := strconv.Atoi(p.Year); err == nil && y < minYear {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

// SortByYear orders pubs newest first in place. Years that are not numbers
// sort as 0. Publications with equal keys keep their relative order.
func SortByYear(pubs []types.Publication) {
	sort.SliceStable(pubs, func(i, j int) bool {
		return yearKey(pubs[i]) > yearKey(pubs[j])
	})
}

// Process filters pubs by minYear and sorts the survivors newest first.
func Process(pubs []types.Publication, minYear int) []types.Publication {
	kept := FilterByYear(pubs, minYear)
	SortByYear(kept)
	return kept
}

func yearKey(p types.Publication) int {
	y, err := strconv.Atoi(p.Year)
	if err != nil {
		return 0
	}
	return y
}
