// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFetchConfigNormalize(t *testing.T) {
	tests := []struct {
		name  string
		in    FetchConfig
		check func(t *testing.T, c FetchConfig)
	}{
		{
			name: "zero value gets defaults",
			in:   FetchConfig{},
			check: func(t *testing.T, c FetchConfig) {
				assert.Equal(t, DefaultBaseURL, c.BaseURL)
				assert.Equal(t, DefaultLocale, c.Locale)
				assert.Equal(t, MaxPageSize, c.PageSize)
				assert.Equal(t, DefaultUserAgent, c.UserAgent)
				assert.Equal(t, int64(DefaultMaxBodyBytes), c.MaxBodyBytes)
				assert.Zero(t, c.RequestDelay, "zero delay is a valid choice")
			},
		},
		{
			name: "trailing slash stripped",
			in:   FetchConfig{BaseURL: "http://127.0.0.1:8080//"},
			check: func(t *testing.T, c FetchConfig) {
				assert.Equal(t, "http://127.0.0.1:8080", c.BaseURL)
			},
		},
		{
			name: "page size above maximum clamped",
			in:   FetchConfig{PageSize: 500},
			check: func(t *testing.T, c FetchConfig) {
				assert.Equal(t, MaxPageSize, c.PageSize)
			},
		},
		{
			name: "negative page size reset",
			in:   FetchConfig{PageSize: -3},
			check: func(t *testing.T, c FetchConfig) {
				assert.Equal(t, MaxPageSize, c.PageSize)
			},
		},
		{
			name: "small page size kept",
			in:   FetchConfig{PageSize: 20},
			check: func(t *testing.T, c FetchConfig) {
				assert.Equal(t, 20, c.PageSize)
			},
		},
		{
			name: "negative delay becomes zero",
			in:   FetchConfig{RequestDelay: -time.Second},
			check: func(t *testing.T, c FetchConfig) {
				assert.Zero(t, c.RequestDelay)
			},
		},
		{
			name: "explicit values kept",
			in: FetchConfig{
				HTTPConfig: HTTPConfig{UserAgent: "ua/1", MaxBodyBytes: 42},
				Locale:     "fr",
				MinYear:    1990,
			},
			check: func(t *testing.T, c FetchConfig) {
				assert.Equal(t, "ua/1", c.UserAgent)
				assert.Equal(t, int64(42), c.MaxBodyBytes)
				assert.Equal(t, "fr", c.Locale)
				assert.Equal(t, 1990, c.MinYear)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.in
			c.Normalize()
			tt.check(t, c)
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultProfileURL, cfg.ProfileURL)
	assert.Equal(t, 2007, cfg.Fetch.MinYear)
	assert.Equal(t, 100, cfg.Fetch.PageSize)
	assert.Equal(t, 2*time.Second, cfg.Fetch.RequestDelay)
	assert.False(t, cfg.Fetch.RespectRobots)
	assert.Equal(t, "scholar_publications.csv", cfg.Export.Output)
	assert.Equal(t, 5, cfg.Export.Top)

	normalized := cfg.Fetch
	normalized.Normalize()
	assert.Equal(t, cfg.Fetch, normalized, "defaults are already normal")
}
