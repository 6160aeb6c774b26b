// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the scheme and host of the profile service. Result
	// links are built by prefixing it to relative hrefs.
	DefaultBaseURL = "https://scholar.google.com"

	// DefaultProfileURL is the profile scraped when none is given.
	DefaultProfileURL = "https://scholar.google.com/citations?user=lAS1T9BopYMC&hl=en"

	// DefaultUserAgent mimics a desktop browser; the service serves an
	// empty list to unknown agents.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	// MaxPageSize is the largest page the service returns per request.
	MaxPageSize = 100

	DefaultLocale       = "en"
	DefaultMinYear      = 2007
	DefaultRequestDelay = 2 * time.Second
	DefaultTimeout      = 30 * time.Second
	DefaultMaxBodyBytes = 10 << 20
	DefaultOutput       = "scholar_publications.csv"
	DefaultTop          = 5
)

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxBodyBytes caps how much of a response body is read.
	MaxBodyBytes int64 `json:"max_body_bytes" yaml:"max_body_bytes" mapstructure:"max_body_bytes"`

	// Proxy is an optional proxy URL. When empty the environment
	// (HTTP_PROXY, HTTPS_PROXY, NO_PROXY) decides.
	Proxy string `json:"proxy,omitempty" yaml:"proxy,omitempty" mapstructure:"proxy"`
}

// FetchConfig holds settings for the paginated profile fetch.
type FetchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the scheme and host of the profile service.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Locale is sent as the hl parameter (default "en").
	Locale string `json:"locale" yaml:"locale" mapstructure:"locale"`

	// PageSize is the number of rows requested per page (1..100, default 100).
	PageSize int `json:"page_size" yaml:"page_size" mapstructure:"page_size"`

	// RequestDelay is the pause before every page request except the first.
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay" mapstructure:"request_delay"`

	// MinYear drops publications with a numeric year below it.
	MinYear int `json:"min_year" yaml:"min_year" mapstructure:"min_year"`

	// RespectRobots consults robots.txt before the first request.
	RespectRobots bool `json:"respect_robots" yaml:"respect_robots" mapstructure:"respect_robots"`
}

// ExportConfig holds settings for the export stage.
type ExportConfig struct {
	// Output is the destination file.
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// Format selects the writer: csv, json, yaml, csl, or sqlite. Empty
	// derives it from the Output extension.
	Format string `json:"format,omitempty" yaml:"format,omitempty" mapstructure:"format"`

	// Top is the number of newest publications printed in the summary.
	Top int `json:"top" yaml:"top" mapstructure:"top"`
}

// Config groups all stage configurations.
type Config struct {
	ProfileURL string       `json:"profile_url" yaml:"profile_url" mapstructure:"profile_url"`
	Fetch      FetchConfig  `json:"fetch" yaml:"fetch" mapstructure:"fetch"`
	Export     ExportConfig `json:"export" yaml:"export" mapstructure:"export"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		ProfileURL: DefaultProfileURL,
		Fetch: FetchConfig{
			HTTPConfig: HTTPConfig{
				Timeout:      DefaultTimeout,
				UserAgent:    DefaultUserAgent,
				MaxBodyBytes: DefaultMaxBodyBytes,
			},
			BaseURL:      DefaultBaseURL,
			Locale:       DefaultLocale,
			PageSize:     MaxPageSize,
			RequestDelay: DefaultRequestDelay,
			MinYear:      DefaultMinYear,
		},
		Export: ExportConfig{
			Output: DefaultOutput,
			Top:    DefaultTop,
		},
	}
}

// Normalize fills zero values with defaults, strips a trailing slash from
// BaseURL and clamps the page size to 1..MaxPageSize. A negative request
// delay is treated as no delay.
func (c *FetchConfig) Normalize() {
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if c.PageSize <= 0 || c.PageSize > MaxPageSize {
		c.PageSize = MaxPageSize
	}
	if c.RequestDelay < 0 {
		c.RequestDelay = 0
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.MaxBodyBytes <= 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
}
