// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aidancordero2/scholar-scraper/internal/export"
	"github.com/aidancordero2/scholar-scraper/internal/httputil"
	"github.com/aidancordero2/scholar-scraper/internal/report"
	"github.com/aidancordero2/scholar-scraper/internal/scholar"
	"github.com/aidancordero2/scholar-scraper/internal/secrets"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [profile-url]",
	Short: "Fetch a profile's publications and export them",
	Long: `Fetch requests the profile's publication list page by page, waiting
between requests, until a page comes back short or empty. Publications
with a numeric year below --min-year, or no year at all, are dropped; the
rest are sorted newest first and written to --output.

The profile URL must carry a user parameter. When omitted, profile_url
from the config file is used.

A failed page request ends the run early but keeps the publications
already fetched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

func init() {
	f := fetchCmd.Flags()
	f.Int("min-year", 0, "drop publications with a numeric year below this (default 2007)")
	f.Int("page-size", 0, "rows requested per page, 1-100 (default 100)")
	f.Duration("delay", 0, "pause before every page request but the first (default 2s)")
	f.Duration("timeout", 0, "HTTP request timeout (default 30s)")
	f.String("user-agent", "", "User-Agent header sent with requests")
	f.String("base-url", "", "scheme and host of the profile service")
	f.String("locale", "", "interface language sent as hl (default en)")
	f.String("proxy", "", "proxy URL (default from HTTP_PROXY/HTTPS_PROXY)")
	f.Bool("respect-robots", false, "consult robots.txt before fetching")
	f.StringP("output", "o", "", "output file (default scholar_publications.csv)")
	f.String("format", "", "output format: csv, json, yaml, csl, sqlite (default from --output extension)")
	f.Int("top", 0, "newest publications shown in the summary (default 5)")

	for key, flag := range map[string]string{
		"fetch.min_year":       "min-year",
		"fetch.page_size":      "page-size",
		"fetch.request_delay":  "delay",
		"fetch.timeout":        "timeout",
		"fetch.user_agent":     "user-agent",
		"fetch.base_url":       "base-url",
		"fetch.locale":         "locale",
		"fetch.proxy":          "proxy",
		"fetch.respect_robots": "respect-robots",
		"export.output":        "output",
		"export.format":        "format",
		"export.top":           "top",
	} {
		_ = viper.BindPFlag(key, f.Lookup(flag))
	}

	rootCmd.AddCommand(fetchCmd)
}

// runFetch reports transport and export failures on the output stream and
// still exits zero, so a partial scrape is never lost to a non-zero status.
// Only bad configuration fails the command.
func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.ProfileURL = args[0]
	}
	if cfg.ProfileURL == "" {
		return fmt.Errorf("provide a profile URL or set profile_url in the config file")
	}

	dir, _ := cmd.Flags().GetString("secrets-dir")
	store, err := secrets.Load(dir, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if keys := store.Keys(); len(keys) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Loaded secrets: %v\n", keys)
	}
	cfg.Fetch.Proxy = store.Resolve(secrets.ProxyURL, cfg.Fetch.Proxy)

	format, err := export.ParseFormat(cfg.Export.Format)
	if err != nil {
		return err
	}
	client, err := httputil.NewClient(cfg.Fetch.HTTPConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fetcher := scholar.NewFetcher(client, cfg.Fetch, out)
	fetchCfg := fetcher.Config()

	report.Banner(out, cfg.ProfileURL, fetchCfg)

	res, _ := fetcher.Scrape(cmd.Context(), cfg.ProfileURL)
	if res.UserID != "" {
		report.Summary(out, res.Raw, fetchCfg.MinYear, res.Publications, cfg.Export.Top)
	}

	if len(res.Publications) == 0 {
		fmt.Fprintln(out, "No publications found or error occurred.")
		return nil
	}

	if err := export.Write(cmd.Context(), cfg.Export.Output, format, res.Publications); err != nil {
		fmt.Fprintf(out, "Error writing output: %v\n", err)
		return nil
	}
	report.Saved(out, len(res.Publications), cfg.Export.Output)
	return nil
}
