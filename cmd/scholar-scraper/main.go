// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the scholar-scraper CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aidancordero2/scholar-scraper/internal/secrets"
	"github.com/aidancordero2/scholar-scraper/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

const (
	appName   = "scholar-scraper"
	envPrefix = "SCHOLAR_SCRAPER"
)

// rootCmd is the base command for the scholar-scraper CLI.
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Export a Google Scholar profile's publication list",
	Long: `scholar-scraper pages through the publication list of a Google Scholar
profile, keeps publications from a minimum year onwards, sorts them newest
first, and writes them to CSV, JSON, YAML, CSL-YAML, or SQLite.

Settings come from flags, SCHOLAR_SCRAPER_* environment variables, and a
config file, in that order of priority.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./scholar-scraper.yaml or ~/.config/scholar-scraper/config.yaml)")
	rootCmd.PersistentFlags().String("secrets-dir", secrets.DefaultDir, "directory of credential files (proxy-url)")
	setDefaults(viper.GetViper(), types.DefaultConfig())
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(appName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		if dir, err := userConfigDir(); err == nil {
			viper.AddConfigPath(dir)
		}
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// userConfigDir returns ~/.config/scholar-scraper.
func userConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// setDefaults registers every config key so environment variables and
// Unmarshal see it even when no file or flag sets it.
func setDefaults(v *viper.Viper, d types.Config) {
	v.SetDefault("profile_url", d.ProfileURL)

	v.SetDefault("fetch.timeout", d.Fetch.Timeout)
	v.SetDefault("fetch.user_agent", d.Fetch.UserAgent)
	v.SetDefault("fetch.max_body_bytes", d.Fetch.MaxBodyBytes)
	v.SetDefault("fetch.proxy", d.Fetch.Proxy)
	v.SetDefault("fetch.base_url", d.Fetch.BaseURL)
	v.SetDefault("fetch.locale", d.Fetch.Locale)
	v.SetDefault("fetch.page_size", d.Fetch.PageSize)
	v.SetDefault("fetch.request_delay", d.Fetch.RequestDelay)
	v.SetDefault("fetch.min_year", d.Fetch.MinYear)
	v.SetDefault("fetch.respect_robots", d.Fetch.RespectRobots)

	v.SetDefault("export.output", d.Export.Output)
	v.SetDefault("export.format", d.Export.Format)
	v.SetDefault("export.top", d.Export.Top)
}

// loadConfig decodes the merged flag, environment, file and default
// values.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
