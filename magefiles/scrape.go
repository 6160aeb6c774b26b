// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Scrape builds the CLI and runs a fetch against the configured profile.
// PROFILE_URL and OUTPUT override the config file when set.
func Scrape() error {
	mg.Deps(Build)

	args := []string{"fetch"}
	if u := os.Getenv("PROFILE_URL"); u != "" {
		args = append(args, u)
	}
	if out := os.Getenv("OUTPUT"); out != "" {
		args = append(args, "--output", out)
	}
	return sh.RunV(binPath, args...)
}
