// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets reads credentials that should not live in the config
// file. Each regular file in the directory holds one value: the filename is
// the key and the trimmed contents are the value.
//
// Recognized keys: proxy-url (a proxy URL that may embed a user and
// password).
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultDir is where the CLI looks for secret files.
const DefaultDir = ".secrets"

// ProxyURL is the key of the proxy URL secret.
const ProxyURL = "proxy-url"

// Store maps secret names to values.
type Store map[string]string

// Load reads every non-hidden regular file in dir. A missing directory
// yields an empty Store. Files that cannot be read are reported on w and
// skipped; empty files are ignored.
func Load(dir string, w io.Writer) (Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Store{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Store)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(w, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			s[name] = value
		}
	}
	return s, nil
}

// Resolve returns explicit when it is set, otherwise the stored value for
// key, otherwise "".
func (s Store) Resolve(key, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return s[key]
}

// Keys returns the loaded secret names in sorted order. Values are never
// printed.
func (s Store) Keys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
