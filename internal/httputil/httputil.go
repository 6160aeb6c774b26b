// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides the HTTP client and GET helper shared by the
// fetch stage and the robots.txt check.
package httputil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/net/html/charset"

	"github.com/aidancordero2/scholar-scraper/pkg/types"
)

const maxRedirects = 5

// ErrBodyTooLarge reports a response body longer than HTTPConfig.MaxBodyBytes.
var ErrBodyTooLarge = errors.New("response body too large")

// StatusError reports a response whose status code is outside 2xx.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// NewClient builds an http.Client with the configured timeout and proxy.
// An empty proxy falls back to the environment. Redirect chains longer than
// five hops are refused.
func NewClient(cfg types.HTTPConfig) (*http.Client, error) {
	proxy := http.ProxyFromEnvironment
	if cfg.Proxy != "" {
		u, err := url.Parse(cfg.Proxy)
		if err != nil {
			return nil, fmt.Errorf("parsing proxy URL: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("proxy URL %q needs a scheme and host", cfg.Proxy)
		}
		proxy = http.ProxyURL(u)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = proxy

	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: transport,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return errors.New("stopped after 5 redirects")
			}
			return nil
		},
	}, nil
}

// Get fetches rawURL and returns the body decoded to UTF-8. It sets the
// User-Agent from cfg and asks for English HTML. Any status outside 2xx is
// returned as a *StatusError. At most cfg.MaxBodyBytes bytes are read when
// the limit is positive; a longer body fails with ErrBodyTooLarge rather
// than being cut short. Get never retries.
func Get(ctx context.Context, client *http.Client, rawURL string, cfg types.HTTPConfig) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	var body io.Reader = resp.Body
	if cfg.MaxBodyBytes > 0 {
		body = io.LimitReader(body, cfg.MaxBodyBytes+1)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	if cfg.MaxBodyBytes > 0 && int64(len(raw)) > cfg.MaxBodyBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes: %w", cfg.MaxBodyBytes, ErrBodyTooLarge)
	}

	decoded, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decoding body: %w", err)
	}

	data, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}
	return data, nil
}
