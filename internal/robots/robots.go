// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package robots answers whether a URL may be fetched according to the
// host's robots.txt, and with what crawl delay.
package robots

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/temoto/robotstxt"

	"github.com/aidancordero2/scholar-scraper/internal/httputil"
	"github.com/aidancordero2/scholar-scraper/pkg/types"
)

// CacheTTL is how long a host's robots.txt is reused.
const CacheTTL = time.Hour

// Verdict is the outcome of a robots.txt check.
type Verdict struct {
	Allowed    bool
	CrawlDelay time.Duration
}

// Checker fetches and caches robots.txt per host.
type Checker struct {
	client *http.Client
	cfg    types.HTTPConfig
	agent  string
	cache  *gocache.Cache
}

// NewChecker returns a Checker that fetches robots.txt with client and
// matches rules against the product token of cfg.UserAgent.
func NewChecker(client *http.Client, cfg types.HTTPConfig) *Checker {
	return &Checker{
		client: client,
		cfg:    cfg,
		agent:  ProductToken(cfg.UserAgent),
		cache:  gocache.New(CacheTTL, 10*time.Minute),
	}
}

// Check reports whether rawURL may be fetched. A robots.txt that cannot be
// reached allows everything; 4xx allows everything; 5xx disallows
// everything. The only error is an unparseable URL.
func (c *Checker) Check(ctx context.Context, rawURL string) (Verdict, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Verdict{}, fmt.Errorf("parsing URL: %w", err)
	}
	if u.Host == "" {
		return Verdict{}, fmt.Errorf("URL %q has no host", rawURL)
	}

	data := c.robotsData(ctx, u)
	if data == nil {
		return Verdict{Allowed: true}, nil
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}

	v := Verdict{Allowed: data.TestAgent(path, c.agent)}
	if group := data.FindGroup(c.agent); group != nil {
		v.CrawlDelay = group.CrawlDelay
	}
	return v, nil
}

func (c *Checker) robotsData(ctx context.Context, u *url.URL) *robotstxt.RobotsData {
	key := u.Scheme + "://" + u.Host
	if cached, ok := c.cache.Get(key); ok {
		return cached.(*robotstxt.RobotsData)
	}

	body, err := httputil.Get(ctx, c.client, key+"/robots.txt", c.cfg)
	var data *robotstxt.RobotsData
	var se *httputil.StatusError
	switch {
	case err == nil:
		data, err = robotstxt.FromStatusAndBytes(http.StatusOK, body)
	case errors.As(err, &se):
		data, err = robotstxt.FromStatusAndBytes(se.StatusCode, nil)
	}
	if err != nil {
		return nil
	}

	c.cache.Set(key, data, gocache.DefaultExpiration)
	return data
}

// ProductToken returns the first product name of a User-Agent string
// ("Mozilla/5.0 (...)" → "Mozilla"), which is what robots.txt groups match on.
func ProductToken(ua string) string {
	fields := strings.Fields(ua)
	if len(fields) == 0 {
		return "*"
	}
	return strings.SplitN(fields[0], "/", 2)[0]
}
