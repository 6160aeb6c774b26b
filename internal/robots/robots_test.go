// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package robots

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidancordero2/scholar-scraper/pkg/types"
)

const sampleRobots = `User-agent: *
Disallow: /private
Allow: /citations?user=
Disallow: /citations?
Crawl-delay: 3
`

func robotsServer(status int, body string, calls *int32) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/robots.txt" {
			w.WriteHeader(http.StatusOK)
			return
		}
		atomic.AddInt32(calls, 1)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
}

func newTestChecker(ts *httptest.Server) *Checker {
	return NewChecker(ts.Client(), types.HTTPConfig{
		Timeout:   5 * time.Second,
		UserAgent: "Mozilla/5.0 (test)",
	})
}

func TestCheck_Rules(t *testing.T) {
	var calls int32
	ts := robotsServer(http.StatusOK, sampleRobots, &calls)
	defer ts.Close()
	c := newTestChecker(ts)

	tests := []struct {
		name    string
		path    string
		allowed bool
	}{
		{"profile page allowed", "/citations?user=abc&hl=en", true},
		{"other citations query disallowed", "/citations?view_op=search", false},
		{"private disallowed", "/private/x", false},
		{"root allowed", "/", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := c.Check(context.Background(), ts.URL+tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, v.Allowed)
			assert.Equal(t, 3*time.Second, v.CrawlDelay)
		})
	}

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "robots.txt fetched once per host")
}

func TestCheck_StatusSemantics(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		allowed bool
	}{
		{"missing robots allows", http.StatusNotFound, true},
		{"forbidden robots allows", http.StatusForbidden, true},
		{"server error disallows", http.StatusServiceUnavailable, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			ts := robotsServer(tt.status, "", &calls)
			defer ts.Close()

			v, err := newTestChecker(ts).Check(context.Background(), ts.URL+"/citations?user=abc")
			require.NoError(t, err)
			assert.Equal(t, tt.allowed, v.Allowed)
			assert.Zero(t, v.CrawlDelay)
		})
	}
}

func TestCheck_UnreachableAllows(t *testing.T) {
	var calls int32
	ts := robotsServer(http.StatusOK, sampleRobots, &calls)
	addr := ts.URL
	c := newTestChecker(ts)
	ts.Close()

	v, err := c.Check(context.Background(), addr+"/private")
	require.NoError(t, err)
	assert.True(t, v.Allowed)
}

func TestCheck_BadURL(t *testing.T) {
	c := NewChecker(http.DefaultClient, types.HTTPConfig{})
	_, err := c.Check(context.Background(), "/relative/only")
	assert.Error(t, err)
}

func TestProductToken(t *testing.T) {
	tests := []struct {
		ua   string
		want string
	}{
		{types.DefaultUserAgent, "Mozilla"},
		{"scholar-scraper/0.1", "scholar-scraper"},
		{"curl", "curl"},
		{"", "*"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ProductToken(tt.ua))
		})
	}
}
