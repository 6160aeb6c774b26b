// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/aidancordero2/scholar-scraper/internal/httputil"
	"github.com/aidancordero2/scholar-scraper/internal/robots"
	"github.com/aidancordero2/scholar-scraper/pkg/types"
)

// ErrDisallowed is returned when robots.txt forbids the profile pages and
// robots checking is enabled. No page request is made.
var ErrDisallowed = errors.New("profile pages disallowed by robots.txt")

// State is the position of a Session in the fetch loop.
type State int

const (
	StateFetching State = iota
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateFetching:
		return "fetching"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session is the state of one paginated fetch. Records accumulate in page
// order and are kept when the loop fails part-way.
type Session struct {
	UserID  string
	Cursor  int
	Pages   int
	State   State
	Records []types.Publication
}

// TransportError records a page request that failed. Records from earlier
// pages are still returned alongside it.
type TransportError struct {
	Cursor int
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetching page at offset %d: %v", e.Cursor, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Fetcher pages through a profile's publication list.
type Fetcher struct {
	client *http.Client
	cfg    types.FetchConfig
	robots *robots.Checker
	w      io.Writer
}

// NewFetcher returns a Fetcher that sends requests with client and writes
// progress lines to w. cfg is normalized; a nil w discards progress.
func NewFetcher(client *http.Client, cfg types.FetchConfig, w io.Writer) *Fetcher {
	cfg.Normalize()
	if w == nil {
		w = io.Discard
	}
	f := &Fetcher{client: client, cfg: cfg, w: w}
	if cfg.RespectRobots {
		f.robots = robots.NewChecker(client, cfg.HTTPConfig)
	}
	return f
}

// Config returns the normalized configuration the Fetcher runs with.
func (f *Fetcher) Config() types.FetchConfig {
	return f.cfg
}

// Fetch requests pages of cfg.PageSize rows until a page comes back short
// or empty, or a request fails. It waits cfg.RequestDelay before every
// request but the first.
//
// The returned Session is never nil. On ErrMissingIdentifier or
// ErrDisallowed it holds no records. On a *TransportError it holds every
// record parsed before the failure.
func (f *Fetcher) Fetch(ctx context.Context, profileURL string) (*Session, error) {
	s := &Session{State: StateFetching}

	userID, err := UserID(profileURL)
	if err != nil {
		fmt.Fprintf(f.w, "error: %v\n", err)
		s.State = StateFailed
		return s, err
	}
	s.UserID = userID
	fmt.Fprintf(f.w, "Fetching all publications for user: %s\n", userID)
	fmt.Fprintf(f.w, "Filtering for publications from %d onwards...\n\n", f.cfg.MinYear)

	pacer := NewPacer(f.cfg.RequestDelay)
	if f.robots != nil {
		if err := f.checkRobots(ctx, s, pacer); err != nil {
			s.State = StateFailed
			return s, err
		}
	}

	for s.State == StateFetching {
		if err := f.fetchPage(ctx, s, pacer); err != nil {
			fmt.Fprintf(f.w, "error: %v\n", err)
			s.State = StateFailed
			return s, err
		}
	}
	return s, nil
}

// fetchPage runs one iteration of the loop and moves s to its next state.
func (f *Fetcher) fetchPage(ctx context.Context, s *Session, pacer *Pacer) error {
	pageURL := PageURL(f.cfg.BaseURL, s.UserID, f.cfg.Locale, s.Cursor, f.cfg.PageSize)

	if s.Cursor > 0 && f.cfg.RequestDelay > 0 {
		fmt.Fprintf(f.w, "Waiting %v before next request...\n", f.cfg.RequestDelay)
	}
	if err := pacer.Wait(ctx); err != nil {
		return &TransportError{Cursor: s.Cursor, URL: pageURL, Err: err}
	}

	fmt.Fprintf(f.w, "Fetching publications %d to %d...\n", s.Cursor+1, s.Cursor+f.cfg.PageSize)
	body, err := httputil.Get(ctx, f.client, pageURL, f.cfg.HTTPConfig)
	if err != nil {
		return &TransportError{Cursor: s.Cursor, URL: pageURL, Err: err}
	}

	records, err := ParsePage(body, f.cfg.BaseURL)
	if err != nil {
		return &TransportError{Cursor: s.Cursor, URL: pageURL, Err: err}
	}
	s.Pages++

	if len(records) == 0 {
		fmt.Fprintln(f.w, "No more publications found.")
		s.State = StateDone
		return nil
	}

	fmt.Fprintf(f.w, "  Found %d publications on this page\n", len(records))
	s.Records = append(s.Records, records...)

	if len(records) < f.cfg.PageSize {
		fmt.Fprintln(f.w, "Reached end of publications.")
		s.State = StateDone
		return nil
	}

	s.Cursor += f.cfg.PageSize
	return nil
}

// checkRobots consults robots.txt for the first page. A Crawl-delay becomes
// the pacer's floor.
func (f *Fetcher) checkRobots(ctx context.Context, s *Session, pacer *Pacer) error {
	first := PageURL(f.cfg.BaseURL, s.UserID, f.cfg.Locale, 0, f.cfg.PageSize)
	v, err := f.robots.Check(ctx, first)
	if err != nil {
		fmt.Fprintf(f.w, "warning: robots.txt check skipped: %v\n", err)
		return nil
	}
	if !v.Allowed {
		fmt.Fprintf(f.w, "error: %v\n", ErrDisallowed)
		return ErrDisallowed
	}
	if v.CrawlDelay > 0 {
		fmt.Fprintf(f.w, "robots.txt crawl delay: %v\n", v.CrawlDelay)
		pacer.SetFloor(v.CrawlDelay)
	}
	return nil
}

// Output is the result of a full scrape: the filtered, sorted publications
// plus counts from the fetch.
type Output struct {
	UserID       string
	Pages        int
	Raw          int
	State        State
	Publications []types.Publication
}

// Scrape fetches every page for profileURL, then keeps publications from
// cfg.MinYear onwards and sorts them newest first. Errors from Fetch are
// passed through; on a *TransportError the partial records are still
// filtered and sorted into Output.
func (f *Fetcher) Scrape(ctx context.Context, profileURL string) (Output, error) {
	s, err := f.Fetch(ctx, profileURL)
	out := Output{
		UserID:       s.UserID,
		Pages:        s.Pages,
		Raw:          len(s.Records),
		State:        s.State,
		Publications: Process(s.Records, f.cfg.MinYear),
	}
	return out, err
}
