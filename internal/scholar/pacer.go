// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// sleepFunc pauses for d or until ctx is done. Tests replace it to record
// delays without sleeping.
var sleepFunc = sleepContext

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Pacer spaces out page requests. The first Wait returns at once; every
// later Wait sleeps the fixed delay. An optional floor additionally keeps
// request starts at least that far apart.
type Pacer struct {
	delay   time.Duration
	floor   *rate.Limiter
	started bool
}

// NewPacer returns a Pacer with the given politeness delay.
func NewPacer(delay time.Duration) *Pacer {
	return &Pacer{delay: delay}
}

// SetFloor sets the minimum interval between request starts, typically a
// robots.txt Crawl-delay. A non-positive interval clears it.
func (p *Pacer) SetFloor(interval time.Duration) {
	if interval <= 0 {
		p.floor = nil
		return
	}
	p.floor = rate.NewLimiter(rate.Every(interval), 1)
}

// Wait blocks until the next request may be sent.
func (p *Pacer) Wait(ctx context.Context) error {
	if p.started && p.delay > 0 {
		if err := sleepFunc(ctx, p.delay); err != nil {
			return err
		}
	}
	p.started = true

	if p.floor != nil {
		return p.floor.Wait(ctx)
	}
	return nil
}
