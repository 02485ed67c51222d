// Package pacer spaces out outbound requests with a fixed pause.
package pacer

import (
	"context"
	"sync"
	"time"
)

// Clock abstracts time for tests.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// RealClock uses the time package.
type RealClock struct{}

func (RealClock) Now() time.Time                         { return time.Now() }
func (RealClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Pacer enforces a minimum delay between consecutive Wait calls.
// The first call returns immediately.
type Pacer struct {
	mu    sync.Mutex
	delay time.Duration
	clk   Clock
	last  time.Time
}

// New creates a pacer. A nil clock uses RealClock.
func New(delay time.Duration, clk Clock) *Pacer {
	if clk == nil {
		clk = RealClock{}
	}
	if delay < 0 {
		delay = 0
	}
	return &Pacer{delay: delay, clk: clk}
}

// Wait blocks until delay has passed since the previous Wait returned,
// or until ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.last.IsZero() && p.delay > 0 {
		if remaining := p.delay - p.clk.Now().Sub(p.last); remaining > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-p.clk.After(remaining):
			}
		}
	}
	p.last = p.clk.Now()
	return nil
}

// Delay returns the configured pause.
func (p *Pacer) Delay() time.Duration {
	return p.delay
}
