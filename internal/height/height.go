// Package height supplies the current block height used to stamp registry
// records and to age recipient verifications.
package height

import (
	"context"
	"sync"
	"time"

	"benefitd/pkg/domain"
	"benefitd/pkg/requestcontext"
)

// Source reports the current height. Implementations must be safe for
// concurrent use.
type Source interface {
	Current(ctx context.Context) (domain.Height, error)
}

// Manual is a settable source for tests and local runs.
type Manual struct {
	mu sync.RWMutex
	h  domain.Height
}

func NewManual(initial domain.Height) *Manual {
	return &Manual{h: initial}
}

func (m *Manual) Current(context.Context) (domain.Height, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.h, nil
}

// Set moves the height to h. Moving backwards is allowed here; wrap the
// source in Monotonic when callers must never observe that.
func (m *Manual) Set(h domain.Height) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.h = h
}

// Advance moves the height forward by n blocks and returns the new height.
func (m *Manual) Advance(n uint64) domain.Height {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.h += domain.Height(n)
	return m.h
}

// Clock derives the height from wall time: genesis plus elapsed intervals.
// The time comes from requestcontext.Now so one request sees one height.
type Clock struct {
	genesisHeight domain.Height
	genesisTime   time.Time
	interval      time.Duration
}

func NewClock(genesisHeight domain.Height, genesisTime time.Time, interval time.Duration) *Clock {
	if interval <= 0 {
		interval = time.Second
	}
	return &Clock{genesisHeight: genesisHeight, genesisTime: genesisTime, interval: interval}
}

func (c *Clock) Current(ctx context.Context) (domain.Height, error) {
	now := requestcontext.Now(ctx)
	if now.Before(c.genesisTime) {
		return c.genesisHeight, nil
	}
	elapsed := now.Sub(c.genesisTime) / c.interval
	return c.genesisHeight + domain.Height(elapsed), nil
}

// Monotonic never reports a height below one it has already reported.
type Monotonic struct {
	inner Source
	mu    sync.Mutex
	last  domain.Height
}

func NewMonotonic(inner Source) *Monotonic {
	return &Monotonic{inner: inner}
}

func (m *Monotonic) Current(ctx context.Context) (domain.Height, error) {
	h, err := m.inner.Current(ctx)
	if err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if h < m.last {
		return m.last, nil
	}
	m.last = h
	return h, nil
}
