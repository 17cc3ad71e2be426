// SPDX-License-Identifier: MIT

package refresh

import (
	"sync/atomic"
	"time"
)

// Observer receives timing for every frame query and every rebuild.
// Implement it to feed an external metrics system.
type Observer interface {
	// RecordQuery is called after each StateAt evaluation.
	RecordQuery(d time.Duration, err error)

	// RecordRefresh is called after each context rebuild. dim and truncated
	// describe the new context and are zero on error.
	RecordRefresh(dim int, truncated bool, d time.Duration, err error)
}

// NoopObserver discards everything.
type NoopObserver struct{}

func (NoopObserver) RecordQuery(time.Duration, error)              {}
func (NoopObserver) RecordRefresh(int, bool, time.Duration, error) {}

// BasicObserver keeps in-memory counters. Safe for concurrent use.
type BasicObserver struct {
	QueryCount        atomic.Int64
	QueryErrors       atomic.Int64
	QueryTotalNanos   atomic.Int64
	RefreshCount      atomic.Int64
	RefreshErrors     atomic.Int64
	RefreshTruncated  atomic.Int64
	RefreshTotalNanos atomic.Int64
	LastDimension     atomic.Int64
}

// RecordQuery implements Observer.
func (b *BasicObserver) RecordQuery(d time.Duration, err error) {
	b.QueryCount.Add(1)
	b.QueryTotalNanos.Add(d.Nanoseconds())
	if err != nil {
		b.QueryErrors.Add(1)
	}
}

// RecordRefresh implements Observer.
func (b *BasicObserver) RecordRefresh(dim int, truncated bool, d time.Duration, err error) {
	b.RefreshCount.Add(1)
	b.RefreshTotalNanos.Add(d.Nanoseconds())
	if err != nil {
		b.RefreshErrors.Add(1)
		return
	}
	if truncated {
		b.RefreshTruncated.Add(1)
	}
	b.LastDimension.Store(int64(dim))
}

// Stats is a point-in-time copy of BasicObserver.
type Stats struct {
	QueryCount       int64
	QueryErrors      int64
	QueryAvg         time.Duration
	RefreshCount     int64
	RefreshErrors    int64
	RefreshTruncated int64
	RefreshAvg       time.Duration
	LastDimension    int
}

// Stats returns a snapshot of the counters.
func (b *BasicObserver) Stats() Stats {
	s := Stats{
		QueryCount:       b.QueryCount.Load(),
		QueryErrors:      b.QueryErrors.Load(),
		RefreshCount:     b.RefreshCount.Load(),
		RefreshErrors:    b.RefreshErrors.Load(),
		RefreshTruncated: b.RefreshTruncated.Load(),
		LastDimension:    int(b.LastDimension.Load()),
	}
	if s.QueryCount > 0 {
		s.QueryAvg = time.Duration(b.QueryTotalNanos.Load() / s.QueryCount)
	}
	if s.RefreshCount > 0 {
		s.RefreshAvg = time.Duration(b.RefreshTotalNanos.Load() / s.RefreshCount)
	}

	return s
}
