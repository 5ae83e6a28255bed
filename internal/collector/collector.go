// Package collector reads volatile OS counters and normalizes them into the
// snapshot types in internal/models. Each collector performs exactly one
// category of OS read; collectors hold no cross-request state, so any number
// of requests may invoke them concurrently.
package collector

import (
	"context"
	"fmt"
)

// Collector is implemented by every metric collector.
type Collector interface {
	// Name returns the unique identifier for this collector.
	Name() string

	// Collect performs a fresh OS read and returns the normalized snapshot.
	// The context allows cancellation at OS-call granularity.
	Collect(ctx context.Context) (any, error)

	// IsAvailable reports whether this collector can run on the current
	// platform. Unavailable collectors are not registered.
	IsAvailable() bool
}

// CollectionError reports that an entire OS subsystem enumeration failed
// (no process table, no mount table, no interface table). Per-field read
// failures never produce a CollectionError; those fall back to sentinel
// values inside the snapshot.
type CollectionError struct {
	Subsystem string
	Err       error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("collecting %s: %v", e.Subsystem, e.Err)
}

func (e *CollectionError) Unwrap() error { return e.Err }
