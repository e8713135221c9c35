package performance

import (
	"sync"
	"time"
)

// Tracker collects operation markers and keeps a bounded window of
// completed operations for inspection.
type Tracker struct {
	mu        sync.Mutex
	active    map[*Marker]struct{}
	completed []*Marker
	maxKept   int
}

// NewTracker creates a performance tracker.
func NewTracker() *Tracker {
	return &Tracker{
		active:  make(map[*Marker]struct{}),
		maxKept: 256,
	}
}

// StartOperation begins tracking a named operation and returns its marker.
// Callers must defer FinishOperation(marker) so the marker leaves the
// active set when the operation ends.
func (t *Tracker) StartOperation(operation string) *Marker {
	marker := &Marker{
		Operation: operation,
		StartTime: time.Now(),
	}

	t.mu.Lock()
	t.active[marker] = struct{}{}
	t.mu.Unlock()

	return marker
}

// FinishOperation moves a marker from active to the completed window.
func (t *Tracker) FinishOperation(marker *Marker) {
	if !marker.Completed {
		marker.Complete()
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.active, marker)
	t.completed = append(t.completed, marker)
	if len(t.completed) > t.maxKept {
		t.completed = t.completed[len(t.completed)-t.maxKept:]
	}
}

// ActiveCount returns the number of in-flight operations.
func (t *Tracker) ActiveCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.active)
}

// CompletedCount returns the number of retained completed operations.
func (t *Tracker) CompletedCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.completed)
}
