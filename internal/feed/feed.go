// Package feed maintains the bounded live feed of synthetic transaction
// events and the simulator that drives it.
//
// The feed is a recency-ordered window: new events go in at the head, the
// tail is silently dropped once capacity is reached. Nothing is archived.
package feed

import (
	"sync"
	"time"

	"github.com/abarnes/fraudlens/internal/metrics"
)

// Event is one synthetic transaction event in the live feed.
type Event struct {
	ID     string    `json:"id"`
	Amount float64   `json:"amount"`
	Time   time.Time `json:"time"`
	Risk   int       `json:"risk"`
}

// Feed is a bounded, newest-first list of events. Safe for concurrent use.
type Feed struct {
	mu       sync.Mutex
	entries  []Event
	capacity int
}

// NewFeed creates an empty feed holding at most capacity entries.
func NewFeed(capacity int) *Feed {
	return &Feed{
		entries:  make([]Event, 0, capacity),
		capacity: capacity,
	}
}

// Push prepends an event, evicting the oldest entry when the feed is full.
func (f *Feed) Push(e Event) {
	f.mu.Lock()
	f.entries = append(f.entries, Event{})
	copy(f.entries[1:], f.entries)
	f.entries[0] = e
	if len(f.entries) > f.capacity {
		f.entries = f.entries[:f.capacity]
	}
	n := len(f.entries)
	f.mu.Unlock()

	metrics.FeedEventsTotal.Inc()
	metrics.FeedSize.Set(float64(n))
}

// Snapshot returns a copy of the current window, newest first.
func (f *Feed) Snapshot() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Event, len(f.entries))
	copy(out, f.entries)
	return out
}

// Len returns the current number of entries.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

// Capacity returns the maximum number of entries retained.
func (f *Feed) Capacity() int {
	return f.capacity
}
