package feed

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func TestFeedBoundedNewestFirst(t *testing.T) {
	f := NewFeed(10)

	for i := 0; i < 12; i++ {
		f.Push(Event{ID: string(rune('A' + i)), Risk: i})
	}

	snap := f.Snapshot()
	if len(snap) != 10 {
		t.Fatalf("feed holds %d entries after 12 pushes, want 10", len(snap))
	}
	// Newest (12th push, Risk 11) must be at the head.
	if snap[0].Risk != 11 {
		t.Errorf("head risk = %d, want 11", snap[0].Risk)
	}
	// The two oldest pushes were evicted.
	for _, e := range snap {
		if e.Risk < 2 {
			t.Errorf("evicted entry still present: %+v", e)
		}
	}
	// Strictly descending by push order.
	for i := 1; i < len(snap); i++ {
		if snap[i].Risk >= snap[i-1].Risk {
			t.Errorf("feed not newest-first at index %d: %d then %d", i, snap[i-1].Risk, snap[i].Risk)
		}
	}
}

func TestFeedSnapshotIsCopy(t *testing.T) {
	f := NewFeed(5)
	f.Push(Event{ID: "a"})

	snap := f.Snapshot()
	snap[0].ID = "mutated"

	if f.Snapshot()[0].ID != "a" {
		t.Error("snapshot mutation leaked into the feed")
	}
}

func TestSimulatorWarmup(t *testing.T) {
	s := NewSimulator(SimulatorConfig{
		Interval: time.Hour, // ticker never fires in this test
		Capacity: 10,
		Warmup:   5,
		Seed:     1,
	}, discardLogger(), nil)

	if got := s.Feed().Len(); got != 5 {
		t.Errorf("feed holds %d entries after warmup, want 5", got)
	}
	for _, e := range s.Feed().Snapshot() {
		if e.Risk < 0 || e.Risk >= 100 {
			t.Errorf("risk %d out of range", e.Risk)
		}
		if e.Amount < 50 || e.Amount >= 2050 {
			t.Errorf("amount %v out of range", e.Amount)
		}
	}
}

func TestSimulatorTwelveTicks(t *testing.T) {
	s := NewSimulator(SimulatorConfig{
		Interval: time.Hour,
		Capacity: 10,
		Warmup:   0,
		Seed:     1,
	}, discardLogger(), nil)

	var last Event
	for i := 0; i < 12; i++ {
		last = s.tick()
	}

	snap := s.Feed().Snapshot()
	if len(snap) != 10 {
		t.Fatalf("feed holds %d entries after 12 ticks, want exactly 10", len(snap))
	}
	if snap[0].ID != last.ID {
		t.Errorf("newest tick not at head: got %s, want %s", snap[0].ID, last.ID)
	}
}

type captureBroadcaster struct {
	events []Event
}

func (c *captureBroadcaster) BroadcastFeedEvent(e Event) {
	c.events = append(c.events, e)
}

func TestSimulatorBroadcasts(t *testing.T) {
	b := &captureBroadcaster{}
	s := NewSimulator(SimulatorConfig{
		Interval: time.Hour,
		Capacity: 10,
		Warmup:   3,
		Seed:     1,
	}, discardLogger(), b)

	if len(b.events) != 3 {
		t.Errorf("broadcast %d warmup events, want 3", len(b.events))
	}

	s.tick()
	if len(b.events) != 4 {
		t.Errorf("broadcast %d events after tick, want 4", len(b.events))
	}
}

func TestSimulatorRunStopsOnCancel(t *testing.T) {
	s := NewSimulator(SimulatorConfig{
		Interval: 5 * time.Millisecond,
		Capacity: 10,
		Warmup:   0,
		Seed:     1,
	}, discardLogger(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	// Let at least one tick land.
	deadline := time.After(2 * time.Second)
	for s.Feed().Len() == 0 {
		select {
		case <-deadline:
			t.Fatal("no tick within deadline")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	if s.Running() {
		t.Error("simulator still reports running after stop")
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
