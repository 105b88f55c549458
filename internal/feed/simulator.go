package feed

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/abarnes/fraudlens/internal/idgen"
)

// Broadcaster receives every synthesized event for realtime delivery.
type Broadcaster interface {
	BroadcastFeedEvent(Event)
}

// SimulatorConfig configures the feed simulator.
type SimulatorConfig struct {
	Interval time.Duration
	Capacity int
	Warmup   int    // events synthesized before the ticker starts
	Seed     uint64 // zero seeds from the clock
}

// DefaultSimulatorConfig mirrors the dashboard's original timings: one event
// every 5 seconds into a 10-entry window, warmed with 5 entries.
func DefaultSimulatorConfig() SimulatorConfig {
	return SimulatorConfig{
		Interval: 5 * time.Second,
		Capacity: 10,
		Warmup:   5,
	}
}

// Simulator synthesizes one feed event per tick.
type Simulator struct {
	cfg         SimulatorConfig
	feed        *Feed
	rand        *rand.Rand
	logger      *slog.Logger
	broadcaster Broadcaster
	running     atomic.Bool
}

// NewSimulator creates a simulator and warms the feed so it is never empty
// before the first tick. broadcaster may be nil.
func NewSimulator(cfg SimulatorConfig, logger *slog.Logger, broadcaster Broadcaster) *Simulator {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	s := &Simulator{
		cfg:         cfg,
		feed:        NewFeed(cfg.Capacity),
		rand:        rand.New(rand.NewPCG(seed, seed^0x6a09e667f3bcc908)),
		logger:      logger,
		broadcaster: broadcaster,
	}
	for i := 0; i < cfg.Warmup; i++ {
		s.tick()
	}
	return s
}

// Feed returns the simulator's bounded feed.
func (s *Simulator) Feed() *Feed {
	return s.feed
}

// Running reports whether the ticker loop is active.
func (s *Simulator) Running() bool {
	return s.running.Load()
}

// Run drives the recurring tick until ctx is cancelled.
func (s *Simulator) Run(ctx context.Context) {
	s.running.Store(true)
	defer s.running.Store(false)

	s.logger.Info("feed simulator started",
		"interval", s.cfg.Interval,
		"capacity", s.cfg.Capacity,
	)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("feed simulator stopped")
			return
		case <-ticker.C:
			e := s.tick()
			s.logger.Debug("feed event synthesized", "id", e.ID, "risk", e.Risk)
		}
	}
}

// tick synthesizes one event, pushes it, and broadcasts it.
func (s *Simulator) tick() Event {
	e := Event{
		ID:     idgen.TransactionRef(),
		Amount: float64(int64((s.rand.Float64()*2000+50)*100)) / 100,
		Time:   time.Now(),
		Risk:   s.rand.IntN(100),
	}
	s.feed.Push(e)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastFeedEvent(e)
	}
	return e
}
