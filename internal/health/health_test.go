package health

import (
	"context"
	"testing"
)

func TestCheckAllEmpty(t *testing.T) {
	r := NewRegistry()
	healthy, statuses := r.CheckAll(context.Background())
	if !healthy {
		t.Error("empty registry should be healthy")
	}
	if len(statuses) != 0 {
		t.Errorf("expected no statuses, got %d", len(statuses))
	}
}

func TestCheckAllAggregates(t *testing.T) {
	r := NewRegistry()
	r.Register("feed", func(ctx context.Context) Status {
		return Status{Name: "feed", Healthy: true}
	})
	r.Register("hub", func(ctx context.Context) Status {
		return Status{Name: "hub", Healthy: false, Detail: "stopped"}
	})

	healthy, statuses := r.CheckAll(context.Background())
	if healthy {
		t.Error("registry with a failing checker should be unhealthy")
	}
	if len(statuses) != 2 {
		t.Fatalf("expected 2 statuses, got %d", len(statuses))
	}
	if statuses[1].Detail != "stopped" {
		t.Errorf("detail = %q, want stopped", statuses[1].Detail)
	}
}

func TestCheckAllAllHealthy(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"a", "b", "c"} {
		n := name
		r.Register(n, func(ctx context.Context) Status {
			return Status{Name: n, Healthy: true}
		})
	}

	healthy, statuses := r.CheckAll(context.Background())
	if !healthy || len(statuses) != 3 {
		t.Errorf("healthy = %v, statuses = %d", healthy, len(statuses))
	}
}
