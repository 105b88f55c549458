package views

import (
	"testing"
	"time"

	"github.com/abarnes/fraudlens/internal/feed"
	"github.com/abarnes/fraudlens/internal/sample"
)

func record(id string, score int, status sample.Status) sample.TransactionRecord {
	return sample.TransactionRecord{
		ID:        id,
		Timestamp: time.Date(2026, 8, 28, 14, 30, 5, 0, time.UTC),
		Amount:    1234.5,
		Customer:  "Customer 42",
		Location:  "Tokyo",
		RiskScore: score,
		Status:    status,
	}
}

func TestHighRiskPreviewFiltersAndCaps(t *testing.T) {
	records := []sample.TransactionRecord{
		record("a", 95, sample.StatusFlagged),
		record("b", 42, sample.StatusApproved), // below threshold, excluded
		record("c", 70, sample.StatusPending),
		record("d", 88, sample.StatusFlagged),
		record("e", 69, sample.StatusBlocked), // below threshold, excluded
		record("f", 71, sample.StatusPending),
		record("g", 99, sample.StatusFlagged),
		record("h", 80, sample.StatusFlagged), // sixth qualifier, over the cap
	}

	rows := HighRiskPreview(records)

	if len(rows) != HighRiskPreviewLimit {
		t.Fatalf("preview has %d rows, want %d", len(rows), HighRiskPreviewLimit)
	}
	for _, row := range rows {
		if row.RiskScore < 70 {
			t.Errorf("preview includes sub-threshold row %s (score %d)", row.ID, row.RiskScore)
		}
		if row.Location != "" {
			t.Errorf("preview row %s carries a location", row.ID)
		}
	}
}

func TestLedgerKeepsEverything(t *testing.T) {
	records := []sample.TransactionRecord{
		record("a", 5, sample.StatusApproved),
		record("b", 85, sample.StatusBlocked),
	}

	rows := Ledger(records)

	if len(rows) != 2 {
		t.Fatalf("ledger has %d rows, want 2", len(rows))
	}
	if rows[0].Location != "Tokyo" {
		t.Errorf("ledger row missing location: %+v", rows[0])
	}
	if rows[0].RiskBadge != "low" || rows[1].RiskBadge != "high" {
		t.Errorf("badge tiers wrong: %s, %s", rows[0].RiskBadge, rows[1].RiskBadge)
	}
	if rows[1].StatusClass != "blocked" {
		t.Errorf("status class = %s, want blocked", rows[1].StatusClass)
	}
	if rows[0].Amount != "$1234.50" {
		t.Errorf("amount = %s, want $1234.50", rows[0].Amount)
	}
}

func TestBadgeTieringIndependentOfPreviewFilter(t *testing.T) {
	// Scores in [70, 80) qualify for the preview but still wear the medium
	// badge: the 70/40 filter bands and 80/50 badge tiers are distinct sets.
	rows := HighRiskPreview([]sample.TransactionRecord{record("a", 75, sample.StatusFlagged)})
	if len(rows) != 1 {
		t.Fatal("expected one preview row")
	}
	if rows[0].RiskBadge != "medium" {
		t.Errorf("badge for score 75 = %s, want medium", rows[0].RiskBadge)
	}
}

func TestFeedItemsPreserveOrder(t *testing.T) {
	events := []feed.Event{
		{ID: "new", Amount: 100, Time: time.Date(2026, 8, 28, 9, 0, 2, 0, time.UTC), Risk: 81},
		{ID: "old", Amount: 55.5, Time: time.Date(2026, 8, 28, 9, 0, 1, 0, time.UTC), Risk: 12},
	}

	items := FeedItems(events)

	if items[0].ID != "new" || items[1].ID != "old" {
		t.Errorf("feed order not preserved: %+v", items)
	}
	if items[0].Badge != "high" || items[1].Badge != "low" {
		t.Errorf("feed badges wrong: %s, %s", items[0].Badge, items[1].Badge)
	}
	if items[1].Amount != "$55.50" {
		t.Errorf("amount = %s, want $55.50", items[1].Amount)
	}
}
