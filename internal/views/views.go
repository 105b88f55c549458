// Package views maps domain records onto display-ready view models.
//
// Everything here is pure data mapping: handlers serve these structures as
// JSON and the pages render them verbatim, which keeps the scorer, generator,
// and feed testable without any presentation dependency.
package views

import (
	"fmt"

	"github.com/abarnes/fraudlens/internal/feed"
	"github.com/abarnes/fraudlens/internal/risk"
	"github.com/abarnes/fraudlens/internal/sample"
)

// HighRiskPreviewLimit caps the preview table row count.
const HighRiskPreviewLimit = 5

// TransactionRow is one rendered table row. Location is empty in the
// high-risk preview variant, which omits that column.
type TransactionRow struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Customer    string `json:"customer"`
	Location    string `json:"location,omitempty"`
	RiskScore   int    `json:"riskScore"`
	RiskBadge   string `json:"riskBadge"`
	Status      string `json:"status"`
	StatusClass string `json:"statusClass"`
}

// HighRiskPreview renders the preview variant: only records at or above the
// high-risk classification threshold, at most HighRiskPreviewLimit rows,
// location omitted.
func HighRiskPreview(records []sample.TransactionRecord) []TransactionRow {
	rows := make([]TransactionRow, 0, HighRiskPreviewLimit)
	for _, r := range records {
		if r.RiskScore < risk.HighRiskThreshold {
			continue
		}
		row := newRow(r)
		row.Location = ""
		rows = append(rows, row)
		if len(rows) == HighRiskPreviewLimit {
			break
		}
	}
	return rows
}

// Ledger renders the full variant: every record, location included, no cap.
func Ledger(records []sample.TransactionRecord) []TransactionRow {
	rows := make([]TransactionRow, len(records))
	for i, r := range records {
		rows[i] = newRow(r)
	}
	return rows
}

func newRow(r sample.TransactionRecord) TransactionRow {
	return TransactionRow{
		ID:          r.ID,
		Date:        r.Timestamp.Format("1/2/2006, 3:04:05 PM"),
		Amount:      fmt.Sprintf("$%.2f", r.Amount),
		Customer:    r.Customer,
		Location:    r.Location,
		RiskScore:   r.RiskScore,
		RiskBadge:   string(risk.BadgeTier(r.RiskScore)),
		Status:      string(r.Status),
		StatusClass: statusClass(r.Status),
	}
}

func statusClass(s sample.Status) string {
	switch s {
	case sample.StatusFlagged:
		return "flagged"
	case sample.StatusApproved:
		return "approved"
	case sample.StatusPending:
		return "pending"
	case sample.StatusBlocked:
		return "blocked"
	default:
		return "pending"
	}
}

// FeedItem is one rendered live-feed entry.
type FeedItem struct {
	ID     string `json:"id"`
	Amount string `json:"amount"`
	Time   string `json:"time"`
	Risk   int    `json:"risk"`
	Badge  string `json:"badge"`
}

// FeedItems renders the feed window, preserving its newest-first order.
func FeedItems(events []feed.Event) []FeedItem {
	items := make([]FeedItem, len(events))
	for i, e := range events {
		items[i] = FeedItem{
			ID:     e.ID,
			Amount: fmt.Sprintf("$%.2f", e.Amount),
			Time:   e.Time.Format("3:04:05 PM"),
			Risk:   e.Risk,
			Badge:  string(risk.BadgeTier(e.Risk)),
		}
	}
	return items
}
