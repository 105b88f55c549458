// Package sample fabricates synthetic transaction records for the dashboard.
//
// Nothing here persists: every batch is generated fresh from a
// constructor-scoped random source and discarded by the caller. Records carry
// a random risk score and a status drawn independently of it, matching the
// product mockup they feed.
package sample

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abarnes/fraudlens/internal/idgen"
)

// Status is the review state attached to a fabricated record. It is drawn
// independently of the risk score.
type Status string

const (
	StatusFlagged  Status = "Flagged"
	StatusApproved Status = "Approved"
	StatusPending  Status = "Pending"
	StatusBlocked  Status = "Blocked"
)

// TransactionRecord is one immutable fabricated transaction.
type TransactionRecord struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Amount    float64   `json:"amount"`
	Customer  string    `json:"customer"`
	Location  string    `json:"location"`
	RiskScore int       `json:"riskScore"`
	Status    Status    `json:"status"`
}

// HighRiskFloor is the minimum risk score of records produced by
// GenerateHighRisk.
const HighRiskFloor = 70

var (
	locations = []string{"New York", "London", "Tokyo", "Dubai", "Sydney", "Paris", "Berlin"}
	statuses  = []Status{StatusFlagged, StatusApproved, StatusPending, StatusBlocked}
	// Recently flagged records only ever show up as under review.
	recentStatuses = []Status{StatusFlagged, StatusPending}
)

// Config controls batch shape. A zero Seed seeds from the clock.
type Config struct {
	Seed uint64
}

// Generator produces batches of synthetic transaction records.
type Generator struct {
	rand *rand.Rand
}

// New returns a Generator. Each Generator owns its random source; there is no
// package-level state shared between instances.
func New(cfg Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Generate fabricates count records with fields drawn uniformly from the
// fixture pools: amounts in [50, 5050), risk scores in [0, 100), timestamps
// within the past week.
func (g *Generator) Generate(count int) []TransactionRecord {
	records := make([]TransactionRecord, count)
	now := time.Now()
	for i := range records {
		records[i] = TransactionRecord{
			ID:        idgen.TransactionRef(),
			Timestamp: now.Add(-time.Duration(g.rand.Int64N(int64(7 * 24 * time.Hour)))),
			Amount:    roundCents(g.rand.Float64()*5000 + 50),
			Customer:  fmt.Sprintf("Customer %d", g.rand.IntN(1000)),
			Location:  locations[g.rand.IntN(len(locations))],
			RiskScore: g.rand.IntN(100),
			Status:    statuses[g.rand.IntN(len(statuses))],
		}
	}
	return records
}

// GenerateHighRisk fabricates count records biased for the high-risk preview:
// risk scores in [70, 100), timestamps within the past hour, amounts in
// [100, 5100), and only in-review statuses.
func (g *Generator) GenerateHighRisk(count int) []TransactionRecord {
	records := make([]TransactionRecord, count)
	now := time.Now()
	for i := range records {
		records[i] = TransactionRecord{
			ID:        idgen.TransactionRef(),
			Timestamp: now.Add(-time.Duration(g.rand.Int64N(int64(time.Hour)))),
			Amount:    roundCents(g.rand.Float64()*5000 + 100),
			Customer:  fmt.Sprintf("Customer %d", g.rand.IntN(1000)),
			Location:  locations[g.rand.IntN(len(locations))],
			RiskScore: HighRiskFloor + g.rand.IntN(100-HighRiskFloor),
			Status:    recentStatuses[g.rand.IntN(len(recentStatuses))],
		}
	}
	return records
}

// roundCents truncates an amount to two fractional digits.
func roundCents(v float64) float64 {
	return float64(int64(v*100)) / 100
}
