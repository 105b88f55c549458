// Package dashboard provides the JSON API behind the FraudLens pages.
package dashboard

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abarnes/fraudlens/internal/charts"
	"github.com/abarnes/fraudlens/internal/feed"
	"github.com/abarnes/fraudlens/internal/logging"
	"github.com/abarnes/fraudlens/internal/metrics"
	"github.com/abarnes/fraudlens/internal/realtime"
	"github.com/abarnes/fraudlens/internal/risk"
	"github.com/abarnes/fraudlens/internal/sample"
	"github.com/abarnes/fraudlens/internal/traces"
	"github.com/abarnes/fraudlens/internal/validation"
	"github.com/abarnes/fraudlens/internal/views"
)

// Headline figures for the stat cards. The distribution sums to the total.
const (
	statTotalTransactions = 15847
	statLowRisk           = 14856
	statMediumRisk        = 649
	statHighRisk          = 342
	statDetectionRate     = 98.2
)

// Ledger batch size bounds for GET /v1/transactions.
const (
	defaultLedgerSize = 21
	maxLedgerSize     = 200
)

// highRiskPoolSize is how many biased records are fabricated before the
// preview filter and cap are applied.
const highRiskPoolSize = 8

// Handler provides the dashboard JSON endpoints.
type Handler struct {
	samples    *sample.Generator
	sim        *feed.Simulator
	hub        *realtime.Hub
	logger     *slog.Logger
	ledgerSize int
}

// NewHandler creates a dashboard handler. ledgerSize is the default batch
// size for the transactions ledger; values outside (0, maxLedgerSize] fall
// back to the default.
func NewHandler(samples *sample.Generator, sim *feed.Simulator, hub *realtime.Hub, logger *slog.Logger, ledgerSize int) *Handler {
	if ledgerSize <= 0 || ledgerSize > maxLedgerSize {
		ledgerSize = defaultLedgerSize
	}
	return &Handler{
		samples:    samples,
		sim:        sim,
		hub:        hub,
		logger:     logger,
		ledgerSize: ledgerSize,
	}
}

// RegisterRoutes sets up the dashboard API routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/overview", h.Overview)
	r.GET("/transactions", h.Transactions)
	r.GET("/transactions/high-risk", h.HighRisk)
	r.GET("/feed", h.Feed)
	r.GET("/charts", h.Charts)
	r.POST("/assess", h.Assess)
}

// Overview handles GET /v1/overview.
func (h *Handler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"totalTransactions": statTotalTransactions,
			"flagged":           statHighRisk,
			"underReview":       statMediumRisk,
			"detectionRate":     statDetectionRate,
		},
		"distribution": gin.H{
			"low":    statLowRisk,
			"medium": statMediumRisk,
			"high":   statHighRisk,
		},
	})
}

// Transactions handles GET /v1/transactions?limit=N.
func (h *Handler) Transactions(c *gin.Context) {
	count := h.parseLimit(c)

	records := h.samples.Generate(count)
	metrics.SampleBatchesTotal.WithLabelValues("ledger").Inc()

	c.JSON(http.StatusOK, gin.H{
		"transactions": views.Ledger(records),
		"count":        count,
	})
}

// HighRisk handles GET /v1/transactions/high-risk.
func (h *Handler) HighRisk(c *gin.Context) {
	records := h.samples.GenerateHighRisk(highRiskPoolSize)
	metrics.SampleBatchesTotal.WithLabelValues("high_risk").Inc()

	rows := views.HighRiskPreview(records)
	c.JSON(http.StatusOK, gin.H{
		"transactions": rows,
		"count":        len(rows),
	})
}

// Feed handles GET /v1/feed.
func (h *Handler) Feed(c *gin.Context) {
	events := h.sim.Feed().Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"events":   views.FeedItems(events),
		"count":    len(events),
		"capacity": h.sim.Feed().Capacity(),
		"running":  h.sim.Running(),
	})
}

// Charts handles GET /v1/charts.
func (h *Handler) Charts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"trend":            charts.Trend(),
		"riskDistribution": charts.RiskDistribution(),
		"performance":      charts.Performance(),
	})
}

// Assess handles POST /v1/assess.
func (h *Handler) Assess(c *gin.Context) {
	var req validation.AssessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "request body must be valid JSON",
		})
		return
	}

	in, fieldErrs := req.Validate()
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "validation_failed",
			"message": fieldErrs.Error(),
			"fields":  fieldErrs,
		})
		return
	}

	ctx, span := traces.StartSpan(c.Request.Context(), "risk.assess",
		traces.Amount(in.Amount),
	)
	res := risk.Assess(in)
	span.SetAttributes(
		traces.RiskScore(res.Score),
		traces.Classification(string(res.Classification)),
	)
	span.End()

	metrics.AssessmentsTotal.WithLabelValues(string(res.Classification)).Inc()
	logging.L(ctx).Info("transaction assessed",
		"score", res.Score,
		"classification", res.Classification,
	)

	view := views.NewAssessmentView(res)
	if h.hub != nil {
		h.hub.BroadcastAssessment(res.Score, gin.H{
			"score":          view.Score,
			"classification": view.Classification,
			"statusLine":     view.StatusLine,
		})
	}

	c.JSON(http.StatusOK, view)
}

// parseLimit reads ?limit= with the handler's default and upper bound.
func (h *Handler) parseLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return h.ledgerSize
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return h.ledgerSize
	}
	if n > maxLedgerSize {
		return maxLedgerSize
	}
	return n
}
