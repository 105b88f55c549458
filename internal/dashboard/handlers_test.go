package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abarnes/fraudlens/internal/feed"
	"github.com/abarnes/fraudlens/internal/sample"
	"github.com/abarnes/fraudlens/internal/views"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	samples := sample.New(sample.Config{Seed: 7})
	sim := feed.NewSimulator(feed.SimulatorConfig{
		Interval: time.Hour,
		Capacity: 10,
		Warmup:   5,
		Seed:     7,
	}, slog.New(slog.DiscardHandler), nil)

	h := NewHandler(samples, sim, nil, slog.New(slog.DiscardHandler), 21)
	r := gin.New()
	h.RegisterRoutes(r.Group("/v1"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestOverview(t *testing.T) {
	r := newTestRouter(t)
	w, resp := doJSON(t, r, "GET", "/v1/overview", "")

	require.Equal(t, http.StatusOK, w.Code)
	stats := resp["stats"].(map[string]any)
	dist := resp["distribution"].(map[string]any)
	assert.Equal(t, float64(15847), stats["totalTransactions"])
	assert.Equal(t, float64(342), stats["flagged"])
	total := dist["low"].(float64) + dist["medium"].(float64) + dist["high"].(float64)
	assert.Equal(t, stats["totalTransactions"], total)
}

func TestTransactionsDefaultBatch(t *testing.T) {
	r := newTestRouter(t)
	w, resp := doJSON(t, r, "GET", "/v1/transactions", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(21), resp["count"])
	assert.Len(t, resp["transactions"], 21)

	row := resp["transactions"].([]any)[0].(map[string]any)
	assert.NotEmpty(t, row["id"])
	assert.NotEmpty(t, row["location"], "ledger rows include the location column")
	assert.True(t, strings.HasPrefix(row["amount"].(string), "$"))
}

func TestTransactionsLimitParam(t *testing.T) {
	r := newTestRouter(t)

	_, resp := doJSON(t, r, "GET", "/v1/transactions?limit=5", "")
	assert.Len(t, resp["transactions"], 5)

	// Bad and oversized limits fall back to sane values.
	_, resp = doJSON(t, r, "GET", "/v1/transactions?limit=banana", "")
	assert.Len(t, resp["transactions"], 21)

	_, resp = doJSON(t, r, "GET", "/v1/transactions?limit=99999", "")
	assert.Len(t, resp["transactions"], maxLedgerSize)
}

func TestHighRiskPreview(t *testing.T) {
	r := newTestRouter(t)
	w, resp := doJSON(t, r, "GET", "/v1/transactions/high-risk", "")

	require.Equal(t, http.StatusOK, w.Code)
	rows := resp["transactions"].([]any)
	require.NotEmpty(t, rows)
	assert.LessOrEqual(t, len(rows), views.HighRiskPreviewLimit)
	for _, raw := range rows {
		row := raw.(map[string]any)
		assert.GreaterOrEqual(t, row["riskScore"].(float64), float64(70))
		_, hasLocation := row["location"]
		assert.False(t, hasLocation, "preview rows omit the location column")
	}
}

func TestFeedSnapshot(t *testing.T) {
	r := newTestRouter(t)
	w, resp := doJSON(t, r, "GET", "/v1/feed", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(5), resp["count"], "warmup fills the feed before the first tick")
	assert.Equal(t, float64(10), resp["capacity"])
	assert.Len(t, resp["events"], 5)

	item := resp["events"].([]any)[0].(map[string]any)
	assert.NotEmpty(t, item["id"])
	assert.NotEmpty(t, item["badge"])
}

func TestCharts(t *testing.T) {
	r := newTestRouter(t)
	w, resp := doJSON(t, r, "GET", "/v1/charts", "")

	require.Equal(t, http.StatusOK, w.Code)
	for _, key := range []string{"trend", "riskDistribution", "performance"} {
		require.Contains(t, resp, key)
	}
	dist := resp["riskDistribution"].(map[string]any)
	assert.Equal(t, "doughnut", dist["type"])
}

func TestAssessHighRisk(t *testing.T) {
	r := newTestRouter(t)
	body := `{"amount": 3500, "age": 30, "hour": 2, "location": "high", "device": "mobile", "payment": "other"}`
	w, resp := doJSON(t, r, "POST", "/v1/assess", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(80), resp["score"])
	assert.Equal(t, "high-risk", resp["classification"])
	assert.NotEmpty(t, resp["frames"])
	assert.Len(t, resp["factors"], 5)

	frames := resp["frames"].([]any)
	last := frames[len(frames)-1].(map[string]any)
	assert.Equal(t, resp["score"], last["value"], "countup ends on the exact score")
}

func TestAssessLowRisk(t *testing.T) {
	r := newTestRouter(t)
	body := `{"amount": 50, "age": 35, "hour": 14, "location": "low", "device": "other", "payment": "other"}`
	w, resp := doJSON(t, r, "POST", "/v1/assess", body)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), resp["score"])
	assert.Equal(t, "low-risk", resp["classification"])
}

func TestAssessValidationErrors(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, "POST", "/v1/assess", `{"age": 30}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "validation_failed", resp["error"])
	assert.NotEmpty(t, resp["fields"])

	w, _ = doJSON(t, r, "POST", "/v1/assess", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp = doJSON(t, r, "POST", "/v1/assess",
		`{"amount": -10, "age": 30, "hour": 12, "location": "low", "device": "other", "payment": "other"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := resp["fields"].([]any)
	require.Len(t, fields, 1)
	assert.Equal(t, "amount", fields[0].(map[string]any)["field"])
}
