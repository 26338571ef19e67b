//go:build !integration

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/analysis"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/corpus"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/model"
	"github.com/yoonjl-svg/exhibition-report-generator-v3/internal/store"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()

	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Migrate(context.Background()))

	engine := analysis.New(testAnalysisCfg())
	return buildServeMux(engine, testServeTable(), st)
}

func testServeTable() *corpus.Table {
	rec := func(title string, budget, visitors float64) model.Record {
		return model.Record{
			Title: title, Type: fptr(1),
			BudgetTotal:   fptr(budget),
			VisitorsTotal: fptr(visitors),
			Days:          fptr(30),
			ArtistsTotal:  fptr(10),
		}
	}
	return &corpus.Table{Records: []model.Record{
		rec("a", 80_000_000, 8000),
		rec("b", 100_000_000, 10000),
		rec("c", 120_000_000, 12000),
	}}
}

func TestServeMux_HealthEndpoint(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	var body map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &body)
	require.NoError(t, err)
	assert.Equal(t, "ok", body["status"])
}

func TestServeMux_Analyze(t *testing.T) {
	mux := newTestMux(t)

	payload := map[string]any{
		"record": map[string]any{
			"title":          "이번 전시",
			"budget_total":   70_000_000,
			"visitors_total": 11000,
		},
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Result model.Result `json:"result"`
		RunID  string       `json:"run_id"`
	}
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Result.Insights)
	assert.Empty(t, resp.RunID) // not saved
}

func TestServeMux_AnalyzeAndSave(t *testing.T) {
	mux := newTestMux(t)

	payload := map[string]any{
		"record": map[string]any{
			"title":          "이번 전시",
			"budget_total":   70_000_000,
			"visitors_total": 11000,
		},
		"save": true,
	}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		RunID string `json:"run_id"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.RunID)

	// The saved run is retrievable through the runs endpoints.
	req = httptest.NewRequest(http.MethodGet, "/api/runs/"+resp.RunID, nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var run model.Run
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &run))
	assert.Equal(t, "이번 전시", run.ExhibitionTitle)

	req = httptest.NewRequest(http.MethodGet, "/api/runs", nil)
	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), resp.RunID)
}

func TestServeMux_Analyze_InvalidJSON(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader([]byte("not json")))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid request body")
}

func TestServeMux_Analyze_MissingRecord(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader([]byte(`{"save":true}`)))
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "record is required")
}

func TestServeMux_RunNotFound(t *testing.T) {
	mux := newTestMux(t)

	req := httptest.NewRequest(http.MethodGet, "/api/runs/nonexistent", nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRateLimit(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(1), 1)
	handler := rateLimit(limiter, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	// Burst exhausted, second request within the same second is rejected.
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Contains(t, rr.Body.String(), "rate limit exceeded")
}
