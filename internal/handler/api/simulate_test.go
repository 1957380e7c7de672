package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"StackSim/internal/domain/models"
	"StackSim/internal/usecase"
	applogger "StackSim/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPriceSource struct {
	series models.PriceSeries
	err    error
}

func (s *stubPriceSource) FetchDailyCloses(context.Context, string, time.Time, time.Time) (models.PriceSeries, error) {
	return s.series, s.err
}

type noopMetrics struct{}

func (noopMetrics) RecordSimulation(string, int)  {}
func (noopMetrics) RecordError(string)            {}
func (noopMetrics) RecordSeriesDays(string, int)  {}
func (noopMetrics) RecordLatency(string, float64) {}

// envelope mirrors the wire response: the HTTP layer always answers 200 and
// carries the effective status inside the body.
type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestHandler(t *testing.T) *SimulateHandler {
	t.Helper()

	logger, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	require.NoError(t, err)

	source := &stubPriceSource{
		series: models.NewPriceSeries([]models.PricePoint{
			{Date: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), Close: 10000},
			{Date: time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC), Close: 20000},
		}),
	}
	sim := usecase.NewSimulation(source, nil, noopMetrics{}, logger, "BTC-USD", 0.25)

	// Generous rate limit so only the dedicated test trips it.
	return NewSimulateHandler(logger, sim, nil, 100, 100)
}

func doSimulate(t *testing.T, h *SimulateHandler, query string) envelope {
	t.Helper()

	e := echo.New()
	h.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/api/simulate?"+query, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func decodeReport(t *testing.T, env envelope) models.ComparisonReport {
	t.Helper()

	var report models.ComparisonReport
	require.NoError(t, json.Unmarshal(env.Data, &report))
	return report
}

func TestSimulateSuccess(t *testing.T) {
	h := newTestHandler(t)

	env := doSimulate(t, h, "start_date=2020-01-01&end_date=2021-01-01&future_date=2022-01-01&amount=100&frequency=monthly&day_of_month=1&future_price=30000")
	require.Equal(t, http.StatusOK, env.Status)

	report := decodeReport(t, env)
	assert.Equal(t, "BTC-USD", report.Symbol)
	assert.Equal(t, 25, report.ScheduledBuys)
	assert.Equal(t, 2500.0, report.Result.TotalInvested)
	assert.Greater(t, report.Advantage, 0.0)
}

func TestSimulateDefaults(t *testing.T) {
	h := newTestHandler(t)

	// amount, frequency, day_of_month and future_price all default.
	env := doSimulate(t, h, "start_date=2020-01-01&end_date=2021-01-01&future_date=2022-01-01")
	require.Equal(t, http.StatusOK, env.Status)

	report := decodeReport(t, env)
	assert.Equal(t, "monthly", report.Frequency)
	assert.Equal(t, 100000.0, report.FuturePrice)
	assert.Equal(t, 500.0*25, report.Result.TotalInvested)
}

func TestSimulateMissingDates(t *testing.T) {
	h := newTestHandler(t)

	env := doSimulate(t, h, "amount=100")
	assert.Equal(t, http.StatusBadRequest, env.Status)
}

func TestSimulateBadOrdering(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		name  string
		query string
	}{
		{"start after end", "start_date=2021-01-01&end_date=2020-01-01&future_date=2022-01-01"},
		{"future before end", "start_date=2020-01-01&end_date=2021-01-01&future_date=2020-06-01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := doSimulate(t, h, tc.query)
			assert.Equal(t, http.StatusBadRequest, env.Status)
		})
	}
}

func TestSimulateRejectsBadFrequency(t *testing.T) {
	h := newTestHandler(t)

	env := doSimulate(t, h, "start_date=2020-01-01&end_date=2021-01-01&future_date=2022-01-01&frequency=hourly")
	assert.Equal(t, http.StatusBadRequest, env.Status)
}

func TestSimulateWeeklyUsesWeekday(t *testing.T) {
	h := newTestHandler(t)

	// 2020-01-01 is a Wednesday; weekday 2 means Wednesday, so the first
	// scheduled buy is the start date itself.
	env := doSimulate(t, h, "start_date=2020-01-01&end_date=2020-02-01&future_date=2020-03-01&frequency=weekly&weekday=2")
	require.Equal(t, http.StatusOK, env.Status)

	report := decodeReport(t, env)
	assert.Equal(t, "weekly", report.Frequency)
	// Wednesdays from 2020-01-01 through 2020-03-01: Jan 1,8,15,22,29 and
	// Feb 5,12,19,26.
	assert.Equal(t, 9, report.ScheduledBuys)
}

func TestSimulateRateLimited(t *testing.T) {
	logger, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	require.NoError(t, err)

	sim := usecase.NewSimulation(&stubPriceSource{}, nil, noopMetrics{}, logger, "BTC-USD", 0.25)
	h := NewSimulateHandler(logger, sim, nil, 1, 0.0001)

	query := "start_date=2020-01-01&end_date=2021-01-01&future_date=2022-01-01"
	first := doSimulate(t, h, query)
	require.Equal(t, http.StatusOK, first.Status)

	second := doSimulate(t, h, query)
	assert.Equal(t, http.StatusTooManyRequests, second.Status)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	e := echo.New()
	h.RegisterRoutes(e)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
