package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranav-1100/finagent/internal/app"
	"github.com/Pranav-1100/finagent/internal/common"
	"github.com/Pranav-1100/finagent/internal/interfaces"
	"github.com/Pranav-1100/finagent/internal/models"
	"github.com/Pranav-1100/finagent/internal/services/alert"
	"github.com/Pranav-1100/finagent/internal/services/analysis"
	"github.com/Pranav-1100/finagent/internal/services/portfolio"
	"github.com/Pranav-1100/finagent/internal/services/spending"
	"github.com/Pranav-1100/finagent/internal/storage"
	"github.com/Pranav-1100/finagent/internal/storage/memstore"
)

// stubGateway serves fixed quotes keyed by symbol.
type stubGateway struct {
	prices map[string]float64
}

func (g *stubGateway) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	symbol = models.NormalizeSymbol(symbol)
	price, ok := g.prices[symbol]
	if !ok || price <= 0 {
		return nil, interfaces.ErrQuoteUnavailable
	}
	return &models.Quote{Symbol: symbol, CurrentPrice: price, Timestamp: time.Now()}, nil
}

// newTestServer builds a Server over in-memory storage and a stub gateway.
func newTestServer(t *testing.T, prices map[string]float64) *Server {
	t.Helper()

	logger := common.NewSilentLogger()
	manager := storage.NewManagerWithStore(memstore.NewStore(), logger)
	t.Cleanup(func() { manager.Close() })

	gateway := &stubGateway{prices: prices}
	portfolioService := portfolio.NewService(manager, gateway, logger)

	a := &app.App{
		Config:           common.NewDefaultConfig(),
		Logger:           logger,
		Storage:          manager,
		QuoteGateway:     gateway,
		PortfolioService: portfolioService,
		AnalysisService:  analysis.NewService(portfolioService, logger),
		AlertService:     alert.NewService(manager, gateway, logger),
		SpendingService:  spending.NewService(manager, logger),
		StartupTime:      time.Now(),
	}

	return NewServer(a)
}

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func doRequest(t *testing.T, srv *Server, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestHandleVersion(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodGet, "/api/version", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp["version"])
}

func TestHoldingAddAndValuation(t *testing.T) {
	srv := newTestServer(t, map[string]float64{"AAPL": 274.00})

	rec := doRequest(t, srv, http.MethodPost, "/api/portfolios/default/holdings",
		jsonBody(t, map[string]interface{}{"symbol": "aapl", "quantity": 10, "price": 271.00}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(t, srv, http.MethodPost, "/api/portfolios/default/holdings",
		jsonBody(t, map[string]interface{}{"symbol": "AAPL", "quantity": 5, "price": 273.00}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, "/api/portfolios/default/valuation", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var valuation models.PortfolioValuation
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&valuation))
	require.Len(t, valuation.Holdings, 1)
	h := valuation.Holdings[0]
	assert.Equal(t, "AAPL", h.Symbol)
	assert.InDelta(t, 15.0, h.Quantity, 1e-9)
	assert.InDelta(t, 271.6667, h.AverageCost, 1e-3)
	assert.InDelta(t, 274.00, h.CurrentPrice, 1e-9)
	assert.False(t, h.QuoteUnavailable)
}

func TestHoldingAdd_InvalidQuantity(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/portfolios/default/holdings",
		jsonBody(t, map[string]interface{}{"symbol": "AAPL", "quantity": -3, "price": 100.0}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHoldingRemove_NotHeld(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodDelete, "/api/portfolios/default/holdings/TSLA", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHoldingRemove_Partial(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/portfolios/default/holdings",
		jsonBody(t, map[string]interface{}{"symbol": "MSFT", "quantity": 10, "price": 400.0}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, srv, http.MethodDelete, "/api/portfolios/default/holdings/MSFT?quantity=4", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var p models.Portfolio
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	h := p.FindHolding("MSFT")
	require.NotNil(t, h)
	assert.InDelta(t, 6.0, h.TotalQuantity(), 1e-9)
}

func TestPortfolioAnalysis(t *testing.T) {
	srv := newTestServer(t, map[string]float64{"AAPL": 100, "MSFT": 100})

	for _, symbol := range []string{"AAPL", "MSFT"} {
		rec := doRequest(t, srv, http.MethodPost, "/api/portfolios/default/holdings",
			jsonBody(t, map[string]interface{}{"symbol": symbol, "quantity": 10, "price": 100.0}))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, srv, http.MethodGet, "/api/portfolios/default/analysis", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var report models.RiskReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
	assert.Equal(t, 2, report.HoldingCount)
	assert.InDelta(t, 40.0, report.DiversificationScore, 1e-9)
	assert.InDelta(t, 100.0, report.RiskScore, 1e-9)
	assert.Equal(t, models.RatingNeedsImprovement, report.Rating)
}

func TestPortfolioRebalance_WithTargets(t *testing.T) {
	srv := newTestServer(t, map[string]float64{"AAPL": 100, "MSFT": 100})

	rec := doRequest(t, srv, http.MethodPost, "/api/portfolios/default/holdings",
		jsonBody(t, map[string]interface{}{"symbol": "AAPL", "quantity": 80, "price": 100.0}))
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doRequest(t, srv, http.MethodPost, "/api/portfolios/default/holdings",
		jsonBody(t, map[string]interface{}{"symbol": "MSFT", "quantity": 20, "price": 100.0}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, srv, http.MethodPost, "/api/portfolios/default/rebalance",
		jsonBody(t, map[string]interface{}{"targets": map[string]float64{"AAPL": 50, "MSFT": 50}}))
	require.Equal(t, http.StatusOK, rec.Code)

	var plan models.RebalancePlan
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&plan))
	assert.False(t, plan.IsBalanced)
	require.Len(t, plan.Suggestions, 2)
}

func TestPortfolioBenchmark(t *testing.T) {
	srv := newTestServer(t, map[string]float64{"AAPL": 105})

	rec := doRequest(t, srv, http.MethodPost, "/api/portfolios/default/holdings",
		jsonBody(t, map[string]interface{}{"symbol": "AAPL", "quantity": 10, "price": 100.0}))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, srv, http.MethodGet, "/api/portfolios/default/benchmark?period=1Y", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var comparison models.BenchmarkComparison
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&comparison))
	assert.Equal(t, "1Y", comparison.Period)
	assert.InDelta(t, 5.0, comparison.PortfolioReturn, 1e-9)
	assert.InDelta(t, 10.5, comparison.BenchmarkReturn, 1e-9)
	assert.InDelta(t, -5.5, comparison.Outperformance, 1e-9)
}

func TestAlertLifecycle(t *testing.T) {
	srv := newTestServer(t, map[string]float64{"AAPL": 170})

	rec := doRequest(t, srv, http.MethodPost, "/api/alerts",
		jsonBody(t, map[string]interface{}{"symbol": "AAPL", "condition": "above", "target_price": 160.0}))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Alert
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	require.NotEmpty(t, created.ID)

	rec = doRequest(t, srv, http.MethodPost, "/api/alerts/check", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.AlertCheckResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, 1, result.Checked)
	require.Len(t, result.Triggered, 1)
	assert.InDelta(t, 170.0, result.Triggered[0].CurrentPrice, 1e-9)

	rec = doRequest(t, srv, http.MethodDelete, "/api/alerts/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, srv, http.MethodDelete, "/api/alerts/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAlertCreate_InvalidCondition(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/alerts",
		jsonBody(t, map[string]interface{}{"symbol": "AAPL", "condition": "near", "target_price": 160.0}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExpensesAndSummary(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, e := range []map[string]interface{}{
		{"amount": 42.50, "category": "food"},
		{"amount": 17.50, "category": "Food"},
		{"amount": 1200.0, "category": "rent"},
	} {
		rec := doRequest(t, srv, http.MethodPost, "/api/expenses", jsonBody(t, e))
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec := doRequest(t, srv, http.MethodGet, "/api/expenses/summary", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary models.ExpenseSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 1260.0, summary.Total, 1e-9)
	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "rent", summary.Categories[0].Category)
	assert.Equal(t, "food", summary.Categories[1].Category)
	assert.InDelta(t, 60.0, summary.Categories[1].Total, 1e-9)
}

func TestSubscriptions(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodPost, "/api/subscriptions",
		jsonBody(t, map[string]interface{}{"name": "Netflix", "monthly_cost": 15.49}))
	require.Equal(t, http.StatusCreated, rec.Code)

	var sub models.Subscription
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sub))

	rec = doRequest(t, srv, http.MethodGet, "/api/subscriptions", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary models.SubscriptionSummary
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
	require.Len(t, summary.Subscriptions, 1)
	assert.InDelta(t, 15.49, summary.MonthlyTotal, 1e-9)
	assert.InDelta(t, 185.88, summary.AnnualTotal, 1e-2)

	rec = doRequest(t, srv, http.MethodDelete, "/api/subscriptions/"+sub.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodDelete, "/api/health", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestCORSPreflights(t *testing.T) {
	srv := newTestServer(t, nil)

	rec := doRequest(t, srv, http.MethodOptions, "/api/portfolios/default", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
