package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranav-1100/finagent/internal/models"
)

// valuationOf builds a PortfolioValuation from (symbol, totalValue) pairs.
// Cost basis is irrelevant to risk scoring, so it mirrors value.
func valuationOf(positions ...models.EnrichedHolding) *models.PortfolioValuation {
	v := &models.PortfolioValuation{PortfolioName: "default"}
	for _, p := range positions {
		v.Holdings = append(v.Holdings, p)
		v.TotalValue += p.TotalValue
		v.TotalCost += p.TotalCost
	}
	v.TotalProfit = v.TotalValue - v.TotalCost
	return v
}

func pos(symbol string, value float64) models.EnrichedHolding {
	return models.EnrichedHolding{Symbol: symbol, TotalValue: value, TotalCost: value, CurrentPrice: 1}
}

func TestAnalyzeRisk_SingleHolding(t *testing.T) {
	report := AnalyzeRisk(valuationOf(pos("AAPL", 1000)))

	assert.Equal(t, 1, report.HoldingCount)
	assert.Equal(t, 20.0, report.DiversificationScore)
	assert.InDelta(t, 100.0, report.MaxConcentration, 1e-9)
	assert.Equal(t, 100.0, report.RiskScore)
	assert.Equal(t, models.RatingNeedsImprovement, report.Rating)
}

func TestDiversificationScore_MonotonicAndCapped(t *testing.T) {
	prev := 0.0
	for count := 0; count <= 8; count++ {
		score := DiversificationScore(count)
		assert.GreaterOrEqual(t, score, prev, "score must not decrease at count %d", count)
		prev = score
	}
	assert.Equal(t, 100.0, DiversificationScore(5))
	assert.Equal(t, 100.0, DiversificationScore(12))
}

func TestAnalyzeRisk_FiveEqualHoldingsIsExcellent(t *testing.T) {
	report := AnalyzeRisk(valuationOf(
		pos("AAPL", 200), pos("MSFT", 200), pos("GOOG", 200),
		pos("AMZN", 200), pos("NVDA", 200),
	))

	assert.Equal(t, 100.0, report.DiversificationScore)
	assert.InDelta(t, 20.0, report.MaxConcentration, 1e-9)
	assert.InDelta(t, 40.0, report.RiskScore, 1e-9)
	assert.Equal(t, models.RatingExcellent, report.Rating)
	assert.Contains(t, report.Strengths[0], "5 holdings")
}

func TestAnalyzeRisk_RatingOrderPrefersExcellent(t *testing.T) {
	// 4 equal holdings: diversification 80, risk exactly 50 — fails the
	// EXCELLENT risk bound, passes GOOD.
	report := AnalyzeRisk(valuationOf(
		pos("AAPL", 250), pos("MSFT", 250), pos("GOOG", 250), pos("AMZN", 250),
	))
	assert.Equal(t, 80.0, report.DiversificationScore)
	assert.InDelta(t, 50.0, report.RiskScore, 1e-9)
	assert.Equal(t, models.RatingGood, report.Rating)
}

func TestAnalyzeRisk_Findings(t *testing.T) {
	// Two holdings, one at 75% — both the count rule and the
	// concentration rule fire independently.
	report := AnalyzeRisk(valuationOf(pos("AAPL", 750), pos("MSFT", 250)))

	require.Len(t, report.Weaknesses, 2)
	assert.Contains(t, report.Weaknesses[0], "Insufficient diversification")
	assert.Contains(t, report.Weaknesses[1], "AAPL")
	require.Len(t, report.Actions, 2)
	assert.Contains(t, report.Actions[1], "under 30%")
	assert.Empty(t, report.Strengths)
}

func TestAnalyzeRisk_ZeroValuePortfolioSkipsConcentration(t *testing.T) {
	report := AnalyzeRisk(valuationOf(pos("AAPL", 0), pos("MSFT", 0)))

	assert.Zero(t, report.MaxConcentration)
	assert.Zero(t, report.RiskScore)
	// Only the holding-count weakness fires; no concentration finding
	require.Len(t, report.Weaknesses, 1)
	assert.Contains(t, report.Weaknesses[0], "Insufficient diversification")
}

func TestAnalyzeRisk_EmptyPortfolio(t *testing.T) {
	report := AnalyzeRisk(&models.PortfolioValuation{PortfolioName: "default"})

	assert.Zero(t, report.DiversificationScore)
	assert.Zero(t, report.RiskScore)
	assert.Equal(t, models.RatingNeedsImprovement, report.Rating)
}
