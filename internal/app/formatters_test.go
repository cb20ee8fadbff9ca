package app

import (
	"strings"
	"testing"
	"time"

	"github.com/Pranav-1100/finagent/internal/models"
)

func TestFormatValuation_Empty(t *testing.T) {
	out := formatValuation(&models.PortfolioValuation{PortfolioName: "default"})
	if !strings.Contains(out, "empty") {
		t.Errorf("empty portfolio message missing, got %q", out)
	}
}

func TestFormatValuation_MarksUnavailableQuotes(t *testing.T) {
	v := &models.PortfolioValuation{
		PortfolioName: "default",
		ValuationDate: time.Now(),
		Holdings: []models.EnrichedHolding{
			{Symbol: "AAPL", Quantity: 10, AverageCost: 271, CurrentPrice: 274, TotalCost: 2710, TotalValue: 2740, ProfitLoss: 30, ProfitLossPct: 1.107},
			{Symbol: "ZZZZ", Quantity: 5, AverageCost: 50, CurrentPrice: 50, TotalCost: 250, TotalValue: 250, QuoteUnavailable: true},
		},
		TotalCost:  2960,
		TotalValue: 2990,
	}

	out := formatValuation(v)
	if !strings.Contains(out, "AAPL") || !strings.Contains(out, "ZZZZ") {
		t.Fatalf("holdings missing from output:\n%s", out)
	}
	if !strings.Contains(out, "$50.00*") {
		t.Errorf("unavailable quote not starred:\n%s", out)
	}
	if !strings.Contains(out, "no live quote") {
		t.Errorf("fallback footnote missing:\n%s", out)
	}
}

func TestFormatRiskReport(t *testing.T) {
	r := &models.RiskReport{
		PortfolioName:        "default",
		HoldingCount:         1,
		DiversificationScore: 20,
		MaxConcentration:     100,
		RiskScore:            100,
		Rating:               models.RatingNeedsImprovement,
		Allocations:          []models.AllocationShare{{Symbol: "AAPL", Value: 2740, Pct: 100}},
		Weaknesses:           []string{"Portfolio concentrated in one position"},
	}

	out := formatRiskReport(r)
	for _, want := range []string{"NEEDS_IMPROVEMENT", "20/100", "100/100", "Weaknesses"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatRebalancePlan_Balanced(t *testing.T) {
	p := &models.RebalancePlan{
		PortfolioName: "default",
		TotalValue:    1000,
		Allocations:   []models.AllocationShare{{Symbol: "AAPL", Value: 500, Pct: 50}, {Symbol: "MSFT", Value: 500, Pct: 50}},
		MaxDeviation:  0,
		IsBalanced:    true,
	}

	out := formatRebalancePlan(p)
	if !strings.Contains(out, "balanced") {
		t.Errorf("balanced message missing:\n%s", out)
	}
	if strings.Contains(out, "| REDUCE |") || strings.Contains(out, "| INCREASE |") {
		t.Errorf("balanced plan should not list trades:\n%s", out)
	}
}

func TestFormatBenchmark_FallbackPeriodNoted(t *testing.T) {
	b := &models.BenchmarkComparison{
		Period:          "1Y",
		RequestedPeriod: "5Y",
		PortfolioReturn: 5.0,
		BenchmarkReturn: 10.5,
		Outperformance:  -5.5,
	}

	out := formatBenchmark(b)
	if !strings.Contains(out, "'5Y' is not supported") {
		t.Errorf("fallback note missing:\n%s", out)
	}
	if !strings.Contains(out, "trailing the index") {
		t.Errorf("verdict missing:\n%s", out)
	}
}

func TestFormatAlertCheck(t *testing.T) {
	out := formatAlertCheck(&models.AlertCheckResult{})
	if !strings.Contains(out, "No alerts are set") {
		t.Errorf("empty message missing, got %q", out)
	}

	result := &models.AlertCheckResult{
		Checked: 3,
		Skipped: 1,
		Triggered: []models.TriggeredAlert{
			{Alert: models.Alert{ID: "a1", Symbol: "AAPL", Condition: models.AlertAbove, TargetPrice: 160}, CurrentPrice: 170},
		},
		CheckedAt: time.Now(),
	}
	out = formatAlertCheck(result)
	for _, want := range []string{"Checked 3", "1 skipped", "AAPL", "$170.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
