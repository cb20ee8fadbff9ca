package analysis

import (
	"math"
	"testing"

	"github.com/Pranav-1100/finagent/internal/models"
)

func approxEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

func holding(symbol string, quantity, price float64) models.EnrichedHolding {
	return models.EnrichedHolding{
		Symbol:       symbol,
		Quantity:     quantity,
		CurrentPrice: price,
		TotalValue:   quantity * price,
		TotalCost:    quantity * price,
	}
}

func TestPlanRebalance_BalancedPortfolio(t *testing.T) {
	v := valuationOf(
		holding("AAPL", 10, 50), // 500, 50%
		holding("MSFT", 5, 100), // 500, 50%
	)

	plan := PlanRebalance(v, nil)

	if !plan.IsBalanced {
		t.Error("equal-weight portfolio should be balanced")
	}
	if len(plan.Suggestions) != 0 {
		t.Errorf("suggestions = %d, want 0", len(plan.Suggestions))
	}
	if !approxEqual(plan.MaxDeviation, 0, 1e-9) {
		t.Errorf("maxDeviation = %.4f, want 0", plan.MaxDeviation)
	}
}

func TestPlanRebalance_DriftedPortfolio(t *testing.T) {
	// AAPL 80%, MSFT 20% against a 50/50 equal-weight target
	v := valuationOf(
		holding("AAPL", 80, 10), // 800
		holding("MSFT", 20, 10), // 200
	)

	plan := PlanRebalance(v, nil)

	if plan.IsBalanced {
		t.Error("30-point deviation should not be balanced")
	}
	if !approxEqual(plan.MaxDeviation, 30, 1e-9) {
		t.Errorf("maxDeviation = %.4f, want 30", plan.MaxDeviation)
	}
	if len(plan.Suggestions) != 2 {
		t.Fatalf("suggestions = %d, want 2", len(plan.Suggestions))
	}

	reduce := plan.Suggestions[0]
	if reduce.Symbol != "AAPL" || reduce.Action != models.RebalanceReduce {
		t.Errorf("suggestion[0] = %s %s, want AAPL REDUCE", reduce.Symbol, reduce.Action)
	}
	// excess = 800 - 500 = 300, price 10 → floor(30) = 30 shares
	if reduce.Shares != 30 {
		t.Errorf("reduce shares = %d, want 30", reduce.Shares)
	}

	increase := plan.Suggestions[1]
	if increase.Symbol != "MSFT" || increase.Action != models.RebalanceIncrease {
		t.Errorf("suggestion[1] = %s %s, want MSFT INCREASE", increase.Symbol, increase.Action)
	}
	// shortfall = 500 - 200 = 300, price 10 → ceil(30) = 30 shares
	if increase.Shares != 30 {
		t.Errorf("increase shares = %d, want 30", increase.Shares)
	}
}

func TestPlanRebalance_RoundingDirection(t *testing.T) {
	// Prices that do not divide evenly: REDUCE floors, INCREASE ceils
	v := valuationOf(
		holding("AAPL", 100, 7), // 700, 77.8%
		holding("MSFT", 20, 10), // 200, 22.2%
	)

	plan := PlanRebalance(v, nil)
	if len(plan.Suggestions) != 2 {
		t.Fatalf("suggestions = %d, want 2", len(plan.Suggestions))
	}

	// AAPL excess = 700 - 450 = 250 / 7 = 35.71 → 35
	if plan.Suggestions[0].Shares != 35 {
		t.Errorf("reduce shares = %d, want 35 (floor)", plan.Suggestions[0].Shares)
	}
	// MSFT shortfall = 450 - 200 = 250 / 10 = 25 → 25
	if plan.Suggestions[1].Shares != 25 {
		t.Errorf("increase shares = %d, want 25", plan.Suggestions[1].Shares)
	}
}

// Applying the suggested trades at current prices must strictly reduce the
// portfolio's maximum deviation.
func TestPlanRebalance_AppliedSuggestionsReduceDeviation(t *testing.T) {
	v := valuationOf(
		holding("AAPL", 90, 11),
		holding("MSFT", 10, 13),
		holding("GOOG", 40, 3),
	)

	plan := PlanRebalance(v, nil)
	if plan.IsBalanced {
		t.Fatal("fixture should start unbalanced")
	}

	// Apply each suggestion by adjusting quantity at current price
	applied := &models.PortfolioValuation{PortfolioName: v.PortfolioName}
	for _, h := range v.Holdings {
		adjusted := h
		for _, sug := range plan.Suggestions {
			if sug.Symbol != h.Symbol {
				continue
			}
			delta := float64(sug.Shares)
			if sug.Action == models.RebalanceReduce {
				delta = -delta
			}
			adjusted.Quantity += delta
			adjusted.TotalValue = adjusted.Quantity * adjusted.CurrentPrice
		}
		applied.Holdings = append(applied.Holdings, adjusted)
		applied.TotalValue += adjusted.TotalValue
	}

	after := PlanRebalance(applied, nil)
	if after.MaxDeviation >= plan.MaxDeviation {
		t.Errorf("maxDeviation did not shrink: before %.4f, after %.4f", plan.MaxDeviation, after.MaxDeviation)
	}
}

func TestPlanRebalance_SingleHoldingIsBalanced(t *testing.T) {
	// One holding: equal weight is 100%, deviation 0 — nothing to
	// rebalance against.
	plan := PlanRebalance(valuationOf(holding("AAPL", 10, 100)), nil)

	if !plan.IsBalanced {
		t.Error("single-holding portfolio must be balanced")
	}
	if len(plan.Suggestions) != 0 {
		t.Errorf("suggestions = %d, want 0", len(plan.Suggestions))
	}
}

func TestPlanRebalance_ExplicitTargets(t *testing.T) {
	v := valuationOf(
		holding("AAPL", 50, 10), // 500, 50%
		holding("MSFT", 50, 10), // 500, 50%
	)

	plan := PlanRebalance(v, map[string]float64{"AAPL": 70, "MSFT": 30})

	if plan.IsBalanced {
		t.Error("20-point deviation from explicit targets should not be balanced")
	}
	if len(plan.Suggestions) != 2 {
		t.Fatalf("suggestions = %d, want 2", len(plan.Suggestions))
	}
	if plan.Suggestions[0].Action != models.RebalanceIncrease {
		t.Errorf("AAPL action = %s, want INCREASE", plan.Suggestions[0].Action)
	}
	if plan.Suggestions[1].Action != models.RebalanceReduce {
		t.Errorf("MSFT action = %s, want REDUCE", plan.Suggestions[1].Action)
	}
}

func TestPlanRebalance_EmptyAndZeroValue(t *testing.T) {
	empty := PlanRebalance(&models.PortfolioValuation{PortfolioName: "default"}, nil)
	if !empty.IsBalanced || len(empty.Suggestions) != 0 {
		t.Error("empty portfolio must be balanced with no suggestions")
	}

	zero := PlanRebalance(valuationOf(pos("AAPL", 0)), nil)
	if !zero.IsBalanced {
		t.Error("zero-value portfolio must be balanced")
	}
}
