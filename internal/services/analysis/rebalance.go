package analysis

import (
	"math"

	"github.com/Pranav-1100/finagent/internal/models"
)

// deviationThreshold is the drift, in percentage points, past which a
// holding earns a trade suggestion. Fixed by contract with the dashboard.
const deviationThreshold = 10.0

// PlanRebalance proposes whole-share trades that move each drifted holding
// toward its target weight. targets maps symbol to target percent; nil
// means equal weight across current holdings. Share counts floor on the
// REDUCE side and ceil on the INCREASE side so a suggestion never
// overshoots when selling and never under-buys.
func PlanRebalance(v *models.PortfolioValuation, targets map[string]float64) *models.RebalancePlan {
	plan := &models.RebalancePlan{
		PortfolioName: v.PortfolioName,
		TotalValue:    v.TotalValue,
		Allocations:   Allocations(v),
		IsBalanced:    true,
	}

	if len(v.Holdings) == 0 || v.TotalValue <= 0 {
		return plan
	}

	equalWeight := 100.0 / float64(len(v.Holdings))

	for i, h := range v.Holdings {
		currentPct := plan.Allocations[i].Pct

		targetPct := equalWeight
		if targets != nil {
			targetPct = targets[models.NormalizeSymbol(h.Symbol)]
		}

		deviation := math.Abs(currentPct - targetPct)
		if deviation > plan.MaxDeviation {
			plan.MaxDeviation = deviation
		}

		if deviation <= deviationThreshold {
			continue
		}
		if h.CurrentPrice <= 0 {
			// No usable price to size a trade with
			continue
		}

		targetValue := v.TotalValue * targetPct / 100
		suggestion := models.RebalanceSuggestion{
			Symbol:     h.Symbol,
			CurrentPct: currentPct,
			TargetPct:  targetPct,
			Deviation:  deviation,
		}
		if currentPct > targetPct {
			suggestion.Action = models.RebalanceReduce
			suggestion.Shares = int(math.Floor((h.TotalValue - targetValue) / h.CurrentPrice))
		} else {
			suggestion.Action = models.RebalanceIncrease
			suggestion.Shares = int(math.Ceil((targetValue - h.TotalValue) / h.CurrentPrice))
		}
		if suggestion.Shares > 0 {
			plan.Suggestions = append(plan.Suggestions, suggestion)
		}
	}

	plan.IsBalanced = plan.MaxDeviation < deviationThreshold

	return plan
}
