// Package analysis derives risk, rebalancing, and benchmark results from
// portfolio valuations.
package analysis

import (
	"fmt"
	"time"

	"github.com/Pranav-1100/finagent/internal/models"
)

// Scoring constants. The diversification score is a deliberately simple
// count-based heuristic, not a variance or correlation model; callers and
// the dashboard rely on these exact values.
const (
	pointsPerHolding       = 20  // diversification: linear up to 5 holdings
	maxScore               = 100 //
	concentrationThreshold = 40  // single-position share that flags a weakness
	riskMultiplier         = 2   // risk score = maxConcentration * 2
)

// Allocations computes each holding's share of total portfolio value.
// When the portfolio value is zero every share is zero.
func Allocations(v *models.PortfolioValuation) []models.AllocationShare {
	shares := make([]models.AllocationShare, 0, len(v.Holdings))
	for _, h := range v.Holdings {
		share := models.AllocationShare{Symbol: h.Symbol, Value: h.TotalValue}
		if v.TotalValue > 0 {
			share.Pct = h.TotalValue / v.TotalValue * 100
		}
		shares = append(shares, share)
	}
	return shares
}

// DiversificationScore rates spread across holdings by count: 20 points
// per holding, capped at 100.
func DiversificationScore(count int) float64 {
	score := float64(count * pointsPerHolding)
	if score > maxScore {
		return maxScore
	}
	return score
}

// AnalyzeRisk scores a valuation for diversification and concentration and
// produces the qualitative rating and findings.
func AnalyzeRisk(v *models.PortfolioValuation) *models.RiskReport {
	allocations := Allocations(v)

	maxConcentration := 0.0
	for _, a := range allocations {
		if a.Pct > maxConcentration {
			maxConcentration = a.Pct
		}
	}

	diversification := DiversificationScore(len(v.Holdings))

	risk := maxConcentration * riskMultiplier
	if risk > maxScore {
		risk = maxScore
	}

	report := &models.RiskReport{
		PortfolioName:        v.PortfolioName,
		AnalysisDate:         time.Now(),
		HoldingCount:         len(v.Holdings),
		DiversificationScore: diversification,
		MaxConcentration:     maxConcentration,
		RiskScore:            risk,
		Rating:               rating(diversification, risk),
		Allocations:          allocations,
	}

	applyFindings(report, v)

	return report
}

// rating maps the two scores to a verdict. Checks run in fixed order so a
// portfolio qualifying for both tiers rates EXCELLENT.
func rating(diversification, risk float64) models.PortfolioRating {
	switch {
	case diversification > 70 && risk < 50:
		return models.RatingExcellent
	case diversification > 50 && risk < 70:
		return models.RatingGood
	default:
		return models.RatingNeedsImprovement
	}
}

// applyFindings runs the finding rules in declaration order. Rules are
// independent; every applicable rule fires.
func applyFindings(report *models.RiskReport, v *models.PortfolioValuation) {
	count := report.HoldingCount

	if count < 3 {
		report.Weaknesses = append(report.Weaknesses, fmt.Sprintf("Insufficient diversification: only %d holding(s)", count))
		report.Actions = append(report.Actions, "Add 2-3 more holdings from different sectors")
	}

	if count >= 5 {
		report.Strengths = append(report.Strengths, fmt.Sprintf("Well-diversified across %d holdings", count))
	}

	// Concentration findings are skipped entirely for a zero-value portfolio
	if v.TotalValue > 0 && report.MaxConcentration > concentrationThreshold {
		top := ""
		for _, a := range report.Allocations {
			if a.Pct == report.MaxConcentration {
				top = a.Symbol
				break
			}
		}
		report.Weaknesses = append(report.Weaknesses, fmt.Sprintf("%s is %.1f%% of the portfolio", top, report.MaxConcentration))
		report.Actions = append(report.Actions, fmt.Sprintf("Reduce %s to under 30%% of portfolio value", top))
	}
}
