package models

import "time"

// PortfolioRating is the qualitative health verdict for a portfolio.
type PortfolioRating string

const (
	RatingExcellent        PortfolioRating = "EXCELLENT"
	RatingGood             PortfolioRating = "GOOD"
	RatingNeedsImprovement PortfolioRating = "NEEDS_IMPROVEMENT"
)

// AllocationShare is one holding's share of total portfolio value.
type AllocationShare struct {
	Symbol string  `json:"symbol"`
	Value  float64 `json:"value"`
	Pct    float64 `json:"pct"`
}

// RiskReport contains diversification and concentration analysis for a
// portfolio valuation.
type RiskReport struct {
	PortfolioName        string            `json:"portfolio_name"`
	AnalysisDate         time.Time         `json:"analysis_date"`
	HoldingCount         int               `json:"holding_count"`
	DiversificationScore float64           `json:"diversification_score"` // min(count*20, 100)
	MaxConcentration     float64           `json:"max_concentration"`     // largest single-position share, %
	RiskScore            float64           `json:"risk_score"`            // min(maxConcentration*2, 100)
	Rating               PortfolioRating   `json:"rating"`
	Allocations          []AllocationShare `json:"allocations"`
	Strengths            []string          `json:"strengths"`
	Weaknesses           []string          `json:"weaknesses"`
	Actions              []string          `json:"actions"`
}

// RebalanceAction is the direction of a suggested trade.
type RebalanceAction string

const (
	RebalanceReduce   RebalanceAction = "REDUCE"
	RebalanceIncrease RebalanceAction = "INCREASE"
)

// RebalanceSuggestion is a whole-share trade that moves one holding toward
// its target weight.
type RebalanceSuggestion struct {
	Symbol     string          `json:"symbol"`
	Action     RebalanceAction `json:"action"`
	Shares     int             `json:"shares"`
	CurrentPct float64         `json:"current_pct"`
	TargetPct  float64         `json:"target_pct"`
	Deviation  float64         `json:"deviation"`
}

// RebalancePlan is the planner output: current allocation, the deviation
// ceiling observed, and suggested trades for holdings drifted past the
// threshold.
type RebalancePlan struct {
	PortfolioName string                `json:"portfolio_name"`
	TotalValue    float64               `json:"total_value"`
	Allocations   []AllocationShare     `json:"allocations"`
	MaxDeviation  float64               `json:"max_deviation"`
	IsBalanced    bool                  `json:"is_balanced"`
	Suggestions   []RebalanceSuggestion `json:"suggestions"`
}

// BenchmarkComparison compares portfolio return against a reference index
// over a period.
type BenchmarkComparison struct {
	Period          string  `json:"period"`           // period actually used for the lookup
	RequestedPeriod string  `json:"requested_period"` // period the caller asked for
	PortfolioReturn float64 `json:"portfolio_return"`
	BenchmarkReturn float64 `json:"benchmark_return"`
	Outperformance  float64 `json:"outperformance"`
}
