package interfaces

import (
	"context"
	"time"

	"github.com/Pranav-1100/finagent/internal/models"
)

// PortfolioService manages holdings and valuation for named portfolios.
type PortfolioService interface {
	// AddStock records a buy lot, creating the holding if needed
	AddStock(ctx context.Context, portfolio, symbol string, quantity, price float64) (*models.Holding, error)

	// RemoveStock reduces a holding FIFO; quantity 0 removes the whole position
	RemoveStock(ctx context.Context, portfolio, symbol string, quantity float64) (*models.Portfolio, error)

	// GetPortfolio returns the stored portfolio without market data
	GetPortfolio(ctx context.Context, portfolio string) (*models.Portfolio, error)

	// ValuePortfolio returns the portfolio enriched with current quotes
	ValuePortfolio(ctx context.Context, portfolio string) (*models.PortfolioValuation, error)
}

// AnalysisService derives risk, rebalancing, and benchmark results from a
// portfolio valuation.
type AnalysisService interface {
	// AnalyzeRisk scores diversification and concentration
	AnalyzeRisk(ctx context.Context, portfolio string) (*models.RiskReport, error)

	// PlanRebalance proposes trades toward the target allocation.
	// targets maps symbol to target percent; nil means equal weight.
	PlanRebalance(ctx context.Context, portfolio string, targets map[string]float64) (*models.RebalancePlan, error)

	// CompareBenchmark compares portfolio return to the reference index
	CompareBenchmark(ctx context.Context, portfolio, period string) (*models.BenchmarkComparison, error)

	// RenderAllocationChart renders the current allocation as a PNG donut
	RenderAllocationChart(ctx context.Context, portfolio string) ([]byte, error)
}

// AlertService manages price alerts and evaluates them against quotes.
type AlertService interface {
	SetAlert(ctx context.Context, symbol string, condition models.AlertCondition, targetPrice float64) (*models.Alert, error)
	ListAlerts(ctx context.Context) ([]models.Alert, error)
	RemoveAlert(ctx context.Context, id string) error

	// CheckAlerts evaluates all stored alerts against current quotes
	CheckAlerts(ctx context.Context) (*models.AlertCheckResult, error)
}

// SpendingService tracks expenses and subscriptions.
type SpendingService interface {
	AddExpense(ctx context.Context, amount float64, category, note string, date time.Time) (*models.Expense, error)
	ListExpenses(ctx context.Context) ([]models.Expense, error)
	ExpenseSummary(ctx context.Context, from, to time.Time) (*models.ExpenseSummary, error)

	AddSubscription(ctx context.Context, name string, monthlyCost float64) (*models.Subscription, error)
	RemoveSubscription(ctx context.Context, id string) error
	SubscriptionSummary(ctx context.Context) (*models.SubscriptionSummary, error)
}
