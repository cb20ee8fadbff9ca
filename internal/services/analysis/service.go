package analysis

import (
	"context"

	"github.com/Pranav-1100/finagent/internal/common"
	"github.com/Pranav-1100/finagent/internal/interfaces"
	"github.com/Pranav-1100/finagent/internal/models"
)

// Service implements AnalysisService on top of the portfolio service's
// valuations. All computation is pure; this type only plumbs the valuation
// in.
type Service struct {
	portfolios interfaces.PortfolioService
	logger     *common.Logger
}

// NewService creates a new analysis service
func NewService(portfolios interfaces.PortfolioService, logger *common.Logger) *Service {
	return &Service{portfolios: portfolios, logger: logger}
}

func (s *Service) valuation(ctx context.Context, portfolio string) (*models.PortfolioValuation, error) {
	return s.portfolios.ValuePortfolio(ctx, portfolio)
}

// AnalyzeRisk scores diversification and concentration for a portfolio.
func (s *Service) AnalyzeRisk(ctx context.Context, portfolio string) (*models.RiskReport, error) {
	v, err := s.valuation(ctx, portfolio)
	if err != nil {
		return nil, err
	}
	report := AnalyzeRisk(v)
	s.logger.Debug().
		Str("portfolio", portfolio).
		Float64("diversification", report.DiversificationScore).
		Float64("risk", report.RiskScore).
		Str("rating", string(report.Rating)).
		Msg("Risk analysis complete")
	return report, nil
}

// PlanRebalance proposes trades toward the target allocation.
func (s *Service) PlanRebalance(ctx context.Context, portfolio string, targets map[string]float64) (*models.RebalancePlan, error) {
	v, err := s.valuation(ctx, portfolio)
	if err != nil {
		return nil, err
	}
	return PlanRebalance(v, targets), nil
}

// CompareBenchmark compares portfolio return to the reference index.
func (s *Service) CompareBenchmark(ctx context.Context, portfolio, period string) (*models.BenchmarkComparison, error) {
	v, err := s.valuation(ctx, portfolio)
	if err != nil {
		return nil, err
	}
	return CompareBenchmark(v, period), nil
}

// RenderAllocationChart renders the current allocation as a PNG donut.
func (s *Service) RenderAllocationChart(ctx context.Context, portfolio string) ([]byte, error) {
	v, err := s.valuation(ctx, portfolio)
	if err != nil {
		return nil, err
	}
	return RenderAllocationChart(v)
}

// Ensure Service implements AnalysisService
var _ interfaces.AnalysisService = (*Service)(nil)
