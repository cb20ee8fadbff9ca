package portfolio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Pranav-1100/finagent/internal/common"
	"github.com/Pranav-1100/finagent/internal/interfaces"
	"github.com/Pranav-1100/finagent/internal/models"
)

// SubjectPortfolio is the storage subject for portfolio records.
const SubjectPortfolio = "portfolio"

// Service implements PortfolioService
type Service struct {
	storage interfaces.StorageManager
	gateway interfaces.QuoteGateway
	logger  *common.Logger
}

// NewService creates a new portfolio service
func NewService(storage interfaces.StorageManager, gateway interfaces.QuoteGateway, logger *common.Logger) *Service {
	return &Service{
		storage: storage,
		gateway: gateway,
		logger:  logger,
	}
}

// load fetches a portfolio by name, returning an empty portfolio when none
// has been stored yet.
func (s *Service) load(ctx context.Context, name string) (*models.Portfolio, error) {
	record, err := s.storage.UserStorage().Get(ctx, SubjectPortfolio, name)
	if err != nil {
		if errors.Is(err, interfaces.ErrRecordNotFound) {
			now := time.Now()
			return &models.Portfolio{ID: name, Name: name, CreatedAt: now, UpdatedAt: now}, nil
		}
		return nil, fmt.Errorf("failed to load portfolio '%s': %w", name, err)
	}

	var p models.Portfolio
	if err := record.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio '%s': %w", name, err)
	}
	return &p, nil
}

func (s *Service) save(ctx context.Context, p *models.Portfolio) error {
	p.UpdatedAt = time.Now()
	record, err := models.NewRecord(SubjectPortfolio, p.Name, p)
	if err != nil {
		return fmt.Errorf("failed to encode portfolio '%s': %w", p.Name, err)
	}
	if err := s.storage.UserStorage().Put(ctx, record); err != nil {
		return fmt.Errorf("failed to save portfolio '%s': %w", p.Name, err)
	}
	return nil
}

// AddStock records a buy lot, creating the holding on first purchase.
func (s *Service) AddStock(ctx context.Context, portfolio, symbol string, quantity, price float64) (*models.Holding, error) {
	symbol = models.NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}

	p, err := s.load(ctx, portfolio)
	if err != nil {
		return nil, err
	}

	holding := p.FindHolding(symbol)
	if holding == nil {
		p.Holdings = append(p.Holdings, models.Holding{Symbol: symbol})
		holding = &p.Holdings[len(p.Holdings)-1]
	}

	if err := AddLot(holding, quantity, price); err != nil {
		return nil, err
	}

	if err := s.save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("portfolio", portfolio).
		Str("symbol", symbol).
		Float64("quantity", quantity).
		Float64("price", price).
		Msg("Stock added")

	return holding, nil
}

// RemoveStock reduces a position FIFO. A quantity of 0 removes the whole
// position; removing exactly the total quantity deletes the holding.
func (s *Service) RemoveStock(ctx context.Context, portfolio, symbol string, quantity float64) (*models.Portfolio, error) {
	symbol = models.NormalizeSymbol(symbol)

	p, err := s.load(ctx, portfolio)
	if err != nil {
		return nil, err
	}

	holding := p.FindHolding(symbol)
	if holding == nil {
		return nil, fmt.Errorf("%s: %w", symbol, ErrNoPosition)
	}

	if quantity == 0 {
		quantity = holding.TotalQuantity()
	}
	if err := ReduceQuantity(holding, quantity); err != nil {
		return nil, err
	}
	if len(holding.Lots) == 0 {
		p.RemoveHolding(symbol)
	}

	if err := s.save(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("portfolio", portfolio).
		Str("symbol", symbol).
		Float64("quantity", quantity).
		Msg("Stock removed")

	return p, nil
}

// GetPortfolio returns the stored portfolio without market data.
func (s *Service) GetPortfolio(ctx context.Context, portfolio string) (*models.Portfolio, error) {
	return s.load(ctx, portfolio)
}

// ValuePortfolio returns the portfolio enriched with current quotes.
func (s *Service) ValuePortfolio(ctx context.Context, portfolio string) (*models.PortfolioValuation, error) {
	p, err := s.load(ctx, portfolio)
	if err != nil {
		return nil, err
	}
	return EnrichAll(ctx, p, s.gateway, s.logger), nil
}

// Ensure Service implements PortfolioService
var _ interfaces.PortfolioService = (*Service)(nil)
