// Package alert manages price alerts and evaluates them against quotes.
package alert

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Pranav-1100/finagent/internal/common"
	"github.com/Pranav-1100/finagent/internal/interfaces"
	"github.com/Pranav-1100/finagent/internal/models"
)

// SubjectAlert is the storage subject for alert records.
const SubjectAlert = "alert"

// Service implements AlertService
type Service struct {
	storage interfaces.StorageManager
	gateway interfaces.QuoteGateway
	logger  *common.Logger
}

// NewService creates a new alert service
func NewService(storage interfaces.StorageManager, gateway interfaces.QuoteGateway, logger *common.Logger) *Service {
	return &Service{
		storage: storage,
		gateway: gateway,
		logger:  logger,
	}
}

// SetAlert stores a new price alert. Alerts are immutable once created.
func (s *Service) SetAlert(ctx context.Context, symbol string, condition models.AlertCondition, targetPrice float64) (*models.Alert, error) {
	symbol = models.NormalizeSymbol(symbol)
	if symbol == "" {
		return nil, fmt.Errorf("symbol is required")
	}
	if !condition.Valid() {
		return nil, fmt.Errorf("condition must be 'above' or 'below', got '%s'", condition)
	}
	if targetPrice <= 0 {
		return nil, fmt.Errorf("target price must be positive")
	}

	alert := &models.Alert{
		ID:          uuid.NewString(),
		Symbol:      symbol,
		Condition:   condition,
		TargetPrice: targetPrice,
		CreatedAt:   time.Now(),
	}

	record, err := models.NewRecord(SubjectAlert, alert.ID, alert)
	if err != nil {
		return nil, fmt.Errorf("failed to encode alert: %w", err)
	}
	if err := s.storage.UserStorage().Put(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save alert: %w", err)
	}

	s.logger.Info().
		Str("symbol", symbol).
		Str("condition", string(condition)).
		Float64("target", targetPrice).
		Msg("Alert set")

	return alert, nil
}

// ListAlerts returns all stored alerts, oldest first.
func (s *Service) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	records, err := s.storage.UserStorage().List(ctx, SubjectAlert)
	if err != nil {
		return nil, err
	}

	alerts := make([]models.Alert, 0, len(records))
	for _, record := range records {
		var alert models.Alert
		if err := record.Decode(&alert); err != nil {
			return nil, fmt.Errorf("failed to decode alert '%s': %w", record.Key, err)
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}

// RemoveAlert deletes an alert by ID.
func (s *Service) RemoveAlert(ctx context.Context, id string) error {
	return s.storage.UserStorage().Delete(ctx, SubjectAlert, id)
}

// CheckAlerts evaluates every stored alert against current quotes. Quotes
// are fetched concurrently with one attempt per symbol; an unavailable
// quote skips the alert without a verdict. A price exactly equal to the
// target does not trigger — the comparison is strict in both directions.
func (s *Service) CheckAlerts(ctx context.Context) (*models.AlertCheckResult, error) {
	alerts, err := s.ListAlerts(ctx)
	if err != nil {
		return nil, err
	}

	prices := make([]float64, len(alerts)) // 0 means unavailable

	var wg sync.WaitGroup
	for i := range alerts {
		if s.gateway == nil {
			break
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			quote, err := s.gateway.GetQuote(ctx, alerts[i].Symbol)
			if err != nil {
				s.logger.Debug().Err(err).Str("symbol", alerts[i].Symbol).Msg("Quote unavailable, skipping alert")
				return
			}
			if quote.Available() {
				prices[i] = quote.CurrentPrice
			}
		}(i)
	}
	wg.Wait()

	result := &models.AlertCheckResult{
		Checked:   len(alerts),
		CheckedAt: time.Now(),
	}

	// Triggered order follows alert order, not quote arrival order
	for i, alert := range alerts {
		price := prices[i]
		if price <= 0 {
			result.Skipped++
			continue
		}
		if Triggered(alert, price) {
			result.Triggered = append(result.Triggered, models.TriggeredAlert{
				Alert:        alert,
				CurrentPrice: price,
			})
		}
	}

	if len(result.Triggered) > 0 {
		s.logger.Info().
			Int("checked", result.Checked).
			Int("triggered", len(result.Triggered)).
			Msg("Alerts triggered")
	}

	return result, nil
}

// Triggered reports whether the price trips the alert. Strict inequality:
// a price sitting exactly on the target is not a trigger.
func Triggered(alert models.Alert, currentPrice float64) bool {
	switch alert.Condition {
	case models.AlertBelow:
		return currentPrice < alert.TargetPrice
	case models.AlertAbove:
		return currentPrice > alert.TargetPrice
	default:
		return false
	}
}

// Ensure Service implements AlertService
var _ interfaces.AlertService = (*Service)(nil)
