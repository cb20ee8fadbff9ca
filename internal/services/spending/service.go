// Package spending tracks expenses and recurring subscriptions.
package spending

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Pranav-1100/finagent/internal/common"
	"github.com/Pranav-1100/finagent/internal/interfaces"
	"github.com/Pranav-1100/finagent/internal/models"
)

// Storage subjects for spending records.
const (
	SubjectExpense      = "expense"
	SubjectSubscription = "subscription"
)

// Service implements SpendingService
type Service struct {
	storage interfaces.StorageManager
	logger  *common.Logger
}

// NewService creates a new spending service
func NewService(storage interfaces.StorageManager, logger *common.Logger) *Service {
	return &Service{storage: storage, logger: logger}
}

// AddExpense records a one-off spend. A zero date means "now".
func (s *Service) AddExpense(ctx context.Context, amount float64, category, note string, date time.Time) (*models.Expense, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		category = "uncategorized"
	}
	if date.IsZero() {
		date = time.Now()
	}

	expense := &models.Expense{
		ID:       uuid.NewString(),
		Amount:   amount,
		Category: category,
		Note:     note,
		Date:     date,
	}

	record, err := models.NewRecord(SubjectExpense, expense.ID, expense)
	if err != nil {
		return nil, fmt.Errorf("failed to encode expense: %w", err)
	}
	if err := s.storage.UserStorage().Put(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	s.logger.Info().Float64("amount", amount).Str("category", category).Msg("Expense added")

	return expense, nil
}

// ListExpenses returns all expenses, oldest first.
func (s *Service) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	records, err := s.storage.UserStorage().List(ctx, SubjectExpense)
	if err != nil {
		return nil, err
	}

	expenses := make([]models.Expense, 0, len(records))
	for _, record := range records {
		var expense models.Expense
		if err := record.Decode(&expense); err != nil {
			return nil, fmt.Errorf("failed to decode expense '%s': %w", record.Key, err)
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

// ExpenseSummary totals expenses inside [from, to] by category. Zero
// bounds mean unbounded on that side.
func (s *Service) ExpenseSummary(ctx context.Context, from, to time.Time) (*models.ExpenseSummary, error) {
	expenses, err := s.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}

	summary := &models.ExpenseSummary{From: from, To: to}
	byCategory := make(map[string]*models.CategoryTotal)

	for _, e := range expenses {
		if !from.IsZero() && e.Date.Before(from) {
			continue
		}
		if !to.IsZero() && e.Date.After(to) {
			continue
		}

		summary.Total += e.Amount
		summary.Count++

		ct, ok := byCategory[e.Category]
		if !ok {
			ct = &models.CategoryTotal{Category: e.Category}
			byCategory[e.Category] = ct
		}
		ct.Total += e.Amount
		ct.Count++
	}

	for _, ct := range byCategory {
		summary.Categories = append(summary.Categories, *ct)
	}
	// Largest categories first, name as tiebreaker for stable output
	sort.Slice(summary.Categories, func(i, j int) bool {
		if summary.Categories[i].Total == summary.Categories[j].Total {
			return summary.Categories[i].Category < summary.Categories[j].Category
		}
		return summary.Categories[i].Total > summary.Categories[j].Total
	})

	return summary, nil
}

// AddSubscription records a recurring monthly charge.
func (s *Service) AddSubscription(ctx context.Context, name string, monthlyCost float64) (*models.Subscription, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if monthlyCost <= 0 {
		return nil, fmt.Errorf("monthly cost must be positive")
	}

	sub := &models.Subscription{
		ID:          uuid.NewString(),
		Name:        name,
		MonthlyCost: monthlyCost,
		CreatedAt:   time.Now(),
	}

	record, err := models.NewRecord(SubjectSubscription, sub.ID, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to encode subscription: %w", err)
	}
	if err := s.storage.UserStorage().Put(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save subscription: %w", err)
	}

	s.logger.Info().Str("name", name).Float64("monthly", monthlyCost).Msg("Subscription added")

	return sub, nil
}

// RemoveSubscription deletes a subscription by ID.
func (s *Service) RemoveSubscription(ctx context.Context, id string) error {
	return s.storage.UserStorage().Delete(ctx, SubjectSubscription, id)
}

// SubscriptionSummary lists subscriptions with monthly and annualized
// totals.
func (s *Service) SubscriptionSummary(ctx context.Context) (*models.SubscriptionSummary, error) {
	records, err := s.storage.UserStorage().List(ctx, SubjectSubscription)
	if err != nil {
		return nil, err
	}

	summary := &models.SubscriptionSummary{
		Subscriptions: make([]models.Subscription, 0, len(records)),
	}
	for _, record := range records {
		var sub models.Subscription
		if err := record.Decode(&sub); err != nil {
			return nil, fmt.Errorf("failed to decode subscription '%s': %w", record.Key, err)
		}
		summary.Subscriptions = append(summary.Subscriptions, sub)
		summary.MonthlyTotal += sub.MonthlyCost
	}
	summary.AnnualTotal = summary.MonthlyTotal * 12

	return summary, nil
}

// Ensure Service implements SpendingService
var _ interfaces.SpendingService = (*Service)(nil)
