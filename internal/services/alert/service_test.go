package alert

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pranav-1100/finagent/internal/common"
	"github.com/Pranav-1100/finagent/internal/interfaces"
	"github.com/Pranav-1100/finagent/internal/models"
	"github.com/Pranav-1100/finagent/internal/storage"
	"github.com/Pranav-1100/finagent/internal/storage/memstore"
)

type stubGateway struct {
	prices map[string]float64
}

func (g *stubGateway) GetQuote(_ context.Context, symbol string) (*models.Quote, error) {
	price, ok := g.prices[symbol]
	if !ok || price <= 0 {
		return nil, fmt.Errorf("%s: %w", symbol, interfaces.ErrQuoteUnavailable)
	}
	return &models.Quote{Symbol: symbol, CurrentPrice: price}, nil
}

func newTestService(prices map[string]float64) *Service {
	logger := common.NewSilentLogger()
	manager := storage.NewManagerWithStore(memstore.NewStore(), logger)
	return NewService(manager, &stubGateway{prices: prices}, logger)
}

func TestSetAlert_Validation(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	_, err := svc.SetAlert(ctx, "", models.AlertAbove, 100)
	assert.ErrorContains(t, err, "symbol")

	_, err = svc.SetAlert(ctx, "AAPL", "between", 100)
	assert.ErrorContains(t, err, "condition")

	_, err = svc.SetAlert(ctx, "AAPL", models.AlertBelow, 0)
	assert.ErrorContains(t, err, "target price")
}

func TestSetAndListAlerts(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	first, err := svc.SetAlert(ctx, "aapl", models.AlertBelow, 160)
	require.NoError(t, err)
	assert.Equal(t, "AAPL", first.Symbol)
	require.NotEmpty(t, first.ID)

	_, err = svc.SetAlert(ctx, "MSFT", models.AlertAbove, 400)
	require.NoError(t, err)

	alerts, err := svc.ListAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "AAPL", alerts[0].Symbol)
	assert.Equal(t, "MSFT", alerts[1].Symbol)
}

func TestRemoveAlert(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()

	a, err := svc.SetAlert(ctx, "AAPL", models.AlertBelow, 160)
	require.NoError(t, err)

	require.NoError(t, svc.RemoveAlert(ctx, a.ID))

	alerts, err := svc.ListAlerts(ctx)
	require.NoError(t, err)
	assert.Empty(t, alerts)

	err = svc.RemoveAlert(ctx, a.ID)
	assert.ErrorIs(t, err, interfaces.ErrRecordNotFound)
}

func TestTriggered_StrictInequality(t *testing.T) {
	below := models.Alert{Symbol: "AAPL", Condition: models.AlertBelow, TargetPrice: 160}
	above := models.Alert{Symbol: "AAPL", Condition: models.AlertAbove, TargetPrice: 160}

	// Exactly on target triggers neither direction
	assert.False(t, Triggered(below, 160))
	assert.False(t, Triggered(above, 160))

	assert.True(t, Triggered(below, 159.99))
	assert.False(t, Triggered(below, 160.01))
	assert.True(t, Triggered(above, 160.01))
	assert.False(t, Triggered(above, 159.99))
}

func TestCheckAlerts(t *testing.T) {
	svc := newTestService(map[string]float64{
		"AAPL": 155, // below 160 → triggers
		"MSFT": 390, // not above 400 → no trigger
		// GOOG has no quote → skipped
	})
	ctx := context.Background()

	_, err := svc.SetAlert(ctx, "AAPL", models.AlertBelow, 160)
	require.NoError(t, err)
	_, err = svc.SetAlert(ctx, "MSFT", models.AlertAbove, 400)
	require.NoError(t, err)
	_, err = svc.SetAlert(ctx, "GOOG", models.AlertAbove, 100)
	require.NoError(t, err)

	result, err := svc.CheckAlerts(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Checked)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Triggered, 1)
	assert.Equal(t, "AAPL", result.Triggered[0].Alert.Symbol)
	assert.InDelta(t, 155, result.Triggered[0].CurrentPrice, 1e-9)

	// Alerts persist after firing; removal is an explicit command
	alerts, err := svc.ListAlerts(ctx)
	require.NoError(t, err)
	assert.Len(t, alerts, 3)
}

func TestCheckAlerts_TriggeredPreservesInputOrder(t *testing.T) {
	svc := newTestService(map[string]float64{"A": 1, "B": 1, "C": 1, "D": 1})
	ctx := context.Background()

	for _, symbol := range []string{"A", "B", "C", "D"} {
		_, err := svc.SetAlert(ctx, symbol, models.AlertBelow, 10)
		require.NoError(t, err)
	}

	result, err := svc.CheckAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, result.Triggered, 4)
	for i, want := range []string{"A", "B", "C", "D"} {
		assert.Equal(t, want, result.Triggered[i].Alert.Symbol)
	}
}
