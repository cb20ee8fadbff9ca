package portfolio

import (
	"context"
	"sync"
	"time"

	"github.com/Pranav-1100/finagent/internal/common"
	"github.com/Pranav-1100/finagent/internal/interfaces"
	"github.com/Pranav-1100/finagent/internal/models"
)

// Enrich computes the valuation fields for one holding. When the quote is
// missing or carries a non-positive price, the current price falls back to
// average cost so profit/loss reads as zero instead of a false loss.
func Enrich(h *models.Holding, quote *models.Quote) models.EnrichedHolding {
	quantity := h.TotalQuantity()
	avgCost := h.AverageCost()

	currentPrice := avgCost
	unavailable := true
	if quote.Available() {
		currentPrice = quote.CurrentPrice
		unavailable = false
	}

	totalCost := avgCost * quantity
	totalValue := currentPrice * quantity
	profitLoss := totalValue - totalCost

	profitLossPct := 0.0
	if totalCost > 0 {
		profitLossPct = profitLoss / totalCost * 100
	}

	return models.EnrichedHolding{
		Symbol:           h.Symbol,
		Quantity:         quantity,
		AverageCost:      avgCost,
		CurrentPrice:     currentPrice,
		TotalCost:        totalCost,
		TotalValue:       totalValue,
		ProfitLoss:       profitLoss,
		ProfitLossPct:    profitLossPct,
		QuoteUnavailable: unavailable,
	}
}

// EnrichAll values every holding against current quotes. Quotes are fetched
// concurrently, one attempt per symbol; a failure for one symbol never
// aborts the batch, it just falls back per Enrich. Output order matches
// portfolio order regardless of quote arrival order.
func EnrichAll(ctx context.Context, p *models.Portfolio, gateway interfaces.QuoteGateway, logger *common.Logger) *models.PortfolioValuation {
	quotes := make([]*models.Quote, len(p.Holdings))

	if gateway != nil && len(p.Holdings) > 0 {
		var wg sync.WaitGroup
		for i := range p.Holdings {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				quote, err := gateway.GetQuote(ctx, p.Holdings[i].Symbol)
				if err != nil {
					// Expected condition, not an error to the user
					logger.Debug().Err(err).Str("symbol", p.Holdings[i].Symbol).Msg("Quote unavailable, using average cost")
					return
				}
				quotes[i] = quote
			}(i)
		}
		wg.Wait()
	}

	valuation := &models.PortfolioValuation{
		PortfolioName: p.Name,
		ValuationDate: time.Now(),
		Holdings:      make([]models.EnrichedHolding, 0, len(p.Holdings)),
	}

	for i := range p.Holdings {
		enriched := Enrich(&p.Holdings[i], quotes[i])
		valuation.Holdings = append(valuation.Holdings, enriched)
		valuation.TotalCost += enriched.TotalCost
		valuation.TotalValue += enriched.TotalValue
	}

	valuation.TotalProfit = valuation.TotalValue - valuation.TotalCost
	if valuation.TotalCost > 0 {
		valuation.TotalProfitPct = valuation.TotalProfit / valuation.TotalCost * 100
	}

	return valuation
}
