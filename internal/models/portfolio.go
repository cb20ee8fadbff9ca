// Package models defines data structures for finagent
package models

import (
	"strings"
	"time"
)

// NormalizeSymbol uppercases and trims a ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Lot represents a single purchase event. Immutable once recorded.
type Lot struct {
	Quantity float64   `json:"quantity"`
	Price    float64   `json:"price"` // price per unit at purchase time
	Date     time.Time `json:"date,omitempty"`
}

// Holding represents a position in one ticker symbol. Lots are kept in
// purchase order; a Holding with no lots is removed from its Portfolio.
type Holding struct {
	Symbol string `json:"symbol"`
	Lots   []Lot  `json:"lots"`
}

// TotalQuantity returns the sum of all lot quantities.
func (h *Holding) TotalQuantity() float64 {
	total := 0.0
	for _, lot := range h.Lots {
		total += lot.Quantity
	}
	return total
}

// AverageCost returns the quantity-weighted average purchase price across
// lots, or 0 when the holding has no lots.
func (h *Holding) AverageCost() float64 {
	var totalCost, totalQty float64
	for _, lot := range h.Lots {
		totalCost += lot.Quantity * lot.Price
		totalQty += lot.Quantity
	}
	if totalQty <= 0 {
		return 0
	}
	return totalCost / totalQty
}

// Portfolio is an ordered set of holdings keyed by symbol. Order is the
// insertion order of symbols so valuation output is stable across calls.
type Portfolio struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Holdings  []Holding `json:"holdings"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FindHolding returns the holding for a symbol, or nil if not present.
func (p *Portfolio) FindHolding(symbol string) *Holding {
	symbol = NormalizeSymbol(symbol)
	for i := range p.Holdings {
		if p.Holdings[i].Symbol == symbol {
			return &p.Holdings[i]
		}
	}
	return nil
}

// RemoveHolding deletes the holding for a symbol, preserving the order of
// the remaining holdings. Returns false if the symbol was not held.
func (p *Portfolio) RemoveHolding(symbol string) bool {
	symbol = NormalizeSymbol(symbol)
	for i := range p.Holdings {
		if p.Holdings[i].Symbol == symbol {
			p.Holdings = append(p.Holdings[:i], p.Holdings[i+1:]...)
			return true
		}
	}
	return false
}

// Quote is an ephemeral market price for one symbol. A CurrentPrice of 0
// means the quote is unavailable and callers must fall back to average cost.
type Quote struct {
	Symbol       string    `json:"symbol"`
	CurrentPrice float64   `json:"current_price"`
	Change       float64   `json:"change,omitempty"`
	ChangePct    float64   `json:"change_pct,omitempty"`
	Timestamp    time.Time `json:"timestamp,omitempty"`
}

// Available reports whether the quote carries a usable price.
func (q *Quote) Available() bool {
	return q != nil && q.CurrentPrice > 0
}

// EnrichedHolding is the valuation output for one holding. Derived per
// request, never stored.
type EnrichedHolding struct {
	Symbol           string  `json:"symbol"`
	Quantity         float64 `json:"quantity"`
	AverageCost      float64 `json:"average_cost"`
	CurrentPrice     float64 `json:"current_price"`
	TotalCost        float64 `json:"total_cost"`
	TotalValue       float64 `json:"total_value"`
	ProfitLoss       float64 `json:"profit_loss"`
	ProfitLossPct    float64 `json:"profit_loss_pct"`
	QuoteUnavailable bool    `json:"quote_unavailable,omitempty"` // true when price fell back to average cost
}

// PortfolioValuation is the full valuation result: enriched holdings in
// portfolio order plus portfolio-level aggregates.
type PortfolioValuation struct {
	PortfolioName   string            `json:"portfolio_name"`
	ValuationDate   time.Time         `json:"valuation_date"`
	Holdings        []EnrichedHolding `json:"holdings"`
	TotalCost       float64           `json:"total_cost"`
	TotalValue      float64           `json:"total_value"`
	TotalProfit     float64           `json:"total_profit"`
	TotalProfitPct  float64           `json:"total_profit_pct"`
}
