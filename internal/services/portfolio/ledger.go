// Package portfolio implements the lot ledger, valuation engine, and
// portfolio management service.
package portfolio

import (
	"errors"

	"github.com/Pranav-1100/finagent/internal/models"
)

// Ledger misuse errors. These indicate caller errors and are surfaced
// immediately rather than recovered internally.
var (
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInvalidPrice         = errors.New("price must be positive")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
	ErrEmptyHolding         = errors.New("holding has no lots")
	ErrNoPosition           = errors.New("no position in symbol")
)

// quantityEpsilon absorbs float64 residue when comparing lot quantities.
const quantityEpsilon = 1e-9

// AddLot appends a purchase lot to the holding. The lot is immutable once
// recorded; repeat buys never overwrite earlier purchase prices.
func AddLot(h *models.Holding, quantity, price float64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	h.Lots = append(h.Lots, models.Lot{Quantity: quantity, Price: price})
	return nil
}

// AverageCost returns the quantity-weighted average purchase price.
func AverageCost(h *models.Holding) (float64, error) {
	if len(h.Lots) == 0 {
		return 0, ErrEmptyHolding
	}
	return h.AverageCost(), nil
}

// TotalQuantity returns the sum of lot quantities.
func TotalQuantity(h *models.Holding) float64 {
	return h.TotalQuantity()
}

// ReduceQuantity removes quantity from the holding, consuming lots oldest
// first (FIFO). A partially consumed lot keeps its original per-unit price.
// Reducing the full quantity leaves the holding with no lots; the caller is
// responsible for removing it from the portfolio.
func ReduceQuantity(h *models.Holding, quantity float64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	total := h.TotalQuantity()
	if quantity > total+quantityEpsilon {
		return ErrInsufficientQuantity
	}

	remaining := quantity
	kept := h.Lots[:0]
	for _, lot := range h.Lots {
		if remaining <= quantityEpsilon {
			kept = append(kept, lot)
			continue
		}
		if lot.Quantity <= remaining+quantityEpsilon {
			remaining -= lot.Quantity
			continue
		}
		lot.Quantity -= remaining
		remaining = 0
		kept = append(kept, lot)
	}
	if len(kept) == 0 {
		h.Lots = nil
	} else {
		h.Lots = kept
	}
	return nil
}
