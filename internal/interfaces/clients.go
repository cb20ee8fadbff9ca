// Package interfaces defines service contracts for finagent
package interfaces

import (
	"context"
	"errors"

	"github.com/Pranav-1100/finagent/internal/models"
)

// ErrQuoteUnavailable signals that no usable price exists for a symbol.
// This is a normal operating condition: valuation falls back to average
// cost and alert checks skip the symbol. Gateways wrap this sentinel so
// callers can distinguish it from transport misconfiguration.
var ErrQuoteUnavailable = errors.New("quote unavailable")

// QuoteGateway supplies current market prices. Implementations make a
// single attempt per call; retry policy, timeouts, and caching belong to
// the implementation, not its callers.
type QuoteGateway interface {
	// GetQuote returns the current quote for a symbol. A nil quote or an
	// error wrapping ErrQuoteUnavailable means the price is unknown.
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)
}
