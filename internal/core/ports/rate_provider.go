package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// RateKind selects which market a rate quote is for.
type RateKind string

const (
	RateKindFiat       RateKind = "fiat"
	RateKindStablecoin RateKind = "stablecoin"
)

// RateSide selects the buy or sell side of the quote.
type RateSide string

const (
	RateSideBuy  RateSide = "buy"
	RateSideSell RateSide = "sell"
)

// RateQuote is a single exchange-rate observation from a provider.
type RateQuote struct {
	Rate      decimal.Decimal
	Source    string
	Timestamp time.Time
}

// RateProvider supplies current exchange rates on demand. Implementations
// return errs.UpstreamUnavailableError when the provider cannot be reached;
// callers decide whether a fallback applies.
type RateProvider interface {
	Fetch(ctx context.Context, kind RateKind, side RateSide) (RateQuote, error)
}
