package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/guard"
)

var ErrRefreshRatesCommandIsNotConstructed = errors.New(
	"RefreshRatesCommand must be created via NewRefreshRatesCommand constructor",
)

// RefreshRatesCommand requests an on-demand exchange-rate refresh for one
// market. Force bypasses the auto-update toggle: a manual refresh from the
// tariff screen always runs, while the polling job sets force to false and
// is gated by the toggle.
type RefreshRatesCommand struct { //nolint:recvcheck //using for validation
	kind  ports.RateKind
	side  ports.RateSide
	force bool

	guard guard.ConstructorGuard
}

// NewRefreshRatesCommand creates the command.
func NewRefreshRatesCommand(kind ports.RateKind, side ports.RateSide, force bool) (RefreshRatesCommand, error) {
	cmd := RefreshRatesCommand{
		force: force,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setKind(kind),
		cmd.setSide(side),
	); err != nil {
		return RefreshRatesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefreshRatesCommand) Validate() error {
	return c.guard.Validate(ErrRefreshRatesCommandIsNotConstructed)
}

// Kind returns the market to refresh.
func (c RefreshRatesCommand) Kind() ports.RateKind {
	return c.kind
}

// Side returns the side of the quote to fetch.
func (c RefreshRatesCommand) Side() ports.RateSide {
	return c.side
}

// Force reports whether the auto-update toggle is bypassed.
func (c RefreshRatesCommand) Force() bool {
	return c.force
}

func (c *RefreshRatesCommand) setKind(kind ports.RateKind) error {
	if kind != ports.RateKindFiat && kind != ports.RateKindStablecoin {
		return fmt.Errorf("unknown rate kind %q", kind)
	}

	c.kind = kind
	return nil
}

func (c *RefreshRatesCommand) setSide(side ports.RateSide) error {
	if side != ports.RateSideBuy && side != ports.RateSideSell {
		return fmt.Errorf("unknown rate side %q", side)
	}

	c.side = side
	return nil
}
