package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when a Money value was not created
// through NewMoney or MoneyFromDecimal.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or MoneyFromDecimal constructors")

// Money is a non-negative monetary amount. The currency is carried by
// context (orders hold source-currency prices and a settlement-currency
// final charge), not by the value itself.
//
// Amounts keep full decimal precision; rounding happens only at the display
// boundary via StringFixed, never inside computations.
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal string such as "10.50".
// Returns an error if the string is not a valid decimal or is negative.
func NewMoney(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return MoneyFromDecimal(d)
}

// MoneyFromDecimal creates a Money value from a decimal.
// Returns an error if the amount is negative.
func MoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount.String()))
	}
	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	m, _ := MoneyFromDecimal(decimal.Zero)
	return m
}

// Validate ensures the value was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal compares two amounts numerically.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// StringFixed renders the amount rounded to two decimal places.
// This is the only place rounding is applied.
func (m Money) StringFixed() string {
	return m.amount.StringFixed(2)
}

// String implements fmt.Stringer with full precision.
func (m Money) String() string {
	return m.amount.String()
}
