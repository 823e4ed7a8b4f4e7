package kernel

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// centsPlaces is the precision of every persisted or returned amount.
const centsPlaces = 2

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or NewMoneyFromString")

// Money is a non-negative amount in the catalog currency. It is backed by
// decimal.Decimal so that products of prices and quantities stay exact;
// rounding happens only through RoundToCents and RoundToUnit.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromString("10.00")
//	lineTotal := price.Multiply(3)   // 30.00
//	withTax := lineTotal.Inflate(decimal.RequireFromString("0.15")).RoundToCents() // 34.50
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney wraps a decimal amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}

	return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
}

// NewMoneyFromString parses a textual amount such as "15.79".
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return NewMoney(amount)
}

// ZeroMoney returns a constructed zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, guard: guard.NewConstructorGuard()}
}

// Validate returns ErrMoneyIsNotConstructed for the zero value.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the exact decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount), guard: m.guard}
}

// Multiply returns m × quantity without rounding.
func (m Money) Multiply(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))), guard: m.guard}
}

// Inflate returns m × (1 + rate) without rounding.
func (m Money) Inflate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(1).Add(rate)), guard: m.guard}
}

// RoundToCents rounds half away from zero to two decimal places.
func (m Money) RoundToCents() Money {
	return Money{amount: m.amount.Round(centsPlaces), guard: m.guard}
}

// RoundToUnit rounds to a whole unit using banker's rounding (half to even).
func (m Money) RoundToUnit() int64 {
	return m.amount.RoundBank(0).IntPart()
}

// IsEqual compares amounts numerically, so 30 equals 30.00.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String formats the amount with two decimals.
func (m Money) String() string {
	return m.amount.StringFixed(centsPlaces)
}
