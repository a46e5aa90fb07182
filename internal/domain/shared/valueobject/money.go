package valueobject

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 code
type Currency string

const (
	EGP Currency = "EGP"
	USD Currency = "USD"
)

// Places is the precision prices are shown and rounded to
const Places int32 = 2

// ErrCurrencyMismatch is returned when combining amounts in two currencies
var ErrCurrencyMismatch = errors.New("currency mismatch")

// Money is an immutable amount in one currency. The zero value is zero EGP.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewMoney pairs an amount with a currency
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if currency == "" {
		return Money{}, errors.New("currency cannot be empty")
	}
	return Money{amount: amount, currency: currency}, nil
}

// ParseMoney reads a decimal string such as "129.90"
func ParseMoney(amount string, currency Currency) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	return NewMoney(d, currency)
}

// NewMoneyEGP wraps an amount in Egyptian pounds
func NewMoneyEGP(amount decimal.Decimal) Money {
	return Money{amount: amount, currency: EGP}
}

func ZeroEGP() Money { return NewMoneyEGP(decimal.Zero) }

// SumEGP totals plain decimal amounts as pounds
func SumEGP(amounts ...decimal.Decimal) Money {
	return NewMoneyEGP(decimal.Sum(decimal.Zero, amounts...))
}

func (m Money) Amount() decimal.Decimal { return m.amount }

func (m Money) Currency() Currency {
	if m.currency == "" {
		return EGP
	}
	return m.currency
}

func (m Money) IsZero() bool     { return m.amount.IsZero() }
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

func (m Money) combine(other Money, op func(a, b decimal.Decimal) decimal.Decimal) (Money, error) {
	if m.Currency() != other.Currency() {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.Currency(), other.Currency())
	}
	return Money{amount: op(m.amount, other.amount), currency: m.Currency()}, nil
}

// Add returns m + other
func (m Money) Add(other Money) (Money, error) {
	return m.combine(other, decimal.Decimal.Add)
}

// MustAdd is Add for amounts known to share a currency
func (m Money) MustAdd(other Money) Money {
	sum, err := m.Add(other)
	if err != nil {
		panic(err)
	}
	return sum
}

// Subtract returns m - other
func (m Money) Subtract(other Money) (Money, error) {
	return m.combine(other, decimal.Decimal.Sub)
}

// Times multiplies by a quantity
func (m Money) Times(qty int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty))), currency: m.currency}
}

// FloorZero clamps negative amounts to zero
func (m Money) FloorZero() Money {
	if m.amount.IsNegative() {
		return Money{amount: decimal.Zero, currency: m.currency}
	}
	return m
}

// Round rounds half away from zero
func (m Money) Round(places int32) Money {
	return Money{amount: m.amount.Round(places), currency: m.currency}
}

func (m Money) Equals(other Money) bool {
	return m.Currency() == other.Currency() && m.amount.Equal(other.amount)
}

// String formats as "129.90 EGP"
func (m Money) String() string {
	return m.amount.StringFixed(Places) + " " + string(m.Currency())
}

type moneyJSON struct {
	Amount   string   `json:"amount"`
	Currency Currency `json:"currency"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.amount.StringFixed(Places), Currency: m.Currency()})
}

// UnmarshalJSON accepts a missing currency as EGP
func (m *Money) UnmarshalJSON(data []byte) error {
	var v moneyJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Currency == "" {
		v.Currency = EGP
	}
	parsed, err := ParseMoney(v.Amount, v.Currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
