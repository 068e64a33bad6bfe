package bookstore

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency all catalog prices and ledger amounts
// are denominated in.
const DefaultCurrency = "CNY"

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// currency returns the money's currency metadata.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.code()).Currency()
}

func (m Money) code() string {
	if m.cur == "" {
		return DefaultCurrency
	}
	return m.cur
}

// String renders the value with the currency's fraction digits ("12.50").
func (m Money) String() string {
	return m.value.StringFixed(int32(m.currency().Fraction))
}

func (m Money) Currency() string             { return m.code() }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) MulQuantity(n int64) Money    { return Money{value: m.value.Mul(decimal.NewFromInt(n)), cur: m.cur} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// makes the "" currency totally weak.
func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// Cents returns the value shifted to the currency's minor unit, for
// fixed-record persistence. Values are validated to at most the
// currency fraction, so the shift is exact.
func (m Money) Cents() int64 {
	return m.value.Shift(int32(m.currency().Fraction)).IntPart()
}

// FromCents rebuilds a Money from its persisted minor-unit value.
func FromCents(c int64) Money {
	fraction := int32(money.New(0, DefaultCurrency).Currency().Fraction)
	return Money{value: decimal.New(c, -fraction), cur: DefaultCurrency}
}

// ParsePrice parses a non-negative price string with at most the
// currency's fraction digits. The syntax must already have passed
// validPrice; this enforces the value constraints.
func ParsePrice(s string) (Money, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	if v.IsNegative() {
		return Money{}, fmt.Errorf("invalid price %q: negative", s)
	}
	fraction := int32(money.New(0, DefaultCurrency).Currency().Fraction)
	if v.Exponent() < -fraction && !v.Equal(v.Round(fraction)) {
		return Money{}, fmt.Errorf("invalid price %q: more than %d decimal places", s, fraction)
	}
	return Money{value: v, cur: DefaultCurrency}, nil
}
