package supply

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the currency all amounts are expressed in.
const Currency = money.USD

// fraction is the number of decimal places amounts are rounded to.
const fraction = 2

// Money represents a monetary value in Currency.
type Money struct {
	value decimal.Decimal // as major unit value
}

// M is a convenient factory for Money.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return Money{value: v}
	case float64:
		return Money{value: decimal.NewFromFloat(v)}
	case int:
		return Money{value: decimal.NewFromInt(int64(v))}
	case int64:
		return Money{value: decimal.NewFromInt(v)}
	default:
		panic("unsupported type")
	}
}

// ParseMoney parses a plain decimal number like "1.25" or "-0.5".
func ParseMoney(s string) (Money, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Money{value: v}, nil
}

func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) Add(n Money) Money            { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money            { return Money{value: m.value.Sub(n.value)} }
func (m Money) Round() Money                 { return Money{value: m.value.Round(fraction)} }
func (m Money) Mul(quantity int) Money       { return Money{value: m.value.Mul(decimal.NewFromInt(int64(quantity)))} }
func (m Money) Plain() string                { return m.value.String() }
func (m Money) Fixed() string                { return m.value.StringFixed(fraction) }
func (m Money) MarshalJSON() ([]byte, error) { return []byte(m.value.String()), nil }

// String returns the amount formatted for display, like "$1,234.50".
func (m Money) String() string {
	cur := *money.New(0, Currency).Currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Total returns round(unitPrice * quantity, 2), the amount of a transaction.
func Total(quantity int, unitPrice Money) Money {
	return unitPrice.Mul(quantity).Round()
}
