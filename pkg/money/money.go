// Package money formats raised amounts for badges.
//
// It is a value object that represents a monetary value in a specific currency.
// Invariants:
//   - Amount is always stored in the smallest currency unit (e.g., cents for USD).
//   - Currency code must be valid ISO 4217 (3 uppercase letters).
//   - Amount is never negative.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount represents a monetary amount as an integer in the
// smallest currency unit (e.g., cents for USD).
type Amount = int64

// ToCurrency converts a Code to a Currency with default decimals
func (c Code) ToCurrency() Currency {
	switch c {
	case JPY:
		return Currency{Code: c, Decimals: 0}
	case KWD:
		return Currency{Code: c, Decimals: 3}
	default:
		return Currency{Code: c, Decimals: 2}
	}
}

// IsValid checks if the currency code is valid
func (c Code) IsValid() bool {
	if len(c) != 3 {
		return false
	}
	return c[0] >= 'A' && c[0] <= 'Z' &&
		c[1] >= 'A' && c[1] <= 'Z' &&
		c[2] >= 'A' && c[2] <= 'Z'
}

// String returns the string representation of the currency code.
func (c Code) String() string {
	return string(c)
}

// Currency represents a monetary unit with its standard decimal places
type Currency struct {
	Code     Code // 3-letter ISO 4217 code (e.g., "USD")
	Decimals int  // Number of decimal places (0-8)
}

// IsValid checks if the currency is valid.
func (c Currency) IsValid() bool {
	return c.Decimals >= 0 && c.Decimals <= 8 && c.Code.IsValid()
}

// Money represents a monetary value in a specific currency.
type Money struct {
	amount   Amount
	currency Currency
}

// NewFromSmallestUnit creates a Money object from the smallest currency unit.
// The code is upper-cased before validation so upstream "usd" is accepted.
func NewFromSmallestUnit(amount int64, code string) (*Money, error) {
	c := Code(strings.ToUpper(strings.TrimSpace(code)))
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	if amount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeAmount, amount)
	}
	return &Money{amount: amount, currency: c.ToCurrency()}, nil
}

// Amount returns the amount of the Money object in the smallest currency unit.
func (m *Money) Amount() Amount {
	return m.amount
}

// Currency returns the currency of the Money object.
func (m *Money) Currency() Currency {
	return m.currency
}

// IsZero returns true if the Money is nil or its amount is zero.
func (m *Money) IsZero() bool {
	return m == nil || m.amount == 0
}

// String returns a string representation of the Money object.
func (m *Money) String() string {
	return m.major(true) + " " + string(m.currency.Code)
}

// Display renders the amount the way badges show it: "$1,500" or
// "1,500.25 SEK". Whole units drop the fractional part.
func (m *Money) Display() string {
	figure := m.major(false)
	if sym, ok := symbols[m.currency.Code]; ok {
		return sym + figure
	}
	return figure + " " + string(m.currency.Code)
}

// major formats the amount in major units with thousands separators.
// With full set, the fraction is always printed with the currency's decimals.
func (m *Money) major(full bool) string {
	d := m.currency.Decimals
	unit := int64(1)
	for range d {
		unit *= 10
	}
	whole := m.amount / unit
	frac := m.amount % unit

	out := groupThousands(strconv.FormatInt(whole, 10))
	if d == 0 || (!full && frac == 0) {
		return out
	}
	return fmt.Sprintf("%s.%0*d", out, d, frac)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
