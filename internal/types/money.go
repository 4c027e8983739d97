// Package types implements special types for the comptes backend.
package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol is appended to formatted amounts. The backend manages a
// single currency, only its symbol is configurable.
var CurrencySymbol = "€"

// ErrMoneyFormat is returned when a string cannot be parsed as an amount.
var ErrMoneyFormat = errors.New("the amount does not match the expected format")

// Money is an exact amount of money as an integer count of cents.
//
// Money is a plain integer type, so ==, < and > compare amounts directly.
// All operations return new values, a Money is never mutated.
type Money int64

// amountPattern matches "units,cents" with an optional sign. Both the
// units and the cents may be empty, the separator is mandatory.
var amountPattern = regexp.MustCompile(`^(-?)(\d*),(\d*)`)

// spaceReplacer removes the space characters banks and spreadsheets like
// to put into amounts: ordinary spaces, narrow no-break spaces and
// no-break spaces.
var spaceReplacer = strings.NewReplacer(" ", "", "\u202f", "", "\u00a0", "")

// ParseMoney parses an amount from a string with a comma separator.
// The comma is fixed, like the formatting side the parser handles a
// single locale.
//
// A missing units part is read as 0, a missing cents part as 00. The
// cents part is cut or right-padded to exactly two digits, so "3,5"
// parses as 3,50. Trailing characters after the amount, such as a
// currency symbol, are ignored.
func ParseMoney(s string) (Money, error) {
	s = spaceReplacer.Replace(s)

	match := amountPattern.FindStringSubmatch(s)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrMoneyFormat, s)
	}

	sign, units, cents := match[1], match[2], match[3]

	var value int64
	if units != "" {
		u, err := strconv.ParseInt(units, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMoneyFormat, s)
		}
		value = u * 100
	}

	// Exactly two cent digits: "5" means 50 cents, "555" is cut to 55
	if len(cents) > 2 {
		cents = cents[:2]
	}
	for len(cents) < 2 {
		cents += "0"
	}

	c, err := strconv.ParseInt(cents, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMoneyFormat, s)
	}
	value += c

	if sign == "-" {
		value = -value
	}

	return Money(value), nil
}

// MoneyFromMajorUnits converts an amount of major currency units to Money.
//
// The conversion goes through a decimal so that amounts like 19.99 do not
// lose a cent to binary float representation.
func MoneyFromMajorUnits(units float64) Money {
	return Money(decimal.NewFromFloat(units).Shift(2).IntPart())
}

// Add returns the sum of both amounts.
func (m Money) Add(n Money) Money {
	return m + n
}

// Sub returns the difference of both amounts.
func (m Money) Sub(n Money) Money {
	return m - n
}

// Div divides the amount by a count, truncating toward zero.
//
// The truncation is deliberate and loses the remainder cents. It is used
// for averages where callers accept the inexactness.
func (m Money) Div(n int64) Money {
	return Money(int64(m) / n)
}

// Equal reports whether both amounts are the same count of cents.
func (m Money) Equal(n Money) bool {
	return m == n
}

// IsPositive reports whether the amount is strictly positive.
func (m Money) IsPositive() bool {
	return m > 0
}

// String returns the amount with cents, e.g. "12 345 678,90 €".
func (m Money) String() string {
	sign, units, cents := m.split()
	return fmt.Sprintf("%s%s,%02d %s", sign, groupDigits(units), cents, CurrencySymbol)
}

// StringWithoutCents returns the amount without cents, e.g. "150 €".
func (m Money) StringWithoutCents() string {
	sign, units, _ := m.split()
	return fmt.Sprintf("%s%s %s", sign, groupDigits(units), CurrencySymbol)
}

// split separates the amount into the sign and the absolute units and
// cents values. The sign is applied to the formatted string exactly once.
func (m Money) split() (sign string, units, cents int64) {
	value := int64(m)
	if value < 0 {
		sign = "-"
		value = -value
	}

	return sign, value / 100, value % 100
}

// groupDigits formats the units in groups of three digits from the
// right, separated by single spaces.
func groupDigits(units int64) string {
	digits := strconv.FormatInt(units, 10)

	var b strings.Builder
	for i, d := range digits {
		if i != 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}

	return b.String()
}

// MarshalJSON implements the json.Marshaler interface.
// The amount is written in its formatted form, e.g. "1 234,56 €".
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The amount is expected as a string in a format accepted by ParseMoney.
func (m *Money) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	parsed, err := ParseMoney(value)
	if err != nil {
		return err
	}

	*m = parsed
	return nil
}
