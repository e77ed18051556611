// Package price is the single place currency values are formatted for display
// and parsed back for comparison. Every component that needs a numeric price
// goes through Parse; every component that renders one goes through Format.
package price

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Currency is the display prefix applied by Format.
const Currency = "PKR"

// ErrNoPrice reports a missing or blank price value.
var ErrNoPrice = errors.New("price: value is missing")

// Format renders an amount as a display string, e.g. 130000 -> "PKR 130,000".
// Fraction digits are kept only when present so Parse(Format(v)) == v for any
// non-negative amount with at most two decimal places.
func Format(amount float64) string {
	return Currency + " " + group(strconv.FormatFloat(amount, 'f', -1, 64))
}

// Parse inverts Format. It strips the currency prefix and thousands
// separators and returns the numeric value. Raw numeric strings from the API
// ("130000", "130000.50") parse as well.
func Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrNoPrice
	}
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return 0, fmt.Errorf("price: no numeric value in %q", s)
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, fmt.Errorf("price: parse %q: %w", s, err)
	}
	return v, nil
}

// group inserts thousands separators into the integer part of a plain decimal
// string produced by strconv.FormatFloat.
func group(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	n := len(intPart)
	if n <= 3 {
		if hasFrac {
			return intPart + "." + frac
		}
		return intPart
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}
