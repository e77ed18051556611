package price

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{500, "PKR 500"},
		{10000, "PKR 10,000"},
		{130000, "PKR 130,000"},
		{600000, "PKR 600,000"},
		{1234567, "PKR 1,234,567"},
		{1234.5, "PKR 1,234.5"},
		{99999.99, "PKR 99,999.99"},
		{0, "PKR 0"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(tc.amount), "Format(%v)", tc.amount)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"PKR 10,000", 10000},
		{"PKR 600,000", 600000},
		{"PKR 1,234.5", 1234.5},
		{"130000", 130000},
		{"130000.50", 130000.5},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in)
		require.NoError(t, err, "Parse(%q)", tc.in)
		assert.Equal(t, tc.want, got, "Parse(%q)", tc.in)
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("")
	require.ErrorIs(t, err, ErrNoPrice)

	_, err = Parse("   ")
	require.ErrorIs(t, err, ErrNoPrice)

	_, err = Parse("PKR")
	require.Error(t, err)

	_, err = Parse("1.2.3")
	require.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	for _, amount := range []float64{500, 999, 1000, 10000, 130000, 250000, 500000, 1234.5, 0.99} {
		got, err := Parse(Format(amount))
		require.NoError(t, err)
		assert.Equal(t, amount, got, "round trip for %v", amount)
	}
}
