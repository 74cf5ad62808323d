package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		amountStr string
		expected  string
		hasError  bool
	}{
		{"Simple decimal", "123.45", "123.45", false},
		{"Negative decimal", "-123.45", "-123.45", false},
		{"Integer", "100", "100", false},
		{"Comma decimal separator", "123,45", "123.45", false},
		{"Negative comma decimal", "-45,50", "-45.5", false},
		{"Comma thousand separator", "1,234", "1234", false},
		{"Comma thousands with dot decimals", "1,234.56", "1234.56", false},
		{"Apostrophe thousand separator", "1'234.56", "1234.56", false},
		{"European format", "1.234,56", "1234.56", false},
		{"Euro symbol", "€123.45", "123.45", false},
		{"Dollar symbol", "$123.45", "123.45", false},
		{"Currency code", "CHF 1'234.50", "1234.5", false},
		{"Surrounding spaces", "  123.45  ", "123.45", false},
		{"Malformed decimal", "123.45.67", "", true},
		{"Non-numeric", "abc", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseAmount(tc.amountStr)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(result),
				"expected %s but got %s", tc.expected, result.String())
		})
	}
}

func TestParseAmount_Empty(t *testing.T) {
	for _, input := range []string{"", "   "} {
		_, err := ParseAmount(input)
		assert.ErrorIs(t, err, ErrEmptyAmount)
	}
}

func TestParseNonNegative(t *testing.T) {
	amount, err := ParseNonNegative("500")
	require.NoError(t, err)
	assert.True(t, amount.Equal(decimal.NewFromInt(500)))

	amount, err = ParseNonNegative("0")
	require.NoError(t, err)
	assert.True(t, amount.IsZero())

	_, err = ParseNonNegative("-1")
	assert.Error(t, err)

	_, err = ParseNonNegative("")
	assert.ErrorIs(t, err, ErrEmptyAmount)
}

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"123.45", "123.45"},
		{"1'234.56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"1 234,56", "1234.56"},
		{"CHF 99", "99"},
		{"EUR 10,5", "10.5"},
		{"1,234,567", "1234567"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, StandardizeAmount(tc.input))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount   decimal.Decimal
		currency string
		expected string
	}{
		{decimal.NewFromFloat(1234.5), "", "1234.50"},
		{decimal.NewFromFloat(1234.5), "CHF", "CHF 1234.50"},
		{decimal.NewFromFloat(1234.5), "chf", "CHF 1234.50"},
		{decimal.NewFromFloat(10), "EUR", "€10.00"},
		{decimal.NewFromFloat(-3.333), "USD", "$-3.33"},
		{decimal.NewFromFloat(7), "GBP", "£7.00"},
		{decimal.NewFromFloat(7), "SEK", "SEK 7.00"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatAmount(tc.amount, tc.currency))
		})
	}
}
