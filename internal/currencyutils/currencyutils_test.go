package currencyutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name      string
		amountStr string
		expected  string
		hasError  bool
	}{
		{"Empty string", "", "0", false},
		{"Blank", "   ", "0", false},
		{"Simple decimal", "123.45", "123.45", false},
		{"Negative decimal", "-123.45", "-123.45", false},
		{"Integer", "100", "100", false},
		{"Thousand separator", "1,234.56", "1234.56", false},
		{"Several separators", "1,234,567.00", "1234567", false},
		{"Comma decimal separator", "123,45", "123.45", false},
		{"Comma thousands only", "1,234", "1234", false},
		{"Apostrophe separator", "1'234.56", "1234.56", false},
		{"Dollar sign", "$123.45", "123.45", false},
		{"Currency code", "USD 123.45", "123.45", false},
		{"Parenthesized negative", "(12.00)", "-12", false},
		{"Parenthesized with symbol", "($1,200.50)", "-1200.5", false},
		{"Trailing minus", "12.00-", "-12", false},
		{"Spaces", "  123.45  ", "123.45", false},
		{"Malformed decimal", "123.45.67", "0", true},
		{"Non-numeric", "abc", "0", true},
		{"Unbalanced parenthesis", "(12.00", "0", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseAmount(tc.amountStr)

			if tc.hasError {
				assert.Error(t, err)
				assert.True(t, result.IsZero())
				return
			}
			assert.NoError(t, err)
			expected := decimal.RequireFromString(tc.expected)
			assert.True(t, expected.Equal(result), "Expected %s but got %s", expected, result)
		})
	}
}

func TestStandardizeAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"$1,234.56", "1234.56"},
		{"1 234,56", "1234.56"},
		{"(45,5)", "(45.5)"},
		{"1'000", "1000"},
		{"€ 7", "7"},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, StandardizeAmount(tc.input))
		})
	}
}
