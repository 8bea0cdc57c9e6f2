// Package currencyutils reads monetary amounts stored as text in payroll
// reports.
package currencyutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var currencyMarks = regexp.MustCompile(`[$€£¥\s]|USD`)

// ParseAmount parses amounts as accounting exports write them: "1,234.50",
// "$5.00", "(12.00)" and "12.00-" are all accepted. Parenthesized and
// trailing-minus amounts are negative. An empty string is zero.
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	s := StandardizeAmount(amountStr)
	if s == "" {
		return decimal.Zero, nil
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}
	if strings.HasSuffix(s, "-") {
		negative = !negative
		s = strings.TrimSuffix(s, "-")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, nil
}

// StandardizeAmount strips currency marks, whitespace and thousands
// separators. A lone comma followed by one or two digits is read as a
// decimal separator.
func StandardizeAmount(amountStr string) string {
	s := currencyMarks.ReplaceAllString(amountStr, "")
	s = strings.ReplaceAll(s, "'", "")

	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		parts := strings.Split(s, ",")
		if len(parts) == 2 && len(strings.TrimRight(parts[1], ")-")) <= 2 {
			return parts[0] + "." + parts[1]
		}
	}
	return strings.ReplaceAll(s, ",", "")
}
