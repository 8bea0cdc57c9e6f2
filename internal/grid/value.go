package grid

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind tags the variant held by a CellValue.
type Kind int

const (
	// KindLiteral is a single number.
	KindLiteral Kind = iota
	// KindLabel is a string.
	KindLabel
	// KindSum is an additive formula of literal terms.
	KindSum
	// KindRangeSum is a SUM over a rectangular range of the same sheet.
	KindRangeSum
)

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindLabel:
		return "label"
	case KindSum:
		return "sum"
	case KindRangeSum:
		return "range_sum"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Range is an inclusive rectangle of zero-based cells.
type Range struct {
	StartRow int
	StartCol int
	EndRow   int
	EndCol   int
}

// Contains reports whether (row, col) lies inside the range.
func (r Range) Contains(row, col int) bool {
	return row >= r.StartRow && row <= r.EndRow && col >= r.StartCol && col <= r.EndCol
}

// CellValue is the content of one grid cell. Only the fields of its Kind
// are meaningful.
type CellValue struct {
	Kind   Kind
	Number decimal.Decimal
	Text   string
	Terms  []decimal.Decimal
	Range  Range
}

// Literal is a plain number.
func Literal(d decimal.Decimal) CellValue {
	return CellValue{Kind: KindLiteral, Number: d}
}

// Label is a plain string.
func Label(s string) CellValue {
	return CellValue{Kind: KindLabel, Text: s}
}

// Sum keeps each term so the rendered cell shows what it adds up.
func Sum(terms ...decimal.Decimal) CellValue {
	t := make([]decimal.Decimal, len(terms))
	copy(t, terms)
	return CellValue{Kind: KindSum, Terms: t}
}

// RangeSum sums the cells of r.
func RangeSum(r Range) CellValue {
	return CellValue{Kind: KindRangeSum, Range: r}
}

// IsFormula reports whether the value renders as a spreadsheet formula.
func (v CellValue) IsFormula() bool {
	return v.Kind == KindSum || v.Kind == KindRangeSum
}

// Total returns the numeric value of literals and additive formulas.
// Range sums need the surrounding grid; see Grid.Evaluate.
func (v CellValue) Total() (decimal.Decimal, bool) {
	switch v.Kind {
	case KindLiteral:
		return v.Number, true
	case KindSum:
		return decimal.Sum(decimal.Zero, v.Terms...), true
	default:
		return decimal.Zero, false
	}
}

// Formula renders a formula value without the leading '='.
func (v CellValue) Formula() (string, error) {
	switch v.Kind {
	case KindSum:
		parts := make([]string, len(v.Terms))
		for i, t := range v.Terms {
			parts[i] = FormatTerm(t)
		}
		return strings.Join(parts, "+"), nil
	case KindRangeSum:
		from, err := CellRef(v.Range.StartRow, v.Range.StartCol)
		if err != nil {
			return "", err
		}
		to, err := CellRef(v.Range.EndRow, v.Range.EndCol)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("SUM(%s:%s)", from, to), nil
	default:
		return "", fmt.Errorf("%s value has no formula", v.Kind)
	}
}

// FormatTerm renders an amount with two decimals, or more when the amount
// carries more precision.
func FormatTerm(d decimal.Decimal) string {
	if d.Exponent() < -2 {
		return d.String()
	}
	return d.StringFixed(2)
}

// MarshalYAML renders the value the way a spreadsheet user would read it:
// literals as numbers, labels as text, formulas prefixed with '='.
func (v CellValue) MarshalYAML() (interface{}, error) {
	switch v.Kind {
	case KindLiteral:
		return FormatTerm(v.Number), nil
	case KindLabel:
		return v.Text, nil
	default:
		f, err := v.Formula()
		if err != nil {
			return nil, err
		}
		return "=" + f, nil
	}
}
