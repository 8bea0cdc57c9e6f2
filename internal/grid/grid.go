// Package grid lays out one category of payroll records as a positional
// sheet: one row per employee, a repeating group of columns per date, and
// row and column totals.
package grid

import (
	"fmt"
	"unicode/utf8"

	"fjacquet/insurance-summary/internal/models"

	"github.com/shopspring/decimal"
)

// Mode selects the layout variant.
type Mode string

const (
	// ModeDetailed writes additive formulas and totals.
	ModeDetailed Mode = "detailed"
	// ModeSimple writes pre-summed literals only, with no totals.
	ModeSimple Mode = "simple"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeDetailed, ModeSimple:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("unknown layout mode %q (want %q or %q)", s, ModeDetailed, ModeSimple)
	}
}

// Cell is one positioned value. Money cells get the accounting format.
type Cell struct {
	Col   int       `yaml:"col"`
	Value CellValue `yaml:"value"`
	Money bool      `yaml:"money,omitempty"`
}

// Row is one sheet row with its cells in column order.
type Row struct {
	Index int    `yaml:"row"`
	Cells []Cell `yaml:"cells"`
}

// ColumnWidth is a width hint in characters.
type ColumnWidth struct {
	Col   int
	Width float64
}

// Grid is the laid-out content of one sheet.
type Grid struct {
	Category  models.Category `yaml:"category"`
	Name      string          `yaml:"sheet"`
	Mode      Mode            `yaml:"mode"`
	Employees []string        `yaml:"employees"`
	Dates     []string        `yaml:"dates"`
	Rows      []Row           `yaml:"rows"`
}

// Cell returns the cell at (row, col).
func (g *Grid) Cell(row, col int) (Cell, bool) {
	for _, r := range g.Rows {
		if r.Index != row {
			continue
		}
		for _, c := range r.Cells {
			if c.Col == col {
				return c, true
			}
		}
		return Cell{}, false
	}
	return Cell{}, false
}

// TotalRow returns the index of the total row, or -1 in simple mode.
func (g *Grid) TotalRow() int {
	if g.Mode == ModeSimple {
		return -1
	}
	return FirstDataRow + len(g.Employees)
}

// EmployeeRow returns the row of the given employee, or -1.
func (g *Grid) EmployeeRow(employee string) int {
	for i, e := range g.Employees {
		if e == employee {
			return FirstDataRow + i
		}
	}
	return -1
}

// Columns returns width hints for every used column. Label columns are
// sized from their longest text.
func (g *Grid) Columns() []ColumnWidth {
	const (
		rowTotalWidth = 15.9
		amountWidth   = 13.3
		minTextWidth  = 8.0
		textPadding   = 2.0
	)

	longest := make(map[int]int)
	for _, r := range g.Rows {
		if r.Index == TitleRow {
			continue
		}
		for _, c := range r.Cells {
			if c.Value.Kind != KindLabel {
				continue
			}
			if n := utf8.RuneCountInString(c.Value.Text); n > longest[c.Col] {
				longest[c.Col] = n
			}
		}
	}
	textWidth := func(col int) float64 {
		w := float64(longest[col]) + textPadding
		if w < minTextWidth {
			return minTextWidth
		}
		return w
	}

	widths := []ColumnWidth{
		{Col: LabelCol, Width: textWidth(LabelCol)},
		{Col: RowTotalCol, Width: rowTotalWidth},
	}
	for i := range g.Dates {
		widths = append(widths,
			ColumnWidth{Col: AmountCol(i), Width: amountWidth},
			ColumnWidth{Col: NameCol(i), Width: textWidth(NameCol(i))},
			ColumnWidth{Col: DateCol(i), Width: textWidth(DateCol(i))},
		)
	}
	return widths
}

// Evaluate computes the numeric value of (row, col) the way a spreadsheet
// would: labels and empty cells count as zero inside ranges.
func (g *Grid) Evaluate(row, col int) (decimal.Decimal, error) {
	return g.evaluate(row, col, 0)
}

func (g *Grid) evaluate(row, col, depth int) (decimal.Decimal, error) {
	if depth > 4 {
		return decimal.Zero, fmt.Errorf("range nesting too deep at (%d,%d)", row, col)
	}
	c, ok := g.Cell(row, col)
	if !ok {
		return decimal.Zero, nil
	}
	if total, ok := c.Value.Total(); ok {
		return total, nil
	}
	if c.Value.Kind != KindRangeSum {
		return decimal.Zero, nil
	}

	sum := decimal.Zero
	rng := c.Value.Range
	for _, r := range g.Rows {
		for _, rc := range r.Cells {
			if !rng.Contains(r.Index, rc.Col) || (r.Index == row && rc.Col == col) {
				continue
			}
			v, err := g.evaluate(r.Index, rc.Col, depth+1)
			if err != nil {
				return decimal.Zero, err
			}
			sum = sum.Add(v)
		}
	}
	return sum, nil
}
