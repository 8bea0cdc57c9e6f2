package models

import "strings"

// CellKind is the type of a cell read from the input workbook.
type CellKind int

const (
	CellBlank CellKind = iota
	CellString
	CellNumeric
	CellDate
)

// Cell is one typed input cell. Number is set for numeric cells, Text holds
// the displayable value for every kind.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// StringCell builds a string cell.
func StringCell(s string) Cell {
	return Cell{Kind: CellString, Text: s}
}

// NumberCell builds a numeric cell.
func NumberCell(n float64) Cell {
	return Cell{Kind: CellNumeric, Number: n}
}

// DateCell builds a date-formatted numeric cell with its rendered text.
func DateCell(serial float64, rendered string) Cell {
	return Cell{Kind: CellDate, Number: serial, Text: rendered}
}

// IsBlank reports whether the cell carries no value.
func (c Cell) IsBlank() bool {
	return c.Kind == CellBlank || (c.Kind == CellString && strings.TrimSpace(c.Text) == "")
}

// RawRow is one input row; Cells[i] is column i (A=0).
type RawRow struct {
	Index int
	Cells []Cell
}

// Cell returns column col, or a blank cell when the row is shorter.
func (r RawRow) Cell(col int) Cell {
	if col < 0 || col >= len(r.Cells) {
		return Cell{}
	}
	return r.Cells[col]
}
