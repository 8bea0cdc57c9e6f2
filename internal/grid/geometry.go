package grid

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet geometry. Rows and columns are zero-based.
const (
	TitleRow     = 0
	TitleCol     = 0
	FirstDataRow = 1
	LabelCol     = 2
	RowTotalCol  = 3
	DataStartCol = 5

	// GroupWidth is the stride between date groups: amount, employee,
	// date and one spacer column.
	GroupWidth = 4
)

const (
	amountOffset = 0
	nameOffset   = 1
	dateOffset   = 2
)

// GroupStart returns the first column of date group i.
func GroupStart(i int) int {
	return DataStartCol + i*GroupWidth
}

// AmountCol returns the amount column of date group i.
func AmountCol(i int) int {
	return GroupStart(i) + amountOffset
}

// NameCol returns the employee label column of date group i.
func NameCol(i int) int {
	return GroupStart(i) + nameOffset
}

// DateCol returns the date label column of date group i.
func DateCol(i int) int {
	return GroupStart(i) + dateOffset
}

// LastColumn returns the right-most column used by n date groups.
func LastColumn(n int) int {
	if n == 0 {
		return RowTotalCol
	}
	return DateCol(n - 1)
}

// ColumnName converts a zero-based column to its letter name (0 -> "A").
func ColumnName(col int) (string, error) {
	return excelize.ColumnNumberToName(col + 1)
}

// CellRef converts zero-based coordinates to an A1 reference.
func CellRef(row, col int) (string, error) {
	ref, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return "", fmt.Errorf("cell (%d,%d): %w", row, col, err)
	}
	return ref, nil
}
