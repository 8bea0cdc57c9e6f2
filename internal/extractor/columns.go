package extractor

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Columns holds zero-based input column positions.
type Columns struct {
	Date     int
	Type     int
	Employee int
	Memo     int
	Amount   int
}

// DefaultColumns is B=date, C=type, E=employee, F=memo, I=amount.
func DefaultColumns() Columns {
	return Columns{Date: 1, Type: 2, Employee: 4, Memo: 5, Amount: 8}
}

// ColumnLetters names each input column by spreadsheet letter.
type ColumnLetters struct {
	Date     string `mapstructure:"date" yaml:"date"`
	Type     string `mapstructure:"type" yaml:"type"`
	Employee string `mapstructure:"employee" yaml:"employee"`
	Memo     string `mapstructure:"memo" yaml:"memo"`
	Amount   string `mapstructure:"amount" yaml:"amount"`
}

// DefaultColumnLetters matches DefaultColumns.
func DefaultColumnLetters() ColumnLetters {
	return ColumnLetters{Date: "B", Type: "C", Employee: "E", Memo: "F", Amount: "I"}
}

// Resolve converts letters to zero-based positions.
func (l ColumnLetters) Resolve() (Columns, error) {
	var cols Columns
	targets := []struct {
		name   string
		letter string
		dst    *int
	}{
		{"date", l.Date, &cols.Date},
		{"type", l.Type, &cols.Type},
		{"employee", l.Employee, &cols.Employee},
		{"memo", l.Memo, &cols.Memo},
		{"amount", l.Amount, &cols.Amount},
	}
	for _, t := range targets {
		n, err := excelize.ColumnNameToNumber(t.letter)
		if err != nil {
			return Columns{}, fmt.Errorf("invalid %s column %q: %w", t.name, t.letter, err)
		}
		*t.dst = n - 1
	}
	return cols, nil
}
