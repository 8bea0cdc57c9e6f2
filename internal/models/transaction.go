package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionRecord is one payroll transaction that passed extraction.
// Records are values and are never mutated after creation.
type TransactionRecord struct {
	EmployeeName string
	Date         string
	Category     Category
	Amount       decimal.Decimal
}

// NewTransactionRecord builds a record.
func NewTransactionRecord(employee, date string, category Category, amount decimal.Decimal) TransactionRecord {
	return TransactionRecord{
		EmployeeName: employee,
		Date:         date,
		Category:     category,
		Amount:       amount,
	}
}

// Key returns the aggregation key of the record.
func (r TransactionRecord) Key() AggregationKey {
	return AggregationKey{Category: r.Category, EmployeeName: r.EmployeeName, Date: r.Date}
}

// String returns a short human-readable description of the record.
func (r TransactionRecord) String() string {
	return fmt.Sprintf("%s %s %s %s", r.Category, r.EmployeeName, r.Date, r.Amount.StringFixed(2))
}

// AggregationKey identifies one multi-value bucket in a summary sheet.
type AggregationKey struct {
	Category     Category
	EmployeeName string
	Date         string
}
