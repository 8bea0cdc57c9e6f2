// Package aggregator partitions extracted records by category.
package aggregator

import (
	"fjacquet/insurance-summary/internal/logging"
	"fjacquet/insurance-summary/internal/models"
)

// Aggregation holds records grouped by category. Categories keeps the order
// in which each category was first seen.
type Aggregation struct {
	Categories []models.Category
	byCategory map[models.Category][]models.TransactionRecord
}

// Records returns the records of one category in input order.
func (a Aggregation) Records(c models.Category) []models.TransactionRecord {
	return a.byCategory[c]
}

// Len returns the number of categories that received records.
func (a Aggregation) Len() int {
	return len(a.Categories)
}

// IsEmpty reports whether no record was aggregated.
func (a Aggregation) IsEmpty() bool {
	return len(a.Categories) == 0
}

// Aggregator groups records.
type Aggregator struct {
	logger logging.Logger
}

// New creates an Aggregator.
func New(logger logging.Logger) *Aggregator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Aggregator{logger: logger}
}

// Aggregate groups records by category. Amounts are not summed here: the
// layout stage needs each contributing amount.
func (a *Aggregator) Aggregate(records []models.TransactionRecord) Aggregation {
	agg := Aggregation{byCategory: make(map[models.Category][]models.TransactionRecord)}

	for _, r := range records {
		if _, seen := agg.byCategory[r.Category]; !seen {
			agg.Categories = append(agg.Categories, r.Category)
		}
		agg.byCategory[r.Category] = append(agg.byCategory[r.Category], r)
	}

	for _, c := range agg.Categories {
		a.logger.Debug("Category aggregated",
			logging.Field{Key: logging.FieldCategory, Value: c.String()},
			logging.Field{Key: logging.FieldCount, Value: len(agg.byCategory[c])})
	}
	a.logger.Info("Found insurance types", logging.Field{Key: logging.FieldCount, Value: len(agg.Categories)})

	return agg
}
