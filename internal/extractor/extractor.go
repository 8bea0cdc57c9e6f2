// Package extractor turns raw report rows into categorized transaction
// records, collecting the employee and date universes along the way.
package extractor

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"fjacquet/insurance-summary/internal/categorizer"
	"fjacquet/insurance-summary/internal/currencyutils"
	"fjacquet/insurance-summary/internal/logging"
	"fjacquet/insurance-summary/internal/models"
	"fjacquet/insurance-summary/internal/parsererror"

	"github.com/shopspring/decimal"
)

// DefaultTransactionType is the only transaction type that is summarized.
const DefaultTransactionType = "Payroll Check"

// DefaultHeaderRows is the number of leading rows that are never data.
const DefaultHeaderRows = 3

// Skip reasons reported in Stats.
const (
	ReasonWrongType     = "transaction_type"
	ReasonZeroAmount    = "zero_amount"
	ReasonEmptyMemo     = "empty_memo"
	ReasonUncategorized = "uncategorized"
)

// Options controls which rows are read and from where.
type Options struct {
	HeaderRows      int
	TransactionType string
	Columns         Columns
}

// DefaultOptions returns the layout of a standard payroll transaction report.
func DefaultOptions() Options {
	return Options{
		HeaderRows:      DefaultHeaderRows,
		TransactionType: DefaultTransactionType,
		Columns:         DefaultColumns(),
	}
}

// Extraction is the result of scanning a report: the records plus the
// employee and date universes in first-appearance order.
type Extraction struct {
	Records   []models.TransactionRecord
	Employees *models.OrderedSet
	Dates     *models.OrderedSet
	Stats     Stats
}

// Stats counts scanned rows and why rows were skipped.
type Stats struct {
	Scanned int
	Emitted int
	Skipped map[string]int
}

// Extractor scans raw rows.
type Extractor struct {
	opts   Options
	logger logging.Logger
}

// New creates an Extractor.
func New(opts Options, logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Extractor{opts: opts, logger: logger}
}

// Extract filters rows to categorized payroll transactions. Rows that
// cannot be read are skipped; Extract never fails on row content.
func (e *Extractor) Extract(rows []models.RawRow) Extraction {
	result := Extraction{
		Employees: models.NewOrderedSet(),
		Dates:     models.NewOrderedSet(),
		Stats:     Stats{Skipped: make(map[string]int)},
	}
	cols := e.opts.Columns

	for i, row := range rows {
		if i < e.opts.HeaderRows {
			continue
		}
		result.Stats.Scanned++

		txType := row.Cell(cols.Type)
		if txType.IsBlank() || CellText(txType) != e.opts.TransactionType {
			result.Stats.Skipped[ReasonWrongType]++
			continue
		}

		date := CellText(row.Cell(cols.Date))
		employee := CellText(row.Cell(cols.Employee))
		memo := CellText(row.Cell(cols.Memo))
		amount, err := CellAmount(row.Cell(cols.Amount))
		if err != nil {
			e.logger.Debug("Unreadable amount treated as zero",
				logging.Field{Key: logging.FieldRow, Value: row.Index},
				logging.Field{Key: logging.FieldError, Value: err.Error()})
		}

		if amount.IsZero() {
			result.Stats.Skipped[ReasonZeroAmount]++
			continue
		}
		if memo == "" {
			result.Stats.Skipped[ReasonEmptyMemo]++
			continue
		}

		category, ok := categorizer.Categorize(memo)
		if !ok {
			result.Stats.Skipped[ReasonUncategorized]++
			continue
		}

		result.Records = append(result.Records, models.NewTransactionRecord(employee, date, category, amount))
		result.Employees.Add(employee)
		result.Dates.Add(date)
		result.Stats.Emitted++
	}

	e.logger.Info("Extracted payroll records",
		logging.Field{Key: logging.FieldCount, Value: result.Stats.Emitted},
		logging.Field{Key: "scanned", Value: result.Stats.Scanned},
		logging.Field{Key: "employees", Value: result.Employees.Len()},
		logging.Field{Key: "dates", Value: result.Dates.Len()})
	for reason, n := range result.Stats.Skipped {
		e.logger.Debug("Skipped rows", logging.Field{Key: logging.FieldReason, Value: reason}, logging.Field{Key: logging.FieldCount, Value: n})
	}

	return result
}

// CellText renders a cell the way the summary shows it: strings trimmed,
// plain numbers as integers, dates as rendered by the reader.
func CellText(c models.Cell) string {
	switch c.Kind {
	case models.CellString:
		return strings.TrimSpace(c.Text)
	case models.CellNumeric:
		if !finite(c.Number) {
			return ""
		}
		return decimal.NewFromFloat(c.Number).Truncate(0).String()
	case models.CellDate:
		return strings.TrimSpace(c.Text)
	default:
		return ""
	}
}

// CellAmount reads a monetary amount. Numeric cells are taken as-is; text
// cells are parsed leniently ("1,234.50", "$5", "(12.00)"). Anything else
// yields zero, with a ParseError for text that could not be read.
func CellAmount(c models.Cell) (decimal.Decimal, error) {
	switch c.Kind {
	case models.CellNumeric:
		if !finite(c.Number) {
			return decimal.Zero, &parsererror.ParseError{
				Parser: "extractor", Field: "amount", Value: fmt.Sprint(c.Number),
				Err: errors.New("non-finite number"),
			}
		}
		return decimal.NewFromFloat(c.Number), nil
	case models.CellString:
		return parseAmountText(c.Text)
	default:
		return decimal.Zero, nil
	}
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func parseAmountText(raw string) (decimal.Decimal, error) {
	d, err := currencyutils.ParseAmount(raw)
	if err != nil {
		return decimal.Zero, &parsererror.ParseError{Parser: "extractor", Field: "amount", Value: raw, Err: err}
	}
	return d, nil
}
