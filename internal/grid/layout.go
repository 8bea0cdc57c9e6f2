package grid

import (
	"fmt"

	"fjacquet/insurance-summary/internal/logging"
	"fjacquet/insurance-summary/internal/models"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// TotalLabel is written in the label column of the total row.
const TotalLabel = "Total"

// Engine builds grids.
type Engine struct {
	mode   Mode
	logger logging.Logger
}

// NewEngine creates an Engine for mode. An empty mode means ModeDetailed.
func NewEngine(mode Mode, logger logging.Logger) *Engine {
	if mode == "" {
		mode = ModeDetailed
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Engine{mode: mode, logger: logger}
}

// Mode returns the layout variant the engine produces.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Layout builds the grid of one category. employees and dates are the
// universes of the whole report: every employee gets a row, but only dates
// that received an amount in this category get a column group. Records of
// other categories are ignored.
func (e *Engine) Layout(category models.Category, records []models.TransactionRecord, employees, dates *models.OrderedSet) (*Grid, error) {
	employeeList := employees.Items()

	buckets := make(map[models.AggregationKey][]decimal.Decimal)
	relevant := models.NewOrderedSet()
	for _, r := range records {
		if r.Category != category {
			continue
		}
		if !employees.Contains(r.EmployeeName) {
			return nil, fmt.Errorf("employee %q is not in the employee set", r.EmployeeName)
		}
		if !dates.Contains(r.Date) {
			return nil, fmt.Errorf("date %q is not in the date set", r.Date)
		}
		key := r.Key()
		buckets[key] = append(buckets[key], r.Amount)
		relevant.Add(r.Date)
	}
	relevantDates := relevant.Items()

	if last := LastColumn(len(relevantDates)); last >= excelize.MaxColumns {
		return nil, fmt.Errorf("%d dates need %d columns, more than the sheet limit of %d",
			len(relevantDates), last+1, excelize.MaxColumns)
	}

	g := &Grid{
		Category:  category,
		Name:      SheetName(category.String()),
		Mode:      e.mode,
		Employees: employeeList,
		Dates:     relevantDates,
	}
	g.Rows = append(g.Rows, Row{
		Index: TitleRow,
		Cells: []Cell{{Col: TitleCol, Value: Label(category.String())}},
	})

	for i, emp := range employeeList {
		g.Rows = append(g.Rows, e.employeeRow(FirstDataRow+i, category, emp, relevantDates, buckets))
	}
	if e.mode == ModeDetailed {
		g.Rows = append(g.Rows, totalRow(len(employeeList), len(relevantDates)))
	}

	e.logger.Debug("Grid laid out",
		logging.Field{Key: logging.FieldCategory, Value: category.String()},
		logging.Field{Key: logging.FieldMode, Value: string(e.mode)},
		logging.Field{Key: "employees", Value: len(employeeList)},
		logging.Field{Key: "dates", Value: len(relevantDates)})

	return g, nil
}

func (e *Engine) employeeRow(index int, category models.Category, employee string, dates []string, buckets map[models.AggregationKey][]decimal.Decimal) Row {
	row := Row{Index: index}
	row.Cells = append(row.Cells, Cell{Col: LabelCol, Value: Label(employee)})

	if e.mode == ModeDetailed && len(dates) > 0 {
		row.Cells = append(row.Cells, Cell{
			Col:   RowTotalCol,
			Value: RangeSum(Range{StartRow: index, StartCol: AmountCol(0), EndRow: index, EndCol: AmountCol(len(dates) - 1)}),
			Money: true,
		})
	}

	for i, date := range dates {
		amounts := buckets[models.AggregationKey{Category: category, EmployeeName: employee, Date: date}]
		if len(amounts) == 0 {
			continue
		}
		row.Cells = append(row.Cells,
			Cell{Col: AmountCol(i), Value: e.amountValue(amounts), Money: true},
			Cell{Col: NameCol(i), Value: Label(employee)},
			Cell{Col: DateCol(i), Value: Label(date)},
		)
	}
	return row
}

// amountValue keeps multiple amounts as separate terms in detailed mode.
func (e *Engine) amountValue(amounts []decimal.Decimal) CellValue {
	if len(amounts) == 1 {
		return Literal(amounts[0])
	}
	if e.mode == ModeSimple {
		return Literal(decimal.Sum(decimal.Zero, amounts...))
	}
	return Sum(amounts...)
}

func totalRow(employees, dates int) Row {
	index := FirstDataRow + employees
	last := index - 1
	row := Row{Index: index}
	row.Cells = append(row.Cells, Cell{Col: LabelCol, Value: Label(TotalLabel)})

	if employees == 0 || dates == 0 {
		row.Cells = append(row.Cells, Cell{Col: RowTotalCol, Value: Literal(decimal.Zero), Money: true})
		return row
	}

	row.Cells = append(row.Cells, Cell{
		Col:   RowTotalCol,
		Value: RangeSum(Range{StartRow: FirstDataRow, StartCol: RowTotalCol, EndRow: last, EndCol: RowTotalCol}),
		Money: true,
	})
	for i := 0; i < dates; i++ {
		row.Cells = append(row.Cells, Cell{
			Col:   AmountCol(i),
			Value: RangeSum(Range{StartRow: FirstDataRow, StartCol: AmountCol(i), EndRow: last, EndCol: AmountCol(i)}),
			Money: true,
		})
	}
	return row
}
