package xlsxio

import (
	"fmt"

	"fjacquet/insurance-summary/internal/fileutils"
	"fjacquet/insurance-summary/internal/grid"
	"fjacquet/insurance-summary/internal/logging"
	"fjacquet/insurance-summary/internal/parsererror"

	"github.com/xuri/excelize/v2"
)

// AccountingFormat shows thousands separators, two decimals, parenthesized
// negatives and a dash for zero.
const AccountingFormat = `_($* #,##0.00_);_($* (#,##0.00);_($* "-"??_);_(@_)`

const defaultSheet = "Sheet1"

// WriteResult lists the sheets written and the sheets that failed.
type WriteResult struct {
	Path        string
	Sheets      []string
	SheetErrors []*parsererror.SheetError
}

// Writer renders grids into a workbook, one sheet per grid.
type Writer struct {
	numberFormat string
	logger       logging.Logger
}

// NewWriter creates a Writer. An empty numberFormat means AccountingFormat.
func NewWriter(numberFormat string, logger logging.Logger) *Writer {
	if numberFormat == "" {
		numberFormat = AccountingFormat
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Writer{numberFormat: numberFormat, logger: logger}
}

// Write renders grids and saves the workbook at path. A sheet that fails to
// render is reported in the result and left out; the workbook is still saved
// as long as one sheet succeeded.
func (w *Writer) Write(path string, grids []*grid.Grid) (*WriteResult, error) {
	if len(grids) == 0 {
		return nil, parsererror.ErrNoData
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			w.logger.WithError(err).Warn("Failed to close output workbook")
		}
	}()

	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &w.numberFormat})
	if err != nil {
		return nil, fmt.Errorf("failed to create number style: %w", err)
	}

	result := &WriteResult{Path: path}
	written := make(map[string]bool)
	for _, g := range grids {
		log := w.logger.WithFields(
			logging.Field{Key: logging.FieldSheet, Value: g.Name},
			logging.Field{Key: logging.FieldCategory, Value: g.Category.String()})

		if written[g.Name] {
			log.Warn("Sheet name already used, content will be merged")
		}
		if err := w.writeSheet(f, g, moneyStyle); err != nil {
			log.WithError(err).Error("Failed to write sheet")
			result.SheetErrors = append(result.SheetErrors, &parsererror.SheetError{Sheet: g.Name, Err: err})
			if !written[g.Name] && g.Name != defaultSheet {
				if delErr := f.DeleteSheet(g.Name); delErr != nil {
					log.WithError(delErr).Warn("Failed to remove partial sheet")
				}
			}
			continue
		}
		if !written[g.Name] {
			result.Sheets = append(result.Sheets, g.Name)
			written[g.Name] = true
		}
		log.Info("Sheet created")
	}

	if len(result.Sheets) == 0 {
		return result, fmt.Errorf("no sheet could be written: %w", result.SheetErrors[0])
	}

	if !written[defaultSheet] {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return result, fmt.Errorf("failed to remove default sheet: %w", err)
		}
	}
	if idx, err := f.GetSheetIndex(result.Sheets[0]); err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}
	if err := fileutils.EnsureParentDirectory(path); err != nil {
		return result, err
	}
	if err := f.SaveAs(path); err != nil {
		return result, fmt.Errorf("failed to save output workbook: %w", err)
	}

	w.logger.Info("Output file written",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(result.Sheets)})
	return result, nil
}

func (w *Writer) writeSheet(f *excelize.File, g *grid.Grid, moneyStyle int) error {
	if _, err := f.NewSheet(g.Name); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	for _, row := range g.Rows {
		for _, cell := range row.Cells {
			ref, err := grid.CellRef(row.Index, cell.Col)
			if err != nil {
				return err
			}
			if err := w.writeCell(f, g.Name, ref, cell.Value); err != nil {
				return fmt.Errorf("cell %s: %w", ref, err)
			}
			if cell.Money {
				if err := f.SetCellStyle(g.Name, ref, ref, moneyStyle); err != nil {
					return fmt.Errorf("cell %s style: %w", ref, err)
				}
			}
		}
	}

	for _, cw := range g.Columns() {
		name, err := grid.ColumnName(cw.Col)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(g.Name, name, name, cw.Width); err != nil {
			return fmt.Errorf("column %s width: %w", name, err)
		}
	}
	return nil
}

func (w *Writer) writeCell(f *excelize.File, sheet, ref string, v grid.CellValue) error {
	switch v.Kind {
	case grid.KindLabel:
		return f.SetCellStr(sheet, ref, v.Text)
	case grid.KindLiteral:
		return f.SetCellFloat(sheet, ref, v.Number.InexactFloat64(), -1, 64)
	case grid.KindSum, grid.KindRangeSum:
		formula, err := v.Formula()
		if err != nil {
			return err
		}
		return f.SetCellFormula(sheet, ref, formula)
	default:
		return fmt.Errorf("unsupported cell kind %s", v.Kind)
	}
}
