// Package xlsxio reads payroll reports from, and writes summary grids to,
// xlsx workbooks.
package xlsxio

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fjacquet/insurance-summary/internal/logging"
	"fjacquet/insurance-summary/internal/models"
	"fjacquet/insurance-summary/internal/parsererror"

	"github.com/xuri/excelize/v2"
)

// DateLayout is how date cells are rendered as text.
const DateLayout = "2006-01-02"

const expectedFormat = "xlsx workbook"

var supportedExtensions = map[string]bool{
	".xlsx": true,
	".xlsm": true,
	".xltx": true,
	".xltm": true,
}

// Reader loads the first sheet of a workbook as typed rows.
type Reader struct {
	logger logging.Logger
}

// NewReader creates a Reader.
func NewReader(logger logging.Logger) *Reader {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Reader{logger: logger}
}

// ReadRows returns every row of the first sheet of the workbook at path,
// including blank rows, so row indexes match the sheet.
func (r *Reader) ReadRows(path string) ([]models.RawRow, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !supportedExtensions[ext] {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: expectedFormat,
			Msg:            fmt.Sprintf("unsupported file extension %q", ext),
		}
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, fmt.Errorf("failed to open input workbook: %w", err)
		}
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: expectedFormat,
			Msg:            "cannot open workbook",
			Err:            err,
		}
	}
	defer func() {
		if err := f.Close(); err != nil {
			r.logger.WithError(err).Warn("Failed to close input workbook", logging.Field{Key: logging.FieldFile, Value: path})
		}
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &parsererror.InvalidFormatError{FilePath: path, ExpectedFormat: expectedFormat, Msg: "workbook has no sheets"}
	}
	sheet := sheets[0]

	r.logger.Info("Reading transaction report",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldSheet, Value: sheet})

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	rows := make([]models.RawRow, 0, len(raw))
	for i, values := range raw {
		row := models.RawRow{Index: i, Cells: make([]models.Cell, len(values))}
		for j, value := range values {
			cell, err := r.typedCell(f, sheet, i, j, value)
			if err != nil {
				return nil, err
			}
			row.Cells[j] = cell
		}
		rows = append(rows, row)
	}

	r.logger.Debug("Read rows", logging.Field{Key: logging.FieldCount, Value: len(rows)})
	return rows, nil
}

// typedCell classifies one raw cell value as blank, string, number or date.
func (r *Reader) typedCell(f *excelize.File, sheet string, row, col int, value string) (models.Cell, error) {
	if value == "" {
		return models.Cell{}, nil
	}
	ref, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return models.Cell{}, err
	}

	cellType, err := f.GetCellType(sheet, ref)
	if err != nil {
		return models.Cell{}, fmt.Errorf("cell %s: %w", ref, err)
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeBool, excelize.CellTypeError:
		return models.StringCell(value), nil
	case excelize.CellTypeDate:
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			return models.DateCell(0, t.Format(DateLayout)), nil
		}
	}

	n, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return models.StringCell(value), nil
	}
	if cellType == excelize.CellTypeDate || r.isDateFormatted(f, sheet, ref) {
		t, err := excelize.ExcelDateToTime(n, false)
		if err == nil {
			return models.DateCell(n, t.Format(DateLayout)), nil
		}
	}
	return models.NumberCell(n), nil
}

func (r *Reader) isDateFormatted(f *excelize.File, sheet, ref string) bool {
	styleID, err := f.GetCellStyle(sheet, ref)
	if err != nil || styleID == 0 {
		return false
	}
	style, err := f.GetStyle(styleID)
	if err != nil || style == nil {
		return false
	}
	if style.CustomNumFmt != nil {
		return IsDateFormat(*style.CustomNumFmt)
	}
	return isBuiltInDateFormat(style.NumFmt)
}

func isBuiltInDateFormat(id int) bool {
	return (id >= 14 && id <= 22) || (id >= 45 && id <= 47) || (id >= 27 && id <= 36) || (id >= 50 && id <= 58)
}

// IsDateFormat reports whether a custom number format renders a date:
// it has a day, month or year token outside quotes and brackets.
func IsDateFormat(format string) bool {
	inQuote, inBracket := false, false
	for _, ch := range strings.ToLower(format) {
		switch {
		case ch == '"':
			inQuote = !inQuote
		case inQuote:
		case ch == '[':
			inBracket = true
		case ch == ']':
			inBracket = false
		case inBracket:
		case ch == 'y' || ch == 'd' || ch == 'm':
			return true
		}
	}
	return false
}
