// Package pipeline runs a payroll report through extraction, aggregation,
// layout and rendering.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"fjacquet/insurance-summary/internal/aggregator"
	"fjacquet/insurance-summary/internal/extractor"
	"fjacquet/insurance-summary/internal/fileutils"
	"fjacquet/insurance-summary/internal/grid"
	"fjacquet/insurance-summary/internal/logging"
	"fjacquet/insurance-summary/internal/models"
	"fjacquet/insurance-summary/internal/parsererror"
	"fjacquet/insurance-summary/internal/xlsxio"
)

// OutputExtension is appended to output paths that lack it.
const OutputExtension = ".xlsx"

// RowReader loads the raw rows of a report.
type RowReader interface {
	ReadRows(path string) ([]models.RawRow, error)
}

// SheetWriter renders grids into a workbook.
type SheetWriter interface {
	Write(path string, grids []*grid.Grid) (*xlsxio.WriteResult, error)
}

// RecordExporter saves extracted records for auditing.
type RecordExporter interface {
	Write(records []models.TransactionRecord, path string) error
}

// Options tunes a single run.
type Options struct {
	// RecordsFile, when set, receives a CSV of every extracted record.
	RecordsFile string
}

// Summary is everything computed from a report before rendering.
type Summary struct {
	Extraction   extractor.Extraction
	Aggregation  aggregator.Aggregation
	Grids        []*grid.Grid
	LayoutErrors []*parsererror.SheetError
}

// Result describes a completed run.
type Result struct {
	InputFile   string
	OutputFile  string
	RecordsFile string
	Records     int
	Employees   int
	Dates       int
	Categories  []models.Category
	Sheets      []string
	SheetErrors []*parsererror.SheetError
}

// Pipeline wires the processing stages together.
type Pipeline struct {
	reader     RowReader
	extractor  *extractor.Extractor
	aggregator *aggregator.Aggregator
	engine     *grid.Engine
	writer     SheetWriter
	exporter   RecordExporter
	logger     logging.Logger
}

// New creates a Pipeline. exporter may be nil when audit export is never
// requested.
func New(reader RowReader, ext *extractor.Extractor, agg *aggregator.Aggregator, engine *grid.Engine,
	writer SheetWriter, exporter RecordExporter, logger logging.Logger) *Pipeline {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Pipeline{
		reader:     reader,
		extractor:  ext,
		aggregator: agg,
		engine:     engine,
		writer:     writer,
		exporter:   exporter,
		logger:     logger,
	}
}

// Build reads input and lays out one grid per category. A category whose
// layout fails is reported in LayoutErrors and left out of Grids. Build
// returns parsererror.ErrNoData when no record was extracted.
func (p *Pipeline) Build(ctx context.Context, input string) (*Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := p.reader.ReadRows(input)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	summary := &Summary{Extraction: p.extractor.Extract(rows)}
	summary.Aggregation = p.aggregator.Aggregate(summary.Extraction.Records)
	if summary.Aggregation.IsEmpty() {
		return summary, parsererror.ErrNoData
	}

	p.logger.Info("Categories found",
		logging.Field{Key: logging.FieldCount, Value: summary.Aggregation.Len()},
		logging.Field{Key: "categories", Value: categoryNames(summary.Aggregation.Categories)})
	p.logger.Info("Report universe",
		logging.Field{Key: "employees", Value: summary.Extraction.Employees.Len()},
		logging.Field{Key: "dates", Value: summary.Extraction.Dates.Len()})

	for _, category := range summary.Aggregation.Categories {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records := summary.Aggregation.Records(category)
		log := p.logger.WithFields(logging.Field{Key: logging.FieldCategory, Value: category.String()})

		g, err := p.engine.Layout(category, records, summary.Extraction.Employees, summary.Extraction.Dates)
		if err != nil {
			log.WithError(err).Error("Failed to lay out sheet")
			summary.LayoutErrors = append(summary.LayoutErrors,
				&parsererror.SheetError{Sheet: grid.SheetName(category.String()), Err: err})
			continue
		}
		log.Info("Sheet laid out",
			logging.Field{Key: logging.FieldSheet, Value: g.Name},
			logging.Field{Key: logging.FieldCount, Value: len(records)},
			logging.Field{Key: "dates", Value: len(g.Dates)})
		summary.Grids = append(summary.Grids, g)
	}
	return summary, nil
}

// Preview builds the grids of input without writing anything.
func (p *Pipeline) Preview(ctx context.Context, input string) ([]*grid.Grid, error) {
	summary, err := p.Build(ctx, input)
	if err != nil {
		return nil, err
	}
	if len(summary.Grids) == 0 && len(summary.LayoutErrors) > 0 {
		return nil, fmt.Errorf("no sheet could be laid out: %w", summary.LayoutErrors[0])
	}
	return summary.Grids, nil
}

// Run processes input and saves the summary workbook at output, appending
// OutputExtension when missing. On parsererror.ErrNoData no workbook is
// written. Per-sheet failures are listed in the result; the run only fails
// when no sheet could be produced.
func (p *Pipeline) Run(ctx context.Context, input, output string, opts Options) (*Result, error) {
	output = fileutils.EnsureExtension(output, OutputExtension)
	result := &Result{InputFile: input, OutputFile: output}
	log := p.logger.WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: input},
		logging.Field{Key: logging.FieldOutputFile, Value: output},
		logging.Field{Key: logging.FieldMode, Value: string(p.engine.Mode())})
	log.Info("Starting insurance summary")

	summary, err := p.Build(ctx, input)
	if summary != nil {
		result.Records = len(summary.Extraction.Records)
		if summary.Extraction.Employees != nil {
			result.Employees = summary.Extraction.Employees.Len()
		}
		if summary.Extraction.Dates != nil {
			result.Dates = summary.Extraction.Dates.Len()
		}
		result.Categories = summary.Aggregation.Categories
	}
	if err != nil && !errors.Is(err, parsererror.ErrNoData) {
		return result, err
	}

	if opts.RecordsFile != "" && summary != nil {
		if p.exporter == nil {
			return result, fmt.Errorf("records export requested but no exporter is configured")
		}
		if err := p.exporter.Write(summary.Extraction.Records, opts.RecordsFile); err != nil {
			return result, fmt.Errorf("failed to export records: %w", err)
		}
		result.RecordsFile = opts.RecordsFile
	}

	if err != nil {
		log.Warn("No insurance entries found, no output written")
		return result, err
	}

	result.SheetErrors = append(result.SheetErrors, summary.LayoutErrors...)
	if len(summary.Grids) == 0 {
		return result, fmt.Errorf("no sheet could be laid out: %w", summary.LayoutErrors[0])
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	written, err := p.writer.Write(output, summary.Grids)
	if written != nil {
		result.Sheets = written.Sheets
		result.SheetErrors = append(result.SheetErrors, written.SheetErrors...)
	}
	if err != nil {
		return result, err
	}

	log.Info("Insurance summary complete",
		logging.Field{Key: "sheets", Value: len(result.Sheets)},
		logging.Field{Key: "failed_sheets", Value: len(result.SheetErrors)})
	return result, nil
}

func categoryNames(categories []models.Category) []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.String()
	}
	return names
}
