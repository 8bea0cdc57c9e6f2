// Package audit exports the extracted transaction records as CSV so the
// numbers in a summary workbook can be traced back to report rows.
package audit

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"

	"fjacquet/insurance-summary/internal/fileutils"
	"fjacquet/insurance-summary/internal/logging"
	"fjacquet/insurance-summary/internal/models"

	"github.com/gocarina/gocsv"
)

// Row is one exported record.
type Row struct {
	Employee string `csv:"employee"`
	Date     string `csv:"date"`
	Category string `csv:"category"`
	Amount   string `csv:"amount"`
}

// NewRow converts a record, formatting the amount with two decimals.
func NewRow(r models.TransactionRecord) Row {
	return Row{
		Employee: r.EmployeeName,
		Date:     r.Date,
		Category: r.Category.String(),
		Amount:   r.Amount.StringFixed(2),
	}
}

// Exporter writes record CSV files.
type Exporter struct {
	logger logging.Logger
}

// NewExporter creates an Exporter.
func NewExporter(logger logging.Logger) *Exporter {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Exporter{logger: logger}
}

// Marshal renders records as CSV with a header line.
func (e *Exporter) Marshal(records []models.TransactionRecord) ([]byte, error) {
	rows := make([]Row, len(records))
	for i, r := range records {
		rows[i] = NewRow(r)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(w)); err != nil {
		return nil, fmt.Errorf("error marshaling records to CSV: %w", err)
	}
	return buf.Bytes(), nil
}

// Write saves records to path, creating parent directories.
func (e *Exporter) Write(records []models.TransactionRecord, path string) error {
	log := e.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	log.Info("Writing records to CSV file")

	data, err := e.Marshal(records)
	if err != nil {
		return err
	}
	if err := fileutils.EnsureParentDirectory(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		log.WithError(err).Error("Failed to write CSV file")
		return fmt.Errorf("error writing CSV file: %w", err)
	}
	return nil
}

// Read loads rows previously written by Write.
func Read(path string) ([]Row, error) {
	file, err := os.Open(path) // #nosec G304 -- path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var rows []Row
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	return rows, nil
}
