package summary

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/insurance-summary/cmd/root"
	"fjacquet/insurance-summary/internal/config"
	"fjacquet/insurance-summary/internal/container"
	"fjacquet/insurance-summary/internal/logging"
	"fjacquet/insurance-summary/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeReport(t *testing.T, dir string, memo string) string {
	t.Helper()
	path := filepath.Join(dir, "report.xlsx")
	f := excelize.NewFile()
	defer f.Close()
	row := []interface{}{"", "2024-03-01", "Payroll Check", "", "Jane Doe", memo, "", "", 42.0}
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &row))
	require.NoError(t, f.SaveAs(path))
	return path
}

func newContainer(t *testing.T, answers string) (*container.Container, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c, err := container.New(config.Default(), strings.NewReader(answers), &out, logging.NewMockLogger())
	require.NoError(t, err)
	return c, &out
}

func TestSummaryCommand_Metadata(t *testing.T) {
	assert.Equal(t, "summary", Cmd.Use)
	assert.Contains(t, Cmd.Short, "insurance summary")
	assert.NotNil(t, Cmd.RunE)

	for name, short := range map[string]string{"input": "i", "output": "o", "mode": "", "records": ""} {
		flag := Cmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, short, flag.Shorthand)
	}
}

func TestRun_WithFlags(t *testing.T) {
	dir := t.TempDir()
	input := writeReport(t, dir, "Dental Insurance")
	c, out := newContainer(t, "")

	err := Run(context.Background(), c, Options{Input: input, Output: filepath.Join(dir, "result")})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "result.xlsx"))
	assert.Contains(t, out.String(), "Summary with 1 sheet(s) saved to")
}

func TestRun_PromptsForPaths(t *testing.T) {
	dir := t.TempDir()
	input := writeReport(t, dir, "Health Insurance")
	chdir(t, dir)
	c, out := newContainer(t, input+"\n\n")

	require.NoError(t, Run(context.Background(), c, Options{}))
	assert.FileExists(t, filepath.Join(dir, "Insurance_Summary.xlsx"))
	assert.Contains(t, out.String(), "Transaction report")
	assert.Contains(t, out.String(), "[Insurance_Summary.xlsx]")
}

func TestRun_CancelledSelection(t *testing.T) {
	c, out := newContainer(t, "\n")

	require.NoError(t, Run(context.Background(), c, Options{}))
	assert.Contains(t, out.String(), "No input file selected")
}

func TestRun_CancelledOutputSelection(t *testing.T) {
	dir := t.TempDir()
	input := writeReport(t, dir, "Health Insurance")
	c, out := newContainer(t, "")

	require.NoError(t, Run(context.Background(), c, Options{Input: input}))
	assert.Contains(t, out.String(), "No output file selected")
	assert.NoFileExists(t, filepath.Join(dir, "Insurance_Summary.xlsx"))
}

func TestRun_NoInsuranceData(t *testing.T) {
	dir := t.TempDir()
	input := writeReport(t, dir, "Net pay")
	output := filepath.Join(dir, "out.xlsx")
	c, out := newContainer(t, "")

	require.NoError(t, Run(context.Background(), c, Options{Input: input, Output: output}))
	assert.Contains(t, out.String(), "warning: No insurance entries were found")
	assert.NoFileExists(t, output)
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	c, out := newContainer(t, "")

	err := Run(context.Background(), c, Options{Input: filepath.Join(dir, "nope.xlsx"), Output: filepath.Join(dir, "o.xlsx")})
	require.Error(t, err)
	assert.ErrorIs(t, err, root.ErrReported)
	assert.Contains(t, out.String(), "error: file does not exist")
}

func TestRun_LegacyWorkbookRejected(t *testing.T) {
	assert.Contains(t, Cmd.Long, "Legacy .xls files are\nnot supported")

	dir := t.TempDir()
	input := filepath.Join(dir, "report.xls")
	require.NoError(t, os.WriteFile(input, []byte("BIFF"), 0600))
	c, out := newContainer(t, "")

	err := Run(context.Background(), c, Options{Input: input, Output: filepath.Join(dir, "o.xlsx")})
	require.Error(t, err)
	var formatErr *parsererror.InvalidFormatError
	assert.ErrorAs(t, err, &formatErr)
	assert.Contains(t, out.String(), `unsupported file extension ".xls"`)
	assert.NoFileExists(t, filepath.Join(dir, "o.xlsx"))
}

func TestRun_RecordsFile(t *testing.T) {
	dir := t.TempDir()
	input := writeReport(t, dir, "WI SUI Employer")
	records := filepath.Join(dir, "records.csv")
	c, out := newContainer(t, "")

	require.NoError(t, Run(context.Background(), c, Options{Input: input, Output: filepath.Join(dir, "o.xlsx"), RecordsFile: records}))
	assert.FileExists(t, records)
	assert.Contains(t, out.String(), "Extracted records written to "+records)
}

func TestRun_Interrupted(t *testing.T) {
	dir := t.TempDir()
	input := writeReport(t, dir, "Health Insurance")
	c, out := newContainer(t, "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, Run(ctx, c, Options{Input: input, Output: filepath.Join(dir, "o.xlsx")}))
	assert.Contains(t, out.String(), "Interrupted")
	assert.NoFileExists(t, filepath.Join(dir, "o.xlsx"))
}
