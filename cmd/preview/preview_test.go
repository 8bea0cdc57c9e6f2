package preview

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/insurance-summary/internal/config"
	"fjacquet/insurance-summary/internal/container"
	"fjacquet/insurance-summary/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

func writeReport(t *testing.T, rows ...[]interface{}) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.xlsx")
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+4)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	require.NoError(t, f.SaveAs(path))
	return path
}

func newContainer(t *testing.T) *container.Container {
	t.Helper()
	c, err := container.New(config.Default(), strings.NewReader(""), &bytes.Buffer{}, logging.NewMockLogger())
	require.NoError(t, err)
	return c
}

func TestPreviewCommand_Flags(t *testing.T) {
	assert.Equal(t, "preview", Cmd.Use)
	in := Cmd.Flags().Lookup("input")
	require.NotNil(t, in)
	assert.Equal(t, "i", in.Shorthand)
	assert.NotNil(t, Cmd.Flags().Lookup("category"))
}

func TestPrint(t *testing.T) {
	path := writeReport(t,
		[]interface{}{"", "2024-01-15", "Payroll Check", "", "Jane Doe", "Health Insurance", "", "", 100.0},
		[]interface{}{"", "2024-01-15", "Payroll Check", "", "Jane Doe", "Health Insurance", "", "", 50.0},
		[]interface{}{"", "2024-01-15", "Payroll Check", "", "Jane Doe", "Dental Insurance", "", "", 9.0},
	)
	var out bytes.Buffer

	require.NoError(t, Print(context.Background(), newContainer(t).GetPipeline(), path, "", &out))

	dec := yaml.NewDecoder(&out)
	var sheets []sheetView
	for {
		var s sheetView
		if err := dec.Decode(&s); err != nil {
			break
		}
		sheets = append(sheets, s)
	}
	require.Len(t, sheets, 2)
	assert.Equal(t, "Health Insurance", sheets[0].Sheet)
	assert.Equal(t, []string{"Jane Doe"}, sheets[0].Employees)
	require.Len(t, sheets[0].Cells, 3)
	assert.Equal(t, "=100.00+50.00", sheets[0].Cells[1]["F2"])
	assert.Equal(t, "=SUM(F2:F2)", sheets[0].Cells[1]["D2"])
	assert.Equal(t, "Total", sheets[0].Cells[2]["C3"])
	assert.Equal(t, "9.00", sheets[1].Cells[1]["F2"])

	assert.Equal(t, map[string]string{"Jane Doe": "150.00"}, sheets[0].Totals)
	assert.Equal(t, "150.00", sheets[0].Grand)
	assert.Equal(t, "9.00", sheets[1].Grand)
}

func TestTotals_SimpleMode(t *testing.T) {
	path := writeReport(t,
		[]interface{}{"", "2024-01-15", "Payroll Check", "", "Jane Doe", "Dental Insurance", "", "", 20.0},
		[]interface{}{"", "2024-01-15", "Payroll Check", "", "Jane Doe", "Dental Insurance", "", "", 5.5},
		[]interface{}{"", "2024-01-31", "Payroll Check", "", "John Roe", "Dental Insurance", "", "", 10.0},
	)
	cfg := config.Default()
	cfg.Output.Mode = "simple"
	c, err := container.New(cfg, strings.NewReader(""), &bytes.Buffer{}, logging.NewMockLogger())
	require.NoError(t, err)

	grids, err := c.GetPipeline().Preview(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, grids, 1)
	require.Equal(t, -1, grids[0].TotalRow())

	perEmployee, grand := totals(grids[0])
	assert.Equal(t, map[string]string{"Jane Doe": "25.50", "John Roe": "10.00"}, perEmployee)
	assert.Equal(t, "35.50", grand)
}

func TestPrint_CategoryFilter(t *testing.T) {
	path := writeReport(t,
		[]interface{}{"", "2024-01-15", "Payroll Check", "", "Jane Doe", "Health Insurance", "", "", 100.0},
		[]interface{}{"", "2024-01-15", "Payroll Check", "", "Jane Doe", "Dental Insurance", "", "", 9.0},
	)
	var out bytes.Buffer

	require.NoError(t, Print(context.Background(), newContainer(t).GetPipeline(), path, "Dental Insurance", &out))
	assert.Contains(t, out.String(), "sheet: Dental Insurance")
	assert.NotContains(t, out.String(), "Health Insurance")

	err := Print(context.Background(), newContainer(t).GetPipeline(), path, "Vision", &out)
	assert.ErrorContains(t, err, "unknown category")
}

func TestPrint_NoData(t *testing.T) {
	path := writeReport(t,
		[]interface{}{"", "2024-01-15", "Deposit", "", "Jane Doe", "Health Insurance", "", "", 100.0},
	)
	var out bytes.Buffer

	require.NoError(t, Print(context.Background(), newContainer(t).GetPipeline(), path, "", &out))
	assert.Equal(t, "# no insurance entries found\n", out.String())
}
