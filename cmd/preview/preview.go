// Package preview prints the summary grids of a report without writing a
// workbook.
package preview

import (
	"context"
	"errors"
	"fmt"
	"io"

	"fjacquet/insurance-summary/cmd/root"
	"fjacquet/insurance-summary/internal/grid"
	"fjacquet/insurance-summary/internal/models"
	"fjacquet/insurance-summary/internal/parsererror"
	"fjacquet/insurance-summary/internal/pipeline"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	input    string
	category string
)

// Cmd represents the preview command
var Cmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the summary grids of a payroll report as YAML",
	Long: `Print the summary grids of a payroll report as YAML, one document per
category, showing every cell value and formula that the summary command
would write, followed by the evaluated total of every employee and the
grand total of the sheet.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if root.AppContainer == nil {
			return errors.New("application not initialized")
		}
		return Print(cmd.Context(), root.AppContainer.GetPipeline(), input, category, cmd.OutOrStdout())
	},
}

func init() {
	Cmd.Flags().StringVarP(&input, "input", "i", "", "Payroll transaction report (.xlsx)")
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Only show this category")
	_ = Cmd.MarkFlagRequired("input")
}

// Print writes the grids built from path to out, optionally limited to one
// category.
func Print(ctx context.Context, p *pipeline.Pipeline, path, only string, out io.Writer) error {
	var filter models.Category
	if only != "" {
		c, ok := models.ParseCategory(only)
		if !ok {
			return fmt.Errorf("unknown category %q", only)
		}
		filter = c
	}

	grids, err := p.Preview(ctx, path)
	if errors.Is(err, parsererror.ErrNoData) {
		_, werr := fmt.Fprintln(out, "# no insurance entries found")
		return werr
	}
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()

	for _, g := range grids {
		if filter != "" && g.Category != filter {
			continue
		}
		if err := enc.Encode(view(g)); err != nil {
			return fmt.Errorf("failed to encode sheet %s: %w", g.Name, err)
		}
	}
	return nil
}

type sheetView struct {
	Sheet     string              `yaml:"sheet"`
	Category  string              `yaml:"category"`
	Mode      grid.Mode           `yaml:"mode"`
	Employees []string            `yaml:"employees"`
	Dates     []string            `yaml:"dates"`
	Cells     []map[string]string `yaml:"cells"`
	Totals    map[string]string   `yaml:"totals"`
	Grand     string              `yaml:"grand_total"`
}

// view flattens a grid to one entry per row, keyed by cell reference.
func view(g *grid.Grid) sheetView {
	v := sheetView{
		Sheet:     g.Name,
		Category:  g.Category.String(),
		Mode:      g.Mode,
		Employees: g.Employees,
		Dates:     g.Dates,
	}
	for _, row := range g.Rows {
		cells := make(map[string]string, len(row.Cells))
		for _, c := range row.Cells {
			ref, err := grid.CellRef(row.Index, c.Col)
			if err != nil {
				continue
			}
			rendered, err := c.Value.MarshalYAML()
			if err != nil {
				continue
			}
			cells[ref] = fmt.Sprint(rendered)
		}
		v.Cells = append(v.Cells, cells)
	}
	v.Totals, v.Grand = totals(g)
	return v
}

// totals evaluates the formulas of g: one total per employee and the grand
// total. Simple grids have no total row, so their grand total is the sum of
// the employee totals.
func totals(g *grid.Grid) (map[string]string, string) {
	perEmployee := make(map[string]string, len(g.Employees))
	sum := decimal.Zero
	for _, emp := range g.Employees {
		row := g.EmployeeRow(emp)
		total := decimal.Zero
		for i := range g.Dates {
			v, err := g.Evaluate(row, grid.AmountCol(i))
			if err != nil {
				continue
			}
			total = total.Add(v)
		}
		perEmployee[emp] = total.StringFixed(2)
		sum = sum.Add(total)
	}

	if row := g.TotalRow(); row >= 0 {
		if grand, err := g.Evaluate(row, grid.RowTotalCol); err == nil {
			return perEmployee, grand.StringFixed(2)
		}
	}
	return perEmployee, sum.StringFixed(2)
}
