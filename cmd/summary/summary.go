// Package summary implements the command that builds the insurance summary
// workbook.
package summary

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"fjacquet/insurance-summary/cmd/root"
	"fjacquet/insurance-summary/internal/container"
	"fjacquet/insurance-summary/internal/fileutils"
	"fjacquet/insurance-summary/internal/grid"
	"fjacquet/insurance-summary/internal/logging"
	"fjacquet/insurance-summary/internal/parsererror"
	"fjacquet/insurance-summary/internal/pipeline"
	"fjacquet/insurance-summary/internal/prompt"

	"github.com/spf13/cobra"
)

// Options are the summary command flags.
type Options struct {
	Input       string
	Output      string
	Mode        string
	RecordsFile string
}

var opts Options

// Cmd represents the summary command
var Cmd = &cobra.Command{
	Use:   "summary",
	Short: "Build the insurance summary workbook from a payroll report",
	Long: `Build the insurance summary workbook from a payroll transaction report.

Each insurance category found in the report becomes a sheet listing every
employee, with one amount, name and date column per pay date, row totals and
a total row. Input and output paths not given as flags are asked for.

The report must be an .xlsx, .xlsm or .xltx workbook. Legacy .xls files are
not supported; save them as .xlsx first.`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Payroll transaction report (.xlsx)")
	Cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Summary workbook to write (.xlsx is appended when missing)")
	Cmd.Flags().StringVar(&opts.Mode, "mode", "", "Layout mode: detailed (formulas and totals) or simple (summed values)")
	Cmd.Flags().StringVar(&opts.RecordsFile, "records", "", "Also write the extracted records to this CSV file")
}

func run(cmd *cobra.Command, args []string) error {
	c := root.AppContainer
	if c == nil {
		return errors.New("application not initialized")
	}
	if opts.Mode != "" {
		mode, err := grid.ParseMode(opts.Mode)
		if err != nil {
			return err
		}
		cfg := *c.GetConfig()
		cfg.Output.Mode = string(mode)
		if c, err = container.New(&cfg, cmd.InOrStdin(), cmd.OutOrStdout(), c.GetLogger()); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return Run(ctx, c, opts)
}

// Run selects the paths that were not given, runs the pipeline and tells the
// user how it went. A cancelled selection or an empty report is not an
// error; a failed run returns an error wrapping root.ErrReported.
func Run(ctx context.Context, c *container.Container, o Options) error {
	notifier := c.GetNotifier()
	prompter := c.GetPrompter()
	cfg := c.GetConfig()
	log := c.GetLogger()

	fail := func(err error) error {
		notifier.Error(err.Error())
		return errors.Join(root.ErrReported, err)
	}

	input := o.Input
	if input == "" {
		selected, err := prompter.SelectInput()
		if errors.Is(err, prompt.ErrCancelled) {
			notifier.Info("No input file selected. Nothing to do.")
			return nil
		}
		if err != nil {
			return fail(err)
		}
		input = selected
	}
	if err := fileutils.RequireFile(input); err != nil {
		return fail(err)
	}

	output := o.Output
	if output == "" {
		selected, err := prompter.SelectOutput(cfg.Output.File)
		if errors.Is(err, prompt.ErrCancelled) {
			notifier.Info("No output file selected. Nothing to do.")
			return nil
		}
		if err != nil {
			return fail(err)
		}
		output = selected
	}

	records := o.RecordsFile
	if records == "" {
		records = cfg.Output.RecordsFile
	}

	res, err := c.GetPipeline().Run(ctx, input, output, pipeline.Options{RecordsFile: records})
	switch {
	case errors.Is(err, parsererror.ErrNoData):
		notifier.Warn("No insurance entries were found in the report. No summary was written.")
		return nil
	case errors.Is(err, context.Canceled):
		notifier.Info("Interrupted. No summary was written.")
		return nil
	case err != nil:
		log.WithError(err).Error("Insurance summary failed", logging.Field{Key: logging.FieldInputFile, Value: input})
		return fail(err)
	}

	for _, sheetErr := range res.SheetErrors {
		notifier.Warn(fmt.Sprintf("Sheet '%s' could not be created: %v", sheetErr.Sheet, sheetErr.Err))
	}
	if res.RecordsFile != "" {
		notifier.Info(fmt.Sprintf("Extracted records written to %s", res.RecordsFile))
	}
	notifier.Info(fmt.Sprintf("Summary with %d sheet(s) saved to %s", len(res.Sheets), res.OutputFile))
	return nil
}
