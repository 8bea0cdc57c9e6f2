// Package root contains the root command for the application
package root

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"fjacquet/insurance-summary/internal/config"
	"fjacquet/insurance-summary/internal/container"
	"fjacquet/insurance-summary/internal/logging"

	"github.com/spf13/cobra"
)

// GlobalFlags are the persistent flags shared by every command.
type GlobalFlags struct {
	ConfigFile string
	LogLevel   string
	LogFormat  string
}

// ErrReported marks an error the user was already notified about, so it is
// not printed a second time on exit.
var ErrReported = errors.New("already reported")

var (
	// Log is the shared logger instance for commands
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// AppContainer is built before any subcommand runs.
	AppContainer *container.Container

	// Flags holds the persistent flag values.
	Flags = GlobalFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "insurance-summary",
		Short: "Summarize payroll insurance deductions per employee and pay date.",
		Long: `insurance-summary reads a payroll transaction report (xlsx) and writes a
workbook with one sheet per insurance category, pivoting the amounts by
employee and pay date with row and column totals.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: Setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	initOnce sync.Once
)

// Init initializes the root command and all flags
func Init() {
	initOnce.Do(func() {
		Cmd.PersistentFlags().StringVar(&Flags.ConfigFile, "config", "", "Config file (default: config.yaml in $HOME/.insurance-summary, .insurance-summary or .)")
		Cmd.PersistentFlags().StringVar(&Flags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
		Cmd.PersistentFlags().StringVar(&Flags.LogFormat, "log-format", "", "Log format (text or json)")
	})
}

// Setup loads the configuration, applies flag overrides and builds the
// application container.
func Setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.InitializeConfig(Flags.ConfigFile)
	if err != nil {
		return err
	}
	if Flags.LogLevel != "" {
		cfg.Log.Level = Flags.LogLevel
	}
	if Flags.LogFormat != "" {
		cfg.Log.Format = Flags.LogFormat
	}

	c, err := container.New(cfg, cmd.InOrStdin(), cmd.OutOrStdout(), nil)
	if err != nil {
		return err
	}
	AppContainer = c
	Log = c.GetLogger()
	Log.Debug("Configuration loaded",
		logging.Field{Key: "command", Value: cmd.Name()},
		logging.Field{Key: "config_file", Value: Flags.ConfigFile})
	return nil
}

// Execute runs the command tree and returns the process exit code. Errors
// not yet shown to the user are printed to errOut.
func Execute(errOut io.Writer) int {
	if err := Cmd.Execute(); err != nil {
		if !errors.Is(err, ErrReported) {
			_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
