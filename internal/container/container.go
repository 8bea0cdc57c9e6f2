// Package container provides dependency injection for the insurance-summary
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"
	"io"

	"fjacquet/insurance-summary/internal/aggregator"
	"fjacquet/insurance-summary/internal/audit"
	"fjacquet/insurance-summary/internal/config"
	"fjacquet/insurance-summary/internal/extractor"
	"fjacquet/insurance-summary/internal/grid"
	"fjacquet/insurance-summary/internal/logging"
	"fjacquet/insurance-summary/internal/notify"
	"fjacquet/insurance-summary/internal/pipeline"
	"fjacquet/insurance-summary/internal/prompt"
	"fjacquet/insurance-summary/internal/xlsxio"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger logging.Logger
	config *config.Config

	reader     *xlsxio.Reader
	writer     *xlsxio.Writer
	extractor  *extractor.Extractor
	aggregator *aggregator.Aggregator
	engine     *grid.Engine
	exporter   *audit.Exporter
	pipeline   *pipeline.Pipeline

	notifier notify.Notifier
	prompter prompt.Prompter
}

// New creates and wires all application dependencies. Prompts are read from
// in; prompts and notifications go to out. A nil logger is built from the
// log section of cfg.
func New(cfg *config.Config, in io.Reader, out io.Writer, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = config.ConfigureLogging(cfg)
	}

	opts, err := cfg.ExtractorOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid input columns: %w", err)
	}
	mode, err := cfg.LayoutMode()
	if err != nil {
		return nil, err
	}

	c := &Container{
		logger:     logger,
		config:     cfg,
		reader:     xlsxio.NewReader(logger),
		writer:     xlsxio.NewWriter(cfg.Output.NumberFormat, logger),
		extractor:  extractor.New(opts, logger),
		aggregator: aggregator.New(logger),
		engine:     grid.NewEngine(mode, logger),
		exporter:   audit.NewExporter(logger),
		notifier:   notify.NewConsole(out, logger),
		prompter:   prompt.NewTerminal(in, out),
	}
	c.pipeline = pipeline.New(c.reader, c.extractor, c.aggregator, c.engine, c.writer, c.exporter, logger)

	logger.Debug("Container initialized",
		logging.Field{Key: logging.FieldMode, Value: string(mode)},
		logging.Field{Key: "header_rows", Value: opts.HeaderRows})

	return c, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

func (c *Container) GetReader() *xlsxio.Reader {
	return c.reader
}

func (c *Container) GetWriter() *xlsxio.Writer {
	return c.writer
}

func (c *Container) GetExtractor() *extractor.Extractor {
	return c.extractor
}

func (c *Container) GetAggregator() *aggregator.Aggregator {
	return c.aggregator
}

// GetEngine returns the layout engine configured with output.mode.
func (c *Container) GetEngine() *grid.Engine {
	return c.engine
}

func (c *Container) GetExporter() *audit.Exporter {
	return c.exporter
}

// GetPipeline returns the fully wired processing pipeline.
func (c *Container) GetPipeline() *pipeline.Pipeline {
	return c.pipeline
}

func (c *Container) GetNotifier() notify.Notifier {
	return c.notifier
}

func (c *Container) GetPrompter() prompt.Prompter {
	return c.prompter
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
