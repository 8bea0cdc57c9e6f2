// Package notify reports run outcomes to the user.
package notify

import (
	"fmt"
	"io"
	"sync"

	"fjacquet/insurance-summary/internal/logging"
)

// Level is the severity of a notification.
type Level string

const (
	LevelInfo  Level = "info"
	LevelWarn  Level = "warning"
	LevelError Level = "error"
)

// Notifier shows messages to the user.
type Notifier interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}

// Console prints notifications to a writer and mirrors them to the log.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	logger logging.Logger
}

// NewConsole creates a Console notifier.
func NewConsole(out io.Writer, logger logging.Logger) *Console {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Console{out: out, logger: logger}
}

func (c *Console) Info(msg string)  { c.notify(LevelInfo, msg) }
func (c *Console) Warn(msg string)  { c.notify(LevelWarn, msg) }
func (c *Console) Error(msg string) { c.notify(LevelError, msg) }

func (c *Console) notify(level Level, msg string) {
	c.logger.Debug("Notification", logging.Field{Key: "level", Value: string(level)}, logging.Field{Key: "message", Value: msg})

	c.mu.Lock()
	defer c.mu.Unlock()
	var err error
	if level == LevelInfo {
		_, err = fmt.Fprintln(c.out, msg)
	} else {
		_, err = fmt.Fprintf(c.out, "%s: %s\n", level, msg)
	}
	if err != nil {
		c.logger.WithError(err).Warn("Failed to print notification")
	}
}

// Message is one recorded notification.
type Message struct {
	Level Level
	Text  string
}

// Recorder keeps notifications in memory.
type Recorder struct {
	mu       sync.Mutex
	Messages []Message
}

func (r *Recorder) Info(msg string)  { r.add(LevelInfo, msg) }
func (r *Recorder) Warn(msg string)  { r.add(LevelWarn, msg) }
func (r *Recorder) Error(msg string) { r.add(LevelError, msg) }

func (r *Recorder) add(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, Message{Level: level, Text: msg})
}

// ByLevel returns the texts recorded at level.
func (r *Recorder) ByLevel(level Level) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, m := range r.Messages {
		if m.Level == level {
			out = append(out, m.Text)
		}
	}
	return out
}
