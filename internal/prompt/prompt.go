// Package prompt asks the user which report to read and where to save the
// summary.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrCancelled is returned when the user declines to pick a file.
var ErrCancelled = errors.New("selection cancelled")

// Prompter selects the input report and the output workbook.
type Prompter interface {
	SelectInput() (string, error)
	SelectOutput(defaultName string) (string, error)
}

// Terminal reads answers line by line from in and writes questions to out.
type Terminal struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewTerminal creates a Terminal prompter.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{scanner: bufio.NewScanner(in), out: out}
}

// SelectInput asks for the transaction report. An empty answer or end of
// input cancels.
func (t *Terminal) SelectInput() (string, error) {
	answer, err := t.ask("Transaction report to summarize (.xlsx): ")
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", ErrCancelled
	}
	return answer, nil
}

// SelectOutput asks where to save the summary. An empty answer keeps
// defaultName; end of input cancels.
func (t *Terminal) SelectOutput(defaultName string) (string, error) {
	answer, err := t.ask(fmt.Sprintf("Save summary as [%s]: ", defaultName))
	if err != nil {
		return "", err
	}
	if answer == "" {
		if defaultName == "" {
			return "", ErrCancelled
		}
		return defaultName, nil
	}
	return answer, nil
}

func (t *Terminal) ask(question string) (string, error) {
	if _, err := fmt.Fprint(t.out, question); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		return "", ErrCancelled
	}
	return cleanPath(t.scanner.Text()), nil
}

// cleanPath trims whitespace and the quotes terminals add around dropped
// file paths.
func cleanPath(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

// Fixed answers with predetermined paths, for non-interactive runs.
type Fixed struct {
	Input  string
	Output string
}

func (f Fixed) SelectInput() (string, error) {
	if f.Input == "" {
		return "", ErrCancelled
	}
	return f.Input, nil
}

func (f Fixed) SelectOutput(defaultName string) (string, error) {
	if f.Output != "" {
		return f.Output, nil
	}
	if defaultName == "" {
		return "", ErrCancelled
	}
	return defaultName, nil
}
