package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// DiagnosticLevel represents the level of diagnostic output
type DiagnosticLevel int

const (
	DiagnosticSilent DiagnosticLevel = iota
	DiagnosticError
	DiagnosticInfo
	DiagnosticVerbose
)

// DiagnosticSystem provides structured terminal output for the CLI
type DiagnosticSystem struct {
	level    DiagnosticLevel
	output   io.Writer
	errorOut io.Writer

	errorColor   *color.Color
	warnColor    *color.Color
	infoColor    *color.Color
	successColor *color.Color
	verboseColor *color.Color
	headerColor  *color.Color
}

// NewDiagnosticSystem creates a diagnostic system writing to stdout/stderr.
// Color handling follows the color package's defaults (disabled when stdout
// is not a terminal or NO_COLOR is set).
func NewDiagnosticSystem(level DiagnosticLevel) *DiagnosticSystem {
	return &DiagnosticSystem{
		level:        level,
		output:       os.Stdout,
		errorOut:     os.Stderr,
		errorColor:   color.New(color.FgRed, color.Bold),
		warnColor:    color.New(color.FgYellow),
		infoColor:    color.New(color.FgBlue),
		successColor: color.New(color.FgGreen, color.Bold),
		verboseColor: color.New(color.FgHiBlack),
		headerColor:  color.New(color.FgCyan, color.Bold),
	}
}

// NewQuietDiagnostics creates a diagnostic system that only shows errors
func NewQuietDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticError)
}

// NewVerboseDiagnostics creates a diagnostic system with full output
func NewVerboseDiagnostics() *DiagnosticSystem {
	return NewDiagnosticSystem(DiagnosticVerbose)
}

// SetOutput redirects output streams, used by tests
func (d *DiagnosticSystem) SetOutput(out, errOut io.Writer) {
	d.output = out
	d.errorOut = errOut
}

// Error outputs error messages (always shown unless silent)
func (d *DiagnosticSystem) Error(format string, args ...interface{}) {
	if d.level >= DiagnosticError {
		fmt.Fprintf(d.errorOut, "%s %s\n", d.errorColor.Sprint("ERROR"), fmt.Sprintf(format, args...))
	}
}

// Warn outputs warning messages
func (d *DiagnosticSystem) Warn(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "%s %s\n", d.warnColor.Sprint("WARN"), fmt.Sprintf(format, args...))
	}
}

// Info outputs informational messages
func (d *DiagnosticSystem) Info(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "%s %s\n", d.infoColor.Sprint("INFO"), fmt.Sprintf(format, args...))
	}
}

// Success outputs success messages with emphasis
func (d *DiagnosticSystem) Success(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "%s %s\n", d.successColor.Sprint("OK"), fmt.Sprintf(format, args...))
	}
}

// Verbose outputs detailed messages (verbose mode only)
func (d *DiagnosticSystem) Verbose(format string, args ...interface{}) {
	if d.level >= DiagnosticVerbose {
		fmt.Fprintf(d.output, "%s\n", d.verboseColor.Sprintf(format, args...))
	}
}

// Section prints a section header
func (d *DiagnosticSystem) Section(title string) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "\n%s\n", d.headerColor.Sprint(title))
	}
}

// List prints an indented list item
func (d *DiagnosticSystem) List(format string, args ...interface{}) {
	if d.level >= DiagnosticInfo {
		fmt.Fprintf(d.output, "  - %s\n", fmt.Sprintf(format, args...))
	}
}
