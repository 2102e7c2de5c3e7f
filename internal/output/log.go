// Package output provides terminal output utilities for modsetup.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// logger is the global logger instance.
var logger *log.Logger

// detailsOut receives Details text; it follows SetLogOutput.
var detailsOut io.Writer = os.Stderr

func init() {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// LogConfig controls logger setup.
type LogConfig struct {
	// Verbose enables debug level, caller reporting and forces timestamps on.
	Verbose bool

	// Timestamps overrides the timestamp default (true) when non-nil.
	Timestamps *bool
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// SetupLogging configures the global logger.
func SetupLogging(cfg LogConfig) {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	timestamps := true
	if cfg.Timestamps != nil {
		timestamps = *cfg.Timestamps
	}
	if cfg.Verbose {
		timestamps = true
	}

	logger = log.NewWithOptions(detailsOut, log.Options{
		Level:           level,
		ReportTimestamp: timestamps,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
}

// SetLogOutput redirects the global logger.
func SetLogOutput(w io.Writer) {
	logger.SetOutput(w)
	detailsOut = w
}

// StageLogger returns a child logger prefixed with a pipeline stage name.
func StageLogger(stage string) *log.Logger {
	return logger.WithPrefix(StyleDim.Render("s:") + StyleNoun.Render(stage))
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...any) {
	logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...any) {
	logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...any) {
	logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...any) {
	logger.Error(msg, keyvals...)
}

// Details writes multi-line text to the log output without log formatting.
func Details(text string) {
	_, _ = io.WriteString(detailsOut, text)
	if len(text) > 0 && text[len(text)-1] != '\n' {
		_, _ = io.WriteString(detailsOut, "\n")
	}
}
