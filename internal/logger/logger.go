// Package logger provides the leveled logger of the command line tool. Library packages return errors instead of logging.
package logger

import (
	"io"
	"log"
	"os"
)

var (
	output  io.Writer = os.Stderr
	logger            = log.New(output, "", 0)
	verbose bool
)

// SetOutput configures the logger output destination. Use io.Discard to silence all logging.
func SetOutput(w io.Writer) {
	output = w
	logger = log.New(output, "", 0)
}

// SetVerbose enables debug messages.
func SetVerbose(v bool) {
	verbose = v
}

// Error logs an error message.
func Error(format string, args ...any) {
	logger.Printf("error: "+format, args...)
}

// Warn logs a warning message.
func Warn(format string, args ...any) {
	logger.Printf("warning: "+format, args...)
}

// Info logs an informational message.
func Info(format string, args ...any) {
	logger.Printf(format, args...)
}

// Debug logs a message only in verbose mode.
func Debug(format string, args ...any) {
	if verbose {
		logger.Printf(format, args...)
	}
}
