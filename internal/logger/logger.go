package logger

import (
	"os"

	"github.com/fatih/color" // fatih/color provides the colored printf functions
)

// Colorized printing functions for the different log levels. These are
// package-level variables behaving like fmt.Printf, colored per level.

// Info logs informational messages in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta so they stand out without
// looking like a failure.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red on the error stream, so failing runs can
// be diagnosed even when stdout is redirected.
var Error = func(format string, a ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, format, a...)
}

// Debug logs debug messages in cyan when enabled. It defaults to a no-op so
// packages can log before Init runs (e.g. during flag parsing).
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging. When enabled, Debug prints
// cyan-colored messages; otherwise it stays a no-op.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
