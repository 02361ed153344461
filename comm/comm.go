// Package comm prints to the terminal for the minemod CLI, in the
// host-agnostic spirit: library code only ever talks to a
// *state.Consumer, and this package is one possible sink for it.
package comm

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/itchio/headway/state"
)

var settings = struct {
	quiet   bool
	verbose bool
}{}

// Configure sets all logging options in one go
func Configure(quiet bool, verbose bool) {
	settings.quiet = quiet
	settings.verbose = verbose
}

var (
	opColor   = color.New(color.FgHiBlue)
	statColor = color.New(color.FgHiGreen)
	warnColor = color.New(color.FgHiYellow)
	dieColor  = color.New(color.FgHiRed)
)

// NewStateConsumer returns a consumer that prints directly to the
// console via minemod's logging functions.
func NewStateConsumer() *state.Consumer {
	return &state.Consumer{
		OnMessage: Logl,
	}
}

// Opf prints an operation, e.g. "Probing archive.zip"
func Opf(format string, args ...interface{}) {
	if settings.quiet {
		return
	}
	fmt.Fprintf(os.Stdout, "%s %s\n", opColor.Sprint("∙"), fmt.Sprintf(format, args...))
}

// Statf prints a result, e.g. "Patched in 2s"
func Statf(format string, args ...interface{}) {
	if settings.quiet {
		return
	}
	fmt.Fprintf(os.Stdout, "%s %s\n", statColor.Sprint("✓"), fmt.Sprintf(format, args...))
}

func Logf(format string, args ...interface{}) {
	Logl("info", fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...interface{}) {
	Logl("warning", fmt.Sprintf(format, args...))
}

func Debugf(format string, args ...interface{}) {
	Logl("debug", fmt.Sprintf(format, args...))
}

// Logl logs a message of a given level
func Logl(level string, msg string) {
	switch level {
	case "debug":
		if !settings.verbose {
			return
		}
		fmt.Fprintf(os.Stdout, "· %s\n", msg)
	case "warning", "warn":
		fmt.Fprintf(os.Stderr, "%s %s\n", warnColor.Sprint("!"), msg)
	case "error":
		fmt.Fprintf(os.Stderr, "%s %s\n", dieColor.Sprint("✗"), msg)
	default:
		if settings.quiet {
			return
		}
		fmt.Fprintf(os.Stdout, "  %s\n", msg)
	}
}

// Dief exits with a non-zero exit code after giving a reason
func Dief(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", dieColor.Sprint("✗"), fmt.Sprintf(format, args...))
	os.Exit(1)
}
