package cli

import (
	"fmt"
	"io"
	"os"
)

// ANSI color codes
const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
)

// Output destinations, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// colorize wraps s in color unless colors are disabled.
func colorize(color, s string) string {
	if globalNoColor {
		return s
	}
	return color + s + colorReset
}

// styleStep colours a next-step command green.
func styleStep(s string) string {
	return colorize(colorGreen, s)
}

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", colorize(colorGreen, "✓"), msg)
}

// printWarning prints a warning message. Warnings go to stderr so they are
// not lost when stdout is redirected.
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stderr, "%s %s\n", colorize(colorYellow, "⚠"), msg)
}

// printErrorMsg prints an error message (different from printError which takes error type)
func printErrorMsg(msg string) {
	fmt.Fprintf(stderr, "%s %s\n", colorize(colorRed, "✗"), msg)
}

// printProgress prints a progress indicator
func printProgress(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", colorize(colorBlue, "→"), msg)
}

// printHeader prints a section header
func printHeader(title string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "\n%s\n", colorize(colorMagenta, "=== "+title+" ==="))
}

// consoleNotifier reports workflow progress through the output helpers.
type consoleNotifier struct{}

func (consoleNotifier) Progress(msg string) { printProgress(msg) }
func (consoleNotifier) Success(msg string)  { printSuccess(msg) }
func (consoleNotifier) Warning(msg string)  { printWarning(msg) }
