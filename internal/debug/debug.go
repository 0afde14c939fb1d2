// Package debug is the diagnostic logger used across create-repro.
// Output is written to stderr (or the writer set with SetOutput) only when
// debug mode is enabled with --debug or the "debug" config key.
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	out     io.Writer = os.Stderr
)

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
}

// SetOutput redirects debug output. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	out = w
}

// emit writes one debug line. colored is used when color output is on,
// plain otherwise; both receive the timestamp as their first argument.
func emit(colored, plain string, args ...interface{}) {
	mu.RLock()
	on, useColor, w := enabled, !noColor, out
	mu.RUnlock()
	if !on {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	all := append([]interface{}{timestamp}, args...)
	if useColor {
		fmt.Fprintf(w, colorCyan+"[DEBUG]"+colorReset+" "+colorGray+"%s"+colorReset+" "+colored+"\n", all...)
		return
	}
	fmt.Fprintf(w, "[DEBUG] %s "+plain+"\n", all...)
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	if !IsEnabled() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	emit("%s", "%s", msg)
}

// Debugf is an alias for Debug
func Debugf(format string, args ...interface{}) {
	Debug(format, args...)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	emit(colorCyan+"=== %s ==="+colorReset, "=== %s ===", section)
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	emit(colorCyan+"%s"+colorReset+" = %v", "%s = %v", key, value)
}

// DebugJSON prints structured data as JSON for debugging
func DebugJSON(key string, v interface{}) {
	if !IsEnabled() {
		return
	}

	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		Debug("Failed to marshal %s to JSON: %v", key, err)
		return
	}

	emit(colorCyan+"%s"+colorReset+":\n%s", "%s:\n%s", key, string(jsonBytes))
}
