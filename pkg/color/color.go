// Package color provides terminal color output support for jobmill.
// It respects the NO_COLOR environment variable (https://no-color.org/).
package color

import (
	"fmt"
	"os"
	"sync"
)

var state struct {
	mu      sync.Mutex
	inited  bool
	enabled bool
}

// Init initializes the color system based on environment and flags.
// The first call wins; later calls are no-ops unless Enable/Disable is used.
func Init(noColorFlag bool) {
	state.mu.Lock()
	defer state.mu.Unlock()
	if state.inited {
		return
	}
	state.inited = true

	disabled := noColorFlag
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		disabled = true
	}
	if os.Getenv("TERM") == "dumb" {
		disabled = true
	}
	state.enabled = !disabled
}

// Enabled returns true if color output is enabled.
func Enabled() bool {
	Init(false)
	state.mu.Lock()
	defer state.mu.Unlock()
	return state.enabled
}

// Disable turns off color output.
func Disable() {
	Init(false)
	state.mu.Lock()
	defer state.mu.Unlock()
	state.enabled = false
}

// Enable turns on color output.
func Enable() {
	Init(false)
	state.mu.Lock()
	defer state.mu.Unlock()
	state.enabled = true
}

// ANSI color codes
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	DimCode = "\033[2m"

	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

func wrap(code, s string) string {
	if !Enabled() {
		return s
	}
	return code + s + Reset
}

// Success formats a success message in green.
func Success(s string) string { return wrap(Green, s) }

// Error formats an error message in red.
func Error(s string) string { return wrap(Red, s) }

// Errorf formats an error message with printf-style arguments.
func Errorf(format string, args ...any) string {
	return wrap(Red, fmt.Sprintf(format, args...))
}

// Warning formats a warning message in yellow.
func Warning(s string) string { return wrap(Yellow, s) }

// Header formats a header in bold.
func Header(s string) string { return wrap(Bold, s) }

// Dim formats dimmed text (for secondary information).
func Dim(s string) string { return wrap(DimCode, s) }

// SavepointPath formats a savepoint location in cyan (for visibility).
func SavepointPath(s string) string { return wrap(Cyan, s) }

// ClaimMode formats a recovery claim mode in yellow.
func ClaimMode(s string) string { return wrap(Yellow, s) }
