package restli

import (
	"sync"

	"github.com/ConnectionMaster/restligen/internal/core/domain"
)

// The Java generator reads its two toggles from JVM system properties, so
// they are process-wide state rather than per-call arguments. The package
// mirrors them as process-wide defaults: one invocation overrides them for
// its duration and restores the prior values on every exit path, including
// failure.
var (
	defaultsMu sync.Mutex
	defaults   domain.GeneratorOptions
)

// SetDefaultOptions replaces the process-wide generator option defaults.
func SetDefaultOptions(opts domain.GeneratorOptions) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = opts
}

// DefaultOptions returns the current process-wide generator option defaults.
func DefaultOptions() domain.GeneratorOptions {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	return defaults
}

// overrideDefaults installs opts as the process-wide defaults and returns a
// restore function reinstating the saved values. Callers must defer the
// restore so it runs even when the generator call fails.
func overrideDefaults(opts domain.GeneratorOptions) (restore func()) {
	defaultsMu.Lock()
	saved := defaults
	defaults = opts
	defaultsMu.Unlock()

	return func() {
		defaultsMu.Lock()
		defaults = saved
		defaultsMu.Unlock()
	}
}
