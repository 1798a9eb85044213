package graphlog

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger zerolog.Logger = zerolog.Nop()
)

// SetLogger replaces the package-level logger. Callers that want output
// typically pass zerolog.New(os.Stderr).With().Timestamp().Logger().
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Get returns the current package-level logger.
func Get() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// NewDefault builds a human-readable console logger at the given level,
// convenient for graphctl and local debugging.
func NewDefault(level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
