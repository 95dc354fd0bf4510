package factorial

import (
	"log/slog"

	"github.com/jmgilman/go/factorial/internal/logging"
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithPresieve sieves every prime <= limit when the engine is created.
// Without this option the first call to Factorize sieves lazily.
//
// Example:
//
//	engine := factorial.New(factorial.WithPresieve(100))
func WithPresieve(limit uint64) Option {
	return func(e *Engine) {
		e.presieve = &limit
	}
}

// WithLogger sets the logger used for cache and factorization events.
// Events are emitted at debug level. A nil logger disables logging.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logging.New(logger).With("component", "factorial")
	}
}
