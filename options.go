package fixgen

import (
	"io"
	"time"
)

// Option tweaks one generation call. Defaults cover production use; tests
// inject fixed clocks and entropy.
type Option func(*generator)

// WithRandom replaces the entropy source (default crypto/rand.Reader).
// The generator serializes nothing; a non-thread-safe reader must not be
// shared across concurrent calls.
func WithRandom(r io.Reader) Option {
	return func(g *generator) {
		if r != nil {
			g.rand = r
		}
	}
}

// WithSynthesizer replaces the pattern-driven string synthesizer used for
// pattern and phone generation. The synthesizer only has to produce some
// candidate; the generator verifies it against the pattern and retries.
func WithSynthesizer(fn func(pattern string) (string, error)) Option {
	return func(g *generator) {
		if fn != nil {
			g.synthesize = fn
		}
	}
}

// WithClock replaces the "today" source for date generation.
func WithClock(now func() time.Time) Option {
	return func(g *generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithMaxPatternRetries caps the rejection-sampling loops (default 1000).
func WithMaxPatternRetries(n int) Option {
	return func(g *generator) {
		if n > 0 {
			g.maxRetries = n
		}
	}
}
