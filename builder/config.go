// File: config.go
// Role: functional-option configuration for Build: a resolved-options
//       struct behind a variadic Option, so new knobs can be added
//       without breaking Build's signature.
package builder

// Option customizes Build's behavior by mutating a config before k-mer
// extraction begins.
type Option func(cfg *config)

// config holds Build's resolved parameters.
type config struct {
	k int
}

// defaultK is used when no WithK option is supplied; 0 is deliberately
// invalid so that forgetting WithK surfaces as ErrKTooSmall rather than
// silently assembling with an unintended k.
const defaultK = 0

// newConfig returns a config initialized with defaults, then applies each
// Option in order.
func newConfig(opts ...Option) *config {
	cfg := &config{k: defaultK}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithK sets the k-mer length used to fragment reads.
func WithK(k int) Option {
	return func(cfg *config) { cfg.k = k }
}
