package fheregex

// Config controls pattern-compilation and evaluation behavior.
//
// Example:
//
//	config := fheregex.DefaultConfig()
//	config.CacheEnabled = false // measure the cache's contribution
//	pat, err := fheregex.CompileWithConfig(`/ab+c/`, config)
type Config struct {
	// MaxContentLength caps the number of content ciphertexts HasMatch
	// will accept before returning a ContentError, independent of the
	// pattern. A sanity bound, not a protocol limit.
	// Default: 4096
	MaxContentLength int

	// CacheEnabled enables the structural cache described in spec.md
	// §4.4. When false, every Executed op is recomputed from scratch,
	// which is useful only for measuring the cache's contribution to
	// the ciphertext-operation count (spec.md §8's cache-hit
	// property).
	// Default: true
	CacheEnabled bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxContentLength: 4096,
		CacheEnabled:     true,
	}
}

// Validate checks that c's fields are within acceptable ranges.
func (c Config) Validate() error {
	if c.MaxContentLength < 1 {
		return &ConfigError{Field: "MaxContentLength", Message: "must be at least 1"}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "fheregex: invalid config: " + e.Field + ": " + e.Message
}
