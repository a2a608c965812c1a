// Package meta implements the engine that selects how a compiled pattern is
// executed.
//
// Depending on what the pattern requires at the start of every match, the
// engine either scans for a complete literal (no backtracking at all), uses a
// prefilter to pick candidate start offsets for the backtracker, or runs the
// backtracker at every offset.
package meta

// Config controls engine behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.MaxSteps = 1_000_000 // bound pathological backtracking
//	engine, err := meta.CompileWithConfig("[ab]*b[ab]*c", config)
type Config struct {
	// EnablePrefilter enables literal and byte-set prefilters.
	// Default: true
	EnablePrefilter bool

	// EnableMemoization records failing (operator, offset) pairs during a
	// search so no pair is explored twice.
	// Default: true
	EnableMemoization bool

	// MaxMemoBits caps the memo bit vector. Searches that would need more
	// run without memoization.
	// Default: 2M bits (256KB)
	MaxMemoBits int

	// MaxSteps bounds the backtracking work of one search. Searches that
	// exceed it report no match (or ErrStepLimit from Exec). Zero means
	// no limit.
	// Default: 0
	MaxSteps int

	// MaxLiterals limits the number of required prefixes extracted for the
	// prefilter.
	// Default: 64
	MaxLiterals int

	// MaxClassSize is the largest bracket set expanded into literal
	// alternatives.
	// Default: 10
	MaxClassSize int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:   true,
		EnableMemoization: true,
		MaxMemoBits:       256 * 1024 * 8,
		MaxSteps:          0,
		MaxLiterals:       64,
		MaxClassSize:      10,
	}
}

// Validate checks that every parameter is in range.
//
// Valid ranges:
//   - MaxMemoBits: 64 to 1<<30 (when memoization is enabled)
//   - MaxSteps: >= 0
//   - MaxLiterals: 1 to 1,000 (when prefilter is enabled)
//   - MaxClassSize: 1 to 256 (when prefilter is enabled)
func (c Config) Validate() error {
	if c.EnableMemoization && (c.MaxMemoBits < 64 || c.MaxMemoBits > 1<<30) {
		return &ConfigError{Field: "MaxMemoBits", Message: "must be between 64 and 1073741824"}
	}
	if c.MaxSteps < 0 {
		return &ConfigError{Field: "MaxSteps", Message: "must not be negative"}
	}
	if c.EnablePrefilter {
		if c.MaxLiterals < 1 || c.MaxLiterals > 1_000 {
			return &ConfigError{Field: "MaxLiterals", Message: "must be between 1 and 1,000"}
		}
		if c.MaxClassSize < 1 || c.MaxClassSize > 256 {
			return &ConfigError{Field: "MaxClassSize", Message: "must be between 1 and 256"}
		}
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
	return "regexp: invalid config: " + e.Field + ": " + e.Message
}
