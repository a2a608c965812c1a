package backtrack

// Config controls the backtracker.
type Config struct {
	// Memoize records (operator, offset) pairs that are known to fail so
	// they are never explored twice. This bounds the work of a search to
	// O(operators * input) at the cost of one bit per pair.
	// Default: true
	Memoize bool

	// MaxMemoBits caps the memo size in bits. Searches whose
	// operators * (len(input)+1) exceeds it run without memoization.
	// Default: 256KB worth of bits
	MaxMemoBits int

	// MaxSteps abandons a search with ErrStepLimit after this many steps.
	// A step is one operator entry or one repeat given back. Zero means
	// no limit.
	// Default: 0
	MaxSteps int
}

// DefaultConfig returns the default backtracker configuration.
func DefaultConfig() Config {
	return Config{
		Memoize:     true,
		MaxMemoBits: 256 * 1024 * 8,
		MaxSteps:    0,
	}
}
