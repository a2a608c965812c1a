package prefilter

// Tracker wraps a Prefilter and retires it when too few of its candidates
// turn into matches.
//
// Each rejected candidate costs a failed backtracking attempt on top of the
// scan that found it. When the confirm ratio stays below MinEfficiency the
// caller is better off attempting every offset directly, so the tracker
// deactivates and never re-enables for the current search.
//
// Example usage:
//
//	tracker := prefilter.NewTracker(pf)
//	for tracker.IsActive() {
//	    pos := tracker.Find(haystack, start)
//	    if pos == -1 {
//	        break
//	    }
//	    if verify(haystack, pos) {
//	        tracker.ConfirmMatch()
//	        return pos
//	    }
//	    start = pos + 1
//	}
//
// A Tracker is not safe for concurrent use.
type Tracker struct {
	inner Prefilter

	candidates uint64
	confirms   uint64

	checkInterval  uint64
	minEfficiency  float64
	warmupPeriod   uint64
	lastCheckpoint uint64

	active bool
}

// TrackerConfig configures a Tracker.
type TrackerConfig struct {
	// CheckInterval is how many candidates pass between checks.
	// Default: 64
	CheckInterval uint64

	// MinEfficiency is the lowest acceptable confirms/candidates ratio.
	// Default: 0.1
	MinEfficiency float64

	// WarmupPeriod is the number of candidates seen before the first check.
	// Default: 128
	WarmupPeriod uint64
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		CheckInterval: 64,
		MinEfficiency: 0.1,
		WarmupPeriod:  128,
	}
}

// NewTracker creates a tracker with the default configuration.
// Returns nil if inner is nil.
func NewTracker(inner Prefilter) *Tracker {
	return NewTrackerWithConfig(inner, DefaultTrackerConfig())
}

// NewTrackerWithConfig creates a tracker. Returns nil if inner is nil.
func NewTrackerWithConfig(inner Prefilter, config TrackerConfig) *Tracker {
	if inner == nil {
		return nil
	}
	return &Tracker{
		inner:         inner,
		checkInterval: config.CheckInterval,
		minEfficiency: config.MinEfficiency,
		warmupPeriod:  config.WarmupPeriod,
		active:        true,
	}
}

// Find returns the next candidate, or -1 if there is none or the tracker
// has been retired.
func (t *Tracker) Find(haystack []byte, start int) int {
	if !t.active {
		return -1
	}
	pos := t.inner.Find(haystack, start)
	if pos >= 0 {
		t.candidates++
		t.check()
	}
	return pos
}

// ConfirmMatch records that the last candidate was a real match.
func (t *Tracker) ConfirmMatch() {
	t.confirms++
}

// IsActive reports whether the prefilter is still in use.
func (t *Tracker) IsActive() bool {
	return t.active
}

// Stats returns candidates seen, confirms, their ratio, and whether the
// tracker is still active.
func (t *Tracker) Stats() (candidates, confirms uint64, efficiency float64, active bool) {
	candidates = t.candidates
	confirms = t.confirms
	if candidates > 0 {
		efficiency = float64(confirms) / float64(candidates)
	}
	return candidates, confirms, efficiency, t.active
}

// Reset clears statistics and re-activates the tracker.
func (t *Tracker) Reset() {
	t.candidates = 0
	t.confirms = 0
	t.lastCheckpoint = 0
	t.active = true
}

// Inner returns the wrapped prefilter.
func (t *Tracker) Inner() Prefilter {
	return t.inner
}

func (t *Tracker) check() {
	if t.candidates < t.warmupPeriod {
		return
	}
	if t.candidates-t.lastCheckpoint < t.checkInterval {
		return
	}
	t.lastCheckpoint = t.candidates
	if float64(t.confirms)/float64(t.candidates) < t.minEfficiency {
		t.active = false
	}
}
