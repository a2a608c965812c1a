// Package backtrack implements a backtracking matcher over a compiled
// syntax.Pattern.
//
// Each operator first consumes as many repeats as its bounds and the input
// allow. When a later operator fails, the matcher gives back one repeat at a
// time from the most recent operator that still has repeats above its
// minimum, and retries from there. This yields greedy-first,
// shortest-on-backtrack repetition with global backtracking across
// operators.
package backtrack

import "errors"

var (
	// ErrNoMatch indicates the pattern does not match. It is an ordinary
	// outcome, not a failure of the matcher.
	ErrNoMatch = errors.New("no match")

	// ErrStepLimit indicates the search was abandoned because it exceeded
	// Config.MaxSteps.
	ErrStepLimit = errors.New("backtracking step limit exceeded")
)
