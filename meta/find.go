package meta

import (
	"sync/atomic"

	"github.com/coregx/btre/backtrack"
	"github.com/coregx/btre/syntax"
)

var noMatch = syntax.Range{Start: -1, End: -1}

// IsMatch reports whether the pattern matches anywhere in haystack.
func (e *Engine) IsMatch(haystack []byte) bool {
	_, _, found := e.FindIndicesAt(haystack, 0)
	return found
}

// Find returns the leftmost match in haystack, or nil.
func (e *Engine) Find(haystack []byte) *Match {
	return e.FindAt(haystack, 0)
}

// FindAt returns the leftmost match starting at or after at, or nil.
// Offsets are relative to the whole haystack.
func (e *Engine) FindAt(haystack []byte, at int) *Match {
	start, end, found := e.FindIndicesAt(haystack, at)
	if !found {
		return nil
	}
	return NewMatch(start, end, haystack)
}

// FindIndicesAt returns the span of the leftmost match starting at or after
// at without allocating. A search stopped by Config.MaxSteps reports no
// match.
func (e *Engine) FindIndicesAt(haystack []byte, at int) (start, end int, found bool) {
	r, err := e.Exec(haystack, at)
	if err != nil {
		return -1, -1, false
	}
	return r.Start, r.End, true
}

// Exec returns the span of the leftmost match starting at or after at.
//
// The error is backtrack.ErrNoMatch when there is no match and
// backtrack.ErrStepLimit when the search ran out of steps.
func (e *Engine) Exec(haystack []byte, at int) (syntax.Range, error) {
	state := e.getState()
	defer e.putState(state)
	return e.execWithState(haystack, at, state)
}

func (e *Engine) execWithState(haystack []byte, at int, state *searchState) (syntax.Range, error) {
	atomic.AddUint64(&e.stats.Searches, 1)
	if at < 0 || at > len(haystack) || len(haystack)-at < e.minLen {
		return noMatch, backtrack.ErrNoMatch
	}

	var (
		r   syntax.Range
		err error
	)
	switch e.strategy {
	case UseNever:
		return noMatch, backtrack.ErrNoMatch
	case UseLiteral:
		return e.findLiteral(haystack, at)
	case UsePrefilter:
		r, err = e.findPrefilter(haystack, at, state)
	default:
		atomic.AddUint64(&e.stats.BacktrackSearches, 1)
		r, err = state.bt.Search(haystack, at)
	}
	if err == backtrack.ErrStepLimit {
		atomic.AddUint64(&e.stats.StepLimitHits, 1)
	}
	return r, err
}

// findLiteral answers a search from a complete prefilter: every candidate
// is a match of exactly LiteralLen bytes.
func (e *Engine) findLiteral(haystack []byte, at int) (syntax.Range, error) {
	atomic.AddUint64(&e.stats.LiteralSearches, 1)
	pos := e.prefilter.Find(haystack, at)
	if pos < 0 {
		return noMatch, backtrack.ErrNoMatch
	}
	return syntax.Range{Start: pos, End: pos + e.prefilter.LiteralLen()}, nil
}

// findPrefilter attempts anchored matches only at prefilter candidates.
// Candidates arrive in increasing order and every skipped offset is known
// not to start a match, so the first confirmed candidate is leftmost.
//
// If the tracker retires the prefilter, the remaining offsets are searched
// one by one with the same memo.
func (e *Engine) findPrefilter(haystack []byte, at int, state *searchState) (syntax.Range, error) {
	bt, tracker := state.bt, state.tracker
	tracker.Reset()
	bt.Prepare(haystack)

	pos := at
	for {
		cand := tracker.Find(haystack, pos)
		if cand < 0 {
			if tracker.IsActive() {
				return noMatch, backtrack.ErrNoMatch
			}
			atomic.AddUint64(&e.stats.PrefilterAbandoned, 1)
			atomic.AddUint64(&e.stats.BacktrackSearches, 1)
			return bt.SearchFrom(haystack, pos)
		}
		if len(haystack)-cand < e.minLen {
			return noMatch, backtrack.ErrNoMatch
		}
		end, err := bt.Attempt(haystack, cand, backtrack.Prefix)
		if err == nil {
			tracker.ConfirmMatch()
			atomic.AddUint64(&e.stats.PrefilterHits, 1)
			return syntax.Range{Start: cand, End: end}, nil
		}
		if err != backtrack.ErrNoMatch {
			return noMatch, err
		}
		atomic.AddUint64(&e.stats.PrefilterMisses, 1)
		pos = cand + 1
	}
}

// MatchPrefix attempts an anchored match at offset 0 and returns the number
// of bytes consumed. Trailing input is allowed.
func (e *Engine) MatchPrefix(haystack []byte) (int, bool) {
	end, err := e.ExecAnchored(haystack, 0, backtrack.Prefix)
	if err != nil {
		return 0, false
	}
	return end, true
}

// MatchFull reports whether the pattern matches the whole haystack.
func (e *Engine) MatchFull(haystack []byte) bool {
	_, err := e.ExecAnchored(haystack, 0, backtrack.Full)
	return err == nil
}

// ExecAnchored attempts one anchored match at at in the given mode and
// returns the end offset of the consumed span.
func (e *Engine) ExecAnchored(haystack []byte, at int, mode backtrack.Mode) (int, error) {
	if !e.feasible(haystack, at, mode) {
		return -1, backtrack.ErrNoMatch
	}
	state := e.getState()
	defer e.putState(state)
	end, err := state.bt.Exec(haystack, at, mode)
	if err == backtrack.ErrStepLimit {
		atomic.AddUint64(&e.stats.StepLimitHits, 1)
	}
	return end, err
}

// Trace performs an anchored match at offset 0 and returns, for each
// operator, the unit ranges it consumed.
func (e *Engine) Trace(haystack []byte, mode backtrack.Mode) ([][]syntax.Range, error) {
	if !e.feasible(haystack, 0, mode) {
		return nil, backtrack.ErrNoMatch
	}
	state := e.getState()
	defer e.putState(state)
	return state.bt.Trace(haystack, 0, mode)
}

// feasible rejects anchored attempts that cannot succeed on length alone.
func (e *Engine) feasible(haystack []byte, at int, mode backtrack.Mode) bool {
	if e.strategy == UseNever || at < 0 || at > len(haystack) {
		return false
	}
	rest := len(haystack) - at
	if rest < e.minLen {
		return false
	}
	return mode != backtrack.Full || e.maxLen < 0 || rest <= e.maxLen
}
