package meta

import (
	"github.com/coregx/btre/prefilter"
	"github.com/coregx/btre/syntax"
)

// Strategy is the execution plan chosen for a pattern.
type Strategy int

const (
	// UseBacktrack attempts a backtracking match at every offset.
	// Selected when nothing is known about how matches start, e.g. "a?b"
	// or ".x", or when prefilters are disabled.
	UseBacktrack Strategy = iota

	// UsePrefilter attempts backtracking only at offsets reported by a
	// prefilter, e.g. "ab+c" scans for "ab".
	UsePrefilter

	// UseLiteral answers searches from the prefilter alone. Selected when
	// the pattern is a fixed set of same-length literals, e.g. "abc" or
	// "[ab]c".
	UseLiteral

	// UseNever reports no match without scanning. Selected when a required
	// operator can match no byte, e.g. "a[]".
	UseNever
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case UseBacktrack:
		return "Backtrack"
	case UsePrefilter:
		return "Prefilter"
	case UseLiteral:
		return "Literal"
	case UseNever:
		return "Never"
	default:
		return "Unknown"
	}
}

// SelectStrategy picks the strategy for a pattern given the prefilter built
// for it (nil if none).
func SelectStrategy(p *syntax.Pattern, pf prefilter.Prefilter) Strategy {
	switch {
	case !p.Satisfiable():
		return UseNever
	case pf == nil:
		return UseBacktrack
	case pf.IsComplete():
		return UseLiteral
	default:
		return UsePrefilter
	}
}
