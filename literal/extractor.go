package literal

import "github.com/coregx/btre/syntax"

// ExtractorConfig limits literal extraction.
type ExtractorConfig struct {
	// MaxLiterals caps the size of the cross product of leading classes.
	// Default: 64
	MaxLiterals int

	// MaxLiteralLen caps the length of each literal.
	// Default: 64
	MaxLiteralLen int

	// MaxClassSize is the largest bracket set that is expanded into
	// alternatives. Larger sets end extraction.
	// Default: 10
	MaxClassSize int
}

// DefaultConfig returns the default extractor configuration.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{
		MaxLiterals:   64,
		MaxLiteralLen: 64,
		MaxClassSize:  10,
	}
}

// Extractor derives required literal prefixes from compiled patterns.
type Extractor struct {
	config ExtractorConfig
}

// New creates an Extractor.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractPrefixes returns the literals every match of p must start with.
//
// Leading operators are consumed while they are required (minimum repeat of
// at least one) and enumerable (a literal byte or a small bracket set). Each
// required repeat extends every literal by one byte; a set multiplies the
// literal count by its size. Extraction stops at the first optional,
// wildcard or negated operator, at an operator whose repeat count is not
// fixed, or when a limit would be exceeded.
//
// If every operator was consumed the literals are Complete: each one is a
// whole match. An empty result means no prefix is known.
//
// Examples:
//
//	"abc"     → ["abc" complete]
//	"[ab]c"   → ["ac" complete, "bc" complete]
//	"ab+c"    → ["ab"]
//	"a?bc"    → []
//	".abc"    → []
func (e *Extractor) ExtractPrefixes(p *syntax.Pattern) *Seq {
	prefixes := [][]byte{{}}
	complete := true

walk:
	for i := 0; i < p.Len(); i++ {
		op := p.Op(i)
		if op.MinRepeat() == 0 {
			complete = false
			break
		}

		members := e.members(op)
		if len(members) == 0 {
			complete = false
			break
		}

		for r := 0; r < op.MinRepeat(); r++ {
			next, ok := e.extend(prefixes, members)
			if !ok {
				complete = false
				break walk
			}
			prefixes = next
		}
		if op.MaxRepeat() != op.MinRepeat() {
			complete = false
			break
		}
	}

	if len(prefixes) == 1 && len(prefixes[0]) == 0 {
		return NewSeq()
	}
	lits := make([]Literal, len(prefixes))
	for i, b := range prefixes {
		lits[i] = NewLiteral(b, complete)
	}
	return NewSeq(lits...)
}

// members lists the bytes one unit of op can match when the operator is
// enumerable within the configured class size.
func (e *Extractor) members(op syntax.Operator) []byte {
	switch op.Kind() {
	case syntax.KindChar:
		return []byte{op.Char()}
	case syntax.KindSet:
		var seen [256]bool
		var out []byte
		set := op.Set()
		for i := 0; i < len(set); i++ {
			if !seen[set[i]] {
				seen[set[i]] = true
				out = append(out, set[i])
			}
		}
		if len(out) > e.config.MaxClassSize {
			return nil
		}
		return out
	default:
		return nil
	}
}

// extend appends each member to each prefix, failing if the result would
// exceed the configured limits.
func (e *Extractor) extend(prefixes [][]byte, members []byte) ([][]byte, bool) {
	if len(prefixes)*len(members) > e.config.MaxLiterals {
		return nil, false
	}
	if len(prefixes[0])+1 > e.config.MaxLiteralLen {
		return nil, false
	}
	out := make([][]byte, 0, len(prefixes)*len(members))
	for _, pre := range prefixes {
		for _, m := range members {
			lit := make([]byte, len(pre)+1)
			copy(lit, pre)
			lit[len(pre)] = m
			out = append(out, lit)
		}
	}
	return out, true
}
