// Package prefilter finds candidate start offsets for a pattern before the
// backtracking matcher runs.
//
// A prefilter scans the subject for bytes or literals that every match must
// begin with. Offsets it skips cannot start a match, so the engine only has
// to attempt an anchored match at the candidates it reports.
//
// Strategy selection, from the literal prefixes of the pattern:
//   - One 1-byte literal     → memchr
//   - One longer literal     → memmem
//   - Several 1-byte literals → byte set
//   - Several literals       → Aho-Corasick automaton
//   - No literals, but a required leading class → byte set over the class
//
// Example usage:
//
//	p := syntax.MustCompile("[ab]cd+")
//	prefixes := literal.New(literal.DefaultConfig()).ExtractPrefixes(p)
//	lead := p.Op(0)
//	pf := prefilter.NewBuilder(prefixes, &lead).Build()
//	pos := pf.Find([]byte("xxbcdd"), 0) // 2
package prefilter

import (
	"github.com/coregx/btre/literal"
	"github.com/coregx/btre/simd"
	"github.com/coregx/btre/syntax"
)

// Prefilter reports candidate match start offsets.
type Prefilter interface {
	// Find returns the first candidate offset >= start, or -1 if none.
	// A candidate is not a match unless IsComplete reports true.
	Find(haystack []byte, start int) int

	// IsComplete reports whether every candidate is a match of exactly
	// LiteralLen bytes, so no verification is needed.
	IsComplete() bool

	// LiteralLen returns the match length of a complete prefilter, or 0.
	LiteralLen() int

	// HeapBytes returns the approximate heap memory held by the prefilter.
	HeapBytes() int
}

// Builder selects a prefilter for a pattern.
type Builder struct {
	prefixes *literal.Seq
	lead     *syntax.Operator
}

// NewBuilder creates a builder from the pattern's literal prefixes and its
// first operator. Either may be nil.
func NewBuilder(prefixes *literal.Seq, lead *syntax.Operator) *Builder {
	return &Builder{prefixes: prefixes, lead: lead}
}

// Build returns the best prefilter, or nil if none would help.
func (b *Builder) Build() Prefilter {
	if pf := fromLiterals(b.prefixes); pf != nil {
		return pf
	}
	return fromLead(b.lead)
}

func fromLiterals(seq *literal.Seq) Prefilter {
	if seq.IsEmpty() {
		return nil
	}
	seq = seq.Clone()
	seq.Minimize()
	complete := seq.AllComplete()

	if seq.Len() == 1 {
		lit := seq.Get(0)
		if len(lit.Bytes) == 1 {
			return newMemchrPrefilter(lit.Bytes[0], complete)
		}
		return newMemmemPrefilter(lit.Bytes, complete)
	}

	if seq.MinLen() == 1 {
		// Literals are extended in lockstep, so all have length 1 here.
		var table [256]bool
		for _, lit := range seq.Literals() {
			table[lit.Bytes[0]] = true
		}
		pf := newByteSetPrefilter(&table)
		pf.complete = complete
		return pf
	}

	if pf, err := newAhoCorasickPrefilter(seq, complete); err == nil {
		return pf
	}

	// Fall back to the set of first bytes.
	var table [256]bool
	for _, lit := range seq.Literals() {
		table[lit.Bytes[0]] = true
	}
	return newByteSetPrefilter(&table)
}

func fromLead(lead *syntax.Operator) Prefilter {
	if lead == nil || lead.MinRepeat() == 0 || lead.Kind() == syntax.KindAny {
		return nil
	}
	return newByteSetPrefilter(lead.Accepts())
}

// memchrPrefilter searches for a single required byte.
type memchrPrefilter struct {
	needle   byte
	complete bool
}

func newMemchrPrefilter(needle byte, complete bool) *memchrPrefilter {
	return &memchrPrefilter{needle: needle, complete: complete}
}

// Find implements Prefilter.Find using simd.Memchr.
func (p *memchrPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := simd.Memchr(haystack[start:], p.needle)
	if idx < 0 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *memchrPrefilter) IsComplete() bool { return p.complete }

// LiteralLen implements Prefilter.LiteralLen.
func (p *memchrPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memchrPrefilter) HeapBytes() int { return 0 }

// memmemPrefilter searches for a single required literal.
type memmemPrefilter struct {
	needle   []byte
	complete bool
}

func newMemmemPrefilter(needle []byte, complete bool) *memmemPrefilter {
	cp := make([]byte, len(needle))
	copy(cp, needle)
	return &memmemPrefilter{needle: cp, complete: complete}
}

// Find implements Prefilter.Find using simd.Memmem.
func (p *memmemPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := simd.Memmem(haystack[start:], p.needle)
	if idx < 0 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *memmemPrefilter) IsComplete() bool { return p.complete }

// LiteralLen implements Prefilter.LiteralLen.
func (p *memmemPrefilter) LiteralLen() int {
	if p.complete {
		return len(p.needle)
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *memmemPrefilter) HeapBytes() int { return len(p.needle) }

// byteSetPrefilter searches for any byte of a set, typically the bytes
// accepted by the first operator.
type byteSetPrefilter struct {
	set      *simd.ByteSet
	complete bool
}

func newByteSetPrefilter(table *[256]bool) *byteSetPrefilter {
	return &byteSetPrefilter{set: simd.NewByteSet(table)}
}

// Find implements Prefilter.Find using simd.ByteSet.
func (p *byteSetPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	idx := p.set.Index(haystack[start:])
	if idx < 0 {
		return -1
	}
	return start + idx
}

// IsComplete implements Prefilter.IsComplete.
func (p *byteSetPrefilter) IsComplete() bool { return p.complete }

// LiteralLen implements Prefilter.LiteralLen.
func (p *byteSetPrefilter) LiteralLen() int {
	if p.complete {
		return 1
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes.
func (p *byteSetPrefilter) HeapBytes() int { return 256 }
