// Package literal represents literal byte sequences that every match of a
// pattern must begin with, and extracts them from compiled patterns.
//
// The prefilter package turns these sequences into fast candidate finders:
// instead of attempting a backtracking match at every offset, the engine
// only tries offsets where one of the required prefixes occurs.
package literal

import (
	"bytes"
	"sort"
)

// Literal is a byte sequence that a match must start with.
//
// Complete reports that the literal is the entire match: finding it is
// sufficient and no backtracking is needed to confirm it.
//
// Example:
//   - Pattern "abc"   → Literal{"abc", true}
//   - Pattern "ab+c"  → Literal{"ab", false}
type Literal struct {
	Bytes    []byte
	Complete bool
}

// NewLiteral creates a Literal.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// String returns a debug representation of the literal.
func (l Literal) String() string {
	if l.Complete {
		return string(l.Bytes) + " (complete)"
	}
	return string(l.Bytes) + " (prefix)"
}

// Seq is a set of alternative literals. A match starts with at least one
// of them.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("ac"), true),
//	    literal.NewLiteral([]byte("bc"), true),
//	)
//	fmt.Println(seq.Len()) // Output: 2
type Seq struct {
	literals []Literal
}

// NewSeq creates a sequence from the given literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the i-th literal. Panics if i is out of range.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// Literals returns the underlying literals. The slice must not be modified.
func (s *Seq) Literals() []Literal {
	if s == nil {
		return nil
	}
	return s.literals
}

// IsEmpty reports whether the sequence has no literals. An empty sequence
// carries no information about where matches start.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}

// AllComplete reports whether every literal is a complete match.
// An empty sequence is never complete.
func (s *Seq) AllComplete() bool {
	if s.IsEmpty() {
		return false
	}
	for _, lit := range s.literals {
		if !lit.Complete {
			return false
		}
	}
	return true
}

// MinLen returns the length of the shortest literal, or 0 if empty.
func (s *Seq) MinLen() int {
	if s.IsEmpty() {
		return 0
	}
	n := len(s.literals[0].Bytes)
	for _, lit := range s.literals[1:] {
		n = min(n, len(lit.Bytes))
	}
	return n
}

// Clone returns a deep copy of the sequence.
func (s *Seq) Clone() *Seq {
	if s == nil {
		return nil
	}
	cloned := make([]Literal, len(s.literals))
	for i, lit := range s.literals {
		cloned[i] = Literal{Bytes: bytes.Clone(lit.Bytes), Complete: lit.Complete}
	}
	return &Seq{literals: cloned}
}

// Minimize removes duplicates and literals that have a shorter literal of
// the sequence as a prefix. A start offset where "ab" occurs is already a
// candidate, so "abc" adds nothing.
//
// Minimize only drops literals when the survivor is not Complete; a complete
// literal is never used to subsume a longer one, since its completeness would
// then describe a different match.
func (s *Seq) Minimize() {
	if s.IsEmpty() {
		return
	}
	sort.SliceStable(s.literals, func(i, j int) bool {
		return len(s.literals[i].Bytes) < len(s.literals[j].Bytes)
	})

	kept := s.literals[:0:0]
	for _, cur := range s.literals {
		redundant := false
		for _, k := range kept {
			if bytes.HasPrefix(cur.Bytes, k.Bytes) && (len(k.Bytes) == len(cur.Bytes) || !k.Complete) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, cur)
		}
	}
	s.literals = kept
}

// LongestCommonPrefix returns the longest prefix shared by all literals.
//
// Example:
//
//	seq := literal.NewSeq(
//	    literal.NewLiteral([]byte("hello"), false),
//	    literal.NewLiteral([]byte("help"), false),
//	)
//	fmt.Println(string(seq.LongestCommonPrefix())) // Output: hel
func (s *Seq) LongestCommonPrefix() []byte {
	if s.IsEmpty() {
		return []byte{}
	}
	prefix := s.literals[0].Bytes
	for _, lit := range s.literals[1:] {
		n := min(len(prefix), len(lit.Bytes))
		i := 0
		for i < n && prefix[i] == lit.Bytes[i] {
			i++
		}
		prefix = prefix[:i]
		if len(prefix) == 0 {
			break
		}
	}
	return bytes.Clone(prefix)
}
