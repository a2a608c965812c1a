package syntax

import (
	"strconv"
	"strings"
)

// Unbounded is the maximum repeat count of an operator that may repeat
// any number of times.
const Unbounded = -1

// Kind identifies the single-byte test an Operator performs.
type Kind uint8

const (
	// KindChar matches one specific byte.
	KindChar Kind = iota

	// KindAny matches any byte.
	KindAny

	// KindSet matches any byte in a literal set.
	KindSet

	// KindNotSet matches any byte not in a literal set.
	KindNotSet
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindChar:
		return "Char"
	case KindAny:
		return "Any"
	case KindSet:
		return "Set"
	case KindNotSet:
		return "NotSet"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Range is a half-open interval [Start, End) of subject offsets.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// Operator is one unit of a compiled pattern: a single-byte test with
// inclusive repeat bounds.
//
// Operators are immutable once built. All per-attempt state lives in the
// matcher, so a Pattern may be shared between goroutines.
type Operator struct {
	kind   Kind
	char   byte
	set    string
	accept *[256]bool
	min    int
	max    int
}

// NewChar returns an operator matching the byte c exactly once.
func NewChar(c byte) Operator {
	var t [256]bool
	t[c] = true
	return Operator{kind: KindChar, char: c, accept: &t, min: 1, max: 1}
}

// NewAny returns an operator matching any byte exactly once.
func NewAny() Operator {
	var t [256]bool
	for i := range t {
		t[i] = true
	}
	return Operator{kind: KindAny, accept: &t, min: 1, max: 1}
}

// NewSet returns an operator matching exactly one byte from set.
// An empty set matches nothing.
func NewSet(set string) Operator {
	var t [256]bool
	for i := 0; i < len(set); i++ {
		t[set[i]] = true
	}
	return Operator{kind: KindSet, set: set, accept: &t, min: 1, max: 1}
}

// NewNotSet returns an operator matching exactly one byte outside set.
// An empty set matches every byte.
func NewNotSet(set string) Operator {
	var t [256]bool
	for i := range t {
		t[i] = true
	}
	for i := 0; i < len(set); i++ {
		t[set[i]] = false
	}
	return Operator{kind: KindNotSet, set: set, accept: &t, min: 1, max: 1}
}

// Kind returns the operator's kind.
func (o Operator) Kind() Kind {
	return o.kind
}

// Char returns the byte matched by a KindChar operator.
func (o Operator) Char() byte {
	return o.char
}

// Set returns the literal set of a KindSet or KindNotSet operator.
func (o Operator) Set() string {
	return o.set
}

// MinRepeat returns the minimum number of repeats.
func (o Operator) MinRepeat() int {
	return o.min
}

// MaxRepeat returns the maximum number of repeats, or Unbounded.
func (o Operator) MaxRepeat() int {
	return o.max
}

// Unbounded reports whether the operator may repeat without limit.
func (o Operator) Unbounded() bool {
	return o.max == Unbounded
}

// Accepts returns the table of bytes that satisfy one unit of the operator.
// The table is shared and must not be modified.
func (o Operator) Accepts() *[256]bool {
	return o.accept
}

// WithRepeat returns a copy of the operator with new repeat bounds.
// min must be >= 0, max must be >= min or Unbounded.
func (o Operator) WithRepeat(min, max int) (Operator, error) {
	if min < 0 || max < Unbounded || (max != Unbounded && max < min) {
		return o, ErrInvalidRepeat
	}
	o.min = min
	o.max = max
	return o, nil
}

// MatchByte reports whether b satisfies one unit of the operator.
func (o Operator) MatchByte(b byte) bool {
	return o.accept[b]
}

// Match tries one unit of the operator at r.Start. On success it sets
// r.End to r.Start+1 and returns true. Running off the end of subject is an
// ordinary failure.
func (o Operator) Match(subject []byte, r *Range) bool {
	if r.Start < 0 || r.Start >= len(subject) {
		return false
	}
	if !o.accept[subject[r.Start]] {
		return false
	}
	r.End = r.Start + 1
	return true
}

// MatchAt reports whether one unit of the operator matches at pos.
func (o Operator) MatchAt(subject []byte, pos int) bool {
	return pos >= 0 && pos < len(subject) && o.accept[subject[pos]]
}

// String renders the operator in pattern syntax. For operators produced by
// Compile the output compiles back to an equivalent operator.
func (o Operator) String() string {
	var sb strings.Builder
	o.writeTo(&sb)
	return sb.String()
}

func (o Operator) writeTo(sb *strings.Builder) {
	switch o.kind {
	case KindChar:
		if isMeta(o.char) {
			sb.WriteByte('[')
			sb.WriteByte(o.char)
			sb.WriteByte(']')
		} else {
			sb.WriteByte(o.char)
		}
	case KindAny:
		sb.WriteByte('.')
	case KindSet:
		set := o.set
		if len(set) > 1 && set[0] == '^' {
			// A leading '^' would read as negation.
			set = set[1:] + "^"
		} else if set == "^" {
			sb.WriteByte('^')
			break
		}
		sb.WriteByte('[')
		sb.WriteString(set)
		sb.WriteByte(']')
	case KindNotSet:
		sb.WriteString("[^")
		sb.WriteString(o.set)
		sb.WriteByte(']')
	}

	switch {
	case o.min == 1 && o.max == 1:
	case o.min == 0 && o.max == 1:
		sb.WriteByte('?')
	case o.min == 0 && o.max == Unbounded:
		sb.WriteByte('*')
	case o.min == 1 && o.max == Unbounded:
		sb.WriteByte('+')
	case o.max == Unbounded:
		sb.WriteString("{" + strconv.Itoa(o.min) + ",}")
	default:
		sb.WriteString("{" + strconv.Itoa(o.min) + "," + strconv.Itoa(o.max) + "}")
	}
}

// isMeta reports whether c has special meaning outside a bracket expression.
func isMeta(c byte) bool {
	switch c {
	case '.', '[', '?', '*', '+':
		return true
	}
	return false
}
