package syntax

import "strings"

// Pattern is an ordered, immutable sequence of operators produced by Compile.
type Pattern struct {
	source string
	ops    []Operator
}

// NewPattern builds a Pattern directly from operators. The slice is copied.
func NewPattern(ops ...Operator) *Pattern {
	cp := make([]Operator, len(ops))
	copy(cp, ops)
	p := &Pattern{ops: cp}
	p.source = p.String()
	return p
}

// Len returns the number of operators.
func (p *Pattern) Len() int {
	return len(p.ops)
}

// Op returns the i-th operator.
func (p *Pattern) Op(i int) Operator {
	return p.ops[i]
}

// Ops returns a copy of the operator sequence.
func (p *Pattern) Ops() []Operator {
	cp := make([]Operator, len(p.ops))
	copy(cp, p.ops)
	return cp
}

// Source returns the text the pattern was compiled from.
func (p *Pattern) Source() string {
	return p.source
}

// MinLen returns the smallest subject length any match can consume.
func (p *Pattern) MinLen() int {
	n := 0
	for i := range p.ops {
		n += p.ops[i].min
	}
	return n
}

// MaxLen returns the largest length any match can consume, or -1 if some
// operator is unbounded.
func (p *Pattern) MaxLen() int {
	n := 0
	for i := range p.ops {
		if p.ops[i].max == Unbounded {
			return -1
		}
		n += p.ops[i].max
	}
	return n
}

// String renders the pattern in canonical syntax.
func (p *Pattern) String() string {
	var sb strings.Builder
	for i := range p.ops {
		p.ops[i].writeTo(&sb)
	}
	return sb.String()
}

// Satisfiable reports whether any subject can match. A required operator
// that accepts no byte, such as "[]" or "[]+", makes the pattern impossible.
func (p *Pattern) Satisfiable() bool {
	for i := range p.ops {
		if p.ops[i].min == 0 {
			continue
		}
		empty := true
		for _, ok := range p.ops[i].accept {
			if ok {
				empty = false
				break
			}
		}
		if empty {
			return false
		}
	}
	return true
}
