package syntax

import "strings"

// Compile parses pattern into a Pattern in a single left-to-right scan.
//
// A quantifier rewrites the repeat bounds of the operator immediately before
// it, so a run such as "a*+" leaves the bounds of the last quantifier.
// Errors are returned as *CompileError carrying the offending byte index.
func Compile(pattern string) (*Pattern, error) {
	ops := make([]Operator, 0, len(pattern))

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '.':
			ops = append(ops, NewAny())

		case '[':
			j := i + 1
			negate := j < len(pattern) && pattern[j] == '^'
			if negate {
				j++
			}
			end := strings.IndexByte(pattern[j:], ']')
			if end < 0 {
				return nil, &CompileError{Pattern: pattern, Index: i, Err: ErrUnterminatedClass}
			}
			set := pattern[j : j+end]
			if negate {
				ops = append(ops, NewNotSet(set))
			} else {
				ops = append(ops, NewSet(set))
			}
			i = j + end

		case '?', '*', '+':
			if len(ops) == 0 {
				return nil, &CompileError{Pattern: pattern, Index: i, Err: ErrDanglingQuantifier}
			}
			last := &ops[len(ops)-1]
			last.min, last.max = quantifierBounds(c)

		default:
			ops = append(ops, NewChar(c))
		}
	}

	return &Pattern{source: pattern, ops: ops}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

func quantifierBounds(q byte) (min, max int) {
	switch q {
	case '?':
		return 0, 1
	case '*':
		return 0, Unbounded
	default:
		return 1, Unbounded
	}
}
