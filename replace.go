package btre

import "strings"

// ReplaceAllLiteral returns a copy of src with every match replaced by repl.
//
// Example:
//
//	re := btre.MustCompile("a+")
//	re.ReplaceAllLiteral([]byte("baaad"), []byte("x")) // "bxd"
func (r *Regex) ReplaceAllLiteral(src, repl []byte) []byte {
	return r.replaceAll(src, func(dst, _ []byte) []byte {
		return append(dst, repl...)
	})
}

// ReplaceAllLiteralString is like ReplaceAllLiteral but takes strings.
func (r *Regex) ReplaceAllLiteralString(src, repl string) string {
	return string(r.ReplaceAllLiteral([]byte(src), []byte(repl)))
}

// ReplaceAllFunc returns a copy of src in which every match has been
// replaced by the result of repl applied to the matched bytes.
func (r *Regex) ReplaceAllFunc(src []byte, repl func([]byte) []byte) []byte {
	return r.replaceAll(src, func(dst, match []byte) []byte {
		return append(dst, repl(match)...)
	})
}

// ReplaceAllStringFunc is like ReplaceAllFunc but takes strings.
func (r *Regex) ReplaceAllStringFunc(src string, repl func(string) string) string {
	indices := r.engine.FindAllIndices([]byte(src), -1, nil)
	if len(indices) == 0 {
		return src
	}
	var sb strings.Builder
	sb.Grow(len(src))
	last := 0
	for _, idx := range indices {
		sb.WriteString(src[last:idx[0]])
		sb.WriteString(repl(src[idx[0]:idx[1]]))
		last = idx[1]
	}
	sb.WriteString(src[last:])
	return sb.String()
}

func (r *Regex) replaceAll(src []byte, appendRepl func(dst, match []byte) []byte) []byte {
	indices := r.engine.FindAllIndices(src, -1, nil)
	result := make([]byte, 0, len(src))
	last := 0
	for _, idx := range indices {
		result = append(result, src[last:idx[0]]...)
		result = appendRepl(result, src[idx[0]:idx[1]])
		last = idx[1]
	}
	return append(result, src[last:]...)
}

// Split slices s into the substrings between matches.
//
// The count determines the number of substrings to return:
//
//	n > 0: at most n substrings; the last one is the unsplit remainder
//	n == 0: nil
//	n < 0: all substrings
//
// As in the standard library, an empty match at the start of s does not
// produce a leading empty substring.
//
// Example:
//
//	btre.MustCompile("[,;]").Split("a,b;c", -1) // ["a" "b" "c"]
//	btre.MustCompile("[,;]").Split("a,b;c", 2)  // ["a" "b;c"]
func (r *Regex) Split(s string, n int) []string {
	if n == 0 {
		return nil
	}
	if len(r.pattern) > 0 && len(s) == 0 {
		return []string{""}
	}

	indices := r.engine.FindAllIndices([]byte(s), n, nil)
	parts := make([]string, 0, len(indices)+1)

	beg, end := 0, 0
	for _, idx := range indices {
		if n > 0 && len(parts) == n-1 {
			break
		}
		end = idx[0]
		if idx[1] != 0 {
			parts = append(parts, s[beg:end])
		}
		beg = idx[1]
	}
	if end != len(s) {
		parts = append(parts, s[beg:])
	}
	return parts
}
