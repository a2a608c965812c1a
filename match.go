package btre

// Match reports whether b contains any match of the pattern.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(b)
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.engine.IsMatch([]byte(s))
}

// MatchPrefix reports whether the pattern matches at the start of b and, if
// so, how many bytes the match consumed. Input after the match is ignored.
//
// Example:
//
//	re := btre.MustCompile("a+")
//	n, ok := re.MatchPrefix([]byte("aaab")) // 3, true
func (r *Regex) MatchPrefix(b []byte) (int, bool) {
	return r.engine.MatchPrefix(b)
}

// MatchPrefixString is like MatchPrefix but takes a string.
func (r *Regex) MatchPrefixString(s string) (int, bool) {
	return r.engine.MatchPrefix([]byte(s))
}

// MatchFull reports whether the pattern matches all of b.
//
// Example:
//
//	re := btre.MustCompile("a*ab")
//	re.MatchFull([]byte("aaab")) // true
//	re.MatchFull([]byte("aaabc")) // false
func (r *Regex) MatchFull(b []byte) bool {
	return r.engine.MatchFull(b)
}

// MatchFullString is like MatchFull but takes a string.
func (r *Regex) MatchFullString(s string) bool {
	return r.engine.MatchFull([]byte(s))
}

// Exec searches b for the leftmost match starting at or after at and
// returns its location b[loc[0]:loc[1]].
//
// Unlike the other methods Exec distinguishes why no match was returned:
// the error is ErrNoMatch when the pattern does not occur and ErrStepLimit
// when the configured step budget ran out first.
func (r *Regex) Exec(b []byte, at int) ([]int, error) {
	rng, err := r.engine.Exec(b, at)
	if err != nil {
		return nil, err
	}
	return []int{rng.Start, rng.End}, nil
}

// ExecAnchored attempts a match that starts exactly at at, ending as mode
// requires, and returns the end offset. Errors are as for Exec.
func (r *Regex) ExecAnchored(b []byte, at int, mode Mode) (int, error) {
	return r.engine.ExecAnchored(b, at, mode)
}

// Trace matches the pattern at the start of b and returns, for every
// operator, the one-byte ranges it consumed. Operators that matched zero
// times have an empty list.
//
// Example:
//
//	re := btre.MustCompile("a*b")
//	trace, _ := re.Trace([]byte("aab"), btre.ModeFull)
//	// trace[0] = [{0 1} {1 2}], trace[1] = [{2 3}]
func (r *Regex) Trace(b []byte, mode Mode) ([][]Range, error) {
	return r.engine.Trace(b, mode)
}
