package btre

// Find returns the text of the leftmost match in b, or nil if there is none.
// The result aliases b.
//
// Example:
//
//	re := btre.MustCompile("[0123456789]+")
//	println(string(re.Find([]byte("age: 42")))) // "42"
func (r *Regex) Find(b []byte) []byte {
	m := r.engine.Find(b)
	if m == nil {
		return nil
	}
	return m.Bytes()
}

// FindString returns the text of the leftmost match in s. An empty result
// means either no match or an empty match; use FindStringIndex to tell them
// apart.
func (r *Regex) FindString(s string) string {
	start, end, found := r.engine.FindIndicesAt([]byte(s), 0)
	if !found {
		return ""
	}
	return s[start:end]
}

// FindIndex returns the location of the leftmost match in b as a
// two-element slice; the match is b[loc[0]:loc[1]]. Returns nil if there is
// no match.
func (r *Regex) FindIndex(b []byte) []int {
	start, end, found := r.engine.FindIndicesAt(b, 0)
	if !found {
		return nil
	}
	return []int{start, end}
}

// FindStringIndex is like FindIndex but takes a string.
func (r *Regex) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// FindAll returns successive non-overlapping matches in b. If n >= 0 at most
// n matches are returned; n < 0 returns all. Returns nil if there is no
// match.
//
// An empty match directly after a previous match is not reported:
//
//	btre.MustCompile("a*").FindAllString("baaab", -1) // ["" "aaa" ""]
func (r *Regex) FindAll(b []byte, n int) [][]byte {
	indices := r.engine.FindAllIndices(b, n, nil)
	if len(indices) == 0 {
		return nil
	}
	out := make([][]byte, len(indices))
	for i, idx := range indices {
		out[i] = b[idx[0]:idx[1]:idx[1]]
	}
	return out
}

// FindAllString is like FindAll but takes and returns strings.
func (r *Regex) FindAllString(s string, n int) []string {
	indices := r.engine.FindAllIndices([]byte(s), n, nil)
	if len(indices) == 0 {
		return nil
	}
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = s[idx[0]:idx[1]]
	}
	return out
}

// FindAllIndex returns the locations of successive non-overlapping matches,
// as FindAll.
func (r *Regex) FindAllIndex(b []byte, n int) [][]int {
	indices := r.engine.FindAllIndices(b, n, nil)
	if len(indices) == 0 {
		return nil
	}
	out := make([][]int, len(indices))
	for i, idx := range indices {
		out[i] = []int{idx[0], idx[1]}
	}
	return out
}

// FindAllStringIndex is like FindAllIndex but takes a string.
func (r *Regex) FindAllStringIndex(s string, n int) [][]int {
	return r.FindAllIndex([]byte(s), n)
}

// Count returns the number of non-overlapping matches in b, counted as
// FindAll would report them. If n > 0 at most n are counted.
func (r *Regex) Count(b []byte, n int) int {
	if n <= 0 {
		n = -1
	}
	return r.engine.Count(b, n)
}

// CountString is like Count but takes a string.
func (r *Regex) CountString(s string, n int) int {
	return r.Count([]byte(s), n)
}
