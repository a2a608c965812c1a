package meta

// Match is a successful match: the span [Start, End) of the haystack it was
// found in.
//
// The haystack is held by reference, not copied.
//
// Example:
//
//	m := meta.NewMatch(2, 5, []byte("xxabcxx"))
//	println(m.String()) // "abc"
type Match struct {
	start    int
	end      int
	haystack []byte
}

// NewMatch creates a Match over haystack[start:end].
func NewMatch(start, end int, haystack []byte) *Match {
	return &Match{start: start, end: end, haystack: haystack}
}

// Start returns the inclusive start offset.
func (m *Match) Start() int {
	return m.start
}

// End returns the exclusive end offset.
func (m *Match) End() int {
	return m.end
}

// Len returns the match length in bytes.
func (m *Match) Len() int {
	return m.end - m.start
}

// Bytes returns the matched bytes. The slice aliases the haystack.
func (m *Match) Bytes() []byte {
	return m.haystack[m.start:m.end]
}

// String returns the matched text.
func (m *Match) String() string {
	return string(m.haystack[m.start:m.end])
}

// IsEmpty reports whether the match consumed no bytes.
func (m *Match) IsEmpty() bool {
	return m.start == m.end
}

// Contains reports whether pos lies inside the match.
func (m *Match) Contains(pos int) bool {
	return pos >= m.start && pos < m.end
}
