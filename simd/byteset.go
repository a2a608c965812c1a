package simd

// ByteSet is a 256-entry membership table prepared for scanning. Sets or
// complements with at most three members dispatch to the Memchr family;
// other sets use a table walk.
type ByteSet struct {
	table   [256]bool
	members []byte // set members when there are at most 3
	absent  []byte // complement members when there are at most 3
}

// NewByteSet builds a ByteSet from a membership table. The table is copied.
func NewByteSet(table *[256]bool) *ByteSet {
	s := &ByteSet{table: *table}
	in, out := make([]byte, 0, 4), make([]byte, 0, 4)
	for i := 0; i < 256; i++ {
		if table[i] {
			if len(in) <= 3 {
				in = append(in, byte(i))
			}
		} else if len(out) <= 3 {
			out = append(out, byte(i))
		}
	}
	if len(in) <= 3 {
		s.members = in
	}
	if len(out) <= 3 {
		s.absent = out
	}
	return s
}

// Contains reports whether b is in the set.
func (s *ByteSet) Contains(b byte) bool {
	return s.table[b]
}

// Index returns the index of the first byte of haystack in the set, or -1.
func (s *ByteSet) Index(haystack []byte) int {
	if s.members != nil {
		switch len(s.members) {
		case 0:
			return -1
		case 1:
			return Memchr(haystack, s.members[0])
		case 2:
			return Memchr2(haystack, s.members[0], s.members[1])
		case 3:
			return Memchr3(haystack, s.members[0], s.members[1], s.members[2])
		}
	}
	if s.absent != nil && len(s.absent) == 1 {
		return MemchrNot(haystack, s.absent[0])
	}
	return MemchrInTable(haystack, &s.table)
}

// IndexNot returns the index of the first byte of haystack outside the set,
// or -1 if every byte is a member. When the result is not -1 it equals the
// length of the leading run of members.
func (s *ByteSet) IndexNot(haystack []byte) int {
	if s.absent != nil {
		switch len(s.absent) {
		case 0:
			return -1
		case 1:
			return Memchr(haystack, s.absent[0])
		case 2:
			return Memchr2(haystack, s.absent[0], s.absent[1])
		case 3:
			return Memchr3(haystack, s.absent[0], s.absent[1], s.absent[2])
		}
	}
	if s.members != nil && len(s.members) == 1 {
		return MemchrNot(haystack, s.members[0])
	}
	return MemchrNotInTable(haystack, &s.table)
}

// MemchrInTable returns the index of the first byte b of haystack with
// table[b] set, or -1.
func MemchrInTable(haystack []byte, table *[256]bool) int {
	if table == nil {
		return -1
	}
	for i, b := range haystack {
		if table[b] {
			return i
		}
	}
	return -1
}

// MemchrNotInTable returns the index of the first byte b of haystack with
// table[b] clear, or -1.
func MemchrNotInTable(haystack []byte, table *[256]bool) int {
	if table == nil {
		return -1
	}
	for i, b := range haystack {
		if !table[b] {
			return i
		}
	}
	return -1
}
