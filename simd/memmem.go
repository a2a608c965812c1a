package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present. An empty needle matches at 0.
//
// Candidates are located by scanning for the needle's last byte with
// Memchr, then verified in place.
//
// Example:
//
//	pos := simd.Memmem([]byte("aaaaaabaaaa"), []byte("aab")) // 4
func Memmem(haystack, needle []byte) int {
	n := len(needle)
	switch {
	case n == 0:
		return 0
	case n > len(haystack):
		return -1
	case n == 1:
		return Memchr(haystack, needle[0])
	}

	last := needle[n-1]
	from := n - 1
	for from < len(haystack) {
		i := Memchr(haystack[from:], last)
		if i < 0 {
			return -1
		}
		end := from + i + 1
		start := end - n
		if bytes.Equal(haystack[start:end], needle) {
			return start
		}
		from = end
	}
	return -1
}
