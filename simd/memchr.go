package simd

import (
	"encoding/binary"
	"math/bits"
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// Example:
//
//	pos := simd.Memchr([]byte("hello world"), 'o') // 4
func Memchr(haystack []byte, needle byte) int {
	if useSWAR && len(haystack) >= swarMinLen {
		return memchrSWAR(haystack, needle)
	}
	return memchrLoop(haystack, needle)
}

// Memchr2 returns the index of the first instance of either needle, or -1.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	if useSWAR && len(haystack) >= swarMinLen {
		return memchr2SWAR(haystack, needle1, needle2)
	}
	for i, b := range haystack {
		if b == needle1 || b == needle2 {
			return i
		}
	}
	return -1
}

// Memchr3 returns the index of the first instance of any of three needles,
// or -1.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	if useSWAR && len(haystack) >= swarMinLen {
		return memchr3SWAR(haystack, needle1, needle2, needle3)
	}
	for i, b := range haystack {
		if b == needle1 || b == needle2 || b == needle3 {
			return i
		}
	}
	return -1
}

// MemchrNot returns the index of the first byte in haystack that differs
// from needle, or -1 if every byte equals needle. This is the length of the
// leading run of needle when the result is not -1.
func MemchrNot(haystack []byte, needle byte) int {
	if useSWAR && len(haystack) >= swarMinLen {
		return memchrNotSWAR(haystack, needle)
	}
	for i, b := range haystack {
		if b != needle {
			return i
		}
	}
	return -1
}

func memchrLoop(haystack []byte, needle byte) int {
	for i, b := range haystack {
		if b == needle {
			return i
		}
	}
	return -1
}

// memchrSWAR XORs each word with the broadcast needle so matching bytes
// become zero, then locates the first zero byte.
func memchrSWAR(haystack []byte, needle byte) int {
	mask := broadcast(needle)
	idx := 0
	for ; idx+8 <= len(haystack); idx += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		if z := zeroBytes(chunk ^ mask); z != 0 {
			return idx + bits.TrailingZeros64(z)/8
		}
	}
	for ; idx < len(haystack); idx++ {
		if haystack[idx] == needle {
			return idx
		}
	}
	return -1
}

func memchr2SWAR(haystack []byte, needle1, needle2 byte) int {
	mask1, mask2 := broadcast(needle1), broadcast(needle2)
	idx := 0
	for ; idx+8 <= len(haystack); idx += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		if z := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2); z != 0 {
			return idx + bits.TrailingZeros64(z)/8
		}
	}
	for ; idx < len(haystack); idx++ {
		if b := haystack[idx]; b == needle1 || b == needle2 {
			return idx
		}
	}
	return -1
}

func memchr3SWAR(haystack []byte, needle1, needle2, needle3 byte) int {
	mask1, mask2, mask3 := broadcast(needle1), broadcast(needle2), broadcast(needle3)
	idx := 0
	for ; idx+8 <= len(haystack); idx += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		z := zeroBytes(chunk^mask1) | zeroBytes(chunk^mask2) | zeroBytes(chunk^mask3)
		if z != 0 {
			return idx + bits.TrailingZeros64(z)/8
		}
	}
	for ; idx < len(haystack); idx++ {
		if b := haystack[idx]; b == needle1 || b == needle2 || b == needle3 {
			return idx
		}
	}
	return -1
}

// memchrNotSWAR finds the first non-zero byte of word ^ mask directly; no
// borrow trick is needed.
func memchrNotSWAR(haystack []byte, needle byte) int {
	mask := broadcast(needle)
	idx := 0
	for ; idx+8 <= len(haystack); idx += 8 {
		if x := binary.LittleEndian.Uint64(haystack[idx:]) ^ mask; x != 0 {
			return idx + bits.TrailingZeros64(x)/8
		}
	}
	for ; idx < len(haystack); idx++ {
		if haystack[idx] != needle {
			return idx
		}
	}
	return -1
}
