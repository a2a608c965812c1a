// Package simd provides word-at-a-time byte scanning primitives used by the
// prefilters and the backtracking matcher.
//
// Scans process 8 bytes per iteration using SWAR (SIMD Within A Register)
// arithmetic on uint64 words. The word path is enabled on CPUs with wide,
// cheap unaligned loads (detected with golang.org/x/sys/cpu); elsewhere a
// plain byte loop is used.
package simd

import "golang.org/x/sys/cpu"

// useSWAR selects the word-at-a-time implementations. It is a variable so
// tests can exercise both paths.
var useSWAR = cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD || cpu.PPC64.IsPOWER8 || cpu.S390X.HasVX

// swarMinLen is the haystack length below which byte loops win.
const swarMinLen = 16

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// WordScan reports whether word-at-a-time scanning is active.
func WordScan() bool {
	return useSWAR
}

// zeroBytes returns a word whose lowest set high bit marks the first zero
// byte of x. Bits above the first zero byte may be spurious.
func zeroBytes(x uint64) uint64 {
	return (x - lo8) & ^x & hi8
}

func broadcast(b byte) uint64 {
	return uint64(b) * lo8
}
