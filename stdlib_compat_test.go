package btre

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/coregx/btre/syntax"
)

// stdlibPattern rewrites a compiled pattern in regexp syntax. Every byte is
// written as a hex escape, so only ASCII patterns and inputs compare
// meaningfully.
func stdlibPattern(p *syntax.Pattern) string {
	var sb strings.Builder
	sb.WriteString("(?s)")
	for _, op := range p.Ops() {
		sb.WriteString("(?:")
		switch op.Kind() {
		case syntax.KindChar:
			fmt.Fprintf(&sb, `\x%02x`, op.Char())
		case syntax.KindAny:
			sb.WriteByte('.')
		case syntax.KindSet:
			if op.Set() == "" {
				sb.WriteString(`[^\x00-\x{10FFFF}]`)
				break
			}
			sb.WriteByte('[')
			writeHex(&sb, op.Set())
			sb.WriteByte(']')
		case syntax.KindNotSet:
			if op.Set() == "" {
				sb.WriteByte('.')
				break
			}
			sb.WriteString("[^")
			writeHex(&sb, op.Set())
			sb.WriteByte(']')
		}
		sb.WriteByte(')')
		if op.Unbounded() {
			fmt.Fprintf(&sb, "{%d,}", op.MinRepeat())
		} else {
			fmt.Fprintf(&sb, "{%d,%d}", op.MinRepeat(), op.MaxRepeat())
		}
	}
	return sb.String()
}

func writeHex(sb *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		fmt.Fprintf(sb, `\x%02x`, s[i])
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

// compareWithStdlib checks every search operation of re against the
// equivalent standard library expression.
func compareWithStdlib(t *testing.T, re *Regex, input string) {
	t.Helper()
	std := regexp.MustCompile(stdlibPattern(re.Pattern()))

	if got, want := re.MatchString(input), std.MatchString(input); got != want {
		t.Fatalf("%q on %q: MatchString = %v, stdlib %v", re, input, got, want)
	}
	if got, want := re.FindStringIndex(input), std.FindStringIndex(input); !equalInts(got, want) {
		t.Fatalf("%q on %q: FindStringIndex = %v, stdlib %v", re, input, got, want)
	}
	got, want := re.FindAllStringIndex(input, -1), std.FindAllStringIndex(input, -1)
	if len(got) != len(want) {
		t.Fatalf("%q on %q: FindAllStringIndex = %v, stdlib %v", re, input, got, want)
	}
	for i := range got {
		if !equalInts(got[i], want[i]) {
			t.Fatalf("%q on %q: FindAllStringIndex = %v, stdlib %v", re, input, got, want)
		}
	}

	anchored := regexp.MustCompile(`\A(?:` + stdlibPattern(re.Pattern()) + `)`)
	loc := anchored.FindStringIndex(input)
	n, ok := re.MatchPrefixString(input)
	if ok != (loc != nil) || (ok && n != loc[1]) {
		t.Fatalf("%q on %q: MatchPrefixString = (%d, %v), stdlib %v", re, input, n, ok, loc)
	}

	full := regexp.MustCompile(`\A(?:` + stdlibPattern(re.Pattern()) + `)\z`)
	if got, want := re.MatchFullString(input), full.MatchString(input); got != want {
		t.Fatalf("%q on %q: MatchFullString = %v, stdlib %v", re, input, got, want)
	}

	if got, want := re.Split(input, -1), std.Split(input, -1); strings.Join(got, "\x00") != strings.Join(want, "\x00") || len(got) != len(want) {
		t.Fatalf("%q on %q: Split = %q, stdlib %q", re, input, got, want)
	}
	if got, want := re.ReplaceAllLiteralString(input, "<>"), std.ReplaceAllLiteralString(input, "<>"); got != want {
		t.Fatalf("%q on %q: ReplaceAllLiteralString = %q, stdlib %q", re, input, got, want)
	}
}

func TestStdlibCompat(t *testing.T) {
	tests := []struct {
		pattern string
		inputs  []string
	}{
		{"abc", []string{"", "abc", "xxabcxxabc", "ab"}},
		{"a*", []string{"", "b", "baaab", "aaa"}},
		{"a+b", []string{"aaab", "ab ab", "b", "aaaa"}},
		{"a?b?c", []string{"c", "abc", "bc", "ac", "xyz"}},
		{".*", []string{"", "line\nline", "abc"}},
		{"[abc]+", []string{"aXbbXccc", "xyz"}},
		{"[^abc]+", []string{"aXYbZ", "abc"}},
		{"a.c", []string{"abc a\nc axc", "ac"}},
		{"x*y*z*", []string{"xyzzyx", ""}},
		{"[ab]c", []string{"ac bc cc"}},
		{"[]", []string{"", "abc"}},
		{"[]?a", []string{"a", "ba"}},
		{"[^]", []string{"", "ab"}},
		{"a*ab", []string{"aaab", "aab", "ab", "b"}},
	}

	for _, tt := range tests {
		re := MustCompile(tt.pattern)
		for _, input := range tt.inputs {
			t.Run(tt.pattern+"/"+input, func(t *testing.T) {
				compareWithStdlib(t, re, input)
			})
		}
	}
}

func TestStdlibCompatRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	atoms := []string{"a", "b", ".", "[ab]", "[^a]", "[bc]", "c"}
	quants := []string{"", "", "?", "*", "+"}

	for i := 0; i < 300; i++ {
		var sb strings.Builder
		for n := 1 + rng.Intn(5); n > 0; n-- {
			sb.WriteString(atoms[rng.Intn(len(atoms))])
			sb.WriteString(quants[rng.Intn(len(quants))])
		}
		re := MustCompile(sb.String())
		for j := 0; j < 8; j++ {
			b := make([]byte, rng.Intn(20))
			for k := range b {
				b[k] = "abcx"[rng.Intn(4)]
			}
			compareWithStdlib(t, re, string(b))
		}
	}
}

var fuzzSeeds = []struct {
	pattern string
	input   string
}{
	{"abc", "xxabcxx"},
	{"a*", "baaab"},
	{"a+b", "aaab"},
	{"[ab]*c", "abababc"},
	{"[^ ]+", "hello world"},
	{".*x", "axbxc"},
	{"a?a?aa", "aa"},
	{"[]", "abc"},
	{"x*y*z*", ""},
}

// FuzzStdlibCompat compares search results with the standard library.
//
//	go test -fuzz=FuzzStdlibCompat -fuzztime=30s
func FuzzStdlibCompat(f *testing.F) {
	for _, s := range fuzzSeeds {
		f.Add(s.pattern, s.input)
	}
	f.Fuzz(func(t *testing.T, pattern, input string) {
		if len(pattern) > 32 || len(input) > 256 || !isASCII(pattern) || !isASCII(input) {
			return
		}
		re, err := Compile(pattern)
		if err != nil {
			return
		}
		compareWithStdlib(t, re, input)
	})
}
