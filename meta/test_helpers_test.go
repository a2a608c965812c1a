package meta

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"

	"github.com/coregx/btre/syntax"
)

// stdlibEquivalent rewrites a compiled pattern in regexp syntax. Patterns
// and subjects used with it must be ASCII.
func stdlibEquivalent(p *syntax.Pattern) *regexp.Regexp {
	var sb strings.Builder
	sb.WriteString("(?s)")
	for _, op := range p.Ops() {
		sb.WriteString("(?:")
		switch op.Kind() {
		case syntax.KindChar:
			sb.WriteString(regexp.QuoteMeta(string(op.Char())))
		case syntax.KindAny:
			sb.WriteString(".")
		case syntax.KindSet, syntax.KindNotSet:
			if op.Set() == "" {
				if op.Kind() == syntax.KindSet {
					sb.WriteString(`[^\x00-\x{10FFFF}]`)
				} else {
					sb.WriteString(".")
				}
				break
			}
			sb.WriteByte('[')
			if op.Kind() == syntax.KindNotSet {
				sb.WriteByte('^')
			}
			for i := 0; i < len(op.Set()); i++ {
				fmt.Fprintf(&sb, `\x%02x`, op.Set()[i])
			}
			sb.WriteByte(']')
		}
		sb.WriteString(")")
		switch {
		case op.Unbounded():
			fmt.Fprintf(&sb, "{%d,}", op.MinRepeat())
		default:
			fmt.Fprintf(&sb, "{%d,%d}", op.MinRepeat(), op.MaxRepeat())
		}
	}
	return regexp.MustCompile(sb.String())
}

// randomPattern builds a pattern over a small alphabet so that random
// subjects hit plenty of partial matches.
func randomPattern(rng *rand.Rand) string {
	atoms := []string{"a", "b", "c", ".", "[ab]", "[bc]", "[^a]", "[^bc]", "[abc]"}
	quants := []string{"", "", "?", "*", "+"}
	n := 1 + rng.Intn(5)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString(atoms[rng.Intn(len(atoms))])
		sb.WriteString(quants[rng.Intn(len(quants))])
	}
	return sb.String()
}

func randomSubject(rng *rand.Rand) []byte {
	const alphabet = "abcd"
	b := make([]byte, rng.Intn(24))
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return b
}
