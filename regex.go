// Package btre provides a small backtracking regular expression engine.
//
// The pattern language has six constructs:
//
//	.        any single byte
//	[abc]    one byte from the set
//	[^abc]   one byte not in the set
//	?        previous item 0 or 1 times
//	*        previous item 0 or more times
//	+        previous item 1 or more times
//
// Every other byte matches itself. There are no groups, alternation,
// anchors or escapes; QuoteMeta produces patterns that match text literally.
//
// Matching is byte oriented and greedy: each item first takes as many
// repeats as it can and gives them back one at a time when the rest of the
// pattern fails. Searches report the leftmost match, and among the matches
// at that offset the first one found in this order.
//
// Basic usage:
//
//	re, err := btre.Compile("ab+c")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(re.FindString("xxabbbc")) // "abbbc"
//
//	n, ok := re.MatchPrefixString("abcde") // 3, true
//	re.MatchFullString("abbc")             // true
//
// Advanced usage:
//
//	config := btre.DefaultConfig()
//	config.MaxSteps = 1_000_000 // bound pathological inputs
//	re, err := btre.CompileWithConfig("a*a*a*b", config)
//
// Matching never fails on its own: a malformed pattern is rejected by
// Compile, and afterwards every method is total. The only exception is an
// explicit step budget, reported by Exec as ErrStepLimit.
package btre

import (
	"github.com/coregx/btre/backtrack"
	"github.com/coregx/btre/meta"
	"github.com/coregx/btre/syntax"
)

// Range is a half-open span [Start, End) of a subject.
type Range = syntax.Range

// CompileError reports a malformed pattern and the byte index of the
// offending character.
type CompileError = syntax.CompileError

// Mode selects how an anchored match must end.
type Mode = backtrack.Mode

const (
	// ModePrefix accepts a match followed by any remaining input.
	ModePrefix = backtrack.Prefix

	// ModeFull accepts only a match that consumes the whole input.
	ModeFull = backtrack.Full
)

// Errors returned by Exec.
var (
	ErrNoMatch   = backtrack.ErrNoMatch
	ErrStepLimit = backtrack.ErrStepLimit
)

// Regex is a compiled pattern.
//
// A Regex is safe for concurrent use by multiple goroutines.
//
// Example:
//
//	re := btre.MustCompile("h.llo")
//	if re.MatchString("say hello") {
//	    println("matched!")
//	}
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Regexp is an alias for Regex, for code written against the standard
// library's type name.
type Regexp = Regex

// Compile parses a pattern and returns a Regex.
//
// The error, if any, is a *CompileError.
//
// Example:
//
//	re, err := btre.Compile("[^ ]+@[^ ]+")
//	if err != nil {
//	    log.Fatal(err)
//	}
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, meta.DefaultConfig())
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
//
// Example:
//
//	var word = btre.MustCompile("[^ ]+")
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("regexp: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles a pattern with a custom configuration.
//
// Example:
//
//	config := btre.DefaultConfig()
//	config.EnableMemoization = false
//	re, err := btre.CompileWithConfig("a.*b", config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{engine: engine, pattern: pattern}, nil
}

// DefaultConfig returns the default configuration for compilation.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// QuoteMeta returns a pattern that matches the literal text s.
//
// The language has no escape character, so each metacharacter is written
// as a one-byte bracket set.
//
// Example:
//
//	btre.QuoteMeta("1+1=2?") // "1[+]1=2[?]"
func QuoteMeta(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, 0, len(s)+2*n)
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i]) {
			buf = append(buf, '[', s[i], ']')
			continue
		}
		buf = append(buf, s[i])
	}
	return string(buf)
}

func isSpecial(c byte) bool {
	switch c {
	case '.', '[', '?', '*', '+':
		return true
	}
	return false
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.pattern
}

// NumOperators returns the number of match operators in the compiled
// pattern. Quantifiers do not count: "ab*" has two.
func (r *Regex) NumOperators() int {
	return r.engine.Pattern().Len()
}

// Pattern returns the compiled operator sequence.
func (r *Regex) Pattern() *syntax.Pattern {
	return r.engine.Pattern()
}

// Strategy returns the name of the execution strategy chosen for the
// pattern.
func (r *Regex) Strategy() string {
	return r.engine.Strategy().String()
}

// Stats returns execution statistics.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}

// ResetStats resets execution statistics to zero.
func (r *Regex) ResetStats() {
	r.engine.ResetStats()
}
