package backtrack

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/coregx/btre/syntax"
)

func newForTest(t testing.TB, pattern string, config Config) *Backtracker {
	t.Helper()
	p, err := syntax.Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q): %v", pattern, err)
	}
	return New(p, config)
}

func TestExecPrefix(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		end     int // -1 for no match
	}{
		{".", "", -1},
		{".", "x", 1},
		{".", "xyz", 1},
		{"[abc]", "", -1},
		{"[abc]", "b", 1},
		{"[abc]", "d", -1},
		{"a*", "", 0},
		{"a*", "aaab", 3},
		{"a*", "baaa", 0},
		{"a+", "baaa", -1},
		{"a+", "aab", 2},
		{"a?", "aa", 1},
		{"a?b", "b", 1},
		{"a?b", "ab", 2},
		{"a*a", "aaa", 3},
		{"a*aa", "aaa", 3},
		{"a*aaaa", "aaa", -1},
		{"[^xyz]+", "abcxabc", 3},
		{".*b", "aaabaab", 7},
		{".*b.*b", "abab", 4},
		{".*x", "abcdef", -1},
		{"[]", "a", -1},
		{"[]*", "a", 0},
		{"[^]", "a", 1},
		{"[^]", "", -1},
		{"[ab]*[bc]", "abab", 4},
		{"a.c", "abcd", 3},
		{"", "abc", 0},
		{"", "", 0},
		{"ab+c?d", "abbbd", 5},
		{"ab+c?d", "abbbce", -1},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.input, func(t *testing.T) {
			for _, memo := range []bool{true, false} {
				cfg := DefaultConfig()
				cfg.Memoize = memo
				b := newForTest(t, tt.pattern, cfg)
				end, err := b.Exec([]byte(tt.input), 0, Prefix)
				if tt.end < 0 {
					if !errors.Is(err, ErrNoMatch) {
						t.Errorf("memo=%v: Exec = (%d, %v), want ErrNoMatch", memo, end, err)
					}
					continue
				}
				if err != nil || end != tt.end {
					t.Errorf("memo=%v: Exec = (%d, %v), want %d", memo, end, err, tt.end)
				}
			}
		})
	}
}

func TestExecFull(t *testing.T) {
	tests := []struct {
		pattern string
		input   string
		want    bool
	}{
		{"a*", "", true},
		{"a*", "aaa", true},
		{"a*", "aab", false},
		{"a*b", "aab", true},
		{"a?", "aa", false},
		{"a.*b", "abxb", true},
		{"a?[ab]?b", "ab", true},
		{"[ab]*b", "abab", true},
		{"[ab]*b", "abba", false},
		{".", "", false},
		{"", "", true},
		{"", "x", false},
	}

	for _, tt := range tests {
		b := newForTest(t, tt.pattern, DefaultConfig())
		end, err := b.Exec([]byte(tt.input), 0, Full)
		got := err == nil
		if got != tt.want {
			t.Errorf("Exec(%q, %q, Full) = (%d, %v), want match=%v", tt.pattern, tt.input, end, err, tt.want)
		}
		if got && end != len(tt.input) {
			t.Errorf("Exec(%q, %q, Full) end = %d, want %d", tt.pattern, tt.input, end, len(tt.input))
		}
	}
}

func TestExecOffset(t *testing.T) {
	b := newForTest(t, "b+", DefaultConfig())
	subject := []byte("aabbbc")

	end, err := b.Exec(subject, 2, Prefix)
	if err != nil || end != 5 {
		t.Errorf("Exec at 2 = (%d, %v), want 5", end, err)
	}
	if _, err := b.Exec(subject, 0, Prefix); !errors.Is(err, ErrNoMatch) {
		t.Errorf("Exec at 0 err = %v, want ErrNoMatch", err)
	}
	for _, at := range []int{-1, 7} {
		if _, err := b.Exec(subject, at, Prefix); !errors.Is(err, ErrNoMatch) {
			t.Errorf("Exec at %d err = %v, want ErrNoMatch", at, err)
		}
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		pattern    string
		input      string
		start, end int
	}{
		{"b+", "aabbbc", 2, 5},
		{"x", "abc", -1, -1},
		{"a*", "bbb", 0, 0},
		{"[0123456789]+", "abc 123 def", 4, 7},
		{"c.", "abc", -1, -1},
		{"", "", 0, 0},
		{"[^ ]+", "   word", 3, 7},
	}

	for _, tt := range tests {
		b := newForTest(t, tt.pattern, DefaultConfig())
		r, err := b.Search([]byte(tt.input), 0)
		if tt.start < 0 {
			if !errors.Is(err, ErrNoMatch) {
				t.Errorf("Search(%q, %q) = (%v, %v), want ErrNoMatch", tt.pattern, tt.input, r, err)
			}
			continue
		}
		if err != nil || r.Start != tt.start || r.End != tt.end {
			t.Errorf("Search(%q, %q) = (%v, %v), want [%d,%d)", tt.pattern, tt.input, r, err, tt.start, tt.end)
		}
	}
}

func TestTrace(t *testing.T) {
	b := newForTest(t, "a*a", DefaultConfig())
	trace, err := b.Trace([]byte("aaa"), 0, Prefix)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if len(trace) != 2 {
		t.Fatalf("len(trace) = %d, want 2", len(trace))
	}
	// a* keeps two repeats after giving one back to the trailing a.
	want0 := []syntax.Range{{Start: 0, End: 1}, {Start: 1, End: 2}}
	want1 := []syntax.Range{{Start: 2, End: 3}}
	if !equalRanges(trace[0], want0) {
		t.Errorf("trace[0] = %v, want %v", trace[0], want0)
	}
	if !equalRanges(trace[1], want1) {
		t.Errorf("trace[1] = %v, want %v", trace[1], want1)
	}

	if _, err := b.Trace([]byte("b"), 0, Prefix); !errors.Is(err, ErrNoMatch) {
		t.Errorf("Trace on non-match err = %v, want ErrNoMatch", err)
	}
}

func TestTraceZeroRepeats(t *testing.T) {
	b := newForTest(t, "x?y", DefaultConfig())
	trace, err := b.Trace([]byte("y"), 0, Prefix)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if len(trace[0]) != 0 || len(trace[1]) != 1 {
		t.Errorf("trace = %v, want [] and one unit", trace)
	}
}

func TestIdempotent(t *testing.T) {
	b := newForTest(t, "[ab]*b.", DefaultConfig())
	subject := []byte("ababbbxa")
	end1, err1 := b.Exec(subject, 0, Prefix)
	end2, err2 := b.Exec(subject, 0, Prefix)
	if end1 != end2 || err1 != err2 {
		t.Errorf("repeated Exec differs: (%d,%v) vs (%d,%v)", end1, err1, end2, err2)
	}
	r1, _ := b.Search(subject, 0)
	r2, _ := b.Search(subject, 0)
	if r1 != r2 {
		t.Errorf("repeated Search differs: %v vs %v", r1, r2)
	}
}

func TestStepLimit(t *testing.T) {
	// Without memoization, stacked stars over a run of a's backtrack
	// exponentially.
	cfg := DefaultConfig()
	cfg.Memoize = false
	cfg.MaxSteps = 1000
	b := newForTest(t, "a*a*a*a*a*a*b", cfg)
	subject := []byte(strings.Repeat("a", 40))

	if _, err := b.Exec(subject, 0, Prefix); !errors.Is(err, ErrStepLimit) {
		t.Fatalf("Exec err = %v, want ErrStepLimit", err)
	}
	if b.Steps() != cfg.MaxSteps {
		t.Errorf("Steps() = %d, want %d", b.Steps(), cfg.MaxSteps)
	}
	if _, err := b.Search(subject, 0); !errors.Is(err, ErrStepLimit) {
		t.Errorf("Search err = %v, want ErrStepLimit", err)
	}
}

func TestMemoBoundsWork(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSteps = 1_000_000
	b := newForTest(t, "a*a*a*a*a*a*b", cfg)
	subject := []byte(strings.Repeat("a", 200))

	if _, err := b.Exec(subject, 0, Prefix); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("Exec err = %v, want ErrNoMatch", err)
	}
}

func TestMemoDisabledForLargeInput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxMemoBits = 10
	b := newForTest(t, "a*b", cfg)
	end, err := b.Exec([]byte("aaaab"), 0, Prefix)
	if err != nil || end != 5 {
		t.Errorf("Exec = (%d, %v), want 5", end, err)
	}
	if b.memoOn {
		t.Error("memo should be off when it exceeds MaxMemoBits")
	}
}

// reference matches ops[i:] at pos by plain recursion with per-operator
// histories, trying the greedy count first. It returns the first end offset
// accepted by full (or any end when full is false).
func reference(ops []syntax.Operator, hist [][]syntax.Range, i int, subject []byte, pos int, full bool) (int, bool) {
	if i == len(ops) {
		if full && pos != len(subject) {
			return -1, false
		}
		return pos, true
	}
	op := ops[i]
	hist[i] = hist[i][:0]
	p := pos
	for op.MaxRepeat() == syntax.Unbounded || len(hist[i]) < op.MaxRepeat() {
		r := syntax.Range{Start: p}
		if !op.Match(subject, &r) {
			break
		}
		hist[i] = append(hist[i], r)
		p = r.End
	}
	for len(hist[i]) >= op.MinRepeat() {
		if end, ok := reference(ops, hist, i+1, subject, p, full); ok {
			return end, true
		}
		if len(hist[i]) == 0 {
			break
		}
		last := hist[i][len(hist[i])-1]
		hist[i] = hist[i][:len(hist[i])-1]
		p = last.Start
	}
	return -1, false
}

func randomPattern(rng *rand.Rand) string {
	atoms := []string{"a", "b", "c", ".", "[ab]", "[^a]", "[bc]", "[]", "[^]"}
	quants := []string{"", "", "?", "*", "+"}
	var sb strings.Builder
	for n := rng.Intn(5); n >= 0; n-- {
		sb.WriteString(atoms[rng.Intn(len(atoms))])
		sb.WriteString(quants[rng.Intn(len(quants))])
	}
	return sb.String()
}

func randomSubject(rng *rand.Rand) []byte {
	b := make([]byte, rng.Intn(10))
	for i := range b {
		b[i] = "abcd"[rng.Intn(4)]
	}
	return b
}

func TestAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for iter := 0; iter < 3000; iter++ {
		pattern := randomPattern(rng)
		subject := randomSubject(rng)
		p := syntax.MustCompile(pattern)
		ops := p.Ops()

		for _, memo := range []bool{true, false} {
			cfg := DefaultConfig()
			cfg.Memoize = memo
			b := New(p, cfg)
			for _, mode := range []Mode{Prefix, Full} {
				hist := make([][]syntax.Range, len(ops))
				wantEnd, wantOK := reference(ops, hist, 0, subject, 0, mode == Full)
				gotEnd, err := b.Exec(subject, 0, mode)
				if (err == nil) != wantOK || (wantOK && gotEnd != wantEnd) {
					t.Fatalf("pattern %q subject %q mode %d memo %v: got (%d, %v), want (%d, %v)",
						pattern, subject, mode, memo, gotEnd, err, wantEnd, wantOK)
				}
			}
		}
	}
}

func equalRanges(a, b []syntax.Range) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func BenchmarkExecBacktrackHeavy(b *testing.B) {
	bt := newForTest(b, "[ab]*b[ab]*b[ab]*c", DefaultConfig())
	subject := []byte(strings.Repeat("ab", 64))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = bt.Exec(subject, 0, Prefix)
	}
}

func TestPrepareAttempt(t *testing.T) {
	b := newForTest(t, "ab*", DefaultConfig())
	subject := []byte("xabbxab")
	b.Prepare(subject)

	if _, err := b.Attempt(subject, 0, Prefix); !errors.Is(err, ErrNoMatch) {
		t.Errorf("Attempt at 0 err = %v, want ErrNoMatch", err)
	}
	if end, err := b.Attempt(subject, 1, Prefix); err != nil || end != 4 {
		t.Errorf("Attempt at 1 = (%d, %v), want 4", end, err)
	}
	if end, err := b.Attempt(subject, 5, Prefix); err != nil || end != 7 {
		t.Errorf("Attempt at 5 = (%d, %v), want 7", end, err)
	}
	if _, err := b.Attempt([]byte("ab"), 0, Prefix); !errors.Is(err, ErrNoMatch) {
		t.Errorf("Attempt on unprepared subject err = %v, want ErrNoMatch", err)
	}

	r, err := b.SearchFrom(subject, 2)
	if err != nil || r.Start != 5 || r.End != 7 {
		t.Errorf("SearchFrom(2) = (%v, %v), want [5,7)", r, err)
	}
}
