package backtrack

import (
	"github.com/coregx/btre/simd"
	"github.com/coregx/btre/syntax"
)

// Mode selects what counts as a successful anchored match.
type Mode uint8

const (
	// Prefix accepts as soon as every operator is satisfied, whatever
	// input remains.
	Prefix Mode = iota

	// Full accepts only when every operator is satisfied and the whole
	// input from the start offset has been consumed.
	Full
)

// frame records one operator's commitment: it began at start and currently
// holds count repeats, so it ends at start+count.
type frame struct {
	op    int
	start int
	count int
}

// Backtracker matches a syntax.Pattern against byte slices.
//
// The pattern itself is never mutated; all attempt state (the frame stack,
// the memo and the step counter) belongs to the Backtracker. A Backtracker
// is therefore not safe for concurrent use, but any number of them may share
// one Pattern.
type Backtracker struct {
	pattern *syntax.Pattern
	ops     []syntax.Operator
	sets    []*simd.ByteSet
	minLen  int
	config  Config

	frames []frame

	// memo is a bit vector over (operator, offset) pairs known to fail.
	// Layout: bit at index op*(inputLen+1) + offset.
	memo     []uint64
	memoOn   bool
	inputLen int

	steps int
}

// New creates a backtracker for pattern.
func New(pattern *syntax.Pattern, config Config) *Backtracker {
	ops := pattern.Ops()
	sets := make([]*simd.ByteSet, len(ops))
	for i := range ops {
		sets[i] = simd.NewByteSet(ops[i].Accepts())
	}
	return &Backtracker{
		pattern: pattern,
		ops:     ops,
		sets:    sets,
		minLen:  pattern.MinLen(),
		config:  config,
		frames:  make([]frame, 0, len(ops)),
	}
}

// Pattern returns the compiled pattern.
func (b *Backtracker) Pattern() *syntax.Pattern {
	return b.pattern
}

// Steps returns the number of steps taken by the most recent call.
func (b *Backtracker) Steps() int {
	return b.steps
}

// Exec attempts an anchored match starting at offset at and returns the end
// offset of the consumed span [at, end). It returns ErrNoMatch when the
// pattern cannot be satisfied at at, and ErrStepLimit when the step budget
// runs out.
func (b *Backtracker) Exec(subject []byte, at int, mode Mode) (int, error) {
	b.Prepare(subject)
	return b.Attempt(subject, at, mode)
}

// Prepare starts a new search over subject: it clears the memo and the step
// counter. Any number of Attempt calls on the same subject may follow.
func (b *Backtracker) Prepare(subject []byte) {
	b.reset(len(subject))
}

// Attempt performs one anchored attempt at at on the subject given to the
// last Prepare. The frame stack is cleared first; the memo and the step
// counter carry over, so the step budget covers the whole search. All
// attempts between two Prepare calls must use the same mode.
func (b *Backtracker) Attempt(subject []byte, at int, mode Mode) (int, error) {
	if at < 0 || at > len(subject) || len(subject) != b.inputLen {
		return -1, ErrNoMatch
	}
	return b.exec(subject, at, mode)
}

// Search tries anchored prefix matches at at, at+1, ... and returns the span
// of the first one found. Attempt state is discarded between start offsets;
// failure facts in the memo stay valid and are kept.
func (b *Backtracker) Search(subject []byte, at int) (syntax.Range, error) {
	b.Prepare(subject)
	return b.SearchFrom(subject, at)
}

// SearchFrom is Search without Prepare, for callers that have already made
// attempts on subject.
func (b *Backtracker) SearchFrom(subject []byte, at int) (syntax.Range, error) {
	if at < 0 || at > len(subject) {
		return syntax.Range{Start: -1, End: -1}, ErrNoMatch
	}
	for start := at; len(subject)-start >= b.minLen; start++ {
		end, err := b.Attempt(subject, start, Prefix)
		if err == nil {
			return syntax.Range{Start: start, End: end}, nil
		}
		if err != ErrNoMatch {
			return syntax.Range{Start: -1, End: -1}, err
		}
	}
	return syntax.Range{Start: -1, End: -1}, ErrNoMatch
}

// Trace performs an anchored match like Exec and reports, for every
// operator, the unit ranges it consumed in that match.
func (b *Backtracker) Trace(subject []byte, at int, mode Mode) ([][]syntax.Range, error) {
	if _, err := b.Exec(subject, at, mode); err != nil {
		return nil, err
	}
	trace := make([][]syntax.Range, len(b.frames))
	for _, f := range b.frames {
		units := make([]syntax.Range, f.count)
		for k := range units {
			units[k] = syntax.Range{Start: f.start + k, End: f.start + k + 1}
		}
		trace[f.op] = units
	}
	return trace, nil
}

// reset prepares per-call state for an input of length n.
func (b *Backtracker) reset(n int) {
	b.frames = b.frames[:0]
	b.steps = 0
	b.inputLen = n

	b.memoOn = false
	if !b.config.Memoize || len(b.ops) == 0 {
		return
	}
	bitsNeeded := len(b.ops) * (n + 1)
	if bitsNeeded > b.config.MaxMemoBits {
		return
	}
	words := (bitsNeeded + 63) / 64
	if cap(b.memo) >= words {
		b.memo = b.memo[:words]
		clear(b.memo)
	} else {
		b.memo = make([]uint64, words)
	}
	b.memoOn = true
}

// exec runs one anchored attempt at offset at. The frame stack is cleared
// first so nothing leaks between attempts.
//
// The loop alternates two phases. Descend enters operator i at pos, takes
// the greedy repeat count and pushes a frame. Backtrack pops frames that are
// already at their minimum, marking them failed, and resumes after the first
// frame that can give back one repeat.
func (b *Backtracker) exec(subject []byte, at int, mode Mode) (int, error) {
	b.frames = b.frames[:0]
	n := len(b.ops)
	i, pos := 0, at

	for {
		if b.config.MaxSteps > 0 && b.steps >= b.config.MaxSteps {
			return -1, ErrStepLimit
		}
		b.steps++

		if i == n {
			if mode == Prefix || pos == len(subject) {
				return pos, nil
			}
		} else if !b.failed(i, pos) {
			count := b.greedy(i, subject, pos)
			if count >= b.ops[i].MinRepeat() {
				b.frames = append(b.frames, frame{op: i, start: pos, count: count})
				i, pos = i+1, pos+count
				continue
			}
			b.markFailed(i, pos)
		}

		resumed := false
		for len(b.frames) > 0 {
			f := &b.frames[len(b.frames)-1]
			if f.count > b.ops[f.op].MinRepeat() {
				f.count--
				i, pos = f.op+1, f.start+f.count
				resumed = true
				break
			}
			b.markFailed(f.op, f.start)
			b.frames = b.frames[:len(b.frames)-1]
		}
		if !resumed {
			return -1, ErrNoMatch
		}
	}
}

// greedy returns how many consecutive repeats operator i can take at pos,
// capped by its maximum.
func (b *Backtracker) greedy(i int, subject []byte, pos int) int {
	window := subject[pos:]
	if limit := b.ops[i].MaxRepeat(); limit != syntax.Unbounded && limit < len(window) {
		window = window[:limit]
	}
	run := b.sets[i].IndexNot(window)
	if run < 0 {
		return len(window)
	}
	return run
}

func (b *Backtracker) failed(op, pos int) bool {
	if !b.memoOn {
		return false
	}
	idx := op*(b.inputLen+1) + pos
	return b.memo[idx/64]&(1<<(idx%64)) != 0
}

func (b *Backtracker) markFailed(op, pos int) {
	if !b.memoOn {
		return
	}
	idx := op*(b.inputLen+1) + pos
	b.memo[idx/64] |= 1 << (idx % 64)
}
