package prefilter

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/btre/literal"
)

// ahoCorasickPrefilter searches for any of several required literals with
// a single automaton pass. The extractor grows all literals in lockstep, so
// they share one length and the leftmost match start is unambiguous.
type ahoCorasickPrefilter struct {
	auto      *ahocorasick.Automaton
	length    int
	heapBytes int
	complete  bool
}

func newAhoCorasickPrefilter(seq *literal.Seq, complete bool) (*ahoCorasickPrefilter, error) {
	builder := ahocorasick.NewBuilder()
	heap := 0
	for _, lit := range seq.Literals() {
		builder.AddPattern(lit.Bytes)
		heap += len(lit.Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &ahoCorasickPrefilter{
		auto:      auto,
		length:    seq.MinLen(),
		heapBytes: heap,
		complete:  complete,
	}, nil
}

// Find implements Prefilter.Find using the automaton.
func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start >= len(haystack) {
		return -1
	}
	m := p.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsComplete implements Prefilter.IsComplete.
func (p *ahoCorasickPrefilter) IsComplete() bool { return p.complete }

// LiteralLen implements Prefilter.LiteralLen.
func (p *ahoCorasickPrefilter) LiteralLen() int {
	if p.complete {
		return p.length
	}
	return 0
}

// HeapBytes implements Prefilter.HeapBytes. Only the pattern bytes are
// counted; the automaton's own tables are not exposed.
func (p *ahoCorasickPrefilter) HeapBytes() int { return p.heapBytes }
