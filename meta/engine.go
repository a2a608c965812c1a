package meta

import (
	"sync"
	"sync/atomic"

	"github.com/coregx/btre/backtrack"
	"github.com/coregx/btre/literal"
	"github.com/coregx/btre/prefilter"
	"github.com/coregx/btre/syntax"
)

// Engine executes a compiled pattern with the strategy chosen for it.
//
// An Engine is immutable after compilation and safe for concurrent use: all
// per-search state lives in pooled searchState values.
//
// Example:
//
//	engine, err := meta.Compile("ab+c")
//	if err != nil {
//	    return err
//	}
//	if m := engine.Find([]byte("xxabbbc")); m != nil {
//	    println(m.String()) // "abbbc"
//	}
type Engine struct {
	// stats must be the first field so its uint64 counters are 8-byte
	// aligned for atomic access on 32-bit platforms.
	stats Stats

	pattern   *syntax.Pattern
	config    Config
	strategy  Strategy
	prefilter prefilter.Prefilter
	minLen    int
	maxLen    int

	states sync.Pool
}

// Stats tracks execution statistics. All counters are updated atomically.
type Stats struct {
	// Searches counts unanchored searches.
	Searches uint64

	// BacktrackSearches counts searches that ran the backtracker at every
	// offset, including searches that fell back after retiring the prefilter.
	BacktrackSearches uint64

	// LiteralSearches counts searches answered by a complete prefilter.
	LiteralSearches uint64

	// PrefilterHits counts prefilter candidates confirmed by the backtracker.
	PrefilterHits uint64

	// PrefilterMisses counts prefilter candidates the backtracker rejected.
	PrefilterMisses uint64

	// PrefilterAbandoned counts searches whose prefilter was retired for a
	// low confirm ratio.
	PrefilterAbandoned uint64

	// StepLimitHits counts searches stopped by Config.MaxSteps.
	StepLimitHits uint64
}

// searchState is the mutable state of one search.
type searchState struct {
	bt      *backtrack.Backtracker
	tracker *prefilter.Tracker
}

// Compile compiles pattern with the default configuration.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig compiles pattern with a custom configuration.
//
// Returns a *ConfigError if config is invalid, or a *syntax.CompileError if
// the pattern is malformed.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	p, err := syntax.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return NewEngine(p, config), nil
}

// NewEngine builds an engine for an already compiled pattern. The config is
// assumed valid.
func NewEngine(p *syntax.Pattern, config Config) *Engine {
	e := &Engine{
		pattern: p,
		config:  config,
		minLen:  p.MinLen(),
		maxLen:  p.MaxLen(),
	}

	if config.EnablePrefilter && p.Satisfiable() {
		ext := literal.New(literal.ExtractorConfig{
			MaxLiterals:   config.MaxLiterals,
			MaxLiteralLen: literal.DefaultConfig().MaxLiteralLen,
			MaxClassSize:  config.MaxClassSize,
		})
		var lead *syntax.Operator
		if p.Len() > 0 {
			op := p.Op(0)
			lead = &op
		}
		e.prefilter = prefilter.NewBuilder(ext.ExtractPrefixes(p), lead).Build()
	}
	e.strategy = SelectStrategy(p, e.prefilter)

	btConfig := backtrack.Config{
		Memoize:     config.EnableMemoization,
		MaxMemoBits: config.MaxMemoBits,
		MaxSteps:    config.MaxSteps,
	}
	e.states.New = func() any {
		return &searchState{
			bt:      backtrack.New(p, btConfig),
			tracker: prefilter.NewTracker(e.prefilter),
		}
	}
	return e
}

func (e *Engine) getState() *searchState {
	return e.states.Get().(*searchState)
}

func (e *Engine) putState(s *searchState) {
	e.states.Put(s)
}

// Pattern returns the compiled pattern.
func (e *Engine) Pattern() *syntax.Pattern {
	return e.pattern
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.config
}

// Strategy returns the execution strategy selected for this engine.
//
// Example:
//
//	engine, _ := meta.Compile("abc")
//	println(engine.Strategy().String()) // "Literal"
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// Prefilter returns the prefilter used by the engine, or nil.
func (e *Engine) Prefilter() prefilter.Prefilter {
	return e.prefilter
}

// Stats returns a snapshot of the execution statistics.
func (e *Engine) Stats() Stats {
	return Stats{
		Searches:           atomic.LoadUint64(&e.stats.Searches),
		BacktrackSearches:  atomic.LoadUint64(&e.stats.BacktrackSearches),
		LiteralSearches:    atomic.LoadUint64(&e.stats.LiteralSearches),
		PrefilterHits:      atomic.LoadUint64(&e.stats.PrefilterHits),
		PrefilterMisses:    atomic.LoadUint64(&e.stats.PrefilterMisses),
		PrefilterAbandoned: atomic.LoadUint64(&e.stats.PrefilterAbandoned),
		StepLimitHits:      atomic.LoadUint64(&e.stats.StepLimitHits),
	}
}

// ResetStats resets execution statistics to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.Searches, 0)
	atomic.StoreUint64(&e.stats.BacktrackSearches, 0)
	atomic.StoreUint64(&e.stats.LiteralSearches, 0)
	atomic.StoreUint64(&e.stats.PrefilterHits, 0)
	atomic.StoreUint64(&e.stats.PrefilterMisses, 0)
	atomic.StoreUint64(&e.stats.PrefilterAbandoned, 0)
	atomic.StoreUint64(&e.stats.StepLimitHits, 0)
}
