// SPDX-License-Identifier: MIT

// Package groebner implements the top-level classical and
// signature-based computation loops over the monoid, polynomial,
// basis, divisor-lookup, reducer, S-pair, and matrix packages.
package groebner

import (
	"errors"
	"time"
)

// ReducerKind selects the strategy used to reduce popped S-pairs.
type ReducerKind int

const (
	ReducerClassical ReducerKind = iota
	ReducerF4
)

// DivisorLookupKind selects the divisor-lookup index implementation.
type DivisorLookupKind int

const (
	DivisorLookupList DivisorLookupKind = iota
	DivisorLookupKdTree
)

// SPairQueueKind selects the priority structure of the reducer.Queue
// that classicReduceSPair and classicTailReduce build, mirroring
// package reducer's QueueKind naming but kept distinct here so Config
// stays self-contained. The S-pair triangle, autoTailReduce and the
// signature-based reduction do not consult it; they always use a heap.
type SPairQueueKind int

const (
	SPairQueueHeap SPairQueueKind = iota
	SPairQueueTournament
	SPairQueueGeobucket
	SPairQueuePairing
)

// Config collects every knob a caller (or, out of scope here, a CLI
// flag parser) would need to configure a computation, mirroring the
// donor pack's functional-options constructors (core.GraphOption,
// generalized here to Config).
type Config struct {
	AutoTailReduce       bool
	AutoTopReduce        bool
	SPairGroupSize       int
	StoreMatrices        bool
	Reducer              ReducerKind
	DivisorLookup        DivisorLookupKind
	SPairQueue           SPairQueueKind
	PreferSparseReducers bool
	BreakAfter           time.Duration
	PrintInterval        int
}

// Option configures a Config.
type Option func(*Config)

// WithAutoTailReduce enables tail-reducing every existing generator's
// non-lead terms against each newly inserted generator (Buchberger-only).
func WithAutoTailReduce(v bool) Option { return func(c *Config) { c.AutoTailReduce = v } }

// WithAutoTopReduce enables retiring generators whose lead is a proper
// multiple of a newly inserted generator's lead (Buchberger-only,
// enabled by default).
func WithAutoTopReduce(v bool) Option { return func(c *Config) { c.AutoTopReduce = v } }

// WithSPairGroupSize sets how many pairs sharing the same sort key are
// grouped for a single matrix reduction pass.
func WithSPairGroupSize(n int) Option { return func(c *Config) { c.SPairGroupSize = n } }

// WithStoreMatrices sets Config.StoreMatrices. No code in this module
// reads the field: every QuadMatrix is released once its pairs are
// reduced, so no matrix is retained for later inspection.
func WithStoreMatrices(v bool) Option { return func(c *Config) { c.StoreMatrices = v } }

// WithReducer selects the classical or F4 reduction strategy.
func WithReducer(k ReducerKind) Option { return func(c *Config) { c.Reducer = k } }

// WithDivisorLookup selects the divisor-lookup index implementation.
func WithDivisorLookup(k DivisorLookupKind) Option { return func(c *Config) { c.DivisorLookup = k } }

// WithSPairQueue selects the priority structure of the classical
// reducer queue (see SPairQueueKind).
func WithSPairQueue(k SPairQueueKind) Option { return func(c *Config) { c.SPairQueue = k } }

// WithPreferSparseReducers biases classical divisor selection toward
// the sparsest candidate reducer.
func WithPreferSparseReducers(v bool) Option {
	return func(c *Config) { c.PreferSparseReducers = v }
}

// WithBreakAfter sets a wall-clock deadline checked between S-pair
// reductions; zero means no deadline.
func WithBreakAfter(d time.Duration) Option { return func(c *Config) { c.BreakAfter = d } }

// WithPrintInterval sets how many newly inserted basis elements
// (non-zero reduced S-polynomials) elapse between progress log lines;
// zero disables progress logging.
func WithPrintInterval(n int) Option { return func(c *Config) { c.PrintInterval = n } }

// NewConfig builds a Config from its defaults (AutoTopReduce enabled,
// SPairGroupSize 1, heap queue, list-based divisor lookup, no
// deadline) plus any Options.
func NewConfig(opts ...Option) Config {
	c := Config{
		AutoTopReduce:  true,
		SPairGroupSize: 1,
		Reducer:        ReducerClassical,
		DivisorLookup:  DivisorLookupList,
		SPairQueue:     SPairQueueHeap,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// ErrInvalidGroupSize indicates a non-positive SPairGroupSize.
var ErrInvalidGroupSize = errors.New("groebner: SPairGroupSize must be >= 1")

// ErrF4RequiresClassical indicates ReducerF4 was requested for
// SignatureBased, which has no matrix-based counterpart: F4's frontier
// expansion pulls in every reachable divisor unconditionally, with no
// place to plug in the regularity check (a candidate reducer's
// multiplied signature staying strictly below the target signature)
// that the signature-guided algorithm depends on for correctness.
var ErrF4RequiresClassical = errors.New("groebner: ReducerF4 is not supported by SignatureBased, use ReducerClassical")

// Validate reports whether cfg's fields hold sane values. Buchberger
// and SignatureBased call it before starting and return its error.
func (c Config) Validate() error {
	if c.SPairGroupSize < 1 {
		return ErrInvalidGroupSize
	}
	return nil
}
