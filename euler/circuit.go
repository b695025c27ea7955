package euler

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/eulertour/multigraph"
)

// FindCircuit builds an Eulerian circuit of s starting and ending at the start
// vertex (0 unless WithStart is given). The store is consumed: on return every
// edge of a feasible input has been removed. Use Circuit to keep s intact.
//
// Odd degrees and disconnection are reported through Result.Status with a nil
// Tour and a nil error. An error is returned only for caller mistakes (nil
// store, start out of range) or broken store bookkeeping (ErrInvariantViolation).
//
// Steps:
//  1. Validate options and store invariants.
//  2. Degree-parity pre-check.
//  3. Drain: pop v; if degree(v) > 0 decompose cycles through v; emit v.
//     An empty pending stack with edges left means disconnection.
//  4. Emit the vertices still pending, in pop order, and reverse.
func FindCircuit(s *multigraph.Store, opts ...Option) (Result, error) {
	if s == nil {
		return Result{}, ErrNilStore
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Start < 0 || o.Start >= s.Vertices() {
		return Result{}, fmt.Errorf("FindCircuit: start %d not in [0,%d): %w", o.Start, s.Vertices(), ErrStartOutOfRange)
	}

	// 1) Store bookkeeping must be consistent before anything is consumed.
	if err := s.Validate(); err != nil {
		return Result{}, fmt.Errorf("FindCircuit: %w: %w", ErrInvariantViolation, err)
	}

	// 2) Parity.
	total := s.Unused()
	if odd := s.OddVertices(); len(odd) > 0 {
		o.Logger.Debug().Ints("odd", odd).Msg("no eulerian circuit: odd degree")

		return Result{Status: StatusOddDegree, Edges: total, OddVertices: odd}, nil
	}

	// 3) Drain.
	e := newEngine(s, o.Logger)
	e.push(o.Start)
	for e.removed < total {
		v, ok := e.pop()
		if !ok {
			o.Logger.Debug().
				Int("removed", e.removed).
				Int("edges", total).
				Msg("no eulerian circuit: disconnected")

			return Result{Status: StatusDisconnected, Edges: total, Cycles: e.cycles}, nil
		}
		if s.Degree(v) > 0 {
			if err := e.drain(v); err != nil {
				return Result{}, fmt.Errorf("FindCircuit: %w", err)
			}
		}
		e.emitted = append(e.emitted, v)
	}

	// 4) Everything still pending is already drained.
	for v, ok := e.pop(); ok; v, ok = e.pop() {
		e.emitted = append(e.emitted, v)
	}
	slices.Reverse(e.emitted)

	o.Logger.Debug().
		Int("edges", total).
		Int("cycles", e.cycles).
		Int("length", len(e.emitted)).
		Msg("eulerian circuit built")

	return Result{Tour: e.emitted, Status: StatusCircuit, Edges: total, Cycles: e.cycles}, nil
}

// Circuit runs FindCircuit on a clone of s, so s can be reused afterwards.
func Circuit(s *multigraph.Store, opts ...Option) (Result, error) {
	if s == nil {
		return Result{}, ErrNilStore
	}

	return FindCircuit(s.Clone(), opts...)
}
