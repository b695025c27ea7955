// SPDX-License-Identifier: MIT
// File: decompose.go
// Role: cycle decomposer. Strips closed sub-walks through one vertex from the
//       store: self-loops, parallel pairs, then DFS-found cycles.
// Determinism:
//   - Neighbors are scanned in ascending index order in every tier.

package euler

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/eulertour/multigraph"
)

// frame is one level of the iterative cycle search.
type frame struct {
	v      int // vertex being expanded
	parent int // tree parent of v, -1 for the root
	next   int // next arc index of v to inspect
}

// engine holds the mutable state of one FindCircuit run.
type engine struct {
	s   *multigraph.Store
	log zerolog.Logger

	pending []int // LIFO of vertices still to drain
	emitted []int // tour, back to front
	removed int   // edges committed to some cycle
	cycles  int

	// cycle-search scratch, reused across searches
	seen   []uint32 // seen[v] == epoch ⇔ v marked in the current search
	epoch  uint32
	edgeTo []int // DFS parent of each marked vertex
	frames []frame
	chain  []int
}

func newEngine(s *multigraph.Store, log zerolog.Logger) *engine {
	n := s.Vertices()

	return &engine{
		s:      s,
		log:    log,
		seen:   make([]uint32, n),
		edgeTo: make([]int, n),
	}
}

func (e *engine) push(v int) { e.pending = append(e.pending, v) }

func (e *engine) pop() (int, bool) {
	if len(e.pending) == 0 {
		return 0, false
	}
	v := e.pending[len(e.pending)-1]
	e.pending = e.pending[:len(e.pending)-1]

	return v, true
}

// drain removes every remaining edge at v, tier by tier, until degree(v) == 0.
func (e *engine) drain(v int) error {
	if err := e.peelLoops(v); err != nil {
		return err
	}
	if err := e.peelParallel(v); err != nil {
		return err
	}
	for e.s.Degree(v) > 0 {
		if err := e.extractCycle(v); err != nil {
			return err
		}
	}

	return nil
}

// peelLoops removes every self-loop on v and emits v once per loop.
// Each loop is one edge and two units of degree.
func (e *engine) peelLoops(v int) error {
	for e.s.Multiplicity(v, v) >= 2 {
		if err := e.s.RemoveEdge(v, v); err != nil {
			return fmt.Errorf("%w: peel loop at %d: %w", ErrInvariantViolation, v, err)
		}
		e.emitted = append(e.emitted, v)
		e.removed++
		e.cycles++
	}

	return nil
}

// peelParallel turns every pair of parallel edges v=w into the 2-cycle v→w→v.
// v is pushed below w so that w is drained first and v re-emitted after it.
func (e *engine) peelParallel(v int) error {
	arcs := e.s.Arcs(v)
	for i := range arcs {
		w := arcs[i].To
		if w == v {
			continue
		}
		for arcs[i].Count >= 2 {
			e.push(v)
			e.push(w)
			if err := e.s.RemoveEdge(v, w); err != nil {
				return fmt.Errorf("%w: peel parallel %d=%d: %w", ErrInvariantViolation, v, w, err)
			}
			if err := e.s.RemoveEdge(w, v); err != nil {
				return fmt.Errorf("%w: peel parallel %d=%d: %w", ErrInvariantViolation, v, w, err)
			}
			e.removed += 2
			e.cycles++
		}
	}

	return nil
}

// extractCycle runs one depth-first search rooted at base and removes the
// first cycle that closes back on base.
//
// A closing edge is curr→base where curr's tree parent is not base; with
// parallel edges already peeled, this excludes retracing the tree edge that
// left base.
//
// Complexity: O(V + Σd) per search.
func (e *engine) extractCycle(base int) error {
	e.epoch++
	if e.epoch == 0 {
		// wrapped around: stale stamps could alias the new epoch
		clear(e.seen)
		e.epoch = 1
	}

	e.frames = append(e.frames[:0], frame{v: base, parent: -1})
	e.seen[base] = e.epoch

	for len(e.frames) > 0 {
		top := len(e.frames) - 1
		f := &e.frames[top]
		arcs := e.s.Arcs(f.v)
		if f.next >= len(arcs) {
			e.frames = e.frames[:top] // backtrack
			continue
		}
		a := arcs[f.next]
		f.next++
		if a.Count == 0 {
			continue
		}

		curr, w := f.v, a.To
		if e.seen[w] != e.epoch {
			e.seen[w] = e.epoch
			e.edgeTo[w] = curr
			e.frames = append(e.frames, frame{v: w, parent: curr})
			continue
		}
		if w == base && f.parent != base {
			return e.splice(base, curr)
		}
	}

	return fmt.Errorf("%w: extract cycle at %d (degree %d): %w",
		ErrInvariantViolation, base, e.s.Degree(base), ErrNoClosingEdge)
}

// splice removes the cycle base→…→curr→base found by extractCycle and pushes
// it on the pending stack: base first, then the tree path so that curr is on top.
func (e *engine) splice(base, curr int) error {
	if err := e.s.RemoveEdge(curr, base); err != nil {
		return fmt.Errorf("%w: close cycle %d→%d: %w", ErrInvariantViolation, curr, base, err)
	}
	e.removed++

	e.chain = e.chain[:0]
	for x := curr; x != base; x = e.edgeTo[x] {
		if err := e.s.RemoveEdge(e.edgeTo[x], x); err != nil {
			return fmt.Errorf("%w: tree edge %d→%d: %w", ErrInvariantViolation, e.edgeTo[x], x, err)
		}
		e.removed++
		e.chain = append(e.chain, x)
	}

	e.push(base)
	for i := len(e.chain) - 1; i >= 0; i-- {
		e.push(e.chain[i])
	}
	e.cycles++
	e.log.Debug().Int("base", base).Int("length", len(e.chain)+1).Msg("cycle extracted")

	return nil
}
