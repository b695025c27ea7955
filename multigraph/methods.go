// SPDX-License-Identifier: MIT
// File: methods.go
// Role: Store mutation (AddArc/AddEdge/RemoveEdge) and queries.
// Determinism:
//   - Arcs(v) and Neighbors(v) are ascending by neighbor index.
// Invariant:
//   - After every AddEdge/RemoveEdge, multiplicity(v,w) == multiplicity(w,v)
//     and degree[v] == Σ_w multiplicity(v,w).

package multigraph

import (
	"fmt"
	"sort"
)

// Vertices returns V.
func (s *Store) Vertices() int { return len(s.degree) }

// Edges returns E, the number of logical edges added through AddEdge.
func (s *Store) Edges() int { return s.edges }

// Unused returns the number of logical edges not yet removed.
func (s *Store) Unused() int { return s.unused }

// AddArc adds one half-edge v→w: multiplicity(v,w) += 1 and degree[v] += 1.
// Callers building an undirected graph add (v,w) and (w,v); AddEdge does both.
//
// Complexity: O(log d) when the slot exists, O(d) when a new neighbor is inserted.
func (s *Store) AddArc(v, w int) error {
	if err := s.checkPair(v, w); err != nil {
		return fmt.Errorf("AddArc(%d,%d): %w", v, w, err)
	}

	i, ok := s.find(v, w)
	if !ok {
		// insert a new slot at i, keeping adj[v] sorted by neighbor
		s.adj[v] = append(s.adj[v], Arc{})
		copy(s.adj[v][i+1:], s.adj[v][i:])
		s.adj[v][i] = Arc{To: w}
	}
	s.adj[v][i].Count++
	s.degree[v]++

	return nil
}

// AddEdge adds one undirected edge {v,w} and increments E.
// A self-loop (v==w) contributes 2 to multiplicity(v,v) and 2 to degree[v].
func (s *Store) AddEdge(v, w int) error {
	if err := s.checkPair(v, w); err != nil {
		return fmt.Errorf("AddEdge(%d,%d): %w", v, w, err)
	}
	_ = s.AddArc(v, w) // pair already validated
	_ = s.AddArc(w, v)
	s.edges++
	s.unused++

	return nil
}

// RemoveEdge removes one undirected edge {v,w}: multiplicity(v,w) and
// multiplicity(w,v) drop by one each, as do degree[v] and degree[w].
// For v==w both decrements hit the same slot, removing one whole self-loop.
//
// The store is unchanged when an error is returned. Errors here mean the
// caller's bookkeeping is broken.
//
// Complexity: O(log d).
func (s *Store) RemoveEdge(v, w int) error {
	if err := s.checkPair(v, w); err != nil {
		return fmt.Errorf("RemoveEdge(%d,%d): %w", v, w, err)
	}

	i, ok := s.find(v, w)
	j, okRev := s.find(w, v)
	if v == w {
		// a loop needs two units on the single v→v slot
		if !ok || s.adj[v][i].Count < 2 {
			return fmt.Errorf("RemoveEdge(%d,%d): %w", v, w, ErrEdgeNotFound)
		}
		if s.degree[v] < 2 {
			return fmt.Errorf("RemoveEdge(%d,%d): %w", v, w, ErrNegativeDegree)
		}
	} else {
		if !ok || !okRev || s.adj[v][i].Count < 1 || s.adj[w][j].Count < 1 {
			return fmt.Errorf("RemoveEdge(%d,%d): %w", v, w, ErrEdgeNotFound)
		}
		if s.degree[v] < 1 || s.degree[w] < 1 {
			return fmt.Errorf("RemoveEdge(%d,%d): %w", v, w, ErrNegativeDegree)
		}
	}

	s.adj[v][i].Count--
	s.adj[w][j].Count--
	s.degree[v]--
	s.degree[w]--
	s.unused--

	return nil
}

// Degree returns the remaining degree of v, or 0 when v is out of range.
func (s *Store) Degree(v int) int {
	if !s.inRange(v) {
		return 0
	}

	return s.degree[v]
}

// Multiplicity returns the remaining multiplicity of v→w (0 when absent or out of range).
// For a self-loop the value is twice the number of remaining loops.
func (s *Store) Multiplicity(v, w int) int {
	if !s.inRange(v) || !s.inRange(w) {
		return 0
	}
	if i, ok := s.find(v, w); ok {
		return s.adj[v][i].Count
	}

	return 0
}

// Arcs returns the live adjacency slots of v, sorted by neighbor, including
// drained slots (Count == 0). The slice is read-only by convention and stays
// valid until the next AddArc on v.
func (s *Store) Arcs(v int) []Arc {
	if !s.inRange(v) {
		return nil
	}

	return s.adj[v]
}

// Neighbors returns the neighbors of v with positive remaining multiplicity,
// ascending. A vertex with remaining loops lists itself.
func (s *Store) Neighbors(v int) []int {
	if !s.inRange(v) {
		return nil
	}
	out := make([]int, 0, len(s.adj[v]))
	for _, a := range s.adj[v] {
		if a.Count > 0 {
			out = append(out, a.To)
		}
	}

	return out
}

// OddVertices returns the vertices with odd remaining degree, ascending.
func (s *Store) OddVertices() []int {
	var odd []int
	for v, d := range s.degree {
		if d%2 != 0 {
			odd = append(odd, v)
		}
	}

	return odd
}

// HasEvenDegrees reports whether every vertex has even remaining degree, the
// degree-parity condition for an Eulerian circuit.
// Complexity: O(V).
func (s *Store) HasEvenDegrees() bool {
	for _, d := range s.degree {
		if d%2 != 0 {
			return false
		}
	}

	return true
}

// IsDrained reports whether no unused edges remain.
func (s *Store) IsDrained() bool { return s.unused == 0 }

// find locates the slot of w in adj[v]. When absent, i is the insertion index.
func (s *Store) find(v, w int) (int, bool) {
	arcs := s.adj[v]
	i := sort.Search(len(arcs), func(k int) bool { return arcs[k].To >= w })

	return i, i < len(arcs) && arcs[i].To == w
}

func (s *Store) inRange(v int) bool { return v >= 0 && v < len(s.degree) }

func (s *Store) checkPair(v, w int) error {
	if !s.inRange(v) {
		return fmt.Errorf("vertex %d not in [0,%d): %w", v, len(s.degree), ErrVertexOutOfRange)
	}
	if !s.inRange(w) {
		return fmt.Errorf("vertex %d not in [0,%d): %w", w, len(s.degree), ErrVertexOutOfRange)
	}

	return nil
}
