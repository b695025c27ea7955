// SPDX-License-Identifier: MIT
// File: builders.go
// Role: Store constructors from edge lists and adjacency lists, deep Clone,
//       and invariant validation.

package multigraph

import "fmt"

// FromEdges builds a Store with v vertices and one logical edge per pair.
func FromEdges(v int, edges [][2]int) (*Store, error) {
	s, err := New(v)
	if err != nil {
		return nil, err
	}
	for i, e := range edges {
		if err = s.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("FromEdges: edge #%d: %w", i, err)
		}
	}

	return s, nil
}

// FromAdjacency builds a Store from symmetric adjacency lists: every edge {u,w}
// appears once in adj[u] and once in adj[w]; a self-loop on u appears twice in adj[u].
// E is derived as half the number of entries. Asymmetric input is rejected.
//
// Complexity: O(Σd log d).
func FromAdjacency(adj [][]int) (*Store, error) {
	s, err := New(len(adj))
	if err != nil {
		return nil, err
	}
	total := 0
	for u, row := range adj {
		for _, w := range row {
			if err = s.AddArc(u, w); err != nil {
				return nil, fmt.Errorf("FromAdjacency: %w", err)
			}
			total++
		}
	}
	s.edges = total / 2
	s.unused = s.edges
	if err = s.Validate(); err != nil {
		return nil, fmt.Errorf("FromAdjacency: %w", err)
	}

	return s, nil
}

// Clone returns a deep copy of s. Drained slots are copied as well.
// Complexity: O(V + Σd).
func (s *Store) Clone() *Store {
	c := &Store{
		edges:  s.edges,
		unused: s.unused,
		adj:    make([][]Arc, len(s.adj)),
		degree: append([]int(nil), s.degree...),
	}
	for v, arcs := range s.adj {
		c.adj[v] = append([]Arc(nil), arcs...)
	}

	return c
}

// Validate checks the store invariants:
//  1. multiplicity(v,w) == multiplicity(w,v) for every slot;
//  2. degree[v] == Σ_w multiplicity(v,w);
//  3. a self-loop slot holds an even count (two units per loop);
//  4. Σ degree == 2·Unused() and Unused() ≤ E.
//
// Complexity: O(Σd log d).
func (s *Store) Validate() error {
	sum := 0
	for v, arcs := range s.adj {
		deg := 0
		for _, a := range arcs {
			if a.Count < 0 {
				return fmt.Errorf("Validate: multiplicity(%d,%d)=%d: %w", v, a.To, a.Count, ErrDegreeMismatch)
			}
			deg += a.Count
			if a.To == v {
				if a.Count%2 != 0 {
					return fmt.Errorf("Validate: loop multiplicity(%d,%d)=%d is odd: %w", v, v, a.Count, ErrAsymmetric)
				}
				continue
			}
			if rev := s.Multiplicity(a.To, v); rev != a.Count {
				return fmt.Errorf("Validate: multiplicity(%d,%d)=%d, multiplicity(%d,%d)=%d: %w",
					v, a.To, a.Count, a.To, v, rev, ErrAsymmetric)
			}
		}
		if deg != s.degree[v] {
			return fmt.Errorf("Validate: degree[%d]=%d, Σ multiplicity=%d: %w", v, s.degree[v], deg, ErrDegreeMismatch)
		}
		sum += deg
	}
	if sum != 2*s.unused || s.unused > s.edges {
		return fmt.Errorf("Validate: Σ degree=%d, unused=%d, E=%d: %w", sum, s.unused, s.edges, ErrDegreeMismatch)
	}

	return nil
}
