// Package multigraph provides the mutable undirected multigraph store consumed by
// the Eulerian circuit engine.
//
// What:
//
//   - Store: vertices 0..V-1, a per-vertex adjacency list of
//     (neighbor, remaining multiplicity) pairs kept in ascending neighbor order,
//     and a per-vertex remaining-degree counter.
//   - AddArc / AddEdge: half-edge and logical-edge insertion.
//   - RemoveEdge: symmetric removal of one logical edge (one whole self-loop when v==w).
//   - Validate: checks the symmetric-multiplicity and degree-sum invariants.
//
// Why:
//
//   - Hierholzer-style algorithms consume edges destructively; the store keeps
//     multiplicities and degrees in lock-step so removal is O(log d) and never
//     leaves the two halves of an edge disagreeing.
//
// Self-loops:
//
//	A loop on v is stored as two units of multiplicity under v→v and counts 2
//	towards degree[v]. RemoveEdge(v, v) removes both units at once.
//
// Determinism:
//
//   - Neighbors(v) and adjacency iteration are ascending by neighbor index.
//
// Complexity:
//
//   - AddArc, Multiplicity, RemoveEdge: O(log d) lookup (+ O(d) on first insert of a neighbor).
//   - Validate, Clone: O(V + Σd).
//
// Concurrency:
//
//	A Store is not safe for concurrent use; one run owns one instance.
//
// Errors:
//
//	ErrNoVertices        - vertex count < 1.
//	ErrVertexOutOfRange  - vertex index outside [0,V).
//	ErrEdgeNotFound      - removal of an edge with no remaining multiplicity.
//	ErrNegativeDegree    - removal would drive a degree below zero.
//	ErrAsymmetric        - multiplicity(v,w) != multiplicity(w,v).
//	ErrDegreeMismatch    - degree bookkeeping disagrees with multiplicities or E.
package multigraph
