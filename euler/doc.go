// Package euler constructs Eulerian circuits of undirected multigraphs held in a
// multigraph.Store, using an iterative variant of Hierholzer's algorithm.
//
// What:
//
//   - FindCircuit: degree-parity pre-check, then repeated cycle decomposition
//     spliced into a growing tour through a LIFO pending stack.
//   - Circuit: FindCircuit on a clone, leaving the caller's store intact.
//   - Verify: checks that a tour is a closed walk using every edge exactly once.
//
// How (per pending vertex v with remaining degree > 0):
//
//  1. Self-loop peeling: each loop on v is removed and v is emitted once.
//  2. Parallel-edge peeling: every pair of parallel edges v=w becomes a 2-cycle
//     v→w→v whose vertices are pushed on the pending stack.
//  3. Cycle search: an iterative DFS rooted at v (explicit frame stack, parent
//     array, ascending neighbor order) stops at the first edge curr→v whose
//     tree parent is not v; the cycle v→…→curr→v is removed and pushed.
//
// Once v is drained it is emitted; emitted vertices form the tour back to front.
//
// Outcomes:
//
//	StatusCircuit      - Tour holds E+1 vertices, Tour[0] == Tour[E] == start.
//	StatusOddDegree    - some vertex has odd degree; Tour is empty.
//	StatusDisconnected - the pending stack ran dry with edges left; Tour is empty.
//
// Errors (never returned for a valid symmetric store):
//
//	ErrNilStore, ErrStartOutOfRange       - caller errors.
//	ErrInvariantViolation (ErrNoClosingEdge) - broken store bookkeeping.
//
// Complexity:
//
//   - Time:   O(E·(V + Σd)) worst case (one DFS per extracted cycle), O(E log d)
//     for loop/parallel-heavy inputs.
//   - Memory: O(V) for marks, parents, frames; O(E) for the pending stack and tour.
//
// Determinism: identical stores and options produce identical tours.
package euler
