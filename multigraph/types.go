package multigraph

import "errors"

// Sentinel errors for store operations.
var (
	// ErrNoVertices indicates a store was requested with fewer than one vertex.
	ErrNoVertices = errors.New("multigraph: vertex count must be at least 1")

	// ErrVertexOutOfRange indicates a vertex index outside [0,V).
	ErrVertexOutOfRange = errors.New("multigraph: vertex out of range")

	// ErrEdgeNotFound indicates a removal of an edge with no remaining multiplicity.
	ErrEdgeNotFound = errors.New("multigraph: edge not found")

	// ErrNegativeDegree indicates a removal that would drive a degree negative.
	ErrNegativeDegree = errors.New("multigraph: degree would become negative")

	// ErrAsymmetric indicates multiplicity(v,w) != multiplicity(w,v).
	ErrAsymmetric = errors.New("multigraph: asymmetric multiplicity")

	// ErrDegreeMismatch indicates degree counters disagree with the stored multiplicities.
	ErrDegreeMismatch = errors.New("multigraph: degree bookkeeping mismatch")
)

// Arc is one adjacency slot: a neighbor and the number of unused parallel
// half-edges towards it.
type Arc struct {
	// To is the neighbor vertex index.
	To int

	// Count is the remaining multiplicity of v→To.
	Count int
}

// Store is an undirected multigraph over vertices 0..V-1 whose edges are
// consumed destructively.
//
// adj[v] is sorted by Arc.To ascending. Slots whose Count drops to zero are kept
// so that indices held by an in-flight traversal stay valid.
type Store struct {
	edges  int     // logical edge count E
	unused int     // logical edges not yet removed
	adj    [][]Arc // vertex → arcs sorted by neighbor
	degree []int   // vertex → remaining degree
}

// New returns an empty Store with v vertices.
// Complexity: O(V).
func New(v int) (*Store, error) {
	if v < 1 {
		return nil, ErrNoVertices
	}

	return &Store{
		adj:    make([][]Arc, v),
		degree: make([]int, v),
	}, nil
}
