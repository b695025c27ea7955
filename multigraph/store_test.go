package multigraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eulertour/multigraph"
)

// TestNew_RejectsEmpty ensures a store needs at least one vertex.
func TestNew_RejectsEmpty(t *testing.T) {
	s, err := multigraph.New(0)
	assert.ErrorIs(t, err, multigraph.ErrNoVertices)
	assert.Nil(t, s)

	_, err = multigraph.New(-3)
	assert.ErrorIs(t, err, multigraph.ErrNoVertices)
}

// TestAddEdge_SymmetricBookkeeping checks multiplicities and degrees for a
// plain edge, a parallel pair and a self-loop.
func TestAddEdge_SymmetricBookkeeping(t *testing.T) {
	s, err := multigraph.New(3)
	require.NoError(t, err)

	require.NoError(t, s.AddEdge(0, 1))
	require.NoError(t, s.AddEdge(1, 0)) // parallel
	require.NoError(t, s.AddEdge(2, 2)) // loop

	assert.Equal(t, 3, s.Edges())
	assert.Equal(t, 3, s.Unused())
	assert.Equal(t, 2, s.Multiplicity(0, 1))
	assert.Equal(t, 2, s.Multiplicity(1, 0))
	assert.Equal(t, 2, s.Multiplicity(2, 2)) // two units per loop
	assert.Equal(t, 2, s.Degree(0))
	assert.Equal(t, 2, s.Degree(1))
	assert.Equal(t, 2, s.Degree(2))
	assert.Equal(t, []int{1}, s.Neighbors(0))
	assert.Equal(t, []int{2}, s.Neighbors(2))
	assert.True(t, s.HasEvenDegrees())
	assert.NoError(t, s.Validate())
}

// TestAddArc_HalfEdge verifies the raw half-edge primitive touches only one side.
func TestAddArc_HalfEdge(t *testing.T) {
	s, err := multigraph.New(2)
	require.NoError(t, err)

	require.NoError(t, s.AddArc(0, 1))
	assert.Equal(t, 1, s.Multiplicity(0, 1))
	assert.Equal(t, 0, s.Multiplicity(1, 0))
	assert.Equal(t, 1, s.Degree(0))
	assert.Equal(t, 0, s.Degree(1))
	assert.Equal(t, 0, s.Edges())

	// one-sided bookkeeping must be caught
	assert.ErrorIs(t, s.Validate(), multigraph.ErrAsymmetric)

	require.NoError(t, s.AddArc(1, 0))
	// symmetric now, but no logical edge was declared
	assert.ErrorIs(t, s.Validate(), multigraph.ErrDegreeMismatch)
}

// TestAddEdge_OutOfRange covers index validation.
func TestAddEdge_OutOfRange(t *testing.T) {
	s, err := multigraph.New(2)
	require.NoError(t, err)

	assert.ErrorIs(t, s.AddEdge(0, 2), multigraph.ErrVertexOutOfRange)
	assert.ErrorIs(t, s.AddEdge(-1, 0), multigraph.ErrVertexOutOfRange)
	assert.ErrorIs(t, s.AddArc(5, 5), multigraph.ErrVertexOutOfRange)
	assert.ErrorIs(t, s.RemoveEdge(0, 9), multigraph.ErrVertexOutOfRange)
	assert.Equal(t, 0, s.Edges())
	assert.Equal(t, 0, s.Degree(7))
	assert.Equal(t, 0, s.Multiplicity(0, 7))
	assert.Nil(t, s.Neighbors(-1))
	assert.Nil(t, s.Arcs(2))
}

// TestRemoveEdge_KeepsSymmetry removes edges one at a time and checks the
// symmetric-multiplicity invariant before and after every removal.
func TestRemoveEdge_KeepsSymmetry(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 1}, {1, 2}, {2, 0}, {2, 2}, {0, 0}, {1, 2}}
	s, err := multigraph.FromEdges(3, edges)
	require.NoError(t, err)

	for _, e := range edges {
		require.NoError(t, s.Validate())
		require.NoError(t, s.RemoveEdge(e[0], e[1]))
		assert.Equal(t, s.Multiplicity(e[0], e[1]), s.Multiplicity(e[1], e[0]))
		require.NoError(t, s.Validate())
	}
	assert.True(t, s.IsDrained())
	assert.Equal(t, 0, s.Unused())
	assert.Equal(t, len(edges), s.Edges())
	for v := 0; v < 3; v++ {
		assert.Zero(t, s.Degree(v))
		assert.Empty(t, s.Neighbors(v))
	}
}

// TestRemoveEdge_Failures ensures failed removals leave the store untouched.
func TestRemoveEdge_Failures(t *testing.T) {
	s, err := multigraph.FromEdges(3, [][2]int{{0, 1}})
	require.NoError(t, err)

	assert.ErrorIs(t, s.RemoveEdge(1, 2), multigraph.ErrEdgeNotFound)
	assert.ErrorIs(t, s.RemoveEdge(0, 0), multigraph.ErrEdgeNotFound)
	require.NoError(t, s.RemoveEdge(1, 0))
	assert.ErrorIs(t, s.RemoveEdge(0, 1), multigraph.ErrEdgeNotFound)
	assert.Zero(t, s.Degree(0))
	assert.Zero(t, s.Degree(1))
	assert.NoError(t, s.Validate())

	// half a loop cannot be removed
	h, err := multigraph.New(1)
	require.NoError(t, err)
	require.NoError(t, h.AddArc(0, 0))
	assert.ErrorIs(t, h.RemoveEdge(0, 0), multigraph.ErrEdgeNotFound)
	assert.Equal(t, 1, h.Multiplicity(0, 0))
	assert.ErrorIs(t, h.Validate(), multigraph.ErrAsymmetric)
}

// TestOddVertices reports odd-degree vertices in ascending order.
func TestOddVertices(t *testing.T) {
	s, err := multigraph.FromEdges(3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 2}, s.OddVertices())
	assert.False(t, s.HasEvenDegrees())
}

// TestNeighbors_Ascending verifies deterministic neighbor order regardless of insertion order.
func TestNeighbors_Ascending(t *testing.T) {
	s, err := multigraph.FromEdges(6, [][2]int{{0, 5}, {0, 3}, {0, 1}, {0, 4}, {0, 2}})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, s.Neighbors(0))
	arcs := s.Arcs(0)
	require.Len(t, arcs, 5)
	for i := 1; i < len(arcs); i++ {
		assert.Less(t, arcs[i-1].To, arcs[i].To)
	}

	require.NoError(t, s.RemoveEdge(0, 3))
	assert.Equal(t, []int{1, 2, 4, 5}, s.Neighbors(0))
	assert.Len(t, s.Arcs(0), 5) // drained slot stays in place
}

// TestClone_Independent ensures a clone shares no mutable state.
func TestClone_Independent(t *testing.T) {
	s, err := multigraph.FromEdges(2, [][2]int{{0, 1}, {0, 1}})
	require.NoError(t, err)

	c := s.Clone()
	require.NoError(t, c.RemoveEdge(0, 1))
	assert.Equal(t, 2, s.Multiplicity(0, 1))
	assert.Equal(t, 1, c.Multiplicity(0, 1))
	assert.Equal(t, 2, s.Unused())
	assert.Equal(t, 1, c.Unused())
	assert.Equal(t, s.Edges(), c.Edges())
}

// TestFromAdjacency accepts symmetric lists and rejects one-sided ones.
func TestFromAdjacency(t *testing.T) {
	s, err := multigraph.FromAdjacency([][]int{
		{1, 2, 0, 0}, // loop on 0 listed twice
		{0, 2},
		{0, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, s.Edges())
	assert.Equal(t, 4, s.Degree(0))
	assert.Equal(t, 2, s.Multiplicity(0, 0))

	_, err = multigraph.FromAdjacency([][]int{{1}, {}})
	assert.ErrorIs(t, err, multigraph.ErrAsymmetric)

	_, err = multigraph.FromAdjacency(nil)
	assert.ErrorIs(t, err, multigraph.ErrNoVertices)
}

// TestFromEdges_BadEdge surfaces the failing edge.
func TestFromEdges_BadEdge(t *testing.T) {
	_, err := multigraph.FromEdges(2, [][2]int{{0, 1}, {1, 2}})
	require.Error(t, err)
	assert.ErrorIs(t, err, multigraph.ErrVertexOutOfRange)
	assert.Contains(t, err.Error(), "edge #1")
}
