package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/eulertour/analysis"
	"github.com/katalvlaran/eulertour/graphio"
)

func graph(v int, pairs ...[2]int) graphio.Graph {
	g := graphio.Graph{V: v}
	for _, p := range pairs {
		g.Edges = append(g.Edges, graphio.Edge{V: p[0], W: p[1]})
	}

	return g
}

// TestAnalyze_Square: connected, even, nothing special.
func TestAnalyze_Square(t *testing.T) {
	r := analysis.Analyze(graph(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0}))

	assert.Equal(t, 4, r.Vertices)
	assert.Equal(t, 4, r.Edges)
	assert.Empty(t, r.OddVertices)
	assert.Empty(t, r.Isolated)
	assert.Equal(t, [][]int{{0, 1, 2, 3}}, r.Components)
	assert.True(t, r.Eulerian())
	assert.True(t, r.EulerianFrom(0))
}

// TestAnalyze_OddPath reports the odd endpoints.
func TestAnalyze_OddPath(t *testing.T) {
	r := analysis.Analyze(graph(3, [2]int{0, 1}, [2]int{1, 2}))

	assert.Equal(t, []int{0, 2}, r.OddVertices)
	assert.True(t, r.Connected())
	assert.False(t, r.EvenDegrees())
	assert.False(t, r.Eulerian())
}

// TestAnalyze_TwoTriangles: even but split.
func TestAnalyze_TwoTriangles(t *testing.T) {
	r := analysis.Analyze(graph(7,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0},
		[2]int{4, 5}, [2]int{5, 6}, [2]int{6, 4},
	))

	assert.True(t, r.EvenDegrees())
	assert.False(t, r.Connected())
	assert.Equal(t, [][]int{{0, 1, 2}, {4, 5, 6}}, r.Components)
	assert.Equal(t, []int{3}, r.Isolated)
	assert.False(t, r.EulerianFrom(0))
}

// TestAnalyze_LoopsAndParallels counts special edges; a loop-only vertex is a component.
func TestAnalyze_LoopsAndParallels(t *testing.T) {
	r := analysis.Analyze(graph(3,
		[2]int{0, 1}, [2]int{1, 0}, [2]int{0, 1}, [2]int{2, 2}, [2]int{2, 2},
	))

	assert.Equal(t, 2, r.SelfLoops)
	assert.Equal(t, 2, r.ParallelEdges)
	assert.Equal(t, []int{0, 1}, r.OddVertices) // deg 3 each
	assert.Equal(t, [][]int{{0, 1}, {2}}, r.Components)
}

// TestAnalyze_IsolatedStart: an Eulerian edge set that avoids the start vertex.
func TestAnalyze_IsolatedStart(t *testing.T) {
	r := analysis.Analyze(graph(3, [2]int{1, 2}, [2]int{2, 1}))

	assert.True(t, r.Eulerian())
	assert.False(t, r.EulerianFrom(0))
	assert.True(t, r.EulerianFrom(1))
}

// TestAnalyze_NoEdges: the trivial circuit exists.
func TestAnalyze_NoEdges(t *testing.T) {
	r := analysis.Analyze(graph(2))

	assert.Empty(t, r.Components)
	assert.Equal(t, []int{0, 1}, r.Isolated)
	assert.True(t, r.EulerianFrom(1))
}
