// Package generator produces random multigraphs with every degree even, in the
// graph exchange format model of package graphio.
//
// Model (stub matching):
//  1. Draw V (or use WithVertexCount).
//  2. Give each vertex 2·h stubs, h ∈ [1, maxHalfDegree]; E = Σh.
//  3. For each of the E edges pick one remaining stub uniformly, then a second
//     one among the rest; the owners of the two stubs form the edge.
//
// Every degree is even by construction, but the result may contain self-loops,
// parallel edges and several components, so it exercises both feasible and
// disconnected outcomes of package euler.
//
// Determinism: a fixed seed yields the same graph.
package generator

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/eulertour/graphio"
)

// ErrNeedRandSource indicates Generate was called without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("generator: rng is required")

// Generate draws one graph.
//
// Complexity: O(V + E·V) time (linear stub lookup per draw), O(V + E) space.
func Generate(opts ...Option) (graphio.Graph, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return graphio.Graph{}, fmt.Errorf("Generate: %w", ErrNeedRandSource)
	}
	rng := cfg.rng

	// 1) Vertex count.
	v := cfg.vertexCount
	if v == 0 {
		v = cfg.vertexMean/2 + rng.Intn(cfg.vertexMean)
		if v < 1 {
			v = 1 // vertexMean == 1 draws 0
		}
	}

	// 2) Stubs: an even number per vertex.
	stubs := make([]int, v)
	e := 0
	for i := range stubs {
		h := 1 + rng.Intn(cfg.maxHalfDegree)
		stubs[i] = 2 * h
		e += h
	}

	// 3) Pair stubs uniformly.
	g := graphio.Graph{V: v, Edges: make([]graphio.Edge, 0, e)}
	for i := 0; i < e; i++ {
		a := pickStub(stubs, rng.Intn(2*e-2*i))
		stubs[a]--
		b := pickStub(stubs, rng.Intn(2*e-2*i-1))
		stubs[b]--
		g.Edges = append(g.Edges, graphio.Edge{V: a, W: b})
	}

	return g, nil
}

// pickStub returns the owner of the k-th remaining stub, counting stubs vertex
// by vertex in index order. k must be < Σstubs.
func pickStub(stubs []int, k int) int {
	for v, n := range stubs {
		if k < n {
			return v
		}
		k -= n
	}

	return len(stubs) - 1
}
