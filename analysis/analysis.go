// Package analysis computes structural diagnostics of a graph description:
// degree parity, connected components that carry edges, isolated vertices,
// self-loops and parallel edges.
//
// Connectivity is computed on a gonum multigraph (graph/multi) with
// graph/topo.ConnectedComponents, independently of the edge-consuming store in
// package multigraph, which makes a Report usable as an oracle for package euler.
package analysis

import (
	"slices"

	"gonum.org/v1/gonum/graph/multi"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/eulertour/graphio"
)

// Report summarizes a graph description.
type Report struct {
	// Vertices and Edges echo V and E.
	Vertices int
	Edges    int

	// SelfLoops counts edges v–v.
	SelfLoops int

	// ParallelEdges counts non-loop edges beyond the first between the same pair.
	ParallelEdges int

	// OddVertices lists vertices of odd degree, ascending.
	OddVertices []int

	// Isolated lists vertices of degree 0, ascending.
	Isolated []int

	// Components lists the connected components that carry at least one edge.
	// Each is sorted ascending; components are ordered by their smallest vertex.
	Components [][]int
}

// EvenDegrees reports whether every vertex has even degree.
func (r Report) EvenDegrees() bool { return len(r.OddVertices) == 0 }

// Connected reports whether all edges lie in a single component.
func (r Report) Connected() bool { return len(r.Components) <= 1 }

// Eulerian reports whether the edge set admits an Eulerian circuit.
func (r Report) Eulerian() bool { return r.EvenDegrees() && r.Connected() }

// EulerianFrom reports whether an Eulerian circuit exists that passes through
// start; with no edges the trivial circuit [start] counts.
func (r Report) EulerianFrom(start int) bool {
	if !r.Eulerian() {
		return false
	}
	if len(r.Components) == 0 {
		return true
	}
	_, found := slices.BinarySearch(r.Components[0], start)

	return found
}

// Analyze builds a Report for g. g must satisfy the exchange format bounds
// (as returned by graphio.Read or the generator).
//
// Complexity: O(V + E) plus gonum's component search.
func Analyze(g graphio.Graph) Report {
	r := Report{Vertices: g.V, Edges: len(g.Edges)}

	ug := multi.NewUndirectedGraph()
	for v := 0; v < g.V; v++ {
		ug.AddNode(multi.Node(v))
	}

	pairs := make(map[[2]int]int, len(g.Edges))
	for i, e := range g.Edges {
		if e.V == e.W {
			// loops do not change connectivity
			r.SelfLoops++
			continue
		}
		key := [2]int{min(e.V, e.W), max(e.V, e.W)}
		pairs[key]++
		if pairs[key] > 1 {
			r.ParallelEdges++
		}
		ug.SetLine(multi.Line{F: multi.Node(e.V), T: multi.Node(e.W), UID: int64(i)})
	}

	deg := g.Degrees()
	for v, d := range deg {
		if d%2 != 0 {
			r.OddVertices = append(r.OddVertices, v)
		}
		if d == 0 {
			r.Isolated = append(r.Isolated, v)
		}
	}

	for _, cc := range topo.ConnectedComponents(ug) {
		comp := make([]int, 0, len(cc))
		carries := false
		for _, n := range cc {
			v := int(n.ID())
			comp = append(comp, v)
			carries = carries || deg[v] > 0
		}
		if !carries {
			continue
		}
		slices.Sort(comp)
		r.Components = append(r.Components, comp)
	}
	slices.SortFunc(r.Components, func(a, b []int) int { return a[0] - b[0] })

	return r
}
