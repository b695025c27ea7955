// Package graphio reads and writes the plain-text graph exchange format and
// the tour output format.
//
// Graph format:
//
//	V          vertex count (≥ 1)
//	E          edge count (≥ 0)
//	v w        E lines, one undirected edge each, 0 ≤ v,w < V
//
// A line "v v" is a self-loop; repeated pairs are parallel edges. Fields past
// the second on an edge line and lines after the last edge are ignored.
//
// Tour format: one vertex per line in walk order, or the single line
// "Not Eulerian!" when no circuit exists.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/eulertour/multigraph"
)

// NotEulerian is the tour output written when no circuit exists.
const NotEulerian = "Not Eulerian!"

// maxPrealloc bounds the edge slice capacity reserved from the declared E.
const maxPrealloc = 1 << 16

// ErrMalformed indicates input that does not follow the exchange format.
//
// Every error returned by this package carries the exported function it came
// from as context, e.g. "ReadFile(g.txt): Read: line 3: ...: graphio: malformed input".
var ErrMalformed = errors.New("graphio: malformed input")

// Edge is one undirected edge {V,W}.
type Edge struct {
	V, W int
}

// Graph is a parsed graph description.
type Graph struct {
	// V is the vertex count.
	V int

	// Edges lists every edge once, in file order.
	Edges []Edge
}

// Pairs returns the edges as [2]int pairs.
func (g Graph) Pairs() [][2]int {
	out := make([][2]int, len(g.Edges))
	for i, e := range g.Edges {
		out[i] = [2]int{e.V, e.W}
	}

	return out
}

// Degrees returns the degree of every vertex, a loop counting twice.
func (g Graph) Degrees() []int {
	deg := make([]int, max(g.V, 0))
	for _, e := range g.Edges {
		deg[e.V]++
		deg[e.W]++
	}

	return deg
}

// Store builds a fresh multigraph.Store holding g.
func (g Graph) Store() (*multigraph.Store, error) {
	s, err := multigraph.New(g.V)
	if err != nil {
		return nil, fmt.Errorf("Store: %w", err)
	}
	for i, e := range g.Edges {
		if err = s.AddEdge(e.V, e.W); err != nil {
			return nil, fmt.Errorf("Store: edge #%d: %w", i, err)
		}
	}

	return s, nil
}

// Read parses a graph description. Nothing is returned on a malformed input.
func Read(r io.Reader) (Graph, error) {
	sc := bufio.NewScanner(r)
	line := 0
	next := func(what string) ([]string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("Read: line %d: %w", line+1, err)
			}
			return nil, fmt.Errorf("Read: line %d: missing %s: %w", line+1, what, ErrMalformed)
		}
		line++

		return strings.Fields(sc.Text()), nil
	}

	v, err := readCount(next, "vertex count", 1)
	if err != nil {
		return Graph{}, err
	}
	e, err := readCount(next, "edge count", 0)
	if err != nil {
		return Graph{}, err
	}

	g := Graph{V: v, Edges: make([]Edge, 0, min(e, maxPrealloc))}
	for i := 0; i < e; i++ {
		fields, err := next(fmt.Sprintf("edge #%d", i))
		if err != nil {
			return Graph{}, err
		}
		if len(fields) < 2 {
			return Graph{}, fmt.Errorf("Read: line %d: want \"v w\", got %q: %w", line, strings.Join(fields, " "), ErrMalformed)
		}
		var ends [2]int
		for k := range ends {
			if ends[k], err = strconv.Atoi(fields[k]); err != nil {
				return Graph{}, fmt.Errorf("Read: line %d: %v: %w", line, err, ErrMalformed)
			}
			if ends[k] < 0 || ends[k] >= v {
				return Graph{}, fmt.Errorf("Read: line %d: vertex %d not in [0,%d): %w", line, ends[k], v, ErrMalformed)
			}
		}
		g.Edges = append(g.Edges, Edge{V: ends[0], W: ends[1]})
	}

	return g, nil
}

// readCount parses a single non-negative integer line with a lower bound.
func readCount(next func(string) ([]string, error), what string, least int) (int, error) {
	fields, err := next(what)
	if err != nil {
		return 0, err
	}
	if len(fields) != 1 {
		return 0, fmt.Errorf("Read: %s: want one integer, got %q: %w", what, strings.Join(fields, " "), ErrMalformed)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("Read: %s: %v: %w", what, err, ErrMalformed)
	}
	if n < least {
		return 0, fmt.Errorf("Read: %s: %d < %d: %w", what, n, least, ErrMalformed)
	}

	return n, nil
}

// ReadFile parses the graph description stored at path.
func ReadFile(path string) (Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return Graph{}, fmt.Errorf("ReadFile(%s): %w", path, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return Graph{}, fmt.Errorf("ReadFile(%s): %w", path, err)
	}

	return g, nil
}

// Load parses r and builds the store in one step.
func Load(r io.Reader) (*multigraph.Store, error) {
	g, err := Read(r)
	if err != nil {
		return nil, err
	}

	return g.Store()
}

// Write emits g in the exchange format.
func Write(w io.Writer, g Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n%d\n", g.V, len(g.Edges))
	for _, e := range g.Edges {
		fmt.Fprintf(bw, "%d %d\n", e.V, e.W)
	}

	return bw.Flush()
}

// WriteFile writes g to path, truncating an existing file.
func WriteFile(path string, g Graph) error {
	return writeFile("WriteFile", path, func(w io.Writer) error { return Write(w, g) })
}
