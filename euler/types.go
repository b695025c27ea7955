package euler

import (
	"errors"

	"github.com/rs/zerolog"
)

var (
	// ErrNilStore is returned when a nil *multigraph.Store is passed in.
	ErrNilStore = errors.New("euler: store is nil")

	// ErrStartOutOfRange indicates the start vertex is outside [0,V).
	ErrStartOutOfRange = errors.New("euler: start vertex out of range")

	// ErrInvariantViolation marks broken store bookkeeping detected during a run.
	// It is a logic failure, not an infeasible input.
	ErrInvariantViolation = errors.New("euler: invariant violation")

	// ErrNoClosingEdge indicates the cycle search exhausted every unused edge
	// reachable from its root without closing a cycle.
	ErrNoClosingEdge = errors.New("euler: no closing edge found")

	// ErrTourLength indicates a tour whose length is not E+1.
	ErrTourLength = errors.New("euler: tour length mismatch")

	// ErrTourNotClosed indicates a tour whose first and last vertices differ.
	ErrTourNotClosed = errors.New("euler: tour is not closed")

	// ErrTourEdgeUnknown indicates a tour step over an edge that is absent or already used.
	ErrTourEdgeUnknown = errors.New("euler: tour uses an unknown or spent edge")

	// ErrTourIncomplete indicates edges left unused after replaying a tour.
	ErrTourIncomplete = errors.New("euler: tour leaves edges unused")
)

// Status is the terminal state of a FindCircuit run.
type Status int

const (
	// StatusCircuit means a closed walk over every edge was built.
	StatusCircuit Status = iota
	// StatusOddDegree means the degree-parity check failed.
	StatusOddDegree
	// StatusDisconnected means unused edges are unreachable from the start vertex.
	StatusDisconnected
)

// String returns a short label for logs.
func (s Status) String() string {
	switch s {
	case StatusCircuit:
		return "circuit"
	case StatusOddDegree:
		return "odd-degree"
	case StatusDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Result holds the outcome of FindCircuit.
type Result struct {
	// Tour is the circuit in walk order, or nil when Status != StatusCircuit.
	Tour []int

	// Status is the terminal state.
	Status Status

	// Edges is the number of edges the run had to consume.
	Edges int

	// Cycles counts extracted closed sub-walks: loops, parallel pairs and DFS cycles.
	Cycles int

	// OddVertices lists the offending vertices when Status == StatusOddDegree.
	OddVertices []int
}

// HasCircuit reports whether an Eulerian circuit was found.
func (r Result) HasCircuit() bool { return r.Status == StatusCircuit && len(r.Tour) > 0 }

// Option configures a FindCircuit run.
type Option func(*Options)

// Options holds FindCircuit parameters.
type Options struct {
	// Start is the vertex the circuit begins and ends at. Default 0.
	Start int

	// Logger receives run diagnostics. Default zerolog.Nop().
	Logger zerolog.Logger
}

// DefaultOptions returns Options with Start 0 and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Start:  0,
		Logger: zerolog.Nop(),
	}
}

// WithStart sets the start vertex.
func WithStart(v int) Option {
	return func(o *Options) { o.Start = v }
}

// WithLogger installs a logger. Extracted cycles and run outcomes are logged
// at debug level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
