// SPDX-License-Identifier: MIT
// Package: eulertour/generator
//
// options.go - functional options and deterministic defaults.
//
// Defaults:
//   - rng           = nil (Generate fails with ErrNeedRandSource; use WithSeed/WithRand)
//   - vertexMean    = 6   (V = vertexMean/2 + Intn(vertexMean))
//   - maxHalfDegree = 3   (deg(v) = 2·(1 + Intn(maxHalfDegree)))
//   - vertexCount   = 0   (0 ⇒ draw V as above)
//
// Option constructors validate their argument and panic on meaningless values;
// Generate itself never panics.

package generator

import "math/rand"

const (
	// DefaultVertexMean is the default mean knob for the vertex count draw.
	DefaultVertexMean = 6

	// DefaultMaxHalfDegree bounds the per-vertex half degree draw.
	DefaultMaxHalfDegree = 3
)

// Option configures Generate.
type Option func(*config)

type config struct {
	rng           *rand.Rand
	vertexMean    int
	maxHalfDegree int
	vertexCount   int
}

func newConfig(opts ...Option) config {
	cfg := config{
		vertexMean:    DefaultVertexMean,
		maxHalfDegree: DefaultMaxHalfDegree,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand uses r as the random source. r must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed uses a fresh source seeded with seed; equal seeds give equal graphs.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithVertexMean sets the vertex count knob: V = mean/2 + Intn(mean).
func WithVertexMean(mean int) Option {
	if mean < 1 {
		panic("generator: WithVertexMean(mean<1)")
	}

	return func(c *config) { c.vertexMean = mean }
}

// WithMaxHalfDegree sets the half-degree bound: deg(v) = 2·(1 + Intn(h)).
func WithMaxHalfDegree(h int) Option {
	if h < 1 {
		panic("generator: WithMaxHalfDegree(h<1)")
	}

	return func(c *config) { c.maxHalfDegree = h }
}

// WithVertexCount fixes V instead of drawing it; used for large fixtures.
func WithVertexCount(n int) Option {
	if n < 1 {
		panic("generator: WithVertexCount(n<1)")
	}

	return func(c *config) { c.vertexCount = n }
}
