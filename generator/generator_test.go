package generator_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eulertour/generator"
)

// TestGenerate_NeedsRand verifies the generator refuses to pick an implicit source.
func TestGenerate_NeedsRand(t *testing.T) {
	_, err := generator.Generate()
	assert.ErrorIs(t, err, generator.ErrNeedRandSource)
}

// TestGenerate_EvenDegrees checks the structural guarantees over many seeds.
func TestGenerate_EvenDegrees(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		g, err := generator.Generate(generator.WithSeed(seed))
		require.NoError(t, err)

		// V = 6/2 + Intn(6) ∈ [3,8]
		assert.GreaterOrEqual(t, g.V, 3)
		assert.LessOrEqual(t, g.V, 8)

		deg := g.Degrees()
		total := 0
		for v, d := range deg {
			assert.Zero(t, d%2, "seed %d: deg[%d]=%d", seed, v, d)
			assert.GreaterOrEqual(t, d, 2)
			assert.LessOrEqual(t, d, 2*generator.DefaultMaxHalfDegree)
			total += d
		}
		assert.Equal(t, 2*len(g.Edges), total)

		for _, e := range g.Edges {
			assert.True(t, e.V >= 0 && e.V < g.V)
			assert.True(t, e.W >= 0 && e.W < g.V)
		}
	}
}

// TestGenerate_SeedDeterminism: equal seeds, equal graphs.
func TestGenerate_SeedDeterminism(t *testing.T) {
	a, err := generator.Generate(generator.WithSeed(42))
	require.NoError(t, err)
	b, err := generator.Generate(generator.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	r := rand.New(rand.NewSource(42))
	c, err := generator.Generate(generator.WithRand(r))
	require.NoError(t, err)
	assert.Equal(t, a, c)
}

// TestGenerate_Knobs covers the sizing options.
func TestGenerate_Knobs(t *testing.T) {
	g, err := generator.Generate(
		generator.WithSeed(7),
		generator.WithVertexCount(500),
		generator.WithMaxHalfDegree(1),
	)
	require.NoError(t, err)
	assert.Equal(t, 500, g.V)
	assert.Len(t, g.Edges, 500) // every vertex has degree exactly 2
	for v, d := range g.Degrees() {
		assert.Equal(t, 2, d, "deg[%d]", v)
	}

	g, err = generator.Generate(generator.WithSeed(7), generator.WithVertexMean(1))
	require.NoError(t, err)
	assert.Equal(t, 1, g.V) // only loops are possible
	for _, e := range g.Edges {
		assert.Zero(t, e.V)
		assert.Zero(t, e.W)
	}
}

// TestOptions_Panics: option constructors reject meaningless values.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { generator.WithRand(nil) })
	assert.Panics(t, func() { generator.WithVertexMean(0) })
	assert.Panics(t, func() { generator.WithMaxHalfDegree(0) })
	assert.Panics(t, func() { generator.WithVertexCount(-1) })
}
