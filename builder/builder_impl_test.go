// File: builder_impl_test.go
// Package builder_test verifies topology, counts, weights and determinism of
// every Constructor.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polysched/builder"
	"github.com/katalvlaran/polysched/relation"
)

// TestBuilders_Functional runs table-driven functional tests for each constructor.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		n           int
		ctor        builder.Constructor
		wantE       int
		sampleCheck func(t *testing.T, m relation.Matrix)
	}{
		{
			name: "Cycle(5)", n: 5, ctor: builder.Cycle(5), wantE: 5,
			sampleCheck: func(t *testing.T, m relation.Matrix) {
				for i := 0; i < 5; i++ {
					assert.Equal(t, builder.DefaultEdgeWeight, m[i][(i+1)%5])
					assert.Equal(t, 2, m.Degree(i))
				}
			},
		},
		{
			name: "Path(4) in 6", n: 6, ctor: builder.Path(4), wantE: 3,
			sampleCheck: func(t *testing.T, m relation.Matrix) {
				assert.Equal(t, 1, m.Degree(0))
				assert.Equal(t, 2, m.Degree(2))
				assert.Equal(t, 0, m.Degree(5))
			},
		},
		{
			name: "Star(6)", n: 6, ctor: builder.Star(6), wantE: 5,
			sampleCheck: func(t *testing.T, m relation.Matrix) {
				assert.Equal(t, 5, m.Degree(0))
				assert.Equal(t, 5, m.MaxDegree())
			},
		},
		{
			name: "Complete(4)", n: 4, ctor: builder.Complete(4), wantE: 6,
			sampleCheck: func(t *testing.T, m relation.Matrix) {
				assert.Equal(t, 3, m.MaxDegree())
			},
		},
		{
			name: "Complete(1)", n: 3, ctor: builder.Complete(1), wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, names, err := builder.BuildNetwork(tc.n, nil, tc.ctor)
			require.NoError(t, err)
			require.NoError(t, relation.Validate(m))
			require.Len(t, names, tc.n)
			assert.Equal(t, tc.wantE, m.EdgeCount())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, m)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		n    int
		ctor builder.Constructor
		want error
	}{
		{"Star too small", 4, builder.Star(1), builder.ErrTooFewVertices},
		{"Star too big", 4, builder.Star(5), builder.ErrTooFewVertices},
		{"Path too small", 4, builder.Path(1), builder.ErrTooFewVertices},
		{"Cycle too small", 4, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Complete zero", 4, builder.Complete(0), builder.ErrTooFewVertices},
		{"p negative", 4, builder.RandomSparse(-0.1), builder.ErrInvalidProbability},
		{"p above one", 4, builder.RandomSparse(1.5), builder.ErrInvalidProbability},
		{"no rng", 4, builder.RandomSparse(0.5), builder.ErrNeedRandSource},
		{"nil constructor", 4, nil, builder.ErrConstructFailed},
		{"empty network", 0, builder.Complete(1), builder.ErrTooFewVertices},
	}
	for _, tc := range cases {
		_, _, err := builder.BuildNetwork(tc.n, nil, tc.ctor)
		assert.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestBuildNetwork_NegativeWeight(t *testing.T) {
	neg := builder.WithWeightFn(func(*rand.Rand) int { return -3 })
	_, _, err := builder.BuildNetwork(3, []builder.BuilderOption{neg}, builder.Path(3))
	require.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 999)}
	}
	a, _, err := builder.BuildNetwork(40, opts(), builder.RandomSparse(0.2))
	require.NoError(t, err)
	b, _, err := builder.BuildNetwork(40, opts(), builder.RandomSparse(0.2))
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.NoError(t, relation.Validate(a))
	assert.Greater(t, a.EdgeCount(), 0)
	assert.LessOrEqual(t, a.MaxWeight(), 999)
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, 1)
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	m, _, err := builder.BuildNetwork(5, nil, builder.RandomSparse(0))
	require.NoError(t, err)
	assert.Equal(t, 0, m.EdgeCount())

	m, _, err = builder.BuildNetwork(5, nil, builder.RandomSparse(1))
	require.NoError(t, err)
	assert.Equal(t, 10, m.EdgeCount())
}

func TestBuildNetwork_ComposesInOrder(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithIncreasingWeight(10, 10)}
	m, _, err := builder.BuildNetwork(5, opts, builder.Star(5), builder.Path(2))
	require.NoError(t, err)

	// Star draws 10..40; Path then overwrites (0,1) with 50.
	assert.Equal(t, 50, m[0][1])
	assert.Equal(t, 20, m[0][2])
	assert.Equal(t, 40, m[0][4])
}

func TestSample(t *testing.T) {
	m, names := builder.Sample()
	require.NoError(t, relation.Validate(m))
	require.NoError(t, relation.ValidateNames(names, m.Size()))
	assert.Equal(t, "Daisy", names[3])
	assert.Equal(t, 4, m.Degree(3))
	assert.Equal(t, 80, m.MaxWeight())
}
