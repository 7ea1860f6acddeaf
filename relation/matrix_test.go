package relation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polysched/relation"
)

// sample returns the 8-participant sample network used across the module.
func sample() relation.Matrix {
	return relation.Matrix{
		{0, 40, 0, 80, 0, 40, 0, 0},
		{40, 0, 80, 0, 0, 0, 0, 0},
		{0, 80, 0, 16, 0, 0, 0, 0},
		{80, 0, 16, 0, 20, 0, 16, 0},
		{0, 0, 0, 20, 0, 40, 0, 80},
		{40, 0, 0, 0, 40, 0, 40, 0},
		{0, 0, 0, 16, 0, 40, 0, 0},
		{0, 0, 0, 0, 80, 0, 0, 0},
	}
}

func TestMatrix_Queries(t *testing.T) {
	m := sample()

	require.Equal(t, 8, m.Size())
	require.Equal(t, 80, m.MaxWeight())
	require.Equal(t, 4, m.MaxDegree()) // participant 3
	require.Equal(t, 4, m.Degree(3))
	require.Equal(t, 16, m.MinWeight(3))
	require.Equal(t, 0, relation.New(3).MinWeight(1))
	require.Equal(t, 10, m.EdgeCount())
	require.Len(t, m.Edges(), 10)
}

func TestMatrix_EdgesOrder(t *testing.T) {
	m := sample()
	edges := m.Edges()

	// Row-major upper triangle: the first three edges start at participant 0.
	require.Equal(t, relation.Edge{I: 0, J: 1, Weight: 40}, edges[0])
	require.Equal(t, relation.Edge{I: 0, J: 3, Weight: 80}, edges[1])
	require.Equal(t, relation.Edge{I: 0, J: 5, Weight: 40}, edges[2])
	for _, e := range edges {
		require.Less(t, e.I, e.J)
	}
}

func TestMatrix_BandAndAtMost(t *testing.T) {
	m := sample()

	hi := m.Band(40, 80)
	require.Equal(t, 3, hi.EdgeCount()) // the three 80-weight edges
	require.NoError(t, relation.Validate(hi))

	lo := m.AtMost(40)
	require.Equal(t, 7, lo.EdgeCount())
	require.NoError(t, relation.Validate(lo))

	// Bands are copies: the source stays untouched.
	hi.Connect(0, 1, 99)
	require.Equal(t, 40, m[0][1])
}

func TestMatrix_Clone(t *testing.T) {
	m := sample()
	cp := m.Clone()
	cp[0][1] = 7
	require.Equal(t, 40, m[0][1])
}
