package layer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polysched/builder"
	"github.com/katalvlaran/polysched/coloring"
	"github.com/katalvlaran/polysched/layer"
	"github.com/katalvlaran/polysched/relation"
	"github.com/katalvlaran/polysched/schedule"
)

// occurrences counts how many positions of days hold the meetup (a, b).
func occurrences(days []schedule.Day, a, b int) int {
	var count int
	for _, d := range days {
		if d.Has(a, b) {
			count++
		}
	}
	return count
}

// requireValidLayer checks the structural guarantees every Layer provides.
func requireValidLayer(t *testing.T, l *layer.Layer, rel relation.Matrix) {
	t.Helper()

	require.NoError(t, l.ColorMap().VerifyComplete())

	days := l.Days()
	require.Len(t, days, len(l.Order()))
	for _, d := range days {
		require.NotEmpty(t, d)
		require.True(t, d.Disjoint(), "day %v shares a participant", d)
	}
	for _, e := range rel.Edges() {
		require.GreaterOrEqual(t, occurrences(days, e.I, e.J), 1, "edge (%d,%d) never meets", e.I, e.J)
	}

	// Every color occurs in the order, and only colors in use do.
	colors := l.Colors()
	seen := make(map[int]bool)
	for _, c := range l.Order() {
		seen[c] = true
	}
	require.Len(t, seen, len(colors))
	for _, c := range colors {
		require.True(t, seen[c])
	}
	require.Equal(t, len(colors)+l.Insertions(), len(l.Order()))
}

func TestBuild_Sample(t *testing.T) {
	rel, _ := builder.Sample()
	l, err := layer.Build(rel)
	require.NoError(t, err)
	requireValidLayer(t, l, rel)

	assert.Equal(t, 10, l.EdgeCount())
	assert.Len(t, l.Colors(), 5)
	assert.Len(t, l.Order(), 5)
	assert.Equal(t, 0, l.Insertions())
	assert.Equal(t, 400, l.MaxWait())

	for _, e := range rel.Edges() {
		assert.Equal(t, 1, occurrences(l.Days(), e.I, e.J))
	}
}

func TestBuild_StarTerminates(t *testing.T) {
	cases := []struct {
		leaves     int
		insertions int
		maxWait    int
	}{
		{leaves: 3, insertions: 1, maxWait: 80},
		{leaves: 5, insertions: 3, maxWait: 200},
		{leaves: 9, insertions: 5, maxWait: 640},
		{leaves: 16, insertions: 7, maxWait: 2070},
	}
	for _, tc := range cases {
		rel, _, err := builder.BuildNetwork(tc.leaves+1,
			[]builder.BuilderOption{builder.WithIncreasingWeight(10, 10)},
			builder.Star(tc.leaves+1))
		require.NoError(t, err)

		l, err := layer.Build(rel)
		require.NoError(t, err)
		requireValidLayer(t, l, rel)

		// A star needs one color per leaf.
		assert.Len(t, l.Colors(), tc.leaves)
		assert.Equal(t, tc.insertions, l.Insertions(), "leaves=%d", tc.leaves)
		assert.Equal(t, tc.maxWait, l.MaxWait(), "leaves=%d", tc.leaves)
		assert.LessOrEqual(t, l.Insertions(), tc.leaves)
		// Balancing never makes the worst wait heavier than the unbalanced cycle.
		assert.Less(t, l.MaxWait(), tc.leaves*rel.MaxWeight())
	}
}

func TestBuild_DayWeightsIdempotent(t *testing.T) {
	rel, _, err := builder.BuildNetwork(30,
		[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 100)},
		builder.RandomSparse(0.3))
	require.NoError(t, err)

	l, err := layer.Build(rel)
	require.NoError(t, err)

	first := l.DayWeights()
	second := l.DayWeights()
	require.Equal(t, first, second)
	require.Len(t, first, len(l.Colors()))

	// Each day weight is the heaviest edge of its color.
	cm := l.ColorMap()
	for color, w := range first {
		var heaviest int
		for _, e := range rel.Edges() {
			if cm.Color(e.I, e.J) == color && e.Weight > heaviest {
				heaviest = e.Weight
			}
		}
		assert.Equal(t, heaviest, w, "color %d", color)
	}
}

func TestBuild_Empty(t *testing.T) {
	l, err := layer.Build(relation.New(4))
	require.NoError(t, err)

	assert.Empty(t, l.Order())
	assert.Empty(t, l.Days())
	assert.Empty(t, l.DayWeights())
	assert.Equal(t, 0, l.MaxWait())
	assert.Equal(t, 0, l.Schedule(nil).Len())
}

func TestBuild_SingleEdge(t *testing.T) {
	rel := relation.Matrix{{0, 7}, {7, 0}}
	l, err := layer.Build(rel)
	require.NoError(t, err)

	s := l.Schedule([]string{"Ann", "Bob"})
	require.Equal(t, 1, s.Len())
	assert.Equal(t, schedule.Day{{A: 0, B: 1}}, s.Day(0))
	assert.Equal(t, 7, l.MaxWait())
}

func TestBuild_Invalid(t *testing.T) {
	_, err := layer.Build(relation.Matrix{{0, 1}, {2, 0}})
	require.ErrorIs(t, err, relation.ErrAsymmetry)

	_, err = layer.Build(nil)
	require.ErrorIs(t, err, relation.ErrEmpty)
}

func TestBuild_RandomGraphs(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		rel, _, err := builder.BuildNetwork(25,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformWeight(1, 50)},
			builder.RandomSparse(0.25))
		require.NoError(t, err)

		l, err := layer.Build(rel)
		require.NoError(t, err, "seed=%d", seed)
		requireValidLayer(t, l, rel)
		assert.LessOrEqual(t, len(l.Colors()), rel.MaxDegree()+2, "seed=%d", seed)
	}
}

func TestLayer_ColorMapIsCopy(t *testing.T) {
	rel, _ := builder.Sample()
	l, err := layer.Build(rel)
	require.NoError(t, err)

	cm := l.ColorMap()
	cm[0][1] = coloring.Pending
	assert.NoError(t, l.ColorMap().VerifyComplete())
}
