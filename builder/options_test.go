package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polysched/builder"
)

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}

func TestWeightFns(t *testing.T) {
	assert.Equal(t, 7, builder.ConstantWeightFn(7)(nil))
	assert.Equal(t, 3, builder.UniformWeightFn(3, 9)(nil))

	inc := builder.IncreasingWeightFn(5, 2)
	assert.Equal(t, []int{5, 7, 9}, []int{inc(nil), inc(nil), inc(nil)})

	assert.Panics(t, func() { builder.ConstantWeightFn(0) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.UniformWeightFn(0, 4) })
	assert.Panics(t, func() { builder.IncreasingWeightFn(1, -1) })
}

func TestIDSchemes(t *testing.T) {
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "C", builder.SymbolIDFn(2))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "P1", builder.PrefixIDFn("P")(0))
	assert.Panics(t, func() { builder.SymbolIDFn(26) })

	_, names, err := builder.BuildNetwork(3,
		[]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, names)
}
