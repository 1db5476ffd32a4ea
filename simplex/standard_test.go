package simplex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardFormSlackOnly(t *testing.T) {
	sf := newStandardForm(productionMix(), DefaultTolerance)

	require.Equal(t, 4, sf.rows())
	require.Equal(t, 6, sf.cols())
	assert.Equal(t, 2, sf.numStructural)
	assert.Equal(t, 4, sf.numSlack)
	assert.Zero(t, sf.numArtificial)
	assert.Equal(t, []int{2, 3, 4, 5}, sf.basis)
	assert.Equal(t, []float64{10, 6, 2, 1}, sf.b)
	// Maximization is carried as minimization of the negated costs.
	assert.Equal(t, []float64{-2, -1, 0, 0, 0, 0}, sf.c)
	assert.Equal(t, []float64{1, 2, 1, 0, 0, 0}, sf.a.RawRowView(0))
	assert.False(t, sf.infeasible)
}

func TestStandardFormSurplusRow(t *testing.T) {
	model := &Model{Objective: []float64{1, 1}}
	model.AddGeRow([]float64{1, 1}, 4)

	sf := newStandardForm(model, DefaultTolerance)

	require.Equal(t, 1, sf.rows())
	assert.Equal(t, 1, sf.numSlack)
	assert.Equal(t, 1, sf.numArtificial)
	assert.Equal(t, 3, sf.artificialStart())
	assert.Equal(t, []float64{4}, sf.b)
	assert.Equal(t, []float64{1, 1, -1, 1}, sf.a.RawRowView(0))
	assert.Equal(t, []int{3}, sf.basis)
	assert.Equal(t, colArtificial, sf.origins[3].kind)
}

func TestStandardFormEquality(t *testing.T) {
	model := &Model{Objective: []float64{1, 1}}
	model.AddEqRow([]float64{2, 1}, 3)

	sf := newStandardForm(model, DefaultTolerance)

	require.Equal(t, 1, sf.rows())
	assert.Zero(t, sf.numSlack)
	assert.Equal(t, 1, sf.numArtificial)
	assert.Equal(t, []float64{2, 1, 1}, sf.a.RawRowView(0))
	assert.Equal(t, []int{2}, sf.basis)
}

func TestStandardFormBoundShift(t *testing.T) {
	model := &Model{
		Objective: []float64{3},
		Bounds:    []Bound{{Lower: 2, Upper: 5}},
	}
	model.AddLeRow([]float64{1}, 4)

	sf := newStandardForm(model, DefaultTolerance)

	assert.Equal(t, []float64{2}, sf.shift)
	assert.InDelta(t, 6.0, sf.costOffset, 1e-12)
	// x - 2 <= 2 from the row, then x - 2 <= 3 from the upper bound.
	assert.Equal(t, []float64{2, 3}, sf.b)
	assert.Equal(t, []float64{7}, sf.recover([]float64{5, 0, 0}))
}

func TestStandardFormFreeSplit(t *testing.T) {
	model := &Model{
		Objective: []float64{1, 2},
		Bounds:    []Bound{FreeBound, DefaultBound},
	}
	model.AddLeRow([]float64{1, 1}, 4)

	sf := newStandardForm(model, DefaultTolerance)

	require.Equal(t, 3, sf.numStructural)
	assert.Equal(t, columnOrigin{kind: colStructural, source: 0, sign: 1}, sf.origins[0])
	assert.Equal(t, columnOrigin{kind: colStructural, source: 0, sign: -1}, sf.origins[1])
	assert.Equal(t, columnOrigin{kind: colStructural, source: 1, sign: 1}, sf.origins[2])
	assert.Equal(t, []float64{1, -1, 2, 0}, sf.c)
	assert.Equal(t, []float64{1, -1, 1, 1}, sf.a.RawRowView(0))
	assert.Equal(t, []float64{-2, 1}, sf.recover([]float64{3, 5, 1, 0}))
}

func TestStandardFormZeroRows(t *testing.T) {
	t.Run("consistent", func(t *testing.T) {
		model := &Model{Objective: []float64{1}}
		model.AddLeRow([]float64{0}, 2)
		model.AddEqRow([]float64{0}, 0)

		sf := newStandardForm(model, DefaultTolerance)
		assert.False(t, sf.infeasible)
		assert.Equal(t, 2, sf.dropped)
		assert.Zero(t, sf.rows())
		assert.Nil(t, sf.a)
	})

	t.Run("contradictory", func(t *testing.T) {
		model := &Model{Objective: []float64{1}}
		model.AddGeRow([]float64{0}, 3)

		sf := newStandardForm(model, DefaultTolerance)
		assert.True(t, sf.infeasible)
	})
}

func TestStandardFormRightHandSideNonNegative(t *testing.T) {
	model := rangedModel()
	model.AddEqRow([]float64{1, -1}, -1)

	sf := newStandardForm(model, DefaultTolerance)
	for i, v := range sf.b {
		assert.GreaterOrEqual(t, v, 0.0, "row %d", i)
	}
	for i, col := range sf.basis {
		assert.Equal(t, 1.0, sf.a.At(i, col), "basic column of row %d", i)
	}
}
