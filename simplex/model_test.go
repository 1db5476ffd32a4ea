package simplex

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDenseRow(t *testing.T) {
	var model Model
	model.Objective = []float64{1, 1}

	model.AddDenseRow(1, []float64{1, 2}, 10)
	model.AddDenseRow(3, []float64{1, 0}, 3)
	model.AddDenseRow(NegInf(), []float64{0, 1}, 7)
	model.AddDenseRow(NegInf(), []float64{5, 5}, Inf())

	require.Len(t, model.Inequalities, 3)
	assert.Equal(t, Row{Coeffs: []float64{-1, -2}, RHS: -1}, model.Inequalities[0])
	assert.Equal(t, Row{Coeffs: []float64{1, 2}, RHS: 10}, model.Inequalities[1])
	assert.Equal(t, Row{Coeffs: []float64{0, 1}, RHS: 7}, model.Inequalities[2])
	require.Len(t, model.Equalities, 1)
	assert.Equal(t, Row{Coeffs: []float64{1, 0}, RHS: 3}, model.Equalities[0])
	assert.Equal(t, 4, model.NumConstraints())
}

func TestAddSparseRow(t *testing.T) {
	model := Model{Objective: []float64{1, 1, 1, 1}}
	model.AddSparseRow(NegInf(), []int{0, 3}, []float64{2, 5}, 8)

	require.Len(t, model.Inequalities, 1)
	assert.Equal(t, []float64{2, 0, 0, 5}, model.Inequalities[0].Coeffs)
}

func TestAddRowCopiesCoefficients(t *testing.T) {
	model := Model{Objective: []float64{1, 1}}
	coeffs := []float64{1, 2}
	model.AddLeRow(coeffs, 3)
	model.AddEqRow(coeffs, 3)
	coeffs[0] = 99

	assert.Equal(t, 1.0, model.Inequalities[0].Coeffs[0])
	assert.Equal(t, 1.0, model.Equalities[0].Coeffs[0])
}

func TestSetBounds(t *testing.T) {
	model := Model{Objective: []float64{1, 1, 1}}
	model.SetBounds(1, -2, 2)

	require.Len(t, model.Bounds, 2)
	assert.Equal(t, DefaultBound, model.Bound(0))
	assert.Equal(t, Bound{Lower: -2, Upper: 2}, model.Bound(1))
	assert.Equal(t, DefaultBound, model.Bound(2))
	// A short Bounds slice is refused until every variable has a bound.
	assert.ErrorIs(t, model.Validate(), ErrBoundsLength)

	model.SetBounds(2, 0, 1)
	assert.NoError(t, model.Validate())
}

func TestBoundIsFree(t *testing.T) {
	assert.True(t, FreeBound.IsFree())
	assert.True(t, Bound{Lower: NegInf(), Upper: 4}.IsFree())
	assert.False(t, DefaultBound.IsFree())
}

func TestVarName(t *testing.T) {
	model := Model{Objective: []float64{1, 1, 1}, VarNames: []string{"steel", "", "coal"}}
	assert.Equal(t, "steel", model.VarName(0))
	assert.Equal(t, "x2", model.VarName(1))
	assert.Equal(t, "coal", model.VarName(2))
	assert.Equal(t, "x4", (&Model{}).VarName(3))
}

func TestClone(t *testing.T) {
	model := rangedModel()
	model.VarNames = []string{"a", "b"}
	clone := model.Clone()
	require.Equal(t, model, clone)

	clone.Objective[0] = 42
	clone.Inequalities[0].Coeffs[0] = 42
	clone.Bounds[0].Upper = 42
	clone.VarNames[0] = "z"

	assert.Equal(t, 1.0, model.Objective[0])
	assert.Equal(t, 0.0, model.Inequalities[0].Coeffs[0])
	assert.Equal(t, 4.0, model.Bounds[0].Upper)
	assert.Equal(t, "a", model.VarNames[0])
}

func TestValidationErrorMessage(t *testing.T) {
	model := Model{
		Objective:    []float64{1, 1},
		Inequalities: []Row{{Coeffs: []float64{1, 1}, RHS: 1}, {Coeffs: []float64{1}, RHS: 1}},
	}
	err := model.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "Inequalities", verr.Field)
	assert.Equal(t, 1, verr.Index)
	assert.Equal(t, "simplex: row length mismatch: Inequalities[1]: row has 1 coefficients, want 2", err.Error())

	err = (&Model{}).Validate()
	assert.Equal(t, "simplex: empty objective: Objective: model has no variables", err.Error())
}

func TestValidateAcceptsInfiniteBounds(t *testing.T) {
	model := Model{
		Objective: []float64{1, 1},
		Bounds:    []Bound{FreeBound, {Lower: math.Inf(-1), Upper: 0}},
	}
	assert.NoError(t, model.Validate())
}

func TestCheck(t *testing.T) {
	model := productionMix()
	model.AddEqRow([]float64{1, 1}, 6)
	model.Bounds = []Bound{{Lower: 0, Upper: 4}, DefaultBound}

	assert.Empty(t, model.Check([]float64{4, 2}, 1e-9))
	assert.True(t, model.IsFeasible([]float64{4, 2}, 1e-9))

	violations := model.Check([]float64{5, 2}, 1e-9)
	kinds := make([]ViolationKind, 0, len(violations))
	for _, v := range violations {
		kinds = append(kinds, v.Kind)
	}
	assert.Contains(t, kinds, ViolationInequality)
	assert.Contains(t, kinds, ViolationEquality)
	assert.Contains(t, kinds, ViolationUpperBound)
	assert.False(t, model.IsFeasible([]float64{5, 2}, 1e-9))

	below := model.Check([]float64{-1, 7}, 1e-9)
	require.NotEmpty(t, below)
	assert.Contains(t, below, Violation{Kind: ViolationLowerBound, Index: 0, Amount: 1})

	wrong := model.Check([]float64{1}, 1e-9)
	require.Len(t, wrong, 1)
	assert.Equal(t, Violation{Kind: ViolationLength, Index: -1, Amount: 1}, wrong[0])
	assert.Equal(t, "length -1 violated by 1", wrong[0].String())
	assert.False(t, model.IsFeasible([]float64{4, 2, 0}, 1e-9))
}

func TestCheckToleranceIsAbsolute(t *testing.T) {
	model := &Model{Objective: []float64{1}}
	model.AddLeRow([]float64{1}, 1e8)
	model.AddEqRow([]float64{1}, 1e8)

	violations := model.Check([]float64{1e8 + 0.05}, 1e-9)
	require.Len(t, violations, 2)
	assert.Equal(t, ViolationInequality, violations[0].Kind)
	assert.InDelta(t, 0.05, violations[0].Amount, 1e-6)
	assert.Equal(t, ViolationEquality, violations[1].Kind)

	assert.True(t, model.IsFeasible([]float64{1e8}, 1e-9))
}

func TestViolationString(t *testing.T) {
	v := Violation{Kind: ViolationUpperBound, Index: 2, Amount: 0.5}
	assert.Equal(t, "upper bound 2 violated by 0.5", v.String())
}

func TestModelStatusText(t *testing.T) {
	for _, s := range []ModelStatus{
		ModelStatusNotSet,
		ModelStatusOptimal,
		ModelStatusInfeasible,
		ModelStatusUnbounded,
		ModelStatusIterationLimit,
	} {
		text, err := s.MarshalText()
		require.NoError(t, err)

		var got ModelStatus
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, s, got)
	}

	assert.Equal(t, "Unknown", ModelStatus(42).String())

	var s ModelStatus
	var serr *Error
	require.True(t, errors.As(s.UnmarshalText([]byte("Solved")), &serr))
	assert.Equal(t, "UnmarshalText", serr.Op)
}

func TestSolutionValue(t *testing.T) {
	sol := &Solution{Status: ModelStatusOptimal, ColValues: []float64{3, 4}}
	assert.Equal(t, 4.0, sol.Value(1))
	assert.Equal(t, 0.0, sol.Value(2))
	assert.Equal(t, 0.0, sol.Value(-1))
	assert.True(t, sol.HasSolution())
}
