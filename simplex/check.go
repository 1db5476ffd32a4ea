package simplex

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ViolationKind identifies which part of a model a point violates.
type ViolationKind int

const (
	// ViolationInequality marks a row with Coeffs · x > RHS.
	ViolationInequality ViolationKind = iota
	// ViolationEquality marks a row with Coeffs · x ≠ RHS.
	ViolationEquality
	// ViolationLowerBound marks a variable below its lower bound.
	ViolationLowerBound
	// ViolationUpperBound marks a variable above its upper bound.
	ViolationUpperBound
	// ViolationLength marks a point whose length differs from the number
	// of variables.
	ViolationLength
)

// String returns a human-readable representation of the violation kind.
func (k ViolationKind) String() string {
	switch k {
	case ViolationInequality:
		return "inequality"
	case ViolationEquality:
		return "equality"
	case ViolationLowerBound:
		return "lower bound"
	case ViolationUpperBound:
		return "upper bound"
	case ViolationLength:
		return "length"
	default:
		return "unknown"
	}
}

// Violation describes one constraint or bound that a point fails to meet.
type Violation struct {
	Kind   ViolationKind
	Index  int     // row index within its group, or variable index for bounds
	Amount float64 // how far the point is outside the feasible side
}

func (v Violation) String() string {
	return fmt.Sprintf("%s %d violated by %g", v.Kind, v.Index, v.Amount)
}

// Check returns every constraint and bound of m that x violates by more
// than the absolute tolerance tol. It returns nil when x is feasible. A
// point of the wrong length yields a single ViolationLength whose Amount
// is the length difference.
func (m *Model) Check(x []float64, tol float64) []Violation {
	if len(x) != m.NumVars() {
		return []Violation{{
			Kind:   ViolationLength,
			Index:  -1,
			Amount: math.Abs(float64(len(x) - m.NumVars())),
		}}
	}
	var out []Violation

	for i, r := range m.Inequalities {
		if d := floats.Dot(r.Coeffs, x) - r.RHS; d > tol {
			out = append(out, Violation{Kind: ViolationInequality, Index: i, Amount: d})
		}
	}
	for i, r := range m.Equalities {
		if d := math.Abs(floats.Dot(r.Coeffs, x) - r.RHS); d > tol {
			out = append(out, Violation{Kind: ViolationEquality, Index: i, Amount: d})
		}
	}
	for j, v := range x {
		b := m.Bound(j)
		if d := b.Lower - v; !math.IsInf(b.Lower, -1) && d > tol {
			out = append(out, Violation{Kind: ViolationLowerBound, Index: j, Amount: d})
		}
		if d := v - b.Upper; !math.IsInf(b.Upper, 1) && d > tol {
			out = append(out, Violation{Kind: ViolationUpperBound, Index: j, Amount: d})
		}
	}
	return out
}

// IsFeasible reports whether x satisfies every constraint and bound of m
// within tol.
func (m *Model) IsFeasible(x []float64, tol float64) bool {
	return len(m.Check(x, tol)) == 0
}
