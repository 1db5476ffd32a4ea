package simplex

import "gonum.org/v1/gonum/floats"

// Solution contains the results from solving a model.
type Solution struct {
	// Status indicates the outcome of the solve.
	Status ModelStatus

	// ColValues contains the value of each model variable.
	// Only populated when Status is ModelStatusOptimal.
	ColValues []float64

	// RowValues contains the activity Coeffs · x of each inequality
	// followed by each equality, in model order.
	// Only populated when Status is ModelStatusOptimal.
	RowValues []float64

	// Objective is Objective · x + Offset in the model's own sense.
	Objective float64

	// Iterations is the number of pivots performed across both phases.
	Iterations int
}

// IsOptimal returns true if the solution is optimal.
func (s *Solution) IsOptimal() bool {
	return s.Status == ModelStatusOptimal
}

// IsInfeasible returns true if the model is infeasible.
func (s *Solution) IsInfeasible() bool {
	return s.Status == ModelStatusInfeasible
}

// IsUnbounded returns true if the model is unbounded.
func (s *Solution) IsUnbounded() bool {
	return s.Status == ModelStatusUnbounded
}

// IsIterationLimit returns true if the solve stopped at the pivot cap.
func (s *Solution) IsIterationLimit() bool {
	return s.Status == ModelStatusIterationLimit
}

// HasSolution returns true if the solution contains valid values.
func (s *Solution) HasSolution() bool {
	return s.Status.HasSolution()
}

// Value returns the solution value for a variable by index.
// Returns 0 if the index is out of range.
func (s *Solution) Value(index int) float64 {
	if index < 0 || index >= len(s.ColValues) {
		return 0
	}
	return s.ColValues[index]
}

// newSolution maps the terminal standard-form values z back onto the model.
func newSolution(m *Model, sf *standardForm, z []float64, iterations int) *Solution {
	x := sf.recover(z)
	sol := &Solution{
		Status:     ModelStatusOptimal,
		ColValues:  x,
		Objective:  floats.Dot(m.Objective, x) + m.Offset,
		Iterations: iterations,
	}
	sol.RowValues = make([]float64, 0, m.NumConstraints())
	for _, r := range m.Inequalities {
		sol.RowValues = append(sol.RowValues, floats.Dot(r.Coeffs, x))
	}
	for _, r := range m.Equalities {
		sol.RowValues = append(sol.RowValues, floats.Dot(r.Coeffs, x))
	}
	return sol
}
