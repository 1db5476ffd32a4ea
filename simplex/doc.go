// Package simplex solves linear programs with a two-phase tableau simplex
// method written in pure Go.
//
// A model is given in general form: a linear objective to minimize or
// maximize, rows of the form a·x ≤ b and a·x = b, and per-variable bounds
// that default to (0, +∞). Solve rewrites the model into standard form
// (non-negative variables, equality rows) using slack, surplus and
// artificial columns, bound shifting and free-variable splitting, then runs
// Phase 1 to find a feasible basis and Phase 2 to optimize it.
//
// # Example
//
//	model := simplex.Model{
//		Maximize:  true,
//		Objective: []float64{2, 1},
//	}
//	model.AddLeRow([]float64{1, 2}, 10)
//	model.AddLeRow([]float64{1, 1}, 6)
//	model.AddLeRow([]float64{1, -1}, 2)
//	model.AddLeRow([]float64{1, -2}, 1)
//
//	solution, err := model.Solve()
//	if err != nil {
//		log.Fatal(err)
//	}
//	if solution.IsOptimal() {
//		fmt.Println(solution.ColValues, solution.Objective) // [4 2] 10
//	}
//
// # Outcomes
//
// Malformed input is refused with a *ValidationError before any work is
// done. Every other outcome is a Solution whose Status is one of
// ModelStatusOptimal, ModelStatusInfeasible, ModelStatusUnbounded or
// ModelStatusIterationLimit.
//
// # Pivoting
//
// The entering column is chosen by Dantzig's rule. When that choice would
// make a degenerate (zero-length) step the entering column is re-chosen by
// Bland's rule. Ties in the ratio test go to the row whose basic column has
// the lowest index. All comparisons against zero use the tolerance set by
// WithTolerance.
//
// Each Solve call owns its standard form and tableau, so independent models
// can be solved concurrently without coordination.
package simplex
