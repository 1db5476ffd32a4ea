package simplex_test

import (
	"fmt"
	"log"

	"github.com/bartolsthoorn/gosimplex/simplex"
)

func ExampleModel_Solve() {
	model := simplex.Model{
		Maximize:  true,
		Objective: []float64{2, 1},
	}
	model.AddLeRow([]float64{1, 2}, 10)
	model.AddLeRow([]float64{1, 1}, 6)
	model.AddLeRow([]float64{1, -1}, 2)
	model.AddLeRow([]float64{1, -2}, 1)

	solution, err := model.Solve()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(solution.Status)
	fmt.Printf("x1 = %.2f, x2 = %.2f\n", solution.ColValues[0], solution.ColValues[1])
	fmt.Printf("objective = %.2f\n", solution.Objective)
	// Output:
	// Optimal
	// x1 = 4.00, x2 = 2.00
	// objective = 10.00
}

func ExampleSolver_Solve() {
	solver, err := simplex.NewSolver(simplex.WithTolerance(1e-10))
	if err != nil {
		log.Fatal(err)
	}

	// x >= 5 and x <= 2 cannot both hold.
	model := &simplex.Model{Objective: []float64{1}}
	model.AddGeRow([]float64{1}, 5)
	model.AddLeRow([]float64{1}, 2)

	solution, err := solver.Solve(model)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(solution.Status, solution.HasSolution())
	// Output:
	// Infeasible false
}
