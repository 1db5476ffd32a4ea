package main

import (
	"fmt"
	"log"

	"github.com/bartolsthoorn/gosimplex/simplex"
)

func main() {
	// Maximize: 2x + y
	// Subject to: x + 2y <= 10, x + y <= 6, x - y <= 2, x - 2y <= 1, x,y >= 0
	model := simplex.Model{
		Maximize:  true,
		Objective: []float64{2.0, 1.0},
		VarNames:  []string{"x", "y"},
	}
	model.AddLeRow([]float64{1.0, 2.0}, 10.0)
	model.AddLeRow([]float64{1.0, 1.0}, 6.0)
	model.AddLeRow([]float64{1.0, -1.0}, 2.0)
	model.AddLeRow([]float64{1.0, -2.0}, 1.0)

	solution, err := model.Solve(simplex.WithTolerance(1e-10))
	if err != nil {
		log.Fatal(err)
	}

	if solution.IsOptimal() {
		fmt.Printf("x = %.2f, y = %.2f\n", solution.ColValues[0], solution.ColValues[1])
		fmt.Printf("Objective = %.2f\n", solution.Objective)
	} else {
		fmt.Printf("Status = %s\n", solution.Status)
	}
}
