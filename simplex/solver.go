package simplex

// Solver solves models with a fixed configuration.
//
// A Solver holds no per-solve state: every call to Solve builds its own
// standard form and tableau, so one Solver may serve concurrent callers.
//
//	solver, err := simplex.NewSolver(simplex.WithTolerance(1e-10))
//	if err != nil {
//		log.Fatal(err)
//	}
//	solution, err := solver.Solve(model)
type Solver struct {
	cfg solveConfig
}

// NewSolver creates a solver with the given options applied.
// Returns an error if an option value is invalid.
func NewSolver(opts ...SolveOption) (*Solver, error) {
	cfg := defaultSolveConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Solver{cfg: *cfg}, nil
}

// Solve validates and solves m.
//
// Malformed models are refused with a *ValidationError. Every other outcome,
// including infeasibility, unboundedness and the iteration limit, is reported
// through Solution.Status with a nil error.
func (s *Solver) Solve(m *Model) (*Solution, error) {
	sol, _, err := s.solve(m)
	return sol, err
}

// solve runs both phases and also returns the terminal tableau. The tableau
// is nil when the model is refused or reduces to a contradictory row.
func (s *Solver) solve(m *Model) (*Solution, *tableau, error) {
	if m == nil {
		return nil, nil, newErrorMsg("Solve", "nil model")
	}
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}
	cfg := s.cfg
	log := cfg.logger

	sf := newStandardForm(m, cfg.tolerance)
	log.Debug("standard form built",
		"variables", m.NumVars(),
		"rows", sf.rows(),
		"columns", sf.cols(),
		"slack", sf.numSlack,
		"artificial", sf.numArtificial,
		"dropped_rows", sf.dropped,
	)
	if sf.infeasible {
		log.Debug("contradictory zero row", "status", ModelStatusInfeasible.String())
		return &Solution{Status: ModelStatusInfeasible}, nil, nil
	}

	tb := newTableau(sf, &cfg)

	if sf.numArtificial > 0 {
		artStart := sf.artificialStart()
		tb.setPhaseOneObjective(artStart)
		status := tb.run("phase1")
		if status != ModelStatusOptimal {
			// The auxiliary objective is bounded below by zero, so only the
			// iteration cap can stop Phase 1 early.
			return &Solution{Status: status, Iterations: tb.iterations}, tb, nil
		}
		if infeas := tb.objective(); infeas > cfg.tolerance {
			log.Debug("phase1 residual above tolerance", "residual", infeas)
			return &Solution{Status: ModelStatusInfeasible, Iterations: tb.iterations}, tb, nil
		}
		if !tb.dropArtificial(artStart) {
			log.Debug("artificial column above tolerance after phase1")
			return &Solution{Status: ModelStatusInfeasible, Iterations: tb.iterations}, tb, nil
		}
	}

	tb.setObjective(sf.c)
	status := tb.run("phase2")
	if status != ModelStatusOptimal {
		log.Debug("solve finished", "status", status.String(), "iterations", tb.iterations)
		return &Solution{Status: status, Iterations: tb.iterations}, tb, nil
	}

	sol := newSolution(m, sf, tb.values(), tb.iterations)
	log.Debug("solve finished",
		"status", sol.Status.String(),
		"iterations", sol.Iterations,
		"objective", sol.Objective,
	)
	return sol, tb, nil
}

// Solve builds a solver from opts and solves m with it.
func Solve(m *Model, opts ...SolveOption) (*Solution, error) {
	solver, err := NewSolver(opts...)
	if err != nil {
		return nil, err
	}
	return solver.Solve(m)
}

// Solve validates and solves the model, returning the solution.
//
// Options can be set using SolveOptions:
//
//	solution, err := model.Solve(
//		simplex.WithTolerance(1e-10),
//		simplex.WithMaxIterations(500),
//	)
func (m *Model) Solve(opts ...SolveOption) (*Solution, error) {
	return Solve(m, opts...)
}
