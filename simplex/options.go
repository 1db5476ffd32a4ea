package simplex

import (
	"io"
	"log/slog"
	"math"
)

const (
	// DefaultTolerance is the zero threshold used for pivoting, ratio,
	// optimality and feasibility tests.
	DefaultTolerance = 1e-9

	// defaultIterationFactor scales the default pivot cap, 20·(m+k).
	defaultIterationFactor = 20
)

// SolveOption configures the solver behavior.
type SolveOption func(*solveConfig)

type solveConfig struct {
	tolerance     float64
	maxIterations int
	logger        *slog.Logger
}

func defaultSolveConfig() *solveConfig {
	return &solveConfig{
		tolerance: DefaultTolerance,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (c *solveConfig) validate() error {
	if math.IsNaN(c.tolerance) || c.tolerance <= 0 || math.IsInf(c.tolerance, 0) {
		return newErrorMsg("WithTolerance", "tolerance must be a positive finite number")
	}
	if c.maxIterations < 0 {
		return newErrorMsg("WithMaxIterations", "iteration limit must not be negative")
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return nil
}

// WithTolerance sets the numerical tolerance ε. Magnitudes below ε are
// treated as zero. The default is DefaultTolerance.
func WithTolerance(eps float64) SolveOption {
	return func(c *solveConfig) {
		c.tolerance = eps
	}
}

// WithMaxIterations caps the number of pivots across both phases.
// Zero selects the default of 20·(m+k) for the standard-form dimensions.
func WithMaxIterations(n int) SolveOption {
	return func(c *solveConfig) {
		c.maxIterations = n
	}
}

// WithLogger sets the logger receiving debug traces of each solve.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) SolveOption {
	return func(c *solveConfig) {
		c.logger = logger
	}
}
