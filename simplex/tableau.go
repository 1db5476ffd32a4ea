package simplex

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// pivotRule names the entering-column rule used for a pivot.
type pivotRule string

const (
	ruleDantzig pivotRule = "dantzig"
	ruleBland   pivotRule = "bland"
)

// tableau is the dense simplex tableau
//
//	[ A   | b  ]   m constraint rows
//	[ d^T | -z ]   reduced costs and the negated objective value
//
// held in a single (m+1) × (k+1) matrix and updated in place by pivot.
type tableau struct {
	t     *mat.Dense
	m, k  int
	basis []int

	tol           float64
	maxIterations int
	iterations    int
	logger        *slog.Logger
}

func newTableau(sf *standardForm, cfg *solveConfig) *tableau {
	m, k := sf.rows(), sf.cols()
	tb := &tableau{
		t:      mat.NewDense(m+1, k+1, nil),
		m:      m,
		k:      k,
		basis:  append([]int(nil), sf.basis...),
		tol:    cfg.tolerance,
		logger: cfg.logger,
	}
	tb.maxIterations = cfg.maxIterations
	if tb.maxIterations <= 0 {
		tb.maxIterations = defaultIterationFactor * (m + k)
	}
	for i := 0; i < m; i++ {
		row := tb.t.RawRowView(i)
		copy(row, sf.a.RawRowView(i))
		row[k] = sf.b[i]
	}
	return tb
}

// objRow returns the reduced-cost row, including the -z entry.
func (tb *tableau) objRow() []float64 {
	return tb.t.RawRowView(tb.m)
}

// rhs returns the current value of the basic variable in row i.
func (tb *tableau) rhs(i int) float64 {
	return tb.t.At(i, tb.k)
}

// objective returns the current objective value of the active phase.
func (tb *tableau) objective() float64 {
	return -tb.t.At(tb.m, tb.k)
}

// setPhaseOneObjective installs "minimize the sum of artificial columns"
// priced out against the artificial starting basis.
func (tb *tableau) setPhaseOneObjective(artStart int) {
	obj := tb.objRow()
	for j := range obj {
		obj[j] = 0
	}
	for j := artStart; j < tb.k; j++ {
		obj[j] = 1
	}
	for i, col := range tb.basis {
		if col >= artStart {
			floats.AddScaled(obj, -1, tb.t.RawRowView(i))
		}
	}
}

// setObjective installs cost vector c priced out against the current basis.
func (tb *tableau) setObjective(c []float64) {
	obj := tb.objRow()
	copy(obj, c[:tb.k])
	obj[tb.k] = 0
	for i, col := range tb.basis {
		if cb := obj[col]; cb != 0 {
			floats.AddScaled(obj, -cb, tb.t.RawRowView(i))
		}
	}
	for _, col := range tb.basis {
		obj[col] = 0
	}
}

// run pivots until the active objective is optimal, unbounded, or the
// iteration cap is reached.
func (tb *tableau) run(phase string) ModelStatus {
	for {
		if tb.iterations >= tb.maxIterations {
			tb.logger.Debug("iteration limit reached", "phase", phase, "iterations", tb.iterations)
			return ModelStatusIterationLimit
		}

		rule := ruleDantzig
		enter := tb.dantzigColumn()
		if enter < 0 {
			tb.logger.Debug("phase optimal", "phase", phase, "iterations", tb.iterations, "objective", tb.objective())
			return ModelStatusOptimal
		}
		leave, ratio := tb.ratioTest(enter)
		if leave >= 0 && ratio <= tb.tol {
			// Degenerate step: fall back to Bland's rule so a stall cannot cycle.
			if bland := tb.blandColumn(); bland != enter {
				rule = ruleBland
				enter = bland
				leave, ratio = tb.ratioTest(enter)
			}
		}
		if leave < 0 {
			tb.logger.Debug("unbounded direction", "phase", phase, "column", enter)
			return ModelStatusUnbounded
		}

		tb.logger.Debug("pivot",
			"phase", phase,
			"iteration", tb.iterations,
			"entering", enter,
			"leaving", tb.basis[leave],
			"ratio", ratio,
			"rule", string(rule),
		)
		tb.pivot(leave, enter)
		tb.iterations++
	}
}

// dantzigColumn returns the column with the most negative reduced cost,
// lowest index first on ties, or -1 if none is below -tol.
func (tb *tableau) dantzigColumn() int {
	obj := tb.objRow()
	best, bestVal := -1, -tb.tol
	for j := 0; j < tb.k; j++ {
		if obj[j] < bestVal {
			best, bestVal = j, obj[j]
		}
	}
	return best
}

// blandColumn returns the lowest-index column with a negative reduced cost.
func (tb *tableau) blandColumn() int {
	obj := tb.objRow()
	for j := 0; j < tb.k; j++ {
		if obj[j] < -tb.tol {
			return j
		}
	}
	return -1
}

// ratioTest returns the leaving row for entering column col and the step
// length, or -1 if no row limits the step. Ties on the minimum ratio go to
// the row whose basic column has the smallest index.
func (tb *tableau) ratioTest(col int) (int, float64) {
	leave, best := -1, math.Inf(1)
	for i := 0; i < tb.m; i++ {
		a := tb.t.At(i, col)
		if a <= tb.tol {
			continue
		}
		ratio := math.Max(tb.rhs(i), 0) / a
		switch {
		case leave < 0 || ratio < best-tb.tol:
			leave, best = i, ratio
		case ratio <= best+tb.tol && tb.basis[i] < tb.basis[leave]:
			leave, best = i, math.Min(ratio, best)
		}
	}
	return leave, best
}

// pivot makes col basic in row r by row reduction over the whole tableau,
// including the objective row.
func (tb *tableau) pivot(r, col int) {
	pr := tb.t.RawRowView(r)
	floats.Scale(1/pr[col], pr)
	pr[col] = 1
	for i := 0; i <= tb.m; i++ {
		if i == r {
			continue
		}
		row := tb.t.RawRowView(i)
		factor := row[col]
		if factor == 0 {
			continue
		}
		floats.AddScaled(row, -factor, pr)
		row[col] = 0
		if i < tb.m {
			row[tb.k] = cleanZero(row[tb.k], tb.tol)
		}
	}
	tb.basis[r] = col
}

// dropArtificial removes artificial columns after a successful Phase 1.
// Artificial columns still basic at level zero are pivoted out on any
// non-artificial column with a non-zero entry; rows offering none are
// linearly dependent on the others and are deleted. It reports false,
// leaving the tableau untouched, if some basic artificial column is above
// zero by more than tol.
func (tb *tableau) dropArtificial(artStart int) bool {
	for i := 0; i < tb.m; i++ {
		if tb.basis[i] >= artStart && !nearZero(tb.rhs(i), tb.tol) {
			return false
		}
	}

	keep := make([]bool, tb.m)
	for i := 0; i < tb.m; i++ {
		keep[i] = true
		if tb.basis[i] < artStart {
			continue
		}
		row := tb.t.RawRowView(i)
		// The artificial is at level zero, so the pivot below is degenerate
		// whatever the sign of the pivot entry.
		row[tb.k] = 0
		col, mag := -1, tb.tol
		for j := 0; j < artStart; j++ {
			if a := math.Abs(row[j]); a > mag {
				col, mag = j, a
			}
		}
		if col < 0 {
			keep[i] = false
			tb.logger.Debug("redundant row removed", "row", i)
			continue
		}
		tb.pivot(i, col)
	}

	var rows []int
	for i, ok := range keep {
		if ok {
			rows = append(rows, i)
		}
	}
	next := mat.NewDense(len(rows)+1, artStart+1, nil)
	basis := make([]int, len(rows))
	for ni, i := range append(rows, tb.m) {
		src := tb.t.RawRowView(i)
		dst := next.RawRowView(ni)
		copy(dst[:artStart], src[:artStart])
		dst[artStart] = src[tb.k]
		if ni < len(rows) {
			basis[ni] = tb.basis[i]
		}
	}
	tb.t = next
	tb.m = len(rows)
	tb.k = artStart
	tb.basis = basis
	return true
}

// values returns the current basic solution over all k columns. Entries
// within tol of zero are snapped to zero; nothing else is altered, so a
// negative entry shows up in the result instead of being hidden.
func (tb *tableau) values() []float64 {
	z := make([]float64, tb.k)
	for i, col := range tb.basis {
		z[col] = cleanZero(tb.rhs(i), tb.tol)
	}
	return z
}

// reducedCosts returns a copy of the reduced-cost row without the -z entry.
func (tb *tableau) reducedCosts() []float64 {
	return copyFloats(tb.objRow()[:tb.k])
}
