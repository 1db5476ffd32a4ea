package simplex

import "math"

// Inf returns positive infinity, suitable for unbounded variable bounds.
func Inf() float64 {
	return math.Inf(1)
}

// NegInf returns negative infinity, suitable for unbounded variable bounds.
func NegInf() float64 {
	return math.Inf(-1)
}

// densify expands a sparse (cols, vals) pair into a dense row of length n.
// The row grows if a column index lies beyond n; duplicate columns keep the
// last value.
func densify(n int, cols []int, vals []float64) []float64 {
	for _, c := range cols {
		if c+1 > n {
			n = c + 1
		}
	}
	row := make([]float64, n)
	for i, c := range cols {
		if c < 0 || i >= len(vals) {
			continue
		}
		row[c] = vals[i]
	}
	return row
}

func copyFloats(s []float64) []float64 {
	if s == nil {
		return nil
	}
	out := make([]float64, len(s))
	copy(out, s)
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// nearZero reports whether |v| is within tol of zero.
func nearZero(v, tol float64) bool {
	return math.Abs(v) <= tol
}

// cleanZero snaps values within tol of zero to exactly zero.
func cleanZero(v, tol float64) float64 {
	if nearZero(v, tol) {
		return 0
	}
	return v
}
