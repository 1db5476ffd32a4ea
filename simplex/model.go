package simplex

import (
	"fmt"
	"math"
	"strconv"
)

// Model represents a linear program in general form.
//
// The model describes problems of the form:
//
//	Minimize (or Maximize): Objective · x + Offset
//	Subject to:             Inequalities[i].Coeffs · x ≤ Inequalities[i].RHS
//	                        Equalities[i].Coeffs · x = Equalities[i].RHS
//	And:                    Bounds[j].Lower ≤ x_j ≤ Bounds[j].Upper
//
// A Model is plain data. Solve never mutates it, so the same Model may be
// solved repeatedly or from several goroutines at once.
type Model struct {
	// Maximize indicates whether to maximize (true) or minimize (false).
	Maximize bool

	// Offset is a constant added to the reported objective value.
	Offset float64

	// Objective holds one cost coefficient per variable. Its length defines
	// the number of variables.
	Objective []float64

	// Inequalities are rows interpreted as Coeffs · x ≤ RHS.
	Inequalities []Row

	// Equalities are rows interpreted as Coeffs · x = RHS.
	Equalities []Row

	// Bounds are the per-variable bounds.
	// If empty, every variable defaults to (0, +∞).
	Bounds []Bound

	// VarNames optionally labels each variable for reporting.
	VarNames []string
}

// Row is a single linear constraint row.
type Row struct {
	Coeffs []float64
	RHS    float64
}

// Bound is a (lower, upper) pair for one variable. Use NegInf() and Inf()
// for missing bounds.
type Bound struct {
	Lower float64
	Upper float64
}

// DefaultBound is the bound applied to variables without an explicit one.
var DefaultBound = Bound{Lower: 0, Upper: math.Inf(1)}

// FreeBound leaves a variable unrestricted in sign.
var FreeBound = Bound{Lower: math.Inf(-1), Upper: math.Inf(1)}

// IsFree reports whether the bound leaves the variable without a lower limit.
func (b Bound) IsFree() bool {
	return math.IsInf(b.Lower, -1)
}

// AddDenseRow adds a ranged constraint lower ≤ coeffs · x ≤ upper.
// Infinite sides are skipped; equal finite sides produce one equality.
//
// Example:
//
//	model.AddDenseRow(1.0, []float64{1.0, 2.0, 0.0, 3.0}, 10.0)
//	// Adds constraints: x0 + 2*x1 + 3*x3 >= 1 and x0 + 2*x1 + 3*x3 <= 10
func (m *Model) AddDenseRow(lower float64, coeffs []float64, upper float64) {
	if lower == upper && !math.IsInf(lower, 0) {
		m.AddEqRow(coeffs, lower)
		return
	}
	if !math.IsInf(lower, -1) {
		m.AddGeRow(coeffs, lower)
	}
	if !math.IsInf(upper, 1) {
		m.AddLeRow(coeffs, upper)
	}
}

// AddSparseRow adds a ranged constraint using a sparse coefficient
// representation. The row is densified to the current number of variables.
//
// Example:
//
//	model.AddSparseRow(1.0, []int{0, 1, 3}, []float64{1.0, 2.0, 3.0}, 10.0)
//	// Adds constraints: 1.0 <= x0 + 2*x1 + 3*x3 <= 10.0
func (m *Model) AddSparseRow(lower float64, cols []int, vals []float64, upper float64) {
	m.AddDenseRow(lower, densify(m.NumVars(), cols, vals), upper)
}

// AddEqRow adds an equality constraint: sum(coeffs * x) = rhs.
func (m *Model) AddEqRow(coeffs []float64, rhs float64) {
	m.Equalities = append(m.Equalities, Row{Coeffs: copyFloats(coeffs), RHS: rhs})
}

// AddLeRow adds a less-than-or-equal constraint: sum(coeffs * x) <= rhs.
func (m *Model) AddLeRow(coeffs []float64, rhs float64) {
	m.Inequalities = append(m.Inequalities, Row{Coeffs: copyFloats(coeffs), RHS: rhs})
}

// AddGeRow adds a greater-than-or-equal constraint: sum(coeffs * x) >= rhs.
// It is stored as the equivalent row -coeffs · x <= -rhs.
func (m *Model) AddGeRow(coeffs []float64, rhs float64) {
	neg := make([]float64, len(coeffs))
	for i, v := range coeffs {
		neg[i] = -v
	}
	m.Inequalities = append(m.Inequalities, Row{Coeffs: neg, RHS: -rhs})
}

// SetBounds sets the bounds of variable j, filling earlier variables with
// DefaultBound if Bounds was empty or short.
func (m *Model) SetBounds(j int, lower, upper float64) {
	for len(m.Bounds) <= j {
		m.Bounds = append(m.Bounds, DefaultBound)
	}
	m.Bounds[j] = Bound{Lower: lower, Upper: upper}
}

// NumVars returns the number of variables in the model.
func (m *Model) NumVars() int {
	return len(m.Objective)
}

// NumConstraints returns the number of constraint rows in the model.
func (m *Model) NumConstraints() int {
	return len(m.Inequalities) + len(m.Equalities)
}

// Bound returns the effective bound of variable j.
func (m *Model) Bound(j int) Bound {
	if j < len(m.Bounds) {
		return m.Bounds[j]
	}
	return DefaultBound
}

// VarName returns the label of variable j, or "x<j+1>" if none was set.
func (m *Model) VarName(j int) string {
	if j < len(m.VarNames) && m.VarNames[j] != "" {
		return m.VarNames[j]
	}
	return "x" + strconv.Itoa(j+1)
}

// Clone returns a deep copy of the model.
func (m *Model) Clone() *Model {
	c := &Model{
		Maximize:  m.Maximize,
		Offset:    m.Offset,
		Objective: copyFloats(m.Objective),
	}
	c.Inequalities = copyRows(m.Inequalities)
	c.Equalities = copyRows(m.Equalities)
	if m.Bounds != nil {
		c.Bounds = append([]Bound(nil), m.Bounds...)
	}
	if m.VarNames != nil {
		c.VarNames = append([]string(nil), m.VarNames...)
	}
	return c
}

// Validate checks the model for structural errors before any solving
// begins. It returns nil or a *ValidationError.
func (m *Model) Validate() error {
	n := len(m.Objective)
	if n == 0 {
		return newValidationError(ErrEmptyObjective, "Objective", -1, "model has no variables")
	}
	for j, c := range m.Objective {
		if !isFinite(c) {
			return newValidationError(ErrNonFinite, "Objective", j, "objective coefficient is NaN or infinite")
		}
	}
	if !isFinite(m.Offset) {
		return newValidationError(ErrNonFinite, "Offset", -1, "offset is NaN or infinite")
	}
	if err := validateRows("Inequalities", m.Inequalities, n); err != nil {
		return err
	}
	if err := validateRows("Equalities", m.Equalities, n); err != nil {
		return err
	}
	if len(m.Bounds) != 0 && len(m.Bounds) != n {
		return newValidationError(ErrBoundsLength, "Bounds", -1,
			fmt.Sprintf("got %d bounds for %d variables", len(m.Bounds), n))
	}
	for j, b := range m.Bounds {
		if math.IsNaN(b.Lower) || math.IsNaN(b.Upper) || math.IsInf(b.Lower, 1) || math.IsInf(b.Upper, -1) {
			return newValidationError(ErrNonFinite, "Bounds", j, "bound is NaN or points the wrong way")
		}
		if b.Lower > b.Upper {
			return newValidationError(ErrInvertedBounds, "Bounds", j, "lower bound exceeds upper bound")
		}
	}
	if len(m.VarNames) != 0 && len(m.VarNames) != n {
		return newValidationError(ErrNamesLength, "VarNames", -1,
			fmt.Sprintf("got %d names for %d variables", len(m.VarNames), n))
	}
	return nil
}

func validateRows(field string, rows []Row, n int) error {
	for i, r := range rows {
		if len(r.Coeffs) != n {
			return newValidationError(ErrRowLength, field, i,
				fmt.Sprintf("row has %d coefficients, want %d", len(r.Coeffs), n))
		}
		for _, v := range r.Coeffs {
			if !isFinite(v) {
				return newValidationError(ErrNonFinite, field, i, "coefficient is NaN or infinite")
			}
		}
		if !isFinite(r.RHS) {
			return newValidationError(ErrNonFinite, field, i, "right-hand side is NaN or infinite")
		}
	}
	return nil
}

func copyRows(rows []Row) []Row {
	if rows == nil {
		return nil
	}
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = Row{Coeffs: copyFloats(r.Coeffs), RHS: r.RHS}
	}
	return out
}
