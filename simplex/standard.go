package simplex

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// columnKind classifies a standard-form column.
type columnKind int

const (
	colStructural columnKind = iota
	colSlack
	colArtificial
)

func (k columnKind) String() string {
	switch k {
	case colStructural:
		return "structural"
	case colSlack:
		return "slack"
	case colArtificial:
		return "artificial"
	default:
		return "unknown"
	}
}

// columnOrigin maps a standard-form column back to where it came from.
// For structural columns source is the model variable and sign is -1 for
// the negative half of a split free variable. For slack and artificial
// columns source is the standard-form row.
type columnOrigin struct {
	kind   columnKind
	source int
	sign   float64
}

// rowKind is the relation of a pending row before auxiliary columns exist.
type rowKind int

const (
	rowLE rowKind = iota
	rowEQ
)

type pendingRow struct {
	coeffs []float64 // over structural columns
	rhs    float64
	kind   rowKind
}

// standardForm is the LP rewritten as
//
//	minimize c · z  subject to  A z = b,  z ≥ 0
//
// with columns ordered structural, then slack, then artificial, and an
// initial basis of one slack or artificial column per row.
type standardForm struct {
	a       *mat.Dense // m × k, nil when m == 0
	b       []float64
	c       []float64
	origins []columnOrigin
	basis   []int

	numVars       int
	numStructural int
	numSlack      int
	numArtificial int

	// shift holds the finite lower bound substituted out of each variable.
	shift []float64
	// costOffset is c · shift in the minimization sense.
	costOffset float64
	// infeasible is set when a row reduces to a contradiction such as 0 ≤ -3.
	infeasible bool
	// dropped counts rows that reduced to 0 ≤ b (b ≥ 0) or 0 = 0.
	dropped int
}

// rows returns m, the number of standard-form rows.
func (sf *standardForm) rows() int {
	return len(sf.b)
}

// cols returns k, the number of standard-form columns.
func (sf *standardForm) cols() int {
	return len(sf.origins)
}

// artificialStart is the index of the first artificial column.
func (sf *standardForm) artificialStart() int {
	return sf.numStructural + sf.numSlack
}

// newStandardForm rewrites a validated model so that every variable is
// non-negative and every constraint is an equality with a non-negative
// right-hand side.
func newStandardForm(m *Model, tol float64) *standardForm {
	n := m.NumVars()
	sf := &standardForm{
		numVars: n,
		shift:   make([]float64, n),
	}

	sense := 1.0
	if m.Maximize {
		sense = -1
	}

	// Structural columns. varCols[j] lists the columns carrying variable j.
	varCols := make([][]int, n)
	var cost []float64
	for j := 0; j < n; j++ {
		bound := m.Bound(j)
		cj := sense * m.Objective[j]
		if bound.IsFree() {
			varCols[j] = []int{len(sf.origins), len(sf.origins) + 1}
			sf.origins = append(sf.origins,
				columnOrigin{kind: colStructural, source: j, sign: 1},
				columnOrigin{kind: colStructural, source: j, sign: -1})
			cost = append(cost, cj, -cj)
			continue
		}
		sf.shift[j] = bound.Lower
		sf.costOffset += cj * bound.Lower
		varCols[j] = []int{len(sf.origins)}
		sf.origins = append(sf.origins, columnOrigin{kind: colStructural, source: j, sign: 1})
		cost = append(cost, cj)
	}
	sf.numStructural = len(sf.origins)

	// expand maps a row over model variables onto structural columns and
	// moves the bound shift into the right-hand side.
	expand := func(coeffs []float64, rhs float64) ([]float64, float64) {
		row := make([]float64, sf.numStructural)
		for j, a := range coeffs {
			if a == 0 {
				continue
			}
			for _, col := range varCols[j] {
				row[col] = a * sf.origins[col].sign
			}
			rhs -= a * sf.shift[j]
		}
		return row, rhs
	}

	var pending []pendingRow
	for _, r := range m.Inequalities {
		row, rhs := expand(r.Coeffs, r.RHS)
		pending = append(pending, pendingRow{coeffs: row, rhs: rhs, kind: rowLE})
	}
	for j := 0; j < n; j++ {
		bound := m.Bound(j)
		if math.IsInf(bound.Upper, 1) {
			continue
		}
		row := make([]float64, sf.numStructural)
		for _, col := range varCols[j] {
			row[col] = sf.origins[col].sign
		}
		pending = append(pending, pendingRow{coeffs: row, rhs: bound.Upper - sf.shift[j], kind: rowLE})
	}
	for _, r := range m.Equalities {
		row, rhs := expand(r.Coeffs, r.RHS)
		pending = append(pending, pendingRow{coeffs: row, rhs: rhs, kind: rowEQ})
	}

	// Zero rows carry no variable; they are either trivially true or a
	// contradiction and never reach the tableau.
	kept := pending[:0]
	for _, p := range pending {
		if floats.Norm(p.coeffs, math.Inf(1)) > tol {
			kept = append(kept, p)
			continue
		}
		switch p.kind {
		case rowLE:
			if p.rhs < -tol {
				sf.infeasible = true
			}
		case rowEQ:
			if !nearZero(p.rhs, tol) {
				sf.infeasible = true
			}
		}
		sf.dropped++
	}
	pending = kept

	// Slack columns, one per inequality.
	slackCol := make([]int, len(pending))
	for i, p := range pending {
		slackCol[i] = -1
		if p.kind == rowLE {
			slackCol[i] = len(sf.origins)
			sf.origins = append(sf.origins, columnOrigin{kind: colSlack, source: i, sign: 1})
			cost = append(cost, 0)
			sf.numSlack++
		}
	}

	// Rows with a negative right-hand side are negated; the slack then acts
	// as a surplus and cannot start in the basis. Those rows and all
	// equalities receive an artificial column.
	mRows := len(pending)
	sf.b = make([]float64, mRows)
	sf.basis = make([]int, mRows)
	natural := make([]bool, mRows)
	for i, p := range pending {
		sf.b[i] = p.rhs
		natural[i] = p.kind == rowLE && p.rhs >= 0
		if !natural[i] {
			sf.basis[i] = len(sf.origins)
			sf.origins = append(sf.origins, columnOrigin{kind: colArtificial, source: i, sign: 1})
			cost = append(cost, 0)
			sf.numArtificial++
		} else {
			sf.basis[i] = slackCol[i]
		}
	}

	k := len(sf.origins)
	sf.c = cost
	if mRows == 0 {
		return sf
	}
	sf.a = mat.NewDense(mRows, k, nil)
	for i, p := range pending {
		row := sf.a.RawRowView(i)
		copy(row, p.coeffs)
		if slackCol[i] >= 0 {
			row[slackCol[i]] = 1
		}
		if sf.b[i] < 0 {
			floats.Scale(-1, row)
			sf.b[i] = -sf.b[i]
		}
		if !natural[i] {
			row[sf.basis[i]] = 1
		}
	}
	return sf
}

// recover maps standard-form column values back onto the model variables,
// undoing bound shifts and free-variable splits.
func (sf *standardForm) recover(z []float64) []float64 {
	x := make([]float64, sf.numVars)
	copy(x, sf.shift)
	for col := 0; col < sf.numStructural && col < len(z); col++ {
		o := sf.origins[col]
		x[o.source] += o.sign * z[col]
	}
	return x
}
