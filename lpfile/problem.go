// Package lpfile reads and writes linear programs as YAML or JSON documents
// and converts them to and from simplex.Model.
//
// A problem document looks like:
//
//	name: production-mix
//	sense: maximize
//	variables: [x1, x2]
//	objective: [2, 1]
//	constraints:
//	  - {coeffs: [1, 2], op: "<=", rhs: 10}
//	  - {coeffs: [1, 1], op: "<=", rhs: 6}
//	bounds:
//	  - {lower: 0}
//	  - {free: true}
//
// JSON is a subset of YAML, so the same decoder accepts both.
package lpfile

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/bartolsthoorn/gosimplex/simplex"
)

var (
	// ErrUnknownSense is returned for a sense other than minimize or maximize.
	ErrUnknownSense = errors.New("lpfile: unknown sense")

	// ErrUnknownOperator is returned for a constraint op other than <=, >= or =.
	ErrUnknownOperator = errors.New("lpfile: unknown constraint operator")

	// ErrBadBound is returned for a bound that sets free together with a lower limit.
	ErrBadBound = errors.New("lpfile: free bound with a lower limit")
)

// Sense is the optimization direction of a problem document.
type Sense string

const (
	Minimize Sense = "minimize"
	Maximize Sense = "maximize"
)

// Relational operators accepted in Constraint.Op.
const (
	OpLE = "<="
	OpGE = ">="
	OpEQ = "="
)

// Problem is a linear program as stored on disk.
type Problem struct {
	Name        string       `json:"name,omitempty"`
	Description string       `json:"description,omitempty"`
	Sense       Sense        `json:"sense,omitempty"`
	Variables   []string     `json:"variables,omitempty"`
	Objective   []float64    `json:"objective"`
	Offset      float64      `json:"offset,omitempty"`
	Constraints []Constraint `json:"constraints,omitempty"`
	Bounds      []BoundSpec  `json:"bounds,omitempty"`
}

// Constraint is one row coeffs · x op rhs.
type Constraint struct {
	Name   string    `json:"name,omitempty"`
	Coeffs []float64 `json:"coeffs"`
	Op     string    `json:"op"`
	RHS    float64   `json:"rhs"`
}

// BoundSpec bounds one variable. A missing lower limit means 0 unless Free
// is set, and a missing upper limit means +∞.
type BoundSpec struct {
	Lower *float64 `json:"lower,omitempty"`
	Upper *float64 `json:"upper,omitempty"`
	Free  bool     `json:"free,omitempty"`
}

// Decode parses a YAML or JSON problem document. Unknown fields are rejected.
func Decode(data []byte) (*Problem, error) {
	var p Problem
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return nil, errors.Wrap(err, "decoding problem")
	}
	return &p, nil
}

// Load reads the problem document at path. A document without a name is
// named after its file.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	p, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	if p.Name == "" {
		p.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return p, nil
}

// Encode renders the problem as YAML.
func (p *Problem) Encode() ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, errors.Wrap(err, "encoding problem")
	}
	return data, nil
}

// Model converts the document into a simplex.Model. Structural checks such
// as row lengths are left to simplex.Model.Validate.
func (p *Problem) Model() (*simplex.Model, error) {
	m := &simplex.Model{
		Offset:    p.Offset,
		Objective: append([]float64(nil), p.Objective...),
	}

	switch Sense(strings.ToLower(string(p.Sense))) {
	case "", Minimize, "min":
	case Maximize, "max":
		m.Maximize = true
	default:
		return nil, errors.Wrapf(ErrUnknownSense, "%q", p.Sense)
	}

	if len(p.Variables) > 0 {
		m.VarNames = append([]string(nil), p.Variables...)
	}

	for i, c := range p.Constraints {
		switch strings.TrimSpace(c.Op) {
		case OpLE, "=<":
			m.AddLeRow(c.Coeffs, c.RHS)
		case OpGE, "=>":
			m.AddGeRow(c.Coeffs, c.RHS)
		case OpEQ, "==":
			m.AddEqRow(c.Coeffs, c.RHS)
		default:
			return nil, errors.Wrapf(ErrUnknownOperator, "constraint %d (%s): %q", i, p.constraintName(i), c.Op)
		}
	}

	if len(p.Bounds) > 0 {
		m.Bounds = make([]simplex.Bound, len(p.Bounds))
		for j, b := range p.Bounds {
			bound, err := b.bound()
			if err != nil {
				return nil, errors.Wrapf(err, "bound %d", j)
			}
			m.Bounds[j] = bound
		}
	}
	return m, nil
}

func (p *Problem) constraintName(i int) string {
	if p.Constraints[i].Name != "" {
		return p.Constraints[i].Name
	}
	return "c" + strconv.Itoa(i+1)
}

func (b BoundSpec) bound() (simplex.Bound, error) {
	out := simplex.DefaultBound
	if b.Free {
		if b.Lower != nil {
			return out, ErrBadBound
		}
		out.Lower = math.Inf(-1)
	}
	if b.Lower != nil {
		out.Lower = *b.Lower
	}
	if b.Upper != nil {
		out.Upper = *b.Upper
	}
	return out, nil
}

// FromModel converts a model into a problem document. Inequalities are
// written as <= rows and equalities as = rows, in model order. Bounds are
// written only when some variable differs from the default.
func FromModel(name string, m *simplex.Model) *Problem {
	p := &Problem{
		Name:      name,
		Sense:     Minimize,
		Objective: append([]float64(nil), m.Objective...),
		Offset:    m.Offset,
	}
	if m.Maximize {
		p.Sense = Maximize
	}
	if len(m.VarNames) > 0 {
		p.Variables = append([]string(nil), m.VarNames...)
	}
	for _, r := range m.Inequalities {
		p.Constraints = append(p.Constraints, Constraint{
			Coeffs: append([]float64(nil), r.Coeffs...),
			Op:     OpLE,
			RHS:    r.RHS,
		})
	}
	for _, r := range m.Equalities {
		p.Constraints = append(p.Constraints, Constraint{
			Coeffs: append([]float64(nil), r.Coeffs...),
			Op:     OpEQ,
			RHS:    r.RHS,
		})
	}

	custom := false
	for _, b := range m.Bounds {
		if b != simplex.DefaultBound {
			custom = true
			break
		}
	}
	if custom {
		p.Bounds = make([]BoundSpec, len(m.Bounds))
		for j, b := range m.Bounds {
			p.Bounds[j] = boundSpec(b)
		}
	}
	return p
}

func boundSpec(b simplex.Bound) BoundSpec {
	var spec BoundSpec
	switch {
	case math.IsInf(b.Lower, -1):
		spec.Free = true
	case b.Lower != 0:
		lower := b.Lower
		spec.Lower = &lower
	}
	if !math.IsInf(b.Upper, 1) {
		upper := b.Upper
		spec.Upper = &upper
	}
	return spec
}
