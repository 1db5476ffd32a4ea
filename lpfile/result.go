package lpfile

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"sigs.k8s.io/yaml"

	"github.com/bartolsthoorn/gosimplex/simplex"
)

// Format selects how results are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported formats.
var ErrUnknownFormat = errors.New("lpfile: unknown output format")

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
	}
}

// Result is the outcome of solving one problem document.
type Result struct {
	Problem    string              `json:"problem,omitempty"`
	Status     simplex.ModelStatus `json:"status"`
	Objective  *float64            `json:"objective,omitempty"`
	Variables  []Value             `json:"variables,omitempty"`
	Rows       []Value             `json:"rows,omitempty"`
	Iterations int                 `json:"iterations"`
	Violations []string            `json:"violations,omitempty"`
}

// Value is a named number: a variable value or a constraint activity.
type Value struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// NewResult packages sol for problem p, which m was built from. Values are
// filled in only for optimal solutions.
func NewResult(p *Problem, m *simplex.Model, sol *simplex.Solution) *Result {
	r := &Result{
		Problem:    p.Name,
		Status:     sol.Status,
		Iterations: sol.Iterations,
	}
	if !sol.HasSolution() {
		return r
	}
	objective := sol.Objective
	r.Objective = &objective
	r.Variables = make([]Value, len(sol.ColValues))
	for j, v := range sol.ColValues {
		r.Variables[j] = Value{Name: m.VarName(j), Value: v}
	}
	r.Rows = make([]Value, len(p.Constraints))
	for i, c := range p.Constraints {
		r.Rows[i] = Value{Name: p.constraintName(i), Value: floats.Dot(c.Coeffs, sol.ColValues)}
	}
	return r
}

// WriteResults renders results to w. JSON output is a single object for one
// result and an array otherwise; YAML output is one document per result.
func WriteResults(w io.Writer, results []*Result, f Format) error {
	switch f {
	case FormatJSON:
		var v any = results
		if len(results) == 1 {
			v = results[0]
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encoding results")
	case FormatYAML:
		for i, r := range results {
			data, err := yaml.Marshal(r)
			if err != nil {
				return errors.Wrap(err, "encoding results")
			}
			if i > 0 {
				if _, err := io.WriteString(w, "---\n"); err != nil {
					return err
				}
			}
			if _, err := w.Write(data); err != nil {
				return err
			}
		}
		return nil
	case FormatText:
		for i, r := range results {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if err := writeText(w, r); err != nil {
				return err
			}
		}
		return nil
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", f)
	}
}

func writeText(w io.Writer, r *Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if r.Problem != "" {
		fmt.Fprintf(tw, "problem:\t%s\n", r.Problem)
	}
	fmt.Fprintf(tw, "status:\t%s\n", r.Status)
	if r.Objective != nil {
		fmt.Fprintf(tw, "objective:\t%s\n", formatFloat(*r.Objective))
	}
	fmt.Fprintf(tw, "iterations:\t%d\n", r.Iterations)
	if len(r.Variables) > 0 {
		fmt.Fprintf(tw, "\nvariable\tvalue\n")
		for _, v := range r.Variables {
			fmt.Fprintf(tw, "%s\t%s\n", v.Name, formatFloat(v.Value))
		}
	}
	if len(r.Rows) > 0 {
		fmt.Fprintf(tw, "\nconstraint\tactivity\n")
		for _, v := range r.Rows {
			fmt.Fprintf(tw, "%s\t%s\n", v.Name, formatFloat(v.Value))
		}
	}
	for _, v := range r.Violations {
		fmt.Fprintf(tw, "violation:\t%s\n", v)
	}
	return tw.Flush()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
