package simplex

// ModelStatus represents the status of a solved model.
type ModelStatus int

const (
	// ModelStatusNotSet indicates the model status has not been set.
	ModelStatusNotSet ModelStatus = iota
	// ModelStatusOptimal indicates an optimal solution was found.
	ModelStatusOptimal
	// ModelStatusInfeasible indicates no point satisfies every constraint and bound.
	ModelStatusInfeasible
	// ModelStatusUnbounded indicates the objective improves without limit.
	ModelStatusUnbounded
	// ModelStatusIterationLimit indicates the pivot cap was reached.
	ModelStatusIterationLimit
)

var modelStatusNames = []string{
	"NotSet", "Optimal", "Infeasible", "Unbounded", "IterationLimit",
}

// String returns a human-readable representation of the model status.
func (s ModelStatus) String() string {
	if int(s) >= 0 && int(s) < len(modelStatusNames) {
		return modelStatusNames[s]
	}
	return "Unknown"
}

// MarshalText implements encoding.TextMarshaler.
func (s ModelStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ModelStatus) UnmarshalText(text []byte) error {
	for i, name := range modelStatusNames {
		if name == string(text) {
			*s = ModelStatus(i)
			return nil
		}
	}
	return newErrorMsg("UnmarshalText", "unknown model status "+string(text))
}

// IsOptimal returns true if the model was solved to optimality.
func (s ModelStatus) IsOptimal() bool {
	return s == ModelStatusOptimal
}

// HasSolution returns true if the model has a valid solution.
func (s ModelStatus) HasSolution() bool {
	return s == ModelStatusOptimal
}
