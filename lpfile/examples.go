package lpfile

import (
	"embed"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

//go:embed examples/*.yaml
var examplesFS embed.FS

// ErrUnknownExample is returned by LoadExample for a name not in Examples.
var ErrUnknownExample = errors.New("lpfile: unknown example")

// Examples returns the names of the bundled example problems, sorted.
func Examples() []string {
	entries, err := examplesFS.ReadDir("examples")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// LoadExample decodes the bundled example problem with the given name.
func LoadExample(name string) (*Problem, error) {
	data, err := examplesFS.ReadFile(path.Join("examples", name+".yaml"))
	if err != nil {
		return nil, errors.Wrapf(ErrUnknownExample, "%q (have %s)", name, strings.Join(Examples(), ", "))
	}
	p, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "example %s", name)
	}
	if p.Name == "" {
		p.Name = name
	}
	return p, nil
}
