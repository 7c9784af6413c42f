package profile

import (
	"fmt"
	"strings"

	"github.com/hanskasan/booksim2/pkg/params"
)

// ParseAssignments turns name=value arguments into a ParameterSet. Values
// stay text; the binder coerces them. A repeated name keeps its last value.
func ParseAssignments(assignments []string) (params.ParameterSet, error) {
	set := make(params.ParameterSet, len(assignments))
	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid assignment %q, expected name=value", a)
		}
		set[name] = strings.TrimSpace(value)
	}
	return set, nil
}
