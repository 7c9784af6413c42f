package params

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the semantic type of a parameter
type Kind string

const (
	// KindClock is a duration-with-unit: a frequency ("1GHz") or a period ("500ps")
	KindClock Kind = "clock"
	// KindNonNegative is an integer >= 0
	KindNonNegative Kind = "non_negative_integer"
	// KindPositive is an integer >= 1
	KindPositive Kind = "positive_integer"
	// KindEnum is a string drawn from a fixed option list
	KindEnum Kind = "enum"
)

// ParameterSpec declares one configurable parameter of a component
type ParameterSpec struct {
	Name        string      `yaml:"name"`
	Type        Kind        `yaml:"type"`
	Description string      `yaml:"description"`
	Default     interface{} `yaml:"default,omitempty"`
	// DefaultFrom names another parameter whose resolved value is used when
	// this one is not supplied.
	DefaultFrom string   `yaml:"default_from,omitempty"`
	Min         *int64   `yaml:"min,omitempty"`
	Max         *int64   `yaml:"max,omitempty"`
	Options     []string `yaml:"options,omitempty"` // For enums
}

// Required reports whether the parameter has neither a default nor a
// derived default.
func (p ParameterSpec) Required() bool {
	return p.Default == nil && p.DefaultFrom == ""
}

// bounds returns the inclusive integer range accepted by an integer kind.
// hasMax is false when the parameter is unbounded above.
func (p ParameterSpec) bounds() (lo int64, hi int64, hasMax bool) {
	switch p.Type {
	case KindPositive:
		lo = 1
	case KindNonNegative:
		lo = 0
	}
	if p.Min != nil && *p.Min > lo {
		lo = *p.Min
	}
	if p.Max != nil {
		hi, hasMax = *p.Max, true
	}
	return lo, hi, hasMax
}

// Domain renders the legal values of the parameter for humans.
func (p ParameterSpec) Domain() string {
	switch p.Type {
	case KindEnum:
		return "one of " + strings.Join(p.Options, ", ")
	case KindClock:
		return "frequency (Hz) or period (s), > 0"
	case KindPositive, KindNonNegative:
		lo, hi, hasMax := p.bounds()
		if hasMax {
			return fmt.Sprintf("%d..%d", lo, hi)
		}
		return ">= " + strconv.FormatInt(lo, 10)
	default:
		return ""
	}
}

// ParameterSet is a partial, unvalidated configuration supplied by a caller.
type ParameterSet map[string]interface{}

// Value is a validated, typed parameter value.
type Value struct {
	Kind  Kind
	Int   int64
	Str   string
	Clock Clock
}

// String renders the value in the host's text form.
func (v Value) String() string {
	switch v.Kind {
	case KindClock:
		return v.Clock.String()
	case KindPositive, KindNonNegative:
		return strconv.FormatInt(v.Int, 10)
	default:
		return v.Str
	}
}
