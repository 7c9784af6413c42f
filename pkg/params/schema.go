package params

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/spf13/cast"
	"go.uber.org/multierr"
)

// maxSuggestDistance bounds the edit distance of "did you mean" hints.
const maxSuggestDistance = 2

// Schema is the read-only set of parameters a component accepts, together
// with the cross-field constraints that apply once every field is resolved.
// A Schema is never mutated after NewSchema returns and is safe for
// concurrent use.
type Schema struct {
	specs       map[string]ParameterSpec
	names       []string
	constraints []Constraint
}

// NewSchema builds a schema from a parameter table. It fails when names are
// duplicated, a default does not satisfy its own parameter, a derived
// default points at an unknown parameter, or a constraint references an
// undeclared parameter.
func NewSchema(specs []ParameterSpec, constraints ...Constraint) (*Schema, error) {
	s := &Schema{
		specs:       make(map[string]ParameterSpec, len(specs)),
		names:       make([]string, 0, len(specs)),
		constraints: constraints,
	}

	var errs error
	for _, spec := range specs {
		if spec.Name == "" {
			errs = multierr.Append(errs, fmt.Errorf("%w: parameter with empty name", errInvalidSchema))
			continue
		}
		if _, exists := s.specs[spec.Name]; exists {
			errs = multierr.Append(errs, fmt.Errorf("%w: parameter %q declared twice", errInvalidSchema, spec.Name))
			continue
		}
		switch spec.Type {
		case KindClock, KindNonNegative, KindPositive:
		case KindEnum:
			if len(spec.Options) == 0 {
				errs = multierr.Append(errs, fmt.Errorf("%w: enum parameter %q has no options", errInvalidSchema, spec.Name))
			}
		default:
			errs = multierr.Append(errs, fmt.Errorf("%w: parameter %q has unsupported type %q", errInvalidSchema, spec.Name, spec.Type))
		}
		spec.Options = slices.Clone(spec.Options)
		s.specs[spec.Name] = spec
		s.names = append(s.names, spec.Name)
	}
	sort.Strings(s.names)
	if errs != nil {
		return nil, errs
	}

	for _, name := range s.names {
		spec := s.specs[name]
		if spec.Default != nil {
			if _, err := s.ValidateValue(name, spec.Default); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%w: default of %q: %w", errInvalidSchema, name, err))
			}
		}
		if spec.DefaultFrom != "" {
			src, ok := s.specs[spec.DefaultFrom]
			switch {
			case !ok:
				errs = multierr.Append(errs, fmt.Errorf("%w: %q defaults from undeclared parameter %q", errInvalidSchema, name, spec.DefaultFrom))
			case src.Type != spec.Type:
				errs = multierr.Append(errs, fmt.Errorf("%w: %q (%s) defaults from %q of type %s", errInvalidSchema, name, spec.Type, src.Name, src.Type))
			case src.DefaultFrom != "":
				errs = multierr.Append(errs, fmt.Errorf("%w: %q defaults from %q which is itself derived", errInvalidSchema, name, src.Name))
			}
		}
	}

	for _, c := range constraints {
		for _, ref := range c.Params() {
			if _, ok := s.specs[ref]; !ok {
				errs = multierr.Append(errs, fmt.Errorf("%w: constraint %s references undeclared parameter %q", errInvalidSchema, c.Name(), ref))
			}
		}
	}
	if errs != nil {
		return nil, errs
	}
	return s, nil
}

// Describe returns the declaration of a parameter.
func (s *Schema) Describe(name string) (ParameterSpec, error) {
	spec, ok := s.specs[name]
	if !ok {
		return ParameterSpec{}, newParamError(ErrUnknownParameter, name, nil, "not declared%s", s.suggest(name))
	}
	spec.Options = slices.Clone(spec.Options)
	return spec, nil
}

// Has reports whether name is declared.
func (s *Schema) Has(name string) bool {
	_, ok := s.specs[name]
	return ok
}

// AllNames returns every declared parameter name in sorted order.
func (s *Schema) AllNames() []string {
	return slices.Clone(s.names)
}

// Constraints returns the cross-field constraints of the schema.
func (s *Schema) Constraints() []Constraint {
	return slices.Clone(s.constraints)
}

// ValidateValue coerces a raw value to the declared type of name and checks
// it against the declared domain.
func (s *Schema) ValidateValue(name string, raw interface{}) (Value, error) {
	spec, ok := s.specs[name]
	if !ok {
		return Value{}, newParamError(ErrUnknownParameter, name, raw, "not declared%s", s.suggest(name))
	}

	switch spec.Type {
	case KindClock:
		str, ok := raw.(string)
		if !ok {
			return Value{}, newParamError(ErrTypeMismatch, name, raw, "expected a string such as \"1GHz\", got %T", raw)
		}
		c, err := ParseClock(str)
		if err != nil {
			return Value{}, newParamError(ErrTypeMismatch, name, raw, "%v", err)
		}
		if c.Magnitude() <= 0 {
			return Value{}, newParamError(ErrOutOfDomain, name, raw, "clock must be greater than zero")
		}
		return Value{Kind: KindClock, Clock: c}, nil

	case KindNonNegative, KindPositive:
		n, err := coerceInt(raw)
		if err != nil {
			return Value{}, newParamError(ErrTypeMismatch, name, raw, "%v", err)
		}
		lo, hi, hasMax := spec.bounds()
		if n < lo {
			return Value{}, newParamError(ErrOutOfDomain, name, raw, "%d is below the minimum %d", n, lo)
		}
		if hasMax && n > hi {
			return Value{}, newParamError(ErrOutOfDomain, name, raw, "%d is above the maximum %d", n, hi)
		}
		return Value{Kind: spec.Type, Int: n}, nil

	case KindEnum:
		str, ok := raw.(string)
		if !ok {
			return Value{}, newParamError(ErrTypeMismatch, name, raw, "expected a string, got %T", raw)
		}
		if !slices.Contains(spec.Options, str) {
			return Value{}, newParamError(ErrOutOfDomain, name, raw, "%q is not one of %s", str, strings.Join(spec.Options, ", "))
		}
		return Value{Kind: KindEnum, Str: str}, nil
	}

	return Value{}, newParamError(ErrTypeMismatch, name, raw, "unsupported parameter type %q", spec.Type)
}

// suggest names the declared parameter closest to name: one that differs
// only by case or separators, or else one within two edits of it.
func (s *Schema) suggest(name string) string {
	fold := func(v string) string {
		return strings.NewReplacer("-", "", "_", "", ".", "").Replace(strings.ToLower(v))
	}
	want := fold(name)
	if want == "" {
		return ""
	}

	best, bestDist := "", maxSuggestDistance+1
	for _, candidate := range s.names {
		d := levenshtein.ComputeDistance(want, fold(candidate))
		if d < bestDist && d < len(want) {
			best, bestDist = candidate, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}

// coerceInt accepts Go integers, integral floats (how YAML and JSON decode
// numbers) and decimal strings (how environment and CLI values arrive).
func coerceInt(raw interface{}) (int64, error) {
	switch v := raw.(type) {
	case nil:
		return 0, fmt.Errorf("expected an integer, got null")
	case bool:
		return 0, fmt.Errorf("expected an integer, got boolean %t", v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a decimal integer", v)
		}
		return n, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, fmt.Errorf("%s is not an integer", v)
		}
		return n, nil
	case uint:
		return unsignedInt(uint64(v))
	case uint64:
		return unsignedInt(v)
	case float32:
		return integralFloat(float64(v))
	case float64:
		return integralFloat(v)
	}

	n, err := cast.ToInt64E(raw)
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %T", raw)
	}
	return n, nil
}

func unsignedInt(u uint64) (int64, error) {
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("%d does not fit in 64 bits", u)
	}
	return int64(u), nil
}

func integralFloat(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%v is not an integer", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("%v does not fit in 64 bits", f)
	}
	return int64(f), nil
}
