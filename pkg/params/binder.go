package params

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/multierr"
)

// Origin records where a resolved value came from.
type Origin int

const (
	// OriginDefault marks a value taken from the schema default.
	OriginDefault Origin = -1
	// OriginDerived marks a value copied from the parameter named in DefaultFrom.
	OriginDerived Origin = -2
)

// String renders the origin for humans.
func (o Origin) String() string {
	switch o {
	case OriginDefault:
		return "default"
	case OriginDerived:
		return "derived"
	default:
		return fmt.Sprintf("set[%d]", int(o))
	}
}

// Resolved is a complete, validated configuration: exactly one value per
// schema parameter. It is immutable once Bind returns it.
type Resolved struct {
	values  map[string]Value
	origins map[string]Origin
}

// Get returns the value of name.
func (r *Resolved) Get(name string) (Value, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Int returns the integer value of name, or 0 if name is not an integer.
func (r *Resolved) Int(name string) int64 {
	return r.values[name].Int
}

// Str returns the string value of name, or "" if name is not an enum.
func (r *Resolved) Str(name string) string {
	return r.values[name].Str
}

// Clock returns the clock value of name.
func (r *Resolved) Clock(name string) Clock {
	return r.values[name].Clock
}

// Origin reports which input supplied name: the index of the winning
// ParameterSet, OriginDefault or OriginDerived.
func (r *Resolved) Origin(name string) Origin {
	return r.origins[name]
}

// Names returns the resolved parameter names in sorted order.
func (r *Resolved) Names() []string {
	return slices.Sorted(maps.Keys(r.values))
}

// Len returns the number of resolved parameters.
func (r *Resolved) Len() int {
	return len(r.values)
}

// Bind merges the parameter sets in priority order (later sets override
// earlier ones), fills defaults and validates the result against schema.
//
// Every problem found is reported: per-parameter errors are combined and
// returned together, and cross-field constraints run only when all
// parameters are individually valid. No Resolved is returned on error.
func Bind(schema *Schema, sets ...ParameterSet) (*Resolved, error) {
	var errs error

	for i, set := range sets {
		for _, key := range slices.Sorted(maps.Keys(set)) {
			if !schema.Has(key) {
				errs = multierr.Append(errs, newParamError(ErrUnknownParameter, key, set[key],
					"not declared (in set %d)%s", i, schema.suggest(key)))
			}
		}
	}

	r := &Resolved{
		values:  make(map[string]Value, len(schema.names)),
		origins: make(map[string]Origin, len(schema.names)),
	}

	var derived []string
	for _, name := range schema.names {
		spec := schema.specs[name]

		raw, origin, ok := lookup(name, sets)
		if !ok {
			switch {
			case spec.Default != nil:
				raw, origin = spec.Default, OriginDefault
			case spec.DefaultFrom != "":
				derived = append(derived, name)
				continue
			default:
				errs = multierr.Append(errs, newParamError(ErrMissingRequiredParameter, name, nil,
					"no value supplied and no default declared"))
				continue
			}
		}

		v, err := schema.ValidateValue(name, raw)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		r.values[name] = v
		r.origins[name] = origin
	}

	for _, name := range derived {
		// A failed source has already been reported.
		if v, ok := r.values[schema.specs[name].DefaultFrom]; ok {
			r.values[name] = v
			r.origins[name] = OriginDerived
		}
	}

	if errs != nil {
		return nil, errs
	}

	for _, c := range schema.constraints {
		errs = multierr.Append(errs, c.Check(r))
	}
	if errs != nil {
		return nil, errs
	}
	return r, nil
}

// lookup finds the highest-priority set defining name.
func lookup(name string, sets []ParameterSet) (interface{}, Origin, bool) {
	for i := len(sets) - 1; i >= 0; i-- {
		if raw, ok := sets[i][name]; ok {
			return raw, Origin(i), true
		}
	}
	return nil, 0, false
}

// Serialize renders every resolved value into the host's flat string
// parameter form.
func Serialize(r *Resolved) map[string]string {
	out := make(map[string]string, len(r.values))
	for name, v := range r.values {
		out[name] = v.String()
	}
	return out
}
