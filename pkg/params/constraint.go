package params

import (
	"maps"
	"slices"
	"strings"
)

// Constraint is a check over several resolved parameters. It runs only after
// every parameter passed its own validation.
type Constraint interface {
	// Name identifies the constraint in error messages.
	Name() string
	// Params lists the parameters the constraint reads.
	Params() []string
	// Check returns nil or an error wrapping ErrIncompatibleParameters.
	Check(r *Resolved) error
}

// RoutingTable maps a topology to its legal routing functions. Each routing
// function maps to the minimum number of virtual channels it needs.
type RoutingTable map[string]map[string]int64

// Topologies returns the topologies of the table in sorted order.
func (t RoutingTable) Topologies() []string {
	return slices.Sorted(maps.Keys(t))
}

// RoutingFunctions returns the union of routing functions over all
// topologies in sorted order.
func (t RoutingTable) RoutingFunctions() []string {
	seen := make(map[string]struct{})
	for _, fns := range t {
		for fn := range fns {
			seen[fn] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// Legal returns the routing functions allowed on topology in sorted order.
func (t RoutingTable) Legal(topology string) []string {
	return slices.Sorted(maps.Keys(t[topology]))
}

// RoutingConstraint requires the routing function to be legal for the
// topology and the VC count to cover what the routing function needs.
type RoutingConstraint struct {
	Topology string
	Routing  string
	VCs      string
	Table    RoutingTable
}

// Name implements Constraint.
func (c RoutingConstraint) Name() string {
	return "routing-for-topology"
}

// Params implements Constraint.
func (c RoutingConstraint) Params() []string {
	refs := []string{c.Topology, c.Routing}
	if c.VCs != "" {
		refs = append(refs, c.VCs)
	}
	return refs
}

// Check implements Constraint.
func (c RoutingConstraint) Check(r *Resolved) error {
	topology := r.Str(c.Topology)
	routing := r.Str(c.Routing)

	legal, ok := c.Table[topology]
	if !ok || len(legal) == 0 {
		return newParamError(ErrIncompatibleParameters, c.Routing, routing,
			"topology %q has no legal routing functions", topology)
	}
	minVCs, ok := legal[routing]
	if !ok {
		return newParamError(ErrIncompatibleParameters, c.Routing, routing,
			"%q is not legal for topology %q (legal: %s)", routing, topology, strings.Join(c.Table.Legal(topology), ", "))
	}
	if c.VCs != "" {
		if vcs := r.Int(c.VCs); vcs < minVCs {
			return newParamError(ErrIncompatibleParameters, c.VCs, vcs,
				"routing function %q on %q needs at least %d virtual channels, got %d", routing, topology, minVCs, vcs)
		}
	}
	return nil
}

var _ Constraint = RoutingConstraint{}
