package host

import (
	"context"
	"fmt"
	"runtime"

	"github.com/hanskasan/booksim2/pkg/params"
	"golang.org/x/sync/errgroup"
)

// Instance is one component to configure.
type Instance struct {
	Name string
	// TypeName selects the schema; empty means booksim2.booksim2.
	TypeName string
	// Sets are bound in priority order, later sets winning.
	Sets []params.ParameterSet
}

// BuildAll binds every instance and returns the components in input order.
// Instances are bound concurrently; the first failure cancels the rest and
// is returned.
func BuildAll(ctx context.Context, reg *Registry, instances []Instance) ([]Component, error) {
	seen := make(map[string]bool, len(instances))
	for _, inst := range instances {
		if seen[inst.Name] {
			return nil, fmt.Errorf("duplicate component name %q", inst.Name)
		}
		seen[inst.Name] = true
	}

	out := make([]Component, len(instances))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, inst := range instances {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := build(reg, inst)
			if err != nil {
				return fmt.Errorf("instance %s: %w", inst.Name, err)
			}
			out[i] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func build(reg *Registry, inst Instance) (Component, error) {
	typeName := inst.TypeName
	if typeName == "" {
		typeName = BookSimTypeName
	}
	library, typ, err := SplitTypeName(typeName)
	if err != nil {
		return Component{}, err
	}
	schema, err := reg.Get(typeName)
	if err != nil {
		return Component{}, err
	}

	r, err := params.Bind(schema, inst.Sets...)
	if err != nil {
		return Component{}, err
	}

	c := Component{
		Library: library,
		Type:    typ,
		Name:    inst.Name,
		Params:  params.Serialize(r),
	}
	if err := c.Validate(); err != nil {
		return Component{}, err
	}
	return c, nil
}
