package host

import (
	"context"
	"fmt"
	"testing"

	"github.com/hanskasan/booksim2/pkg/params"
	"github.com/stretchr/testify/require"
)

func TestBuildAllKeepsOrder(t *testing.T) {
	var instances []Instance
	for i := 1; i <= params.MaxVirtualChannels; i++ {
		instances = append(instances, Instance{
			Name: fmt.Sprintf("router%d", i),
			Sets: []params.ParameterSet{
				{params.Topology: "torus", params.RoutingFunction: "dim_order"},
				{params.NumVCs: i},
			},
		})
	}

	components, err := BuildAll(context.Background(), DefaultRegistry, instances)
	require.NoError(t, err)
	require.Len(t, components, len(instances))
	for i, c := range components {
		require.Equal(t, instances[i].Name, c.Name)
		require.Equal(t, fmt.Sprint(i+1), c.Params[params.NumVCs])
		require.Equal(t, "torus", c.Params[params.Topology])
	}
}

func TestBuildAllReportsFailingInstance(t *testing.T) {
	_, err := BuildAll(context.Background(), DefaultRegistry, []Instance{
		{Name: "ok"},
		{Name: "bad", Sets: []params.ParameterSet{{params.Topology: "mesh", params.RoutingFunction: "min_adapt"}}},
	})
	require.ErrorIs(t, err, params.ErrIncompatibleParameters)
	require.ErrorContains(t, err, "instance bad")
}

func TestBuildAllRejectsDuplicateNames(t *testing.T) {
	_, err := BuildAll(context.Background(), DefaultRegistry, []Instance{{Name: "a"}, {Name: "a"}})
	require.ErrorContains(t, err, `duplicate component name "a"`)
}

func TestBuildAllUnknownType(t *testing.T) {
	_, err := BuildAll(context.Background(), DefaultRegistry, []Instance{{Name: "a", TypeName: "merlin.hr_router"}})
	require.ErrorContains(t, err, "not found")
}

func TestBuildAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildAll(ctx, DefaultRegistry, []Instance{{Name: "a"}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestBuildAllEmpty(t *testing.T) {
	components, err := BuildAll(context.Background(), DefaultRegistry, nil)
	require.NoError(t, err)
	require.Empty(t, components)
}
