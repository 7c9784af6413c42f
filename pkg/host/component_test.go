package host

import (
	"testing"

	"github.com/hanskasan/booksim2/pkg/params"
	"github.com/stretchr/testify/require"
)

func TestNewComponent(t *testing.T) {
	r, err := params.BindDefault(params.ParameterSet{params.NumVCs: 2})
	require.NoError(t, err)

	c := NewComponent("net_sim", r)
	require.Equal(t, "booksim2.booksim2", c.TypeName())
	require.Equal(t, "2", c.Params[params.NumVCs])
	require.NoError(t, c.Validate())
}

func TestComponentValidate(t *testing.T) {
	tests := []struct {
		name string
		c    Component
	}{
		{"missing name", Component{Library: "booksim2", Type: "booksim2", Params: map[string]string{}}},
		{"missing params", Component{Library: "booksim2", Type: "booksim2", Name: "a"}},
		{"dotted library", Component{Library: "book.sim", Type: "booksim2", Name: "a", Params: map[string]string{}}},
		{"non ascii name", Component{Library: "booksim2", Type: "booksim2", Name: "réseau", Params: map[string]string{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorContains(t, tt.c.Validate(), "invalid component")
		})
	}
}

func TestSplitTypeName(t *testing.T) {
	library, typ, err := SplitTypeName("merlin.hr_router")
	require.NoError(t, err)
	require.Equal(t, "merlin", library)
	require.Equal(t, "hr_router", typ)

	for _, bad := range []string{"booksim2", ".booksim2", "booksim2.", ""} {
		_, _, err := SplitTypeName(bad)
		require.Error(t, err, bad)
	}
}
