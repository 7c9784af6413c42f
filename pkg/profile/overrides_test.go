package profile

import (
	"testing"

	"github.com/hanskasan/booksim2/pkg/params"
	"github.com/stretchr/testify/require"
)

func TestParseAssignments(t *testing.T) {
	set, err := ParseAssignments([]string{"num_vcs=2", " topology = torus ", "booksim_clock=2 GHz", "num_vcs=4", "packet_size="})
	require.NoError(t, err)
	require.Equal(t, params.ParameterSet{
		"num_vcs":       "4",
		"topology":      "torus",
		"booksim_clock": "2 GHz",
		"packet_size":   "",
	}, set)
}

func TestParseAssignmentsErrors(t *testing.T) {
	for _, a := range []string{"num_vcs", "=2", " =2"} {
		t.Run(a, func(t *testing.T) {
			_, err := ParseAssignments([]string{a})
			require.ErrorContains(t, err, "expected name=value")
		})
	}
}
