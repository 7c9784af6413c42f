package params

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		raw       string
		canonical string
		unit      string
		hertz     float64
	}{
		{"1GHz", "1GHz", "Hz", 1e9},
		{"1 GHz", "1GHz", "Hz", 1e9},
		{" 2.5MHz ", "2.5MHz", "Hz", 2.5e6},
		{"500kHz", "500kHz", "Hz", 5e5},
		{"100Hz", "100Hz", "Hz", 100},
		{"1ns", "1ns", "s", 1e9},
		{"2us", "2us", "s", 5e5},
		{"2µs", "2us", "s", 5e5},
		{"2μs", "2us", "s", 5e5},
		{"1s", "1s", "s", 1},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c, err := ParseClock(tt.raw)
			require.NoError(t, err)
			require.Equal(t, tt.canonical, c.String())
			require.Equal(t, tt.unit, c.Unit())
			require.InEpsilon(t, tt.hertz, c.Hertz(), 1e-9)
		})
	}
}

func TestParseClockRejects(t *testing.T) {
	for _, raw := range []string{"", "GHz", "1", "1 G Hz", "1GHZ", "1Ghz", "fast", "1xHz", "-1GHz", "1  GHz"} {
		t.Run(raw, func(t *testing.T) {
			_, err := ParseClock(raw)
			require.Error(t, err)
		})
	}
}

func TestClockHumanize(t *testing.T) {
	require.Equal(t, "1 GHz", MustParseClock("1GHz").Humanize())
	require.Equal(t, "1 GHz", MustParseClock("1ns").Humanize())
}

func TestMustParseClockPanics(t *testing.T) {
	require.Panics(t, func() { MustParseClock("soon") })
}
