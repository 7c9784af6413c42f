package params

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// Clock is a frequency or period written the way SST's UnitAlgebra reads
// it, e.g. "1GHz", "2.5 MHz", "500ps".
type Clock struct {
	text     string
	mantissa float64
	exponent int
	unit     string
}

var clockPattern = regexp.MustCompile(`^([0-9]*\.?[0-9]+)\s?([a-zA-Zµμ]*?)(Hz|s)$`)

// SI prefixes accepted in clock values, as powers of ten. Micro may be
// spelled u, µ (micro sign) or μ (greek mu); SST spells it u.
var clockPrefixes = map[string]int{
	"":  0,
	"f": -15,
	"p": -12,
	"n": -9,
	"u": -6,
	"µ": -6,
	"μ": -6,
	"m": -3,
	"k": 3,
	"K": 3,
	"M": 6,
	"G": 9,
	"T": 12,
}

// ParseClock parses a frequency or period.
func ParseClock(raw string) (Clock, error) {
	text := strings.TrimSpace(raw)
	m := clockPattern.FindStringSubmatch(text)
	if m == nil {
		return Clock{}, fmt.Errorf("%q is not a number followed by a Hz or s unit", raw)
	}

	mantissa, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid number in %q: %w", raw, err)
	}
	exponent, ok := clockPrefixes[m[2]]
	if !ok {
		return Clock{}, fmt.Errorf("unknown SI prefix %q in %q", m[2], raw)
	}

	prefix := m[2]
	if exponent == -6 {
		prefix = "u"
	}
	return Clock{
		text:     m[1] + prefix + m[3],
		mantissa: mantissa,
		exponent: exponent,
		unit:     m[3],
	}, nil
}

// MustParseClock is ParseClock for literals known to be valid.
func MustParseClock(raw string) Clock {
	c, err := ParseClock(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the canonical text: the input without whitespace and with
// micro written as u.
func (c Clock) String() string {
	return c.text
}

// Unit is "Hz" for frequencies and "s" for periods.
func (c Clock) Unit() string {
	return c.unit
}

// Magnitude is the value in base units (Hz or seconds).
func (c Clock) Magnitude() float64 {
	return c.mantissa * math.Pow10(c.exponent)
}

// Hertz returns the clock as a frequency, inverting periods.
func (c Clock) Hertz() float64 {
	if c.unit == "s" {
		if c.mantissa == 0 {
			return math.Inf(1)
		}
		return 1 / c.mantissa * math.Pow10(-c.exponent)
	}
	return c.Magnitude()
}

// Humanize renders the clock as a frequency, e.g. "1 GHz".
func (c Clock) Humanize() string {
	return humanize.SI(c.Hertz(), "Hz")
}
