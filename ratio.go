package pitch

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	ratioRegexp   = regexp.MustCompile(`^([0-9.]+)/([0-9.]+)$`)
	edoStepRegexp = regexp.MustCompile(`^(-?[0-9.]+)\\([0-9.]+)$`)
	centsRegexp   = regexp.MustCompile(`^(-?[0-9.]+)c$`)
)

// ParseRatio converts a string to a frequency ratio. Accepted forms are
// rationals ("3/2"), equal-division steps of the octave ("7\12"), cents
// ("701.955c") and plain numbers ("1.5").
func ParseRatio(s string) (float64, error) {
	s = strings.TrimSpace(s)
	r, err := parseRatioForm(s)
	if err != nil {
		return 0, fmt.Errorf("invalid ratio syntax: %q", s)
	}
	if !(r > 0) || math.IsInf(r, 0) {
		return 0, fmt.Errorf("ratio %q is not a positive number", s)
	}
	return r, nil
}

func parseRatioForm(s string) (float64, error) {
	if m := ratioRegexp.FindStringSubmatch(s); m != nil {
		num, den, err := parseFloatPair(m[1], m[2])
		return num / den, err
	}
	if m := edoStepRegexp.FindStringSubmatch(s); m != nil {
		step, edo, err := parseFloatPair(m[1], m[2])
		return math.Pow(2, step/edo), err
	}
	if m := centsRegexp.FindStringSubmatch(s); m != nil {
		c, err := strconv.ParseFloat(m[1], 64)
		return float64(Cents(c).Frequency()), err
	}
	return strconv.ParseFloat(s, 64)
}

func parseFloatPair(x, y string) (float64, float64, error) {
	a, err := strconv.ParseFloat(x, 64)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseFloat(y, 64)
	return a, b, err
}
