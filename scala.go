package pitch

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scale is the content of a Scala .scl file: ratios of each degree above the
// implicit 1/1, the last of which is the period.
type Scale struct {
	Description string
	Ratios      []float64
}

// NewScale tunes each of steps in t. steps should ascend and end with the
// period, usually the octave.
func NewScale(t Tuning, desc string, steps []Interval) Scale {
	s := Scale{Description: desc, Ratios: make([]float64, len(steps))}
	for i, step := range steps {
		s.Ratios[i] = t.Ratio(step)
	}
	return s
}

// Cents returns the size of each degree in cents.
func (s Scale) Cents() []Cents {
	c := make([]Cents, len(s.Ratios))
	for i, r := range s.Ratios {
		c[i] = Hertz(r).Cents()
	}
	return c
}

// ReadScale parses a Scala .scl file.
func ReadScale(r io.Reader) (Scale, error) {
	var s Scale
	scanner := bufio.NewScanner(r)
	i, n := 0, 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "!") {
			continue
		}
		switch {
		case i == 0:
			s.Description = line
		case i == 1:
			count, err := strconv.ParseUint(firstField(line), 10, 16)
			if err != nil {
				return s, fmt.Errorf("invalid scale size %q", line)
			}
			n = int(count)
			s.Ratios = make([]float64, 0, n)
		case len(s.Ratios) < n:
			ratio, err := parseScalaPitch(firstField(line))
			if err != nil {
				return s, err
			}
			s.Ratios = append(s.Ratios, ratio)
		}
		i++
	}
	if err := scanner.Err(); err != nil {
		return s, err
	}
	if i < 2 || len(s.Ratios) < n {
		return s, fmt.Errorf("invalid scale file: expected %d degrees, got %d", n, len(s.Ratios))
	}
	return s, nil
}

// convert a scala pitch string into a ratio. a period means cents.
func parseScalaPitch(s string) (float64, error) {
	if strings.Contains(s, ".") {
		c, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid scale degree %q", s)
		}
		return float64(Cents(c).Frequency()), nil
	}
	if !strings.Contains(s, "/") {
		s += "/1"
	}
	r, err := ParseRatio(s)
	if err != nil {
		return 0, fmt.Errorf("invalid scale degree %q", s)
	}
	return r, nil
}

// Write encodes s as a Scala .scl file, with every degree in cents.
func (s Scale) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "! %s\n!\n%s\n %d\n!\n", s.Description, s.Description, len(s.Ratios))
	for _, c := range s.Cents() {
		fmt.Fprintf(bw, " %.6f\n", float64(c))
	}
	return bw.Flush()
}

// return the first whitespace-separated field of s, or s if it has none
func firstField(s string) string {
	if f := strings.Fields(s); len(f) > 0 {
		return f[0]
	}
	return s
}
