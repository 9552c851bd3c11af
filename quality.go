package pitch

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Number is the conventional size class of an interval: 1 for a unison, 2 for
// a second and so on. Negative numbers are descending; 0 is not a number.
type Number int

func (n Number) String() string {
	return strconv.Itoa(int(n))
}

type qualityKind uint8

const (
	perfect qualityKind = iota
	major
	minor
	augmented
	diminished
)

// Quality is the fine adjustment of an interval within its number.
type Quality struct {
	kind qualityKind
	n    int // augmentation or diminution count
}

var (
	Perfect = Quality{kind: perfect}
	Major   = Quality{kind: major}
	Minor   = Quality{kind: minor}
)

// Augmented returns the quality of an interval augmented n times.
func Augmented(n int) Quality {
	return Quality{kind: augmented, n: n}
}

// Diminished returns the quality of an interval diminished n times.
func Diminished(n int) Quality {
	return Quality{kind: diminished, n: n}
}

// IsAugmented reports whether q is augmented, and by how much.
func (q Quality) IsAugmented() (int, bool) {
	return q.n, q.kind == augmented
}

// IsDiminished reports whether q is diminished, and by how much.
func (q Quality) IsDiminished() (int, bool) {
	return q.n, q.kind == diminished
}

func (q Quality) String() string {
	var s string
	switch q.kind {
	case perfect:
		return "perfect"
	case major:
		return "major"
	case minor:
		return "minor"
	case augmented:
		s = "augmented"
	case diminished:
		s = "diminished"
	}
	if q.n != 1 {
		s = fmt.Sprintf("%s * %d", s, q.n)
	}
	return s
}

// short form used in interval names
func (q Quality) abbrev() string {
	switch q.kind {
	case major:
		return "M"
	case minor:
		return "m"
	case augmented:
		return strings.Repeat("A", q.n)
	case diminished:
		return strings.Repeat("d", q.n)
	}
	return "P"
}

// QualityError reports a quality that does not exist for a number, such as a
// minor fifth or a perfect third.
type QualityError struct {
	Quality Quality
	Number  Number
}

func (e *QualityError) Error() string {
	return fmt.Sprintf("no %v interval with number %d", e.Quality, e.Number)
}

// MakeInterval returns the interval with the given quality and number. A
// negative number gives the descending interval.
func MakeInterval(q Quality, n Number) (Interval, error) {
	if n < 0 {
		// -n overflows for the most negative Number
		if -n < 0 {
			return Interval{}, &QualityError{q, n}
		}
		i, err := MakeInterval(q, -n)
		if err != nil {
			return Interval{}, &QualityError{q, n}
		}
		return i.Negate(), nil
	}
	if n == 0 {
		return Interval{}, &QualityError{q, n}
	}
	d := int(n) - 1
	isPerfect := isPerfectClass(d)
	var dev int
	switch q.kind {
	case perfect:
		if !isPerfect {
			return Interval{}, &QualityError{q, n}
		}
	case major:
		if isPerfect {
			return Interval{}, &QualityError{q, n}
		}
	case minor:
		if isPerfect {
			return Interval{}, &QualityError{q, n}
		}
		dev = -1
	case augmented:
		if q.n < 1 {
			return Interval{}, &QualityError{q, n}
		}
		dev = q.n
	case diminished:
		if q.n < 1 {
			return Interval{}, &QualityError{q, n}
		}
		dev = -q.n
		if !isPerfect {
			dev--
		}
	}
	return Interval{a: naturalChromatic(d) + dev, d: d}, nil
}

// MustInterval is like MakeInterval but panics on error.
func MustInterval(q Quality, n Number) Interval {
	i, err := MakeInterval(q, n)
	must(err)
	return i
}

// Quality derives the quality of i from its deviation from the natural
// interval with the same number. Descending intervals have the quality of
// their ascending counterpart.
func (i Interval) Quality() Quality {
	if i.d < 0 {
		return i.Negate().Quality()
	}
	dev := i.a - naturalChromatic(i.d)
	if isPerfectClass(i.d) {
		switch {
		case dev == 0:
			return Perfect
		case dev > 0:
			return Augmented(dev)
		}
		return Diminished(-dev)
	}
	switch {
	case dev == 0:
		return Major
	case dev == -1:
		return Minor
	case dev > 0:
		return Augmented(dev)
	}
	return Diminished(-dev - 1)
}

// return true if d diatonic steps is a unison, fourth or fifth class
func isPerfectClass(d int) bool {
	switch intPosMod(d, diatonicOctave) {
	case 0, 3, 4:
		return true
	}
	return false
}

var intervalRegexp = regexp.MustCompile(`^(-?)(P|M|m|A+|d+)(\d+)$`)

// ParseInterval converts a short interval name such as "M3", "-P8" or "AA4"
// into an interval.
func ParseInterval(s string) (Interval, error) {
	m := intervalRegexp.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Interval{}, fmt.Errorf("invalid interval syntax: %q", s)
	}
	n, err := strconv.Atoi(m[3])
	if err != nil {
		return Interval{}, fmt.Errorf("invalid interval number: %q", s)
	}
	var q Quality
	switch c := m[2]; c[0] {
	case 'P':
		q = Perfect
	case 'M':
		q = Major
	case 'm':
		q = Minor
	case 'A':
		q = Augmented(len(c))
	case 'd':
		q = Diminished(len(c))
	}
	if m[1] == "-" {
		n = -n
	}
	return MakeInterval(q, Number(n))
}

func must(err error) {
	if err != nil {
		panic(err.Error())
	}
}
