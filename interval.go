// Package pitch models intervals and pitches as exact values and maps them to
// frequencies through tunings defined by two reference intervals.
package pitch

// Interval is an element of the free abelian group on two generators: the
// augmented unison (one chromatic step) and the diminished second (one
// diatonic step). The pair is the only stored state; everything else is a
// projection of it.
type Interval struct {
	a int // chromatic steps
	d int // diatonic steps
}

const (
	diatonicOctave  = 7
	chromaticOctave = 12
)

// chromatic offset of each diatonic step of the natural (C major) scale
var naturalSteps = [diatonicOctave]int{0, 2, 4, 5, 7, 9, 11}

// Common intervals.
var (
	PerfectUnison    = Interval{}
	AugmentedUnison  = Interval{1, 0}
	DiminishedSecond = Interval{0, 1}
	MinorSecond      = Interval{1, 1}
	MajorSecond      = Interval{2, 1}
	AugmentedSecond  = Interval{3, 1}
	DiminishedThird  = Interval{2, 2}
	MinorThird       = Interval{3, 2}
	MajorThird       = Interval{4, 2}
	DiminishedFourth = Interval{4, 3}
	PerfectFourth    = Interval{5, 3}
	AugmentedFourth  = Interval{6, 3}
	DiminishedFifth  = Interval{6, 4}
	PerfectFifth     = Interval{7, 4}
	AugmentedFifth   = Interval{8, 4}
	MinorSixth       = Interval{8, 5}
	MajorSixth       = Interval{9, 5}
	MinorSeventh     = Interval{10, 6}
	MajorSeventh     = Interval{11, 6}
	PerfectOctave    = Interval{12, 7}
	PerfectTwelfth   = Interval{19, 11}
	PerfectFifteenth = Interval{24, 14}
)

// NewInterval returns the interval made of the given number of chromatic
// steps (augmented unisons) and diatonic steps (diminished seconds). Every
// pair is a valid interval.
func NewInterval(chromatic, diatonic int) Interval {
	return Interval{a: chromatic, d: diatonic}
}

// ChromaticSteps returns the augmented unison coordinate of i.
func (i Interval) ChromaticSteps() int {
	return i.a
}

// DiatonicSteps returns the diminished second coordinate of i.
func (i Interval) DiatonicSteps() int {
	return i.d
}

// Add returns the interval spanned by i followed by o.
func (i Interval) Add(o Interval) Interval {
	return Interval{i.a + o.a, i.d + o.d}
}

// Sub returns i followed by the inversion of o.
func (i Interval) Sub(o Interval) Interval {
	return i.Add(o.Negate())
}

// Negate returns the descending version of i (not an octave inversion).
func (i Interval) Negate() Interval {
	return i.Scale(-1)
}

// Scale returns an interval k times the size of i.
func (i Interval) Scale(k int) Interval {
	return Interval{i.a * k, i.d * k}
}

// Semitones collapses i to its size in twelve-tone equal semitones. This
// forgets spelling: a diminished fourth and a major third both have 4.
func (i Interval) Semitones() int {
	return i.a
}

// Number returns the conventional interval number: 1 for a unison, 3 for a
// third, -3 for a descending third. It is never 0.
func (i Interval) Number() Number {
	if i.d < 0 {
		return Number(i.d - 1)
	}
	return Number(i.d + 1)
}

// Octaves returns the number of whole octaves in i, rounding down, so that
// Simple always spans zero to six diatonic steps.
func (i Interval) Octaves() int {
	return floorDiv(i.d, diatonicOctave)
}

// Simple returns i reduced to within one octave.
func (i Interval) Simple() Interval {
	return i.Sub(PerfectOctave.Scale(i.Octaves()))
}

// Steps returns the semitone size of the simple part of i.
func (i Interval) Steps() int {
	return i.Simple().Semitones()
}

// IsNegative reports whether i is ordered below the unison.
func (i Interval) IsNegative() bool {
	return i.Less(PerfectUnison)
}

// IsPositive reports whether i is ordered above the unison.
func (i Interval) IsPositive() bool {
	return PerfectUnison.Less(i)
}

// Compare orders intervals by diatonic steps, then chromatic steps. It returns
// -1, 0 or 1.
func (i Interval) Compare(o Interval) int {
	switch {
	case i.d < o.d:
		return -1
	case i.d > o.d:
		return 1
	case i.a < o.a:
		return -1
	case i.a > o.a:
		return 1
	}
	return 0
}

// Less reports whether i is ordered before o.
func (i Interval) Less(o Interval) bool {
	return i.Compare(o) < 0
}

// String returns the short name of i, e.g. "M3", "P8", "-m3", "AA4".
func (i Interval) String() string {
	if i.d < 0 {
		return "-" + i.Negate().String()
	}
	return i.Quality().abbrev() + i.Number().String()
}

// chromatic size of the natural interval spanning d diatonic steps
func naturalChromatic(d int) int {
	return chromaticOctave*floorDiv(d, diatonicOctave) + naturalSteps[intPosMod(d, diatonicOctave)]
}

// integer division rounding toward negative infinity
func floorDiv(x, y int) int {
	q := x / y
	if (x%y != 0) && ((x < 0) != (y < 0)) {
		q--
	}
	return q
}

// modulo where result is always in the range [0, y)
func intPosMod(x, y int) int {
	x %= y
	if x < 0 {
		x += y
	}
	return x
}
