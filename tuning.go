package pitch

import (
	"fmt"
	"math"
)

// Ref pairs a reference interval with the frequency ratio it should sound at.
type Ref struct {
	Interval Interval
	Ratio    float64
}

// DegenerateBasisError is returned when two reference intervals are collinear
// and so cannot be solved for the ratios of both generators.
type DegenerateBasisError struct {
	First, Second Interval
}

func (e *DegenerateBasisError) Error() string {
	return fmt.Sprintf("degenerate basis: %v and %v are linearly dependent", e.First, e.Second)
}

// Basis is a pair of linearly independent intervals that spans the interval
// group over the rationals.
type Basis struct {
	first, second Interval
	det           int
}

// MakeBasis returns the basis formed by i1 and i2, or a *DegenerateBasisError
// if they are collinear.
func MakeBasis(i1, i2 Interval) (Basis, error) {
	det := i1.a*i2.d - i2.a*i1.d
	if det == 0 {
		return Basis{}, &DegenerateBasisError{i1, i2}
	}
	return Basis{first: i1, second: i2, det: det}, nil
}

// Coordinates expresses i as x*first + y*second. The coordinates are rational
// and need not be integers.
func (b Basis) Coordinates(i Interval) (x, y float64) {
	det := float64(b.det)
	x = float64(i.a*b.second.d-b.second.a*i.d) / det
	y = float64(b.first.a*i.d-i.a*b.first.d) / det
	return x, y
}

// Tuning maps intervals to frequency ratios. It is fixed by two reference
// intervals and the ratios they sound at.
type Tuning struct {
	name   string
	basis  Basis
	r1, r2 float64
}

// NewTuning solves a tuning from two reference pairs.
func NewTuning(name string, r1, r2 Ref) (Tuning, error) {
	b, err := MakeBasis(r1.Interval, r2.Interval)
	if err != nil {
		return Tuning{}, err
	}
	for _, r := range []Ref{r1, r2} {
		if !(r.Ratio > 0) || math.IsInf(r.Ratio, 0) {
			return Tuning{}, fmt.Errorf("tuning %s: ratio %v for %v is not a positive number",
				name, r.Ratio, r.Interval)
		}
	}
	return Tuning{name: name, basis: b, r1: r1.Ratio, r2: r2.Ratio}, nil
}

// SynTune returns the ratio of i in the tuning defined by r1 and r2.
func SynTune(r1, r2 Ref, i Interval) (float64, error) {
	t, err := NewTuning("", r1, r2)
	if err != nil {
		return 0, err
	}
	return t.Ratio(i), nil
}

// Name returns the name the tuning was created with.
func (t Tuning) Name() string {
	return t.name
}

// Refs returns the reference pairs of t.
func (t Tuning) Refs() (Ref, Ref) {
	return Ref{t.basis.first, t.r1}, Ref{t.basis.second, t.r2}
}

// Ratio returns the frequency ratio of i.
func (t Tuning) Ratio(i Interval) float64 {
	x, y := t.basis.Coordinates(i)
	return math.Pow(t.r1, x) * math.Pow(t.r2, y)
}

// Generators returns the ratios of the augmented unison and the diminished
// second. The ratio of any interval (a, d) is chromatic^a * diatonic^d.
func (t Tuning) Generators() (chromatic, diatonic float64) {
	return t.Ratio(AugmentedUnison), t.Ratio(DiminishedSecond)
}

// Cents returns the size of i in cents.
func (t Tuning) Cents(i Interval) Cents {
	return Hertz(t.Ratio(i)).Cents()
}

func (t Tuning) String() string {
	return t.name
}

func mustTuning(name string, i1 Interval, r1 float64, i2 Interval, r2 float64) Tuning {
	t, err := NewTuning(name, Ref{i1, r1}, Ref{i2, r2})
	must(err)
	return t
}

// Named tunings.
var (
	Pythagorean          = mustTuning("pythagorean", PerfectOctave, 2, PerfectFifth, 3.0/2)
	QuarterCommaMeantone = mustTuning("quarterCommaMeantone", PerfectOctave, 2, MajorThird, 5.0/4)
	SchismaticMeantone   = mustTuning("schismaticMeantone", PerfectOctave, 2, PerfectFourth.Scale(8), 10)

	FiveToneEqual       = mustTuning("fiveToneEqual", PerfectOctave, 2, MinorSecond, 1)
	SevenToneEqual      = mustTuning("sevenToneEqual", PerfectOctave, 2, AugmentedUnison, 1)
	TwelveToneEqual     = mustTuning("twelveToneEqual", PerfectOctave, 2, DiminishedSecond, 1)
	NineteenToneEqual   = mustTuning("nineteenToneEqual", PerfectOctave, 2, DiminishedSecond.Sub(AugmentedUnison), 1)
	ThirtyOneToneEqual  = mustTuning("thirtyOneToneEqual", PerfectOctave, 2, DiminishedSecond.Scale(2).Sub(AugmentedUnison), 1)
	FiftyThreeToneEqual = mustTuning("fiftyThreeToneEqual", PerfectOctave, 2, AugmentedUnison.Add(DiminishedSecond.Scale(5)), 1)
)

// Tunings returns the named tunings.
func Tunings() []Tuning {
	return []Tuning{
		Pythagorean,
		QuarterCommaMeantone,
		SchismaticMeantone,
		FiveToneEqual,
		SevenToneEqual,
		TwelveToneEqual,
		NineteenToneEqual,
		ThirtyOneToneEqual,
		FiftyThreeToneEqual,
	}
}

// LookupTuning returns the named tuning called name, if any.
func LookupTuning(name string) (Tuning, bool) {
	for _, t := range Tunings() {
		if t.name == name {
			return t, true
		}
	}
	return Tuning{}, false
}

// EqualTemperament returns the tuning dividing the octave into n equal steps,
// mapping the fifth to its nearest step. It fails when that mapping cannot
// reach every step from the diatonic generators.
func EqualTemperament(n int) (Tuning, error) {
	if n < 1 {
		return Tuning{}, fmt.Errorf("invalid equal division %d", n)
	}
	fifth := int(math.Round(float64(n) * math.Log2(1.5)))
	// steps of each generator, from A1 = 7*P5 - 4*P8 and d2 = 7*P8 - 12*P5
	chromatic := 7*fifth - 4*n
	diatonic := 7*n - 12*fifth
	if gcd(chromatic, diatonic) != 1 {
		return Tuning{}, fmt.Errorf("%d-tone equal temperament is not generated by its fifth", n)
	}
	tempered := Interval{a: diatonic, d: -chromatic}
	return NewTuning(fmt.Sprintf("%d-tone equal", n),
		Ref{PerfectOctave, 2}, Ref{tempered, 1})
}

// greatest common divisor, always non-negative
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}
