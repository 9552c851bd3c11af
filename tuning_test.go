package pitch

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPythagorean(t *testing.T) {
	assert.Equal(t, 1.5, Pythagorean.Ratio(PerfectFifth))
	assert.Equal(t, 2.0, Pythagorean.Ratio(PerfectOctave))
	assert.InDelta(t, 81.0/64, Pythagorean.Ratio(MajorThird), 1e-12)
	assert.InDelta(t, 256.0/243, Pythagorean.Ratio(MinorSecond), 1e-12)
	assert.InDelta(t, 4.0/3, Pythagorean.Ratio(PerfectFourth), 1e-12)
	assert.InDelta(t, 3.0, Pythagorean.Ratio(PerfectTwelfth), 1e-12)
}

func TestMeantones(t *testing.T) {
	assert.Equal(t, 1.25, QuarterCommaMeantone.Ratio(MajorThird))
	assert.InDelta(t, math.Pow(5, 0.25), QuarterCommaMeantone.Ratio(PerfectFifth), 1e-12)
	assert.InDelta(t, 10.0, SchismaticMeantone.Ratio(PerfectFourth.Scale(8)), 1e-9)
	assert.InDelta(t, math.Pow(10, 1.0/8), SchismaticMeantone.Ratio(PerfectFourth), 1e-12)
	assert.InDelta(t, 2.0, SchismaticMeantone.Ratio(PerfectOctave), 1e-12)
}

func TestEqualTunings(t *testing.T) {
	for _, c := range []struct {
		tuning Tuning
		n      int
	}{
		{FiveToneEqual, 5},
		{SevenToneEqual, 7},
		{TwelveToneEqual, 12},
		{NineteenToneEqual, 19},
		{ThirtyOneToneEqual, 31},
		{FiftyThreeToneEqual, 53},
	} {
		step := math.Pow(2, 1/float64(c.n))
		chromatic, diatonic := c.tuning.Generators()
		// both generators are whole numbers of steps
		for _, g := range []float64{chromatic, diatonic} {
			steps := math.Log(g) / math.Log(step)
			assert.InDelta(t, math.Round(steps), steps, 1e-9, c.tuning.Name())
		}
		// and together they reach a single step
		minor2 := c.tuning.Ratio(MinorSecond)
		reached := false
		for a := -c.n; a <= c.n && !reached; a++ {
			for d := -c.n; d <= c.n; d++ {
				if math.Abs(c.tuning.Ratio(NewInterval(a, d))-step) < 1e-9 {
					reached = true
					break
				}
			}
		}
		assert.True(t, reached, c.tuning.Name())
		assert.InDelta(t, 2.0, c.tuning.Ratio(PerfectOctave), 1e-9, c.tuning.Name())
		assert.True(t, minor2 > 0, c.tuning.Name())
	}
}

func TestTwelveToneEqualSemitone(t *testing.T) {
	semitone := TwelveToneEqual.Ratio(AugmentedUnison)
	assert.InDelta(t, 2.0, math.Pow(semitone, 12), 1e-9)
	assert.InDelta(t, semitone, TwelveToneEqual.Ratio(MinorSecond), 1e-12)
	assert.InDelta(t, 1.0, TwelveToneEqual.Ratio(DiminishedSecond), 1e-12)
	assert.InDelta(t, 700.0, float64(TwelveToneEqual.Cents(PerfectFifth)), 1e-9)
}

func TestGeneratorRatios(t *testing.T) {
	for _, tuning := range Tunings() {
		chromatic, diatonic := tuning.Generators()
		for _, i := range []Interval{MajorThird, PerfectFifth, MinorSeventh.Negate(), PerfectTwelfth} {
			expected := math.Pow(chromatic, float64(i.ChromaticSteps())) *
				math.Pow(diatonic, float64(i.DiatonicSteps()))
			assert.InEpsilon(t, expected, tuning.Ratio(i), 1e-9, "%s %v", tuning.Name(), i)
		}
	}
}

func TestSevenToneEqualSteps(t *testing.T) {
	assert.InDelta(t, 1.0, SevenToneEqual.Ratio(AugmentedUnison), 1e-12)
	assert.InDelta(t, math.Pow(2, 4.0/7), SevenToneEqual.Ratio(PerfectFifth), 1e-12)
	assert.InDelta(t, SevenToneEqual.Ratio(MajorThird), SevenToneEqual.Ratio(MinorThird), 1e-12)
}

func TestDegenerateBasis(t *testing.T) {
	for _, pair := range [][2]Interval{
		{PerfectFifth, PerfectFifth.Scale(2)},
		{PerfectOctave, PerfectOctave.Negate()},
		{MajorThird, MajorThird},
		{PerfectUnison, PerfectFifth},
	} {
		_, err := MakeBasis(pair[0], pair[1])
		var de *DegenerateBasisError
		if assert.True(t, errors.As(err, &de), "%v", pair) {
			assert.Equal(t, pair[0], de.First)
			assert.Equal(t, pair[1], de.Second)
			assert.Contains(t, de.Error(), pair[0].String())
		}
		_, err = SynTune(Ref{pair[0], 1.5}, Ref{pair[1], 2.25}, MajorThird)
		assert.True(t, errors.As(err, &de))
	}
	_, err := MakeBasis(PerfectFifth, PerfectTwelfth)
	assert.NoError(t, err)
}

func TestBasisCoordinates(t *testing.T) {
	b, err := MakeBasis(PerfectOctave, PerfectFifth)
	require.NoError(t, err)
	x, y := b.Coordinates(MajorSecond)
	assert.Equal(t, -1.0, x)
	assert.Equal(t, 2.0, y)
	b, err = MakeBasis(PerfectOctave, DiminishedSecond)
	require.NoError(t, err)
	x, y = b.Coordinates(AugmentedUnison)
	assert.InDelta(t, 1.0/12, x, 1e-15)
	assert.InDelta(t, -7.0/12, y, 1e-15)
}

func TestSynTune(t *testing.T) {
	r, err := SynTune(Ref{PerfectOctave, 2}, Ref{PerfectFifth, 1.5}, PerfectFourth)
	require.NoError(t, err)
	assert.InDelta(t, 4.0/3, r, 1e-12)
	_, err = SynTune(Ref{PerfectOctave, 2}, Ref{PerfectFifth, -1.5}, PerfectFourth)
	assert.Error(t, err)
}

func TestEqualTemperament(t *testing.T) {
	for _, n := range []int{5, 7, 12, 17, 19, 22, 31, 41, 43, 53} {
		tuning, err := EqualTemperament(n)
		require.NoError(t, err, n)
		assert.InDelta(t, 2.0, tuning.Ratio(PerfectOctave), 1e-9)
		fifth := math.Round(float64(n)*math.Log2(1.5)) / float64(n)
		assert.InDelta(t, math.Pow(2, fifth), tuning.Ratio(PerfectFifth), 1e-9, n)
	}
	for _, named := range []struct {
		tuning Tuning
		n      int
	}{{FiveToneEqual, 5}, {TwelveToneEqual, 12}, {NineteenToneEqual, 19}, {ThirtyOneToneEqual, 31}, {FiftyThreeToneEqual, 53}} {
		tuning, err := EqualTemperament(named.n)
		require.NoError(t, err)
		for _, i := range []Interval{AugmentedUnison, DiminishedSecond, MajorThird} {
			assert.InDelta(t, named.tuning.Ratio(i), tuning.Ratio(i), 1e-9, named.n)
		}
	}
	_, err := EqualTemperament(14)
	assert.Error(t, err)
	_, err = EqualTemperament(0)
	assert.Error(t, err)
}

func TestLookupTuning(t *testing.T) {
	tuning, ok := LookupTuning("quarterCommaMeantone")
	assert.True(t, ok)
	assert.Equal(t, QuarterCommaMeantone, tuning)
	_, ok = LookupTuning("kirnberger")
	assert.False(t, ok)
	assert.Len(t, Tunings(), 9)
}
