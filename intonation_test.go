package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardIntonation(t *testing.T) {
	assert.Equal(t, Hertz(440), StandardIntonation.Frequency(A4))
	assert.InDelta(t, 880.0, float64(StandardIntonation.Frequency(A4.Add(PerfectOctave))), 1e-9)
	assert.InDelta(t, 220.0, float64(StandardIntonation.Frequency(NewPitch(A, Natural, 3))), 1e-9)
	assert.InDelta(t, 261.6255653, float64(StandardIntonation.Frequency(MiddleC)), 1e-6)
	// enharmonics coincide in twelve-tone equal temperament
	assert.InDelta(t,
		float64(StandardIntonation.Frequency(NewPitch(G, Sharp, 4))),
		float64(StandardIntonation.Frequency(NewPitch(A, Flat, 4))), 1e-9)
	p, f := StandardIntonation.Anchor()
	assert.Equal(t, A4, p)
	assert.Equal(t, Hertz(440), f)
	assert.Equal(t, TwelveToneEqual, StandardIntonation.Tuning())
}

func TestPythagoreanIntonation(t *testing.T) {
	in := NewIntonation(NewPitch(D, Natural, 4), 294, Pythagorean)
	assert.Equal(t, Hertz(441), in.Frequency(A4))
	assert.InDelta(t, 294*4.0/3, float64(in.Frequency(NewPitch(G, Natural, 4))), 1e-9)
	// the pythagorean comma separates enharmonics
	gs := in.Frequency(NewPitch(G, Sharp, 4))
	ab := in.Frequency(NewPitch(A, Flat, 4))
	assert.InDelta(t, 23.46, float64(gs.Cents()-ab.Cents()), 0.01)
}
