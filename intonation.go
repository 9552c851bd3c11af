package pitch

// Intonation maps pitches to absolute frequencies by anchoring a tuning at a
// single pitch.
type Intonation struct {
	anchor Pitch
	freq   Hertz
	tuning Tuning
}

// A4 is the usual reference pitch.
var A4 = NewPitch(A, Natural, 4)

// StandardIntonation is twelve-tone equal temperament with A4 at 440 Hz.
var StandardIntonation = NewIntonation(A4, 440, TwelveToneEqual)

// NewIntonation returns the intonation sounding anchor at freq.
func NewIntonation(anchor Pitch, freq Hertz, t Tuning) Intonation {
	return Intonation{anchor: anchor, freq: freq, tuning: t}
}

// Frequency returns the frequency of p.
func (in Intonation) Frequency(p Pitch) Hertz {
	return in.freq.Compose(Hertz(in.tuning.Ratio(p.Sub(in.anchor))))
}

// Anchor returns the anchor pitch and its frequency.
func (in Intonation) Anchor() (Pitch, Hertz) {
	return in.anchor, in.freq
}

// Tuning returns the tuning applied from the anchor.
func (in Intonation) Tuning() Tuning {
	return in.tuning
}
