package pitch

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pitch is a point in pitch space, stored as its interval from middle C (C4).
// Pitches form an affine space over intervals.
type Pitch struct {
	i Interval
}

// Accidental is a signed count of chromatic alterations.
type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// Add combines two alterations.
func (a Accidental) Add(o Accidental) Accidental {
	return a + o
}

// Negate returns the opposite alteration.
func (a Accidental) Negate() Accidental {
	return -a
}

func (a Accidental) String() string {
	switch a {
	case Natural:
		return "natural"
	case Sharp:
		return "sharp"
	case Flat:
		return "flat"
	case DoubleSharp:
		return "doubleSharp"
	case DoubleFlat:
		return "doubleFlat"
	}
	if a > 0 {
		return fmt.Sprintf("sharp * %d", int(a))
	}
	return fmt.Sprintf("flat * %d", int(-a))
}

// symbol used in pitch names
func (a Accidental) symbol() string {
	if a < 0 {
		return strings.Repeat("b", int(-a))
	}
	return strings.Repeat("#", int(a))
}

// Name is a natural note name.
type Name int

const (
	C Name = iota
	D
	E
	F
	G
	A
	B
)

var nameStrings = [diatonicOctave]string{"C", "D", "E", "F", "G", "A", "B"}

func (n Name) String() string {
	return nameStrings[intPosMod(int(n), diatonicOctave)]
}

const originOctave = 4

// MiddleC is the origin of pitch space.
var MiddleC = Pitch{}

// NewPitch returns the pitch with the given name, alteration and octave number,
// where octave 4 starts at middle C.
func NewPitch(n Name, acc Accidental, octave int) Pitch {
	d := int(n) + diatonicOctave*(octave-originOctave)
	return Pitch{Interval{a: naturalChromatic(d) + int(acc), d: d}}
}

// PitchAt returns the pitch reached from middle C by i.
func PitchAt(i Interval) Pitch {
	return Pitch{i}
}

// Offset returns the interval from middle C to p.
func (p Pitch) Offset() Interval {
	return p.i
}

// Add transposes p by i.
func (p Pitch) Add(i Interval) Pitch {
	return Pitch{p.i.Add(i)}
}

// Sub returns the interval from o to p.
func (p Pitch) Sub(o Pitch) Interval {
	return p.i.Sub(o.i)
}

// Sharpen raises p by one chromatic step, keeping its name.
func (p Pitch) Sharpen() Pitch {
	return p.Add(AugmentedUnison)
}

// Flatten lowers p by one chromatic step, keeping its name.
func (p Pitch) Flatten() Pitch {
	return p.Add(AugmentedUnison.Negate())
}

// Name returns the natural name of p.
func (p Pitch) Name() Name {
	return Name(intPosMod(p.i.d, diatonicOctave))
}

// Accidental returns the alteration of p from its natural name.
func (p Pitch) Accidental() Accidental {
	return Accidental(p.i.a - naturalChromatic(p.i.d))
}

// Octave returns the octave number of p, following its spelling: Cb4 is in
// octave 4 even though it sounds as B3.
func (p Pitch) Octave() int {
	return originOctave + floorDiv(p.i.d, diatonicOctave)
}

// Compare orders pitches the same way as their offsets.
func (p Pitch) Compare(o Pitch) int {
	return p.i.Compare(o.i)
}

// String returns names such as "C4", "F#3" or "Bbb2".
func (p Pitch) String() string {
	return fmt.Sprintf("%v%s%d", p.Name(), p.Accidental().symbol(), p.Octave())
}

var pitchRegexp = regexp.MustCompile(`^([A-G])(#*|b*)(-?\d+)$`)

// ParsePitch converts names such as "A4", "F#3" or "Bbb-1" into a pitch.
func ParsePitch(s string) (Pitch, error) {
	m := pitchRegexp.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Pitch{}, fmt.Errorf("invalid pitch syntax: %q", s)
	}
	octave, err := strconv.Atoi(m[3])
	if err != nil {
		return Pitch{}, fmt.Errorf("invalid octave in pitch %q", s)
	}
	n := Name(strings.Index("CDEFGAB", m[1]))
	acc := Accidental(len(m[2]))
	if strings.HasPrefix(m[2], "b") {
		acc = -acc
	}
	return NewPitch(n, acc, octave), nil
}

// Spelling chooses a diatonic spelling for a semitone count.
type Spelling int

const (
	UsingSharps Spelling = iota
	UsingFlats
)

// diatonic step of each semitone within the octave
var (
	sharpSpelling = [chromaticOctave]int{0, 0, 1, 1, 2, 3, 3, 4, 4, 5, 5, 6}
	flatSpelling  = [chromaticOctave]int{0, 1, 1, 2, 2, 3, 4, 4, 5, 5, 6, 6}
)

// Spell returns the interval with the same semitone size as i, spelled with
// natural or sharpened (or flattened) steps only.
func (s Spelling) Spell(i Interval) Interval {
	semis := i.Semitones()
	steps := sharpSpelling
	if s == UsingFlats {
		steps = flatSpelling
	}
	d := diatonicOctave*floorDiv(semis, chromaticOctave) + steps[intPosMod(semis, chromaticOctave)]
	return Interval{a: semis, d: d}
}

// SpellPitch respells p relative to middle C.
func (s Spelling) SpellPitch(p Pitch) Pitch {
	return Pitch{s.Spell(p.i)}
}
