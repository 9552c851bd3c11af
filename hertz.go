package pitch

import (
	"math"
	"strconv"
)

// Hertz is an absolute frequency, or a frequency ratio when composed with
// another Hertz value.
type Hertz float64

// Octaves is a logarithmic distance with base 2/1.
type Octaves float64

// Fifths is a logarithmic distance with base 3/2.
type Fifths float64

// Cents is a logarithmic distance of 1/1200 octave.
type Cents float64

const centsPerOctave = 1200

// Compose stacks two frequency ratios by multiplication.
func (h Hertz) Compose(o Hertz) Hertz {
	return h * o
}

// Octaves returns the distance of h from 1 Hz (or unity ratio) in octaves.
func (h Hertz) Octaves() Octaves {
	return Octaves(math.Log2(float64(h)))
}

// Fifths returns the distance of h from unity in pure fifths.
func (h Hertz) Fifths() Fifths {
	return Fifths(logBase(1.5, float64(h)))
}

// Cents returns the distance of h from unity in cents.
func (h Hertz) Cents() Cents {
	return Cents(centsPerOctave * math.Log2(float64(h)))
}

func (h Hertz) String() string {
	return formatFloat(float64(h)) + " Hz"
}

// Compose stacks two distances by addition.
func (o Octaves) Compose(x Octaves) Octaves {
	return o + x
}

// Frequency converts o back into a ratio.
func (o Octaves) Frequency() Hertz {
	return Hertz(math.Pow(2, float64(o)))
}

// Compose stacks two distances by addition.
func (f Fifths) Compose(x Fifths) Fifths {
	return f + x
}

// Frequency converts f back into a ratio.
func (f Fifths) Frequency() Hertz {
	return Hertz(math.Pow(1.5, float64(f)))
}

// Compose stacks two distances by addition.
func (c Cents) Compose(x Cents) Cents {
	return c + x
}

// Frequency converts c back into a ratio.
func (c Cents) Frequency() Hertz {
	return Hertz(math.Pow(2, float64(c)/centsPerOctave))
}

func (c Cents) String() string {
	return formatFloat(float64(c)) + " cents"
}

// logarithm of x in the given base
func logBase(base, x float64) float64 {
	return math.Log(x) / math.Log(base)
}

// shortest representation that parses back to the same float
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
