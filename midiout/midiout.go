// Package midiout plays intoned pitches on MIDI instruments, using pitch bend
// to reach frequencies between the keys of a twelve-tone keyboard.
package midiout

import (
	"math"

	pitch "github.com/hanshoglund/music-pitch"
	"gitlab.com/gomidi/midi/writer"
)

const (
	DefaultBendRange = 2 // semitones, the General MIDI default
	DefaultVelocity  = 100
	DefaultTicks     = 960 // ticks per note in exported files
	DefaultBPM       = 120

	referenceKey  = 69 // A4
	referenceFreq = 440
	bendUnits     = 8192
)

// Note returns the MIDI key nearest to h, and the pitch wheel value required
// to reach h from that key with the given bend range in semitones. A range
// that is not positive is treated as DefaultBendRange.
func Note(h pitch.Hertz, bendRange float64) (uint8, int16) {
	if !(bendRange > 0) {
		bendRange = DefaultBendRange
	}
	p := referenceKey + 12*math.Log2(float64(h)/referenceFreq)
	note := uint8(math.Round(math.Max(0, math.Min(127, p))))
	bend := math.Round((p - float64(note)) * bendUnits / bendRange)
	bend = math.Max(-bendUnits, math.Min(bendUnits-1, bend))
	return note, int16(bend)
}

// SetBendRange sends the "pitch bend sensitivity" RPN on the writer's current
// channel.
func SetBendRange(wr writer.ChannelWriter, semitones uint8) error {
	return writer.RPN(wr, 0, 0, semitones, 0)
}

// Send writes the pitch bend and note on messages that sound p under in, and
// returns the key that was pressed.
func Send(wr writer.ChannelWriter, in pitch.Intonation, p pitch.Pitch, velocity uint8, bendRange float64) (uint8, error) {
	note, bend := Note(in.Frequency(p), bendRange)
	if err := writer.Pitchbend(wr, bend); err != nil {
		return note, err
	}
	return note, writer.NoteOn(wr, note, velocity)
}

// Release writes the note off message for a key returned by Send.
func Release(wr writer.ChannelWriter, note uint8) error {
	return writer.NoteOff(wr, note)
}

// Options control how pitches are written to a standard MIDI file. Zero
// values select the defaults.
type Options struct {
	Name      string
	Channel   uint8
	Velocity  uint8
	BendRange uint8
	Ticks     uint32 // duration of each note
	BPM       float64
}

// fill in zero values
func (o Options) withDefaults() Options {
	if o.Velocity == 0 {
		o.Velocity = DefaultVelocity
	}
	if o.BendRange == 0 {
		o.BendRange = DefaultBendRange
	}
	if o.Ticks == 0 {
		o.Ticks = DefaultTicks
	}
	if o.BPM == 0 {
		o.BPM = DefaultBPM
	}
	return o
}

// WriteSMF exports pitches as a sequence of notes in a single-track standard
// MIDI file.
func WriteSMF(path string, in pitch.Intonation, pitches []pitch.Pitch, opts Options) error {
	opts = opts.withDefaults()
	return writer.WriteSMF(path, 1, func(wr *writer.SMF) error {
		if opts.Name != "" {
			if err := writer.TrackSequenceName(wr, opts.Name); err != nil {
				return err
			}
		}
		if err := writer.TempoBPM(wr, opts.BPM); err != nil {
			return err
		}
		wr.SetChannel(opts.Channel)
		if err := SetBendRange(wr, opts.BendRange); err != nil {
			return err
		}
		for _, p := range pitches {
			note, err := Send(wr, in, p, opts.Velocity, float64(opts.BendRange))
			if err != nil {
				return err
			}
			wr.SetDelta(opts.Ticks)
			if err := Release(wr, note); err != nil {
				return err
			}
		}
		return writer.EndOfTrack(wr)
	})
}
