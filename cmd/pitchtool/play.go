package main

import (
	"fmt"
	"time"

	pitch "github.com/hanshoglund/music-pitch"
	"github.com/hanshoglund/music-pitch/midiout"
	"gitlab.com/gomidi/midi/writer"
	driver "gitlab.com/gomidi/rtmididrv"
)

// play pitches one after another on a MIDI output port
func audition(s *settings, in pitch.Intonation, pitches []pitch.Pitch) error {
	drv, err := driver.New()
	if err != nil {
		return err
	}
	defer drv.Close()
	outs, err := drv.Outs()
	if err != nil {
		return err
	}
	n := s.MidiOutPortNumber
	if n < 0 || n >= len(outs) {
		return fmt.Errorf("MIDI output port index %d out of range [%d, %d)", n, 0, len(outs))
	}
	out := outs[n]
	if err := out.Open(); err != nil {
		return err
	}
	defer out.Close()
	logger.Printf("playing on %v", out)

	wr := writer.New(out)
	wr.SetChannel(0)
	if err := midiout.SetBendRange(wr, uint8(s.BendRange)); err != nil {
		return err
	}
	for _, p := range pitches {
		note, err := midiout.Send(wr, in, p, uint8(s.Velocity), float64(s.BendRange))
		if err != nil {
			return err
		}
		time.Sleep(time.Millisecond * time.Duration(s.NoteMs))
		if err := midiout.Release(wr, note); err != nil {
			return err
		}
	}
	// reset pitch bend sensitivity to default
	return midiout.SetBendRange(wr, midiout.DefaultBendRange)
}
