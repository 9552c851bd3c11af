package main

import (
	"fmt"
	"io"

	pitch "github.com/hanshoglund/music-pitch"
)

// one line of output
type row struct {
	pitch    pitch.Pitch
	interval pitch.Interval
	ratio    float64
	freq     pitch.Hertz
}

// return the chromatic scale from tonic up to its octave, spelled with sp
func chromaticSteps(sp pitch.Spelling) []pitch.Interval {
	steps := make([]pitch.Interval, 13)
	for i := range steps {
		steps[i] = sp.Spell(pitch.NewInterval(i, 0))
	}
	return steps
}

// tune intervals above tonic
func makeRows(in pitch.Intonation, tonic pitch.Pitch, intervals []pitch.Interval) []row {
	rows := make([]row, len(intervals))
	for i, iv := range intervals {
		p := tonic.Add(iv)
		rows[i] = row{
			pitch:    p,
			interval: iv,
			ratio:    in.Tuning().Ratio(iv),
			freq:     in.Frequency(p),
		}
	}
	return rows
}

// write rows as an aligned table
func writeTable(w io.Writer, rows []row) error {
	if _, err := fmt.Fprintf(w, "%-7s %-5s %-11s %-11s %s\n",
		"pitch", "int", "ratio", "cents", "frequency"); err != nil {
		return err
	}
	for _, r := range rows {
		_, err := fmt.Fprintf(w, "%-7v %-5v %-11.6f %-11.3f %.3f Hz\n",
			r.pitch, r.interval, r.ratio, float64(pitch.Hertz(r.ratio).Cents()), float64(r.freq))
		if err != nil {
			return err
		}
	}
	return nil
}
