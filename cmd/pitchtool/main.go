// Command pitchtool prints, exports and auditions tunings.
//
//	pitchtool [flags] [interval...]
//
// With no intervals, it lists the chromatic scale above the tonic.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	pitch "github.com/hanshoglund/music-pitch"
	"github.com/hanshoglund/music-pitch/midiout"
	"github.com/spf13/pflag"
)

var logger *log.Logger

func main() {
	logger = log.New(os.Stderr, "", 0)

	var (
		settingsPath = pflag.StringP("config", "c", filepath.Join("config", "settings.csv"), "settings file")
		tuningName   = pflag.StringP("tuning", "t", "", "tuning name, e.g. pythagorean or 22edo")
		tuningsPath  = pflag.String("tunings", "", "YAML file of custom tunings")
		anchor       = pflag.String("anchor", "", "anchor pitch")
		freq         = pflag.Float64("freq", 0, "anchor frequency in Hz")
		tonic        = pflag.String("tonic", "", "first pitch of the table")
		flats        = pflag.Bool("flats", false, "spell with flats")
		sclPath      = pflag.String("scl", "", "export the table as a Scala file")
		midPath      = pflag.String("mid", "", "export the table as a MIDI file")
		port         = pflag.IntP("port", "p", -1, "MIDI output port to play the table on")
		list         = pflag.BoolP("list", "l", false, "list named tunings")
		debug        = pflag.Bool("debug", false, "dump resolved settings")
	)
	pflag.Parse()

	s := loadSettings(*settingsPath, func(msg string) { logger.Print(msg) })
	if *tuningName != "" {
		s.Tuning = *tuningName
	}
	if *anchor != "" {
		s.Anchor = *anchor
	}
	if *freq != 0 {
		s.Frequency = *freq
	}
	if *tonic != "" {
		s.Tonic = *tonic
	}
	if *flats {
		s.Spelling = "flats"
	}
	if *port >= 0 {
		s.MidiOutPortNumber = *port
	}
	if *debug {
		spew.Fdump(os.Stderr, s)
	}

	var custom []pitch.Tuning
	if *tuningsPath != "" {
		f, err := os.Open(*tuningsPath)
		if err != nil {
			logger.Fatalf("error opening tunings: %v", err)
		}
		custom, err = readTunings(f)
		f.Close()
		if err != nil {
			logger.Fatalf("error reading tunings: %v", err)
		}
	}
	if *list {
		for _, t := range append(pitch.Tunings(), custom...) {
			fmt.Println(t.Name())
		}
		return
	}

	in, tonicPitch, err := resolve(s, custom)
	if err != nil {
		logger.Fatal(err)
	}
	intervals, err := parseIntervals(pflag.Args())
	if err != nil {
		logger.Fatal(err)
	}
	if len(intervals) == 0 {
		sp := pitch.UsingSharps
		if s.Spelling == "flats" {
			sp = pitch.UsingFlats
		}
		intervals = chromaticSteps(sp)
	}
	rows := makeRows(in, tonicPitch, intervals)
	if err := writeTable(os.Stdout, rows); err != nil {
		logger.Fatal(err)
	}

	pitches := make([]pitch.Pitch, len(rows))
	for i, r := range rows {
		pitches[i] = r.pitch
	}
	if *sclPath != "" {
		if err := exportScale(*sclPath, in.Tuning(), intervals); err != nil {
			logger.Fatalf("error writing %s: %v", *sclPath, err)
		}
	}
	if *midPath != "" {
		err := midiout.WriteSMF(*midPath, in, pitches, midiout.Options{
			Name:      in.Tuning().Name(),
			Velocity:  uint8(s.Velocity),
			BendRange: uint8(s.BendRange),
		})
		if err != nil {
			logger.Fatalf("error writing %s: %v", *midPath, err)
		}
	}
	if s.MidiOutPortNumber >= 0 {
		if err := audition(s, in, pitches); err != nil {
			logger.Fatal(err)
		}
	}
}

// build the intonation and tonic named by s
func resolve(s *settings, custom []pitch.Tuning) (pitch.Intonation, pitch.Pitch, error) {
	t, err := findTuning(s.Tuning, custom)
	if err != nil {
		return pitch.Intonation{}, pitch.Pitch{}, err
	}
	anchor, err := pitch.ParsePitch(s.Anchor)
	if err != nil {
		return pitch.Intonation{}, pitch.Pitch{}, fmt.Errorf("anchor: %w", err)
	}
	tonic, err := pitch.ParsePitch(s.Tonic)
	if err != nil {
		return pitch.Intonation{}, pitch.Pitch{}, fmt.Errorf("tonic: %w", err)
	}
	if !(s.Frequency > 0) {
		return pitch.Intonation{}, pitch.Pitch{}, fmt.Errorf("anchor frequency %v is not positive", s.Frequency)
	}
	if s.BendRange < 1 || s.BendRange > 127 {
		return pitch.Intonation{}, pitch.Pitch{}, fmt.Errorf("bend range %d is outside 1-127", s.BendRange)
	}
	return pitch.NewIntonation(anchor, pitch.Hertz(s.Frequency), t), tonic, nil
}

// parse command line intervals
func parseIntervals(args []string) ([]pitch.Interval, error) {
	intervals := make([]pitch.Interval, len(args))
	for i, arg := range args {
		iv, err := pitch.ParseInterval(arg)
		if err != nil {
			return nil, err
		}
		intervals[i] = iv
	}
	return intervals, nil
}

// write the ascending, positive intervals as a Scala scale
func exportScale(path string, t pitch.Tuning, intervals []pitch.Interval) error {
	var steps []pitch.Interval
	for _, iv := range intervals {
		if iv.IsPositive() {
			steps = append(steps, iv)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	err = pitch.NewScale(t, t.Name(), steps).Write(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
