package main

import (
	"fmt"
	"io"

	pitch "github.com/hanshoglund/music-pitch"
	"gopkg.in/yaml.v3"
)

// custom tuning as written in a tunings file
type tuningDef struct {
	Name  string   `yaml:"name"`
	Basis []refDef `yaml:"basis"`
}

type refDef struct {
	Interval string `yaml:"interval"`
	Ratio    string `yaml:"ratio"`
}

// decode a YAML list of tuning definitions
func readTunings(r io.Reader) ([]pitch.Tuning, error) {
	var defs []tuningDef
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&defs); err != nil && err != io.EOF {
		return nil, err
	}
	tunings := make([]pitch.Tuning, 0, len(defs))
	for _, def := range defs {
		t, err := def.tuning()
		if err != nil {
			return nil, err
		}
		tunings = append(tunings, t)
	}
	return tunings, nil
}

// solve the tuning described by def
func (def tuningDef) tuning() (pitch.Tuning, error) {
	if len(def.Basis) != 2 {
		return pitch.Tuning{}, fmt.Errorf("tuning %q: need 2 reference intervals, got %d",
			def.Name, len(def.Basis))
	}
	var refs [2]pitch.Ref
	for i, rd := range def.Basis {
		iv, err := pitch.ParseInterval(rd.Interval)
		if err != nil {
			return pitch.Tuning{}, fmt.Errorf("tuning %q: %w", def.Name, err)
		}
		r, err := pitch.ParseRatio(rd.Ratio)
		if err != nil {
			return pitch.Tuning{}, fmt.Errorf("tuning %q: %w", def.Name, err)
		}
		refs[i] = pitch.Ref{Interval: iv, Ratio: r}
	}
	t, err := pitch.NewTuning(def.Name, refs[0], refs[1])
	if err != nil {
		return pitch.Tuning{}, fmt.Errorf("tuning %q: %w", def.Name, err)
	}
	return t, nil
}

// find a tuning by name among custom and named tunings. "edo" names such as
// "22edo" build an equal temperament.
func findTuning(name string, custom []pitch.Tuning) (pitch.Tuning, error) {
	for _, t := range custom {
		if t.Name() == name {
			return t, nil
		}
	}
	if t, ok := pitch.LookupTuning(name); ok {
		return t, nil
	}
	var n int
	if _, err := fmt.Sscanf(name, "%dedo", &n); err == nil {
		return pitch.EqualTemperament(n)
	}
	return pitch.Tuning{}, fmt.Errorf("no tuning named %q", name)
}
