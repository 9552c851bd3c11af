package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"reflect"
	"strconv"
)

type settings struct {
	Tuning            string
	Anchor            string
	Frequency         float64
	Tonic             string
	Spelling          string
	MidiOutPortNumber int
	BendRange         int
	Velocity          int
	NoteMs            int
}

// return settings with built-in defaults
func defaultSettings() *settings {
	return &settings{
		Tuning:            "twelveToneEqual",
		Anchor:            "A4",
		Frequency:         440,
		Tonic:             "C4",
		Spelling:          "sharps",
		MidiOutPortNumber: -1,
		BendRange:         2,
		Velocity:          100,
		NoteMs:            400,
	}
}

// load settings from a config file over the defaults
func loadSettings(path string, warn func(string)) *settings {
	s := defaultSettings()
	if records, err := readCSV(path); err == nil {
		s.applyRecords(records, warn)
	} else {
		warn(err.Error())
	}
	return s
}

// apply CSV records
func (s *settings) applyRecords(records [][]string, warn func(string)) {
	v := reflect.ValueOf(s).Elem()
	for _, rec := range records {
		success := false
		if len(rec) == 2 {
			if field := v.FieldByName(rec[0]); field.IsValid() {
				switch field.Kind() {
				case reflect.Float64:
					if f, err := strconv.ParseFloat(rec[1], 64); err == nil {
						field.SetFloat(f)
						success = true
					}
				case reflect.Int:
					if i, err := strconv.Atoi(rec[1]); err == nil {
						field.SetInt(int64(i))
						success = true
					}
				case reflect.String:
					field.SetString(rec[1])
					success = true
				}
			}
		}
		if !success {
			warn(fmt.Sprintf("bad settings record: %v", rec))
		}
	}
}

// read records from a CSV file
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.Comment = '#'
	r.FieldsPerRecord = -1
	return r.ReadAll()
}
