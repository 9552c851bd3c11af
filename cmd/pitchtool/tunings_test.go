package main

import (
	"math"
	"strings"
	"testing"

	pitch "github.com/hanshoglund/music-pitch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tuningsYAML = `
- name: septimal
  basis:
    - interval: P8
      ratio: "2"
    - interval: m7
      ratio: "7/4"
- name: third-comma
  basis:
    - {interval: P8, ratio: "2/1"}
    - {interval: m3, ratio: "6/5"}
`

func TestReadTunings(t *testing.T) {
	tunings, err := readTunings(strings.NewReader(tuningsYAML))
	require.NoError(t, err)
	require.Len(t, tunings, 2)
	assert.Equal(t, "septimal", tunings[0].Name())
	assert.Equal(t, 1.75, tunings[0].Ratio(pitch.MinorSeventh))
	assert.Equal(t, 1.2, tunings[1].Ratio(pitch.MinorThird))
	assert.InDelta(t, 2.0, tunings[1].Ratio(pitch.PerfectOctave), 1e-12)
}

func TestReadTuningsErrors(t *testing.T) {
	for _, in := range []string{
		"- name: x\n  basis: [{interval: P8, ratio: \"2\"}]\n",
		"- name: x\n  basis: [{interval: P8, ratio: \"2\"}, {interval: m5, ratio: \"3/2\"}]\n",
		"- name: x\n  basis: [{interval: P8, ratio: \"2\"}, {interval: P5, ratio: \"y\"}]\n",
		"- name: x\n  basis: [{interval: P5, ratio: \"3/2\"}, {interval: M9, ratio: \"9/4\"}]\n",
		"name: [",
		"- name: x\n  refs: [{interval: P8, ratio: \"2\"}, {interval: P5, ratio: \"3/2\"}]\n",
		"- name: x\n  basis: [{interval: P8, ratio: \"2\"}, {interval: P5, ration: \"3/2\"}]\n",
	} {
		_, err := readTunings(strings.NewReader(in))
		assert.Error(t, err, in)
	}
	tunings, err := readTunings(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, tunings)
}

func TestFindTuning(t *testing.T) {
	tunings, err := readTunings(strings.NewReader(tuningsYAML))
	require.NoError(t, err)
	tn, err := findTuning("septimal", tunings)
	require.NoError(t, err)
	assert.Equal(t, tunings[0], tn)
	tn, err = findTuning("pythagorean", tunings)
	require.NoError(t, err)
	assert.Equal(t, pitch.Pythagorean, tn)
	tn, err = findTuning("22edo", nil)
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(2, 13.0/22), tn.Ratio(pitch.PerfectFifth), 1e-9)
	_, err = findTuning("14edo", nil)
	assert.Error(t, err)
	_, err = findTuning("werckmeister", nil)
	assert.Error(t, err)
}

func TestReadTuningsUnknownKey(t *testing.T) {
	_, err := readTunings(strings.NewReader("- name: x\n  refs: [{interval: P8, ratio: \"2\"}]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refs")
}
