// Package midi turns voicings into standard MIDI files so a progression
// can be auditioned in any sequencer.
package midi

import (
	"fmt"

	"github.com/jsphweid/fretwork/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerQuarter = 960
	strumVelocity   = 90
	channel         = 0

	DefaultBPM = 100
)

// Notes lists the MIDI note sounding on each played string, low string
// first.
func Notes(v model.Voicing, inst model.Instrument) []uint8 {
	var res []uint8
	for i := 0; i < v.StringCount(); i++ {
		if f, ok := v.Position(i).SoundingFret(); ok {
			res = append(res, inst.MidiNote(i, f))
		}
	}
	return res
}

// RenderProgression builds a single-track SMF holding one whole-note bar
// per voicing, every played string struck together.
func RenderProgression(voicings []model.Voicing, inst model.Instrument, bpm float64) (*smf.SMF, error) {
	if bpm <= 0 {
		bpm = DefaultBPM
	}

	s := smf.New()
	clock := smf.MetricTicks(ticksPerQuarter)
	s.TimeFormat = clock

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(bpm))
	for _, v := range voicings {
		if v.StringCount() != inst.StringCount() {
			return nil, fmt.Errorf("voicing has %v strings but instrument has %v",
				v.StringCount(), inst.StringCount())
		}
		notes := Notes(v, inst)
		for _, n := range notes {
			tr.Add(0, midi.NoteOn(channel, n, strumVelocity))
		}
		for i, n := range notes {
			var delta uint32
			if i == 0 {
				delta = ticksPerQuarter * 4
			}
			tr.Add(delta, midi.NoteOff(channel, n))
		}
	}
	tr.Close(0)
	s.Add(tr)
	return s, nil
}
