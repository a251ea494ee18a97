package model

import "github.com/jsphweid/fretwork/theory"

// String is one course of a fretted instrument.
type String struct {
	Open    theory.PitchClass
	Octave  int
	MaxFret int
}

// Instrument is an ordered set of strings, index 0 = lowest pitch. Capo is
// a single offset applied uniformly to every string.
type Instrument struct {
	Strings []String
	Capo    int
}

func (i Instrument) StringCount() int {
	return len(i.Strings)
}

// SoundingPitchClass is the class heard at a fret: the open pitch raised by
// the fret, then by the capo.
func (i Instrument) SoundingPitchClass(stringIdx, fret int) theory.PitchClass {
	return i.Strings[stringIdx].Open.Transpose(fret + i.Capo)
}

// MidiNote is the MIDI note number sounding at a fret, capo included.
func (i Instrument) MidiNote(stringIdx, fret int) uint8 {
	s := i.Strings[stringIdx]
	return uint8((s.Octave+1)*12 + int(s.Open) + fret + i.Capo)
}

// StandardGuitar is a 6-string in standard tuning, low to high E2 A2 D3 G3
// B3 E4.
func StandardGuitar() Instrument {
	return Instrument{
		Strings: []String{
			{Open: theory.E, Octave: 2, MaxFret: 22},
			{Open: theory.A, Octave: 2, MaxFret: 22},
			{Open: theory.D, Octave: 3, MaxFret: 22},
			{Open: theory.G, Octave: 3, MaxFret: 22},
			{Open: theory.B, Octave: 3, MaxFret: 22},
			{Open: theory.E, Octave: 4, MaxFret: 22},
		},
	}
}
