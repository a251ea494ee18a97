// Package capo suggests capo placements that turn a hard progression into
// easy open shapes. Shapes are scored with a fixed lookup rather than a
// full voicing search per offset; the coarse ordering is all the ranking
// needs and it keeps a 12-offset sweep cheap.
package capo

import (
	"sort"

	"github.com/jsphweid/fretwork/model"
	"github.com/jsphweid/fretwork/theory"
)

const DefaultMaxCapoFret = 12

// Suggest scores every capo offset 0..maxCapoFret for the progression and
// returns one suggestion per offset, easiest first. The sort is stable, so
// tied offsets stay in ascending fret order. Empty input yields nil.
func Suggest(chords []theory.Chord, inst model.Instrument, maxCapoFret int) []model.CapoSuggestion {
	if len(chords) == 0 {
		return nil
	}
	if maxCapoFret < 0 {
		maxCapoFret = 0
	}

	res := make([]model.CapoSuggestion, 0, maxCapoFret+1)
	for c := 0; c <= maxCapoFret; c++ {
		shapes := make([]theory.Chord, len(chords))
		var total float64
		for i, ch := range chords {
			// with the capo at fret c the hand fingers the shape c
			// semitones below the written chord
			shape := ch.Transpose(-c)
			shapes[i] = shape
			total += ShapeScore(shape)
		}
		res = append(res, model.CapoSuggestion{
			CapoFret: c,
			Shapes:   shapes,
			Original: chords,
			Score:    total,
		})
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Score < res[j].Score
	})
	return res
}

// ShapeScore rates how hard a fingered shape is: 1.0 for the curated open
// chords, 2.0 for the awkward-but-common ones, 3.0 for any other major or
// minor triad (an E- or A-shape barre), 4.0 for everything else.
func ShapeScore(c theory.Chord) float64 {
	switch {
	case c.IsMajorTriad():
		switch c.Root {
		case theory.C, theory.G, theory.D, theory.E, theory.A:
			return 1.0
		case theory.F:
			return 2.0
		}
		return 3.0
	case c.IsMinorTriad():
		switch c.Root {
		case theory.A, theory.E, theory.D:
			return 1.0
		}
		return 3.0
	case c.IsDominant7():
		switch c.Root {
		case theory.G, theory.C, theory.D, theory.E, theory.A:
			return 1.0
		case theory.B:
			return 2.0
		}
		return 4.0
	case c.IsMinor7():
		switch c.Root {
		case theory.A, theory.E, theory.D:
			return 1.0
		}
		return 4.0
	case c.IsMajor7():
		switch c.Root {
		case theory.F, theory.C, theory.D, theory.A:
			return 2.0
		}
		return 4.0
	}
	return 4.0
}
