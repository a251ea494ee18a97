package capo

import "github.com/jsphweid/fretwork/theory"

// CommonCapoPositions maps the seven major-chord roots with no easy open
// shape to their usual substitutions: fingered root -> capo fret. F with
// the capo at 1 is played as an E shape, at 3 as D, at 5 as C, and so on.
var CommonCapoPositions = map[theory.PitchClass]map[theory.PitchClass]int{
	theory.F:  {theory.E: 1, theory.D: 3, theory.C: 5},
	theory.Fs: {theory.E: 2, theory.D: 4, theory.C: 6},
	theory.Gs: {theory.G: 1, theory.E: 4, theory.D: 6},
	theory.As: {theory.A: 1, theory.G: 3, theory.E: 6},
	theory.B:  {theory.A: 2, theory.G: 4, theory.E: 7},
	theory.Cs: {theory.C: 1, theory.A: 4, theory.G: 6},
	theory.Ds: {theory.D: 1, theory.C: 3, theory.A: 6},
}

var easyRoots = []theory.PitchClass{theory.C, theory.G, theory.D, theory.E, theory.A}

// PositionsFor returns the capo placements that let the given root be
// fingered as an easy open root. Tabulated entries are used for the hard
// major roots; everything else falls back to the forward semitone distance
// from each easy root. A zero distance (the root already is an easy one) is
// omitted.
func PositionsFor(root theory.PitchClass, major bool) map[theory.PitchClass]int {
	if major {
		if m, ok := CommonCapoPositions[root]; ok {
			return m
		}
	}
	res := make(map[theory.PitchClass]int)
	for _, easy := range easyRoots {
		d := (int(root) - int(easy) + 12) % 12
		if d == 0 {
			continue
		}
		res[easy] = d
	}
	return res
}
