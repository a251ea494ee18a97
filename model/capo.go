package model

import (
	"fmt"
	"strings"

	"github.com/jsphweid/fretwork/theory"
)

// CapoSuggestion is one capo placement for a progression: the fret, the
// shapes fingered behind the capo (the originals transposed down by the
// fret) and the summed shape score, lower = easier.
type CapoSuggestion struct {
	CapoFret int
	Shapes   []theory.Chord
	Original []theory.Chord
	Score    float64
}

func (s CapoSuggestion) Description() string {
	if s.CapoFret == 0 {
		return "No capo needed"
	}
	names := make([]string, len(s.Shapes))
	for i, c := range s.Shapes {
		names[i] = c.String()
	}
	return fmt.Sprintf("Capo fret %v: play %v", s.CapoFret, strings.Join(names, " "))
}
