// Package difficulty scores how hard a voicing is to fret. The weights are
// hand-tuned against common guitar shapes: open-position chords land under
// 25, partial barres and mid-neck shapes under 50, full barres above.
package difficulty

import (
	"github.com/jsphweid/fretwork/model"
)

type Category int

const (
	Beginner Category = iota
	Intermediate
	Advanced
)

func (c Category) String() string {
	switch c {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	}
	return "advanced"
}

const (
	spanWeight          = 10
	frettedWeight       = 5
	barrePenalty        = 20
	wideBarrePenalty    = 10
	highFretWeight      = 3
	highFretThreshold   = 5
	interiorMutePenalty = 15
	openBonus           = 3
	wideBarreStrings    = 4

	beginnerMax     = 25
	intermediateMax = 50
)

// FingersRequired estimates how many left-hand fingers the voicing needs.
// Strings at the lowest fret collapse to one finger when a single barre
// could cover them (nothing between the endpoints has to ring open); every
// fretted string above the lowest fret costs a finger of its own.
func FingersRequired(v model.Voicing) int {
	lowest, ok := v.LowestFret()
	if !ok {
		return 0
	}

	var atLowest []int
	above := 0
	for i := 0; i < v.StringCount(); i++ {
		p := v.Position(i)
		if !p.IsFretted() {
			continue
		}
		if p.Fret() == lowest {
			atLowest = append(atLowest, i)
		} else {
			above++
		}
	}

	if len(atLowest) >= 2 && Barreable(v, atLowest[0], atLowest[len(atLowest)-1]) {
		return above + 1
	}
	return above + len(atLowest)
}

// Barreable reports whether one finger could lie across strings from..to at
// the voicing's lowest fret: no string strictly between them may need to
// ring open below the barre.
func Barreable(v model.Voicing, from, to int) bool {
	for i := from + 1; i < to; i++ {
		if v.Position(i).IsOpen() {
			return false
		}
	}
	return true
}

// Score rates the voicing, lower = easier, floored at 0.
func Score(v model.Voicing) int {
	score := spanWeight*v.FretSpan() + frettedWeight*v.FrettedStrings()

	if b := v.Barre(); b != nil {
		score += barrePenalty
		if b.Span() > wideBarreStrings {
			score += wideBarrePenalty
		}
	}

	lowest, fretted := v.LowestFret()
	if fretted && lowest > highFretThreshold {
		score += highFretWeight * (lowest - highFretThreshold)
	}

	score += interiorMutePenalty * v.InteriorMutes()

	// open strings only make a shape easier when the hand sits in open
	// position
	if !fretted || lowest == 1 {
		score -= openBonus * v.OpenStrings()
	}

	if score < 0 {
		score = 0
	}
	return score
}

func Categorize(score int) Category {
	switch {
	case score <= beginnerMax:
		return Beginner
	case score <= intermediateMax:
		return Intermediate
	}
	return Advanced
}

// Of is Categorize(Score(v)).
func Of(v model.Voicing) Category {
	return Categorize(Score(v))
}
