// Package sequence orders candidate voicings to minimize hand movement
// across a chord progression. Ranking is neighbor-local: each candidate is
// scored against the previous pick and the easiest upcoming shape only, not
// against the whole progression.
package sequence

import (
	"math"
	"sort"

	"github.com/jsphweid/fretwork/difficulty"
	"github.com/jsphweid/fretwork/model"
	"github.com/jsphweid/fretwork/util"
)

// Preference biases ranking toward or away from barre shapes.
type Preference int

const (
	Balanced Preference = iota
	PreferOpen
	PreferBarre
)

const (
	fretJumpWeight     = 10
	fretDiffWeight     = 2
	mismatchPenalty    = 3
	barreChangePenalty = 15
	similarityBonus    = 5

	prevWeight = 0.6
	nextWeight = 0.4

	openAvoidBarre = 30
	openBonus      = -15
	barreBonus     = -15
	barreAvoidOpen = 25

	easyCostMax   = 20
	mediumCostMax = 50
)

// Cost estimates the hand movement between two consecutive voicings. A nil
// side is a sequence boundary and costs nothing. The result is floored at
// 0.
func Cost(from, to *model.Voicing) int {
	if from == nil || to == nil {
		return 0
	}

	cost := fretJumpWeight * util.Abs(lowestOrZero(from)-lowestOrZero(to))

	n := util.Min(from.StringCount(), to.StringCount())
	for i := 0; i < n; i++ {
		a, b := from.Position(i), to.Position(i)
		switch {
		case a.IsFretted() && b.IsFretted():
			cost += fretDiffWeight * util.Abs(a.Fret()-b.Fret())
		case a.IsFretted() != b.IsFretted():
			cost += mismatchPenalty
		}
	}

	if from.HasBarre() != to.HasBarre() {
		cost += barreChangePenalty
	}

	if util.Abs(from.FretSpan()-to.FretSpan()) <= 1 &&
		util.Abs(difficulty.FingersRequired(*from)-difficulty.FingersRequired(*to)) <= 1 {
		cost -= similarityBonus
	}

	if cost < 0 {
		cost = 0
	}
	return cost
}

func lowestOrZero(v *model.Voicing) int {
	fret, ok := v.LowestFret()
	if !ok {
		return 0
	}
	return fret
}

// Rank orders the candidates by how cheaply each bridges the previous and
// next voicings (nil at the ends), weighted toward the chord just played,
// plus the preference adjustment and a slice of the candidate's own
// difficulty. Stable ascending; index 0 is marked as the suggestion.
func Rank(prev, next *model.Voicing, candidates []model.Voicing, pref Preference) []model.RankedVoicing {
	if len(candidates) == 0 {
		return nil
	}

	res := make([]model.RankedVoicing, len(candidates))
	for i := range candidates {
		cand := candidates[i]
		weighted := prevWeight*float64(Cost(prev, &cand)) + nextWeight*float64(Cost(&cand, next))
		score := int(math.Round(weighted))
		score += preferenceAdjustment(cand, pref)
		score += difficulty.Score(cand) / 10
		res[i] = model.RankedVoicing{
			Voicing:        cand,
			OriginalIndex:  i,
			TransitionCost: score,
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].TransitionCost < res[j].TransitionCost
	})
	res[0].IsSuggested = true
	return res
}

func preferenceAdjustment(v model.Voicing, pref Preference) int {
	switch pref {
	case PreferOpen:
		if v.HasBarre() {
			return openAvoidBarre
		}
		return openBonus
	case PreferBarre:
		if v.HasBarre() {
			return barreBonus
		}
		return barreAvoidOpen
	}
	return 0
}

// Plan walks the progression left to right picking one voicing per chord:
// each candidate list is ranked against the previous pick and the easiest
// candidate of the immediate next chord. A chord with no candidates yields
// a placeholder with OriginalIndex -1 and resets the chain.
func Plan(candidates [][]model.Voicing, pref Preference) []model.RankedVoicing {
	var res []model.RankedVoicing
	var prev *model.Voicing
	for i, cands := range candidates {
		if len(cands) == 0 {
			res = append(res, model.RankedVoicing{OriginalIndex: -1})
			prev = nil
			continue
		}
		var next *model.Voicing
		if i+1 < len(candidates) && len(candidates[i+1]) > 0 {
			next = &candidates[i+1][0]
		}
		pick := Rank(prev, next, cands, pref)[0]
		res = append(res, pick)
		v := pick.Voicing
		prev = &v
	}
	return res
}

// CategorizeCost buckets a transition cost for display.
func CategorizeCost(cost int) string {
	switch {
	case cost < easyCostMax:
		return "easy"
	case cost <= mediumCostMax:
		return "medium"
	}
	return "hard"
}
