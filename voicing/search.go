// Package voicing enumerates the playable fingerings of a chord on a
// fretted instrument. The search walks the cartesian product of per-string
// candidates depth-first (string 0 upward; muted first, then ascending
// frets), filters out unplayable or incomplete shapes, collapses duplicate
// hand shapes and returns the survivors easiest first. Ordering is fully
// deterministic, so equal-difficulty shapes keep their generation order.
package voicing

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/fretwork/difficulty"
	"github.com/jsphweid/fretwork/model"
	"github.com/jsphweid/fretwork/theory"
	"github.com/jsphweid/fretwork/util"
)

// Search returns every acceptable voicing of the chord, sorted ascending by
// difficulty. No qualifying combination yields an empty result, not an
// error; errors are reserved for structural misuse of the API.
func Search(c theory.Chord, inst model.Instrument, opts Options) ([]model.Voicing, error) {
	if inst.StringCount() == 0 {
		return nil, errors.New("instrument has no strings")
	}
	if opts.MinFret < 0 || opts.MinFret > opts.MaxFret {
		return nil, fmt.Errorf("bad fret window %v..%v", opts.MinFret, opts.MaxFret)
	}

	s := searcher{
		chord:   c,
		inst:    inst,
		opts:    opts,
		tones:   c.PitchClasses(),
		toneSet: make(map[theory.PitchClass]bool),
	}
	for _, t := range s.tones {
		s.toneSet[t] = true
	}
	if c.Bass != nil {
		s.toneSet[*c.Bass] = true
	}

	n := inst.StringCount()
	s.candidates = make([][]model.StringPosition, n)
	for i := 0; i < n; i++ {
		s.candidates[i] = s.candidatesFor(i)
	}
	s.positions = make([]model.StringPosition, n)
	s.walk(0, 0, 0, false)

	res := dedupe(s.accepted)

	type scoredVoicing struct {
		v     model.Voicing
		score int
	}
	scored := make([]scoredVoicing, len(res))
	for i, v := range res {
		scored[i] = scoredVoicing{v: v, score: difficulty.Score(v)}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score < scored[j].score
	})
	for i := range scored {
		res[i] = scored[i].v
	}
	return res, nil
}

type searcher struct {
	chord      theory.Chord
	inst       model.Instrument
	opts       Options
	tones      []theory.PitchClass
	toneSet    map[theory.PitchClass]bool
	candidates [][]model.StringPosition
	positions  []model.StringPosition
	accepted   []model.Voicing
}

// candidatesFor lists the per-string choices: muted always, then every fret
// in the window whose sounding pitch belongs to the chord, ascending.
func (s *searcher) candidatesFor(si int) []model.StringPosition {
	list := []model.StringPosition{model.Muted()}
	maxFret := util.Min(s.opts.MaxFret, s.inst.Strings[si].MaxFret)
	for f := s.opts.MinFret; f <= maxFret; f++ {
		if !s.toneSet[s.inst.SoundingPitchClass(si, f)] {
			continue
		}
		if f == 0 {
			list = append(list, model.Open())
		} else {
			list = append(list, model.Fretted(f))
		}
	}
	return list
}

// walk recurses over strings carrying the fretted min/max so over-stretched
// branches are cut without changing what a full enumeration would accept.
func (s *searcher) walk(si, lo, hi int, anyFretted bool) {
	if si == len(s.candidates) {
		s.accept()
		return
	}
	for _, p := range s.candidates[si] {
		nlo, nhi, fretted := lo, hi, anyFretted
		if p.IsFretted() {
			f := p.Fret()
			if !fretted {
				nlo, nhi, fretted = f, f, true
			} else {
				nlo = util.Min(nlo, f)
				nhi = util.Max(nhi, f)
			}
			if nhi-nlo > s.opts.MaxFretSpan {
				continue
			}
		}
		s.positions[si] = p
		s.walk(si+1, nlo, nhi, fretted)
	}
}

func (s *searcher) accept() {
	muted := 0
	for _, p := range s.positions {
		if p.IsMuted() {
			muted++
		}
	}
	played := len(s.positions) - muted
	if played < s.opts.MinStringsPlayed || muted > s.opts.MaxMutedStrings {
		return
	}

	sounding := make(map[theory.PitchClass]bool)
	bassIdx := -1
	for i, p := range s.positions {
		f, ok := p.SoundingFret()
		if !ok {
			continue
		}
		if bassIdx == -1 {
			bassIdx = i
		}
		sounding[s.inst.SoundingPitchClass(i, f)] = true
	}
	if bassIdx == -1 || !sounding[s.chord.Root] {
		return
	}
	if len(sounding) < 2 {
		return
	}
	for _, t := range s.tones {
		if !sounding[t] {
			return
		}
	}

	if s.opts.RootInBass || s.chord.Bass != nil {
		want := s.chord.Root
		if s.chord.Bass != nil {
			want = *s.chord.Bass
		}
		f, _ := s.positions[bassIdx].SoundingFret()
		if s.inst.SoundingPitchClass(bassIdx, f) != want {
			return
		}
	}

	v := model.MustVoicing(s.inst, s.positions, s.detectBarre())
	if !s.opts.AllowInteriorMutes && v.InteriorMutes() > 0 {
		return
	}
	if difficulty.FingersRequired(v) > s.opts.MaxFingers {
		return
	}
	if s.opts.MaxDifficulty != nil && difficulty.Of(v) > *s.opts.MaxDifficulty {
		return
	}
	s.accepted = append(s.accepted, v)
}

// detectBarre marks the shapes that only fit the finger budget with a
// first-finger barre across the lowest fret. Shapes that fit with
// individual fingers are left barre-free even when a barre could cover
// them.
func (s *searcher) detectBarre() *model.Barre {
	fretted := 0
	lowest := 0
	for _, p := range s.positions {
		if !p.IsFretted() {
			continue
		}
		fretted++
		if lowest == 0 || p.Fret() < lowest {
			lowest = p.Fret()
		}
	}
	if fretted <= s.opts.MaxFingers {
		return nil
	}

	var group []int
	for i, p := range s.positions {
		if p.IsFretted() && p.Fret() == lowest {
			group = append(group, i)
		}
	}
	if len(group) < 2 {
		return nil
	}
	for i := group[0] + 1; i < group[len(group)-1]; i++ {
		if s.positions[i].IsOpen() {
			return nil
		}
	}
	return &model.Barre{Fret: lowest, FromString: group[0], ToString: group[len(group)-1], Finger: 1}
}

// dedupe collapses voicings sharing the same fretted shape (open, muted and
// finger differences ignored), keeping the fullest of each group in its
// first-seen slot so the overall ordering stays deterministic.
func dedupe(vs []model.Voicing) []model.Voicing {
	seen := make(map[string]int)
	var res []model.Voicing
	for _, v := range vs {
		k := shapeKey(v)
		if i, ok := seen[k]; ok {
			if v.PlayedStrings() > res[i].PlayedStrings() {
				res[i] = v
			}
			continue
		}
		seen[k] = len(res)
		res = append(res, v)
	}
	return res
}

func shapeKey(v model.Voicing) string {
	var b strings.Builder
	for i := 0; i < v.StringCount(); i++ {
		p := v.Position(i)
		if !p.IsFretted() {
			continue
		}
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(p.Fret()))
		b.WriteByte(' ')
	}
	return b.String()
}
