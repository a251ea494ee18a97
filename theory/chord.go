package theory

import (
	"fmt"
	"strings"
)

// Chord is a root plus an ordered interval formula. Intervals are semitone
// offsets from the root and always start with 0 (the root itself). Bass is
// only set for slash chords like C/G.
type Chord struct {
	Root      PitchClass
	Intervals []int
	Bass      *PitchClass

	// Quality is the symbol suffix the chord was built from, e.g. "" for a
	// major triad or "m7". Preserved across transposition so shapes print
	// the way players write them.
	Quality string
}

type formula struct {
	suffix    string
	intervals []int
}

// NOTE: ParseChord matches by exact suffix so order barely matters there,
// but Match takes the first hit — keep canonical spellings ahead of the
// "maj"/"min" aliases.
var formulas = []formula{
	{"maj7", []int{0, 4, 7, 11}},
	{"m7b5", []int{0, 3, 6, 10}},
	{"dim7", []int{0, 3, 6, 9}},
	{"add9", []int{0, 4, 7, 14}},
	{"sus2", []int{0, 2, 7}},
	{"sus4", []int{0, 5, 7}},
	{"dim", []int{0, 3, 6}},
	{"aug", []int{0, 4, 8}},
	{"m7", []int{0, 3, 7, 10}},
	{"m6", []int{0, 3, 7, 9}},
	{"m", []int{0, 3, 7}},
	{"9", []int{0, 4, 7, 10, 14}},
	{"7", []int{0, 4, 7, 10}},
	{"6", []int{0, 4, 7, 9}},
	{"", []int{0, 4, 7}},
	{"maj", []int{0, 4, 7}},
	{"min", []int{0, 3, 7}},
}

// ParseChord reads a chord symbol like "Am", "F#m7", "Bbmaj7" or "C/G".
func ParseChord(symbol string) (Chord, error) {
	var c Chord

	name := symbol
	if idx := strings.Index(symbol, "/"); idx >= 0 {
		bass, err := ParsePitch(symbol[idx+1:])
		if err != nil {
			return c, fmt.Errorf("bad bass note in %v: %v", symbol, err)
		}
		c.Bass = &bass
		name = symbol[:idx]
	}

	rootLen := 1
	if len(name) >= 2 && (name[1] == '#' || name[1] == 'b') {
		rootLen = 2
	}
	if len(name) < rootLen {
		return c, fmt.Errorf("bad chord symbol: %v", symbol)
	}
	root, err := ParsePitch(name[:rootLen])
	if err != nil {
		return c, fmt.Errorf("bad chord symbol %v: %v", symbol, err)
	}

	suffix := name[rootLen:]
	for _, f := range formulas {
		if f.suffix == suffix {
			c.Root = root
			c.Intervals = append([]int(nil), f.intervals...)
			c.Quality = f.suffix
			return c, nil
		}
	}
	return c, fmt.Errorf("unknown chord quality: %v", suffix)
}

// PitchClasses returns the chord tones root-first in formula order, with
// duplicate classes (e.g. the 9th folding onto the 2nd) removed.
func (c Chord) PitchClasses() []PitchClass {
	var res []PitchClass
	seen := make(map[PitchClass]bool)
	for _, iv := range c.Intervals {
		pc := c.Root.Transpose(iv)
		if seen[pc] {
			continue
		}
		seen[pc] = true
		res = append(res, pc)
	}
	return res
}

// Transpose shifts the whole chord, bass included, by the given semitones.
func (c Chord) Transpose(semitones int) Chord {
	res := c
	res.Root = c.Root.Transpose(semitones)
	res.Intervals = append([]int(nil), c.Intervals...)
	if c.Bass != nil {
		b := c.Bass.Transpose(semitones)
		res.Bass = &b
	}
	return res
}

func (c Chord) String() string {
	s := c.Root.String() + c.Quality
	if c.Bass != nil {
		s += "/" + c.Bass.String()
	}
	return s
}

func (c Chord) intervalsAre(want ...int) bool {
	if len(c.Intervals) != len(want) {
		return false
	}
	for i, iv := range c.Intervals {
		if iv != want[i] {
			return false
		}
	}
	return true
}

func (c Chord) IsMajorTriad() bool { return c.intervalsAre(0, 4, 7) }
func (c Chord) IsMinorTriad() bool { return c.intervalsAre(0, 3, 7) }
func (c Chord) IsDominant7() bool  { return c.intervalsAre(0, 4, 7, 10) }
func (c Chord) IsMinor7() bool     { return c.intervalsAre(0, 3, 7, 10) }
func (c Chord) IsMajor7() bool     { return c.intervalsAre(0, 4, 7, 11) }

// Match tries to name a set of sounding pitch classes as a chord. Every
// class is tried as the root against the formula table; the first hit wins.
func Match(classes []PitchClass) (Chord, bool) {
	set := make(map[PitchClass]bool)
	for _, pc := range classes {
		set[pc] = true
	}
	for _, root := range classes {
		for _, f := range formulas {
			if matchesFrom(set, root, f.intervals) {
				return Chord{
					Root:      root,
					Intervals: append([]int(nil), f.intervals...),
					Quality:   f.suffix,
				}, true
			}
		}
	}
	return Chord{}, false
}

func matchesFrom(set map[PitchClass]bool, root PitchClass, intervals []int) bool {
	want := make(map[PitchClass]bool)
	for _, iv := range intervals {
		want[root.Transpose(iv)] = true
	}
	if len(want) != len(set) {
		return false
	}
	for pc := range want {
		if !set[pc] {
			return false
		}
	}
	return true
}
