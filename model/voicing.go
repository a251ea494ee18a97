package model

import (
	"fmt"
	"strings"
)

// PositionKind discriminates the three per-string states.
type PositionKind uint8

const (
	PositionMuted PositionKind = iota
	PositionOpen
	PositionFretted
)

// StringPosition is the closed per-string state: muted, open or fretted.
// Muted and open-at-fret-0 are distinct values that never compare equal.
type StringPosition struct {
	kind   PositionKind
	fret   int
	finger int
}

func Muted() StringPosition {
	return StringPosition{kind: PositionMuted}
}

func Open() StringPosition {
	return StringPosition{kind: PositionOpen}
}

// Fretted presses a string at the given fret (>= 1) with no particular
// finger assigned.
func Fretted(fret int) StringPosition {
	return StringPosition{kind: PositionFretted, fret: fret}
}

// FrettedWith is Fretted with an explicit finger 1-4.
func FrettedWith(fret, finger int) StringPosition {
	return StringPosition{kind: PositionFretted, fret: fret, finger: finger}
}

func (p StringPosition) Kind() PositionKind { return p.kind }
func (p StringPosition) IsMuted() bool      { return p.kind == PositionMuted }
func (p StringPosition) IsOpen() bool       { return p.kind == PositionOpen }
func (p StringPosition) IsFretted() bool    { return p.kind == PositionFretted }

// Fret is 0 unless the string is fretted.
func (p StringPosition) Fret() int { return p.fret }

// Finger is 0 when unassigned.
func (p StringPosition) Finger() int { return p.finger }

// SoundingFret reports the fret a played string rings at: the fretted fret,
// or 0 for an open string. ok is false for a muted string.
func (p StringPosition) SoundingFret() (fret int, ok bool) {
	switch p.kind {
	case PositionOpen:
		return 0, true
	case PositionFretted:
		return p.fret, true
	}
	return 0, false
}

// Barre is one finger pressing a contiguous run of strings at one fret.
type Barre struct {
	Fret       int
	FromString int
	ToString   int // inclusive
	Finger     int // defaults to 1
}

// Span is the number of strings under the barre.
func (b Barre) Span() int {
	return b.ToString - b.FromString + 1
}

// Voicing is one concrete fingering of a chord: one position per instrument
// string plus at most one barre. Immutable once constructed.
type Voicing struct {
	positions []StringPosition
	barre     *Barre
}

// NewVoicing builds a voicing for the instrument. The position count must
// match the instrument's string count and fretted positions must be at
// fret 1 or higher; anything else is API misuse and is rejected.
func NewVoicing(inst Instrument, positions []StringPosition, barre *Barre) (Voicing, error) {
	if len(positions) != inst.StringCount() {
		return Voicing{}, fmt.Errorf("voicing has %v positions but instrument has %v strings",
			len(positions), inst.StringCount())
	}
	for i, p := range positions {
		if p.kind == PositionFretted && p.fret < 1 {
			return Voicing{}, fmt.Errorf("string %v fretted below fret 1", i)
		}
	}
	if barre != nil {
		if barre.FromString < 0 || barre.ToString >= len(positions) || barre.FromString > barre.ToString {
			return Voicing{}, fmt.Errorf("barre spans strings %v-%v on a %v-string instrument",
				barre.FromString, barre.ToString, len(positions))
		}
	}
	v := Voicing{positions: append([]StringPosition(nil), positions...)}
	if barre != nil {
		b := *barre
		if b.Finger == 0 {
			b.Finger = 1
		}
		v.barre = &b
	}
	return v, nil
}

// MustVoicing is NewVoicing for hand-built shapes known to be valid.
func MustVoicing(inst Instrument, positions []StringPosition, barre *Barre) Voicing {
	v, err := NewVoicing(inst, positions, barre)
	if err != nil {
		panic("MustVoicing: " + err.Error())
	}
	return v
}

func (v Voicing) StringCount() int {
	return len(v.positions)
}

func (v Voicing) Position(i int) StringPosition {
	return v.positions[i]
}

func (v Voicing) Positions() []StringPosition {
	return append([]StringPosition(nil), v.positions...)
}

func (v Voicing) HasBarre() bool {
	return v.barre != nil
}

func (v Voicing) Barre() *Barre {
	if v.barre == nil {
		return nil
	}
	b := *v.barre
	return &b
}

// LowestFret is the lowest fretted fret. ok is false when nothing is
// fretted.
func (v Voicing) LowestFret() (fret int, ok bool) {
	for _, p := range v.positions {
		if !p.IsFretted() {
			continue
		}
		if !ok || p.fret < fret {
			fret = p.fret
			ok = true
		}
	}
	return fret, ok
}

// HighestFret is the highest fretted fret. ok is false when nothing is
// fretted.
func (v Voicing) HighestFret() (fret int, ok bool) {
	for _, p := range v.positions {
		if p.IsFretted() && p.fret > fret {
			fret = p.fret
			ok = true
		}
	}
	return fret, ok
}

// FretSpan is the distance between the lowest and highest fretted note, 0
// when one or zero strings are fretted.
func (v Voicing) FretSpan() int {
	lo, ok := v.LowestFret()
	if !ok {
		return 0
	}
	hi, _ := v.HighestFret()
	return hi - lo
}

func (v Voicing) FrettedStrings() int {
	n := 0
	for _, p := range v.positions {
		if p.IsFretted() {
			n++
		}
	}
	return n
}

func (v Voicing) OpenStrings() int {
	n := 0
	for _, p := range v.positions {
		if p.IsOpen() {
			n++
		}
	}
	return n
}

func (v Voicing) MutedStrings() int {
	n := 0
	for _, p := range v.positions {
		if p.IsMuted() {
			n++
		}
	}
	return n
}

// PlayedStrings counts strings that ring: open or fretted.
func (v Voicing) PlayedStrings() int {
	return len(v.positions) - v.MutedStrings()
}

// InteriorMutes counts muted strings with a played string somewhere on both
// sides, the shapes that need a mid-strum mute.
func (v Voicing) InteriorMutes() int {
	n := 0
	for i, p := range v.positions {
		if !p.IsMuted() {
			continue
		}
		if v.playedBefore(i) && v.playedAfter(i) {
			n++
		}
	}
	return n
}

func (v Voicing) playedBefore(i int) bool {
	for j := 0; j < i; j++ {
		if !v.positions[j].IsMuted() {
			return true
		}
	}
	return false
}

func (v Voicing) playedAfter(i int) bool {
	for j := i + 1; j < len(v.positions); j++ {
		if !v.positions[j].IsMuted() {
			return true
		}
	}
	return false
}

// String renders the compact chart form, low string first: X for muted, 0
// for open, the fret digit otherwise, parenthesized from fret 10 up.
// E.g. "X02210" or "X0(10)(10)90".
func (v Voicing) String() string {
	var b strings.Builder
	for _, p := range v.positions {
		switch {
		case p.IsMuted():
			b.WriteByte('X')
		case p.IsOpen():
			b.WriteByte('0')
		case p.fret < 10:
			fmt.Fprintf(&b, "%d", p.fret)
		default:
			fmt.Fprintf(&b, "(%d)", p.fret)
		}
	}
	return b.String()
}
