package theory

import "fmt"

// PitchClass is one of the 12 equivalence classes of pitch, 0 = C.
type PitchClass uint8

const (
	C PitchClass = iota
	Cs
	D
	Ds
	E
	F
	Fs
	G
	Gs
	A
	As
	B
)

var pitchNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func (p PitchClass) String() string {
	return pitchNames[p%12]
}

// Transpose moves p by the given number of semitones, wrapping mod 12.
// Negative amounts transpose downward.
func (p PitchClass) Transpose(semitones int) PitchClass {
	n := (int(p) + semitones) % 12
	if n < 0 {
		n += 12
	}
	return PitchClass(n)
}

var naturals = map[byte]PitchClass{
	'C': C, 'D': D, 'E': E, 'F': F, 'G': G, 'A': A, 'B': B,
}

// ParsePitch reads a pitch name like "C", "F#" or "Bb".
func ParsePitch(s string) (PitchClass, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("empty pitch name")
	}
	p, ok := naturals[s[0]]
	if !ok {
		return 0, fmt.Errorf("unknown pitch name: %v", s)
	}
	switch {
	case len(s) == 1:
		return p, nil
	case len(s) == 2 && s[1] == '#':
		return p.Transpose(1), nil
	case len(s) == 2 && s[1] == 'b':
		return p.Transpose(-1), nil
	}
	return 0, fmt.Errorf("unknown pitch name: %v", s)
}
