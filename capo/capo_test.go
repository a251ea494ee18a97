package capo

import (
	"testing"

	"github.com/jsphweid/fretwork/model"
	"github.com/jsphweid/fretwork/theory"
	"github.com/stretchr/testify/assert"
)

func chords(t *testing.T, symbols ...string) []theory.Chord {
	t.Helper()
	var res []theory.Chord
	for _, s := range symbols {
		c, err := theory.ParseChord(s)
		assert.NoError(t, err)
		res = append(res, c)
	}
	return res
}

func TestSuggestReturnsOneEntryPerOffset(t *testing.T) {
	got := Suggest(chords(t, "C", "G"), model.StandardGuitar(), 12)

	assert := assert.New(t)
	assert.Len(got, 13)

	seen := make(map[int]bool)
	for _, s := range got {
		assert.False(seen[s.CapoFret])
		seen[s.CapoFret] = true
		assert.GreaterOrEqual(s.CapoFret, 0)
		assert.LessOrEqual(s.CapoFret, 12)
	}
}

func TestSuggestSortedAscendingByScore(t *testing.T) {
	got := Suggest(chords(t, "F#", "B", "C#m"), model.StandardGuitar(), 12)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Score, got[i].Score)
	}
}

func TestSuggestFMajorAsEShapeAtFirstFret(t *testing.T) {
	got := Suggest(chords(t, "F"), model.StandardGuitar(), 12)

	assert := assert.New(t)
	found := false
	for _, s := range got {
		if s.CapoFret != 1 {
			continue
		}
		found = true
		assert.Len(s.Shapes, 1)
		assert.Equal(theory.E, s.Shapes[0].Root)
		assert.True(s.Shapes[0].IsMajorTriad())
		assert.Equal("Capo fret 1: play E", s.Description())
	}
	assert.True(found)
}

func TestSuggestOpenProgressionNeedsNoCapo(t *testing.T) {
	got := Suggest(chords(t, "C", "G", "Am"), model.StandardGuitar(), 12)

	assert := assert.New(t)
	// every chord already scores 1.0 with no capo, so offset 0 is minimal
	// and stable-sorts ahead of any tie
	assert.Equal(0, got[0].CapoFret)
	assert.Equal(3.0, got[0].Score)
	for _, s := range got {
		assert.GreaterOrEqual(s.Score, 3.0)
	}
	assert.Equal("No capo needed", got[0].Description())
}

func TestSuggestEmptyInput(t *testing.T) {
	assert.Empty(t, Suggest(nil, model.StandardGuitar(), 12))
}

func TestShapeScoreTiers(t *testing.T) {
	cases := []struct {
		symbol string
		want   float64
	}{
		{"C", 1.0},
		{"G", 1.0},
		{"Em", 1.0},
		{"A7", 1.0},
		{"Dm7", 1.0},
		{"F", 2.0},
		{"B7", 2.0},
		{"Fmaj7", 2.0},
		{"Cmaj7", 2.0},
		{"Bb", 3.0},
		{"F#m", 3.0},
		{"Eb7", 4.0},
		{"Gmaj7", 4.0},
		{"Cdim", 4.0},
		{"Asus4", 4.0},
	}
	for _, c := range cases {
		t.Run(c.symbol, func(t *testing.T) {
			parsed, err := theory.ParseChord(c.symbol)
			assert.NoError(t, err)
			assert.Equal(t, c.want, ShapeScore(parsed))
		})
	}
}

func TestCommonCapoPositionsCoversHardMajorRoots(t *testing.T) {
	assert := assert.New(t)
	assert.Len(CommonCapoPositions, 7)
	assert.Equal(map[theory.PitchClass]int{theory.E: 1, theory.D: 3, theory.C: 5},
		CommonCapoPositions[theory.F])

	// every entry must transpose back to the original root
	for root, subs := range CommonCapoPositions {
		for easy, fret := range subs {
			assert.Equal(root, easy.Transpose(fret))
		}
	}
}

func TestPositionsForTabulatedMajorRoot(t *testing.T) {
	got := PositionsFor(theory.B, true)
	assert.Equal(t, map[theory.PitchClass]int{theory.A: 2, theory.G: 4, theory.E: 7}, got)
}

func TestPositionsForFallback(t *testing.T) {
	// minor roots aren't tabulated; distances are forward from each easy
	// root
	got := PositionsFor(theory.B, false)

	assert := assert.New(t)
	assert.Equal(map[theory.PitchClass]int{
		theory.C: 11,
		theory.G: 4,
		theory.D: 9,
		theory.E: 7,
		theory.A: 2,
	}, got)

	// an easy root maps to itself at distance 0 and is omitted
	gotC := PositionsFor(theory.C, false)
	_, hasC := gotC[theory.C]
	assert.False(hasC)
}
