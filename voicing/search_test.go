package voicing

import (
	"testing"

	"github.com/jsphweid/fretwork/difficulty"
	"github.com/jsphweid/fretwork/model"
	"github.com/jsphweid/fretwork/theory"
	"github.com/stretchr/testify/assert"
)

var guitar = model.StandardGuitar()

func search(t *testing.T, symbol string, opts Options) []model.Voicing {
	t.Helper()
	c, err := theory.ParseChord(symbol)
	assert.NoError(t, err)
	vs, err := Search(c, guitar, opts)
	assert.NoError(t, err)
	return vs
}

func shapes(vs []model.Voicing) []string {
	res := make([]string, len(vs))
	for i, v := range vs {
		res[i] = v.String()
	}
	return res
}

func TestSearchFindsOpenAMinor(t *testing.T) {
	vs := search(t, "Am", DefaultOptions())

	assert := assert.New(t)
	assert.NotEmpty(vs)
	found := false
	for _, v := range vs {
		if v.String() == "X02210" {
			found = true
			assert.Equal(difficulty.Beginner, difficulty.Of(v))
		}
	}
	assert.True(found, "expected X02210 in %v", shapes(vs))
}

func TestSearchFindsOpenCMajor(t *testing.T) {
	vs := search(t, "C", DefaultOptions())
	assert.Contains(t, shapes(vs), "X32010")
}

func TestSearchResultsOnlySoundChordTones(t *testing.T) {
	for _, symbol := range []string{"C", "Am", "G7", "Dm7", "C/G"} {
		t.Run(symbol, func(t *testing.T) {
			c, err := theory.ParseChord(symbol)
			assert.NoError(t, err)
			vs, err := Search(c, guitar, DefaultOptions())
			assert.NoError(t, err)

			allowed := make(map[theory.PitchClass]bool)
			for _, pc := range c.PitchClasses() {
				allowed[pc] = true
			}
			if c.Bass != nil {
				allowed[*c.Bass] = true
			}

			for _, v := range vs {
				sounding := make(map[theory.PitchClass]bool)
				for i := 0; i < v.StringCount(); i++ {
					if f, ok := v.Position(i).SoundingFret(); ok {
						pc := guitar.SoundingPitchClass(i, f)
						assert.True(t, allowed[pc], "%v sounds foreign note %v", v, pc)
						sounding[pc] = true
					}
				}
				assert.True(t, sounding[c.Root], "%v is missing the root", v)
				for _, pc := range c.PitchClasses() {
					assert.True(t, sounding[pc], "%v is missing chord tone %v", v, pc)
				}
			}
		})
	}
}

func TestSearchRespectsSlashBass(t *testing.T) {
	vs := search(t, "C/G", DefaultOptions())
	assert := assert.New(t)
	assert.NotEmpty(vs)
	for _, v := range vs {
		for i := 0; i < v.StringCount(); i++ {
			if f, ok := v.Position(i).SoundingFret(); ok {
				assert.Equal(theory.G, guitar.SoundingPitchClass(i, f),
					"%v does not put G in the bass", v)
				break
			}
		}
	}
}

func TestSearchSortedAscendingByDifficulty(t *testing.T) {
	vs := search(t, "G", DefaultOptions())
	for i := 1; i < len(vs); i++ {
		assert.LessOrEqual(t, difficulty.Score(vs[i-1]), difficulty.Score(vs[i]))
	}
}

func TestSearchHonorsMaxFretSpan(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxFretSpan = 2
	for _, v := range search(t, "C", opts) {
		assert.LessOrEqual(t, v.FretSpan(), 2)
	}
}

func TestSearchHonorsFingerBudget(t *testing.T) {
	for _, v := range search(t, "G7", DefaultOptions()) {
		assert.LessOrEqual(t, difficulty.FingersRequired(v), 4)
	}
}

func TestSearchHonorsStringCounts(t *testing.T) {
	for _, v := range search(t, "Em", DefaultOptions()) {
		assert.GreaterOrEqual(t, v.PlayedStrings(), 3)
		assert.LessOrEqual(t, v.MutedStrings(), 2)
	}
}

func TestSearchInteriorMutesCanBeForbidden(t *testing.T) {
	opts := DefaultOptions()
	opts.AllowInteriorMutes = false
	for _, v := range search(t, "D", opts) {
		assert.Equal(t, 0, v.InteriorMutes())
	}
}

func TestSearchMaxDifficultyFilters(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxDifficulty = DifficultyLimit(difficulty.Beginner)
	vs := search(t, "F", opts)
	for _, v := range vs {
		assert.Equal(t, difficulty.Beginner, difficulty.Of(v))
	}
}

func TestSearchEmptyResultIsNotAnError(t *testing.T) {
	opts := DefaultOptions()
	// a one-fret window far up the neck with no mutes allowed finds
	// nothing for an open chord
	opts.MinFret = 1
	opts.MaxFret = 1
	opts.MaxMutedStrings = 0

	c, err := theory.ParseChord("C")
	assert.NoError(t, err)
	vs, err := Search(c, guitar, opts)
	assert.NoError(t, err)
	assert.Empty(t, vs)
}

func TestSearchRejectsZeroStringInstrument(t *testing.T) {
	c, err := theory.ParseChord("C")
	assert.NoError(t, err)
	_, err = Search(c, model.Instrument{}, DefaultOptions())
	assert.Error(t, err)
}

func TestSearchRejectsInvertedFretWindow(t *testing.T) {
	opts := DefaultOptions()
	opts.MinFret = 7
	opts.MaxFret = 3
	c, err := theory.ParseChord("C")
	assert.NoError(t, err)
	_, err = Search(c, guitar, opts)
	assert.Error(t, err)
}

func TestSearchDedupesEquivalentShapes(t *testing.T) {
	vs := search(t, "Am", DefaultOptions())
	keys := make(map[string]bool)
	for _, v := range vs {
		k := shapeKey(v)
		assert.False(t, keys[k], "duplicate fretted shape %v", v)
		keys[k] = true
	}
}

func TestDedupeIsIdempotent(t *testing.T) {
	vs := search(t, "C", DefaultOptions())
	once := dedupe(vs)
	twice := dedupe(once)
	assert.Equal(t, once, twice)
}

func TestDedupeKeepsFullestVoicing(t *testing.T) {
	sparse := model.MustVoicing(guitar, []model.StringPosition{
		model.Muted(), model.Open(), model.Fretted(2), model.Fretted(2), model.Fretted(1), model.Muted(),
	}, nil)
	full := model.MustVoicing(guitar, []model.StringPosition{
		model.Muted(), model.Open(), model.Fretted(2), model.Fretted(2), model.Fretted(1), model.Open(),
	}, nil)

	got := dedupe([]model.Voicing{sparse, full})
	assert := assert.New(t)
	assert.Len(got, 1)
	assert.Equal("X02210", got[0].String())
}

func TestBeginnerPresetStaysEasy(t *testing.T) {
	vs := search(t, "C", BeginnerOptions())
	assert.NotEmpty(t, vs)
	for _, v := range vs {
		assert.Equal(t, difficulty.Beginner, difficulty.Of(v))
		assert.LessOrEqual(t, v.FretSpan(), 3)
	}
}
