package voicing

import "github.com/jsphweid/fretwork/difficulty"

// Options bound the voicing search.
type Options struct {
	// MaxFretSpan is the widest allowed stretch between the lowest and
	// highest fretted note.
	MaxFretSpan int
	// MinFret..MaxFret is the search window, inclusive.
	MinFret int
	MaxFret int
	// RootInBass requires the lowest ringing string to sound the root (or
	// the slash bass when one is set).
	RootInBass bool
	// AllowInteriorMutes admits shapes with a muted string between played
	// ones; they still score harder.
	AllowInteriorMutes bool
	MinStringsPlayed   int
	MaxMutedStrings    int
	MaxFingers         int
	// MaxDifficulty drops any voicing above the category when set.
	MaxDifficulty *difficulty.Category
}

func DefaultOptions() Options {
	return Options{
		MaxFretSpan:        4,
		MinFret:            0,
		MaxFret:            12,
		RootInBass:         true,
		AllowInteriorMutes: true,
		MinStringsPlayed:   3,
		MaxMutedStrings:    2,
		MaxFingers:         4,
	}
}

// DifficultyLimit is a convenience for filling Options.MaxDifficulty.
func DifficultyLimit(c difficulty.Category) *difficulty.Category {
	return &c
}

// BeginnerOptions keeps the hand in open position with easy stretches.
func BeginnerOptions() Options {
	opts := DefaultOptions()
	opts.MaxFretSpan = 3
	opts.MaxFret = 5
	opts.MaxFingers = 3
	opts.AllowInteriorMutes = false
	opts.MaxDifficulty = DifficultyLimit(difficulty.Beginner)
	return opts
}

func IntermediateOptions() Options {
	opts := DefaultOptions()
	opts.MaxDifficulty = DifficultyLimit(difficulty.Intermediate)
	return opts
}

// AdvancedOptions is the unrestricted default search.
func AdvancedOptions() Options {
	return DefaultOptions()
}
