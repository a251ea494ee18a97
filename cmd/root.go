package cmd

import (
	"github.com/jsphweid/fretwork/theory"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fretwork",
	Short: "Chord voicing finder for fretted instruments",
	Long: `Finds playable voicings of a chord on a fretted instrument, scores them
for difficulty, suggests capo positions for a progression and orders shapes
to minimize hand movement.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func parseChords(symbols []string) ([]theory.Chord, error) {
	var res []theory.Chord
	for _, s := range symbols {
		c, err := theory.ParseChord(s)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}
