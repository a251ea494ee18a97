package cmd

import (
	"fmt"

	"github.com/jsphweid/fretwork/difficulty"
	"github.com/jsphweid/fretwork/model"
	"github.com/jsphweid/fretwork/theory"
	"github.com/jsphweid/fretwork/voicing"
	"github.com/spf13/cobra"
)

var (
	voicingsPreset string
	voicingsCapo   int
	voicingsMax    int
)

func init() {
	voicingsCmd.Flags().StringVar(&voicingsPreset, "preset", "", "search preset: beginner, intermediate or advanced")
	voicingsCmd.Flags().IntVar(&voicingsCapo, "capo", 0, "capo fret")
	voicingsCmd.Flags().IntVar(&voicingsMax, "max", 10, "max voicings to print, 0 for all")
	rootCmd.AddCommand(voicingsCmd)
}

var voicingsCmd = &cobra.Command{
	Use:   "voicings <chord>",
	Short: "Lists playable voicings for a chord",
	Long:  `Lists playable voicings for a chord on a standard guitar, easiest first.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := theory.ParseChord(args[0])
		if err != nil {
			return err
		}
		opts, err := presetOptions(voicingsPreset)
		if err != nil {
			return err
		}

		inst := model.StandardGuitar()
		inst.Capo = voicingsCapo

		vs, err := voicing.Search(c, inst, opts)
		if err != nil {
			return err
		}
		if len(vs) == 0 {
			fmt.Printf("No playable voicings for %v\n", c)
			return nil
		}

		for i, v := range vs {
			if voicingsMax > 0 && i == voicingsMax {
				fmt.Printf("... and %v more\n", len(vs)-i)
				break
			}
			score := difficulty.Score(v)
			fmt.Printf("%-14v score=%-3v fingers=%v  %v\n",
				v, score, difficulty.FingersRequired(v), difficulty.Categorize(score))
		}
		return nil
	},
}

func presetOptions(name string) (voicing.Options, error) {
	switch name {
	case "":
		return voicing.DefaultOptions(), nil
	case "beginner":
		return voicing.BeginnerOptions(), nil
	case "intermediate":
		return voicing.IntermediateOptions(), nil
	case "advanced":
		return voicing.AdvancedOptions(), nil
	}
	return voicing.Options{}, fmt.Errorf("unknown preset: %v", name)
}
