package cmd

import (
	"fmt"

	"github.com/jsphweid/fretwork/model"
	"github.com/jsphweid/fretwork/sequence"
	"github.com/jsphweid/fretwork/voicing"
	"github.com/spf13/cobra"
)

var sequencePrefer string

func init() {
	sequenceCmd.Flags().StringVar(&sequencePrefer, "prefer", "", "bias shape choice: open or barre")
	rootCmd.AddCommand(sequenceCmd)
}

var sequenceCmd = &cobra.Command{
	Use:   "sequence <chord>...",
	Short: "Picks voicings that minimize hand movement across a progression",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := parseChords(args)
		if err != nil {
			return err
		}
		pref, err := parsePreference(sequencePrefer)
		if err != nil {
			return err
		}

		inst := model.StandardGuitar()
		candidates := make([][]model.Voicing, len(chords))
		for i, c := range chords {
			vs, err := voicing.Search(c, inst, voicing.DefaultOptions())
			if err != nil {
				return err
			}
			candidates[i] = vs
		}

		for i, pick := range sequence.Plan(candidates, pref) {
			if pick.OriginalIndex < 0 {
				fmt.Printf("%-8v no playable voicing found\n", chords[i])
				continue
			}
			fmt.Printf("%-8v %-14v cost=%-4v %v\n",
				chords[i], pick.Voicing, pick.TransitionCost,
				sequence.CategorizeCost(pick.TransitionCost))
		}
		return nil
	},
}

func parsePreference(name string) (sequence.Preference, error) {
	switch name {
	case "", "balanced":
		return sequence.Balanced, nil
	case "open":
		return sequence.PreferOpen, nil
	case "barre":
		return sequence.PreferBarre, nil
	}
	return sequence.Balanced, fmt.Errorf("unknown preference: %v", name)
}
