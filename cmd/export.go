package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jsphweid/fretwork/midi"
	"github.com/jsphweid/fretwork/model"
	"github.com/jsphweid/fretwork/sequence"
	"github.com/jsphweid/fretwork/voicing"
	"github.com/spf13/cobra"
)

var (
	exportOut string
	exportBPM float64
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file, defaults to a generated name")
	exportCmd.Flags().Float64Var(&exportBPM, "bpm", midi.DefaultBPM, "tempo of the rendered file")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <chord>...",
	Short: "Renders the suggested voicings of a progression to a MIDI file",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		chords, err := parseChords(args)
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

		var voicings []model.Voicing
		for i, pick := range sequence.Plan(candidates, sequence.Balanced) {
			if pick.OriginalIndex < 0 {
				fmt.Printf("Skipping %v: no playable voicing\n", chords[i])
				continue
			}
			voicings = append(voicings, pick.Voicing)
		}
		if len(voicings) == 0 {
			return fmt.Errorf("nothing to export")
		}

		s, err := midi.RenderProgression(voicings, inst, exportBPM)
		if err != nil {
			return err
		}

		filename := exportOut
		if filename == "" {
			filename = uuid.New().String() + ".mid"
		}
		if err := s.WriteFile(filename); err != nil {
			return fmt.Errorf("write failed for %v: %v", filename, err)
		}
		fmt.Printf("Wrote %v bars to %v\n", len(voicings), filename)
		return nil
	},
}
