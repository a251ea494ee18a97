package cmd

import (
	"errors"
	"fmt"

	"github.com/jsphweid/fretwork/capo"
	"github.com/jsphweid/fretwork/db"
	"github.com/jsphweid/fretwork/model"
	"github.com/jsphweid/fretwork/theory"
	"github.com/spf13/cobra"
)

var (
	capoSong string
	capoMax  int
)

func init() {
	capoCmd.Flags().StringVar(&capoSong, "song", "", "load a saved progression by name instead of passing chords")
	capoCmd.Flags().IntVar(&capoMax, "max-fret", capo.DefaultMaxCapoFret, "highest capo fret to consider")
	rootCmd.AddCommand(capoCmd)
}

var capoCmd = &cobra.Command{
	Use:   "capo [chord]...",
	Short: "Ranks capo positions for a progression",
	Long:  `Ranks capo positions for a chord progression, easiest shapes first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var chords []theory.Chord
		if capoSong != "" {
			saved, err := db.GetProgressions([]string{capoSong})
			if err != nil {
				return err
			}
			cs, ok := saved[capoSong]
			if !ok {
				return fmt.Errorf("no saved progression named %v", capoSong)
			}
			chords = cs
		} else {
			if len(args) == 0 {
				return errors.New("pass chord symbols or --song")
			}
			var err error
			chords, err = parseChords(args)
			if err != nil {
				return err
			}
		}

		suggestions := capo.Suggest(chords, model.StandardGuitar(), capoMax)
		for _, s := range suggestions {
			fmt.Printf("score=%-5.1f %v\n", s.Score, s.Description())
		}
		return nil
	},
}
