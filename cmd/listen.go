package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/fretwork/difficulty"
	"github.com/jsphweid/fretwork/model"
	"github.com/jsphweid/fretwork/theory"
	"github.com/jsphweid/fretwork/util"
	"github.com/jsphweid/fretwork/voicing"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Listens to MIDI input and suggests voicings for what you play",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen()
	},
}

func listen() error {
	defer midi.CloseDriver()
	in, err := midi.InPort(0)
	if err != nil {
		return fmt.Errorf("no MIDI input port: %v", err)
	}

	pressed := make(map[uint8]bool)
	// chords arrive one note-on at a time; settle before matching
	deb := debounce.New(150 * time.Millisecond)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			pressed[key] = true
		case msg.GetNoteEnd(&ch, &key):
			delete(pressed, key)
		default:
			return
		}
		notes := util.GetKeys(pressed)
		deb(func() { suggest(notes) })
	})
	if err != nil {
		return err
	}

	fmt.Printf("Listening on %v, ctrl-c to quit\n", in)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	stop()
	return nil
}

func suggest(notes []uint8) {
	if len(notes) < 2 {
		return
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})

	var classes []theory.PitchClass
	seen := make(map[theory.PitchClass]bool)
	for _, n := range notes {
		pc := theory.PitchClass(n % 12)
		if seen[pc] {
			continue
		}
		seen[pc] = true
		classes = append(classes, pc)
	}

	c, ok := theory.Match(classes)
	if !ok {
		return
	}
	fmt.Printf("Heard %v\n", c)

	vs, err := voicing.Search(c, model.StandardGuitar(), voicing.DefaultOptions())
	if err != nil || len(vs) == 0 {
		return
	}
	for i, v := range vs {
		if i == 3 {
			break
		}
		fmt.Printf("  %v (%v)\n", v, difficulty.Of(v))
	}
}
