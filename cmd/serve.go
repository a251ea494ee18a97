package cmd

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/fretwork/capo"
	"github.com/jsphweid/fretwork/constants"
	"github.com/jsphweid/fretwork/difficulty"
	"github.com/jsphweid/fretwork/model"
	"github.com/jsphweid/fretwork/sequence"
	"github.com/jsphweid/fretwork/theory"
	"github.com/jsphweid/fretwork/voicing"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the voicing API over HTTP",
	Long:  `Serves the voicing API over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleVoicings(w http.ResponseWriter, r *http.Request) {
	var input model.VoicingsRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "could not parse request body: "+err.Error())
		return
	}

	c, err := theory.ParseChord(input.Chord)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	inst := model.StandardGuitar()
	inst.Capo = input.Capo

	vs, err := voicing.Search(c, inst, voicing.DefaultOptions())
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	res := make([]model.VoicingResult, 0)
	for i, v := range vs {
		if input.Max > 0 && i == input.Max {
			break
		}
		score := difficulty.Score(v)
		res = append(res, model.VoicingResult{
			Shape:      v.String(),
			Score:      score,
			Difficulty: difficulty.Categorize(score).String(),
			Fingers:    difficulty.FingersRequired(v),
		})
	}
	json.NewEncoder(w).Encode(res)
}

func HandleCapo(w http.ResponseWriter, r *http.Request) {
	var input model.CapoRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "could not parse request body: "+err.Error())
		return
	}

	chords, err := parseChords(input.Chords)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	maxFret := input.MaxCapoFret
	if maxFret == 0 {
		maxFret = capo.DefaultMaxCapoFret
	}

	res := make([]model.CapoResult, 0)
	for _, s := range capo.Suggest(chords, model.StandardGuitar(), maxFret) {
		shapes := make([]string, len(s.Shapes))
		for i, c := range s.Shapes {
			shapes[i] = c.String()
		}
		res = append(res, model.CapoResult{
			CapoFret:    s.CapoFret,
			Shapes:      shapes,
			Score:       s.Score,
			Description: s.Description(),
		})
	}
	json.NewEncoder(w).Encode(res)
}

func HandleSequence(w http.ResponseWriter, r *http.Request) {
	var input model.SequenceRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, 400, "could not parse request body: "+err.Error())
		return
	}

	chords, err := parseChords(input.Chords)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}
	pref, err := parsePreference(input.Prefer)
	if err != nil {
		writeError(w, 400, err.Error())
		return
	}

	inst := model.StandardGuitar()
	candidates := make([][]model.Voicing, len(chords))
	for i, c := range chords {
		vs, err := voicing.Search(c, inst, voicing.DefaultOptions())
		if err != nil {
			writeError(w, 400, err.Error())
			return
		}
		candidates[i] = vs
	}

	res := make([]model.SequenceResult, 0)
	for i, pick := range sequence.Plan(candidates, pref) {
		out := model.SequenceResult{Chord: chords[i].String()}
		if pick.OriginalIndex >= 0 {
			out.Shape = pick.Voicing.String()
			out.TransitionCost = pick.TransitionCost
			out.Category = sequence.CategorizeCost(pick.TransitionCost)
		}
		res = append(res, out)
	}
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/voicings", HandleVoicings).Methods("POST")
	router.HandleFunc("/capo", HandleCapo).Methods("POST")
	router.HandleFunc("/sequence", HandleSequence).Methods("POST")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
