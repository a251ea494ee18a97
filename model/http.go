package model

type VoicingsRequestBody struct {
	Chord string `json:"chord"`
	Capo  int    `json:"capo"`
	Max   int    `json:"max"`
}

type VoicingResult struct {
	Shape      string `json:"shape"`
	Score      int    `json:"score"`
	Difficulty string `json:"difficulty"`
	Fingers    int    `json:"fingers"`
}

type CapoRequestBody struct {
	Chords      []string `json:"chords"`
	MaxCapoFret int      `json:"max_capo_fret"`
}

type CapoResult struct {
	CapoFret    int      `json:"capo_fret"`
	Shapes      []string `json:"shapes"`
	Score       float64  `json:"score"`
	Description string   `json:"description"`
}

type SequenceRequestBody struct {
	Chords []string `json:"chords"`
	Prefer string   `json:"prefer"`
}

type SequenceResult struct {
	Chord          string `json:"chord"`
	Shape          string `json:"shape"`
	TransitionCost int    `json:"transition_cost"`
	Category       string `json:"category"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
