package model

// RankedVoicing is one candidate scored against its neighbors in a
// progression. OriginalIndex points back into the candidate list that was
// ranked; it is -1 when the slot had no candidates at all. TransitionCost
// is the combined ranking score (weighted neighbor cost, preference
// adjustment and a slice of the voicing's own difficulty).
type RankedVoicing struct {
	Voicing        Voicing
	OriginalIndex  int
	TransitionCost int
	IsSuggested    bool
}
