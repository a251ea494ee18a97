package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/fretwork/cmd"
	"github.com/jsphweid/fretwork/model"
	"github.com/stretchr/testify/assert"
)

func createReqBody(body any) io.Reader {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func TestAmVoicingsE2E(t *testing.T) {
	body := createReqBody(model.VoicingsRequestBody{Chord: "Am"})
	req := httptest.NewRequest(http.MethodPost, "/voicings", body)
	w := httptest.NewRecorder()
	cmd.HandleVoicings(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var results []model.VoicingResult
	err := json.Unmarshal(respBody, &results)
	if err != nil {
		panic(err.Error())
	}

	assert.NotEmpty(results)
	assert.Equal(results[0], model.VoicingResult{
		Shape:      "X02210",
		Score:      19,
		Difficulty: "beginner",
		Fingers:    3,
	})
}

func TestVoicingsMaxCapsResultsE2E(t *testing.T) {
	body := createReqBody(model.VoicingsRequestBody{Chord: "C", Max: 2})
	req := httptest.NewRequest(http.MethodPost, "/voicings", body)
	w := httptest.NewRecorder()
	cmd.HandleVoicings(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var results []model.VoicingResult
	err := json.Unmarshal(respBody, &results)
	if err != nil {
		panic(err.Error())
	}
	assert.Len(results, 2)
}

func TestFMajorCapoE2E(t *testing.T) {
	body := createReqBody(model.CapoRequestBody{Chords: []string{"F"}})
	req := httptest.NewRequest(http.MethodPost, "/capo", body)
	w := httptest.NewRecorder()
	cmd.HandleCapo(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var results []model.CapoResult
	err := json.Unmarshal(respBody, &results)
	if err != nil {
		panic(err.Error())
	}

	assert.Len(results, 13)
	assert.Equal(results[0], model.CapoResult{
		CapoFret:    1,
		Shapes:      []string{"E"},
		Score:       1.0,
		Description: "Capo fret 1: play E",
	})
}

func TestSequenceE2E(t *testing.T) {
	body := createReqBody(model.SequenceRequestBody{Chords: []string{"C", "G", "Am"}})
	req := httptest.NewRequest(http.MethodPost, "/sequence", body)
	w := httptest.NewRecorder()
	cmd.HandleSequence(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 200)

	var results []model.SequenceResult
	err := json.Unmarshal(respBody, &results)
	if err != nil {
		panic(err.Error())
	}

	assert.Len(results, 3)
	for i, chord := range []string{"C", "G", "Am"} {
		assert.Equal(results[i].Chord, chord)
		assert.NotEmpty(results[i].Shape)
		assert.Contains([]string{"easy", "medium", "hard"}, results[i].Category)
	}
}

func TestBadChordReturns400E2E(t *testing.T) {
	body := createReqBody(model.VoicingsRequestBody{Chord: "H"})
	req := httptest.NewRequest(http.MethodPost, "/voicings", body)
	w := httptest.NewRecorder()
	cmd.HandleVoicings(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)

	assert := assert.New(t)
	assert.Equal(resp.StatusCode, 400)

	var errResp model.ErrorResponse
	err := json.Unmarshal(respBody, &errResp)
	if err != nil {
		panic(err.Error())
	}
	assert.NotEmpty(errResp.Error)
}
