package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/udayjinna/Voice/emotion"
	"github.com/udayjinna/Voice/engine"
	"github.com/udayjinna/Voice/voice"
)

const requestTimeout = 60 * time.Second

type synthesisRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice,omitempty"`
}

type synthesisResponse struct {
	Emotion         emotion.Category     `json:"emotion"`
	Intensity       float64              `json:"intensity"`
	CanonicalScores emotion.Distribution `json:"canonical_scores"`
	AudioURL        string               `json:"audio_url"`
}

type pageView struct {
	Text   string
	Error  string
	Result *resultView
}

type resultView struct {
	Label        emotion.Category
	IntensityPct string
	Scores       []scoreRow
	Voice        voice.Profile
	AudioURL     string
}

type scoreRow struct {
	Label   emotion.Category
	Percent string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, pageView{})
}

func (s *Server) handleSynthesizeForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	text := r.FormValue("text")
	if text == "" {
		s.render(w, pageView{Error: "Please enter some text."})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	res, err := s.engine.Process(ctx, engine.Request{Text: text, Voice: r.FormValue("voice")})
	if err != nil {
		log.WithError(err).Error("synthesis failed")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusBadGateway)
		s.render(w, pageView{Text: text, Error: "Synthesis failed. Please try again."})
		return
	}

	s.render(w, pageView{Text: text, Result: buildResultView(res)})
}

func (s *Server) handleSynthesizeAPI(w http.ResponseWriter, r *http.Request) {
	var body synthesisRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	// Whitespace-only text is allowed and yields the neutral profile;
	// a missing or empty field is a client error.
	if body.Text == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()

	res, err := s.engine.Process(ctx, engine.Request{Text: body.Text, Voice: body.Voice})
	if err != nil {
		log.WithError(err).Error("synthesis failed")
		http.Error(w, "synthesis failed", http.StatusBadGateway)
		return
	}

	out := synthesisResponse{
		Emotion:         res.Emotion.Label,
		Intensity:       res.Emotion.Intensity,
		CanonicalScores: res.Emotion.Canonical,
		AudioURL:        audioURL(res.AudioFile),
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		log.WithError(err).Error("encode synthesis response")
	}
}

func (s *Server) handleVoices(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.catalog); err != nil {
		log.WithError(err).Error("encode voice catalog")
	}
}

func (s *Server) render(w http.ResponseWriter, view pageView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, view); err != nil {
		log.WithError(err).Error("render page")
	}
}

func buildResultView(res *engine.Result) *resultView {
	rows := make([]scoreRow, 0, len(res.Emotion.Canonical))
	for cat, w := range res.Emotion.Canonical {
		rows = append(rows, scoreRow{Label: cat, Percent: fmt.Sprintf("%.1f%%", w*100)})
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := res.Emotion.Canonical[rows[i].Label], res.Emotion.Canonical[rows[j].Label]
		if a != b {
			return a > b
		}
		return rows[i].Label < rows[j].Label
	})

	return &resultView{
		Label:        res.Emotion.Label,
		IntensityPct: fmt.Sprintf("%.0f%%", res.Emotion.Intensity*100),
		Scores:       rows,
		Voice:        res.Voice,
		AudioURL:     audioURL(res.AudioFile),
	}
}
