// Package engine runs the text-to-expressive-speech pipeline: detect the
// emotion, map it to prosody settings, synthesize and persist the audio.
package engine

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/udayjinna/Voice/emotion"
	"github.com/udayjinna/Voice/store"
	"github.com/udayjinna/Voice/synth"
	"github.com/udayjinna/Voice/voice"
)

type Engine struct {
	detectors    *emotion.Cache
	synth        synth.Synthesizer // nil disables audio generation
	store        *store.FileStore
	defaultVoice string
	defaultModel string
}

func New(detectors *emotion.Cache, s synth.Synthesizer, fs *store.FileStore, defaultVoice, defaultModel string) *Engine {
	if defaultVoice == "" {
		defaultVoice = voice.DefaultVoice
	}
	return &Engine{
		detectors:    detectors,
		synth:        s,
		store:        fs,
		defaultVoice: defaultVoice,
		defaultModel: defaultModel,
	}
}

type Request struct {
	Text  string
	Voice string // empty selects the engine default
	Model string // empty selects the engine default
}

type Result struct {
	Text      string
	Emotion   emotion.Profile
	Voice     voice.Profile
	AudioFile string // empty when no synthesizer is configured
}

// Analyze classifies text with the detector memoized for model.
func (e *Engine) Analyze(ctx context.Context, text, model string) (emotion.Profile, error) {
	if model == "" {
		model = e.defaultModel
	}
	return e.detectors.Get(model).Analyze(ctx, text)
}

// Process runs the full pipeline for one request. Collaborator failures
// propagate to the caller; they are never defaulted to neutral output.
func (e *Engine) Process(ctx context.Context, req Request) (*Result, error) {
	profile, err := e.Analyze(ctx, req.Text, req.Model)
	if err != nil {
		return nil, fmt.Errorf("analyze emotion: %w", err)
	}

	voiceID := req.Voice
	if voiceID == "" {
		voiceID = e.defaultVoice
	}
	vp := voice.Map(profile, voiceID)

	res := &Result{Text: req.Text, Emotion: profile, Voice: vp}
	if e.synth == nil {
		return res, nil
	}

	log.WithFields(log.Fields{
		"emotion":   profile.Label,
		"intensity": profile.Intensity,
		"voice":     vp.Voice,
		"rate":      vp.Rate,
		"pitch":     vp.Pitch,
	}).Debug("synthesizing speech")

	audio, err := e.synth.Synthesize(ctx, req.Text, vp)
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}

	name, err := e.store.Save(audio.Data, audio.Format)
	if err != nil {
		return nil, fmt.Errorf("save audio: %w", err)
	}
	res.AudioFile = name
	return res, nil
}
