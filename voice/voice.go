// Package voice maps emotion profiles onto synthesizer prosody settings.
package voice

import (
	"fmt"

	"github.com/udayjinna/Voice/emotion"
)

// DefaultVoice is used when a caller does not pick a voice.
const DefaultVoice = "en-US-AriaNeural"

// Profile carries the prosody settings derived from one emotion profile.
// Rate and volume are signed percent deltas, pitch a signed Hz delta.
// Style is a categorical hint and stays empty for neutral speech.
type Profile struct {
	Voice  string `json:"voice"`
	Rate   string `json:"rate"`
	Pitch  string `json:"pitch"`
	Volume string `json:"volume"`
	Style  string `json:"style,omitempty"`
}

type baseParams struct {
	ratePct   float64
	pitchHz   float64
	volumePct float64
	style     string
}

// baseTable holds the unscaled per-category prosody deltas.
var baseTable = map[emotion.Category]baseParams{
	emotion.Positive:    {18, 35, 4, "cheerful"},
	emotion.Negative:    {-12, -30, -2, "sad"},
	emotion.Neutral:     {0, 0, 0, ""},
	emotion.Surprised:   {24, 50, 6, "excited"},
	emotion.Inquisitive: {8, 18, 2, "chat"},
}

// Map translates an emotion profile into synthesizer settings. It is a pure
// function: the base deltas for the profile's category are scaled by an
// intensity multiplier in [0.6, 1.4], so zero-intensity speech keeps 60% of
// the base delta and never goes fully flat. Pass-through categories fall
// back to the neutral row. An empty voiceID selects DefaultVoice.
func Map(p emotion.Profile, voiceID string) Profile {
	if voiceID == "" {
		voiceID = DefaultVoice
	}
	base, ok := baseTable[p.Label]
	if !ok {
		base = baseTable[emotion.Neutral]
	}

	intensity := p.Intensity
	if intensity < 0 {
		intensity = 0
	}
	if intensity > 1 {
		intensity = 1
	}
	mult := 0.6 + intensity*0.8

	return Profile{
		Voice:  voiceID,
		Rate:   formatPercent(base.ratePct * mult),
		Pitch:  formatHz(base.pitchHz * mult),
		Volume: formatPercent(base.volumePct * mult),
		Style:  base.style,
	}
}

// formatPercent renders deltas the way edge-style synthesizers expect,
// e.g. "+15%" or "-10%".
func formatPercent(v float64) string { return fmt.Sprintf("%+.0f%%", v) }

func formatHz(v float64) string { return fmt.Sprintf("%+.0fHz", v) }
