package synth

import (
	"context"
	"fmt"
	"html"
	"strings"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"

	"github.com/udayjinna/Voice/voice"
)

// Google synthesizes speech through the Cloud Text-to-Speech API. Prosody
// deltas are applied by wrapping the text in an SSML <prosody> element.
type Google struct {
	client *texttospeech.Client
}

func NewGoogle(ctx context.Context) (*Google, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("texttospeech client: %w", err)
	}
	return &Google{client: client}, nil
}

func (g *Google) Synthesize(ctx context.Context, text string, p voice.Profile) (*Audio, error) {
	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Ssml{
				Ssml: prosodySSML(text, p),
			},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: languageCode(p.Voice),
			Name:         p.Voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}

	resp, err := g.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	return &Audio{Data: resp.AudioContent, Format: "mp3"}, nil
}

func prosodySSML(text string, p voice.Profile) string {
	return fmt.Sprintf(`<speak><prosody rate=%q pitch=%q volume=%q>%s</prosody></speak>`,
		p.Rate, p.Pitch, p.Volume, html.EscapeString(text))
}

// languageCode derives "en-US" from a voice name like "en-US-AriaNeural".
func languageCode(name string) string {
	t := strings.Split(name, "-")
	if len(t) < 3 {
		return name
	}
	return fmt.Sprintf("%s-%s", t[0], t[1])
}

func (g *Google) Name() string { return "google" }

func (g *Google) Close() error { return g.client.Close() }
