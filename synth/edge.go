package synth

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/udayjinna/Voice/voice"
)

// Edge talks to an edge-tts-compatible speech gateway over REST.
type Edge struct {
	httpClient *http.Client
	url        string
}

func NewEdge(url string, timeout time.Duration) *Edge {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Edge{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
	}
}

type edgeRequest struct {
	Text   string `json:"text"`
	Voice  string `json:"voice"`
	Rate   string `json:"rate"`
	Pitch  string `json:"pitch"`
	Volume string `json:"volume"`
	Format string `json:"format"`
}

// Synthesize posts the text and prosody deltas to the gateway and decodes
// the base64 MP3 payload it returns. The style hint is not forwarded; the
// gateway only accepts rate, pitch and volume.
func (e *Edge) Synthesize(ctx context.Context, text string, p voice.Profile) (*Audio, error) {
	body := edgeRequest{
		Text:   text,
		Voice:  p.Voice,
		Rate:   p.Rate,
		Pitch:  p.Pitch,
		Volume: p.Volume,
		Format: "mp3",
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, fmt.Errorf("encode synth request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url+"/synthesize", &buf)
	if err != nil {
		return nil, fmt.Errorf("build synth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synth http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("synth non 200: %d, body=%s", resp.StatusCode, string(b))
	}

	var respBody struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return nil, fmt.Errorf("decode synth response: %w", err)
	}
	if respBody.AudioContent == "" {
		return nil, fmt.Errorf("empty audioContent in synth response")
	}

	audioBytes, err := base64.StdEncoding.DecodeString(respBody.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decode base64 audioContent: %w", err)
	}

	return &Audio{Data: audioBytes, Format: "mp3"}, nil
}

func (e *Edge) Name() string { return "edge" }

func (e *Edge) Close() error { return nil }
