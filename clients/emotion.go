package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/udayjinna/Voice/emotion"
)

// --- Emotion classifier (/detect) ---
type detectReq struct {
	Text  string `json:"text"`
	Model string `json:"model,omitempty"`
}
type detectScore struct {
	Label string   `json:"label"`
	Score *float64 `json:"score"`
}
type detectResp struct {
	Emotions        []detectScore `json:"emotions"`
	DominantEmotion string        `json:"dominant_emotion"`
}

// Classifier calls an external emotion-classification service.
// It satisfies emotion.Classifier. Scores are decoded as pointers so
// entries arriving without a score stay marked malformed downstream.
type Classifier struct {
	http  *HTTP
	url   string
	model string
}

func NewClassifier(h *HTTP, url, model string) *Classifier {
	return &Classifier{http: h, url: url, model: model}
}

func (c *Classifier) Classify(ctx context.Context, text string) ([]emotion.RawScore, error) {
	b, _ := json.Marshal(detectReq{Text: text, Model: c.model})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/detect", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.c.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("emotion %s: %s", resp.Status, string(body))
	}

	var out detectResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("emotion decode: %w", err)
	}

	scores := make([]emotion.RawScore, 0, len(out.Emotions))
	for _, e := range out.Emotions {
		scores = append(scores, emotion.RawScore{Label: e.Label, Score: e.Score})
	}
	return scores, nil
}
