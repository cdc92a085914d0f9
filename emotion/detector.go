package emotion

import (
	"context"
	"fmt"
	"strings"
)

// RawScore is one classifier output entry. Score is a pointer so an entry
// missing its score on the wire is distinguishable from a zero score.
type RawScore struct {
	Label string
	Score *float64
}

// Classifier is the external text-classification collaborator.
type Classifier interface {
	Classify(ctx context.Context, text string) ([]RawScore, error)
}

// Profile is the detected emotion for one unit of text. Values are never
// mutated after construction.
type Profile struct {
	Label     Category           `json:"label"`
	Intensity float64            `json:"intensity"`
	Canonical Distribution       `json:"canonical_scores"`
	Raw       map[string]float64 `json:"raw_scores"`
}

// Detector turns text into an emotion Profile via its Classifier.
// It is safe for concurrent use.
type Detector struct {
	classifier Classifier
}

func NewDetector(c Classifier) *Detector { return &Detector{classifier: c} }

// Analyze classifies the trimmed text and selects the dominant canonical
// category with its intensity. Blank text short-circuits to a fixed neutral
// profile without touching the classifier. Malformed classifier entries
// (missing label or score) are skipped; duplicate labels are summed.
func (d *Detector) Analyze(ctx context.Context, text string) (Profile, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return neutralProfile(), nil
	}

	entries, err := d.classifier.Classify(ctx, text)
	if err != nil {
		return Profile{}, fmt.Errorf("classify: %w", err)
	}

	raw := make(map[string]float64, len(entries))
	for _, e := range entries {
		if e.Label == "" || e.Score == nil {
			continue
		}
		raw[strings.ToLower(e.Label)] += *e.Score
	}
	if len(raw) == 0 {
		return Profile{}, ErrEmptyClassifierOutput
	}

	canonical, err := Canonicalize(raw)
	if err != nil {
		return Profile{}, err
	}

	label, weight := canonical.Dominant()
	return Profile{
		Label:     label,
		Intensity: clamp01(weight),
		Canonical: canonical,
		Raw:       raw,
	}, nil
}

func neutralProfile() Profile {
	return Profile{
		Label:     Neutral,
		Intensity: 0,
		Canonical: Distribution{Positive: 0, Negative: 0, Neutral: 1},
		Raw:       map[string]float64{"neutral": 1},
	}
}

// clamp01 guards against floating-point overshoot in normalized weights.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
