package emotion

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"
)

type stubClassifier struct {
	scores []RawScore
	err    error
	calls  int
}

func (s *stubClassifier) Classify(ctx context.Context, text string) ([]RawScore, error) {
	s.calls++
	return s.scores, s.err
}

func fptr(v float64) *float64 { return &v }

func TestAnalyzeBlankTextShortCircuits(t *testing.T) {
	stub := &stubClassifier{}
	d := NewDetector(stub)

	for _, text := range []string{"", "   ", "\n\t "} {
		got, err := d.Analyze(context.Background(), text)
		if err != nil {
			t.Fatalf("Analyze(%q): %v", text, err)
		}
		want := Profile{
			Label:     Neutral,
			Intensity: 0,
			Canonical: Distribution{Positive: 0, Negative: 0, Neutral: 1},
			Raw:       map[string]float64{"neutral": 1},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Analyze(%q) = %+v, want %+v", text, got, want)
		}
	}
	if stub.calls != 0 {
		t.Errorf("classifier called %d times for blank text, want 0", stub.calls)
	}
}

func TestAnalyzeSelectsDominant(t *testing.T) {
	stub := &stubClassifier{scores: []RawScore{
		{Label: "joy", Score: fptr(0.7)},
		{Label: "sadness", Score: fptr(0.3)},
	}}
	d := NewDetector(stub)

	got, err := d.Analyze(context.Background(), "what a day!")
	if err != nil {
		t.Fatal(err)
	}
	if got.Label != Positive {
		t.Errorf("Label = %q, want positive", got.Label)
	}
	if math.Abs(got.Intensity-0.7) > 1e-9 {
		t.Errorf("Intensity = %v, want 0.7", got.Intensity)
	}
	if got.Raw["joy"] != 0.7 || got.Raw["sadness"] != 0.3 {
		t.Errorf("Raw = %v, want joy:0.7 sadness:0.3", got.Raw)
	}
}

func TestAnalyzeSkipsMalformedEntries(t *testing.T) {
	stub := &stubClassifier{scores: []RawScore{
		{Label: "", Score: fptr(0.9)}, // missing label
		{Label: "anger", Score: nil},  // missing score
		{Label: "joy", Score: fptr(1.0)},
	}}
	d := NewDetector(stub)

	got, err := d.Analyze(context.Background(), "fine")
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Raw) != 1 || got.Raw["joy"] != 1.0 {
		t.Errorf("Raw = %v, want only joy:1", got.Raw)
	}
}

func TestAnalyzeAllEntriesMalformed(t *testing.T) {
	stub := &stubClassifier{scores: []RawScore{
		{Label: "", Score: fptr(0.5)},
		{Label: "joy", Score: nil},
	}}
	d := NewDetector(stub)

	if _, err := d.Analyze(context.Background(), "fine"); !errors.Is(err, ErrEmptyClassifierOutput) {
		t.Errorf("err = %v, want ErrEmptyClassifierOutput", err)
	}
}

func TestAnalyzeEmptyClassifierOutput(t *testing.T) {
	d := NewDetector(&stubClassifier{})
	if _, err := d.Analyze(context.Background(), "fine"); !errors.Is(err, ErrEmptyClassifierOutput) {
		t.Errorf("err = %v, want ErrEmptyClassifierOutput", err)
	}
}

func TestAnalyzeSumsDuplicateLabels(t *testing.T) {
	stub := &stubClassifier{scores: []RawScore{
		{Label: "Joy", Score: fptr(0.4)},
		{Label: "joy", Score: fptr(0.6)},
	}}
	d := NewDetector(stub)

	got, err := d.Analyze(context.Background(), "fine")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got.Raw["joy"]-1.0) > 1e-9 {
		t.Errorf("Raw[joy] = %v, want 1 (duplicates summed after lower-casing)", got.Raw["joy"])
	}
}

func TestAnalyzePropagatesClassifierError(t *testing.T) {
	boom := errors.New("model unavailable")
	d := NewDetector(&stubClassifier{err: boom})

	if _, err := d.Analyze(context.Background(), "fine"); !errors.Is(err, boom) {
		t.Errorf("err = %v, want wrapped %v", err, boom)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.1, 0},
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{1.0000001, 1},
	}
	for _, tt := range tests {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
