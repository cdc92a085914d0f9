package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/udayjinna/Voice/emotion"
	"github.com/udayjinna/Voice/engine"
	"github.com/udayjinna/Voice/voice"
)

type stubEngine struct {
	result *engine.Result
	err    error
}

func (s *stubEngine) Process(ctx context.Context, req engine.Request) (*engine.Result, error) {
	if s.err != nil {
		return nil, s.err
	}
	res := *s.result
	res.Text = req.Text
	return &res, nil
}

func happyEngine() *stubEngine {
	profile := emotion.Profile{
		Label:     emotion.Positive,
		Intensity: 0.8,
		Canonical: emotion.Distribution{emotion.Positive: 0.8, emotion.Negative: 0.2, emotion.Neutral: 0},
		Raw:       map[string]float64{"joy": 0.8, "sadness": 0.2},
	}
	return &stubEngine{
		result: &engine.Result{
			Emotion:   profile,
			Voice:     voice.Map(profile, ""),
			AudioFile: "speech_0123456789abcdef0123456789abcdef.mp3",
		},
	}
}

func newTestServer(t *testing.T, eng Engine) *Server {
	t.Helper()
	catalog, err := voice.Catalog("")
	if err != nil {
		t.Fatal(err)
	}
	return NewServer(eng, catalog, t.TempDir())
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, happyEngine())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("healthz = %d %q, want 200 ok", rec.Code, rec.Body.String())
	}
}

func TestIndexRendersForm(t *testing.T) {
	srv := newTestServer(t, happyEngine())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `action="/synthesize"`) {
		t.Error("index page is missing the synthesis form")
	}
}

func TestAPISynthesize(t *testing.T) {
	srv := newTestServer(t, happyEngine())

	req := httptest.NewRequest(http.MethodPost, "/api/synthesize",
		strings.NewReader(`{"text":"this is great"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", rec.Code, rec.Body.String())
	}

	var out synthesisResponse
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if out.Emotion != emotion.Positive {
		t.Errorf("emotion = %q, want positive", out.Emotion)
	}
	if out.Intensity != 0.8 {
		t.Errorf("intensity = %v, want 0.8", out.Intensity)
	}
	if out.AudioURL != "/static/audio/speech_0123456789abcdef0123456789abcdef.mp3" {
		t.Errorf("audio_url = %q", out.AudioURL)
	}
	if _, ok := out.CanonicalScores[emotion.Neutral]; !ok {
		t.Error("canonical_scores is missing the neutral baseline")
	}
}

func TestAPISynthesizeEmptyText(t *testing.T) {
	srv := newTestServer(t, happyEngine())

	for _, body := range []string{`{}`, `{"text":""}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/synthesize", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestAPISynthesizeInvalidJSON(t *testing.T) {
	srv := newTestServer(t, happyEngine())

	req := httptest.NewRequest(http.MethodPost, "/api/synthesize", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAPISynthesizeCollaboratorFailure(t *testing.T) {
	srv := newTestServer(t, &stubEngine{err: errors.New("classifier down")})

	req := httptest.NewRequest(http.MethodPost, "/api/synthesize",
		strings.NewReader(`{"text":"hi"}`))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestFormSynthesize(t *testing.T) {
	srv := newTestServer(t, happyEngine())

	req := httptest.NewRequest(http.MethodPost, "/synthesize",
		strings.NewReader("text=this+is+great"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	page := rec.Body.String()
	if !strings.Contains(page, "positive") {
		t.Error("page does not show the detected emotion")
	}
	if !strings.Contains(page, "/static/audio/speech_") {
		t.Error("page does not link the generated audio")
	}
}

func TestFormSynthesizeEmptyText(t *testing.T) {
	srv := newTestServer(t, happyEngine())

	req := httptest.NewRequest(http.MethodPost, "/synthesize", strings.NewReader("text="))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), "Please enter some text.") {
		t.Error("page does not show the empty-text message")
	}
}

func TestVoicesEndpoint(t *testing.T) {
	srv := newTestServer(t, happyEngine())

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/voices", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var opts []voice.Option
	if err := json.NewDecoder(rec.Body).Decode(&opts); err != nil {
		t.Fatal(err)
	}
	if len(opts) == 0 {
		t.Error("voice catalog is empty")
	}
}
