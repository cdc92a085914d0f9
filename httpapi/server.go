// Package httpapi exposes the pipeline as a web form and a JSON API.
package httpapi

import (
	"context"
	"embed"
	"html/template"
	"net/http"

	"github.com/udayjinna/Voice/engine"
	"github.com/udayjinna/Voice/voice"
)

//go:embed templates/index.html
var templateFS embed.FS

// Engine is the slice of the pipeline the HTTP layer needs.
type Engine interface {
	Process(ctx context.Context, req engine.Request) (*engine.Result, error)
}

type Server struct {
	engine   Engine
	catalog  []voice.Option
	audioDir string
	mux      *http.ServeMux
	tmpl     *template.Template
}

func NewServer(eng Engine, catalog []voice.Option, audioDir string) *Server {
	s := &Server{
		engine:   eng,
		catalog:  catalog,
		audioDir: audioDir,
		mux:      http.NewServeMux(),
		tmpl:     template.Must(template.ParseFS(templateFS, "templates/index.html")),
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
	s.mux.HandleFunc("POST /synthesize", s.handleSynthesizeForm)
	s.mux.HandleFunc("POST /api/synthesize", s.handleSynthesizeAPI)
	s.mux.HandleFunc("GET /api/voices", s.handleVoices)

	// Generated audio is served back under the same URL shape the
	// responses advertise.
	fileServer := http.FileServer(http.Dir(s.audioDir))
	s.mux.Handle("GET /static/audio/", http.StripPrefix("/static/audio/", fileServer))

	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func audioURL(filename string) string {
	if filename == "" {
		return ""
	}
	return "/static/audio/" + filename
}
