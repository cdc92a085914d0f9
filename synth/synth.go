// Package synth provides text-to-speech backends behind one interface.
package synth

import (
	"context"
	"fmt"
	"time"

	"github.com/udayjinna/Voice/voice"
)

// Audio is one synthesized utterance.
type Audio struct {
	Data   []byte
	Format string // e.g. "mp3"
}

// Synthesizer converts text plus a voice profile into audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, p voice.Profile) (*Audio, error)
	Name() string
	Close() error
}

// New builds the synthesizer named by provider. An empty or "none"
// provider returns nil: callers then skip audio generation entirely.
func New(ctx context.Context, provider, url string, timeout time.Duration) (Synthesizer, error) {
	switch provider {
	case "edge":
		return NewEdge(url, timeout), nil
	case "google":
		return NewGoogle(ctx)
	case "", "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown synth provider %q", provider)
	}
}
