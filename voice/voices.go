package voice

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Option describes one selectable synthesizer voice.
type Option struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Language string   `json:"language" yaml:"language"`
	Gender   string   `json:"gender" yaml:"gender"`
	Styles   []string `json:"styles,omitempty" yaml:"styles,omitempty"`
}

// builtinCatalog lists neural voices known to honor prosody deltas.
var builtinCatalog = []Option{
	{ID: "en-US-AriaNeural", Name: "Aria", Language: "en-US", Gender: "Female", Styles: []string{"cheerful", "sad", "excited", "chat"}},
	{ID: "en-US-JennyNeural", Name: "Jenny", Language: "en-US", Gender: "Female", Styles: []string{"cheerful", "sad", "excited", "chat"}},
	{ID: "en-US-GuyNeural", Name: "Guy", Language: "en-US", Gender: "Male", Styles: []string{"cheerful", "sad", "excited"}},
	{ID: "en-US-DavisNeural", Name: "Davis", Language: "en-US", Gender: "Male", Styles: []string{"cheerful", "sad", "excited", "chat"}},
	{ID: "en-GB-SoniaNeural", Name: "Sonia", Language: "en-GB", Gender: "Female", Styles: []string{"cheerful", "sad"}},
	{ID: "en-GB-RyanNeural", Name: "Ryan", Language: "en-GB", Gender: "Male", Styles: []string{"cheerful", "chat"}},
	{ID: "en-AU-NatashaNeural", Name: "Natasha", Language: "en-AU", Gender: "Female"},
	{ID: "en-IN-NeerjaNeural", Name: "Neerja", Language: "en-IN", Gender: "Female"},
}

// Catalog returns the built-in voice options, or those parsed from the
// YAML override file at path when one is configured.
func Catalog(path string) ([]Option, error) {
	if path == "" {
		return builtinCatalog, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read voice catalog: %w", err)
	}
	var opts []Option
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("parse voice catalog: %w", err)
	}
	if len(opts) == 0 {
		return nil, fmt.Errorf("voice catalog %s contains no voices", path)
	}
	return opts, nil
}

// Find looks a voice up by ID in the given catalog.
func Find(catalog []Option, id string) (Option, bool) {
	for _, v := range catalog {
		if v.ID == id {
			return v, true
		}
	}
	return Option{}, false
}
