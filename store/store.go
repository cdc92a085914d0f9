// Package store persists synthesized audio artifacts.
package store

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileStore writes audio files under a single directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	if dir == "" {
		dir = filepath.Join("static", "audio")
	}
	return &FileStore{dir: dir}
}

func (s *FileStore) Dir() string { return s.dir }

// Save writes data as speech_<uuid-hex>.<format> and returns the file
// name. The directory is created as needed; a partially written file is
// removed on failure.
func (s *FileStore) Save(data []byte, format string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create audio dir: %w", err)
	}

	u := uuid.New()
	name := fmt.Sprintf("speech_%s.%s", hex.EncodeToString(u[:]), format)
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("write audio file: %w", err)
	}
	return name, nil
}
