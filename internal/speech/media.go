package speech

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/krishisahayak/pkg/models"
)

// MediaStore persists synthesized audio and returns a locator that the
// delivery channel can resolve to a playable URL or file.
type MediaStore interface {
	Put(ctx context.Context, farmerID, messageID string, lang models.Language, audio []byte) (string, error)
}

// FileMediaStore writes audio under a base directory using the layout
// audio/{farmerId}/{messageId}_{lang}.mp3. The returned locator is the path
// relative to the base directory.
type FileMediaStore struct {
	baseDir string
}

func NewFileMediaStore(baseDir string) *FileMediaStore {
	return &FileMediaStore{baseDir: baseDir}
}

func (s *FileMediaStore) Put(_ context.Context, farmerID, messageID string, lang models.Language, audio []byte) (string, error) {
	locator := filepath.Join("audio", farmerID, fmt.Sprintf("%s_%s.mp3", messageID, lang))
	full := filepath.Join(s.baseDir, locator)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("creating audio directory: %w", err)
	}
	if err := os.WriteFile(full, audio, 0o644); err != nil {
		return "", fmt.Errorf("writing audio file: %w", err)
	}
	return locator, nil
}
