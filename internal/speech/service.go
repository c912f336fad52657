package speech

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/krishisahayak/pkg/models"
)

// Service synthesizes a voice script and stores the resulting audio,
// returning a locator for the delivery channel. A failure anywhere in the
// chain returns an error and no locator; callers degrade to text-only.
type Service struct {
	synthesizer Synthesizer
	media       MediaStore
	logger      zerolog.Logger
}

func NewService(synthesizer Synthesizer, media MediaStore, logger zerolog.Logger) *Service {
	return &Service{synthesizer: synthesizer, media: media, logger: logger}
}

func (s *Service) Render(ctx context.Context, script string, lang models.Language, farmerID, messageID string) (string, error) {
	audio, err := s.synthesizer.Synthesize(ctx, script, lang)
	if err != nil {
		return "", fmt.Errorf("synthesizing voice response: %w", err)
	}

	locator, err := s.media.Put(ctx, farmerID, messageID, lang, audio)
	if err != nil {
		return "", fmt.Errorf("storing voice response: %w", err)
	}

	s.logger.Debug().
		Str("farmer_id", farmerID).
		Str("message_id", messageID).
		Str("locator", locator).
		Msg("Stored synthesized audio")
	return locator, nil
}
