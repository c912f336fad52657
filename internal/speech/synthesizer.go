package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/krishisahayak/pkg/models"
)

// ErrSynthesisDisabled is returned when no TTS endpoint is configured.
var ErrSynthesisDisabled = errors.New("speech synthesis disabled")

// Synthesizer turns a voice script into playable audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, lang models.Language) ([]byte, error)
}

// HTTPSynthesizer calls an external TTS service over HTTP. The request body
// carries the script plus the voice selection for the farmer's language; the
// response body is the raw mp3 audio.
type HTTPSynthesizer struct {
	endpoint string
	client   *http.Client
	logger   zerolog.Logger
}

func NewHTTPSynthesizer(endpoint string, timeout time.Duration, logger zerolog.Logger) *HTTPSynthesizer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPSynthesizer{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger,
	}
}

type synthesisRequest struct {
	Text string `json:"text"`
	VoiceConfig
	OutputFormat string `json:"output_format"`
}

func (s *HTTPSynthesizer) Synthesize(ctx context.Context, text string, lang models.Language) ([]byte, error) {
	voice := VoiceFor(lang)
	payload, err := json.Marshal(synthesisRequest{
		Text:         text,
		VoiceConfig:  voice,
		OutputFormat: "mp3",
	})
	if err != nil {
		return nil, fmt.Errorf("encoding synthesis request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building synthesis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	s.logger.Debug().
		Str("voice_id", voice.VoiceID).
		Str("language_code", voice.LanguageCode).
		Int("text_length", len(text)).
		Msg("Requesting speech synthesis")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling synthesis service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("synthesis service returned %d: %s", resp.StatusCode, string(body))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading synthesis response: %w", err)
	}
	return audio, nil
}

// DisabledSynthesizer is used when the deployment has no TTS endpoint.
// Callers treat synthesis failures as non-fatal, so this degrades voice
// delivery to text-only.
type DisabledSynthesizer struct{}

func (DisabledSynthesizer) Synthesize(context.Context, string, models.Language) ([]byte, error) {
	return nil, ErrSynthesisDisabled
}
