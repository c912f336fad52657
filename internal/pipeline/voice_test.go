package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishisahayak/internal/advisory"
	"github.com/krishisahayak/internal/contextstore"
	"github.com/krishisahayak/internal/format"
	"github.com/krishisahayak/internal/speech"
	"github.com/krishisahayak/internal/store"
	"github.com/krishisahayak/pkg/models"
)

type stubSynthesizer struct {
	err error
}

func (s stubSynthesizer) Synthesize(context.Context, string, models.Language) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte("mp3-bytes"), nil
}

func newVoiceService(t *testing.T, synth speech.Synthesizer) *Service {
	t.Helper()
	voice := speech.NewService(synth, speech.NewFileMediaStore(t.TempDir()), zerolog.Nop())
	return NewService(
		store.NewMemoryProfileStore(),
		store.NewMemoryMessageStore(),
		advisory.NewAggregator(contextstore.NewStaticStore(), zerolog.Nop()),
		&fixedOracle{answer: "1. Apply zinc\n2. Irrigate today"},
		format.NewFormatter(format.DefaultCatalog()),
		voice,
		zerolog.Nop(),
	)
}

func TestProcessAdvisoryVoiceChannelAttachesAudio(t *testing.T) {
	svc := newVoiceService(t, stubSynthesizer{})

	result, err := svc.ProcessAdvisory(context.Background(), Request{
		FarmerID: "farmer-1",
		Query:    "सिंचाई कब करूं?",
		Language: models.LangHindi,
		Channel:  models.ChannelVoice,
	})

	require.NoError(t, err)
	assert.Equal(t, advisory.IntentIrrigation, result.Intent)
	assert.NotEmpty(t, result.Response.AudioLocator)
	assert.Contains(t, result.Response.AudioLocator, "farmer-1")
	assert.Contains(t, result.Response.AudioLocator, "_hin.mp3")
}

func TestProcessAdvisoryVoiceFailureDegradesToText(t *testing.T) {
	svc := newVoiceService(t, stubSynthesizer{err: errors.New("tts unavailable")})

	result, err := svc.ProcessAdvisory(context.Background(), Request{
		FarmerID: "farmer-1",
		Query:    "पानी कब दूं?",
		Language: models.LangHindi,
		Channel:  models.ChannelVoice,
	})

	require.NoError(t, err)
	assert.Empty(t, result.Response.AudioLocator)
	assert.NotEmpty(t, result.Response.DisplayText)
	assert.NotEmpty(t, result.Response.VoiceScript)
}
