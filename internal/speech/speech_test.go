package speech

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishisahayak/pkg/models"
)

func TestVoiceFor(t *testing.T) {
	tests := []struct {
		lang     models.Language
		voiceID  string
		langCode string
	}{
		{models.LangHindi, "Aditi", "hi-IN"},
		{models.LangTamil, "Tamizh", "ta-IN"},
		{models.LangTelugu, "Telugu", "te-IN"},
		{models.LangKannada, "Kannada", "kn-IN"},
		{models.LangMalayalam, "Malayalam", "ml-IN"},
		{models.LangMarathi, "Marathi", "mr-IN"},
		{models.LangEnglish, "Joanna", "en-US"},
		{models.Language("xx"), "Joanna", "en-US"},
	}

	for _, tt := range tests {
		t.Run(string(tt.lang), func(t *testing.T) {
			v := VoiceFor(tt.lang)
			assert.Equal(t, tt.voiceID, v.VoiceID)
			assert.Equal(t, tt.langCode, v.LanguageCode)
		})
	}
}

func TestFileMediaStoreLayout(t *testing.T) {
	dir := t.TempDir()
	s := NewFileMediaStore(dir)

	locator, err := s.Put(context.Background(), "farmer-1", "msg-42", models.LangHindi, []byte("mp3"))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("audio", "farmer-1", "msg-42_hin.mp3"), locator)

	data, err := os.ReadFile(filepath.Join(dir, locator))
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3"), data)
}

func TestHTTPSynthesizer(t *testing.T) {
	var gotBody synthesisRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("audio-bytes"))
	}))
	defer server.Close()

	s := NewHTTPSynthesizer(server.URL, 5*time.Second, zerolog.Nop())

	audio, err := s.Synthesize(context.Background(), "नमस्ते किसान", models.LangHindi)

	require.NoError(t, err)
	assert.Equal(t, []byte("audio-bytes"), audio)
	assert.Equal(t, "नमस्ते किसान", gotBody.Text)
	assert.Equal(t, "Aditi", gotBody.VoiceID)
	assert.Equal(t, "mp3", gotBody.OutputFormat)
}

func TestHTTPSynthesizerReportsUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "voice model offline", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s := NewHTTPSynthesizer(server.URL, 5*time.Second, zerolog.Nop())

	_, err := s.Synthesize(context.Background(), "hello", models.LangEnglish)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestServiceRender(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mp3"))
	}))
	defer server.Close()

	svc := NewService(
		NewHTTPSynthesizer(server.URL, 5*time.Second, zerolog.Nop()),
		NewFileMediaStore(t.TempDir()),
		zerolog.Nop(),
	)

	locator, err := svc.Render(context.Background(), "script", models.LangTamil, "farmer-2", "msg-1")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("audio", "farmer-2", "msg-1_tam.mp3"), locator)
}

func TestDisabledSynthesizer(t *testing.T) {
	_, err := DisabledSynthesizer{}.Synthesize(context.Background(), "text", models.LangHindi)
	assert.ErrorIs(t, err, ErrSynthesisDisabled)
}
