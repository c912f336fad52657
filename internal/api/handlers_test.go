package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishisahayak/internal/advisory"
	"github.com/krishisahayak/internal/contextstore"
	"github.com/krishisahayak/internal/format"
	"github.com/krishisahayak/internal/oracle"
	"github.com/krishisahayak/internal/pipeline"
	"github.com/krishisahayak/internal/store"
	"github.com/krishisahayak/pkg/models"
)

type cannedOracle struct {
	answer string
	err    error
}

func (c cannedOracle) Invoke(context.Context, string, string, int, float64) (string, error) {
	return c.answer, c.err
}

func newTestServer(t *testing.T, llm cannedOracle) *Server {
	t.Helper()
	profiles := store.NewMemoryProfileStore()
	messages := store.NewMemoryMessageStore()
	formatter := format.NewFormatter(format.DefaultCatalog())
	svc := pipeline.NewService(
		profiles,
		messages,
		advisory.NewAggregator(contextstore.NewStaticStore(), zerolog.Nop()),
		llm,
		formatter,
		nil,
		zerolog.Nop(),
	)
	return NewServer(0, svc, profiles, messages, formatter, zerolog.Nop())
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echoContentType, "application/json")
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

const echoContentType = "Content-Type"

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, cannedOracle{answer: "ok"})

	rec := doJSON(t, s, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestCreateAdvisory(t *testing.T) {
	s := newTestServer(t, cannedOracle{answer: "1. Apply zinc sulphate\n2. Irrigate every 20 days"})

	rec := doJSON(t, s, http.MethodPost, "/api/v1/advisory",
		`{"farmer_id":"farmer-1","query":"How do I earn more profit?","language":"hin","channel":"chat"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp advisoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "profit_maximization", resp.Intent)
	assert.NotEmpty(t, resp.RequestID)
	assert.Len(t, resp.Advisory.ActionPlan, 2)
	assert.Equal(t, models.LangHindi, resp.Advisory.Language)
}

func TestCreateAdvisoryRejectsMissingFields(t *testing.T) {
	s := newTestServer(t, cannedOracle{answer: "ok"})

	rec := doJSON(t, s, http.MethodPost, "/api/v1/advisory", `{"farmer_id":"farmer-1"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateAdvisoryRejectsUnsupportedLanguage(t *testing.T) {
	s := newTestServer(t, cannedOracle{answer: "ok"})

	rec := doJSON(t, s, http.MethodPost, "/api/v1/advisory",
		`{"farmer_id":"farmer-1","query":"help","language":"fra"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported language")
}

func TestCreateAdvisoryReportsOracleFailure(t *testing.T) {
	s := newTestServer(t, cannedOracle{err: assert.AnError})

	rec := doJSON(t, s, http.MethodPost, "/api/v1/advisory",
		`{"farmer_id":"farmer-1","query":"help","language":"hin"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateAdvisoryReturnsLocalizedRetryPrompt(t *testing.T) {
	failure := fmt.Errorf("%w: model timed out", oracle.ErrAdvisoryGenerationFailed)
	s := newTestServer(t, cannedOracle{err: failure})

	rec := doJSON(t, s, http.MethodPost, "/api/v1/advisory",
		`{"farmer_id":"farmer-1","query":"help","language":"hin"}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "फिर प्रयास करें")
}

func TestProfileSetupAndFetch(t *testing.T) {
	s := newTestServer(t, cannedOracle{answer: "ok"})

	rec := doJSON(t, s, http.MethodPost, "/api/v1/profile-setup",
		`{"farmer_id":"farmer-9","name":"Ramesh","language":"hin","state":"Haryana","district":"Hisar","soil_type":"Loamy","current_crop":"Wheat","land_size":3.5}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/profile/farmer-9", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var profile models.FarmerProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Ramesh", profile.Name)
	assert.InDelta(t, 3.5, profile.LandSize, 0.001)
}

func TestGetProfileNotFound(t *testing.T) {
	s := newTestServer(t, cannedOracle{answer: "ok"})

	rec := doJSON(t, s, http.MethodGet, "/api/v1/profile/nobody", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetMessagesAfterAdvisory(t *testing.T) {
	s := newTestServer(t, cannedOracle{answer: "1. First step"})

	rec := doJSON(t, s, http.MethodPost, "/api/v1/advisory",
		`{"farmer_id":"farmer-1","query":"profit tips","language":"eng"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/messages/farmer-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var messages []models.Message
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
	require.Len(t, messages, 2)
	assert.Equal(t, models.DirectionOut, messages[0].Direction)
}

func TestGetMessagesEmptyHistory(t *testing.T) {
	s := newTestServer(t, cannedOracle{answer: "ok"})

	rec := doJSON(t, s, http.MethodGet, "/api/v1/messages/farmer-1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetMessagesRejectsBadLimit(t *testing.T) {
	s := newTestServer(t, cannedOracle{answer: "ok"})

	rec := doJSON(t, s, http.MethodGet, "/api/v1/messages/farmer-1?limit=banana", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetInsights(t *testing.T) {
	s := newTestServer(t, cannedOracle{answer: "ok"})

	rec := doJSON(t, s, http.MethodGet, "/api/v1/insights/farmer-1?language=hin", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var insights pipeline.Insights
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &insights))
	assert.Equal(t, "farmer-1", insights.FarmerID)
	assert.NotEmpty(t, insights.Risks)
	assert.NotEmpty(t, insights.MandiPrices)
}
