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
	"github.com/krishisahayak/internal/oracle"
	"github.com/krishisahayak/internal/store"
	"github.com/krishisahayak/pkg/models"
)

// fixedOracle returns a canned advisory and records the prompt it saw.
type fixedOracle struct {
	answer     string
	err        error
	lastSystem string
	lastUser   string
}

func (f *fixedOracle) Invoke(ctx context.Context, systemText, userText string, maxTokens int, temperature float64) (string, error) {
	f.lastSystem = systemText
	f.lastUser = userText
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func newTestService(llm oracle.Oracle) (*Service, *store.MemoryProfileStore, *store.MemoryMessageStore) {
	profiles := store.NewMemoryProfileStore()
	messages := store.NewMemoryMessageStore()
	svc := NewService(
		profiles,
		messages,
		advisory.NewAggregator(contextstore.NewStaticStore(), zerolog.Nop()),
		llm,
		format.NewFormatter(format.DefaultCatalog()),
		nil,
		zerolog.Nop(),
	)
	return svc, profiles, messages
}

const cannedAnswer = "आपकी गेहूं की फसल के लिए:\n\n1. जिंक सल्फेट 25 किलो प्रति हेक्टेयर डालें\n2. चना की खेती पर विचार करें\n3. सीधे खरीदार को बेचें\n4. ड्रिप सिंचाई अपनाएं\n\nशुभकामनाएं!"

func TestProcessAdvisoryHindiProfitQuery(t *testing.T) {
	llm := &fixedOracle{answer: cannedAnswer}
	svc, _, messages := newTestService(llm)

	result, err := svc.ProcessAdvisory(context.Background(), Request{
		FarmerID: "farmer-1",
		Query:    "मेरी गेहूं की फसल से मुनाफा कैसे बढ़ाऊं?",
		Language: models.LangHindi,
		Channel:  models.ChannelChat,
	})

	require.NoError(t, err)
	assert.Equal(t, advisory.IntentProfitMaximization, result.Intent)
	assert.False(t, result.Degraded)
	assert.NotEmpty(t, result.RequestID)

	// The profit prompt embeds the economics of the current crop.
	assert.Contains(t, llm.lastUser, "₹105000")

	resp := result.Response
	require.Len(t, resp.ActionPlan, 4)
	assert.Equal(t, 1, resp.ActionPlan[0].Step)
	assert.Equal(t, models.PriorityHigh, resp.ActionPlan[0].Priority)
	assert.Equal(t, models.PriorityMedium, resp.ActionPlan[3].Priority)
	assert.Contains(t, resp.DisplayText, "कृषि सलाह")
	require.NotNil(t, resp.Documentation)
	assert.Equal(t, models.LangHindi, resp.Language)
	assert.Empty(t, resp.AudioLocator)

	// Both sides of the turn are persisted, answer first in the listing.
	stored, err := messages.List(context.Background(), "farmer-1", 0)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, models.DirectionOut, stored[0].Direction)
	assert.Equal(t, models.DirectionIn, stored[1].Direction)
	assert.Equal(t, "मेरी गेहूं की फसल से मुनाफा कैसे बढ़ाऊं?", stored[1].Content)
}

func TestProcessAdvisoryProvisionsDefaultProfile(t *testing.T) {
	svc, profiles, _ := newTestService(&fixedOracle{answer: "1. Test the soil"})

	_, err := svc.ProcessAdvisory(context.Background(), Request{
		FarmerID: "new-farmer",
		Query:    "what should I do?",
		Language: models.LangEnglish,
	})
	require.NoError(t, err)

	profile, err := profiles.Get(context.Background(), "new-farmer")
	require.NoError(t, err)
	assert.Equal(t, "Haryana", profile.State)
	assert.Equal(t, "Hisar", profile.District)
	assert.Equal(t, "Wheat", profile.CurrentCrop)
	assert.Equal(t, "Loamy", profile.SoilType)
	assert.InDelta(t, 5, profile.LandSize, 0.001)
}

func TestProcessAdvisoryKeepsExistingProfile(t *testing.T) {
	svc, profiles, _ := newTestService(&fixedOracle{answer: "1. Harvest soon"})

	_, err := profiles.Upsert(context.Background(), models.FarmerProfile{
		ID: "farmer-tn", State: "Tamil Nadu", District: "Coimbatore",
		SoilType: "Red", CurrentCrop: "Cotton", LandSize: 2,
	})
	require.NoError(t, err)

	_, err = svc.ProcessAdvisory(context.Background(), Request{
		FarmerID: "farmer-tn",
		Query:    "help with my cotton",
		Language: models.LangTamil,
	})
	require.NoError(t, err)

	profile, err := profiles.Get(context.Background(), "farmer-tn")
	require.NoError(t, err)
	assert.Equal(t, "Tamil Nadu", profile.State)
	assert.Equal(t, "Cotton", profile.CurrentCrop)
}

func TestProcessAdvisoryOracleFailureAborts(t *testing.T) {
	failure := errors.New("model melted down")
	svc, _, messages := newTestService(&fixedOracle{err: failure})

	_, err := svc.ProcessAdvisory(context.Background(), Request{
		FarmerID: "farmer-1",
		Query:    "anything",
		Language: models.LangHindi,
	})

	require.Error(t, err)

	// A failed turn leaves no partial conversation behind.
	stored, listErr := messages.List(context.Background(), "farmer-1", 0)
	require.NoError(t, listErr)
	assert.Empty(t, stored)
}

func TestProcessAdvisoryUnsupportedLanguageFallsBackToHindi(t *testing.T) {
	svc, _, _ := newTestService(&fixedOracle{answer: "1. Step one"})

	result, err := svc.ProcessAdvisory(context.Background(), Request{
		FarmerID: "farmer-1",
		Query:    "profit help",
		Language: models.Language("xx"),
	})

	require.NoError(t, err)
	assert.Equal(t, models.LangHindi, result.Response.Language)
}

func TestBuildInsights(t *testing.T) {
	svc, _, _ := newTestService(&fixedOracle{})

	insights, err := svc.BuildInsights(context.Background(), "farmer-1", models.LangHindi)

	require.NoError(t, err)
	assert.False(t, insights.Degraded)
	assert.Equal(t, "Rabi (Winter crop) - January", insights.Season)
	assert.NotEmpty(t, insights.Activities)
	assert.NotEmpty(t, insights.Risks)
	assert.NotEmpty(t, insights.PestAlerts)
	assert.NotEmpty(t, insights.Opportunities)
	assert.NotEmpty(t, insights.MandiPrices)
}
