package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/krishisahayak/internal/advisory"
	"github.com/krishisahayak/internal/format"
	"github.com/krishisahayak/internal/oracle"
	"github.com/krishisahayak/internal/prompts"
	"github.com/krishisahayak/internal/speech"
	"github.com/krishisahayak/internal/store"
	"github.com/krishisahayak/pkg/models"
)

// Service orchestrates one advisory turn: profile resolution, context
// aggregation, intent classification, prompt synthesis, oracle invocation,
// action-plan extraction, formatting, voice rendering, and persistence.
// Only an oracle failure aborts the turn; everything downstream degrades.
type Service struct {
	profiles   store.ProfileStore
	messages   store.MessageStore
	aggregator *advisory.Aggregator
	oracle     oracle.Oracle
	formatter  *format.Formatter
	speech     *speech.Service
	logger     zerolog.Logger
}

func NewService(
	profiles store.ProfileStore,
	messages store.MessageStore,
	aggregator *advisory.Aggregator,
	llm oracle.Oracle,
	formatter *format.Formatter,
	voice *speech.Service,
	logger zerolog.Logger,
) *Service {
	return &Service{
		profiles:   profiles,
		messages:   messages,
		aggregator: aggregator,
		oracle:     llm,
		formatter:  formatter,
		speech:     voice,
		logger:     logger,
	}
}

// Request is one incoming farmer question.
type Request struct {
	FarmerID string
	Query    string
	Language models.Language
	Channel  models.Channel
}

// Result is the outcome of a processed advisory turn.
type Result struct {
	RequestID string
	Intent    advisory.Intent
	Response  models.AdvisoryResponse
	Degraded  bool
	Duration  time.Duration
}

// ProcessAdvisory runs the full pipeline for one farmer question.
func (s *Service) ProcessAdvisory(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	requestID := uuid.New().String()

	logger := s.logger.With().
		Str("request_id", requestID).
		Str("farmer_id", req.FarmerID).
		Logger()

	lang := req.Language
	if !models.IsSupportedLanguage(lang) {
		lang = models.LangHindi
	}
	channel := req.Channel
	if channel == "" {
		channel = models.ChannelChat
	}

	farmer := s.resolveProfile(ctx, req.FarmerID, lang, logger)

	advisoryCtx := s.aggregator.BuildContext(ctx, req.FarmerID, farmer, lang)
	intent := advisory.Classify(req.Query)
	logger.Debug().
		Str("intent", string(intent)).
		Bool("degraded", advisoryCtx.Degraded).
		Msg("Classified farmer query")

	prompt := prompts.Synthesize(intent, advisoryCtx, req.Query)
	sampling := prompts.SamplingFor(intent)

	raw, err := s.oracle.Invoke(ctx, prompt.System, prompt.User, sampling.MaxTokens, sampling.Temperature)
	if err != nil {
		logger.Error().Err(err).Msg("Advisory generation failed")
		return nil, err
	}

	plan := advisory.ExtractActionPlan(raw, advisory.DefaultMaxActionItems)

	response := s.formatter.Format(format.Advisory{
		RawText:    raw,
		ActionPlan: plan,
		Intent:     intent,
		Context:    advisoryCtx,
	}, lang, channel)
	response = s.formatter.AddDocumentation(response)

	messageID := uuid.New().String()
	if channel == models.ChannelVoice && s.speech != nil {
		locator, err := s.speech.Render(ctx, response.VoiceScript, lang, req.FarmerID, messageID)
		if err != nil {
			// Voice delivery degrades to text; the turn still succeeds.
			logger.Warn().Err(err).Msg("Voice rendering failed, returning text only")
		} else {
			response.AudioLocator = locator
		}
	}

	s.persistTurn(ctx, req, response, messageID, lang, logger)

	logger.Info().
		Str("intent", string(intent)).
		Int("action_items", len(response.ActionPlan)).
		Dur("duration", time.Since(start)).
		Msg("Advisory turn completed")

	return &Result{
		RequestID: requestID,
		Intent:    intent,
		Response:  response,
		Degraded:  advisoryCtx.Degraded,
		Duration:  time.Since(start),
	}, nil
}

// resolveProfile loads the farmer profile, provisioning a default one for
// first-time callers so the pipeline always has a complete profile to work
// with.
func (s *Service) resolveProfile(ctx context.Context, farmerID string, lang models.Language, logger zerolog.Logger) models.FarmerProfile {
	farmer, err := s.profiles.Get(ctx, farmerID)
	if err == nil {
		return farmer
	}

	farmer = DefaultProfile(farmerID, lang)
	if _, err := s.profiles.Upsert(ctx, farmer); err != nil {
		logger.Warn().Err(err).Msg("Failed to provision default profile")
	} else {
		logger.Debug().Msg("Provisioned default profile for new farmer")
	}
	return farmer
}

// DefaultProfile is the profile assumed for farmers who have not completed
// setup yet.
func DefaultProfile(farmerID string, lang models.Language) models.FarmerProfile {
	return models.FarmerProfile{
		ID:             farmerID,
		Language:       lang,
		State:          "Haryana",
		District:       "Hisar",
		SoilType:       "Loamy",
		CurrentCrop:    "Wheat",
		LandSize:       5,
		IrrigationType: "Tubewell",
		MarketLocation: "Hisar Mandi",
	}
}

// persistTurn appends the farmer question and the advisory answer to the
// conversation log. Persistence failures are logged and swallowed; the
// farmer already has the answer in hand.
func (s *Service) persistTurn(ctx context.Context, req Request, response models.AdvisoryResponse, messageID string, lang models.Language, logger zerolog.Logger) {
	now := time.Now().UTC()

	inbound := models.Message{
		ID:        uuid.New().String(),
		FarmerID:  req.FarmerID,
		Direction: models.DirectionIn,
		Content:   req.Query,
		Language:  lang,
		Timestamp: now,
	}
	if err := s.messages.Append(ctx, inbound); err != nil {
		logger.Warn().Err(err).Msg("Failed to persist inbound message")
	}

	outbound := models.Message{
		ID:           messageID,
		FarmerID:     req.FarmerID,
		Direction:    models.DirectionOut,
		Content:      response.DisplayText,
		Language:     lang,
		AudioLocator: response.AudioLocator,
		Timestamp:    now.Add(time.Millisecond),
	}
	if err := s.messages.Append(ctx, outbound); err != nil {
		logger.Warn().Err(err).Msg("Failed to persist outbound message")
	}
}
