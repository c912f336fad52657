package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/krishisahayak/internal/advisory"
	"github.com/krishisahayak/internal/config"
	"github.com/krishisahayak/internal/contextstore"
	"github.com/krishisahayak/internal/format"
	"github.com/krishisahayak/internal/oracle"
	"github.com/krishisahayak/internal/pipeline"
	"github.com/krishisahayak/internal/speech"
	"github.com/krishisahayak/internal/store"
)

// services bundles everything a command needs after wiring.
type services struct {
	pipeline  *pipeline.Service
	profiles  store.ProfileStore
	messages  store.MessageStore
	formatter *format.Formatter
	logger    zerolog.Logger
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// buildServices wires the full advisory stack from configuration. Without a
// database URL it falls back to in-memory stores, which is enough for local
// runs and the one-shot advise command.
func buildServices(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*services, error) {
	var (
		profiles store.ProfileStore
		messages store.MessageStore
	)
	switch {
	case cfg.Database.URL != "":
		db, err := store.OpenDB(cfg.Database.URL)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		if err := store.EnsureSchema(db); err != nil {
			return nil, err
		}
		profiles = store.NewPostgresProfileStore(db)
		messages = store.NewPostgresMessageStore(db)
	default:
		// No explicit URL; try DATABASE_URL / .env before giving up on
		// persistence entirely.
		if db, err := store.NewDB(); err == nil {
			if err := store.EnsureSchema(db); err != nil {
				return nil, err
			}
			profiles = store.NewPostgresProfileStore(db)
			messages = store.NewPostgresMessageStore(db)
		} else {
			logger.Warn().Msg("No database configured, using in-memory stores")
			profiles = store.NewMemoryProfileStore()
			messages = store.NewMemoryMessageStore()
		}
	}

	connector, err := oracle.NewConnector(ctx, oracle.Options{
		Provider: oracle.Provider(cfg.Oracle.Provider),
		APIKey:   cfg.Oracle.APIKey,
		Model:    cfg.Oracle.Model,
		BaseURL:  cfg.Oracle.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating oracle connector: %w", err)
	}
	resilient := oracle.NewResilientOracle(
		connector,
		time.Duration(cfg.Oracle.TimeoutSeconds)*time.Second,
		cfg.Oracle.RequestsPerSecond,
		logger,
	)

	var voice *speech.Service
	if cfg.Speech.Endpoint != "" {
		voice = speech.NewService(
			speech.NewHTTPSynthesizer(cfg.Speech.Endpoint, 30*time.Second, logger),
			speech.NewFileMediaStore(cfg.Speech.MediaDir),
			logger,
		)
	}

	aggregator := advisory.NewAggregator(contextstore.NewStaticStore(), logger)
	formatter := format.NewFormatter(format.DefaultCatalog())

	svc := pipeline.NewService(profiles, messages, aggregator, resilient, formatter, voice, logger)
	return &services{
		pipeline:  svc,
		profiles:  profiles,
		messages:  messages,
		formatter: formatter,
		logger:    logger,
	}, nil
}
