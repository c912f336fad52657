package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/krishisahayak/internal/format"
	"github.com/krishisahayak/internal/pipeline"
	"github.com/krishisahayak/internal/store"
)

// Server represents the API server
type Server struct {
	echo      *echo.Echo
	port      int
	pipeline  *pipeline.Service
	profiles  store.ProfileStore
	messages  store.MessageStore
	formatter *format.Formatter
	logger    zerolog.Logger
}

// NewServer creates a new API server
func NewServer(port int, svc *pipeline.Service, profiles store.ProfileStore, messages store.MessageStore, formatter *format.Formatter, logger zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	server := &Server{
		echo:      e,
		port:      port,
		pipeline:  svc,
		profiles:  profiles,
		messages:  messages,
		formatter: formatter,
		logger:    logger,
	}

	// Setup routes
	server.setupRoutes()

	return server
}

// setupRoutes configures all API endpoints
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	})

	// API v1 group
	v1 := s.echo.Group("/api/v1")

	v1.POST("/advisory", s.createAdvisory, requireSupportedLanguage)
	v1.POST("/profile-setup", s.setupProfile, requireSupportedLanguage)
	v1.GET("/profile/:farmerId", s.getProfile)
	v1.GET("/messages/:farmerId", s.getMessages)
	v1.GET("/insights/:farmerId", s.getInsights)
}

// Start begins the API server
func (s *Server) Start() error {
	// Start server in a goroutine
	go func() {
		if err := s.echo.Start(fmt.Sprintf(":%d", s.port)); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal().Err(err).Msg("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.echo.Shutdown(ctx)
}
