package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/krishisahayak/internal/oracle"
	"github.com/krishisahayak/internal/pipeline"
	"github.com/krishisahayak/internal/store"
	"github.com/krishisahayak/pkg/models"
)

type advisoryRequest struct {
	FarmerID string `json:"farmer_id"`
	Query    string `json:"query"`
	Language string `json:"language"`
	Channel  string `json:"channel"`
}

type advisoryResponse struct {
	RequestID string                  `json:"request_id"`
	Intent    string                  `json:"intent"`
	Degraded  bool                    `json:"degraded"`
	Advisory  models.AdvisoryResponse `json:"advisory"`
}

func (s *Server) createAdvisory(c echo.Context) error {
	var req advisoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.FarmerID == "" || req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "farmer_id and query are required")
	}

	result, err := s.pipeline.ProcessAdvisory(c.Request().Context(), pipeline.Request{
		FarmerID: req.FarmerID,
		Query:    req.Query,
		Language: models.Language(req.Language),
		Channel:  models.Channel(req.Channel),
	})
	if err != nil {
		if errors.Is(err, oracle.ErrAdvisoryGenerationFailed) {
			// The farmer sees a localized retry prompt, not the upstream error.
			lang := models.Language(req.Language)
			if !models.IsSupportedLanguage(lang) {
				lang = models.LangHindi
			}
			return c.JSON(http.StatusBadGateway, map[string]string{
				"error": s.formatter.RetryMessage(lang),
			})
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, advisoryResponse{
		RequestID: result.RequestID,
		Intent:    string(result.Intent),
		Degraded:  result.Degraded,
		Advisory:  result.Response,
	})
}

type profileSetupRequest struct {
	FarmerID       string  `json:"farmer_id"`
	Phone          string  `json:"phone"`
	Name           string  `json:"name"`
	Language       string  `json:"language"`
	State          string  `json:"state"`
	District       string  `json:"district"`
	SoilType       string  `json:"soil_type"`
	CurrentCrop    string  `json:"current_crop"`
	LandSize       float64 `json:"land_size"`
	IrrigationType string  `json:"irrigation_type"`
	MarketLocation string  `json:"market_location"`
}

func (s *Server) setupProfile(c echo.Context) error {
	var req profileSetupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.FarmerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "farmer_id is required")
	}

	lang := models.Language(req.Language)
	if req.Language == "" {
		lang = models.LangHindi
	}

	profile, err := s.profiles.Upsert(c.Request().Context(), models.FarmerProfile{
		ID:             req.FarmerID,
		Phone:          req.Phone,
		Name:           req.Name,
		Language:       lang,
		State:          req.State,
		District:       req.District,
		SoilType:       req.SoilType,
		CurrentCrop:    req.CurrentCrop,
		LandSize:       req.LandSize,
		IrrigationType: req.IrrigationType,
		MarketLocation: req.MarketLocation,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, profile)
}

func (s *Server) getProfile(c echo.Context) error {
	farmerID := c.Param("farmerId")

	profile, err := s.profiles.Get(c.Request().Context(), farmerID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "farmer profile not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, profile)
}

func (s *Server) getMessages(c echo.Context) error {
	farmerID := c.Param("farmerId")

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative integer")
		}
		limit = parsed
	}

	messages, err := s.messages.List(c.Request().Context(), farmerID, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if messages == nil {
		messages = []models.Message{}
	}
	return c.JSON(http.StatusOK, messages)
}

func (s *Server) getInsights(c echo.Context) error {
	farmerID := c.Param("farmerId")
	lang := models.Language(c.QueryParam("language"))

	insights, err := s.pipeline.BuildInsights(c.Request().Context(), farmerID, lang)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, insights)
}

// requireSupportedLanguage rejects requests carrying an explicit language
// code outside the supported set. An empty language falls through to the
// server default.
func requireSupportedLanguage(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var probe struct {
			Language string `json:"language"`
		}
		if err := bindProbe(c, &probe); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
		}
		if probe.Language != "" && !models.IsSupportedLanguage(models.Language(probe.Language)) {
			return echo.NewHTTPError(http.StatusBadRequest, "unsupported language code")
		}
		return next(c)
	}
}
