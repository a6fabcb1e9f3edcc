package httpHandler

import (
	"errors"
	"net/http"

	"agroyield-server/repositories"
	"agroyield-server/services"
	"agroyield-server/usecases"
	"agroyield-server/weather"

	"github.com/gin-gonic/gin"
)

// AdvisoryHandler serves the per-prediction view pages: soil, weather,
// irrigation, pesticides, and the full report bundle.
type AdvisoryHandler struct {
	useCase *usecases.AdvisoryUseCase
	reports *services.ReportService
}

func NewAdvisoryHandler(useCase *usecases.AdvisoryUseCase, reports *services.ReportService) *AdvisoryHandler {
	return &AdvisoryHandler{
		useCase: useCase,
		reports: reports,
	}
}

// GetSoilProfile handles GET /api/v1/predictions/:id/soil
func (h *AdvisoryHandler) GetSoilProfile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	soil, err := h.useCase.SoilProfile(id)
	if err != nil {
		respondAdvisoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": soil})
}

// GetWeather handles GET /api/v1/predictions/:id/weather
func (h *AdvisoryHandler) GetWeather(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	snapshot, err := h.useCase.WeatherSnapshot(id)
	if err != nil {
		respondAdvisoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": snapshot})
}

// GetIrrigation handles GET /api/v1/predictions/:id/irrigation
func (h *AdvisoryHandler) GetIrrigation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	plan, err := h.useCase.IrrigationPlan(id)
	if err != nil {
		respondAdvisoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": plan})
}

// GetPesticides handles GET /api/v1/predictions/:id/pesticides
func (h *AdvisoryHandler) GetPesticides(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entries, err := h.useCase.Pesticides(id)
	if err != nil {
		respondAdvisoryError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  entries,
		"count": len(entries),
	})
}

// GetReport handles GET /api/v1/predictions/:id/report, the downloadable
// full bundle consumed by document rendering.
func (h *AdvisoryHandler) GetReport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	report, err := h.reports.Assemble(id)
	if err != nil {
		respondAdvisoryError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="crop_report.json"`)
	c.JSON(http.StatusOK, gin.H{"data": report})
}

// respondAdvisoryError maps pipeline failures onto status codes: unknown id
// → 404, weather provider down → 502, anything else → 500.
func respondAdvisoryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Prediction not found"})
	case errors.Is(err, weather.ErrUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute recommendation"})
	}
}
