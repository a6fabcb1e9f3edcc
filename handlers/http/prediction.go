package httpHandler

import (
	"errors"
	"net/http"
	"strconv"

	"agroyield-server/middleware"
	"agroyield-server/repositories"
	"agroyield-server/usecases"

	"github.com/gin-gonic/gin"
)

type PredictionHandler struct {
	useCase *usecases.PredictionUseCase
}

func NewPredictionHandler(useCase *usecases.PredictionUseCase) *PredictionHandler {
	return &PredictionHandler{
		useCase: useCase,
	}
}

type PredictionRequest struct {
	Crop     string  `json:"crop" binding:"required"`
	Soil     string  `json:"soil" binding:"required"`
	Acres    float64 `json:"acres" binding:"required"`
	Location string  `json:"location" binding:"required"`
}

// CreatePrediction handles POST /api/v1/predictions
func (h *PredictionHandler) CreatePrediction(c *gin.Context) {
	var req PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	prediction, err := h.useCase.CreatePrediction(middleware.UserID(c), req.Crop, req.Soil, req.Acres, req.Location)
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrValidation), errors.Is(err, usecases.ErrCropNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create prediction"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Prediction created successfully",
		"data":    prediction,
	})
}

// GetPrediction handles GET /api/v1/predictions/:id
func (h *PredictionHandler) GetPrediction(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	prediction, err := h.useCase.GetPrediction(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prediction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve prediction"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": prediction})
}

// ListPredictions handles GET /api/v1/predictions. The envelope carries the
// user's history newest-first plus the newest id for the "latest result"
// shortcut; latest_id is omitted when the user has no records yet.
func (h *PredictionHandler) ListPredictions(c *gin.Context) {
	userID := middleware.UserID(c)

	records, err := h.useCase.ListByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve predictions"})
		return
	}

	resp := gin.H{
		"data":  records,
		"count": len(records),
	}
	if latest, err := h.useCase.MostRecentID(userID); err == nil {
		resp["latest_id"] = latest
	}

	c.JSON(http.StatusOK, resp)
}

// parseID reads the :id route parameter, responding 404 for anything that
// is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Prediction not found"})
		return 0, false
	}
	return uint(id), true
}
