package usecases

import (
	"errors"
	"fmt"
	"math"

	"agroyield-server/entities"
	"agroyield-server/refdata"
	"agroyield-server/repositories"
)

var (
	// ErrValidation marks a rejected submission (missing field, bad acres).
	ErrValidation = errors.New("validation failed")
	// ErrCropNotFound means the yield table has no rows for the crop, so
	// the mean yield is undefined and nothing is persisted.
	ErrCropNotFound = errors.New("crop not found in yield data")
)

type PredictionUseCase struct {
	Predictions repositories.PredictionRepository
	RefData     refdata.Source
}

func NewPredictionUseCase(predictions repositories.PredictionRepository, refData refdata.Source) *PredictionUseCase {
	return &PredictionUseCase{
		Predictions: predictions,
		RefData:     refData,
	}
}

// EstimateYield computes mean historical per-acre yield for the crop times
// the area, rounded to 2 decimals.
func (uc *PredictionUseCase) EstimateYield(crop string, acres float64) (float64, error) {
	values, err := uc.RefData.YieldValues(crop)
	if err != nil {
		return 0, err
	}
	if len(values) == 0 {
		return 0, ErrCropNotFound
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	return math.Round(mean*acres*100) / 100, nil
}

// CreatePrediction validates the submission, estimates the yield and stores
// the record. Nothing is written when any step fails.
func (uc *PredictionUseCase) CreatePrediction(userID uint, crop, soil string, acres float64, location string) (*entities.Prediction, error) {
	if userID == 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrValidation)
	}
	if crop == "" {
		return nil, fmt.Errorf("%w: crop is required", ErrValidation)
	}
	if soil == "" {
		return nil, fmt.Errorf("%w: soil type is required", ErrValidation)
	}
	if location == "" {
		return nil, fmt.Errorf("%w: location is required", ErrValidation)
	}
	if acres <= 0 {
		return nil, fmt.Errorf("%w: acres must be positive", ErrValidation)
	}

	yieldKg, err := uc.EstimateYield(crop, acres)
	if err != nil {
		return nil, err
	}

	p := &entities.Prediction{
		UserID:   userID,
		Crop:     crop,
		Soil:     soil,
		Acres:    acres,
		Location: location,
		YieldKg:  yieldKg,
	}
	if err := uc.Predictions.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPrediction retrieves a stored prediction by id.
func (uc *PredictionUseCase) GetPrediction(id uint) (*entities.Prediction, error) {
	return uc.Predictions.GetByID(id)
}

// ListByUser returns the user's predictions newest-first.
func (uc *PredictionUseCase) ListByUser(userID uint) ([]entities.Prediction, error) {
	return uc.Predictions.GetByUserID(userID)
}

// MostRecentID returns the id of the user's newest prediction.
func (uc *PredictionUseCase) MostRecentID(userID uint) (uint, error) {
	return uc.Predictions.MostRecentID(userID)
}
