package usecases

import (
	"agroyield-server/agronomy"
	"agroyield-server/entities"
	"agroyield-server/refdata"
	"agroyield-server/repositories"
	"agroyield-server/weather"
)

// AdvisoryUseCase serves the per-prediction advisory views. Every call
// recomputes from the stored record; derived data is never persisted, so a
// changed weather state between views is expected behavior.
type AdvisoryUseCase struct {
	Predictions repositories.PredictionRepository
	Weather     weather.Client
	RefData     refdata.Source
}

func NewAdvisoryUseCase(predictions repositories.PredictionRepository, weatherClient weather.Client, refData refdata.Source) *AdvisoryUseCase {
	return &AdvisoryUseCase{
		Predictions: predictions,
		Weather:     weatherClient,
		RefData:     refData,
	}
}

// SoilProfile derives the nutrient profile for a stored prediction.
func (uc *AdvisoryUseCase) SoilProfile(id uint) (*entities.SoilProfile, error) {
	p, err := uc.Predictions.GetByID(id)
	if err != nil {
		return nil, err
	}
	soil := agronomy.EstimateSoil(p.Location, p.Soil)
	return &soil, nil
}

// WeatherSnapshot fetches current conditions for the prediction's location.
func (uc *AdvisoryUseCase) WeatherSnapshot(id uint) (*entities.WeatherSnapshot, error) {
	p, err := uc.Predictions.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.Weather.Fetch(p.Location)
}

// IrrigationPlan recommends a watering method. It needs a fresh weather
// snapshot, so weather unavailability propagates to the caller.
func (uc *AdvisoryUseCase) IrrigationPlan(id uint) (*entities.IrrigationPlan, error) {
	p, err := uc.Predictions.GetByID(id)
	if err != nil {
		return nil, err
	}

	soil := agronomy.EstimateSoil(p.Location, p.Soil)
	snapshot, err := uc.Weather.Fetch(p.Location)
	if err != nil {
		return nil, err
	}

	plan := agronomy.RecommendIrrigation(soil, *snapshot)
	return &plan, nil
}

// Pesticides returns the reference rows for the prediction's crop. An empty
// list is a valid answer, not an error.
func (uc *AdvisoryUseCase) Pesticides(id uint) ([]entities.PesticideEntry, error) {
	p, err := uc.Predictions.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.RefData.Pesticides(p.Crop)
}
