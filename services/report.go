package services

import (
	"agroyield-server/agronomy"
	"agroyield-server/entities"
	"agroyield-server/refdata"
	"agroyield-server/repositories"
	"agroyield-server/weather"
)

// ReportService assembles the full downloadable report for a prediction:
// the stored record plus every advisory section, recomputed fresh.
type ReportService struct {
	Predictions repositories.PredictionRepository
	Weather     weather.Client
	RefData     refdata.Source
}

func NewReportService(predictions repositories.PredictionRepository, weatherClient weather.Client, refData refdata.Source) *ReportService {
	return &ReportService{
		Predictions: predictions,
		Weather:     weatherClient,
		RefData:     refData,
	}
}

// Assemble builds the report for a prediction id. When the weather provider
// is unavailable the report is still returned with the weather-independent
// sections filled in; Weather and Irrigation stay nil and WeatherError
// carries the message. An unknown id or a broken reference table is an error.
func (s *ReportService) Assemble(id uint) (*entities.Report, error) {
	p, err := s.Predictions.GetByID(id)
	if err != nil {
		return nil, err
	}

	soil := agronomy.EstimateSoil(p.Location, p.Soil)

	pesticides, err := s.RefData.Pesticides(p.Crop)
	if err != nil {
		return nil, err
	}

	report := &entities.Report{
		Crop:       p.Crop,
		Location:   p.Location,
		Acres:      p.Acres,
		YieldKg:    p.YieldKg,
		Date:       p.CreatedAt,
		Soil:       soil,
		Pesticides: pesticides,
	}

	snapshot, err := s.Weather.Fetch(p.Location)
	if err != nil {
		report.WeatherError = err.Error()
		return report, nil
	}

	report.Weather = snapshot
	plan := agronomy.RecommendIrrigation(soil, *snapshot)
	report.Irrigation = &plan

	return report, nil
}
