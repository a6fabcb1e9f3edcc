package entities

// Report bundles a stored prediction with all of its recomputed advisory
// sections. Field names are the contract with presentation; keep them stable.
//
// Weather and Irrigation are nil when the weather provider is unavailable;
// WeatherError then carries the attributed message and the remaining
// sections are still filled in.
type Report struct {
	Crop         string           `json:"crop"`
	Location     string           `json:"location"`
	Acres        float64          `json:"acres"`
	YieldKg      float64          `json:"yield_kg"`
	Date         string           `json:"date"`
	Soil         SoilProfile      `json:"soil"`
	Weather      *WeatherSnapshot `json:"weather,omitempty"`
	Irrigation   *IrrigationPlan  `json:"irrigation,omitempty"`
	Pesticides   []PesticideEntry `json:"pesticides"`
	WeatherError string           `json:"weather_error,omitempty"`
}
