package entities

// SoilProfile is a synthetic nutrient estimate derived from a prediction's
// location and soil type. Request-scoped, never persisted.
type SoilProfile struct {
	Type       string  `json:"type"`
	Nitrogen   float64 `json:"n"`
	Phosphorus float64 `json:"p"`
	Potassium  float64 `json:"k"`
	PH         float64 `json:"ph"`
}

// IrrigationPlan is a recommended watering method plus the standard
// checklist shown with every method.
type IrrigationPlan struct {
	Method string   `json:"method"`
	Image  string   `json:"image"`
	Steps  []string `json:"steps"`
}
