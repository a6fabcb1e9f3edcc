package entities

// WeatherSnapshot holds point-in-time conditions for a location. Condition
// keeps the provider's raw label; Image is the presentation asset chosen
// from the mapped condition category.
type WeatherSnapshot struct {
	Temperature float64 `json:"temp"`
	Humidity    int     `json:"humidity"`
	Condition   string  `json:"condition"`
	Image       string  `json:"image"`
}
