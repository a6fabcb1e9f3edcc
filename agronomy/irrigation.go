package agronomy

import (
	"strings"

	"agroyield-server/entities"
)

// Irrigation methods the advisor can select.
const (
	MethodFlood     = "Flood"
	MethodDrip      = "Drip"
	MethodSprinkler = "Sprinkler"
	MethodFurrow    = "Furrow"
)

// irrigationSteps is the same checklist for every method.
var irrigationSteps = []string{
	"Prepare land properly",
	"Ensure uniform water flow",
	"Avoid over-irrigation",
	"Monitor soil moisture regularly",
}

// RecommendIrrigation picks a watering method from the soil profile and
// current weather. Rules are checked in priority order, first match wins;
// boundary values (humidity 80, pH 6.5, humidity 40) fall through to the
// next rule.
func RecommendIrrigation(soil entities.SoilProfile, weather entities.WeatherSnapshot) entities.IrrigationPlan {
	method := MethodFurrow
	switch {
	case weather.Humidity > 80:
		method = MethodFlood
	case soil.PH < 6.5:
		method = MethodDrip
	case weather.Humidity < 40:
		method = MethodSprinkler
	}

	return entities.IrrigationPlan{
		Method: method,
		Image:  "irrigation/" + strings.ToLower(method) + ".jpg",
		Steps:  append([]string(nil), irrigationSteps...),
	}
}
