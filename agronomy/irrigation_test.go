package agronomy

import (
	"testing"

	"agroyield-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func soil(ph float64) entities.SoilProfile {
	return entities.SoilProfile{Type: "Clay", PH: ph}
}

func snapshot(humidity int) entities.WeatherSnapshot {
	return entities.WeatherSnapshot{Temperature: 22, Humidity: humidity, Condition: "Clear"}
}

func TestRecommendIrrigation_PriorityOrder(t *testing.T) {
	tests := []struct {
		name     string
		ph       float64
		humidity int
		want     string
	}{
		{"high_humidity_wins_over_acid_soil", 5.0, 85, MethodFlood},
		{"high_humidity_wins_over_neutral_soil", 7.5, 85, MethodFlood},
		{"acid_soil_gets_drip", 6.0, 60, MethodDrip},
		{"dry_air_gets_sprinkler", 7.0, 30, MethodSprinkler},
		{"moderate_everything_gets_furrow", 7.0, 60, MethodFurrow},

		// Boundary values resolve to the next rule, not the triggering one.
		{"humidity_exactly_80_falls_through", 7.0, 80, MethodFurrow},
		{"humidity_exactly_80_acid_soil", 6.0, 80, MethodDrip},
		{"ph_exactly_6_5_falls_through", 6.5, 60, MethodFurrow},
		{"ph_exactly_6_5_dry_air", 6.5, 39, MethodSprinkler},
		{"humidity_exactly_40_falls_through", 6.5, 40, MethodFurrow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := RecommendIrrigation(soil(tt.ph), snapshot(tt.humidity))
			assert.Equal(t, tt.want, plan.Method)
		})
	}
}

func TestRecommendIrrigation_Total(t *testing.T) {
	methods := map[string]bool{
		MethodFlood:     true,
		MethodDrip:      true,
		MethodSprinkler: true,
		MethodFurrow:    true,
	}

	for humidity := -10; humidity <= 110; humidity += 10 {
		for _, ph := range []float64{0, 5.5, 6.49, 6.5, 7, 14} {
			plan := RecommendIrrigation(soil(ph), snapshot(humidity))
			assert.True(t, methods[plan.Method], "unexpected method %q", plan.Method)
			require.Len(t, plan.Steps, 4)
		}
	}
}

func TestRecommendIrrigation_PlanShape(t *testing.T) {
	plan := RecommendIrrigation(soil(7.0), snapshot(30))

	assert.Equal(t, MethodSprinkler, plan.Method)
	assert.Equal(t, "irrigation/sprinkler.jpg", plan.Image)
	assert.Equal(t, []string{
		"Prepare land properly",
		"Ensure uniform water flow",
		"Avoid over-irrigation",
		"Monitor soil moisture regularly",
	}, plan.Steps)
}

func TestRecommendIrrigation_StepsAreCopied(t *testing.T) {
	plan := RecommendIrrigation(soil(7.0), snapshot(60))
	plan.Steps[0] = "mutated"

	again := RecommendIrrigation(soil(7.0), snapshot(60))
	assert.Equal(t, "Prepare land properly", again.Steps[0])
}
