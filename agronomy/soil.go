// Package agronomy holds the pure decision logic of the pipeline: the soil
// nutrient derivation and the irrigation rule. No I/O, no stored state.
package agronomy

import (
	"hash/fnv"
	"math"
	"strings"

	"agroyield-server/entities"
)

// soilBase reduces a (location, soil type) pair to a stable bucket in
// [0, 100). FNV-1a is used so the derivation is identical across process
// restarts and runtimes; the runtime's randomized string hash must never
// leak into this.
func soilBase(location, soilType string) int {
	h := fnv.New32a()
	h.Write([]byte(location + soilType))
	return int(h.Sum32() % 100)
}

// EstimateSoil derives the synthetic nutrient profile for a location and
// soil type. Same inputs always produce the same profile.
func EstimateSoil(location, soilType string) entities.SoilProfile {
	base := float64(soilBase(location, soilType))
	return entities.SoilProfile{
		Type:       capitalize(soilType),
		Nitrogen:   round2(120 + base*1.2),
		Phosphorus: round2(25 + base*0.6),
		Potassium:  round2(150 + base*2.0),
		PH:         round2(5.5 + math.Mod(base, 20)/20),
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
