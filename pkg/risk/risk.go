// Package risk derives heat-risk indices from a weather observation. Every
// function here is pure: identical input always yields identical output.
package risk

import (
	"math"

	"calorsos.xyz/heat-alert-service/pkg/models"
	"calorsos.xyz/heat-alert-service/pkg/weather"
)

// Derived holds the indices computed from one observation.
type Derived struct {
	// NivelCalor is 0-100, clamped.
	NivelCalor float64 `json:"nivel_calor"`
	// NivelHidratacion is 1-10, clamped.
	NivelHidratacion int `json:"nivel_hidratacion"`
	// RiesgoTermico is the ordinal WBGT bucket, 0-5.
	RiesgoTermico int `json:"riesgo_termico"`
	// NivelAlerta is the severity written on alert records, monotone in
	// RiesgoTermico.
	NivelAlerta models.RiskLevel `json:"nivel_alerta"`
}

// wbgtThresholds buckets the WBGT proxy into riesgo termico 0-5:
// <24 -> 0, <27 -> 1, <30 -> 2, <33 -> 3, <36 -> 4, else -> 5.
var wbgtThresholds = [...]float64{24, 27, 30, 33, 36}

// Compute derives all indices from obs. Total: it never fails for any
// well-formed observation.
func Compute(obs *weather.Observation) Derived {
	wbgt := WBGTProxy(obs.Sensacion, obs.Humedad)
	thermal := ThermalRisk(wbgt)
	return Derived{
		NivelCalor:       HeatLevel(obs.Sensacion),
		NivelHidratacion: HydrationLevel(obs.Temperatura, obs.Humedad),
		RiesgoTermico:    thermal,
		NivelAlerta:      AlertLevel(thermal),
	}
}

// HeatLevel maps the feels-like temperature onto a 0-100 scale.
func HeatLevel(feelsLike float64) float64 {
	return clamp((feelsLike-20)*4, 0, 100)
}

// HydrationLevel estimates recommended hydration effort on a 1-10 scale.
func HydrationLevel(temperature, humidity float64) int {
	level := math.Round(1 + (humidity/100)*3 + (temperature/40)*5)
	return int(clamp(level, 1, 10))
}

// WBGTProxy approximates the wet-bulb globe temperature from the feels-like
// temperature and relative humidity. Not the full standard formula.
func WBGTProxy(feelsLike, humidity float64) float64 {
	return 0.7*feelsLike + 0.3*(humidity/10)
}

// ThermalRisk buckets a WBGT proxy value against wbgtThresholds.
func ThermalRisk(wbgt float64) int {
	for i, threshold := range wbgtThresholds {
		if wbgt < threshold {
			return i
		}
	}
	return len(wbgtThresholds)
}

// AlertLevel maps riesgo termico onto the recorded severity.
func AlertLevel(thermalRisk int) models.RiskLevel {
	switch {
	case thermalRisk <= 1:
		return models.RiskLevelNone
	case thermalRisk <= 3:
		return models.RiskLevelModerate
	case thermalRisk == 4:
		return models.RiskLevelHigh
	default:
		return models.RiskLevelExtreme
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
