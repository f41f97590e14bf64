// Package pricing implements the deterministic quote arithmetic.
// No LLM involvement, pure rule-based logic.
package pricing

import (
	"math"
	"strings"
	"time"
)

// Cargo type pricing multipliers. Unknown types fall back to 1.0.
var cargoTypeMultipliers = map[string]float64{
	"general":    1.0,
	"perishable": 1.5,
	"hazardous":  2.0,
	"vehicles":   1.8,
	"livestock":  2.5,
}

// Peak season month ranges: November-December (holidays), June-August (summer).
var peakSeasons = [][2]time.Month{
	{time.November, time.December},
	{time.June, time.August},
}

const (
	peakMultiplier = 1.15

	// Standard air cargo volumetric conversion: kg per cubic meter.
	volumetricFactor = 167

	// Low-density threshold: volume exceeding weight (tonnes) * 6
	// triggers the volumetric surcharge check.
	densityThreshold = 6
)

// Input holds the arguments for a price calculation.
// Weight is in tonnes, Volume in cubic meters (nil when not supplied),
// ShippingDate formatted as YYYY-MM-DD.
type Input struct {
	BasePricePerKg float64
	Weight         float64
	CargoType      string
	ShippingDate   string
	Volume         *float64
}

// Breakdown exposes every intermediate term of the calculation for
// display. Total always equals what Calculate returns for the same input.
type Breakdown struct {
	BaseCost             float64 `json:"base_cost"`
	CargoType            string  `json:"cargo_type"`
	CargoMultiplier      float64 `json:"cargo_multiplier"`
	CargoSurcharge       float64 `json:"cargo_surcharge"`
	VolumeSurcharge      float64 `json:"volume_surcharge"`
	PeakSeasonMultiplier float64 `json:"peak_season_multiplier"`
	PeakSeasonSurcharge  float64 `json:"peak_season_surcharge"`
	Total                float64 `json:"total"`
}

// Calculate returns the total price in USD, rounded half-up to cents.
func Calculate(in Input) float64 {
	weightKg := in.Weight * 1000
	baseCost := in.BasePricePerKg * weightKg

	costWithCargo := baseCost * cargoMultiplier(in.CargoType)
	surcharge := volumeSurcharge(in)

	return round2((costWithCargo + surcharge) * seasonMultiplier(in.ShippingDate))
}

// GetBreakdown returns the full term-by-term breakdown.
func GetBreakdown(in Input) Breakdown {
	weightKg := in.Weight * 1000
	baseCost := in.BasePricePerKg * weightKg
	multiplier := cargoMultiplier(in.CargoType)
	surcharge := volumeSurcharge(in)
	peak := seasonMultiplier(in.ShippingDate)
	subtotal := baseCost*multiplier + surcharge

	return Breakdown{
		BaseCost:             round2(baseCost),
		CargoType:            in.CargoType,
		CargoMultiplier:      multiplier,
		CargoSurcharge:       round2(baseCost * (multiplier - 1)),
		VolumeSurcharge:      round2(surcharge),
		PeakSeasonMultiplier: peak,
		PeakSeasonSurcharge:  round2(subtotal * (peak - 1)),
		Total:                round2(subtotal * peak),
	}
}

func cargoMultiplier(cargoType string) float64 {
	if m, ok := cargoTypeMultipliers[strings.ToLower(cargoType)]; ok {
		return m
	}
	return 1.0
}

// volumeSurcharge bills volumetric weight when cargo is bulky relative
// to its mass: only when volume > weight(tonnes)*6 and the volumetric
// weight exceeds the actual weight.
func volumeSurcharge(in Input) float64 {
	if in.Volume == nil || *in.Volume <= in.Weight*densityThreshold {
		return 0
	}
	weightKg := in.Weight * 1000
	volumetricKg := *in.Volume * volumetricFactor
	if volumetricKg <= weightKg {
		return 0
	}
	return (volumetricKg - weightKg) * in.BasePricePerKg * 0.5
}

// seasonMultiplier applies the 15% peak surcharge for peak months.
// An unparseable date skips the check and prices as non-peak; pricing
// may be called by clients that bypass date validation.
func seasonMultiplier(shippingDate string) float64 {
	date, err := time.Parse("2006-01-02", shippingDate)
	if err != nil {
		return 1.0
	}
	month := date.Month()
	for _, season := range peakSeasons {
		if month >= season[0] && month <= season[1] {
			return peakMultiplier
		}
	}
	return 1.0
}

// round2 rounds half-up to two decimal places.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
