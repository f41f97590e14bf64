package booking

import "air-cargo-assistant/internal/model"

// DefaultRoutes is the lane table loaded into a fresh store. IDs are
// assigned by the store, not here.
func DefaultRoutes() []model.Route {
	return []model.Route{
		{Origin: "JFK", Destination: "LHR", BasePricePerKg: 2.50, TransitDays: 2},
		{Origin: "LHR", Destination: "JFK", BasePricePerKg: 2.50, TransitDays: 2},
		{Origin: "JFK", Destination: "CDG", BasePricePerKg: 2.60, TransitDays: 2},
		{Origin: "CDG", Destination: "JFK", BasePricePerKg: 2.60, TransitDays: 2},
		{Origin: "LAX", Destination: "NRT", BasePricePerKg: 3.20, TransitDays: 3},
		{Origin: "NRT", Destination: "LAX", BasePricePerKg: 3.20, TransitDays: 3},
		{Origin: "LAX", Destination: "HKG", BasePricePerKg: 3.40, TransitDays: 3},
		{Origin: "HKG", Destination: "LAX", BasePricePerKg: 3.40, TransitDays: 3},
		{Origin: "ORD", Destination: "FRA", BasePricePerKg: 2.80, TransitDays: 2},
		{Origin: "FRA", Destination: "ORD", BasePricePerKg: 2.80, TransitDays: 2},
		{Origin: "DFW", Destination: "LHR", BasePricePerKg: 2.90, TransitDays: 2},
		{Origin: "ATL", Destination: "CDG", BasePricePerKg: 2.70, TransitDays: 2},
		{Origin: "LHR", Destination: "DXB", BasePricePerKg: 2.40, TransitDays: 1},
		{Origin: "DXB", Destination: "LHR", BasePricePerKg: 2.40, TransitDays: 1},
		{Origin: "DXB", Destination: "BOM", BasePricePerKg: 1.90, TransitDays: 1},
		{Origin: "BOM", Destination: "DXB", BasePricePerKg: 1.90, TransitDays: 1},
		{Origin: "SIN", Destination: "SYD", BasePricePerKg: 2.30, TransitDays: 2},
		{Origin: "SYD", Destination: "SIN", BasePricePerKg: 2.30, TransitDays: 2},
		{Origin: "PVG", Destination: "LAX", BasePricePerKg: 3.10, TransitDays: 3},
		{Origin: "NRT", Destination: "SIN", BasePricePerKg: 2.20, TransitDays: 2},
	}
}
