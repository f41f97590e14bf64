package validation

// Cargo types accepted for booking and quoting.
var validCargoTypes = map[string]struct{}{
	"general":    {},
	"perishable": {},
	"hazardous":  {},
	"vehicles":   {},
	"livestock":  {},
}

// cargoTypeList is the display order used in rejection messages.
var cargoTypeList = []string{"general", "perishable", "hazardous", "vehicles", "livestock"}

// locationMappings maps common city names to airport codes.
var locationMappings = map[string]string{
	"new york":    "JFK",
	"nyc":         "JFK",
	"los angeles": "LAX",
	"la":          "LAX",
	"chicago":     "ORD",
	"dallas":      "DFW",
	"atlanta":     "ATL",
	"london":      "LHR",
	"paris":       "CDG",
	"frankfurt":   "FRA",
	"tokyo":       "NRT",
	"hong kong":   "HKG",
	"sydney":      "SYD",
	"dubai":       "DXB",
	"mumbai":      "BOM",
	"singapore":   "SIN",
	"shanghai":    "PVG",
}

const (
	minWeightTonnes = 0.1
	maxWeightTonnes = 100
	maxVolumeM3     = 1000
	maxBookingDays  = 365

	dateLayout = "2006-01-02"
)
