// Package validation holds the deterministic field checks shared by the
// conversational engine and the direct booking endpoints. Every check
// returns either a normalized value or an *Error whose message is shown
// to the user as-is.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var bookingIDPattern = regexp.MustCompile(`^[A-Z0-9]{6,12}$`)

// NormalizeLocation converts a city name to its airport code.
// Unknown inputs are uppercased and returned unchanged.
func NormalizeLocation(location string) string {
	lower := strings.ToLower(strings.TrimSpace(location))

	if len(location) == 3 && isAlpha(location) {
		return strings.ToUpper(location)
	}
	if code, ok := locationMappings[lower]; ok {
		return code
	}
	return strings.ToUpper(location)
}

// Location validates a location and normalizes it to a 3-letter airport code.
func Location(location string) (string, error) {
	if strings.TrimSpace(location) == "" {
		return "", newError("Location cannot be empty")
	}

	normalized := NormalizeLocation(location)
	if len(normalized) != 3 || !isAlpha(normalized) {
		return "", newError(fmt.Sprintf(
			"Invalid location: %s. Please provide a valid city name or 3-letter airport code.", location))
	}
	return normalized, nil
}

// Weight validates cargo weight in tonnes.
func Weight(weight *float64) error {
	if weight == nil {
		return newError("Weight is required")
	}
	w := *weight
	switch {
	case w <= 0:
		return newError("Weight must be greater than 0")
	case w < minWeightTonnes:
		return newError("Minimum weight is 0.1 tonnes (100 kg)")
	case w > maxWeightTonnes:
		return newError("Maximum weight is 100 tonnes. For larger shipments, please contact us directly.")
	}
	return nil
}

// Volume validates cargo volume in cubic meters. Nil is valid, the field
// is optional.
func Volume(volume *float64) error {
	if volume == nil {
		return nil
	}
	v := *volume
	switch {
	case v <= 0:
		return newError("Volume must be greater than 0")
	case v > maxVolumeM3:
		return newError("Maximum volume is 1000 cubic meters")
	}
	return nil
}

// Date validates a shipping date against the given current time.
// It must be YYYY-MM-DD, not in the past, and at most a year out.
func Date(dateStr string, now time.Time) (string, error) {
	if dateStr == "" {
		return "", newError("Shipping date is required")
	}

	date, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return "", newError("Invalid date format. Please use YYYY-MM-DD (e.g., 2026-02-15)")
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return "", newError("Shipping date must be in the future")
	}
	if date.After(today.AddDate(0, 0, maxBookingDays)) {
		return "", newError("Shipping date must be within 1 year from today")
	}
	return dateStr, nil
}

// CargoType validates and normalizes a cargo type.
func CargoType(cargoType string) (string, error) {
	if cargoType == "" {
		return "", newError("Cargo type is required")
	}

	normalized := strings.ToLower(strings.TrimSpace(cargoType))
	if _, ok := validCargoTypes[normalized]; !ok {
		return "", newError(fmt.Sprintf(
			"Invalid cargo type. Valid types are: %s", strings.Join(cargoTypeList, ", ")))
	}
	return normalized, nil
}

// RoutePair checks that origin and destination differ. Route existence is
// checked against the store separately.
func RoutePair(origin, destination string) error {
	if origin == destination {
		return newError("Origin and destination cannot be the same")
	}
	return nil
}

// BookingID validates a booking reference and returns it uppercased.
func BookingID(bookingID string) (string, error) {
	if bookingID == "" {
		return "", newError("Booking ID is required")
	}

	upper := strings.ToUpper(bookingID)
	if !bookingIDPattern.MatchString(upper) {
		return "", newError("Invalid booking ID format")
	}
	return upper, nil
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return s != ""
}
