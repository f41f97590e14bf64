package validation

import (
	"testing"
	"time"
)

func TestLocation(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "CityName", input: "New York", want: "JFK"},
		{name: "CityNameLowercase", input: "los angeles", want: "LAX"},
		{name: "AirportCodeLowercase", input: "jfk", want: "JFK"},
		{name: "AirportCodeUppercase", input: "SIN", want: "SIN"},
		{name: "TrimmedCityName", input: "  hong kong  ", want: "HKG"},
		{name: "UnknownCity", input: "Unknown City", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "Whitespace", input: "   ", wantErr: true},
		{name: "Digits", input: "123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Location(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got %q", tt.input, got)
				}
				if !IsValidationError(err) {
					t.Errorf("expected validation error, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Location(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWeight(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name    string
		input   *float64
		wantErr string
	}{
		{name: "Nil", input: nil, wantErr: "Weight is required"},
		{name: "Zero", input: f(0), wantErr: "Weight must be greater than 0"},
		{name: "Negative", input: f(-5), wantErr: "Weight must be greater than 0"},
		{name: "BelowMinimum", input: f(0.09), wantErr: "Minimum weight is 0.1 tonnes (100 kg)"},
		{name: "AtMinimum", input: f(0.1)},
		{name: "AtMaximum", input: f(100.0)},
		{name: "AboveMaximum", input: f(100.01), wantErr: "Maximum weight is 100 tonnes. For larger shipments, please contact us directly."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Weight(tt.input)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("expected %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestVolume(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	if err := Volume(nil); err != nil {
		t.Errorf("nil volume should be valid, got %v", err)
	}
	if err := Volume(f(50)); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := Volume(f(0)); err == nil {
		t.Error("expected error for zero volume")
	}
	if err := Volume(f(1000.5)); err == nil {
		t.Error("expected error for volume above 1000")
	}
}

func TestDate(t *testing.T) {
	now := time.Date(2026, 2, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "Valid", input: "2026-02-15"},
		{name: "Today", input: "2026-02-01"},
		{name: "ExactlyOneYearOut", input: "2027-02-01"},
		{name: "Empty", input: "", wantErr: true},
		{name: "BadFormat", input: "15/02/2026", wantErr: true},
		{name: "Past", input: "2026-01-31", wantErr: true},
		{name: "TooFarOut", input: "2027-02-02", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Date(tt.input, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.input {
				t.Errorf("Date(%q) = %q, want input unchanged", tt.input, got)
			}
		})
	}
}

func TestCargoType(t *testing.T) {
	got, err := CargoType("Perishable")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "perishable" {
		t.Errorf("expected perishable, got %q", got)
	}

	if _, err := CargoType(""); err == nil {
		t.Error("expected error for empty cargo type")
	}

	_, err = CargoType("furniture")
	if err == nil {
		t.Fatal("expected error for unknown cargo type")
	}
	want := "Invalid cargo type. Valid types are: general, perishable, hazardous, vehicles, livestock"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
}

func TestRoutePair(t *testing.T) {
	if err := RoutePair("JFK", "LHR"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := RoutePair("JFK", "JFK"); err == nil {
		t.Error("expected error for identical origin and destination")
	}
}

func TestBookingID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "Valid", input: "ABC123", want: "ABC123"},
		{name: "LowercaseNormalized", input: "crg1a2b3c4d", want: "CRG1A2B3C4D"},
		{name: "TooShort", input: "AB12", wantErr: true},
		{name: "TooLong", input: "ABCDEF1234567", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "SpecialChars", input: "ABC-123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BookingID(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("BookingID(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
