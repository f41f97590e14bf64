package pricing

import "testing"

func f(v float64) *float64 { return &v }

func TestCalculate(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		want  float64
	}{
		{
			name: "GeneralCargoNoSurcharges",
			input: Input{
				BasePricePerKg: 2.50,
				Weight:         5.0,
				CargoType:      "general",
				ShippingDate:   "2026-02-15",
			},
			want: 12500.00,
		},
		{
			name: "PerishablePeakSeason",
			input: Input{
				BasePricePerKg: 2.50,
				Weight:         5.0,
				CargoType:      "perishable",
				ShippingDate:   "2026-12-15",
			},
			want: 21562.50,
		},
		{
			name: "VolumeSurcharge",
			input: Input{
				BasePricePerKg: 2.50,
				Weight:         10.0,
				CargoType:      "general",
				ShippingDate:   "2026-02-15",
				Volume:         f(80.0),
			},
			// volumetric 80*167=13360 kg vs 10000 kg actual:
			// surcharge (13360-10000)*2.50*0.5 = 4200 on top of 25000
			want: 29200.00,
		},
		{
			name: "DenseCargoNoVolumeSurcharge",
			input: Input{
				BasePricePerKg: 2.50,
				Weight:         10.0,
				CargoType:      "general",
				ShippingDate:   "2026-02-15",
				Volume:         f(50.0),
			},
			want: 25000.00,
		},
		{
			name: "UnknownCargoTypeDefaultsToGeneral",
			input: Input{
				BasePricePerKg: 2.50,
				Weight:         5.0,
				CargoType:      "furniture",
				ShippingDate:   "2026-02-15",
			},
			want: 12500.00,
		},
		{
			name: "UnparseableDatePricesAsNonPeak",
			input: Input{
				BasePricePerKg: 2.50,
				Weight:         5.0,
				CargoType:      "general",
				ShippingDate:   "garbage",
			},
			want: 12500.00,
		},
		{
			name: "SummerPeak",
			input: Input{
				BasePricePerKg: 2.00,
				Weight:         1.0,
				CargoType:      "general",
				ShippingDate:   "2026-07-01",
			},
			want: 2300.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(tt.input)
			if got != tt.want {
				t.Errorf("Calculate() = %.2f, want %.2f", got, tt.want)
			}
		})
	}
}

func TestCalculateDeterministic(t *testing.T) {
	in := Input{
		BasePricePerKg: 3.75,
		Weight:         12.5,
		CargoType:      "hazardous",
		ShippingDate:   "2026-11-20",
		Volume:         f(90.0),
	}

	first := Calculate(in)
	for i := 0; i < 10; i++ {
		if got := Calculate(in); got != first {
			t.Fatalf("call %d returned %.10f, first call returned %.10f", i, got, first)
		}
	}
}

func TestGetBreakdown(t *testing.T) {
	in := Input{
		BasePricePerKg: 2.50,
		Weight:         5.0,
		CargoType:      "perishable",
		ShippingDate:   "2026-12-15",
	}

	b := GetBreakdown(in)
	if b.BaseCost != 12500.00 {
		t.Errorf("BaseCost = %.2f, want 12500.00", b.BaseCost)
	}
	if b.CargoMultiplier != 1.5 {
		t.Errorf("CargoMultiplier = %.2f, want 1.5", b.CargoMultiplier)
	}
	if b.CargoSurcharge != 6250.00 {
		t.Errorf("CargoSurcharge = %.2f, want 6250.00", b.CargoSurcharge)
	}
	if b.PeakSeasonMultiplier != 1.15 {
		t.Errorf("PeakSeasonMultiplier = %.2f, want 1.15", b.PeakSeasonMultiplier)
	}
	if b.PeakSeasonSurcharge != 2812.50 {
		t.Errorf("PeakSeasonSurcharge = %.2f, want 2812.50", b.PeakSeasonSurcharge)
	}
	if b.Total != 21562.50 {
		t.Errorf("Total = %.2f, want 21562.50", b.Total)
	}
}

func TestBreakdownMatchesCalculate(t *testing.T) {
	inputs := []Input{
		{BasePricePerKg: 2.50, Weight: 5.0, CargoType: "general", ShippingDate: "2026-02-15"},
		{BasePricePerKg: 2.50, Weight: 10.0, CargoType: "vehicles", ShippingDate: "2026-08-01", Volume: f(80.0)},
		{BasePricePerKg: 4.10, Weight: 0.1, CargoType: "livestock", ShippingDate: "2026-11-30"},
	}

	for _, in := range inputs {
		if got, want := GetBreakdown(in).Total, Calculate(in); got != want {
			t.Errorf("breakdown total %.2f diverges from price %.2f for %+v", got, want, in)
		}
	}
}
