package model

// Slots holds the fields gathered across conversation turns.
// Pointer fields distinguish "not provided" from a zero value;
// the JSON shape matches what clients echo back between turns.
type Slots struct {
	Origin        *string  `json:"origin,omitempty"`
	Destination   *string  `json:"destination,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	Volume        *float64 `json:"volume,omitempty"`
	CargoType     *string  `json:"cargo_type,omitempty"`
	ShippingDate  *string  `json:"shipping_date,omitempty"`
	BookingID     *string  `json:"booking_id,omitempty"`
	CustomerName  *string  `json:"customer_name,omitempty"`
	CustomerEmail *string  `json:"customer_email,omitempty"`
}

// Merge overlays extracted values onto the accumulated set.
// A field is only overwritten by a non-nil, non-empty value, so
// information gathered in earlier turns is never lost to an
// extractor that omits fields it already reported.
func (s Slots) Merge(extracted Slots) Slots {
	out := s
	if hasText(extracted.Origin) {
		out.Origin = extracted.Origin
	}
	if hasText(extracted.Destination) {
		out.Destination = extracted.Destination
	}
	if extracted.Weight != nil {
		out.Weight = extracted.Weight
	}
	if extracted.Volume != nil {
		out.Volume = extracted.Volume
	}
	if hasText(extracted.CargoType) {
		out.CargoType = extracted.CargoType
	}
	if hasText(extracted.ShippingDate) {
		out.ShippingDate = extracted.ShippingDate
	}
	if hasText(extracted.BookingID) {
		out.BookingID = extracted.BookingID
	}
	if hasText(extracted.CustomerName) {
		out.CustomerName = extracted.CustomerName
	}
	if hasText(extracted.CustomerEmail) {
		out.CustomerEmail = extracted.CustomerEmail
	}
	return out
}

func hasText(s *string) bool {
	return s != nil && *s != ""
}

// StringValue returns the dereferenced string or "".
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Float64Value returns the dereferenced float or 0.
func Float64Value(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// Float64Ptr returns a pointer to f.
func Float64Ptr(f float64) *float64 {
	return &f
}
