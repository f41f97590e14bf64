package http

import (
	"air-cargo-assistant/internal/booking"
	"air-cargo-assistant/internal/model"
	"air-cargo-assistant/internal/pricing"
)

// --- Request DTOs ---

type quoteReq struct {
	Origin       string   `json:"origin"`
	Destination  string   `json:"destination"`
	Weight       *float64 `json:"weight"`
	Volume       *float64 `json:"volume"`
	CargoType    string   `json:"cargo_type"`
	ShippingDate string   `json:"shipping_date"`
}

func (r quoteReq) toInput() booking.QuoteInput {
	return booking.QuoteInput{
		Origin:       r.Origin,
		Destination:  r.Destination,
		Weight:       r.Weight,
		Volume:       r.Volume,
		CargoType:    r.CargoType,
		ShippingDate: r.ShippingDate,
	}
}

type bookReq struct {
	quoteReq
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	Confirmed     bool   `json:"confirmed"`
}

func (r bookReq) toInput() booking.CreateInput {
	return booking.CreateInput{
		QuoteInput:    r.quoteReq.toInput(),
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Confirmed:     r.Confirmed,
	}
}

type cancelReq struct {
	BookingID string `json:"booking_id"`
	Confirmed bool   `json:"confirmed"`
}

func (r cancelReq) toInput() booking.CancelInput {
	return booking.CancelInput{
		BookingID: r.BookingID,
		Confirmed: r.Confirmed,
	}
}

type listReq struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
}

func (r listReq) toInput() booking.ListInput {
	return booking.ListInput{
		Status: r.Status,
		Limit:  r.Limit,
	}
}

// --- Response DTOs ---

type quoteResp struct {
	Origin       string            `json:"origin"`
	Destination  string            `json:"destination"`
	Weight       float64           `json:"weight"`
	CargoType    string            `json:"cargo_type"`
	ShippingDate string            `json:"shipping_date"`
	Price        float64           `json:"price"`
	Breakdown    pricing.Breakdown `json:"breakdown"`
	TransitDays  int               `json:"transit_days"`
}

func (h *handler) newQuoteResp(out booking.QuoteOutput) quoteResp {
	return quoteResp{
		Origin:       out.Origin,
		Destination:  out.Destination,
		Weight:       out.Weight,
		CargoType:    out.CargoType,
		ShippingDate: out.ShippingDate,
		Price:        out.Price,
		Breakdown:    out.Breakdown,
		TransitDays:  out.TransitDays,
	}
}

type bookResp struct {
	BookingID string  `json:"booking_id"`
	Status    string  `json:"status"`
	Price     float64 `json:"price"`
	Message   string  `json:"message"`
}

func (h *handler) newBookResp(out booking.CreateOutput) bookResp {
	return bookResp{
		BookingID: out.BookingID,
		Status:    out.Status,
		Price:     out.Price,
		Message:   out.Message,
	}
}

type cancelResp struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
	Message   string `json:"message"`
}

func (h *handler) newCancelResp(out booking.CancelOutput) cancelResp {
	return cancelResp{
		BookingID: out.BookingID,
		Status:    out.Status,
		Message:   out.Message,
	}
}

type bookingResp struct {
	BookingID    string  `json:"booking_id"`
	Status       string  `json:"status"`
	Origin       string  `json:"origin"`
	Destination  string  `json:"destination"`
	Weight       float64 `json:"weight"`
	CargoType    string  `json:"cargo_type"`
	ShippingDate string  `json:"shipping_date"`
	Price        float64 `json:"price"`
	CreatedAt    string  `json:"created_at"`
}

func newBookingResp(b model.Booking) bookingResp {
	return bookingResp{
		BookingID:    b.BookingID,
		Status:       b.Status,
		Origin:       b.Origin,
		Destination:  b.Destination,
		Weight:       b.Weight,
		CargoType:    b.CargoType,
		ShippingDate: b.ShippingDate,
		Price:        b.Price,
		CreatedAt:    b.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

type listResp struct {
	Bookings []bookingResp `json:"bookings"`
	Count    int           `json:"count"`
}

func (h *handler) newListResp(out booking.ListOutput) listResp {
	bookings := make([]bookingResp, len(out.Bookings))
	for i, b := range out.Bookings {
		bookings[i] = newBookingResp(b)
	}
	return listResp{
		Bookings: bookings,
		Count:    out.Count,
	}
}

type routeResp struct {
	Origin         string  `json:"origin"`
	Destination    string  `json:"destination"`
	BasePricePerKg float64 `json:"base_price_per_kg"`
	TransitDays    int     `json:"transit_days"`
}

type routesResp struct {
	Routes []routeResp `json:"routes"`
	Count  int         `json:"count"`
}

func (h *handler) newRoutesResp(routes []model.Route) routesResp {
	out := make([]routeResp, len(routes))
	for i, r := range routes {
		out[i] = routeResp{
			Origin:         r.Origin,
			Destination:    r.Destination,
			BasePricePerKg: r.BasePricePerKg,
			TransitDays:    r.TransitDays,
		}
	}
	return routesResp{Routes: out, Count: len(out)}
}
