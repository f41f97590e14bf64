package http

import (
	"github.com/gin-gonic/gin"

	"air-cargo-assistant/pkg/response"
)

// Quote godoc
// @Summary     Get a price quote
// @Description Prices a shipment deterministically. No booking is created.
// @Tags        Booking
// @Accept      json
// @Produce     json
// @Param       body body quoteReq true "Shipment details"
// @Success     200 {object} quoteResp
// @Failure     400 {object} response.Resp "Validation failure or unknown route"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/quote [POST]
func (h *handler) Quote(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuoteReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Quote(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Quote: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newQuoteResp(output))
}

// Create godoc
// @Summary     Create a booking
// @Description Persists a booking. Requires confirmed=true; rejects without writing otherwise.
// @Tags        Booking
// @Accept      json
// @Produce     json
// @Param       body body bookReq true "Booking details"
// @Success     200 {object} bookResp
// @Failure     400 {object} response.Resp "Validation failure, unknown route, or missing confirmation"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/book [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBookReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newBookResp(output))
}

// Cancel godoc
// @Summary     Cancel a booking
// @Description Soft-deletes a booking by reference. Requires confirmed=true.
// @Tags        Booking
// @Accept      json
// @Produce     json
// @Param       body body cancelReq true "Booking reference"
// @Success     200 {object} cancelResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Already cancelled"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/cancel [POST]
func (h *handler) Cancel(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCancelReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Cancel(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Cancel: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCancelResp(output))
}

// Track godoc
// @Summary     Track a booking
// @Description Returns the current state of a booking by reference.
// @Tags        Booking
// @Accept      json
// @Produce     json
// @Param       booking_id path string true "Booking reference"
// @Success     200 {object} bookingResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/track/{booking_id} [GET]
func (h *handler) Track(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Track(ctx, c.Param("booking_id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Track: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newBookingResp(output.Booking))
}

// List godoc
// @Summary     List bookings
// @Description Returns bookings newest first with optional status filter.
// @Tags        Booking
// @Accept      json
// @Produce     json
// @Param       status query string false "Filter by status (pending/confirmed/cancelled)"
// @Param       limit  query int    false "Result cap (default: 50)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/bookings [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Routes godoc
// @Summary     List available routes
// @Description Returns every priced lane the service quotes against.
// @Tags        Booking
// @Accept      json
// @Produce     json
// @Success     200 {object} routesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/routes [GET]
func (h *handler) Routes(c *gin.Context) {
	ctx := c.Request.Context()

	routes, err := h.uc.Routes(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Routes: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRoutesResp(routes))
}
