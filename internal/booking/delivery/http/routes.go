package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// These are the direct, non-conversational operations used by
// deterministic clients; the chat wrapper lives in the conversation
// domain and goes through the same use case.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/quote", h.Quote)
	rg.POST("/book", h.Create)
	rg.POST("/cancel", h.Cancel)
	rg.GET("/track/:booking_id", h.Track)
	rg.GET("/bookings", h.List)
	rg.GET("/routes", h.Routes)
}
