package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bookingHTTP "air-cargo-assistant/internal/booking/delivery/http"
	conversationHTTP "air-cargo-assistant/internal/conversation/delivery/http"
)

// setupBookingDomain registers the structured booking API.
func (srv HTTPServer) setupBookingDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := bookingHTTP.New(srv.l, srv.bookingUC)
	bookingHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Booking domain registered")
	return nil
}

// setupConversationDomain registers the conversational endpoint.
func (srv HTTPServer) setupConversationDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := conversationHTTP.New(srv.l, srv.conversationUC)
	conversationHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Conversation domain registered")
	return nil
}
