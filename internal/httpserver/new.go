package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"air-cargo-assistant/internal/audit"
	"air-cargo-assistant/internal/booking"
	"air-cargo-assistant/internal/conversation"
	"air-cargo-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Domains
	bookingUC      booking.UseCase
	conversationUC conversation.UseCase
	auditUC        audit.UseCase

	// Abuse guard
	rateLimitEnabled  bool
	requestsPerMinute int
	rateLimitBurst    int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	BookingUC      booking.UseCase
	ConversationUC conversation.UseCase
	AuditUC        audit.UseCase

	RateLimitEnabled  bool
	RequestsPerMinute int
	RateLimitBurst    int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		bookingUC:         cfg.BookingUC,
		conversationUC:    cfg.ConversationUC,
		auditUC:           cfg.AuditUC,
		rateLimitEnabled:  cfg.RateLimitEnabled,
		requestsPerMinute: cfg.RequestsPerMinute,
		rateLimitBurst:    cfg.RateLimitBurst,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.bookingUC == nil {
		return errors.New("booking use case is required")
	}
	if srv.conversationUC == nil {
		return errors.New("conversation use case is required")
	}
	if srv.auditUC == nil {
		return errors.New("audit use case is required")
	}
	return nil
}
