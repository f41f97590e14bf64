package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"air-cargo-assistant/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.auditUC)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	ctx := context.Background()

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())

	if srv.rateLimitEnabled {
		srv.gin.Use(mw.RateLimit(srv.requestsPerMinute, srv.rateLimitBurst))
		srv.l.Infof(ctx, "Rate limit enabled: %d req/min, burst %d", srv.requestsPerMinute, srv.rateLimitBurst)
	} else {
		srv.l.Infof(ctx, "Rate limit disabled")
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	api.Use(mw.Audit())

	if err := srv.setupBookingDomain(ctx, api); err != nil {
		return err
	}
	if err := srv.setupConversationDomain(ctx, api); err != nil {
		return err
	}

	return nil
}
