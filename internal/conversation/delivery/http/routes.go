package http

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the conversation endpoint on the given group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/conversation", h.Converse)
}
