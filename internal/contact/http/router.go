package http

import "github.com/gin-gonic/gin"

// Register registers the contact routes behind a per-IP rate limit
func (h *Handler) Register(rg *gin.RouterGroup, perMinute, burst int) {
	rg.POST("/contact", RateLimit(perMinute, burst), h.Submit)
}
