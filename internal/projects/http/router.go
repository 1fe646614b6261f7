package http

import "github.com/gin-gonic/gin"

// Register registers the project list routes
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/vercel", h.ListProjects)
}
