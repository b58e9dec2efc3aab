package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the skill endpoint. mws run before the handler.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mws ...gin.HandlerFunc) {
	handlers := append(append([]gin.HandlerFunc{}, mws...), h.HandleEvent)
	rg.POST("/skill", handlers...)
}
