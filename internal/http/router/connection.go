package router

import (
	"github.com/gin-gonic/gin"

	"github.com/geniusdynamics/alumate-sub010/internal/http/handler"
)

func ConnectionRouter(rg *gin.RouterGroup, h *handler.ConnectionHandler) {
	rg.POST("", h.Request)
	rg.GET("/status/:userId", h.Status)
	rg.POST("/:id/accept", h.Accept)
	rg.POST("/:id/decline", h.Decline)
	rg.DELETE("/:id", h.Remove)
}
