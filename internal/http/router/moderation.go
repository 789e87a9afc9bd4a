package router

import (
	"github.com/gin-gonic/gin"

	"github.com/geniusdynamics/alumate-sub010/internal/http/handler"
)

func ModerationRouter(rg *gin.RouterGroup, h *handler.ModerationHandler) {
	rg.GET("/posts/pending", h.Pending)
	rg.POST("/posts/:id", h.Moderate)
}
