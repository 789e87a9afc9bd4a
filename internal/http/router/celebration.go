package router

import (
	"github.com/gin-gonic/gin"

	"github.com/geniusdynamics/alumate-sub010/internal/http/handler"
)

func CelebrationRouter(rg *gin.RouterGroup, h *handler.CelebrationHandler) {
	rg.POST("/:id/congratulations", h.Congratulate)
	rg.DELETE("/:id/congratulations", h.Uncongratulate)
	rg.POST("/:id/recount", h.Recount)
}
