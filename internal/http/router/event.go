package router

import (
	"github.com/gin-gonic/gin"

	"github.com/geniusdynamics/alumate-sub010/internal/http/handler"
)

func EventRouter(rg *gin.RouterGroup, h *handler.EventHandler) {
	rg.POST("/:id/registrations", h.Register)
	rg.DELETE("/:id/registrations", h.Unregister)
	rg.POST("/:id/favorite", h.Favorite)
	rg.DELETE("/:id/favorite", h.Unfavorite)
}

func JobRouter(rg *gin.RouterGroup, h *handler.JobHandler) {
	rg.POST("/:id/save", h.Save)
	rg.DELETE("/:id/save", h.Unsave)
}
