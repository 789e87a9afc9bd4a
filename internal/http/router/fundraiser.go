package router

import (
	"github.com/gin-gonic/gin"

	"github.com/geniusdynamics/alumate-sub010/internal/http/handler"
)

// FundraiserRouter spans three resources, so it takes the api root group.
func FundraiserRouter(rg *gin.RouterGroup, h *handler.FundraiserHandler) {
	rg.POST("/campaigns/:id/fundraisers", h.Create)
	rg.POST("/fundraisers/:id/pause", h.Pause)
	rg.POST("/fundraisers/:id/resume", h.Resume)
	rg.POST("/fundraisers/:id/complete", h.Complete)
	rg.POST("/donations/:id/complete", h.CompleteDonation)
}
