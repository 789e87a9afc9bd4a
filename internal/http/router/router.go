package router

import (
	"github.com/gin-gonic/gin"

	"github.com/geniusdynamics/alumate-sub010/internal/auth"
	"github.com/geniusdynamics/alumate-sub010/internal/http/handler"
	"github.com/geniusdynamics/alumate-sub010/internal/http/middleware"
	"github.com/geniusdynamics/alumate-sub010/internal/service"
)

type RouterConfig struct {
	Verifier auth.Verifier
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.Authenticate(cfg.Verifier))
	{
		ConnectionRouter(v1.Group("/connections"), handler.NewConnectionHandler(services.Connections()))
		EventRouter(v1.Group("/events"), handler.NewEventHandler(services.Registrations(), services.Favorites()))
		JobRouter(v1.Group("/jobs"), handler.NewJobHandler(services.SavedJobs()))
		CelebrationRouter(v1.Group("/celebrations"), handler.NewCelebrationHandler(services.Congratulations()))
		FundraiserRouter(v1, handler.NewFundraiserHandler(services.Fundraisers()))
		ModerationRouter(v1.Group("/moderation"), handler.NewModerationHandler(services.Moderation()))
	}
}
