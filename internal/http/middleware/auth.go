package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/geniusdynamics/alumate-sub010/common/logger"
	"github.com/geniusdynamics/alumate-sub010/internal/auth"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

const actorKey = "actor"

// Authenticate requires a bearer token and stores the resolved actor on the
// gin context.
func Authenticate(verifier auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token", "code": "unauthenticated"})
			return
		}

		actor, err := verifier.Verify(token)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				msg = "token has expired"
			}
			slog.DebugContext(ctx, "token rejected", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg, "code": "unauthenticated"})
			return
		}

		actorID := actor.ID
		c.Request = c.Request.WithContext(logger.WithLogFields(ctx, logger.LogFields{ActorID: &actorID}))
		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFrom returns the actor set by Authenticate.
func ActorFrom(c *gin.Context) (model.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return model.Actor{}, false
	}
	actor, ok := v.(model.Actor)
	return actor, ok
}

// SetActor is used by tests and internal callers that authenticate by other means.
func SetActor(c *gin.Context, actor model.Actor) {
	c.Set(actorKey, actor)
}
