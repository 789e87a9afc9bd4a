package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/geniusdynamics/alumate-sub010/internal/http/middleware"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/service"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

// respondError maps service errors onto status codes. Relationship violations
// are 422 except Forbidden (403); a missing target resource is 404.
func respondError(c *gin.Context, err error, op string) {
	ctx := c.Request.Context()

	var v *transition.Violation
	switch {
	case errors.As(err, &v):
		status := http.StatusUnprocessableEntity
		if v.Kind == transition.KindForbidden {
			status = http.StatusForbidden
		}
		slog.InfoContext(ctx, "transition denied", "op", op, "kind", string(v.Kind), "detail", v.Detail)
		c.JSON(status, gin.H{"error": v.Error(), "code": string(v.Kind)})
	case errors.Is(err, service.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": string(transition.KindNotFound)})
	default:
		slog.ErrorContext(ctx, "request failed", "op", op, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "invalid request", "error", err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": "bad_request"})
}

// pathID parses a snowflake id path parameter, writing 400 on failure.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name, "code": "bad_request"})
		return 0, false
	}
	return id, true
}

// actor returns the authenticated actor, writing 401 when the route was not
// behind Authenticate.
func actor(c *gin.Context) (model.Actor, bool) {
	a, ok := middleware.ActorFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "code": "unauthenticated"})
	}
	return a, ok
}

// target reads the authenticated actor and an id path parameter.
func target(c *gin.Context, name string) (model.Actor, int64, bool) {
	a, ok := actor(c)
	if !ok {
		return model.Actor{}, 0, false
	}
	id, ok := pathID(c, name)
	return a, id, ok
}
