package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geniusdynamics/alumate-sub010/internal/http/dto"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/service"
)

type ConnectionHandler struct {
	connections service.ConnectionService
}

func NewConnectionHandler(connections service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connections: connections}
}

func (h *ConnectionHandler) Request(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var req dto.RequestConnectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	conn, err := h.connections.Request(c.Request.Context(), a, req.TargetID, req.Message)
	if err != nil {
		respondError(c, err, "connection.request")
		return
	}
	c.JSON(http.StatusOK, dto.ToConnectionResponse(conn))
}

func (h *ConnectionHandler) Accept(c *gin.Context) {
	h.respond(c, "connection.accept", h.connections.Accept)
}

func (h *ConnectionHandler) Decline(c *gin.Context) {
	h.respond(c, "connection.decline", h.connections.Decline)
}

func (h *ConnectionHandler) respond(c *gin.Context, op string, fn func(context.Context, model.Actor, int64) (*model.Connection, error)) {
	a, id, ok := target(c, "id")
	if !ok {
		return
	}

	conn, err := fn(c.Request.Context(), a, id)
	if err != nil {
		respondError(c, err, op)
		return
	}
	c.JSON(http.StatusOK, dto.ToConnectionResponse(conn))
}

func (h *ConnectionHandler) Remove(c *gin.Context) {
	a, id, ok := target(c, "id")
	if !ok {
		return
	}

	if err := h.connections.Remove(c.Request.Context(), a, id); err != nil {
		respondError(c, err, "connection.remove")
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": true})
}

func (h *ConnectionHandler) Status(c *gin.Context) {
	a, otherID, ok := target(c, "userId")
	if !ok {
		return
	}

	conn, err := h.connections.Status(c.Request.Context(), a, otherID)
	if err != nil {
		respondError(c, err, "connection.status")
		return
	}
	c.JSON(http.StatusOK, dto.ToConnectionStatusResponse(a.ID, conn))
}
