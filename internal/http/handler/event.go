package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geniusdynamics/alumate-sub010/internal/http/dto"
	"github.com/geniusdynamics/alumate-sub010/internal/service"
)

// EventHandler serves registrations and favorites, both keyed by event id.
type EventHandler struct {
	registrations service.RegistrationService
	favorites     service.FavoriteService
}

func NewEventHandler(registrations service.RegistrationService, favorites service.FavoriteService) *EventHandler {
	return &EventHandler{registrations: registrations, favorites: favorites}
}

func (h *EventHandler) Register(c *gin.Context) {
	a, eventID, ok := target(c, "id")
	if !ok {
		return
	}

	reg, err := h.registrations.Register(c.Request.Context(), a, eventID)
	if err != nil {
		respondError(c, err, "event.register")
		return
	}
	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *EventHandler) Unregister(c *gin.Context) {
	a, eventID, ok := target(c, "id")
	if !ok {
		return
	}

	if err := h.registrations.Unregister(c.Request.Context(), a, eventID); err != nil {
		respondError(c, err, "event.unregister")
		return
	}
	c.JSON(http.StatusOK, gin.H{"registered": false})
}

func (h *EventHandler) Favorite(c *gin.Context) {
	a, eventID, ok := target(c, "id")
	if !ok {
		return
	}

	fav, err := h.favorites.Add(c.Request.Context(), a, eventID)
	if err != nil {
		respondError(c, err, "event.favorite")
		return
	}
	c.JSON(http.StatusOK, dto.ToFavoriteResponse(fav))
}

func (h *EventHandler) Unfavorite(c *gin.Context) {
	a, eventID, ok := target(c, "id")
	if !ok {
		return
	}

	if err := h.favorites.Remove(c.Request.Context(), a, eventID); err != nil {
		respondError(c, err, "event.unfavorite")
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": false})
}
