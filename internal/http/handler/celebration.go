package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geniusdynamics/alumate-sub010/internal/http/dto"
	"github.com/geniusdynamics/alumate-sub010/internal/service"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

type CelebrationHandler struct {
	congratulations service.CongratulationService
}

func NewCelebrationHandler(congratulations service.CongratulationService) *CelebrationHandler {
	return &CelebrationHandler{congratulations: congratulations}
}

func (h *CelebrationHandler) Congratulate(c *gin.Context) {
	a, celebrationID, ok := target(c, "id")
	if !ok {
		return
	}

	var req dto.CongratulateRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}

	result, err := h.congratulations.Add(c.Request.Context(), a, celebrationID, req.Message)
	if err != nil {
		respondError(c, err, "celebration.congratulate")
		return
	}
	c.JSON(http.StatusOK, dto.ToCongratulatedResponse(result))
}

func (h *CelebrationHandler) Uncongratulate(c *gin.Context) {
	a, celebrationID, ok := target(c, "id")
	if !ok {
		return
	}

	removed, count, err := h.congratulations.Remove(c.Request.Context(), a, celebrationID)
	if err != nil {
		respondError(c, err, "celebration.uncongratulate")
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "congratulation not found", "code": string(transition.KindNotFound)})
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

func (h *CelebrationHandler) Recount(c *gin.Context) {
	a, celebrationID, ok := target(c, "id")
	if !ok {
		return
	}

	recount, err := h.congratulations.Recount(c.Request.Context(), a, celebrationID)
	if err != nil {
		respondError(c, err, "celebration.recount")
		return
	}
	c.JSON(http.StatusOK, dto.ToRecountResponse(recount))
}
