package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geniusdynamics/alumate-sub010/internal/http/dto"
	"github.com/geniusdynamics/alumate-sub010/internal/service"
)

type JobHandler struct {
	saved service.SavedJobService
}

func NewJobHandler(saved service.SavedJobService) *JobHandler {
	return &JobHandler{saved: saved}
}

// Save is idempotent: saving twice returns the existing record.
func (h *JobHandler) Save(c *gin.Context) {
	a, jobID, ok := target(c, "id")
	if !ok {
		return
	}

	saved, err := h.saved.Save(c.Request.Context(), a, jobID)
	if err != nil {
		respondError(c, err, "job.save")
		return
	}
	c.JSON(http.StatusOK, dto.ToSavedJobResponse(saved))
}

func (h *JobHandler) Unsave(c *gin.Context) {
	a, jobID, ok := target(c, "id")
	if !ok {
		return
	}

	if err := h.saved.Unsave(c.Request.Context(), a, jobID); err != nil {
		respondError(c, err, "job.unsave")
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": false})
}
