package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geniusdynamics/alumate-sub010/internal/http/dto"
	"github.com/geniusdynamics/alumate-sub010/internal/service"
)

const defaultPendingLimit = 20

type ModerationHandler struct {
	moderation service.ModerationService
}

func NewModerationHandler(moderation service.ModerationService) *ModerationHandler {
	return &ModerationHandler{moderation: moderation}
}

func (h *ModerationHandler) Pending(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	var q dto.ListPendingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	if q.Limit == 0 {
		q.Limit = defaultPendingLimit
	}

	posts, err := h.moderation.Pending(c.Request.Context(), a, q.Limit, q.Offset)
	if err != nil {
		respondError(c, err, "moderation.pending")
		return
	}

	resp := dto.PendingPostsResponse{Posts: make([]dto.PostResponse, len(posts))}
	for i := range posts {
		resp.Posts[i] = dto.ToPostResponse(&posts[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ModerationHandler) Moderate(c *gin.Context) {
	a, postID, ok := target(c, "id")
	if !ok {
		return
	}

	var req dto.ModerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	post, err := h.moderation.Moderate(c.Request.Context(), a, postID, req.Decision, req.Note)
	if err != nil {
		respondError(c, err, "moderation.moderate")
		return
	}
	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}
