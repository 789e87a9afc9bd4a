package dto

import (
	"time"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

type ModerateRequest struct {
	Decision model.ModerationDecision `json:"decision" binding:"required,oneof=approve reject"`
	Note     *string                  `json:"note,omitempty" binding:"omitempty,max=1000"`
}

type ListPendingQuery struct {
	Limit  int32 `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int32 `form:"offset" binding:"omitempty,min=0"`
}

type PostResponse struct {
	ID             int64      `json:"id,string"`
	AuthorID       int64      `json:"author_id,string"`
	Body           string     `json:"body"`
	Status         string     `json:"status"`
	ModeratedBy    *int64     `json:"moderated_by,omitempty,string"`
	ModeratedAt    *time.Time `json:"moderated_at,omitempty"`
	ModerationNote *string    `json:"moderation_note,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToPostResponse(p *model.ForumPost) PostResponse {
	return PostResponse{
		ID:             p.ID,
		AuthorID:       p.AuthorID,
		Body:           p.Body,
		Status:         string(p.Status),
		ModeratedBy:    p.ModeratedBy,
		ModeratedAt:    p.ModeratedAt,
		ModerationNote: p.ModerationNote,
		CreatedAt:      p.CreatedAt,
	}
}

type PendingPostsResponse struct {
	Posts []PostResponse `json:"posts"`
}
