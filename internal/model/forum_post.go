package model

import "time"

type PostStatus string

const (
	PostStatusPending  PostStatus = "pending"
	PostStatusApproved PostStatus = "approved"
	PostStatusRejected PostStatus = "rejected"
)

type ModerationDecision string

const (
	ModerationApprove ModerationDecision = "approve"
	ModerationReject  ModerationDecision = "reject"
)

func (d ModerationDecision) Valid() bool {
	return d == ModerationApprove || d == ModerationReject
}

type ForumPost struct {
	ID             int64      `json:"id"`
	AuthorID       int64      `json:"author_id"`
	Body           string     `json:"body"`
	Status         PostStatus `json:"status"`
	ModeratedBy    *int64     `json:"moderated_by,omitempty"`
	ModeratedAt    *time.Time `json:"moderated_at,omitempty"`
	ModerationNote *string    `json:"moderation_note,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
