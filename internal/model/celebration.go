package model

import "time"

// Celebration wraps a user achievement that other members can congratulate.
type Celebration struct {
	ID                   int64     `json:"id"`
	UserAchievementID    int64     `json:"user_achievement_id"`
	UserID               int64     `json:"user_id"`
	CongratulationsCount int64     `json:"congratulations_count"`
	CreatedAt            time.Time `json:"created_at"`
}

type Congratulation struct {
	ID            int64     `json:"id"`
	CelebrationID int64     `json:"celebration_id"`
	UserID        int64     `json:"user_id"`
	Message       *string   `json:"message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Recount is the result of recomputing a denormalized counter from its source rows.
type Recount struct {
	ID       int64 `json:"id"`
	Previous int64 `json:"previous"`
	Current  int64 `json:"current"`
}

func (r Recount) Drifted() bool {
	return r.Previous != r.Current
}
