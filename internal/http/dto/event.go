package dto

import (
	"time"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

type RegistrationResponse struct {
	ID           int64     `json:"id,string"`
	EventID      int64     `json:"event_id,string"`
	UserID       int64     `json:"user_id,string"`
	Status       string    `json:"status"`
	RegisteredAt time.Time `json:"registered_at"`
}

func ToRegistrationResponse(r *model.EventRegistration) *RegistrationResponse {
	return &RegistrationResponse{
		ID:           r.ID,
		EventID:      r.EventID,
		UserID:       r.UserID,
		Status:       string(r.Status),
		RegisteredAt: r.RegisteredAt,
	}
}

type FavoriteResponse struct {
	ID        int64     `json:"id,string"`
	EventID   int64     `json:"event_id,string"`
	UserID    int64     `json:"user_id,string"`
	CreatedAt time.Time `json:"created_at"`
}

func ToFavoriteResponse(f *model.EventFavorite) *FavoriteResponse {
	return &FavoriteResponse{
		ID:        f.ID,
		EventID:   f.EventID,
		UserID:    f.UserID,
		CreatedAt: f.CreatedAt,
	}
}

type SavedJobResponse struct {
	ID        int64     `json:"id,string"`
	JobID     int64     `json:"job_id,string"`
	UserID    int64     `json:"user_id,string"`
	CreatedAt time.Time `json:"created_at"`
}

func ToSavedJobResponse(s *model.SavedJob) *SavedJobResponse {
	return &SavedJobResponse{
		ID:        s.ID,
		JobID:     s.JobID,
		UserID:    s.UserID,
		CreatedAt: s.CreatedAt,
	}
}
