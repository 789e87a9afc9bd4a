package dto

import (
	"time"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/service"
)

type CongratulateRequest struct {
	Message *string `json:"message,omitempty" binding:"omitempty,max=500"`
}

type CongratulationResponse struct {
	ID            int64     `json:"id,string"`
	CelebrationID int64     `json:"celebration_id,string"`
	UserID        int64     `json:"user_id,string"`
	Message       *string   `json:"message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type CongratulatedResponse struct {
	Congratulation CongratulationResponse `json:"congratulation"`
	Count          int64                  `json:"congratulations_count"`
}

func ToCongratulatedResponse(r *service.Congratulated) CongratulatedResponse {
	c := r.Congratulation
	return CongratulatedResponse{
		Congratulation: CongratulationResponse{
			ID:            c.ID,
			CelebrationID: c.CelebrationID,
			UserID:        c.UserID,
			Message:       c.Message,
			CreatedAt:     c.CreatedAt,
		},
		Count: r.Count,
	}
}

type CountResponse struct {
	Count int64 `json:"congratulations_count"`
}

type RecountResponse struct {
	Count     int64 `json:"congratulations_count"`
	Previous  int64 `json:"previous"`
	Corrected bool  `json:"corrected"`
}

func ToRecountResponse(r model.Recount) RecountResponse {
	return RecountResponse{
		Count:     r.Current,
		Previous:  r.Previous,
		Corrected: r.Drifted(),
	}
}
