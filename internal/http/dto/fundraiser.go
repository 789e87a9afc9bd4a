package dto

import (
	"time"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/service"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

type CreateFundraiserRequest struct {
	Title      string  `json:"title" binding:"required,min=1,max=200"`
	Story      *string `json:"story,omitempty" binding:"omitempty,max=10000"`
	GoalAmount int64   `json:"goal_amount" binding:"required"`
}

func (r CreateFundraiserRequest) Draft() transition.FundraiserDraft {
	return transition.FundraiserDraft{
		Title:      r.Title,
		Story:      r.Story,
		GoalAmount: r.GoalAmount,
	}
}

type FundraiserResponse struct {
	ID           int64     `json:"id,string"`
	CampaignID   int64     `json:"campaign_id,string"`
	UserID       int64     `json:"user_id,string"`
	Title        string    `json:"title"`
	Story        *string   `json:"story,omitempty"`
	GoalAmount   int64     `json:"goal_amount"`
	RaisedAmount int64     `json:"raised_amount"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToFundraiserResponse(f *model.PeerFundraiser) *FundraiserResponse {
	return &FundraiserResponse{
		ID:           f.ID,
		CampaignID:   f.CampaignID,
		UserID:       f.UserID,
		Title:        f.Title,
		Story:        f.Story,
		GoalAmount:   f.GoalAmount,
		RaisedAmount: f.RaisedAmount,
		Status:       string(f.Status),
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

type DonationResponse struct {
	ID           int64      `json:"id,string"`
	FundraiserID int64      `json:"fundraiser_id,string"`
	Amount       int64      `json:"amount"`
	Status       string     `json:"status"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	RaisedAmount int64      `json:"raised_amount"`
}

func ToDonationResponse(r *service.DonationApplied) DonationResponse {
	return DonationResponse{
		ID:           r.Donation.ID,
		FundraiserID: r.Donation.FundraiserID,
		Amount:       r.Donation.Amount,
		Status:       string(r.Donation.Status),
		CompletedAt:  r.Donation.CompletedAt,
		RaisedAmount: r.RaisedAmount,
	}
}
