package model

import "time"

type CampaignStatus string

const (
	CampaignStatusActive CampaignStatus = "active"
	CampaignStatusEnded  CampaignStatus = "ended"
)

type Campaign struct {
	ID     int64          `json:"id"`
	Title  string         `json:"title"`
	Status CampaignStatus `json:"status"`
}

type FundraiserStatus string

const (
	FundraiserStatusActive    FundraiserStatus = "active"
	FundraiserStatusPaused    FundraiserStatus = "paused"
	FundraiserStatusCompleted FundraiserStatus = "completed"
)

// PeerFundraiser amounts are in minor currency units.
type PeerFundraiser struct {
	ID           int64            `json:"id"`
	CampaignID   int64            `json:"campaign_id"`
	UserID       int64            `json:"user_id"`
	Title        string           `json:"title"`
	Story        *string          `json:"story,omitempty"`
	GoalAmount   int64            `json:"goal_amount"`
	RaisedAmount int64            `json:"raised_amount"`
	Status       FundraiserStatus `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

type DonationStatus string

const (
	DonationStatusPending   DonationStatus = "pending"
	DonationStatusCompleted DonationStatus = "completed"
	DonationStatusFailed    DonationStatus = "failed"
)

type Donation struct {
	ID           int64          `json:"id"`
	FundraiserID int64          `json:"fundraiser_id"`
	DonorID      *int64         `json:"donor_id,omitempty"`
	Amount       int64          `json:"amount"`
	Status       DonationStatus `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	CompletedAt  *time.Time     `json:"completed_at,omitempty"`
}
