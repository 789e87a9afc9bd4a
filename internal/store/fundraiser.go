package store

import (
	"context"
	"time"

	"github.com/geniusdynamics/alumate-sub010/core/db/sqlc"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

type campaignStore struct {
	queries *sqlc.Queries
}

func newCampaignStore(queries *sqlc.Queries) CampaignStore {
	return &campaignStore{queries: queries}
}

func (s *campaignStore) GetByID(ctx context.Context, id int64) (*model.Campaign, error) {
	row, err := s.queries.GetCampaignByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return &model.Campaign{ID: row.ID, Title: row.Title, Status: model.CampaignStatus(row.Status)}, nil
}

type fundraiserStore struct {
	queries *sqlc.Queries
}

func newFundraiserStore(queries *sqlc.Queries) FundraiserStore {
	return &fundraiserStore{queries: queries}
}

func (s *fundraiserStore) Create(ctx context.Context, f *model.PeerFundraiser) error {
	row, err := s.queries.CreatePeerFundraiser(ctx, sqlc.CreatePeerFundraiserParams{
		ID:         f.ID,
		CampaignID: f.CampaignID,
		UserID:     f.UserID,
		Title:      f.Title,
		Story:      f.Story,
		GoalAmount: f.GoalAmount,
		Status:     string(f.Status),
		CreatedAt:  timestamptz(f.CreatedAt),
		UpdatedAt:  timestamptz(f.UpdatedAt),
	})
	if err != nil {
		return translate(err)
	}
	*f = *toFundraiserModel(row)
	return nil
}

func (s *fundraiserStore) GetByID(ctx context.Context, id int64) (*model.PeerFundraiser, error) {
	row, err := s.queries.GetPeerFundraiserByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toFundraiserModel(row), nil
}

func (s *fundraiserStore) GetByIDForUpdate(ctx context.Context, id int64) (*model.PeerFundraiser, error) {
	row, err := s.queries.GetPeerFundraiserByIDForUpdate(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toFundraiserModel(row), nil
}

func (s *fundraiserStore) GetOpen(ctx context.Context, campaignID, userID int64) (*model.PeerFundraiser, error) {
	row, err := s.queries.GetOpenPeerFundraiser(ctx, sqlc.GetOpenPeerFundraiserParams{
		CampaignID: campaignID,
		UserID:     userID,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toFundraiserModel(row), nil
}

func (s *fundraiserStore) UpdateStatus(ctx context.Context, f *model.PeerFundraiser) error {
	row, err := s.queries.UpdatePeerFundraiserStatus(ctx, sqlc.UpdatePeerFundraiserStatusParams{
		ID:        f.ID,
		Status:    string(f.Status),
		UpdatedAt: timestamptz(f.UpdatedAt),
	})
	if err != nil {
		return translate(err)
	}
	*f = *toFundraiserModel(row)
	return nil
}

// AddRaised only ever increases raised_amount; non-positive amounts match no row.
func (s *fundraiserStore) AddRaised(ctx context.Context, id int64, amount int64) (int64, error) {
	total, err := s.queries.AddRaisedAmount(ctx, sqlc.AddRaisedAmountParams{
		Amount: amount,
		ID:     id,
	})
	return total, translate(err)
}

func (s *fundraiserStore) RecountRaised(ctx context.Context, id int64) (model.Recount, error) {
	row, err := s.queries.RecountRaisedAmount(ctx, id)
	if err != nil {
		return model.Recount{}, translate(err)
	}
	return model.Recount{ID: id, Previous: row.PreviousAmount, Current: row.CurrentAmount}, nil
}

func (s *fundraiserStore) ListDrifted(ctx context.Context, limit int32) ([]int64, error) {
	return s.queries.ListDriftedPeerFundraisers(ctx, limit)
}

func toFundraiserModel(row sqlc.PeerFundraiser) *model.PeerFundraiser {
	return &model.PeerFundraiser{
		ID:           row.ID,
		CampaignID:   row.CampaignID,
		UserID:       row.UserID,
		Title:        row.Title,
		Story:        row.Story,
		GoalAmount:   row.GoalAmount,
		RaisedAmount: row.RaisedAmount,
		Status:       model.FundraiserStatus(row.Status),
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}

type donationStore struct {
	queries *sqlc.Queries
}

func newDonationStore(queries *sqlc.Queries) DonationStore {
	return &donationStore{queries: queries}
}

func (s *donationStore) GetByIDForUpdate(ctx context.Context, id int64) (*model.Donation, error) {
	row, err := s.queries.GetDonationByIDForUpdate(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toDonationModel(row), nil
}

// MarkCompleted only transitions pending donations; anything else is ErrNotFound.
func (s *donationStore) MarkCompleted(ctx context.Context, id int64, at time.Time) (*model.Donation, error) {
	row, err := s.queries.CompleteDonation(ctx, sqlc.CompleteDonationParams{
		ID:          id,
		CompletedAt: timestamptz(at),
	})
	if err != nil {
		return nil, translate(err)
	}
	return toDonationModel(row), nil
}

func toDonationModel(row sqlc.Donation) *model.Donation {
	return &model.Donation{
		ID:           row.ID,
		FundraiserID: row.FundraiserID,
		DonorID:      row.DonorID,
		Amount:       row.Amount,
		Status:       model.DonationStatus(row.Status),
		CreatedAt:    row.CreatedAt.Time,
		CompletedAt:  timePtr(row.CompletedAt),
	}
}
