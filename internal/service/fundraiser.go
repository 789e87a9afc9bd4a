package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/geniusdynamics/alumate-sub010/common/id"
	"github.com/geniusdynamics/alumate-sub010/common/logger"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/queue"
	"github.com/geniusdynamics/alumate-sub010/internal/store"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

// DonationApplied is the settled donation together with the fundraiser's new total.
type DonationApplied struct {
	Donation     model.Donation
	RaisedAmount int64
}

type FundraiserService interface {
	Create(ctx context.Context, actor model.Actor, campaignID int64, draft transition.FundraiserDraft) (*model.PeerFundraiser, error)
	Pause(ctx context.Context, actor model.Actor, fundraiserID int64) (*model.PeerFundraiser, error)
	Resume(ctx context.Context, actor model.Actor, fundraiserID int64) (*model.PeerFundraiser, error)
	Complete(ctx context.Context, actor model.Actor, fundraiserID int64) (*model.PeerFundraiser, error)
	CompleteDonation(ctx context.Context, actor model.Actor, donationID int64) (*DonationApplied, error)
}

type fundraiserService struct {
	txRunner TxRunner
	notify   Notifier
}

func NewFundraiserService(txRunner TxRunner, notify Notifier) FundraiserService {
	return &fundraiserService{txRunner: txRunner, notify: notify}
}

func (s *fundraiserService) Create(ctx context.Context, actor model.Actor, campaignID int64, draft transition.FundraiserDraft) (*model.PeerFundraiser, error) {
	var created model.PeerFundraiser

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		campaign, err := sp.Campaigns().GetByID(ctx, campaignID)
		if err != nil {
			return notFound(err, ErrCampaignNotFound, "getting campaign")
		}

		existing, err := lookup(sp.Fundraisers().GetOpen(ctx, campaignID, actor.ID))
		if err != nil {
			return fmt.Errorf("getting open fundraiser: %w", err)
		}

		outcome := transition.CreateFundraiser(*campaign, actor, existing, draft, s.notify.now())
		if !outcome.Allow {
			return outcome.Err()
		}

		created = outcome.State
		created.ID = id.New()
		if err := sp.Fundraisers().Create(ctx, &created); err != nil {
			return duplicate(err, transition.KindAlreadyExists, "creating fundraiser")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "peer fundraiser created",
		"fundraiser_id", created.ID,
		"campaign_id", campaignID,
		"goal_amount", created.GoalAmount)

	s.notify.publish(ctx, queue.Activity{
		Type:      queue.ActivityFundraiserCreated,
		ActorID:   actor.ID,
		SubjectID: created.ID,
		TargetID:  campaignID,
		Status:    string(created.Status),
	})

	return &created, nil
}

func (s *fundraiserService) Pause(ctx context.Context, actor model.Actor, fundraiserID int64) (*model.PeerFundraiser, error) {
	return s.move(ctx, actor, fundraiserID, transition.PauseFundraiser)
}

func (s *fundraiserService) Resume(ctx context.Context, actor model.Actor, fundraiserID int64) (*model.PeerFundraiser, error) {
	return s.move(ctx, actor, fundraiserID, transition.ResumeFundraiser)
}

func (s *fundraiserService) Complete(ctx context.Context, actor model.Actor, fundraiserID int64) (*model.PeerFundraiser, error) {
	return s.move(ctx, actor, fundraiserID, transition.CompleteFundraiser)
}

type fundraiserRule func(f model.PeerFundraiser, actor model.Actor, now time.Time) transition.Outcome[model.PeerFundraiser]

func (s *fundraiserService) move(ctx context.Context, actor model.Actor, fundraiserID int64, rule fundraiserRule) (*model.PeerFundraiser, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{FundraiserID: &fundraiserID})

	var updated model.PeerFundraiser

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		f, err := sp.Fundraisers().GetByIDForUpdate(ctx, fundraiserID)
		if err != nil {
			return notFound(err, ErrFundraiserNotFound, "getting fundraiser")
		}

		outcome := rule(*f, actor, s.notify.now())
		if !outcome.Allow {
			return outcome.Err()
		}

		updated = outcome.State
		if err := sp.Fundraisers().UpdateStatus(ctx, &updated); err != nil {
			return fmt.Errorf("updating fundraiser: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "peer fundraiser status changed", "status", updated.Status)

	s.notify.publish(ctx, queue.Activity{
		Type:      queue.ActivityFundraiserStatus,
		ActorID:   actor.ID,
		SubjectID: updated.ID,
		TargetID:  updated.CampaignID,
		Status:    string(updated.Status),
	})

	return &updated, nil
}

// CompleteDonation settles a pending donation and adds its amount to the
// fundraiser's raised_amount in the same transaction.
func (s *fundraiserService) CompleteDonation(ctx context.Context, actor model.Actor, donationID int64) (*DonationApplied, error) {
	var result DonationApplied

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		donation, err := sp.Donations().GetByIDForUpdate(ctx, donationID)
		if err != nil {
			return notFound(err, ErrDonationNotFound, "getting donation")
		}

		f, err := sp.Fundraisers().GetByIDForUpdate(ctx, donation.FundraiserID)
		if err != nil {
			return notFound(err, ErrFundraiserNotFound, "getting fundraiser")
		}

		outcome := transition.CompleteDonation(*f, *donation, actor, s.notify.now())
		if !outcome.Allow {
			return outcome.Err()
		}

		completed, err := sp.Donations().MarkCompleted(ctx, donationID, *outcome.State.CompletedAt)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return transition.Deny(transition.KindInvalidState, "donation is no longer pending")
			}
			return fmt.Errorf("completing donation: %w", err)
		}
		result.Donation = *completed

		result.RaisedAmount, err = sp.Fundraisers().AddRaised(ctx, f.ID, completed.Amount)
		if err != nil {
			return fmt.Errorf("adding raised amount: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fundraiserID := result.Donation.FundraiserID
	ctx = logger.WithLogFields(ctx, logger.LogFields{FundraiserID: &fundraiserID})

	slog.InfoContext(ctx, "donation completed",
		"donation_id", donationID,
		"amount", result.Donation.Amount,
		"raised_amount", result.RaisedAmount)

	s.notify.publish(ctx, queue.Activity{
		Type:      queue.ActivityDonationCompleted,
		ActorID:   actor.ID,
		SubjectID: donationID,
		TargetID:  fundraiserID,
		Count:     &result.RaisedAmount,
	})
	s.notify.recount(ctx, queue.TaskTypeRecountFundraiser, fundraiserID, "donation_completed")

	return &result, nil
}
