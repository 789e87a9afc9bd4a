package transition

import (
	"time"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

type FundraiserDraft struct {
	Title      string
	Story      *string
	GoalAmount int64
}

// CreateFundraiser allows one open fundraiser per user and campaign.
// existing is the user's non-completed fundraiser for the campaign, if any.
func CreateFundraiser(campaign model.Campaign, actor model.Actor, existing *model.PeerFundraiser, draft FundraiserDraft, now time.Time) Outcome[model.PeerFundraiser] {
	if campaign.Status != model.CampaignStatusActive {
		return denyf[model.PeerFundraiser](KindNotOpen, "campaign is not accepting fundraisers")
	}
	if existing != nil {
		return denyf[model.PeerFundraiser](KindAlreadyExists, "you already have a fundraiser for this campaign")
	}
	if draft.GoalAmount <= 0 {
		return denyf[model.PeerFundraiser](KindInvalidState, "goal amount must be positive")
	}
	return allow(model.PeerFundraiser{
		CampaignID: campaign.ID,
		UserID:     actor.ID,
		Title:      draft.Title,
		Story:      draft.Story,
		GoalAmount: draft.GoalAmount,
		Status:     model.FundraiserStatusActive,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func PauseFundraiser(f model.PeerFundraiser, actor model.Actor, now time.Time) Outcome[model.PeerFundraiser] {
	return moveFundraiser(f, actor, now, model.FundraiserStatusPaused, model.FundraiserStatusActive)
}

func ResumeFundraiser(f model.PeerFundraiser, actor model.Actor, now time.Time) Outcome[model.PeerFundraiser] {
	return moveFundraiser(f, actor, now, model.FundraiserStatusActive, model.FundraiserStatusPaused)
}

// CompleteFundraiser is terminal.
func CompleteFundraiser(f model.PeerFundraiser, actor model.Actor, now time.Time) Outcome[model.PeerFundraiser] {
	return moveFundraiser(f, actor, now, model.FundraiserStatusCompleted, model.FundraiserStatusActive, model.FundraiserStatusPaused)
}

func moveFundraiser(f model.PeerFundraiser, actor model.Actor, now time.Time, to model.FundraiserStatus, from ...model.FundraiserStatus) Outcome[model.PeerFundraiser] {
	if f.UserID != actor.ID {
		return denyf[model.PeerFundraiser](KindForbidden, "only the fundraiser owner can change its status")
	}
	for _, s := range from {
		if f.Status == s {
			f.Status = to
			f.UpdatedAt = now
			return allow(f)
		}
	}
	return denyf[model.PeerFundraiser](KindInvalidState, "fundraiser is "+string(f.Status))
}

// CompleteDonation marks a pending donation completed so its amount can be
// added to the fundraiser's raised total. Only operators settle donations.
func CompleteDonation(f model.PeerFundraiser, d model.Donation, actor model.Actor, now time.Time) Outcome[model.Donation] {
	if !actor.Roles.Has(model.RoleAdmin) {
		return denyf[model.Donation](KindForbidden, "only administrators can settle donations")
	}
	if d.FundraiserID != f.ID {
		return denyf[model.Donation](KindInvalidState, "donation does not belong to this fundraiser")
	}
	if d.Status != model.DonationStatusPending {
		return denyf[model.Donation](KindInvalidState, "donation is "+string(d.Status))
	}
	if d.Amount <= 0 {
		return denyf[model.Donation](KindInvalidState, "donation amount must be positive")
	}
	if f.Status == model.FundraiserStatusCompleted {
		return denyf[model.Donation](KindNotOpen, "fundraiser is completed")
	}
	d.Status = model.DonationStatusCompleted
	d.CompletedAt = &now
	return allow(d)
}
