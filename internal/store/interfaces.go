package store

import (
	"context"
	"errors"
	"time"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a unique key.
// Services translate it into an already-exists outcome.
var ErrDuplicate = errors.New("duplicate key")

// ConnectionStore defines the contract for connection data access.
// Pair lookups ignore direction.
type ConnectionStore interface {
	Create(ctx context.Context, conn *model.Connection) error
	GetByID(ctx context.Context, id int64) (*model.Connection, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*model.Connection, error)
	GetBetween(ctx context.Context, userA, userB int64) (*model.Connection, error)
	UpdateStatus(ctx context.Context, conn *model.Connection) error
	Delete(ctx context.Context, id int64) error
}

// EventStore reads the guard attributes of events.
type EventStore interface {
	GetByID(ctx context.Context, id int64) (*model.Event, error)
	// GetByIDForUpdate locks the event row until the transaction ends,
	// serialising registrations for the same event.
	GetByIDForUpdate(ctx context.Context, id int64) (*model.Event, error)
}

type RegistrationStore interface {
	Create(ctx context.Context, reg *model.EventRegistration) error
	Get(ctx context.Context, eventID, userID int64) (*model.EventRegistration, error)
	CountByEvent(ctx context.Context, eventID int64) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type FavoriteStore interface {
	Create(ctx context.Context, fav *model.EventFavorite) error
	Get(ctx context.Context, eventID, userID int64) (*model.EventFavorite, error)
	Delete(ctx context.Context, id int64) error
}

type JobStore interface {
	GetByID(ctx context.Context, id int64) (*model.Job, error)
}

type SavedJobStore interface {
	Create(ctx context.Context, saved *model.SavedJob) error
	Get(ctx context.Context, jobID, userID int64) (*model.SavedJob, error)
	Delete(ctx context.Context, id int64) error
}

// CelebrationStore owns the congratulations_count counter.
type CelebrationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Celebration, error)
	IncrementCongratulations(ctx context.Context, id int64) (int64, error)
	DecrementCongratulations(ctx context.Context, id int64) (int64, error)
	RecountCongratulations(ctx context.Context, id int64) (model.Recount, error)
	ListDrifted(ctx context.Context, limit int32) ([]int64, error)
}

type CongratulationStore interface {
	Create(ctx context.Context, c *model.Congratulation) error
	Get(ctx context.Context, celebrationID, userID int64) (*model.Congratulation, error)
	Delete(ctx context.Context, id int64) error
}

type CampaignStore interface {
	GetByID(ctx context.Context, id int64) (*model.Campaign, error)
}

// FundraiserStore owns the raised_amount counter.
type FundraiserStore interface {
	Create(ctx context.Context, f *model.PeerFundraiser) error
	GetByID(ctx context.Context, id int64) (*model.PeerFundraiser, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*model.PeerFundraiser, error)
	GetOpen(ctx context.Context, campaignID, userID int64) (*model.PeerFundraiser, error)
	UpdateStatus(ctx context.Context, f *model.PeerFundraiser) error
	AddRaised(ctx context.Context, id int64, amount int64) (int64, error)
	RecountRaised(ctx context.Context, id int64) (model.Recount, error)
	ListDrifted(ctx context.Context, limit int32) ([]int64, error)
}

type DonationStore interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*model.Donation, error)
	MarkCompleted(ctx context.Context, id int64, at time.Time) (*model.Donation, error)
}

type ForumPostStore interface {
	GetByID(ctx context.Context, id int64) (*model.ForumPost, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*model.ForumPost, error)
	ListPending(ctx context.Context, limit, offset int32) ([]model.ForumPost, error)
	Moderate(ctx context.Context, post *model.ForumPost) error
}
