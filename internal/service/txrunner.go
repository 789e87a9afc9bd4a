package service

import (
	"context"

	"github.com/geniusdynamics/alumate-sub010/core/db"
	"github.com/geniusdynamics/alumate-sub010/core/db/sqlc"
	"github.com/geniusdynamics/alumate-sub010/internal/store"
)

// StoreProvider exposes the stores available inside a transaction.
type StoreProvider interface {
	Connections() store.ConnectionStore
	Events() store.EventStore
	Registrations() store.RegistrationStore
	Favorites() store.FavoriteStore
	Jobs() store.JobStore
	SavedJobs() store.SavedJobStore
	Celebrations() store.CelebrationStore
	Congratulations() store.CongratulationStore
	Campaigns() store.CampaignStore
	Fundraisers() store.FundraiserStore
	Donations() store.DonationStore
	ForumPosts() store.ForumPostStore
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db *db.DB
}

// NewTxRunner builds a TxRunner backed by the core DB.
func NewTxRunner(db *db.DB) TxRunner {
	return &dbTxRunner{db: db}
}

func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	return r.db.WithTx(ctx, func(q *sqlc.Queries) error {
		stores := store.NewStores(q)
		return fn(stores)
	})
}
