package store

import (
	"github.com/geniusdynamics/alumate-sub010/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Connections() ConnectionStore {
	return newConnectionStore(s.queries)
}

func (s *Stores) Events() EventStore {
	return newEventStore(s.queries)
}

func (s *Stores) Registrations() RegistrationStore {
	return newRegistrationStore(s.queries)
}

func (s *Stores) Favorites() FavoriteStore {
	return newFavoriteStore(s.queries)
}

func (s *Stores) Jobs() JobStore {
	return newJobStore(s.queries)
}

func (s *Stores) SavedJobs() SavedJobStore {
	return newSavedJobStore(s.queries)
}

func (s *Stores) Celebrations() CelebrationStore {
	return newCelebrationStore(s.queries)
}

func (s *Stores) Congratulations() CongratulationStore {
	return newCongratulationStore(s.queries)
}

func (s *Stores) Campaigns() CampaignStore {
	return newCampaignStore(s.queries)
}

func (s *Stores) Fundraisers() FundraiserStore {
	return newFundraiserStore(s.queries)
}

func (s *Stores) Donations() DonationStore {
	return newDonationStore(s.queries)
}

func (s *Stores) ForumPosts() ForumPostStore {
	return newForumPostStore(s.queries)
}
