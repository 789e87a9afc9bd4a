package service

import (
	"time"

	"github.com/geniusdynamics/alumate-sub010/internal/queue"
	"github.com/geniusdynamics/alumate-sub010/internal/store"
)

type ServicesConfig struct {
	Stores   *store.Stores
	TxRunner TxRunner
	// Producer and Activity are optional.
	Producer queue.Producer
	Activity queue.ActivityPublisher
	// Now defaults to time.Now.
	Now func() time.Time
}

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	notify   Notifier
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{
		stores:   cfg.Stores,
		txRunner: cfg.TxRunner,
		notify: Notifier{
			Producer: cfg.Producer,
			Activity: cfg.Activity,
			Now:      cfg.Now,
		},
	}
}

func (s *Services) Connections() ConnectionService {
	return NewConnectionService(s.txRunner, s.stores.Connections(), s.notify)
}

func (s *Services) Registrations() RegistrationService {
	return NewRegistrationService(s.txRunner, s.notify)
}

func (s *Services) Favorites() FavoriteService {
	return NewFavoriteService(s.txRunner, s.notify)
}

func (s *Services) SavedJobs() SavedJobService {
	return NewSavedJobService(s.txRunner, s.stores.SavedJobs(), s.notify)
}

func (s *Services) Counters() CounterService {
	return NewCounterService(s.txRunner, s.stores.Celebrations(), s.stores.Fundraisers())
}

func (s *Services) Congratulations() CongratulationService {
	return NewCongratulationService(s.txRunner, s.Counters(), s.notify)
}

func (s *Services) Fundraisers() FundraiserService {
	return NewFundraiserService(s.txRunner, s.notify)
}

func (s *Services) Moderation() ModerationService {
	return NewModerationService(s.txRunner, s.stores.ForumPosts(), s.notify)
}
