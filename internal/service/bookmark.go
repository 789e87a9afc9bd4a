package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/geniusdynamics/alumate-sub010/common/id"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/store"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

type FavoriteService interface {
	Add(ctx context.Context, actor model.Actor, eventID int64) (*model.EventFavorite, error)
	Remove(ctx context.Context, actor model.Actor, eventID int64) error
}

type favoriteService struct {
	txRunner TxRunner
	notify   Notifier
}

func NewFavoriteService(txRunner TxRunner, notify Notifier) FavoriteService {
	return &favoriteService{txRunner: txRunner, notify: notify}
}

func (s *favoriteService) Add(ctx context.Context, actor model.Actor, eventID int64) (*model.EventFavorite, error) {
	var created model.EventFavorite

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if _, err := sp.Events().GetByID(ctx, eventID); err != nil {
			return notFound(err, ErrEventNotFound, "getting event")
		}

		existing, err := lookup(sp.Favorites().Get(ctx, eventID, actor.ID))
		if err != nil {
			return fmt.Errorf("getting favorite: %w", err)
		}

		outcome := transition.AddFavorite(actor, eventID, existing, s.notify.now())
		if !outcome.Allow {
			return outcome.Err()
		}

		created = outcome.State
		created.ID = id.New()
		if err := sp.Favorites().Create(ctx, &created); err != nil {
			return duplicate(err, transition.KindAlreadyExists, "creating favorite")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "event favorited", "event_id", eventID, "user_id", actor.ID)
	return &created, nil
}

func (s *favoriteService) Remove(ctx context.Context, actor model.Actor, eventID int64) error {
	return s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		existing, err := lookup(sp.Favorites().Get(ctx, eventID, actor.ID))
		if err != nil {
			return fmt.Errorf("getting favorite: %w", err)
		}

		outcome := transition.RemoveFavorite(existing)
		if !outcome.Allow {
			return outcome.Err()
		}

		if err := sp.Favorites().Delete(ctx, outcome.State.ID); err != nil {
			return notFound(err, transition.ErrNotFound, "deleting favorite")
		}
		return nil
	})
}

// SavedJobService is lenient: saving twice returns the original
// record and unsaving something never saved succeeds.
type SavedJobService interface {
	Save(ctx context.Context, actor model.Actor, jobID int64) (*model.SavedJob, error)
	Unsave(ctx context.Context, actor model.Actor, jobID int64) error
}

type savedJobService struct {
	txRunner TxRunner
	saved    store.SavedJobStore
	notify   Notifier
}

func NewSavedJobService(txRunner TxRunner, saved store.SavedJobStore, notify Notifier) SavedJobService {
	return &savedJobService{txRunner: txRunner, saved: saved, notify: notify}
}

func (s *savedJobService) Save(ctx context.Context, actor model.Actor, jobID int64) (*model.SavedJob, error) {
	var result model.SavedJob

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if _, err := sp.Jobs().GetByID(ctx, jobID); err != nil {
			return notFound(err, ErrJobNotFound, "getting job")
		}

		existing, err := lookup(sp.SavedJobs().Get(ctx, jobID, actor.ID))
		if err != nil {
			return fmt.Errorf("getting saved job: %w", err)
		}

		outcome := transition.SaveJob(actor, jobID, existing, s.notify.now())
		result = outcome.State
		if outcome.Noop {
			return nil
		}

		result.ID = id.New()
		return sp.SavedJobs().Create(ctx, &result)
	})

	// A concurrent save won the insert. The aborted transaction cannot read,
	// so fetch the winner outside it.
	if errors.Is(err, store.ErrDuplicate) {
		existing, getErr := s.saved.Get(ctx, jobID, actor.ID)
		if getErr != nil {
			return nil, fmt.Errorf("getting saved job: %w", getErr)
		}
		return existing, nil
	}
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("saving job: %w", err)
	}

	slog.InfoContext(ctx, "job saved", "job_id", jobID, "user_id", actor.ID)
	return &result, nil
}

func (s *savedJobService) Unsave(ctx context.Context, actor model.Actor, jobID int64) error {
	return s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		existing, err := lookup(sp.SavedJobs().Get(ctx, jobID, actor.ID))
		if err != nil {
			return fmt.Errorf("getting saved job: %w", err)
		}

		outcome := transition.UnsaveJob(existing)
		if outcome.Noop {
			return nil
		}

		if err := sp.SavedJobs().Delete(ctx, outcome.State.ID); err != nil && !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("deleting saved job: %w", err)
		}
		return nil
	})
}
