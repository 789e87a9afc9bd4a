package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/geniusdynamics/alumate-sub010/common/id"
	"github.com/geniusdynamics/alumate-sub010/common/logger"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/queue"
	"github.com/geniusdynamics/alumate-sub010/internal/store"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

// Congratulated is the result of adding a congratulation. Count is the
// celebration's congratulations_count after the insert.
type Congratulated struct {
	Congratulation model.Congratulation
	Count          int64
}

type CongratulationService interface {
	Add(ctx context.Context, actor model.Actor, celebrationID int64, message *string) (*Congratulated, error)
	// Remove reports removed=false, with no error, when the actor had not
	// congratulated the celebration.
	Remove(ctx context.Context, actor model.Actor, celebrationID int64) (removed bool, count int64, err error)
	Recount(ctx context.Context, actor model.Actor, celebrationID int64) (model.Recount, error)
}

type congratulationService struct {
	txRunner TxRunner
	counters CounterService
	notify   Notifier
}

func NewCongratulationService(txRunner TxRunner, counters CounterService, notify Notifier) CongratulationService {
	return &congratulationService{txRunner: txRunner, counters: counters, notify: notify}
}

func (s *congratulationService) Add(ctx context.Context, actor model.Actor, celebrationID int64, message *string) (*Congratulated, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{CelebrationID: &celebrationID})

	var result Congratulated

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		celebration, err := sp.Celebrations().GetByID(ctx, celebrationID)
		if err != nil {
			return notFound(err, ErrCelebrationNotFound, "getting celebration")
		}

		existing, err := lookup(sp.Congratulations().Get(ctx, celebrationID, actor.ID))
		if err != nil {
			return fmt.Errorf("getting congratulation: %w", err)
		}

		outcome := transition.Congratulate(*celebration, actor, existing, message, s.notify.now())
		if !outcome.Allow {
			return outcome.Err()
		}

		result.Congratulation = outcome.State
		result.Congratulation.ID = id.New()
		if err := sp.Congratulations().Create(ctx, &result.Congratulation); err != nil {
			return duplicate(err, transition.KindAlreadyExists, "creating congratulation")
		}

		count, err := sp.Celebrations().IncrementCongratulations(ctx, celebrationID)
		if err != nil {
			return notFound(err, ErrCelebrationNotFound, "incrementing congratulations")
		}
		result.Count = count
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "congratulation added",
		"congratulation_id", result.Congratulation.ID,
		"user_id", actor.ID,
		"count", result.Count)

	s.notify.publish(ctx, queue.Activity{
		Type:      queue.ActivityCongratulated,
		ActorID:   actor.ID,
		SubjectID: result.Congratulation.ID,
		TargetID:  celebrationID,
		Count:     &result.Count,
	})
	s.notify.recount(ctx, queue.TaskTypeRecountCelebration, celebrationID, "congratulation_added")

	return &result, nil
}

func (s *congratulationService) Remove(ctx context.Context, actor model.Actor, celebrationID int64) (bool, int64, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{CelebrationID: &celebrationID})

	var (
		removed bool
		count   int64
	)

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		celebration, err := sp.Celebrations().GetByID(ctx, celebrationID)
		if err != nil {
			return notFound(err, ErrCelebrationNotFound, "getting celebration")
		}
		count = celebration.CongratulationsCount

		existing, err := lookup(sp.Congratulations().Get(ctx, celebrationID, actor.ID))
		if err != nil {
			return fmt.Errorf("getting congratulation: %w", err)
		}

		outcome := transition.Uncongratulate(existing)
		if !outcome.Allow {
			return nil
		}

		if err := sp.Congratulations().Delete(ctx, outcome.State.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// removed by a concurrent request
				return nil
			}
			return fmt.Errorf("deleting congratulation: %w", err)
		}

		count, err = sp.Celebrations().DecrementCongratulations(ctx, celebrationID)
		if err != nil {
			return fmt.Errorf("decrementing congratulations: %w", err)
		}
		removed = true
		return nil
	})
	if err != nil {
		return false, 0, err
	}

	if !removed {
		slog.DebugContext(ctx, "no congratulation to remove", "user_id", actor.ID)
		return false, count, nil
	}

	slog.InfoContext(ctx, "congratulation removed", "user_id", actor.ID, "count", count)

	s.notify.publish(ctx, queue.Activity{
		Type:      queue.ActivityUncongratulated,
		ActorID:   actor.ID,
		SubjectID: celebrationID,
		TargetID:  celebrationID,
		Count:     &count,
	})
	s.notify.recount(ctx, queue.TaskTypeRecountCelebration, celebrationID, "congratulation_removed")

	return true, count, nil
}

func (s *congratulationService) Recount(ctx context.Context, actor model.Actor, celebrationID int64) (model.Recount, error) {
	if err := transition.RequireModerator(actor).Err(); err != nil {
		return model.Recount{}, err
	}
	return s.counters.RecountCelebration(ctx, celebrationID)
}
