package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/geniusdynamics/alumate-sub010/common/id"
	"github.com/geniusdynamics/alumate-sub010/common/logger"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/queue"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

type RegistrationService interface {
	Register(ctx context.Context, actor model.Actor, eventID int64) (*model.EventRegistration, error)
	Unregister(ctx context.Context, actor model.Actor, eventID int64) error
}

type registrationService struct {
	txRunner TxRunner
	notify   Notifier
}

func NewRegistrationService(txRunner TxRunner, notify Notifier) RegistrationService {
	return &registrationService{txRunner: txRunner, notify: notify}
}

// Register holds the event row lock while counting, so concurrent
// registrations cannot push the event past max_attendees.
func (s *registrationService) Register(ctx context.Context, actor model.Actor, eventID int64) (*model.EventRegistration, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{EventID: &eventID})

	var created model.EventRegistration

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		event, err := sp.Events().GetByIDForUpdate(ctx, eventID)
		if err != nil {
			return notFound(err, ErrEventNotFound, "getting event")
		}

		existing, err := lookup(sp.Registrations().Get(ctx, eventID, actor.ID))
		if err != nil {
			return fmt.Errorf("getting registration: %w", err)
		}

		confirmed, err := sp.Registrations().CountByEvent(ctx, eventID)
		if err != nil {
			return fmt.Errorf("counting registrations: %w", err)
		}

		outcome := transition.Register(*event, actor, existing, confirmed, s.notify.now())
		if !outcome.Allow {
			return outcome.Err()
		}

		created = outcome.State
		created.ID = id.New()
		if err := sp.Registrations().Create(ctx, &created); err != nil {
			return duplicate(err, transition.KindAlreadyRegistered, "creating registration")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "registered for event", "registration_id", created.ID, "user_id", actor.ID)

	s.notify.publish(ctx, queue.Activity{
		Type:      queue.ActivityEventRegistered,
		ActorID:   actor.ID,
		SubjectID: created.ID,
		TargetID:  eventID,
		Status:    string(created.Status),
	})

	return &created, nil
}

func (s *registrationService) Unregister(ctx context.Context, actor model.Actor, eventID int64) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{EventID: &eventID})

	var removed model.EventRegistration

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		event, err := sp.Events().GetByID(ctx, eventID)
		if err != nil {
			return notFound(err, ErrEventNotFound, "getting event")
		}

		existing, err := lookup(sp.Registrations().Get(ctx, eventID, actor.ID))
		if err != nil {
			return fmt.Errorf("getting registration: %w", err)
		}

		outcome := transition.Unregister(*event, existing, s.notify.now())
		if !outcome.Allow {
			return outcome.Err()
		}

		removed = outcome.State
		if err := sp.Registrations().Delete(ctx, removed.ID); err != nil {
			return notFound(err, transition.ErrNotRegistered, "deleting registration")
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "unregistered from event", "registration_id", removed.ID, "user_id", actor.ID)

	s.notify.publish(ctx, queue.Activity{
		Type:      queue.ActivityEventUnregistered,
		ActorID:   actor.ID,
		SubjectID: removed.ID,
		TargetID:  eventID,
	})

	return nil
}
