package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/geniusdynamics/alumate-sub010/common/id"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/queue"
	"github.com/geniusdynamics/alumate-sub010/internal/store"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

type ConnectionService interface {
	Request(ctx context.Context, actor model.Actor, targetID int64, message *string) (*model.Connection, error)
	Accept(ctx context.Context, actor model.Actor, connectionID int64) (*model.Connection, error)
	Decline(ctx context.Context, actor model.Actor, connectionID int64) (*model.Connection, error)
	Remove(ctx context.Context, actor model.Actor, connectionID int64) error
	// Status returns the connection between the actor and otherID, or nil when there is none.
	Status(ctx context.Context, actor model.Actor, otherID int64) (*model.Connection, error)
}

type connectionService struct {
	txRunner TxRunner
	conns    store.ConnectionStore
	notify   Notifier
}

func NewConnectionService(txRunner TxRunner, conns store.ConnectionStore, notify Notifier) ConnectionService {
	return &connectionService{txRunner: txRunner, conns: conns, notify: notify}
}

func (s *connectionService) Request(ctx context.Context, actor model.Actor, targetID int64, message *string) (*model.Connection, error) {
	var created model.Connection

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		existing, err := lookup(sp.Connections().GetBetween(ctx, actor.ID, targetID))
		if err != nil {
			return fmt.Errorf("getting connection: %w", err)
		}

		outcome := transition.RequestConnection(actor, targetID, existing, message, s.notify.now())
		if !outcome.Allow {
			return outcome.Err()
		}

		created = outcome.State
		created.ID = id.New()
		if err := sp.Connections().Create(ctx, &created); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return duplicate(err, transition.KindAlreadyExists, "creating connection")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "connection requested",
		"connection_id", created.ID,
		"requester_id", created.RequesterID,
		"addressee_id", created.AddresseeID)

	s.notify.publish(ctx, queue.Activity{
		Type:      queue.ActivityConnectionRequested,
		ActorID:   actor.ID,
		SubjectID: created.ID,
		TargetID:  targetID,
		Status:    string(created.Status),
	})

	return &created, nil
}

func (s *connectionService) Accept(ctx context.Context, actor model.Actor, connectionID int64) (*model.Connection, error) {
	return s.respond(ctx, actor, connectionID, transition.AcceptConnection, queue.ActivityConnectionAccepted)
}

func (s *connectionService) Decline(ctx context.Context, actor model.Actor, connectionID int64) (*model.Connection, error) {
	return s.respond(ctx, actor, connectionID, transition.DeclineConnection, queue.ActivityConnectionDeclined)
}

type connectionRule func(conn model.Connection, actor model.Actor, now time.Time) transition.Outcome[model.Connection]

func (s *connectionService) respond(ctx context.Context, actor model.Actor, connectionID int64, rule connectionRule, activity queue.ActivityType) (*model.Connection, error) {
	var updated model.Connection

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		conn, err := sp.Connections().GetByIDForUpdate(ctx, connectionID)
		if err != nil {
			return notFound(err, ErrConnectionNotFound, "getting connection")
		}

		outcome := rule(*conn, actor, s.notify.now())
		if !outcome.Allow {
			return outcome.Err()
		}

		updated = outcome.State
		if err := sp.Connections().UpdateStatus(ctx, &updated); err != nil {
			return fmt.Errorf("updating connection: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "connection updated",
		"connection_id", updated.ID,
		"status", updated.Status)

	s.notify.publish(ctx, queue.Activity{
		Type:      activity,
		ActorID:   actor.ID,
		SubjectID: updated.ID,
		TargetID:  updated.RequesterID,
		Status:    string(updated.Status),
	})

	return &updated, nil
}

func (s *connectionService) Remove(ctx context.Context, actor model.Actor, connectionID int64) error {
	var removed model.Connection

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		conn, err := sp.Connections().GetByIDForUpdate(ctx, connectionID)
		if err != nil {
			return notFound(err, ErrConnectionNotFound, "getting connection")
		}

		outcome := transition.RemoveConnection(*conn, actor)
		if !outcome.Allow {
			return outcome.Err()
		}

		removed = outcome.State
		if err := sp.Connections().Delete(ctx, removed.ID); err != nil {
			return notFound(err, ErrConnectionNotFound, "deleting connection")
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "connection removed", "connection_id", removed.ID, "actor_id", actor.ID)

	s.notify.publish(ctx, queue.Activity{
		Type:      queue.ActivityConnectionRemoved,
		ActorID:   actor.ID,
		SubjectID: removed.ID,
		TargetID:  removed.Other(actor.ID),
	})

	return nil
}

func (s *connectionService) Status(ctx context.Context, actor model.Actor, otherID int64) (*model.Connection, error) {
	conn, err := lookup(s.conns.GetBetween(ctx, actor.ID, otherID))
	if err != nil {
		return nil, fmt.Errorf("getting connection: %w", err)
	}
	return conn, nil
}
