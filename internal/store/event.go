package store

import (
	"context"

	"github.com/geniusdynamics/alumate-sub010/core/db/sqlc"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

type eventStore struct {
	queries *sqlc.Queries
}

func newEventStore(queries *sqlc.Queries) EventStore {
	return &eventStore{queries: queries}
}

func (s *eventStore) GetByID(ctx context.Context, id int64) (*model.Event, error) {
	row, err := s.queries.GetEventByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toEventModel(sqlc.GetEventByIDForUpdateRow(row)), nil
}

func (s *eventStore) GetByIDForUpdate(ctx context.Context, id int64) (*model.Event, error) {
	row, err := s.queries.GetEventByIDForUpdate(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toEventModel(row), nil
}

func toEventModel(row sqlc.GetEventByIDForUpdateRow) *model.Event {
	return &model.Event{
		ID:                   row.ID,
		OrganizerID:          row.OrganizerID,
		Title:                row.Title,
		Status:               model.EventStatus(row.Status),
		StartsAt:             row.StartsAt.Time,
		RegistrationDeadline: timePtr(row.RegistrationDeadline),
		CancellationDeadline: timePtr(row.CancellationDeadline),
		MaxAttendees:         row.MaxAttendees,
	}
}

type registrationStore struct {
	queries *sqlc.Queries
}

func newRegistrationStore(queries *sqlc.Queries) RegistrationStore {
	return &registrationStore{queries: queries}
}

func (s *registrationStore) Create(ctx context.Context, reg *model.EventRegistration) error {
	row, err := s.queries.CreateEventRegistration(ctx, sqlc.CreateEventRegistrationParams{
		ID:           reg.ID,
		EventID:      reg.EventID,
		UserID:       reg.UserID,
		Status:       string(reg.Status),
		RegisteredAt: timestamptz(reg.RegisteredAt),
	})
	if err != nil {
		return translate(err)
	}
	*reg = toRegistrationModel(row)
	return nil
}

func (s *registrationStore) Get(ctx context.Context, eventID, userID int64) (*model.EventRegistration, error) {
	row, err := s.queries.GetEventRegistration(ctx, sqlc.GetEventRegistrationParams{
		EventID: eventID,
		UserID:  userID,
	})
	if err != nil {
		return nil, translate(err)
	}
	reg := toRegistrationModel(row)
	return &reg, nil
}

func (s *registrationStore) CountByEvent(ctx context.Context, eventID int64) (int64, error) {
	return s.queries.CountEventRegistrations(ctx, eventID)
}

func (s *registrationStore) Delete(ctx context.Context, id int64) error {
	return deleted(s.queries.DeleteEventRegistration(ctx, id))
}

func toRegistrationModel(row sqlc.EventRegistration) model.EventRegistration {
	return model.EventRegistration{
		ID:           row.ID,
		EventID:      row.EventID,
		UserID:       row.UserID,
		Status:       model.RegistrationStatus(row.Status),
		RegisteredAt: row.RegisteredAt.Time,
	}
}

type favoriteStore struct {
	queries *sqlc.Queries
}

func newFavoriteStore(queries *sqlc.Queries) FavoriteStore {
	return &favoriteStore{queries: queries}
}

func (s *favoriteStore) Create(ctx context.Context, fav *model.EventFavorite) error {
	row, err := s.queries.CreateEventFavorite(ctx, sqlc.CreateEventFavoriteParams{
		ID:        fav.ID,
		EventID:   fav.EventID,
		UserID:    fav.UserID,
		CreatedAt: timestamptz(fav.CreatedAt),
	})
	if err != nil {
		return translate(err)
	}
	*fav = model.EventFavorite{ID: row.ID, EventID: row.EventID, UserID: row.UserID, CreatedAt: row.CreatedAt.Time}
	return nil
}

func (s *favoriteStore) Get(ctx context.Context, eventID, userID int64) (*model.EventFavorite, error) {
	row, err := s.queries.GetEventFavorite(ctx, sqlc.GetEventFavoriteParams{
		EventID: eventID,
		UserID:  userID,
	})
	if err != nil {
		return nil, translate(err)
	}
	return &model.EventFavorite{ID: row.ID, EventID: row.EventID, UserID: row.UserID, CreatedAt: row.CreatedAt.Time}, nil
}

func (s *favoriteStore) Delete(ctx context.Context, id int64) error {
	return deleted(s.queries.DeleteEventFavorite(ctx, id))
}
