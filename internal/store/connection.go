package store

import (
	"context"

	"github.com/geniusdynamics/alumate-sub010/core/db/sqlc"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

type connectionStore struct {
	queries *sqlc.Queries
}

func newConnectionStore(queries *sqlc.Queries) ConnectionStore {
	return &connectionStore{queries: queries}
}

func (s *connectionStore) Create(ctx context.Context, conn *model.Connection) error {
	row, err := s.queries.CreateConnection(ctx, sqlc.CreateConnectionParams{
		ID:          conn.ID,
		RequesterID: conn.RequesterID,
		AddresseeID: conn.AddresseeID,
		Status:      string(conn.Status),
		Message:     conn.Message,
		RequestedAt: timestamptz(conn.RequestedAt),
	})
	if err != nil {
		return translate(err)
	}
	*conn = *toConnectionModel(row)
	return nil
}

func (s *connectionStore) GetByID(ctx context.Context, id int64) (*model.Connection, error) {
	row, err := s.queries.GetConnectionByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toConnectionModel(row), nil
}

func (s *connectionStore) GetByIDForUpdate(ctx context.Context, id int64) (*model.Connection, error) {
	row, err := s.queries.GetConnectionByIDForUpdate(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toConnectionModel(row), nil
}

func (s *connectionStore) GetBetween(ctx context.Context, userA, userB int64) (*model.Connection, error) {
	row, err := s.queries.GetConnectionBetween(ctx, sqlc.GetConnectionBetweenParams{
		UserA: userA,
		UserB: userB,
	})
	if err != nil {
		return nil, translate(err)
	}
	return toConnectionModel(row), nil
}

func (s *connectionStore) UpdateStatus(ctx context.Context, conn *model.Connection) error {
	row, err := s.queries.UpdateConnectionStatus(ctx, sqlc.UpdateConnectionStatusParams{
		ID:         conn.ID,
		Status:     string(conn.Status),
		AcceptedAt: nullTimestamptz(conn.AcceptedAt),
		DeclinedAt: nullTimestamptz(conn.DeclinedAt),
	})
	if err != nil {
		return translate(err)
	}
	*conn = *toConnectionModel(row)
	return nil
}

func (s *connectionStore) Delete(ctx context.Context, id int64) error {
	return deleted(s.queries.DeleteConnection(ctx, id))
}

func toConnectionModel(row sqlc.Connection) *model.Connection {
	return &model.Connection{
		ID:          row.ID,
		RequesterID: row.RequesterID,
		AddresseeID: row.AddresseeID,
		Status:      model.ConnectionStatus(row.Status),
		Message:     row.Message,
		RequestedAt: row.RequestedAt.Time,
		AcceptedAt:  timePtr(row.AcceptedAt),
		DeclinedAt:  timePtr(row.DeclinedAt),
	}
}
