package store

import (
	"context"

	"github.com/geniusdynamics/alumate-sub010/core/db/sqlc"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

type celebrationStore struct {
	queries *sqlc.Queries
}

func newCelebrationStore(queries *sqlc.Queries) CelebrationStore {
	return &celebrationStore{queries: queries}
}

func (s *celebrationStore) GetByID(ctx context.Context, id int64) (*model.Celebration, error) {
	row, err := s.queries.GetCelebrationByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return &model.Celebration{
		ID:                   row.ID,
		UserAchievementID:    row.UserAchievementID,
		UserID:               row.UserID,
		CongratulationsCount: row.CongratulationsCount,
		CreatedAt:            row.CreatedAt.Time,
	}, nil
}

// IncrementCongratulations bumps the counter in SQL and returns the new value.
// It must run in the transaction that inserted the congratulation.
func (s *celebrationStore) IncrementCongratulations(ctx context.Context, id int64) (int64, error) {
	n, err := s.queries.IncrementCongratulationsCount(ctx, id)
	return n, translate(err)
}

func (s *celebrationStore) DecrementCongratulations(ctx context.Context, id int64) (int64, error) {
	n, err := s.queries.DecrementCongratulationsCount(ctx, id)
	return n, translate(err)
}

func (s *celebrationStore) RecountCongratulations(ctx context.Context, id int64) (model.Recount, error) {
	row, err := s.queries.RecountCongratulations(ctx, id)
	if err != nil {
		return model.Recount{}, translate(err)
	}
	return model.Recount{ID: id, Previous: row.PreviousCount, Current: row.CurrentCount}, nil
}

func (s *celebrationStore) ListDrifted(ctx context.Context, limit int32) ([]int64, error) {
	return s.queries.ListDriftedCelebrations(ctx, limit)
}

type congratulationStore struct {
	queries *sqlc.Queries
}

func newCongratulationStore(queries *sqlc.Queries) CongratulationStore {
	return &congratulationStore{queries: queries}
}

func (s *congratulationStore) Create(ctx context.Context, c *model.Congratulation) error {
	row, err := s.queries.CreateCongratulation(ctx, sqlc.CreateCongratulationParams{
		ID:            c.ID,
		CelebrationID: c.CelebrationID,
		UserID:        c.UserID,
		Message:       c.Message,
		CreatedAt:     timestamptz(c.CreatedAt),
	})
	if err != nil {
		return translate(err)
	}
	*c = toCongratulationModel(row)
	return nil
}

func (s *congratulationStore) Get(ctx context.Context, celebrationID, userID int64) (*model.Congratulation, error) {
	row, err := s.queries.GetCongratulation(ctx, sqlc.GetCongratulationParams{
		CelebrationID: celebrationID,
		UserID:        userID,
	})
	if err != nil {
		return nil, translate(err)
	}
	c := toCongratulationModel(row)
	return &c, nil
}

func (s *congratulationStore) Delete(ctx context.Context, id int64) error {
	return deleted(s.queries.DeleteCongratulation(ctx, id))
}

func toCongratulationModel(row sqlc.Congratulation) model.Congratulation {
	return model.Congratulation{
		ID:            row.ID,
		CelebrationID: row.CelebrationID,
		UserID:        row.UserID,
		Message:       row.Message,
		CreatedAt:     row.CreatedAt.Time,
	}
}
