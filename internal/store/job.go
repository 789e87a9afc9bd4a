package store

import (
	"context"

	"github.com/geniusdynamics/alumate-sub010/core/db/sqlc"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

type jobStore struct {
	queries *sqlc.Queries
}

func newJobStore(queries *sqlc.Queries) JobStore {
	return &jobStore{queries: queries}
}

func (s *jobStore) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	row, err := s.queries.GetJobByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return &model.Job{ID: row.ID, Title: row.Title, Status: model.JobStatus(row.Status)}, nil
}

type savedJobStore struct {
	queries *sqlc.Queries
}

func newSavedJobStore(queries *sqlc.Queries) SavedJobStore {
	return &savedJobStore{queries: queries}
}

func (s *savedJobStore) Create(ctx context.Context, saved *model.SavedJob) error {
	row, err := s.queries.CreateSavedJob(ctx, sqlc.CreateSavedJobParams{
		ID:        saved.ID,
		JobID:     saved.JobID,
		UserID:    saved.UserID,
		CreatedAt: timestamptz(saved.CreatedAt),
	})
	if err != nil {
		return translate(err)
	}
	*saved = toSavedJobModel(row)
	return nil
}

func (s *savedJobStore) Get(ctx context.Context, jobID, userID int64) (*model.SavedJob, error) {
	row, err := s.queries.GetSavedJob(ctx, sqlc.GetSavedJobParams{
		JobID:  jobID,
		UserID: userID,
	})
	if err != nil {
		return nil, translate(err)
	}
	saved := toSavedJobModel(row)
	return &saved, nil
}

func (s *savedJobStore) Delete(ctx context.Context, id int64) error {
	return deleted(s.queries.DeleteSavedJob(ctx, id))
}

func toSavedJobModel(row sqlc.SavedJob) model.SavedJob {
	return model.SavedJob{
		ID:        row.ID,
		JobID:     row.JobID,
		UserID:    row.UserID,
		CreatedAt: row.CreatedAt.Time,
	}
}
