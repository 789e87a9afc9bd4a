package store

import (
	"context"

	"github.com/geniusdynamics/alumate-sub010/core/db/sqlc"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

type forumPostStore struct {
	queries *sqlc.Queries
}

func newForumPostStore(queries *sqlc.Queries) ForumPostStore {
	return &forumPostStore{queries: queries}
}

func (s *forumPostStore) GetByID(ctx context.Context, id int64) (*model.ForumPost, error) {
	row, err := s.queries.GetForumPostByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toForumPostModel(row), nil
}

func (s *forumPostStore) GetByIDForUpdate(ctx context.Context, id int64) (*model.ForumPost, error) {
	row, err := s.queries.GetForumPostByIDForUpdate(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return toForumPostModel(row), nil
}

func (s *forumPostStore) ListPending(ctx context.Context, limit, offset int32) ([]model.ForumPost, error) {
	rows, err := s.queries.ListPendingForumPosts(ctx, sqlc.ListPendingForumPostsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, err
	}
	posts := make([]model.ForumPost, len(rows))
	for i, row := range rows {
		posts[i] = *toForumPostModel(row)
	}
	return posts, nil
}

func (s *forumPostStore) Moderate(ctx context.Context, post *model.ForumPost) error {
	row, err := s.queries.ModerateForumPost(ctx, sqlc.ModerateForumPostParams{
		ID:             post.ID,
		Status:         string(post.Status),
		ModeratedBy:    post.ModeratedBy,
		ModeratedAt:    nullTimestamptz(post.ModeratedAt),
		ModerationNote: post.ModerationNote,
	})
	if err != nil {
		return translate(err)
	}
	*post = *toForumPostModel(row)
	return nil
}

func toForumPostModel(row sqlc.ForumPost) *model.ForumPost {
	return &model.ForumPost{
		ID:             row.ID,
		AuthorID:       row.AuthorID,
		Body:           row.Body,
		Status:         model.PostStatus(row.Status),
		ModeratedBy:    row.ModeratedBy,
		ModeratedAt:    timePtr(row.ModeratedAt),
		ModerationNote: row.ModerationNote,
		CreatedAt:      row.CreatedAt.Time,
	}
}
