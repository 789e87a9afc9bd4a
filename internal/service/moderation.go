package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/queue"
	"github.com/geniusdynamics/alumate-sub010/internal/store"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

const maxPendingPage = 100

type ModerationService interface {
	Pending(ctx context.Context, actor model.Actor, limit, offset int32) ([]model.ForumPost, error)
	Moderate(ctx context.Context, actor model.Actor, postID int64, decision model.ModerationDecision, note *string) (*model.ForumPost, error)
}

type moderationService struct {
	txRunner TxRunner
	posts    store.ForumPostStore
	notify   Notifier
}

func NewModerationService(txRunner TxRunner, posts store.ForumPostStore, notify Notifier) ModerationService {
	return &moderationService{txRunner: txRunner, posts: posts, notify: notify}
}

func (s *moderationService) Pending(ctx context.Context, actor model.Actor, limit, offset int32) ([]model.ForumPost, error) {
	if err := transition.RequireModerator(actor).Err(); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > maxPendingPage {
		limit = maxPendingPage
	}
	if offset < 0 {
		offset = 0
	}

	posts, err := s.posts.ListPending(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing pending posts: %w", err)
	}
	return posts, nil
}

func (s *moderationService) Moderate(ctx context.Context, actor model.Actor, postID int64, decision model.ModerationDecision, note *string) (*model.ForumPost, error) {
	// Role check comes before the post lookup.
	if err := transition.RequireModerator(actor).Err(); err != nil {
		return nil, err
	}

	var moderated model.ForumPost

	err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		post, err := sp.ForumPosts().GetByIDForUpdate(ctx, postID)
		if err != nil {
			return notFound(err, ErrPostNotFound, "getting post")
		}

		outcome := transition.Moderate(*post, actor, decision, note, s.notify.now())
		if !outcome.Allow {
			return outcome.Err()
		}

		moderated = outcome.State
		if err := sp.ForumPosts().Moderate(ctx, &moderated); err != nil {
			return notFound(err, ErrPostNotFound, "moderating post")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "post moderated",
		"post_id", postID,
		"moderator_id", actor.ID,
		"status", moderated.Status)

	s.notify.publish(ctx, queue.Activity{
		Type:      queue.ActivityPostModerated,
		ActorID:   actor.ID,
		SubjectID: postID,
		TargetID:  moderated.AuthorID,
		Status:    string(moderated.Status),
	})

	return &moderated, nil
}
