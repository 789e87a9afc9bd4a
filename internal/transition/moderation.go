package transition

import (
	"time"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

func CanModerate(actor model.Actor) bool {
	return actor.Roles.HasAny(model.RoleAdmin, model.RoleModerator)
}

// RequireModerator gates the moderation queue and counter reconciliation.
func RequireModerator(actor model.Actor) Outcome[model.Actor] {
	if !CanModerate(actor) {
		return denyf[model.Actor](KindForbidden, "moderator role required")
	}
	return allow(actor)
}

func Moderate(post model.ForumPost, actor model.Actor, decision model.ModerationDecision, note *string, now time.Time) Outcome[model.ForumPost] {
	if !CanModerate(actor) {
		return denyf[model.ForumPost](KindForbidden, "moderator role required")
	}
	if post.Status != model.PostStatusPending {
		return denyf[model.ForumPost](KindInvalidState, "post has already been moderated")
	}

	switch decision {
	case model.ModerationApprove:
		post.Status = model.PostStatusApproved
	case model.ModerationReject:
		post.Status = model.PostStatusRejected
	default:
		return denyf[model.ForumPost](KindInvalidState, "unknown moderation decision")
	}
	post.ModeratedBy = &actor.ID
	post.ModeratedAt = &now
	post.ModerationNote = note
	return allow(post)
}
