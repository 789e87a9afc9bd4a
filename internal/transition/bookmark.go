package transition

import (
	"time"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

func AddFavorite(actor model.Actor, eventID int64, existing *model.EventFavorite, now time.Time) Outcome[model.EventFavorite] {
	if existing != nil {
		return denyf[model.EventFavorite](KindAlreadyExists, "event already in favorites")
	}
	return allow(model.EventFavorite{
		EventID:   eventID,
		UserID:    actor.ID,
		CreatedAt: now,
	})
}

func RemoveFavorite(existing *model.EventFavorite) Outcome[model.EventFavorite] {
	if existing == nil {
		return denyf[model.EventFavorite](KindNotFound, "event not in favorites")
	}
	return allow(*existing)
}

// SaveJob is find-or-create: saving a job twice succeeds and returns the
// original record. Unlike favorites, it never reports AlreadyExists.
func SaveJob(actor model.Actor, jobID int64, existing *model.SavedJob, now time.Time) Outcome[model.SavedJob] {
	if existing != nil {
		return noop(*existing)
	}
	return allow(model.SavedJob{
		JobID:     jobID,
		UserID:    actor.ID,
		CreatedAt: now,
	})
}

// UnsaveJob deletes when present and is a silent no-op otherwise.
func UnsaveJob(existing *model.SavedJob) Outcome[model.SavedJob] {
	if existing == nil {
		return noop(model.SavedJob{})
	}
	return allow(*existing)
}
