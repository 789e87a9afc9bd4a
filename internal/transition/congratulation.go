package transition

import (
	"time"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

func Congratulate(celebration model.Celebration, actor model.Actor, existing *model.Congratulation, message *string, now time.Time) Outcome[model.Congratulation] {
	if existing != nil {
		return denyf[model.Congratulation](KindAlreadyExists, "you have already congratulated this achievement")
	}
	return allow(model.Congratulation{
		CelebrationID: celebration.ID,
		UserID:        actor.ID,
		Message:       message,
		CreatedAt:     now,
	})
}

// Uncongratulate denies with KindNotFound when there is nothing to remove.
// Callers treat that as "nothing removed" rather than a failure.
func Uncongratulate(existing *model.Congratulation) Outcome[model.Congratulation] {
	if existing == nil {
		return deny[model.Congratulation](KindNotFound)
	}
	return allow(*existing)
}
