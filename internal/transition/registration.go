package transition

import (
	"time"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
)

// Register decides an event registration. confirmed is the number of
// registrations currently held for the event.
func Register(event model.Event, actor model.Actor, existing *model.EventRegistration, confirmed int64, now time.Time) Outcome[model.EventRegistration] {
	if event.Status != model.EventStatusPublished {
		return denyf[model.EventRegistration](KindNotOpen, "event is not open for registration")
	}
	if passed(event.RegistrationDeadline, now) {
		return denyf[model.EventRegistration](KindDeadlinePassed, "registration deadline has passed")
	}
	if event.MaxAttendees != nil && confirmed >= int64(*event.MaxAttendees) {
		return deny[model.EventRegistration](KindFull)
	}
	if existing != nil {
		return deny[model.EventRegistration](KindAlreadyRegistered)
	}
	return allow(model.EventRegistration{
		EventID:      event.ID,
		UserID:       actor.ID,
		Status:       model.RegistrationStatusConfirmed,
		RegisteredAt: now,
	})
}

// Unregister allows cancelling an existing registration until the
// cancellation deadline. The allowed state is the row to delete.
func Unregister(event model.Event, existing *model.EventRegistration, now time.Time) Outcome[model.EventRegistration] {
	if existing == nil {
		return deny[model.EventRegistration](KindNotRegistered)
	}
	if passed(event.CancellationDeadline, now) {
		return denyf[model.EventRegistration](KindDeadlinePassed, "cancellation deadline has passed")
	}
	return allow(*existing)
}

func passed(deadline *time.Time, now time.Time) bool {
	return deadline != nil && deadline.Before(now)
}
