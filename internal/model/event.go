package model

import "time"

type EventStatus string

const (
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

type Event struct {
	ID                   int64       `json:"id"`
	OrganizerID          int64       `json:"organizer_id"`
	Title                string      `json:"title"`
	Status               EventStatus `json:"status"`
	StartsAt             time.Time   `json:"starts_at"`
	RegistrationDeadline *time.Time  `json:"registration_deadline,omitempty"`
	CancellationDeadline *time.Time  `json:"cancellation_deadline,omitempty"`
	MaxAttendees         *int32      `json:"max_attendees,omitempty"`
}

type RegistrationStatus string

const RegistrationStatusConfirmed RegistrationStatus = "confirmed"

// EventRegistration is removed on cancellation; there is no cancelled status.
type EventRegistration struct {
	ID           int64              `json:"id"`
	EventID      int64              `json:"event_id"`
	UserID       int64              `json:"user_id"`
	Status       RegistrationStatus `json:"status"`
	RegisteredAt time.Time          `json:"registered_at"`
}

type EventFavorite struct {
	ID        int64     `json:"id"`
	EventID   int64     `json:"event_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
