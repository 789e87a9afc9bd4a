package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Handlers and the worker enrich the context once; every log line below picks the
// fields up without passing them explicitly.
type LogFields struct {
	ActorID       *int64  // Authenticated user performing the action
	RequestID     *string // X-Request-ID of the inbound HTTP request
	EventID       *int64  // Event being registered for or favorited
	CelebrationID *int64  // Celebration receiving congratulations
	FundraiserID  *int64  // Peer fundraiser whose status or total changes
	MessageID     *string // Redis stream message ID
	TaskType      *string // Recount task type
	Component     string  // Component name, e.g. "alumate.worker.recount"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.ActorID != nil {
		result.ActorID = next.ActorID
	}
	if next.RequestID != nil {
		result.RequestID = next.RequestID
	}
	if next.EventID != nil {
		result.EventID = next.EventID
	}
	if next.CelebrationID != nil {
		result.CelebrationID = next.CelebrationID
	}
	if next.FundraiserID != nil {
		result.FundraiserID = next.FundraiserID
	}
	if next.MessageID != nil {
		result.MessageID = next.MessageID
	}
	if next.TaskType != nil {
		result.TaskType = next.TaskType
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{ActorID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}
