package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/geniusdynamics/alumate-sub010/common/logger"
	"github.com/geniusdynamics/alumate-sub010/internal/queue"
)

// Notifier fans committed changes out to the recount stream and the activity
// feed. Both sinks are optional and failures never fail the request.
type Notifier struct {
	Producer queue.Producer
	Activity queue.ActivityPublisher
	// Now is the decision clock. Defaults to time.Now.
	Now func() time.Time
}

func (n Notifier) now() time.Time {
	if n.Now == nil {
		return time.Now()
	}
	return n.Now()
}

func (n Notifier) publish(ctx context.Context, a queue.Activity) {
	if n.Activity == nil {
		return
	}
	if a.OccurredAt.IsZero() {
		a.OccurredAt = n.now()
	}
	if err := n.Activity.Publish(ctx, a); err != nil {
		slog.WarnContext(ctx, "failed to publish activity",
			"error", err,
			"activity_type", a.Type,
			"subject_id", a.SubjectID)
	}
}

func (n Notifier) recount(ctx context.Context, taskType queue.TaskType, targetID int64, reason string) {
	if n.Producer == nil {
		return
	}
	task := queue.Task{TaskType: taskType, TargetID: targetID, Reason: reason}
	if traceID := logger.TraceID(ctx); traceID != "" {
		task.TraceID = &traceID
	}
	if err := n.Producer.Enqueue(ctx, task); err != nil {
		slog.WarnContext(ctx, "failed to enqueue recount",
			"error", err,
			"task_type", taskType,
			"target_id", targetID)
	}
}
