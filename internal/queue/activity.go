package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type ActivityType string

const (
	ActivityConnectionRequested ActivityType = "connection.requested"
	ActivityConnectionAccepted  ActivityType = "connection.accepted"
	ActivityConnectionDeclined  ActivityType = "connection.declined"
	ActivityConnectionRemoved   ActivityType = "connection.removed"
	ActivityEventRegistered     ActivityType = "event.registered"
	ActivityEventUnregistered   ActivityType = "event.unregistered"
	ActivityCongratulated       ActivityType = "celebration.congratulated"
	ActivityUncongratulated     ActivityType = "celebration.uncongratulated"
	ActivityFundraiserCreated   ActivityType = "fundraiser.created"
	ActivityFundraiserStatus    ActivityType = "fundraiser.status_changed"
	ActivityDonationCompleted   ActivityType = "fundraiser.donation_completed"
	ActivityPostModerated       ActivityType = "forum.post_moderated"
)

// Activity is the payload published for downstream notifiers after a
// relationship change commits.
type Activity struct {
	Type       ActivityType `json:"type"`
	ActorID    int64        `json:"actor_id"`
	SubjectID  int64        `json:"subject_id"`
	TargetID   int64        `json:"target_id,omitempty"`
	Status     string       `json:"status,omitempty"`
	Count      *int64       `json:"count,omitempty"`
	OccurredAt time.Time    `json:"occurred_at"`
}

type ActivityPublisher interface {
	Publish(ctx context.Context, activity Activity) error
	Close() error
}

type ActivityConfig struct {
	URL           string
	Stream        string
	SubjectPrefix string
}

type natsPublisher struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	prefix string
}

// NewNATSPublisher connects to NATS and makes sure the activity stream exists.
func NewNATSPublisher(ctx context.Context, cfg ActivityConfig) (ActivityPublisher, error) {
	nc, err := nats.Connect(cfg.URL, nats.Name("alumate"))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream init: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	prefix := strings.TrimSuffix(cfg.SubjectPrefix, ".")
	if _, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.Stream,
		Subjects: []string{prefix + ".>"},
		Storage:  jetstream.FileStorage,
		Replicas: 1,
	}); err != nil {
		nc.Close()
		return nil, fmt.Errorf("create stream: %w", err)
	}

	return &natsPublisher{nc: nc, js: js, prefix: prefix}, nil
}

func ActivitySubject(prefix string, t ActivityType) string {
	return strings.TrimSuffix(prefix, ".") + "." + string(t)
}

func (p *natsPublisher) Publish(ctx context.Context, activity Activity) error {
	data, err := json.Marshal(activity)
	if err != nil {
		return fmt.Errorf("marshal activity: %w", err)
	}

	msg := &nats.Msg{
		Subject: ActivitySubject(p.prefix, activity.Type),
		Data:    data,
		Header:  nats.Header{},
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(msg.Header))

	ack, err := p.js.PublishMsg(ctx, msg)
	if err != nil {
		return fmt.Errorf("nats publish: %w", err)
	}

	slog.DebugContext(ctx, "activity published",
		"subject", msg.Subject,
		"stream", ack.Stream,
		"seq", ack.Sequence)
	return nil
}

func (p *natsPublisher) Close() error {
	return p.nc.Drain()
}
