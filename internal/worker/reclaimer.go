package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/geniusdynamics/alumate-sub010/common/logger"
	"github.com/geniusdynamics/alumate-sub010/internal/queue"
)

// StreamClaimer is the part of the redis client the reclaimer uses.
// *redis.Client satisfies it.
type StreamClaimer interface {
	XPendingExt(ctx context.Context, a *redis.XPendingExtArgs) *redis.XPendingExtCmd
	XClaim(ctx context.Context, a *redis.XClaimArgs) *redis.XMessageSliceCmd
}

type RedisReclaimerConfig struct {
	Stream    string
	Group     string
	Consumer  string
	MinIdle   time.Duration
	Interval  time.Duration
	BatchSize int64
	// MaxDeliveries dead-letters tasks that keep getting stuck. Zero disables the limit.
	MaxDeliveries int64
}

// Reclaimed counts what one reclaim cycle did with stale entries.
type Reclaimed struct {
	Claimed      int
	Processed    int
	DeadLettered int
	Dropped      int
	Failed       int
}

// RedisReclaimer periodically claims recount tasks left pending by a worker
// that died after XREADGROUP but before XACK.
type RedisReclaimer struct {
	streams   StreamClaimer
	cfg       RedisReclaimerConfig
	consumer  Consumer
	processor queue.MessageProcessor

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func NewRedisReclaimer(streams StreamClaimer, cfg RedisReclaimerConfig, consumer Consumer, processor queue.MessageProcessor) *RedisReclaimer {
	return &RedisReclaimer{
		streams:   streams,
		cfg:       cfg,
		consumer:  consumer,
		processor: processor,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Run ticks until Stop is called or ctx ends.
func (r *RedisReclaimer) Run(ctx context.Context) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "alumate.worker.reclaimer",
	})

	defer close(r.stoppedCh)

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "reclaimer started",
		"interval", r.cfg.Interval,
		"min_idle", r.cfg.MinIdle,
		"max_deliveries", r.cfg.MaxDeliveries,
		"stream", r.cfg.Stream)

	for {
		select {
		case <-ctx.Done():
			return
		case <-r.stopCh:
			slog.InfoContext(ctx, "reclaimer stopping")
			return
		case <-ticker.C:
			if _, err := r.ReclaimOnce(ctx); err != nil {
				slog.ErrorContext(ctx, "reclaim cycle error", "error", err)
			}
		}
	}
}

func (r *RedisReclaimer) Stop() {
	close(r.stopCh)
	<-r.stoppedCh
}

// ReclaimOnce claims every entry idle for at least MinIdle and either
// reprocesses it or, past MaxDeliveries, moves it to the dead-letter stream.
// Per-entry failures are counted and logged, not returned.
func (r *RedisReclaimer) ReclaimOnce(ctx context.Context) (Reclaimed, error) {
	var result Reclaimed

	pending, err := r.streams.XPendingExt(ctx, &redis.XPendingExtArgs{
		Stream: r.cfg.Stream,
		Group:  r.cfg.Group,
		Idle:   r.cfg.MinIdle,
		Start:  "-",
		End:    "+",
		Count:  r.cfg.BatchSize,
	}).Result()
	if err != nil {
		return result, fmt.Errorf("xpending: %w", err)
	}
	if len(pending) == 0 {
		return result, nil
	}

	slog.InfoContext(ctx, "found stale recount tasks", "count", len(pending))

	for _, p := range pending {
		if err := r.reclaim(ctx, p, &result); err != nil {
			result.Failed++
			slog.ErrorContext(ctx, "failed to reclaim recount task",
				"error", err,
				"message_id", p.ID,
				"original_consumer", p.Consumer,
				"idle_time", p.Idle)
		}
	}

	return result, nil
}

func (r *RedisReclaimer) reclaim(ctx context.Context, pending redis.XPendingExt, result *Reclaimed) error {
	msgID := pending.ID
	ctx = logger.WithLogFields(ctx, logger.LogFields{MessageID: &msgID})

	claimed, err := r.streams.XClaim(ctx, &redis.XClaimArgs{
		Stream:   r.cfg.Stream,
		Group:    r.cfg.Group,
		Consumer: r.cfg.Consumer,
		MinIdle:  r.cfg.MinIdle,
		Messages: []string{pending.ID},
	}).Result()
	if err != nil {
		return fmt.Errorf("xclaim: %w", err)
	}
	if len(claimed) == 0 {
		slog.DebugContext(ctx, "task already claimed by another consumer")
		return nil
	}
	result.Claimed++

	raw := claimed[0]
	msg, err := queue.ParseMessage(raw)
	if err != nil {
		// unparseable entries would be reclaimed forever
		slog.ErrorContext(ctx, "dropping unparseable recount task", "error", err)
		result.Dropped++
		return r.consumer.Ack(ctx, queue.Message{ID: raw.ID, Raw: raw})
	}

	if r.exhausted(pending) {
		slog.ErrorContext(ctx, "recount task exceeded delivery limit, sending to DLQ",
			"deliveries", pending.RetryCount,
			"task_type", msg.TaskType,
			"target_id", msg.TargetID)
		if err := r.consumer.SendDLQ(ctx, msg, fmt.Sprintf("exceeded %d deliveries", r.cfg.MaxDeliveries)); err != nil {
			return fmt.Errorf("sending to dlq: %w", err)
		}
		result.DeadLettered++
		return nil
	}

	slog.InfoContext(ctx, "reprocessing stale recount task",
		"original_consumer", pending.Consumer,
		"deliveries", pending.RetryCount)

	start := time.Now()
	if err := r.processor(ctx, msg); err != nil {
		return fmt.Errorf("processing reclaimed task: %w", err)
	}
	result.Processed++

	slog.InfoContext(ctx, "reclaimed recount task processed",
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}

func (r *RedisReclaimer) exhausted(pending redis.XPendingExt) bool {
	return r.cfg.MaxDeliveries > 0 && pending.RetryCount >= r.cfg.MaxDeliveries
}
