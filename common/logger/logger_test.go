package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/geniusdynamics/alumate-sub010/common/logger"
)

var _ = Describe("TraceHandler", func() {
	var (
		buf *bytes.Buffer
		log *slog.Logger
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		log = slog.New(logger.NewTraceHandler(slog.NewJSONHandler(buf, nil)))
	})

	decode := func() map[string]any {
		var out map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &out)).To(Succeed())
		return out
	}

	It("adds context fields to every record", func() {
		ctx := logger.WithLogFields(context.Background(), logger.LogFields{
			ActorID:   logger.Ptr(int64(42)),
			Component: "alumate.test",
		})
		ctx = logger.WithLogFields(ctx, logger.LogFields{CelebrationID: logger.Ptr(int64(7))})

		log.InfoContext(ctx, "congratulated")

		out := decode()
		Expect(out["actor_id"]).To(BeEquivalentTo(42))
		Expect(out["celebration_id"]).To(BeEquivalentTo(7))
		Expect(out["component"]).To(Equal("alumate.test"))
	})

	It("keeps earlier fields when later calls leave them empty", func() {
		ctx := logger.WithLogFields(context.Background(), logger.LogFields{Component: "first"})
		ctx = logger.WithLogFields(ctx, logger.LogFields{EventID: logger.Ptr(int64(3))})

		fields := logger.GetLogFields(ctx)
		Expect(fields.Component).To(Equal("first"))
		Expect(fields.EventID).To(HaveValue(Equal(int64(3))))
	})

	It("omits trace ids without a span", func() {
		log.InfoContext(context.Background(), "plain")

		out := decode()
		Expect(out).NotTo(HaveKey("trace_id"))
		Expect(logger.TraceID(context.Background())).To(BeEmpty())
	})
})
