package queue_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"github.com/geniusdynamics/alumate-sub010/internal/queue"
)

var _ = Describe("ParseMessage", func() {
	It("parses a recount task", func() {
		msg, err := queue.ParseMessage(redis.XMessage{
			ID: "1-0",
			Values: map[string]any{
				"task_type": "recount_celebration",
				"target_id": "42",
				"attempt":   "2",
				"trace_id":  "abc",
			},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(msg.ID).To(Equal("1-0"))
		Expect(msg.TaskType).To(Equal(queue.TaskTypeRecountCelebration))
		Expect(msg.TargetID).To(Equal(int64(42)))
		Expect(msg.Attempt).To(Equal(2))

		task := msg.Task()
		Expect(task.TraceID).NotTo(BeNil())
		Expect(*task.TraceID).To(Equal("abc"))
	})

	It("defaults attempt to 1", func() {
		msg, err := queue.ParseMessage(redis.XMessage{
			ID:     "1-0",
			Values: map[string]any{"task_type": "recount_fundraiser", "target_id": "7"},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(msg.Attempt).To(Equal(1))
		Expect(msg.Task().TraceID).To(BeNil())
	})

	DescribeTable("rejects malformed messages",
		func(values map[string]any, fragment string) {
			_, err := queue.ParseMessage(redis.XMessage{ID: "1-0", Values: values})
			Expect(err).To(MatchError(ContainSubstring(fragment)))
		},
		Entry("missing task type", map[string]any{"target_id": "1"}, "missing task_type"),
		Entry("unknown task type", map[string]any{"task_type": "issue_event", "target_id": "1"}, "unknown task_type"),
		Entry("missing target", map[string]any{"task_type": "recount_celebration"}, "missing target_id"),
		Entry("non-numeric target", map[string]any{"task_type": "recount_celebration", "target_id": "x"}, "parsing target_id"),
		Entry("non-positive target", map[string]any{"task_type": "recount_celebration", "target_id": "0"}, "invalid target_id"),
	)
})

var _ = Describe("Task", func() {
	It("dedups on type and target", func() {
		a := queue.Task{TaskType: queue.TaskTypeRecountCelebration, TargetID: 5, Attempt: 1}
		b := queue.Task{TaskType: queue.TaskTypeRecountCelebration, TargetID: 5, Attempt: 3}
		c := queue.Task{TaskType: queue.TaskTypeRecountFundraiser, TargetID: 5}

		Expect(a.DedupKey()).To(Equal(b.DedupKey()))
		Expect(a.DedupKey()).NotTo(Equal(c.DedupKey()))
	})
})

var _ = Describe("ActivitySubject", func() {
	It("joins the prefix and activity type", func() {
		Expect(queue.ActivitySubject("alumate.activity", queue.ActivityCongratulated)).
			To(Equal("alumate.activity.celebration.congratulated"))
		Expect(queue.ActivitySubject("alumate.activity.", queue.ActivityEventRegistered)).
			To(Equal("alumate.activity.event.registered"))
	})
})
