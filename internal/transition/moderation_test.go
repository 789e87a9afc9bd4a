package transition_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

var _ = Describe("Moderation", func() {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	member := model.Actor{ID: 1, Roles: model.NewRoleSet(model.RoleMember)}
	moderator := model.Actor{ID: 2, Roles: model.NewRoleSet(model.RoleModerator)}
	admin := model.Actor{ID: 3, Roles: model.NewRoleSet(model.RoleAdmin, model.RoleMember)}

	It("requires admin or moderator to view the queue", func() {
		Expect(transition.RequireModerator(member).Kind).To(Equal(transition.KindForbidden))
		Expect(transition.RequireModerator(moderator).Allow).To(BeTrue())
		Expect(transition.RequireModerator(admin).Allow).To(BeTrue())
	})

	DescribeTable("moderating a pending post",
		func(decision model.ModerationDecision, want model.PostStatus) {
			post := model.ForumPost{ID: 5, AuthorID: 9, Status: model.PostStatusPending}
			note := "checked"
			out := transition.Moderate(post, moderator, decision, &note, now)

			Expect(out.Allow).To(BeTrue())
			Expect(out.State.Status).To(Equal(want))
			Expect(out.State.ModeratedBy).To(HaveValue(Equal(moderator.ID)))
			Expect(out.State.ModerationNote).To(HaveValue(Equal("checked")))
		},
		Entry("approve", model.ModerationApprove, model.PostStatusApproved),
		Entry("reject", model.ModerationReject, model.PostStatusRejected),
	)

	It("forbids members", func() {
		post := model.ForumPost{ID: 5, Status: model.PostStatusPending}
		Expect(transition.Moderate(post, member, model.ModerationApprove, nil, now).Err()).To(MatchError(transition.ErrForbidden))
	})

	It("does not moderate twice", func() {
		post := model.ForumPost{ID: 5, Status: model.PostStatusApproved}
		Expect(transition.Moderate(post, admin, model.ModerationReject, nil, now).Kind).To(Equal(transition.KindInvalidState))
	})
})
