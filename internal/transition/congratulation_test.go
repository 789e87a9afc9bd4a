package transition_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

var _ = Describe("Congratulations", func() {
	actor := model.Actor{ID: 21}
	celebration := model.Celebration{ID: 300, UserID: 99, CongratulationsCount: 4}
	now := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	It("creates a congratulation with the message", func() {
		msg := "well done"
		out := transition.Congratulate(celebration, actor, nil, &msg, now)

		Expect(out.Allow).To(BeTrue())
		Expect(out.State.CelebrationID).To(Equal(celebration.ID))
		Expect(out.State.UserID).To(Equal(actor.ID))
		Expect(out.State.Message).To(Equal(&msg))
	})

	It("allows congratulating your own celebration", func() {
		own := model.Actor{ID: celebration.UserID}
		Expect(transition.Congratulate(celebration, own, nil, nil, now).Allow).To(BeTrue())
	})

	It("rejects a second congratulation", func() {
		existing := &model.Congratulation{ID: 1}
		out := transition.Congratulate(celebration, actor, existing, nil, now)
		Expect(out.Err()).To(MatchError(transition.ErrAlreadyExists))
		Expect(out.Err().Error()).To(Equal("you have already congratulated this achievement"))
	})

	It("reports not found when there is nothing to remove", func() {
		out := transition.Uncongratulate(nil)
		Expect(out.Allow).To(BeFalse())
		Expect(out.Kind).To(Equal(transition.KindNotFound))
	})
})
