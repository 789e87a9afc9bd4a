package transition_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

var _ = Describe("Bookmarks", func() {
	actor := model.Actor{ID: 4}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	Context("favorites", func() {
		It("adds when absent and rejects duplicates", func() {
			out := transition.AddFavorite(actor, 9, nil, now)
			Expect(out.Allow).To(BeTrue())
			Expect(out.State.EventID).To(Equal(int64(9)))

			again := transition.AddFavorite(actor, 9, &out.State, now)
			Expect(again.Err()).To(MatchError(transition.ErrAlreadyExists))
		})

		It("fails to remove a missing favorite", func() {
			Expect(transition.RemoveFavorite(nil).Err()).To(MatchError(transition.ErrNotFound))
		})

		It("removes an existing favorite", func() {
			fav := &model.EventFavorite{ID: 2, EventID: 9, UserID: actor.ID}
			out := transition.RemoveFavorite(fav)
			Expect(out.Allow).To(BeTrue())
			Expect(out.State.ID).To(Equal(int64(2)))
		})
	})

	Context("saved jobs", func() {
		It("creates a saved job", func() {
			out := transition.SaveJob(actor, 5, nil, now)
			Expect(out.Allow).To(BeTrue())
			Expect(out.Noop).To(BeFalse())
			Expect(out.State.JobID).To(Equal(int64(5)))
		})

		It("treats saving again as success with the original record", func() {
			existing := &model.SavedJob{ID: 11, JobID: 5, UserID: actor.ID}
			out := transition.SaveJob(actor, 5, existing, now)

			Expect(out.Allow).To(BeTrue())
			Expect(out.Noop).To(BeTrue())
			Expect(out.State.ID).To(Equal(int64(11)))
		})

		It("unsaves silently when nothing is saved", func() {
			out := transition.UnsaveJob(nil)
			Expect(out.Allow).To(BeTrue())
			Expect(out.Noop).To(BeTrue())
			Expect(out.Err()).NotTo(HaveOccurred())
		})

		It("unsaves an existing record", func() {
			out := transition.UnsaveJob(&model.SavedJob{ID: 11})
			Expect(out.Allow).To(BeTrue())
			Expect(out.Noop).To(BeFalse())
		})
	})
})
