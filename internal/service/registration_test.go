package service_test

import (
	"context"
	"errors"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/service"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

var _ = Describe("RegistrationService", func() {
	const eventID = int64(10)

	var (
		ctx   context.Context
		db    *memDB
		svc   service.RegistrationService
		event model.Event
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newMemDB()
		event = model.Event{
			ID:          eventID,
			OrganizerID: 1,
			Title:       "Reunion",
			Status:      model.EventStatusPublished,
			StartsAt:    testNow.Add(72 * time.Hour),
		}
		svc = service.NewRegistrationService(db, service.Notifier{Now: func() time.Time { return testNow }})
	})

	JustBeforeEach(func() {
		db.seed(func(d *memData) { d.events[eventID] = event })
	})

	Describe("Register", func() {
		It("confirms a registration", func() {
			reg, err := svc.Register(ctx, member, eventID)

			Expect(err).NotTo(HaveOccurred())
			Expect(reg.EventID).To(Equal(eventID))
			Expect(reg.UserID).To(Equal(member.ID))
			Expect(reg.Status).To(Equal(model.RegistrationStatusConfirmed))
		})

		It("returns AlreadyRegistered on a second attempt", func() {
			_, err := svc.Register(ctx, member, eventID)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Register(ctx, member, eventID)
			Expect(err).To(MatchError(transition.ErrAlreadyRegistered))
			Expect(errors.Is(err, transition.ErrAlreadyExists)).To(BeTrue())
		})

		It("translates a lost insert race into AlreadyRegistered", func() {
			_, err := svc.Register(ctx, member, eventID)
			Expect(err).NotTo(HaveOccurred())

			db.staleReads = true
			_, err = svc.Register(ctx, member, eventID)
			Expect(err).To(MatchError(transition.ErrAlreadyRegistered))
		})

		It("reports a missing event", func() {
			_, err := svc.Register(ctx, member, 999)
			Expect(err).To(MatchError(service.ErrEventNotFound))
		})

		Context("when the event is not published", func() {
			BeforeEach(func() { event.Status = model.EventStatusDraft })

			It("returns NotOpen", func() {
				_, err := svc.Register(ctx, member, eventID)
				Expect(err).To(MatchError(transition.ErrNotOpen))
			})
		})

		Context("when the registration deadline has passed", func() {
			BeforeEach(func() { event.RegistrationDeadline = ptr(testNow.Add(-time.Minute)) })

			It("returns DeadlinePassed", func() {
				_, err := svc.Register(ctx, member, eventID)
				Expect(err).To(MatchError(transition.ErrDeadlinePassed))
			})
		})

		Context("with max_attendees", func() {
			const capacity = 5

			BeforeEach(func() { event.MaxAttendees = ptr(int32(capacity)) })

			It("admits exactly max_attendees concurrent registrants", func() {
				const n = 25
				var (
					wg        sync.WaitGroup
					mu        sync.Mutex
					successes int
					full      int
				)
				for i := 0; i < n; i++ {
					wg.Add(1)
					go func(userID int64) {
						defer GinkgoRecover()
						defer wg.Done()
						_, err := svc.Register(ctx, model.Actor{ID: userID}, eventID)
						mu.Lock()
						defer mu.Unlock()
						switch {
						case err == nil:
							successes++
						case errors.Is(err, transition.ErrFull):
							full++
						default:
							Fail("unexpected error: " + err.Error())
						}
					}(int64(1000 + i))
				}
				wg.Wait()

				Expect(successes).To(Equal(capacity))
				Expect(full).To(Equal(n - capacity))
				db.read(func(d *memData) { Expect(d.registrations).To(HaveLen(capacity)) })
			})
		})

		Context("with two seats and an open cancellation window", func() {
			BeforeEach(func() {
				event.MaxAttendees = ptr(int32(2))
				event.CancellationDeadline = ptr(testNow.Add(time.Hour))
			})

			It("frees a seat when a registrant cancels", func() {
				first := model.Actor{ID: 3001}
				second := model.Actor{ID: 3002}
				third := model.Actor{ID: 3003}

				_, err := svc.Register(ctx, first, eventID)
				Expect(err).NotTo(HaveOccurred())
				_, err = svc.Register(ctx, second, eventID)
				Expect(err).NotTo(HaveOccurred())

				_, err = svc.Register(ctx, third, eventID)
				Expect(err).To(MatchError(transition.ErrFull))

				Expect(svc.Unregister(ctx, first, eventID)).To(Succeed())

				reg, err := svc.Register(ctx, third, eventID)
				Expect(err).NotTo(HaveOccurred())
				Expect(reg.UserID).To(Equal(third.ID))
				db.read(func(d *memData) { Expect(d.registrations).To(HaveLen(2)) })
			})
		})
	})

	Describe("Unregister", func() {
		It("removes the registration", func() {
			_, err := svc.Register(ctx, member, eventID)
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.Unregister(ctx, member, eventID)).To(Succeed())
			db.read(func(d *memData) { Expect(d.registrations).To(BeEmpty()) })
		})

		It("returns NotRegistered when there is nothing to cancel", func() {
			err := svc.Unregister(ctx, member, eventID)
			Expect(err).To(MatchError(transition.ErrNotRegistered))
		})

		Context("after the cancellation deadline", func() {
			BeforeEach(func() { event.CancellationDeadline = ptr(testNow.Add(-time.Hour)) })

			It("keeps the registration and returns DeadlinePassed", func() {
				_, err := svc.Register(ctx, member, eventID)
				Expect(err).NotTo(HaveOccurred())

				Expect(svc.Unregister(ctx, member, eventID)).To(MatchError(transition.ErrDeadlinePassed))
				db.read(func(d *memData) { Expect(d.registrations).To(HaveLen(1)) })
			})
		})
	})
})
