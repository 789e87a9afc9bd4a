package service_test

import (
	"context"
	"errors"
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/queue"
	"github.com/geniusdynamics/alumate-sub010/internal/service"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

var _ = Describe("ConnectionService", func() {
	var (
		ctx      context.Context
		db       *memDB
		activity *mockActivity
		svc      service.ConnectionService
	)

	BeforeEach(func() {
		ctx = context.Background()
		db = newMemDB()
		activity = &mockActivity{}
		svc = service.NewConnectionService(db, db.outside().Connections(), service.Notifier{
			Activity: activity,
			Now:      func() time.Time { return testNow },
		})
	})

	Describe("Request", func() {
		It("creates a pending connection and publishes activity", func() {
			conn, err := svc.Request(ctx, member, other.ID, ptr("hi"))

			Expect(err).NotTo(HaveOccurred())
			Expect(conn.ID).NotTo(BeZero())
			Expect(conn.RequesterID).To(Equal(member.ID))
			Expect(conn.AddresseeID).To(Equal(other.ID))
			Expect(conn.Status).To(Equal(model.ConnectionStatusPending))
			Expect(conn.RequestedAt).To(Equal(testNow))
			Expect(activity.Types()).To(ConsistOf(queue.ActivityConnectionRequested))
		})

		It("rejects a self connection", func() {
			_, err := svc.Request(ctx, member, member.ID, nil)

			Expect(err).To(MatchError(transition.ErrSelfReference))
			db.read(func(d *memData) { Expect(d.connections).To(BeEmpty()) })
		})

		It("rejects a request in either direction once a pair exists", func() {
			_, err := svc.Request(ctx, member, other.ID, nil)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Request(ctx, other, member.ID, nil)
			Expect(err).To(MatchError(transition.ErrAlreadyExists))

			_, err = svc.Request(ctx, member, other.ID, nil)
			Expect(err).To(MatchError(transition.ErrAlreadyExists))
		})

		It("translates a lost insert race into AlreadyExists", func() {
			_, err := svc.Request(ctx, member, other.ID, nil)
			Expect(err).NotTo(HaveOccurred())

			db.staleReads = true
			_, err = svc.Request(ctx, other, member.ID, nil)

			Expect(err).To(MatchError(transition.ErrAlreadyExists))
		})

		It("lets exactly one of many concurrent duplicates through", func() {
			const n = 20
			var (
				wg        sync.WaitGroup
				mu        sync.Mutex
				successes int
				conflicts int
			)
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func(i int) {
					defer GinkgoRecover()
					defer wg.Done()
					requester, target := member, other.ID
					if i%2 == 1 {
						requester, target = other, member.ID
					}
					_, err := svc.Request(ctx, requester, target, nil)
					mu.Lock()
					defer mu.Unlock()
					switch {
					case err == nil:
						successes++
					case errors.Is(err, transition.ErrAlreadyExists):
						conflicts++
					default:
						Fail("unexpected error: " + err.Error())
					}
				}(i)
			}
			wg.Wait()

			Expect(successes).To(Equal(1))
			Expect(conflicts).To(Equal(n - 1))
		})
	})

	Describe("Accept and Decline", func() {
		var pending *model.Connection

		BeforeEach(func() {
			var err error
			pending, err = svc.Request(ctx, member, other.ID, nil)
			Expect(err).NotTo(HaveOccurred())
		})

		It("lets the addressee accept", func() {
			conn, err := svc.Accept(ctx, other, pending.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(conn.Status).To(Equal(model.ConnectionStatusAccepted))
			Expect(conn.AcceptedAt).To(HaveValue(Equal(testNow)))
		})

		It("lets the addressee decline", func() {
			conn, err := svc.Decline(ctx, other, pending.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(conn.Status).To(Equal(model.ConnectionStatusDeclined))
			Expect(conn.DeclinedAt).To(HaveValue(Equal(testNow)))
		})

		It("forbids the requester from accepting", func() {
			_, err := svc.Accept(ctx, member, pending.ID)
			Expect(err).To(MatchError(transition.ErrForbidden))
		})

		It("keeps a declined pair blocked for new requests", func() {
			_, err := svc.Decline(ctx, other, pending.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Request(ctx, member, other.ID, nil)
			Expect(err).To(MatchError(transition.ErrAlreadyExists))

			_, err = svc.Request(ctx, other, member.ID, nil)
			Expect(err).To(MatchError(transition.ErrAlreadyExists))
		})

		It("refuses to accept twice", func() {
			_, err := svc.Accept(ctx, other, pending.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.Decline(ctx, other, pending.ID)
			Expect(err).To(MatchError(transition.ErrInvalidState))
		})

		It("reports a missing connection", func() {
			_, err := svc.Accept(ctx, other, 12345)
			Expect(err).To(MatchError(service.ErrConnectionNotFound))
			Expect(errors.Is(err, service.ErrResourceNotFound)).To(BeTrue())
		})
	})

	Describe("Remove", func() {
		var conn *model.Connection

		BeforeEach(func() {
			var err error
			conn, err = svc.Request(ctx, member, other.ID, nil)
			Expect(err).NotTo(HaveOccurred())
		})

		It("refuses to remove a pending connection", func() {
			Expect(svc.Remove(ctx, member, conn.ID)).To(MatchError(transition.ErrInvalidState))
		})

		It("lets either party remove an accepted connection", func() {
			_, err := svc.Accept(ctx, other, conn.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.Remove(ctx, member, conn.ID)).To(Succeed())

			status, err := svc.Status(ctx, other, member.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(status).To(BeNil())
		})

		It("lets the pair connect again after removal", func() {
			_, err := svc.Accept(ctx, other, conn.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(svc.Remove(ctx, other, conn.ID)).To(Succeed())

			again, err := svc.Request(ctx, other, member.ID, nil)

			Expect(err).NotTo(HaveOccurred())
			Expect(again.ID).NotTo(Equal(conn.ID))
			Expect(again.RequesterID).To(Equal(other.ID))
			Expect(again.Status).To(Equal(model.ConnectionStatusPending))

			status, err := svc.Status(ctx, member, other.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(status.ID).To(Equal(again.ID))
		})

		It("forbids a third party", func() {
			_, err := svc.Accept(ctx, other, conn.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(svc.Remove(ctx, stranger, conn.ID)).To(MatchError(transition.ErrForbidden))
		})
	})

	Describe("Status", func() {
		It("finds the connection regardless of direction", func() {
			created, err := svc.Request(ctx, member, other.ID, nil)
			Expect(err).NotTo(HaveOccurred())

			found, err := svc.Status(ctx, other, member.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found.ID).To(Equal(created.ID))
		})
	})

	It("propagates transaction failures", func() {
		svc = service.NewConnectionService(&mockTxRunner{
			withTxFn: func(_ context.Context, _ func(service.StoreProvider) error) error {
				return errors.New("connection refused")
			},
		}, db.outside().Connections(), service.Notifier{})

		_, err := svc.Request(ctx, member, other.ID, nil)
		Expect(err).To(MatchError("connection refused"))
	})
})
