package handler_test

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/geniusdynamics/alumate-sub010/internal/http/handler"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/service"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

var _ = Describe("EventHandler", func() {
	var (
		router    *gin.Engine
		regs      *mockRegistrationService
		favorites *mockFavoriteService
	)

	BeforeEach(func() {
		regs = &mockRegistrationService{}
		favorites = &mockFavoriteService{}
		router = newRouter(&member)
		h := handler.NewEventHandler(regs, favorites)
		router.POST("/events/:id/registrations", h.Register)
		router.DELETE("/events/:id/registrations", h.Unregister)
		router.POST("/events/:id/favorite", h.Favorite)
		router.DELETE("/events/:id/favorite", h.Unfavorite)
	})

	It("registers the actor", func() {
		regs.registerFn = func(_ context.Context, a model.Actor, eventID int64) (*model.EventRegistration, error) {
			return &model.EventRegistration{ID: 9, EventID: eventID, UserID: a.ID, Status: model.RegistrationStatusConfirmed}, nil
		}

		w, resp := do(router, http.MethodPost, "/events/42/registrations", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(resp["event_id"]).To(Equal("42"))
		Expect(resp["status"]).To(Equal("confirmed"))
	})

	DescribeTable("maps registration violations to 422",
		func(err error, code string) {
			regs.registerFn = func(context.Context, model.Actor, int64) (*model.EventRegistration, error) {
				return nil, err
			}

			w, resp := do(router, http.MethodPost, "/events/42/registrations", nil)

			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(resp["code"]).To(Equal(code))
		},
		Entry("full", transition.ErrFull, "full"),
		Entry("not open", transition.ErrNotOpen, "not_open"),
		Entry("deadline passed", transition.ErrDeadlinePassed, "deadline_passed"),
		Entry("already registered", transition.ErrAlreadyRegistered, "already_registered"),
	)

	It("returns 404 for an unknown event", func() {
		regs.registerFn = func(context.Context, model.Actor, int64) (*model.EventRegistration, error) {
			return nil, service.ErrEventNotFound
		}

		w, resp := do(router, http.MethodPost, "/events/42/registrations", nil)

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(resp["code"]).To(Equal("not_found"))
	})

	It("returns 422 when unregistering without a registration", func() {
		regs.unregisterFn = func(context.Context, model.Actor, int64) error {
			return transition.ErrNotRegistered
		}

		w, resp := do(router, http.MethodDelete, "/events/42/registrations", nil)

		Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
		Expect(resp["code"]).To(Equal("not_registered"))
	})

	It("returns 422 when removing a missing favorite", func() {
		favorites.removeFn = func(context.Context, model.Actor, int64) error {
			return transition.ErrNotFound
		}

		w, resp := do(router, http.MethodDelete, "/events/42/favorite", nil)

		Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
		Expect(resp["code"]).To(Equal("not_found"))
	})

	It("favorites an event", func() {
		w, _ := do(router, http.MethodPost, "/events/42/favorite", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
	})
})

var _ = Describe("JobHandler", func() {
	var (
		router *gin.Engine
		saved  *mockSavedJobService
	)

	BeforeEach(func() {
		saved = &mockSavedJobService{}
		router = newRouter(&member)
		h := handler.NewJobHandler(saved)
		router.POST("/jobs/:id/save", h.Save)
		router.DELETE("/jobs/:id/save", h.Unsave)
	})

	It("saves a job", func() {
		saved.saveFn = func(_ context.Context, a model.Actor, jobID int64) (*model.SavedJob, error) {
			return &model.SavedJob{ID: 3, JobID: jobID, UserID: a.ID}, nil
		}

		w, resp := do(router, http.MethodPost, "/jobs/7/save", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(resp["job_id"]).To(Equal("7"))
	})

	It("returns 404 for an unknown job", func() {
		saved.saveFn = func(context.Context, model.Actor, int64) (*model.SavedJob, error) {
			return nil, service.ErrJobNotFound
		}

		w, _ := do(router, http.MethodPost, "/jobs/7/save", nil)

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("unsaves silently", func() {
		w, resp := do(router, http.MethodDelete, "/jobs/7/save", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(resp["saved"]).To(BeFalse())
	})
})
