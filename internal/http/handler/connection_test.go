package handler_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/geniusdynamics/alumate-sub010/internal/http/handler"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/service"
	"github.com/geniusdynamics/alumate-sub010/internal/transition"
)

var _ = Describe("ConnectionHandler", func() {
	var (
		router *gin.Engine
		svc    *mockConnectionService
		as     *model.Actor
	)

	BeforeEach(func() {
		svc = &mockConnectionService{}
		a := member
		as = &a
	})

	JustBeforeEach(func() {
		router = newRouter(as)
		h := handler.NewConnectionHandler(svc)
		router.POST("/connections", h.Request)
		router.GET("/connections/status/:userId", h.Status)
		router.POST("/connections/:id/accept", h.Accept)
		router.POST("/connections/:id/decline", h.Decline)
		router.DELETE("/connections/:id", h.Remove)
	})

	Describe("Request", func() {
		It("returns the pending connection", func() {
			var gotTarget int64
			svc.requestFn = func(_ context.Context, a model.Actor, targetID int64, message *string) (*model.Connection, error) {
				gotTarget = targetID
				Expect(a.ID).To(Equal(member.ID))
				Expect(*message).To(Equal("hi"))
				return &model.Connection{ID: 1, RequesterID: a.ID, AddresseeID: targetID, Status: model.ConnectionStatusPending, Message: message}, nil
			}

			w, resp := do(router, http.MethodPost, "/connections", map[string]any{"target_id": "200", "message": "hi"})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(gotTarget).To(Equal(int64(200)))
			Expect(resp["status"]).To(Equal("pending"))
			Expect(resp["addressee_id"]).To(Equal("200"))
		})

		It("returns 422 with the violation kind", func() {
			svc.requestFn = func(context.Context, model.Actor, int64, *string) (*model.Connection, error) {
				return nil, transition.Deny(transition.KindSelfReference, "")
			}

			w, resp := do(router, http.MethodPost, "/connections", map[string]any{"target_id": "100"})

			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(resp["code"]).To(Equal("self_reference"))
			Expect(resp["error"]).To(Equal(transition.KindSelfReference.Message()))
		})

		It("returns 404 when the target user does not exist", func() {
			svc.requestFn = func(context.Context, model.Actor, int64, *string) (*model.Connection, error) {
				return nil, fmt.Errorf("requesting connection: %w", service.ErrUserNotFound)
			}

			w, _ := do(router, http.MethodPost, "/connections", map[string]any{"target_id": "404"})

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 400 without a target", func() {
			w, _ := do(router, http.MethodPost, "/connections", map[string]any{})

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		Context("without an authenticated actor", func() {
			BeforeEach(func() { as = nil })

			It("returns 401", func() {
				w, _ := do(router, http.MethodPost, "/connections", map[string]any{"target_id": "200"})

				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("Accept", func() {
		It("returns 403 when the actor is not the addressee", func() {
			svc.acceptFn = func(context.Context, model.Actor, int64) (*model.Connection, error) {
				return nil, transition.Deny(transition.KindForbidden, "only the addressee can respond")
			}

			w, resp := do(router, http.MethodPost, "/connections/5/accept", nil)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(resp["code"]).To(Equal("forbidden"))
			Expect(resp["error"]).To(Equal("only the addressee can respond"))
		})

		It("returns 422 when the connection is no longer pending", func() {
			svc.acceptFn = func(context.Context, model.Actor, int64) (*model.Connection, error) {
				return nil, transition.ErrInvalidState
			}

			w, resp := do(router, http.MethodPost, "/connections/5/accept", nil)

			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(resp["code"]).To(Equal("invalid_state"))
		})

		It("returns 400 on a malformed id", func() {
			w, _ := do(router, http.MethodPost, "/connections/abc/accept", nil)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Decline", func() {
		It("returns 404 for an unknown connection", func() {
			svc.declineFn = func(context.Context, model.Actor, int64) (*model.Connection, error) {
				return nil, service.ErrConnectionNotFound
			}

			w, _ := do(router, http.MethodPost, "/connections/5/decline", nil)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Remove", func() {
		It("returns 500 on unexpected failures", func() {
			svc.removeFn = func(context.Context, model.Actor, int64) error {
				return errors.New("connection reset")
			}

			w, resp := do(router, http.MethodDelete, "/connections/5", nil)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(resp["error"]).To(Equal("internal error"))
		})

		It("returns 200 on success", func() {
			w, resp := do(router, http.MethodDelete, "/connections/5", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(resp["removed"]).To(BeTrue())
		})
	})

	Describe("Status", func() {
		It("reports none when there is no connection", func() {
			w, resp := do(router, http.MethodGet, "/connections/status/200", nil)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(resp["status"]).To(Equal("none"))
		})

		It("reports direction from the caller's side", func() {
			svc.statusFn = func(_ context.Context, a model.Actor, other int64) (*model.Connection, error) {
				return &model.Connection{ID: 1, RequesterID: other, AddresseeID: a.ID, Status: model.ConnectionStatusPending}, nil
			}

			_, resp := do(router, http.MethodGet, "/connections/status/200", nil)

			Expect(resp["status"]).To(Equal("pending"))
			Expect(resp["direction"]).To(Equal("incoming"))
		})
	})
})
