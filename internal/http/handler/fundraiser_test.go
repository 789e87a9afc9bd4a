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

var _ = Describe("FundraiserHandler", func() {
	var (
		router *gin.Engine
		svc    *mockFundraiserService
	)

	BeforeEach(func() {
		svc = &mockFundraiserService{}
		router = newRouter(&member)
		h := handler.NewFundraiserHandler(svc)
		router.POST("/campaigns/:id/fundraisers", h.Create)
		router.POST("/fundraisers/:id/pause", h.Pause)
		router.POST("/fundraisers/:id/resume", h.Resume)
		router.POST("/fundraisers/:id/complete", h.Complete)
		router.POST("/donations/:id/complete", h.CompleteDonation)
	})

	It("creates a fundraiser from the draft", func() {
		var got transition.FundraiserDraft
		svc.createFn = func(_ context.Context, a model.Actor, campaignID int64, draft transition.FundraiserDraft) (*model.PeerFundraiser, error) {
			got = draft
			return &model.PeerFundraiser{ID: 1, CampaignID: campaignID, UserID: a.ID, Title: draft.Title, GoalAmount: draft.GoalAmount, Status: model.FundraiserStatusActive}, nil
		}

		w, resp := do(router, http.MethodPost, "/campaigns/3/fundraisers", map[string]any{"title": "Run for books", "goal_amount": 50000})

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(got.Title).To(Equal("Run for books"))
		Expect(got.GoalAmount).To(Equal(int64(50000)))
		Expect(resp["campaign_id"]).To(Equal("3"))
		Expect(resp["status"]).To(Equal("active"))
	})

	It("returns 400 without a title", func() {
		w, _ := do(router, http.MethodPost, "/campaigns/3/fundraisers", map[string]any{"goal_amount": 100})

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 404 for an unknown campaign", func() {
		svc.createFn = func(context.Context, model.Actor, int64, transition.FundraiserDraft) (*model.PeerFundraiser, error) {
			return nil, service.ErrCampaignNotFound
		}

		w, _ := do(router, http.MethodPost, "/campaigns/3/fundraisers", map[string]any{"title": "x", "goal_amount": 100})

		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("returns 403 when a non-owner pauses", func() {
		svc.pauseFn = func(context.Context, model.Actor, int64) (*model.PeerFundraiser, error) {
			return nil, transition.ErrForbidden
		}

		w, _ := do(router, http.MethodPost, "/fundraisers/8/pause", nil)

		Expect(w.Code).To(Equal(http.StatusForbidden))
	})

	It("returns 422 when resuming an active fundraiser", func() {
		svc.resumeFn = func(context.Context, model.Actor, int64) (*model.PeerFundraiser, error) {
			return nil, transition.Deny(transition.KindInvalidState, "fundraiser is active")
		}

		w, resp := do(router, http.MethodPost, "/fundraisers/8/resume", nil)

		Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
		Expect(resp["error"]).To(Equal("fundraiser is active"))
	})

	It("completes a fundraiser", func() {
		svc.completeFn = func(_ context.Context, _ model.Actor, id int64) (*model.PeerFundraiser, error) {
			return &model.PeerFundraiser{ID: id, Status: model.FundraiserStatusCompleted}, nil
		}

		_, resp := do(router, http.MethodPost, "/fundraisers/8/complete", nil)

		Expect(resp["status"]).To(Equal("completed"))
	})

	It("returns the raised amount after applying a donation", func() {
		svc.completeDonationFn = func(_ context.Context, _ model.Actor, id int64) (*service.DonationApplied, error) {
			return &service.DonationApplied{
				Donation:     model.Donation{ID: id, FundraiserID: 8, Amount: 2500, Status: model.DonationStatusCompleted},
				RaisedAmount: 7500,
			}, nil
		}

		w, resp := do(router, http.MethodPost, "/donations/21/complete", nil)

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(resp["raised_amount"]).To(BeNumerically("==", 7500))
		Expect(resp["status"]).To(Equal("completed"))
	})
})
