package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geniusdynamics/alumate-sub010/internal/http/dto"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/service"
)

type FundraiserHandler struct {
	fundraisers service.FundraiserService
}

func NewFundraiserHandler(fundraisers service.FundraiserService) *FundraiserHandler {
	return &FundraiserHandler{fundraisers: fundraisers}
}

func (h *FundraiserHandler) Create(c *gin.Context) {
	a, campaignID, ok := target(c, "id")
	if !ok {
		return
	}

	var req dto.CreateFundraiserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	f, err := h.fundraisers.Create(c.Request.Context(), a, campaignID, req.Draft())
	if err != nil {
		respondError(c, err, "fundraiser.create")
		return
	}
	c.JSON(http.StatusOK, dto.ToFundraiserResponse(f))
}

func (h *FundraiserHandler) Pause(c *gin.Context) {
	h.move(c, "fundraiser.pause", h.fundraisers.Pause)
}

func (h *FundraiserHandler) Resume(c *gin.Context) {
	h.move(c, "fundraiser.resume", h.fundraisers.Resume)
}

func (h *FundraiserHandler) Complete(c *gin.Context) {
	h.move(c, "fundraiser.complete", h.fundraisers.Complete)
}

func (h *FundraiserHandler) move(c *gin.Context, op string, fn func(context.Context, model.Actor, int64) (*model.PeerFundraiser, error)) {
	a, id, ok := target(c, "id")
	if !ok {
		return
	}

	f, err := fn(c.Request.Context(), a, id)
	if err != nil {
		respondError(c, err, op)
		return
	}
	c.JSON(http.StatusOK, dto.ToFundraiserResponse(f))
}

func (h *FundraiserHandler) CompleteDonation(c *gin.Context) {
	a, donationID, ok := target(c, "id")
	if !ok {
		return
	}

	result, err := h.fundraisers.CompleteDonation(c.Request.Context(), a, donationID)
	if err != nil {
		respondError(c, err, "donation.complete")
		return
	}
	c.JSON(http.StatusOK, dto.ToDonationResponse(result))
}
