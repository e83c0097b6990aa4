package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httpresp"
	ucBid "github.com/BruksfildServices01/handyman-marketplace/internal/usecase/bid"
)

type BidHandler struct {
	create *ucBid.CreateBid
	accept *ucBid.AcceptBid
}

func NewBidHandler(create *ucBid.CreateBid, accept *ucBid.AcceptBid) *BidHandler {
	return &BidHandler{create: create, accept: accept}
}

// --------- Requests ---------

type CreateBidRequest struct {
	JobID      string  `json:"jobId"`
	ProviderID string  `json:"providerId"`
	AmountQAR  int     `json:"amountQAR"`
	Message    *string `json:"message"`
}

// --------- Handlers ---------

func (h *BidHandler) Create(c *gin.Context) {
	var req CreateBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	bid, err := h.create.Execute(c.Request.Context(), ucBid.CreateBidInput{
		JobID:      req.JobID,
		ProviderID: req.ProviderID,
		AmountQAR:  req.AmountQAR,
		Message:    req.Message,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_bid", "Failed to create bid.")
		return
	}
	httpresp.Created(c, bid)
}

func (h *BidHandler) Accept(c *gin.Context) {
	bid, err := h.accept.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_accept_bid", "Failed to accept bid.")
		return
	}
	httpresp.OK(c, bid)
}
