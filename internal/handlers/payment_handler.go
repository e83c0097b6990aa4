package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httpresp"
	ucPayment "github.com/BruksfildServices01/handyman-marketplace/internal/usecase/payment"
)

type PaymentHandler struct {
	intent  *ucPayment.CreateIntent
	capture *ucPayment.Capture
	refund  *ucPayment.Refund
}

func NewPaymentHandler(
	intent *ucPayment.CreateIntent,
	capture *ucPayment.Capture,
	refund *ucPayment.Refund,
) *PaymentHandler {
	return &PaymentHandler{intent: intent, capture: capture, refund: refund}
}

// --------- Requests ---------

type CreateIntentRequest struct {
	AmountQAR  int    `json:"amountQAR"`
	JobID      string `json:"jobId"`
	CustomerID string `json:"customerId"`
	PayerEmail string `json:"payerEmail"`
}

type RefundRequest struct {
	AmountQAR *int `json:"amountQAR"`
}

// --------- Handlers ---------

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	intent, err := h.intent.Execute(c.Request.Context(), ucPayment.CreateIntentInput{
		JobID:      req.JobID,
		CustomerID: req.CustomerID,
		AmountQAR:  req.AmountQAR,
		PayerEmail: req.PayerEmail,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_create_intent", "Failed to create payment intent.")
		return
	}
	httpresp.Created(c, intent)
}

func (h *PaymentHandler) Capture(c *gin.Context) {
	p, err := h.capture.Execute(c.Request.Context(), c.Param("intentId"))
	if err != nil {
		httperr.Respond(c, err, "failed_to_capture_payment", "Failed to capture payment.")
		return
	}
	httpresp.OK(c, p)
}

func (h *PaymentHandler) Refund(c *gin.Context) {
	var req RefundRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	p, err := h.refund.Execute(c.Request.Context(), ucPayment.RefundInput{
		IntentID:  c.Param("intentId"),
		AmountQAR: req.AmountQAR,
	})
	if err != nil {
		httperr.Respond(c, err, "failed_to_refund_payment", "Failed to refund payment.")
		return
	}
	httpresp.OK(c, p)
}
