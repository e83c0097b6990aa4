package payment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/handyman-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/handyman-marketplace/internal/domain/payment"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

// ======================================================
// Capture
// ======================================================

type Capture struct {
	repo     domain.Repository
	provider domain.Provider
	audit    *audit.Dispatcher
}

func NewCapture(repo domain.Repository, provider domain.Provider, audit *audit.Dispatcher) *Capture {
	return &Capture{repo: repo, provider: provider, audit: audit}
}

func (uc *Capture) Execute(ctx context.Context, intentID string) (*models.Payment, error) {
	p, err := loadPayment(ctx, uc.repo, uc.provider, intentID)
	if err != nil {
		return nil, err
	}

	if err := uc.provider.Capture(ctx, intentID); err != nil {
		return nil, err
	}

	p.Status = string(domain.StatusCaptured)
	if err := uc.repo.UpdatePaymentStatus(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "payment_captured",
		Entity:   "payment",
		EntityID: &p.ID,
	})

	return p, nil
}

// ======================================================
// Refund
// ======================================================

type RefundInput struct {
	IntentID string
	// AmountQAR nil refunds the whole payment.
	AmountQAR *int
}

type Refund struct {
	repo     domain.Repository
	provider domain.Provider
	audit    *audit.Dispatcher
}

func NewRefund(repo domain.Repository, provider domain.Provider, audit *audit.Dispatcher) *Refund {
	return &Refund{repo: repo, provider: provider, audit: audit}
}

func (uc *Refund) Execute(ctx context.Context, in RefundInput) (*models.Payment, error) {
	if in.AmountQAR != nil && *in.AmountQAR <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	p, err := loadPayment(ctx, uc.repo, uc.provider, in.IntentID)
	if err != nil {
		return nil, err
	}

	if err := uc.provider.Refund(ctx, in.IntentID, in.AmountQAR); err != nil {
		return nil, err
	}

	p.Status = string(domain.StatusRefunded)
	if err := uc.repo.UpdatePaymentStatus(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "payment_refunded",
		Entity:   "payment",
		EntityID: &p.ID,
		Metadata: map[string]any{"amountQAR": in.AmountQAR},
	})

	return p, nil
}

func loadPayment(
	ctx context.Context,
	repo domain.Repository,
	provider domain.Provider,
	intentID string,
) (*models.Payment, error) {

	if strings.TrimSpace(intentID) == "" {
		return nil, httperr.ErrBusiness("missing_intent")
	}
	if provider == nil {
		return nil, httperr.ErrBusiness("payments_not_configured")
	}

	p, err := repo.GetPaymentByIntent(ctx, intentID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, httperr.ErrNotFound("payment_not_found")
	}
	return p, nil
}
