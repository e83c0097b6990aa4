package payment

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/handyman-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/handyman-marketplace/internal/domain/payment"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

type CreateIntentInput struct {
	JobID      string
	CustomerID string
	AmountQAR  int

	// PayerEmail is forwarded to providers that need it.
	PayerEmail string
}

type CreateIntent struct {
	repo     domain.Repository
	provider domain.Provider
	audit    *audit.Dispatcher
}

func NewCreateIntent(
	repo domain.Repository,
	provider domain.Provider,
	audit *audit.Dispatcher,
) *CreateIntent {
	return &CreateIntent{
		repo:     repo,
		provider: provider,
		audit:    audit,
	}
}

func (uc *CreateIntent) Execute(
	ctx context.Context,
	in CreateIntentInput,
) (domain.Intent, error) {

	if in.AmountQAR <= 0 {
		return domain.Intent{}, httperr.ErrBusiness("invalid_amount")
	}
	if strings.TrimSpace(in.JobID) == "" {
		return domain.Intent{}, httperr.ErrBusiness("missing_job")
	}
	if strings.TrimSpace(in.CustomerID) == "" {
		return domain.Intent{}, httperr.ErrBusiness("missing_customer")
	}
	if uc.provider == nil {
		return domain.Intent{}, httperr.ErrBusiness("payments_not_configured")
	}

	exists, err := uc.repo.JobExists(ctx, in.JobID)
	if err != nil {
		return domain.Intent{}, err
	}
	if !exists {
		return domain.Intent{}, httperr.ErrNotFound("job_not_found")
	}

	intent, err := uc.provider.CreateIntent(ctx, domain.CreateIntentInput{
		AmountQAR:  in.AmountQAR,
		Currency:   domain.DefaultCurrency,
		JobID:      in.JobID,
		CustomerID: in.CustomerID,
		PayerEmail: in.PayerEmail,
		Metadata: map[string]string{
			"jobId":      in.JobID,
			"customerId": in.CustomerID,
		},
	})
	if err != nil {
		return domain.Intent{}, err
	}

	p := &models.Payment{
		JobID:     in.JobID,
		Provider:  intent.Provider,
		IntentID:  intent.IntentID,
		AmountQAR: in.AmountQAR,
		Status:    string(domain.StatusPending),
	}
	if err := uc.repo.SavePaymentForJob(ctx, p); err != nil {
		return domain.Intent{}, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.CustomerID,
		Action:   "payment_intent_created",
		Entity:   "payment",
		EntityID: &p.ID,
		Metadata: map[string]any{"jobId": in.JobID, "amountQAR": in.AmountQAR, "provider": intent.Provider},
	})

	return intent, nil
}
