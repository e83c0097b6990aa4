package bid

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/handyman-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/handyman-marketplace/internal/domain/bid"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

type CreateBidInput struct {
	JobID      string
	ProviderID string
	AmountQAR  int
	Message    *string
}

// CreateBid does not check whether the job is still open: a bid on an
// accepted job is stored like any other.
type CreateBid struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBid(repo domain.Repository, audit *audit.Dispatcher) *CreateBid {
	return &CreateBid{repo: repo, audit: audit}
}

func (uc *CreateBid) Execute(
	ctx context.Context,
	in CreateBidInput,
) (*models.Bid, error) {

	if strings.TrimSpace(in.JobID) == "" {
		return nil, httperr.ErrBusiness("missing_job")
	}
	if strings.TrimSpace(in.ProviderID) == "" {
		return nil, httperr.ErrBusiness("missing_provider")
	}
	if err := domain.ValidateAmount(in.AmountQAR); err != nil {
		return nil, err
	}

	b := &models.Bid{
		JobID:      in.JobID,
		ProviderID: in.ProviderID,
		AmountQAR:  in.AmountQAR,
		Message:    in.Message,
		Status:     string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBid(ctx, b); err != nil {
		switch {
		case errors.Is(err, domain.ErrJobReference):
			return nil, httperr.ErrNotFound("job_not_found")
		case errors.Is(err, domain.ErrProviderReference):
			return nil, httperr.ErrNotFound("provider_not_found")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &b.ProviderID,
		Action:   "bid_created",
		Entity:   "bid",
		EntityID: &b.ID,
		Metadata: map[string]any{"jobId": b.JobID, "amountQAR": b.AmountQAR},
	})

	return b, nil
}
