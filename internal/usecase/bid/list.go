package bid

import (
	"context"

	domain "github.com/BruksfildServices01/handyman-marketplace/internal/domain/bid"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

// ListBids returns a job's bids, oldest first.
type ListBids struct {
	repo domain.Repository
}

func NewListBids(repo domain.Repository) *ListBids {
	return &ListBids{repo: repo}
}

func (uc *ListBids) Execute(ctx context.Context, jobID string) ([]models.Bid, error) {
	j, err := uc.repo.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, httperr.ErrNotFound("job_not_found")
	}
	return uc.repo.ListBidsForJob(ctx, jobID)
}
