package job

import (
	"context"

	domain "github.com/BruksfildServices01/handyman-marketplace/internal/domain/job"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

type GetJob struct {
	repo domain.Repository
}

func NewGetJob(repo domain.Repository) *GetJob {
	return &GetJob{repo: repo}
}

func (uc *GetJob) Execute(ctx context.Context, id string) (*models.Job, error) {
	j, err := uc.repo.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, httperr.ErrNotFound("job_not_found")
	}
	return j, nil
}
