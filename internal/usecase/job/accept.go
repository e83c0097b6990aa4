package job

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/handyman-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/handyman-marketplace/internal/domain/job"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/logger"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

type AcceptJobInput struct {
	JobID      string
	ProviderID string
}

// AcceptJob assigns a provider directly, bypassing bids.
type AcceptJob struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewAcceptJob(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *AcceptJob {
	return &AcceptJob{
		repo:  repo,
		audit: audit,
		log:   logger.OrNop(log),
	}
}

func (uc *AcceptJob) Execute(
	ctx context.Context,
	in AcceptJobInput,
) (*models.Job, error) {

	if strings.TrimSpace(in.ProviderID) == "" {
		return nil, httperr.ErrBusiness("missing_provider")
	}

	j, err := uc.repo.GetJob(ctx, in.JobID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, httperr.ErrNotFound("job_not_found")
	}

	previous := domain.AssignProvider(j, in.ProviderID)
	if previous != "" && previous != in.ProviderID {
		uc.log.Warn("job provider overwritten",
			zap.String("job_id", j.ID),
			zap.String("previous_provider_id", previous),
			zap.String("provider_id", in.ProviderID),
		)
	}

	if err := uc.repo.AssignProvider(ctx, j); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ProviderID,
		Action:   "job_accepted",
		Entity:   "job",
		EntityID: &j.ID,
	})

	return j, nil
}
