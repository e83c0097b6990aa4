package bid

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/handyman-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/handyman-marketplace/internal/domain/bid"
	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/job"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/logger"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

// AcceptBid accepts a bid and assigns its provider to the parent job. Both
// writes share one transaction: either both land or neither does.
type AcceptBid struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewAcceptBid(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *AcceptBid {
	return &AcceptBid{
		repo:  repo,
		audit: audit,
		log:   logger.OrNop(log),
	}
}

func (uc *AcceptBid) Execute(
	ctx context.Context,
	bidID string,
) (*models.Bid, error) {

	var accepted *models.Bid
	var jobID string

	err := uc.repo.RunInTx(ctx, func(tx domain.Repository) error {
		b, err := tx.GetBid(ctx, bidID)
		if err != nil {
			return err
		}
		if b == nil {
			return httperr.ErrNotFound("bid_not_found")
		}
		jobID = b.JobID

		domain.Accept(b)
		if err := tx.UpdateBidStatus(ctx, b); err != nil {
			return err
		}

		j, err := tx.GetJob(ctx, b.JobID)
		if err != nil {
			return err
		}
		if j == nil {
			return httperr.ErrNotFound("job_not_found")
		}

		if previous := job.AssignProvider(j, b.ProviderID); previous != "" && previous != b.ProviderID {
			uc.log.Warn("job provider overwritten by bid",
				zap.String("job_id", j.ID),
				zap.String("bid_id", b.ID),
				zap.String("previous_provider_id", previous),
			)
		}
		if err := tx.AssignProvider(ctx, j); err != nil {
			return err
		}

		accepted = b
		return nil
	})
	if err != nil {
		if !httperr.IsNotFound(err, "") {
			uc.log.Error("bid acceptance rolled back",
				zap.String("bid_id", bidID),
				zap.String("job_id", jobID),
				zap.Error(err),
			)
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &accepted.ProviderID,
		Action:   "bid_accepted",
		Entity:   "bid",
		EntityID: &accepted.ID,
		Metadata: map[string]string{"jobId": jobID},
	})

	return accepted, nil
}
