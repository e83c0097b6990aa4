package job

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/handyman-marketplace/internal/audit"
	domain "github.com/BruksfildServices01/handyman-marketplace/internal/domain/job"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

const (
	MinRating = 1
	MaxRating = 5
)

type AddReviewInput struct {
	JobID   string
	ActorID string
	Rating  int
	Comment *string
}

type AddReview struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAddReview(repo domain.Repository, audit *audit.Dispatcher) *AddReview {
	return &AddReview{repo: repo, audit: audit}
}

func (uc *AddReview) Execute(
	ctx context.Context,
	in AddReviewInput,
) (*models.Review, error) {

	if in.Rating < MinRating || in.Rating > MaxRating {
		return nil, httperr.ErrBusiness("invalid_rating")
	}

	j, err := uc.repo.GetJob(ctx, in.JobID)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, httperr.ErrNotFound("job_not_found")
	}

	review := &models.Review{
		JobID:   j.ID,
		Rating:  in.Rating,
		Comment: in.Comment,
	}
	if err := uc.repo.CreateReview(ctx, review); err != nil {
		if errors.Is(err, domain.ErrReviewExists) {
			return nil, httperr.ErrBusiness("review_already_exists")
		}
		return nil, err
	}

	var actor *string
	if in.ActorID != "" {
		actor = &in.ActorID
	}
	uc.audit.Dispatch(audit.Event{
		ActorID:  actor,
		Action:   "job_reviewed",
		Entity:   "job",
		EntityID: &j.ID,
		Metadata: map[string]int{"rating": in.Rating},
	})

	return review, nil
}
