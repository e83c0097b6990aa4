package job

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

type Repository interface {
	// -------- Job --------

	// CreateJob returns ErrMissingReference when the customer or category
	// does not exist.
	CreateJob(
		ctx context.Context,
		j *models.Job,
	) error

	// GetJob returns the job with bids, payment, review, photos, category
	// and sub-service (with its service) loaded, or nil when absent.
	GetJob(
		ctx context.Context,
		id string,
	) (*models.Job, error)

	// AssignProvider persists provider and status only.
	AssignProvider(
		ctx context.Context,
		j *models.Job,
	) error

	// -------- Review --------

	// CreateReview returns ErrReviewExists when the job already has one.
	CreateReview(
		ctx context.Context,
		r *models.Review,
	) error

	// -------- Photos --------
	CreatePhoto(
		ctx context.Context,
		p *models.JobPhoto,
	) error
}

var (
	ErrMissingReference = errors.New("job references a missing customer or category")
	ErrReviewExists     = errors.New("job already has a review")
)
