package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/job"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

var _ job.Repository = (*JobGormRepository)(nil)

type JobGormRepository struct {
	db *gorm.DB
}

func NewJobGormRepository(db *gorm.DB) *JobGormRepository {
	return &JobGormRepository{db: db}
}

// --------------------------------------------------
// Job
// --------------------------------------------------

func (r *JobGormRepository) CreateJob(
	ctx context.Context,
	j *models.Job,
) error {

	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(j).Error
	if httperr.IsForeignKeyViolation(err) {
		return job.ErrMissingReference
	}
	return err
}

func (r *JobGormRepository) GetJob(
	ctx context.Context,
	id string,
) (*models.Job, error) {
	return loadJob(r.db.WithContext(ctx), id)
}

func (r *JobGormRepository) AssignProvider(
	ctx context.Context,
	j *models.Job,
) error {
	return assignProvider(r.db.WithContext(ctx), j)
}

// --------------------------------------------------
// Review
// --------------------------------------------------

func (r *JobGormRepository) CreateReview(
	ctx context.Context,
	review *models.Review,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Review{}).
			Where("job_id = ?", review.JobID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return job.ErrReviewExists
		}

		err := tx.Create(review).Error
		if httperr.IsUniqueViolation(err) {
			return job.ErrReviewExists
		}
		return err
	})
}

// --------------------------------------------------
// Photos
// --------------------------------------------------

func (r *JobGormRepository) CreatePhoto(
	ctx context.Context,
	p *models.JobPhoto,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// --------------------------------------------------
// shared with the bid repository
// --------------------------------------------------

func loadJob(db *gorm.DB, id string) (*models.Job, error) {
	var j models.Job
	err := db.
		Preload("Bids", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Payment").
		Preload("Review").
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Category").
		Preload("SubService").
		Preload("SubService.Service").
		Preload("SubService.PricingConfig").
		Where("id = ?", id).
		First(&j).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

func assignProvider(db *gorm.DB, j *models.Job) error {
	now := time.Now()
	res := db.Model(&models.Job{}).
		Where("id = ?", j.ID).
		Updates(map[string]any{
			"provider_id": j.ProviderID,
			"status":      j.Status,
			"updated_at":  now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	j.UpdatedAt = now
	return nil
}
