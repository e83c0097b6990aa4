package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/bid"
	"github.com/BruksfildServices01/handyman-marketplace/internal/httperr"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

var _ bid.Repository = (*BidGormRepository)(nil)

type BidGormRepository struct {
	db *gorm.DB
}

func NewBidGormRepository(db *gorm.DB) *BidGormRepository {
	return &BidGormRepository{db: db}
}

func (r *BidGormRepository) CreateBid(
	ctx context.Context,
	b *models.Bid,
) error {

	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(b).Error
	if !httperr.IsForeignKeyViolation(err) {
		return err
	}

	// TranslateError drops the constraint name, so look at the job instead.
	var jobs int64
	if cerr := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", b.JobID).
		Count(&jobs).Error; cerr != nil {
		return errors.Join(err, cerr)
	}
	if jobs > 0 {
		return bid.ErrProviderReference
	}
	return bid.ErrJobReference
}

func (r *BidGormRepository) GetBid(
	ctx context.Context,
	id string,
) (*models.Bid, error) {

	var b models.Bid
	err := r.lock(r.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&b).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BidGormRepository) ListBidsForJob(
	ctx context.Context,
	jobID string,
) ([]models.Bid, error) {

	bids := make([]models.Bid, 0)
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Find(&bids).Error
	return bids, err
}

func (r *BidGormRepository) UpdateBidStatus(
	ctx context.Context,
	b *models.Bid,
) error {

	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&models.Bid{}).
		Where("id = ?", b.ID).
		Updates(map[string]any{
			"status":     b.Status,
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	b.UpdatedAt = now
	return nil
}

func (r *BidGormRepository) GetJob(
	ctx context.Context,
	id string,
) (*models.Job, error) {
	return loadJob(r.db.WithContext(ctx), id)
}

func (r *BidGormRepository) AssignProvider(
	ctx context.Context,
	j *models.Job,
) error {
	return assignProvider(r.db.WithContext(ctx), j)
}

func (r *BidGormRepository) RunInTx(
	ctx context.Context,
	fn func(tx bid.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BidGormRepository{db: tx})
	})
}

// lock takes a row lock where the dialect has one.
func (r *BidGormRepository) lock(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "postgres" {
		return db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}
