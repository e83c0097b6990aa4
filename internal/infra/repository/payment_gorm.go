package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/handyman-marketplace/internal/domain/payment"
	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

var _ payment.Repository = (*PaymentGormRepository)(nil)

type PaymentGormRepository struct {
	db *gorm.DB
}

func NewPaymentGormRepository(db *gorm.DB) *PaymentGormRepository {
	return &PaymentGormRepository{db: db}
}

func (r *PaymentGormRepository) JobExists(ctx context.Context, jobID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", jobID).
		Count(&count).Error
	return count > 0, err
}

func (r *PaymentGormRepository) SavePaymentForJob(ctx context.Context, p *models.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Payment
		err := tx.Where("job_id = ?", p.JobID).First(&existing).Error
		switch {
		case err == nil:
			p.ID = existing.ID
			p.CreatedAt = existing.CreatedAt
			return tx.Model(p).
				Select("provider", "intent_id", "amount_qar", "status", "updated_at").
				Updates(p).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(p).Error
		default:
			return err
		}
	})
}

func (r *PaymentGormRepository) GetPaymentByIntent(ctx context.Context, intentID string) (*models.Payment, error) {
	var p models.Payment
	err := r.db.WithContext(ctx).
		Where("intent_id = ?", intentID).
		First(&p).Error
	return found(&p, err)
}

func (r *PaymentGormRepository) UpdatePaymentStatus(ctx context.Context, p *models.Payment) error {
	return r.db.WithContext(ctx).
		Model(p).
		Update("status", p.Status).Error
}
