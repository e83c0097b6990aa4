package payment

import (
	"context"

	"github.com/BruksfildServices01/handyman-marketplace/internal/models"
)

type Repository interface {
	JobExists(ctx context.Context, jobID string) (bool, error)

	// SavePaymentForJob creates the job's payment row or replaces its intent.
	SavePaymentForJob(ctx context.Context, p *models.Payment) error

	GetPaymentByIntent(ctx context.Context, intentID string) (*models.Payment, error)

	UpdatePaymentStatus(ctx context.Context, p *models.Payment) error
}
